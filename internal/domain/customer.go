package domain

import "time"

// Customer — покупатель, на которого оформляются заказы.
type Customer struct {
	ID    string
	Name  string
	Email string
	// CreatedAt/UpdatedAt заполняются сервисом при создании записи.
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ValidateInvariants проверяет базовые инварианты покупателя и возвращает список замечаний.
func (c *Customer) ValidateInvariants() []error {
	var errs []error

	if c.Name == "" {
		errs = append(errs, ErrCustomerNameRequired)
	}
	if c.Email == "" {
		errs = append(errs, ErrCustomerEmailRequired)
	}

	return errs
}
