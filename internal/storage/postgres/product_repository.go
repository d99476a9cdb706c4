package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jcavendish/shop/internal/domain"
)

type productRepository struct {
	db *sql.DB
}

// NewProductRepository создаёт PostgreSQL-реализацию ProductRepository.
func NewProductRepository(store *Store) domain.ProductRepository {
	return &productRepository{db: store.DB()}
}

func (r *productRepository) Create(product domain.Product) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO products (id, name, price_minor, quantity, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6)
	`, product.ID, product.Name, product.PriceMinor, product.Quantity, product.CreatedAt, product.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAlreadyExists
		}
		return fmt.Errorf("insert product: %w", err)
	}

	return nil
}

func (r *productRepository) FindByName(name string) (domain.Product, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	var product domain.Product
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, price_minor, quantity, created_at, updated_at
		FROM products
		WHERE name = $1
	`, name).Scan(
		&product.ID, &product.Name, &product.PriceMinor, &product.Quantity,
		&product.CreatedAt, &product.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Product{}, domain.ErrProductNotFound
		}
		return domain.Product{}, fmt.Errorf("select product by name: %w", err)
	}

	return product, nil
}

// FindAllByID возвращает существующие товары в стабильном порядке хранилища.
// Отсутствующие ID молча опускаются.
func (r *productRepository) FindAllByID(ids []string) ([]domain.Product, error) {
	if len(ids) == 0 {
		return []domain.Product{}, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, price_minor, quantity, created_at, updated_at
		FROM products
		WHERE id = ANY($1)
		ORDER BY created_at ASC, id ASC
	`, ids)
	if err != nil {
		return nil, fmt.Errorf("select products by ids: %w", err)
	}
	defer rows.Close()

	products := make([]domain.Product, 0, len(ids))
	for rows.Next() {
		var product domain.Product
		if err := rows.Scan(
			&product.ID, &product.Name, &product.PriceMinor, &product.Quantity,
			&product.CreatedAt, &product.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan product row: %w", err)
		}
		products = append(products, product)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate product rows: %w", err)
	}

	return products, nil
}

// UpdateQuantities перезаписывает остатки абсолютными значениями в одной
// транзакции. Несуществующие ID пропускаются без ошибки.
func (r *productRepository) UpdateQuantities(updates []domain.QuantityUpdate) ([]domain.Product, error) {
	if len(updates) == 0 {
		return []domain.Product{}, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	updated := make([]domain.Product, 0, len(updates))
	for _, update := range updates {
		var product domain.Product
		err = tx.QueryRowContext(ctx, `
			UPDATE products
			SET quantity = $1,
			    updated_at = NOW()
			WHERE id = $2
			RETURNING id, name, price_minor, quantity, created_at, updated_at
		`, update.Quantity, update.ProductID).Scan(
			&product.ID, &product.Name, &product.PriceMinor, &product.Quantity,
			&product.CreatedAt, &product.UpdatedAt,
		)
		if errors.Is(err, sql.ErrNoRows) {
			err = nil
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("update product quantity: %w", err)
		}
		updated = append(updated, product)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit update quantities: %w", err)
	}

	return updated, nil
}

var _ domain.ProductRepository = (*productRepository)(nil)
