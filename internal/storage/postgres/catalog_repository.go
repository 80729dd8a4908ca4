package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/vladislavdragonenkov/cardapio/internal/domain"
)

type catalogRepository struct {
	db *sql.DB
}

// NewCatalogRepository создаёт PostgreSQL-реализацию CatalogRepository.
func NewCatalogRepository(store *Store) domain.CatalogRepository {
	return &catalogRepository{db: store.DB()}
}

func (r *catalogRepository) CreateCategory(ctx context.Context, category domain.Category) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if _, err := r.db.ExecContext(ctx, `
		INSERT INTO categories (id, name, created_at) VALUES ($1,$2,$3)
	`, category.ID, category.Name, category.CreatedAt); err != nil {
		return storageErr("insert category", err)
	}
	return nil
}

func (r *catalogRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, created_at FROM categories ORDER BY created_at, id
	`)
	if err != nil {
		return nil, storageErr("list categories", err)
	}
	defer rows.Close()

	var result []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt); err != nil {
			return nil, storageErr("scan category", err)
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("iterate categories", err)
	}
	return result, nil
}

// DeleteCategory удаляет категорию внутри транзакции. SHARE ROW EXCLUSIVE
// конфликтует сам с собой, поэтому параллельные удаления идут по очереди и
// последняя категория не может исчезнуть. Чтение каталога при этом не блокируется.
func (r *catalogRepository) DeleteCategory(ctx context.Context, id string) (err error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return storageErr("begin delete category", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `LOCK TABLE categories IN SHARE ROW EXCLUSIVE MODE`); err != nil {
		return storageErr("lock categories", err)
	}

	var total, matched int
	if err = tx.QueryRowContext(ctx, `
		SELECT COUNT(*), COUNT(*) FILTER (WHERE id = $1) FROM categories
	`, id).Scan(&total, &matched); err != nil {
		return storageErr("count categories", err)
	}
	if matched == 0 {
		return domain.ErrCategoryNotFound
	}
	if total <= 1 {
		return domain.ErrInvalidCategoryOperation
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id); err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidCategoryOperation
		}
		return storageErr("delete category", err)
	}
	if err = tx.Commit(); err != nil {
		return storageErr("commit delete category", err)
	}
	return nil
}

func (r *catalogRepository) CreateProduct(ctx context.Context, p domain.Product) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO products (id, name, description, price, image_ref, category_id, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`, p.ID, p.Name, p.Description, p.Price, p.ImageRef, p.CategoryID, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrCategoryNotFound
		}
		return storageErr("insert product", err)
	}
	return nil
}

func (r *catalogRepository) UpdateProduct(ctx context.Context, p domain.Product) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `
		UPDATE products
		SET name = $2, description = $3, price = $4, image_ref = $5, category_id = $6, updated_at = $7
		WHERE id = $1
	`, p.ID, p.Name, p.Description, p.Price, p.ImageRef, p.CategoryID, p.UpdatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrCategoryNotFound
		}
		return storageErr("update product", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return storageErr("rows affected for product", err)
	}
	if affected == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

func (r *catalogRepository) GetProduct(ctx context.Context, id string) (domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	p, err := scanProduct(r.db.QueryRowContext(ctx, `
		SELECT id, name, description, price, image_ref, category_id, created_at, updated_at
		FROM products WHERE id = $1
	`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Product{}, domain.ErrProductNotFound
		}
		return domain.Product{}, storageErr("select product", err)
	}
	return p, nil
}

func (r *catalogRepository) ListProducts(ctx context.Context, categoryID string) ([]domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, description, price, image_ref, category_id, created_at, updated_at
		FROM products
		WHERE $1 = '' OR category_id = $1
		ORDER BY created_at, id
	`, categoryID)
	if err != nil {
		return nil, storageErr("list products", err)
	}
	defer rows.Close()

	var result []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, storageErr("scan product", err)
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("iterate products", err)
	}
	return result, nil
}

func (r *catalogRepository) DeleteProduct(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return storageErr("delete product", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return storageErr("rows affected for product", err)
	}
	if affected == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

func scanProduct(row rowScanner) (domain.Product, error) {
	var p domain.Product
	if err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.ImageRef, &p.CategoryID, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return domain.Product{}, err
	}
	return p, nil
}

var _ domain.CatalogRepository = (*catalogRepository)(nil)
