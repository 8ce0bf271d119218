package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/hanifwid/printmart/internal/core/domain"
	"github.com/hanifwid/printmart/internal/core/port"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func (r *Repository) CreateCategory(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	statement := r.db.QueryBuilder.
		Insert("categories").
		Columns("name").
		Values(category.Name).
		Suffix("returning id")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&category.ID)
	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, domain.ErrConflictingData
		}
		return nil, err
	}
	return category, nil
}

func (r *Repository) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	statement := r.db.QueryBuilder.
		Select("id", "name").
		From("categories").
		OrderBy("name")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}

	list := make([]*domain.Category, 0)
	for rows.Next() {
		category := domain.Category{}
		if err := rows.Scan(&category.ID, &category.Name); err != nil {
			return nil, err
		}
		list = append(list, &category)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return list, nil
}

func (r *Repository) CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	statement := r.db.QueryBuilder.
		Insert("products").
		Columns("id", "category_id", "name", "description", "price",
			"image_url", "image_handle", "created_at").
		Values(product.ID, nullableID(product.CategoryID), product.Name, product.Description,
			product.Price, product.ImageURL, product.ImageHandle, product.CreatedAt)

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, domain.ErrConflictingData
		}
		return nil, err
	}
	return product, nil
}

func (r *Repository) UpdateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	statement := r.db.QueryBuilder.
		Update("products").
		Set("category_id", nullableID(product.CategoryID)).
		Set("name", product.Name).
		Set("description", product.Description).
		Set("price", product.Price).
		Set("image_url", product.ImageURL).
		Set("image_handle", product.ImageHandle).
		Where(sq.Eq{"id": product.ID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, domain.ErrDataNotFound
	}
	return product, nil
}

func (r *Repository) DeleteProduct(ctx context.Context, id string) error {
	statement := r.db.QueryBuilder.
		Delete("products").
		Where(sq.Eq{"id": id})

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrDataNotFound
	}
	return nil
}

func (r *Repository) ReadProduct(ctx context.Context, id string) (*domain.Product, error) {
	statement := r.db.QueryBuilder.
		Select("p.id", "coalesce(p.category_id, 0)", "p.name", "p.description", "p.price",
			"p.image_url", "p.image_handle", "p.created_at", "coalesce(c.name, '')").
		From("products p").
		LeftJoin("categories c on c.id = p.category_id").
		Where(sq.Eq{"p.id": id})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	product := domain.Product{}
	var categoryName string

	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&product.ID,
		&product.CategoryID,
		&product.Name,
		&product.Description,
		&product.Price,
		&product.ImageURL,
		&product.ImageHandle,
		&product.CreatedAt,
		&categoryName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}

	if product.CategoryID != 0 {
		product.Category = &domain.Category{ID: product.CategoryID, Name: categoryName}
	}
	return &product, nil
}

func (r *Repository) ListProducts(ctx context.Context, filter port.ProductFilter) ([]*domain.Product, int, error) {
	base := r.db.QueryBuilder.
		Select("p.id", "coalesce(p.category_id, 0)", "p.name", "p.description", "p.price",
			"p.image_url", "p.image_handle", "p.created_at", "coalesce(c.name, '')").
		From("products p").
		LeftJoin("categories c on c.id = p.category_id")

	countQ := r.db.QueryBuilder.
		Select("count(*)").
		From("products p")

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		cond := sq.Or{
			sq.ILike{"p.name": pattern},
			sq.ILike{"p.description": pattern},
		}
		base = base.Where(cond)
		countQ = countQ.Where(cond)
	}
	if filter.CategoryID != 0 {
		base = base.Where(sq.Eq{"p.category_id": filter.CategoryID})
		countQ = countQ.Where(sq.Eq{"p.category_id": filter.CategoryID})
	}

	sql, args, err := countQ.ToSql()
	if err != nil {
		return nil, 0, err
	}
	var total int
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	offset := uint64(filter.Page-1) * uint64(filter.Limit)
	statement := base.
		OrderBy("p.created_at desc").
		Limit(uint64(filter.Limit)).
		Offset(offset)

	sql, args, err = statement.ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, err
	}

	list := make([]*domain.Product, 0)
	for rows.Next() {
		product := domain.Product{}
		var categoryName string
		err := rows.Scan(
			&product.ID,
			&product.CategoryID,
			&product.Name,
			&product.Description,
			&product.Price,
			&product.ImageURL,
			&product.ImageHandle,
			&product.CreatedAt,
			&categoryName,
		)
		if err != nil {
			return nil, 0, err
		}
		if product.CategoryID != 0 {
			product.Category = &domain.Category{ID: product.CategoryID, Name: categoryName}
		}
		list = append(list, &product)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// nullableID maps a zero id to SQL null so optional foreign keys stay clean.
func nullableID(id uint64) any {
	if id == 0 {
		return nil
	}
	return id
}
