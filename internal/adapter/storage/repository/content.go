package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/hanifwid/printmart/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

func (r *Repository) CreateBanner(ctx context.Context, banner *domain.Banner) (*domain.Banner, error) {
	statement := r.db.QueryBuilder.
		Insert("banners").
		Columns("id", "title", "image_url", "image_handle", "created_at").
		Values(banner.ID, banner.Title, banner.ImageURL, banner.ImageHandle, banner.CreatedAt)

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	return banner, nil
}

func (r *Repository) ReadBanner(ctx context.Context, id string) (*domain.Banner, error) {
	statement := r.db.QueryBuilder.
		Select("id", "title", "image_url", "image_handle", "created_at").
		From("banners").
		Where(sq.Eq{"id": id})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	banner := domain.Banner{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&banner.ID,
		&banner.Title,
		&banner.ImageURL,
		&banner.ImageHandle,
		&banner.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}
	return &banner, nil
}

func (r *Repository) ListBanners(ctx context.Context) ([]*domain.Banner, error) {
	statement := r.db.QueryBuilder.
		Select("id", "title", "image_url", "image_handle", "created_at").
		From("banners").
		OrderBy("created_at desc")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}

	list := make([]*domain.Banner, 0)
	for rows.Next() {
		banner := domain.Banner{}
		err := rows.Scan(
			&banner.ID,
			&banner.Title,
			&banner.ImageURL,
			&banner.ImageHandle,
			&banner.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		list = append(list, &banner)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return list, nil
}

func (r *Repository) DeleteBanner(ctx context.Context, id string) error {
	statement := r.db.QueryBuilder.
		Delete("banners").
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

func (r *Repository) ReadSettings(ctx context.Context) (*domain.Settings, error) {
	statement := r.db.QueryBuilder.
		Select("shop_name", "tagline", "email", "phone", "address", "updated_at").
		From("settings").
		Where(sq.Eq{"id": 1})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	settings := domain.Settings{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&settings.ShopName,
		&settings.Tagline,
		&settings.Email,
		&settings.Phone,
		&settings.Address,
		&settings.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}
	return &settings, nil
}

func (r *Repository) UpdateSettings(ctx context.Context, settings *domain.Settings) (*domain.Settings, error) {
	statement := r.db.QueryBuilder.
		Update("settings").
		Set("shop_name", settings.ShopName).
		Set("tagline", settings.Tagline).
		Set("email", settings.Email).
		Set("phone", settings.Phone).
		Set("address", settings.Address).
		Set("updated_at", settings.UpdatedAt).
		Where(sq.Eq{"id": 1})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	return settings, nil
}
