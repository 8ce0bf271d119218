package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/hanifwid/printmart/internal/core/domain"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func (r *Repository) CreateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	statement := r.db.QueryBuilder.
		Insert("users").
		Columns("name", "email", "password", "phone", "address", "role", "created_at").
		Values(user.Name, user.Email, user.Password, user.Phone, user.Address, user.Role, user.CreatedAt).
		Suffix("returning id")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&user.ID)
	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, domain.ErrConflictingData
		}
		return nil, err
	}
	return user, nil
}

func (r *Repository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	statement := r.db.QueryBuilder.
		Select("id", "name", "email", "password", "phone", "address", "role", "created_at").
		From("users").
		Where(sq.Eq{"email": email})

	return r.scanUserRow(ctx, statement)
}

func (r *Repository) ReadUser(ctx context.Context, id uint64) (*domain.User, error) {
	statement := r.db.QueryBuilder.
		Select("id", "name", "email", "password", "phone", "address", "role", "created_at").
		From("users").
		Where(sq.Eq{"id": id})

	return r.scanUserRow(ctx, statement)
}

func (r *Repository) scanUserRow(ctx context.Context, statement sq.SelectBuilder) (*domain.User, error) {
	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	user := domain.User{}

	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Password,
		&user.Phone,
		&user.Address,
		&user.Role,
		&user.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}

	return &user, nil
}

func (r *Repository) UpdateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	statement := r.db.QueryBuilder.
		Update("users").
		Set("name", user.Name).
		Set("phone", user.Phone).
		Set("address", user.Address).
		Where(sq.Eq{"id": user.ID})

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
	return user, nil
}

func (r *Repository) ListUsersByRole(ctx context.Context, role domain.UserRole) ([]*domain.User, error) {
	statement := r.db.QueryBuilder.
		Select("id", "name", "email", "password", "phone", "address", "role", "created_at").
		From("users").
		Where(sq.Eq{"role": role}).
		OrderBy("id")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}

	list := make([]*domain.User, 0)
	for rows.Next() {
		user := domain.User{}
		err := rows.Scan(
			&user.ID,
			&user.Name,
			&user.Email,
			&user.Password,
			&user.Phone,
			&user.Address,
			&user.Role,
			&user.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		list = append(list, &user)
	}

	err = rows.Err()
	if err != nil {
		return nil, err
	}

	return list, nil
}
