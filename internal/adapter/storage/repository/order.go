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

// CreateOrderWithItems writes the order and all of its items in a single
// transaction. Either everything lands or nothing does.
func (r *Repository) CreateOrderWithItems(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		orderSt := r.db.QueryBuilder.
			Insert("orders").
			Columns("id", "user_id", "status", "total", "created_at").
			Values(order.ID, order.UserID, order.Status, order.Total, order.CreatedAt)

		sql, args, err := orderSt.ToSql()
		if err != nil {
			return err
		}

		_, err = tx.Exec(ctx, sql, args...)
		if err != nil {
			return err
		}

		for _, item := range order.Items {
			itemSt := r.db.QueryBuilder.
				Insert("order_items").
				Columns("order_id", "product_id", "quantity", "price").
				Values(order.ID, item.ProductID, item.Quantity, item.Price)

			sql, args, err := itemSt.ToSql()
			if err != nil {
				return err
			}

			_, err = tx.Exec(ctx, sql, args...)
			if err != nil {
				return err
			}
		}

		return nil
	})

	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, domain.ErrConflictingData
		}
		return nil, err
	}

	return order, nil
}

func (r *Repository) ReadOrder(ctx context.Context, id string) (*domain.Order, error) {
	statement := r.db.QueryBuilder.
		Select("o.id", "o.user_id", "o.status", "o.total", "o.created_at",
			"u.name", "u.email").
		From("orders o").
		Join("users u on u.id = o.user_id").
		Where(sq.Eq{"o.id": id})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	order := domain.Order{User: &domain.User{}}

	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&order.ID,
		&order.UserID,
		&order.Status,
		&order.Total,
		&order.CreatedAt,
		&order.User.Name,
		&order.User.Email,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}
	order.User.ID = order.UserID

	items, err := r.readOrderItems(ctx, []string{order.ID})
	if err != nil {
		return nil, err
	}
	order.Items = items[order.ID]

	return &order, nil
}

func (r *Repository) ListOrdersByUser(ctx context.Context, userID uint64,
	statuses []domain.OrderStatus) ([]*domain.Order, error) {
	statement := r.db.QueryBuilder.
		Select("o.id", "o.user_id", "o.status", "o.total", "o.created_at",
			"u.name", "u.email").
		From("orders o").
		Join("users u on u.id = o.user_id").
		Where(sq.Eq{"o.user_id": userID}).
		OrderBy("o.created_at desc")

	if len(statuses) > 0 {
		statement = statement.Where(sq.Eq{"o.status": statuses})
	}

	return r.queryOrders(ctx, statement)
}

func (r *Repository) ListOrders(ctx context.Context, filter port.OrderFilter) ([]*domain.Order, int, error) {
	base := r.db.QueryBuilder.
		Select("o.id", "o.user_id", "o.status", "o.total", "o.created_at",
			"u.name", "u.email").
		From("orders o").
		Join("users u on u.id = o.user_id")

	countQ := r.db.QueryBuilder.
		Select("count(*)").
		From("orders o").
		Join("users u on u.id = o.user_id")

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		cond := sq.Or{
			sq.Expr("o.id::text ilike ?", pattern),
			sq.ILike{"u.name": pattern},
			sq.ILike{"u.email": pattern},
		}
		base = base.Where(cond)
		countQ = countQ.Where(cond)
	}
	if filter.Status != "" {
		base = base.Where(sq.Eq{"o.status": filter.Status})
		countQ = countQ.Where(sq.Eq{"o.status": filter.Status})
	}

	sql, args, err := countQ.ToSql()
	if err != nil {
		return nil, 0, err
	}
	var total int
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	statement := base.
		OrderBy("o.created_at desc").
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Page-1) * uint64(filter.Limit))

	orders, err := r.queryOrders(ctx, statement)
	if err != nil {
		return nil, 0, err
	}

	return orders, total, nil
}

func (r *Repository) UpdateOrderStatus(ctx context.Context, id string, status domain.OrderStatus) error {
	statement := r.db.QueryBuilder.
		Update("orders").
		Set("status", status).
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

func (r *Repository) queryOrders(ctx context.Context, statement sq.SelectBuilder) ([]*domain.Order, error) {
	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}

	list := make([]*domain.Order, 0)
	ids := make([]string, 0)
	for rows.Next() {
		order := domain.Order{User: &domain.User{}}
		err := rows.Scan(
			&order.ID,
			&order.UserID,
			&order.Status,
			&order.Total,
			&order.CreatedAt,
			&order.User.Name,
			&order.User.Email,
		)
		if err != nil {
			return nil, err
		}
		order.User.ID = order.UserID
		list = append(list, &order)
		ids = append(ids, order.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(ids) == 0 {
		return list, nil
	}

	items, err := r.readOrderItems(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, order := range list {
		order.Items = items[order.ID]
	}

	return list, nil
}

func (r *Repository) readOrderItems(ctx context.Context, orderIDs []string) (map[string][]*domain.OrderItem, error) {
	statement := r.db.QueryBuilder.
		Select("i.order_id", "i.product_id", "i.quantity", "i.price",
			"p.name", "p.image_url").
		From("order_items i").
		Join("products p on p.id = i.product_id").
		Where(sq.Eq{"i.order_id": orderIDs})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}

	items := make(map[string][]*domain.OrderItem)
	for rows.Next() {
		item := domain.OrderItem{Product: &domain.Product{}}
		err := rows.Scan(
			&item.OrderID,
			&item.ProductID,
			&item.Quantity,
			&item.Price,
			&item.Product.Name,
			&item.Product.ImageURL,
		)
		if err != nil {
			return nil, err
		}
		item.Product.ID = item.ProductID
		item.Product.Price = item.Price
		items[item.OrderID] = append(items[item.OrderID], &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
