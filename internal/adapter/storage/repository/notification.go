package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/hanifwid/printmart/internal/core/domain"
)

func (r *Repository) CreateNotification(ctx context.Context, n *domain.Notification) (*domain.Notification, error) {
	statement := r.db.QueryBuilder.
		Insert("notifications").
		Columns("id", "recipient_id", "title", "message", "type", "link", "is_read", "created_at").
		Values(n.ID, n.RecipientID, n.Title, n.Message, n.Type, n.Link, n.IsRead, n.CreatedAt)

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	return n, nil
}

func (r *Repository) ListNotifications(ctx context.Context, recipientID uint64,
	limit int) ([]*domain.Notification, error) {
	statement := r.db.QueryBuilder.
		Select("id", "recipient_id", "title", "message", "type", "link", "is_read", "created_at").
		From("notifications").
		Where(sq.Eq{"recipient_id": recipientID}).
		OrderBy("created_at desc").
		Limit(uint64(limit))

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}

	list := make([]*domain.Notification, 0)
	for rows.Next() {
		n := domain.Notification{}
		err := rows.Scan(
			&n.ID,
			&n.RecipientID,
			&n.Title,
			&n.Message,
			&n.Type,
			&n.Link,
			&n.IsRead,
			&n.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		list = append(list, &n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return list, nil
}

func (r *Repository) CountUnreadNotifications(ctx context.Context, recipientID uint64) (int64, error) {
	statement := r.db.QueryBuilder.
		Select("count(*)").
		From("notifications").
		Where(sq.Eq{"recipient_id": recipientID, "is_read": false})

	sql, args, err := statement.ToSql()
	if err != nil {
		return 0, err
	}

	var count int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *Repository) MarkNotificationRead(ctx context.Context, recipientID uint64, id string) error {
	statement := r.db.QueryBuilder.
		Update("notifications").
		Set("is_read", true).
		Where(sq.Eq{"id": id, "recipient_id": recipientID})

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

func (r *Repository) MarkAllNotificationsRead(ctx context.Context, recipientID uint64) error {
	statement := r.db.QueryBuilder.
		Update("notifications").
		Set("is_read", true).
		Where(sq.Eq{"recipient_id": recipientID, "is_read": false})

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}
