package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/hanifwid/printmart/internal/core/domain"
	"github.com/hanifwid/printmart/internal/core/port"
	"go.uber.org/zap"
)

const defaultNotificationLimit = 20

// NotificationEvent is the event name live subscribers bind to.
const NotificationEvent = "notification"

type NotificationService struct {
	repo      port.Repository
	publisher port.RealtimePublisher
	logger    *zap.Logger
}

func NewNotificationService(repo port.Repository, publisher port.RealtimePublisher,
	logger *zap.Logger) (*NotificationService, error) {
	return &NotificationService{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
	}, nil
}

// Notify persists a notification for a single recipient and then publishes
// it on the recipient's channel. Storage is the source of truth: a publish
// failure is logged and swallowed, a persistence failure aborts before any
// publish happens.
func (s *NotificationService) Notify(ctx context.Context, recipientID uint64,
	title, message string, ntype domain.NotificationType, link string) (*domain.Notification, error) {
	if ntype == "" {
		ntype = domain.NotificationTypeInfo
	}

	n := &domain.Notification{
		ID:          uuid.NewString(),
		RecipientID: recipientID,
		Title:       title,
		Message:     message,
		Type:        ntype,
		Link:        link,
		CreatedAt:   time.Now(),
	}

	created, err := s.repo.CreateNotification(ctx, n)
	if err != nil {
		s.logger.Error("Create notification", zap.Uint64("recipient", recipientID), zap.Error(err))
		return nil, domain.ErrInternal
	}

	bestEffort(s.logger, "publish notification", func() error {
		return s.publisher.Publish(ctx, port.UserChannel(recipientID), NotificationEvent, created)
	})

	return created, nil
}

func (s *NotificationService) List(ctx context.Context, recipientID uint64,
	limit int) ([]*domain.Notification, error) {
	if limit < 1 {
		limit = defaultNotificationLimit
	}
	list, err := s.repo.ListNotifications(ctx, recipientID, limit)
	if err != nil {
		s.logger.Error("List notifications", zap.Error(err))
		return nil, domain.ErrInternal
	}
	return list, nil
}

func (s *NotificationService) UnreadCount(ctx context.Context, recipientID uint64) (int64, error) {
	count, err := s.repo.CountUnreadNotifications(ctx, recipientID)
	if err != nil {
		s.logger.Error("Count unread notifications", zap.Error(err))
		return 0, domain.ErrInternal
	}
	return count, nil
}

// MarkRead flips a recipient's notification to read. Marking an already-read
// notification is a no-op; a notification belonging to someone else is
// reported as not found.
func (s *NotificationService) MarkRead(ctx context.Context, recipientID uint64, id string) error {
	err := s.repo.MarkNotificationRead(ctx, recipientID, id)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return err
		}
		s.logger.Error("Mark notification read", zap.Error(err))
		return domain.ErrInternal
	}
	return nil
}

func (s *NotificationService) MarkAllRead(ctx context.Context, recipientID uint64) error {
	if err := s.repo.MarkAllNotificationsRead(ctx, recipientID); err != nil {
		s.logger.Error("Mark all notifications read", zap.Error(err))
		return domain.ErrInternal
	}
	return nil
}
