package port

import (
	"context"
	"fmt"
)

// UserChannel derives the per-recipient channel key used for live delivery.
func UserChannel(recipientID uint64) string {
	return fmt.Sprintf("user-%d", recipientID)
}

//go:generate mockgen -source=realtime.go -destination=mock/realtime.go -package=mock
type RealtimePublisher interface {
	Publish(ctx context.Context, channel string, event string, payload any) error
}
