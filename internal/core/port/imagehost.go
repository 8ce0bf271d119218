package port

import (
	"context"
	"io"
)

// HostedImage is the media host's durable reference to an uploaded file.
type HostedImage struct {
	URL          string
	DeleteHandle string
}

//go:generate mockgen -source=imagehost.go -destination=mock/imagehost.go -package=mock
type ImageStore interface {
	Upload(ctx context.Context, name string, data io.Reader) (*HostedImage, error)
	Delete(ctx context.Context, handle string) error
}
