package imagehost

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/hanifwid/printmart/internal/adapter/config"
	"github.com/hanifwid/printmart/internal/core/port"
	"go.uber.org/zap"
)

// Client talks to the external media host that stores product and banner
// images. Uploads return a durable URL plus a deletion handle.
type Client struct {
	logger *zap.Logger
	host   string
	apiKey string
	http   *http.Client
}

func NewClient(cfg *config.ImageHost, log *zap.Logger) (*Client, error) {
	return &Client{
		logger: log,
		host:   cfg.HostString,
		apiKey: cfg.APIKey,
		http:   &http.Client{Timeout: 30 * time.Second},
	}, nil
}

type uploadResponse struct {
	URL          string `json:"url"`
	DeleteHandle string `json:"delete_handle"`
}

func (c *Client) Upload(ctx context.Context, name string, data io.Reader) (*port.HostedImage, error) {
	body := new(bytes.Buffer)
	mw := multipart.NewWriter(body)

	part, err := mw.CreateFormFile("file", name)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, data); err != nil {
		return nil, err
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}

	requestStr := "http://" + c.host + "/upload"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, requestStr, body)
	if err != nil {
		return nil, fmt.Errorf("error on %s : %w", requestStr, err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	c.logger.Debug("upload image", zap.String("name", name))

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("image host returned status %d", resp.StatusCode)
	}

	var ur uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&ur); err != nil {
		return nil, err
	}

	return &port.HostedImage{
		URL:          ur.URL,
		DeleteHandle: ur.DeleteHandle,
	}, nil
}

func (c *Client) Delete(ctx context.Context, handle string) error {
	requestStr := "http://" + c.host + "/images/" + handle
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, requestStr, http.NoBody)
	if err != nil {
		return fmt.Errorf("error on %s : %w", requestStr, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("image host returned status %d", resp.StatusCode)
	}
	return nil
}
