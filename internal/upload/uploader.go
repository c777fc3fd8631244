package upload

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
)

// Uploader stores raw bytes and returns a public URL.
type Uploader interface {
	Upload(ctx context.Context, data []byte, filename string, folder string) (string, error)
}

// HTTPUploader posts files to an external image store. When no endpoint
// is configured it degrades to placeholder URLs so catalog operations
// never fail on a missing upload backend.
type HTTPUploader struct {
	endpoint   string
	privateKey string
	client     *http.Client
	logger     *zap.Logger
}

func NewHTTPUploader(endpoint string, privateKey string, logger *zap.Logger) *HTTPUploader {
	if endpoint == "" {
		logger.Warn("upload endpoint not configured, using placeholder URLs")
	}

	return &HTTPUploader{
		endpoint:   endpoint,
		privateKey: privateKey,
		client:     &http.Client{Timeout: 15 * time.Second},
		logger:     logger,
	}
}

func (u *HTTPUploader) Upload(ctx context.Context, data []byte, filename string, folder string) (string, error) {
	if u.endpoint == "" {
		return "https://via.placeholder.com/400?text=" + url.QueryEscape(filename), nil
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("creating form file: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return "", fmt.Errorf("writing file data: %w", err)
	}
	if err := writer.WriteField("folder", folder); err != nil {
		return "", fmt.Errorf("writing folder field: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("closing multipart writer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.endpoint, &body)
	if err != nil {
		return "", fmt.Errorf("creating upload request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.SetBasicAuth(u.privateKey, "")

	resp, err := u.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("posting upload: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("upload failed with status %d: %s", resp.StatusCode, respBody)
	}

	var result struct {
		URL string `json:"url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("decoding upload response: %w", err)
	}

	return result.URL, nil
}
