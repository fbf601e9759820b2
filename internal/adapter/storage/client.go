// Package storage is the résumé blob store client. It talks to the object
// storage REST API of the hosted backend.
package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/dawoodjaved5/soventure-project/internal/config"
	"github.com/dawoodjaved5/soventure-project/internal/domain"
	"github.com/dawoodjaved5/soventure-project/pkg/ctxutil"
)

// Client uploads and removes résumé files.
type Client struct {
	baseURL      string
	anonKey      string
	bucket       string
	contentType  string
	cacheControl string
	maxBytes     int64
	httpClient   *http.Client
	log          *slog.Logger
	now          func() time.Time
}

// NewClient creates a blob store client for the configured bucket.
func NewClient(sb config.SupabaseConfig, cfg config.StorageConfig, logger *slog.Logger) *Client {
	return &Client{
		baseURL:      sb.URL,
		anonKey:      sb.AnonKey,
		bucket:       cfg.Bucket,
		contentType:  cfg.ContentType,
		cacheControl: cfg.CacheControl,
		maxBytes:     cfg.MaxUploadBytes,
		httpClient:   &http.Client{Timeout: cfg.Timeout},
		log:          logger.With("adapter", "storage"),
		now:          time.Now,
	}
}

// MaxUploadBytes is the configured upload ceiling.
func (c *Client) MaxUploadBytes() int64 { return c.maxBytes }

// Validate checks upload preconditions without any network call.
func (c *Client) Validate(file []byte, declaredContentType string) error {
	_, err := Inspect(file, declaredContentType, c.contentType, c.maxBytes)
	return err
}

// UploadResume stores file under a fresh key owned by the identity and
// returns its public reference. It does not touch the profile.
func (c *Client) UploadResume(ctx context.Context, identity domain.Identity, file []byte, declaredContentType string) (string, error) {
	insp, err := Inspect(file, declaredContentType, c.contentType, c.maxBytes)
	if err != nil {
		return "", fmt.Errorf("storage.UploadResume: %w", err)
	}

	key := ObjectKey(identity.ID, c.now())
	reqURL := fmt.Sprintf("%s/storage/v1/object/%s/%s", c.baseURL, c.bucket, url.PathEscape(key))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(file))
	if err != nil {
		return "", fmt.Errorf("storage: create request: %w", err)
	}
	c.authorize(ctx, req)
	req.Header.Set("Content-Type", insp.ContentType)
	req.Header.Set("Cache-Control", "max-age="+c.cacheControl)
	req.Header.Set("x-upsert", "true")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.ErrorContext(ctx, "upload failed", slog.String("key", key), slog.String("error", err.Error()))
		return "", fmt.Errorf("storage: upload %s: %w: %w", key, domain.ErrStoreUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return "", c.statusError(ctx, resp, "upload "+key)
	}

	ref := c.PublicURL(key)
	c.log.InfoContext(ctx, "resume uploaded",
		slog.String("user_id", identity.ID.String()),
		slog.String("key", key),
		slog.Int64("size", insp.Size),
		slog.Int("pages", insp.Pages),
	)
	return ref, nil
}

// DeleteResume removes the object behind ref. Deleting an object that is
// already gone reports domain.DeleteNotFound with a nil error.
func (c *Client) DeleteResume(ctx context.Context, identity domain.Identity, ref string) (domain.DeleteOutcome, error) {
	key := KeyFromReference(ref, c.bucket)
	if key == "" {
		return "", domain.NewValidationError("resume_url", "reference does not point into the résumé bucket")
	}
	if !OwnedBy(key, identity.ID) {
		return "", domain.NewValidationError("resume_url", "reference belongs to another user")
	}

	body, err := json.Marshal(removeRequest{Prefixes: []string{key}})
	if err != nil {
		return "", fmt.Errorf("storage: encode remove: %w", err)
	}

	reqURL := fmt.Sprintf("%s/storage/v1/object/%s", c.baseURL, c.bucket)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, reqURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("storage: create request: %w", err)
	}
	c.authorize(ctx, req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("storage: delete %s: %w: %w", key, domain.ErrStoreUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return domain.DeleteNotFound, nil
	}
	if resp.StatusCode != http.StatusOK {
		return "", c.statusError(ctx, resp, "delete "+key)
	}

	var removed []removedObject
	if err := json.NewDecoder(resp.Body).Decode(&removed); err != nil {
		return "", fmt.Errorf("storage: decode remove response: %w", err)
	}
	if len(removed) == 0 {
		c.log.DebugContext(ctx, "resume already absent", slog.String("key", key))
		return domain.DeleteNotFound, nil
	}

	c.log.InfoContext(ctx, "resume deleted",
		slog.String("user_id", identity.ID.String()),
		slog.String("key", key),
	)
	return domain.DeleteRemoved, nil
}

type removeRequest struct {
	Prefixes []string `json:"prefixes"`
}

type removedObject struct {
	Name string `json:"name"`
}

type errorBody struct {
	StatusCode string `json:"statusCode"`
	Error      string `json:"error"`
	Message    string `json:"message"`
}

// authorize acts on behalf of the caller when a user token is present so
// bucket policies apply; otherwise it falls back to the anon key.
func (c *Client) authorize(ctx context.Context, req *http.Request) {
	token := ctxutil.AccessTokenFromCtx(ctx)
	if token == "" {
		token = c.anonKey
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("apikey", c.anonKey)
}

func (c *Client) statusError(ctx context.Context, resp *http.Response, op string) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
	var eb errorBody
	_ = json.Unmarshal(raw, &eb)

	c.log.WarnContext(ctx, "storage request rejected",
		slog.String("op", op),
		slog.Int("status", resp.StatusCode),
		slog.String("error", eb.Error),
		slog.String("message", eb.Message),
	)

	switch resp.StatusCode {
	case http.StatusRequestEntityTooLarge:
		return fmt.Errorf("storage: %s: %w", op, domain.ErrPayloadTooLarge)
	case http.StatusUnsupportedMediaType:
		return fmt.Errorf("storage: %s: %w", op, domain.ErrUnsupportedMediaType)
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("storage: %s: %w", op, domain.ErrUnauthorized)
	}
	return fmt.Errorf("storage: %s: status %d: %w", op, resp.StatusCode, domain.ErrStoreUnavailable)
}
