// Package functions invokes the hosted edge functions that parse résumés,
// discover jobs and generate interview questions.
package functions

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/tidwall/gjson"

	"github.com/dawoodjaved5/soventure-project/internal/config"
	"github.com/dawoodjaved5/soventure-project/internal/domain"
	"github.com/dawoodjaved5/soventure-project/pkg/ctxutil"
)

const maxResponseBytes = 1 << 20

// Invoker calls remote tasks. Every call either returns a result that
// passed the task's shape check or a single *domain.TaskFailure.
type Invoker struct {
	baseURL    string
	anonKey    string
	timeout    time.Duration
	httpClient *http.Client
	schemas    schemaSet
	log        *slog.Logger
}

// NewInvoker creates an Invoker. The HTTP client carries no timeout of its
// own; each call is bounded by the configured task timeout instead.
func NewInvoker(sb config.SupabaseConfig, cfg config.TasksConfig, logger *slog.Logger) (*Invoker, error) {
	schemas, err := loadSchemas()
	if err != nil {
		return nil, fmt.Errorf("functions.NewInvoker: %w", err)
	}
	return &Invoker{
		baseURL:    sb.URL,
		anonKey:    sb.AnonKey,
		timeout:    cfg.Timeout,
		httpClient: &http.Client{},
		schemas:    schemas,
		log:        logger.With("adapter", "functions"),
	}, nil
}

// Invoke posts payload to task on behalf of identity. The caller's user ID
// is always added to the payload as "userId".
func (i *Invoker) Invoke(ctx context.Context, task domain.TaskName, identity domain.Identity, payload map[string]any) (json.RawMessage, error) {
	if !task.IsValid() {
		return nil, fmt.Errorf("functions.Invoke: unknown task %q", task)
	}

	body := make(map[string]any, len(payload)+1)
	for k, v := range payload {
		body[k] = v
	}
	body["userId"] = identity.ID.String()

	encoded, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("functions.Invoke: encode payload: %w", err)
	}

	callCtx, cancel := context.WithTimeout(ctx, i.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(callCtx, http.MethodPost, i.baseURL+"/functions/v1/"+task.String(), bytes.NewReader(encoded))
	if err != nil {
		return nil, fmt.Errorf("functions.Invoke: create request: %w", err)
	}
	token := ctxutil.AccessTokenFromCtx(ctx)
	if token == "" {
		token = i.anonKey
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("apikey", i.anonKey)
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := i.httpClient.Do(req)
	if err != nil {
		if errors.Is(callCtx.Err(), context.DeadlineExceeded) {
			i.log.WarnContext(ctx, "task timed out",
				slog.String("task", task.String()),
				slog.Duration("timeout", i.timeout),
			)
			return nil, &domain.TaskFailure{Task: task, Kind: domain.TaskFailureTimeout}
		}
		i.log.ErrorContext(ctx, "task transport error",
			slog.String("task", task.String()),
			slog.String("error", err.Error()),
		)
		return nil, &domain.TaskFailure{Task: task, Kind: domain.TaskFailureTransport}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		if errors.Is(callCtx.Err(), context.DeadlineExceeded) {
			return nil, &domain.TaskFailure{Task: task, Kind: domain.TaskFailureTimeout}
		}
		return nil, &domain.TaskFailure{Task: task, Kind: domain.TaskFailureTransport}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := remoteMessage(raw)
		i.log.WarnContext(ctx, "task rejected",
			slog.String("task", task.String()),
			slog.Int("status", resp.StatusCode),
			slog.String("message", msg),
		)
		return nil, &domain.TaskFailure{Task: task, Kind: domain.TaskFailureRemote, Message: msg}
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		raw = []byte("null")
	}
	if !json.Valid(raw) {
		i.log.WarnContext(ctx, "task returned invalid json", slog.String("task", task.String()))
		return nil, &domain.TaskFailure{Task: task, Kind: domain.TaskFailureMalformed}
	}
	if violation := i.schemas.check(task, raw); violation != "" {
		i.log.WarnContext(ctx, "task result failed shape check",
			slog.String("task", task.String()),
			slog.String("violation", violation),
		)
		return nil, &domain.TaskFailure{Task: task, Kind: domain.TaskFailureMalformed}
	}

	i.log.InfoContext(ctx, "task completed",
		slog.String("task", task.String()),
		slog.String("user_id", identity.ID.String()),
		slog.Duration("duration", time.Since(start)),
	)
	return raw, nil
}

// remoteMessage pulls the human-readable reason out of an error body.
func remoteMessage(body []byte) string {
	if !gjson.ValidBytes(body) {
		return ""
	}
	for _, path := range []string{"error", "message", "error.message"} {
		if v := gjson.GetBytes(body, path); v.Type == gjson.String && v.String() != "" {
			return v.String()
		}
	}
	return ""
}
