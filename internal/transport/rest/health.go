package rest

import (
	"context"
	"net/http"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

const probeTimeout = 3 * time.Second

// Pinger is a dependency whose reachability decides readiness.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Probe names one dependency checked by /ready and /health.
type Probe struct {
	Name   string
	Target Pinger
}

// HealthHandler serves the liveness, readiness and health endpoints.
type HealthHandler struct {
	probes  []Probe
	version string
	now     func() time.Time
}

// NewHealthHandler creates a HealthHandler that checks every probe.
func NewHealthHandler(version string, probes ...Probe) *HealthHandler {
	return &HealthHandler{probes: probes, version: version, now: time.Now}
}

// HealthResponse is the JSON body of all probe endpoints.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the state of a single dependency.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Live always answers 200 while the process serves requests.
func (h *HealthHandler) Live(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: h.now()})
}

// Ready answers 200 when every dependency responds and 503 otherwise.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	components := h.check(r.Context())
	writeJSON(w, statusOf(components), HealthResponse{
		Status:    overall(components),
		Timestamp: h.now(),
	})
}

// Health is Ready plus per-dependency latency and the build version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	components := h.check(r.Context())
	writeJSON(w, statusOf(components), HealthResponse{
		Status:     overall(components),
		Version:    h.version,
		Components: components,
		Timestamp:  h.now(),
	})
}

// check pings all probes concurrently under one deadline.
func (h *HealthHandler) check(ctx context.Context) map[string]CompStatus {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	var (
		mu  sync.Mutex
		out = make(map[string]CompStatus, len(h.probes))
	)
	g, gctx := errgroup.WithContext(ctx)
	for _, p := range h.probes {
		g.Go(func() error {
			start := time.Now()
			err := p.Target.Ping(gctx)
			st := CompStatus{Status: "ok", Latency: time.Since(start).String()}
			if err != nil {
				st = CompStatus{Status: "down"}
			}
			mu.Lock()
			out[p.Name] = st
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()
	return out
}

func overall(components map[string]CompStatus) string {
	for _, c := range components {
		if c.Status != "ok" {
			return "down"
		}
	}
	return "ok"
}

func statusOf(components map[string]CompStatus) int {
	if overall(components) != "ok" {
		return http.StatusServiceUnavailable
	}
	return http.StatusOK
}
