package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"
)

const healthTimeout = 3 * time.Second

// pinger is anything that can report whether a dependency is reachable.
type pinger interface {
	Ping(ctx context.Context) error
}

// PingFunc adapts a function to the pinger interface.
type PingFunc func(ctx context.Context) error

func (f PingFunc) Ping(ctx context.Context) error { return f(ctx) }

// Component is a named dependency checked by the readiness and health probes.
type Component struct {
	Name   string
	Pinger pinger
}

// HealthHandler serves the liveness, readiness and health probes.
type HealthHandler struct {
	components []Component
	version    string
}

// NewHealthHandler creates a HealthHandler checking the given components.
func NewHealthHandler(version string, components ...Component) *HealthHandler {
	return &HealthHandler{components: components, version: version}
}

// HealthResponse is the JSON body of every probe.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the outcome of one component check.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Live always answers 200 while the process serves HTTP.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: time.Now()})
}

// Ready answers 200 when every component responds and 503 otherwise.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	_, ok := h.check(r.Context())
	status, body := probeStatus(ok)
	writeJSON(w, status, HealthResponse{Status: body, Timestamp: time.Now()})
}

// Health is Ready plus per-component detail and the build version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	components, ok := h.check(r.Context())
	status, body := probeStatus(ok)
	writeJSON(w, status, HealthResponse{
		Status:     body,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	})
}

func probeStatus(ok bool) (int, string) {
	if ok {
		return http.StatusOK, "ok"
	}
	return http.StatusServiceUnavailable, "down"
}

// check pings all components concurrently under one shared timeout.
func (h *HealthHandler) check(ctx context.Context) (map[string]CompStatus, bool) {
	ctx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()

	results := make([]CompStatus, len(h.components))

	var wg sync.WaitGroup
	for i, c := range h.components {
		wg.Add(1)
		go func() {
			defer wg.Done()
			start := time.Now()
			if err := c.Pinger.Ping(ctx); err != nil {
				results[i] = CompStatus{Status: "down", Error: err.Error()}
				return
			}
			results[i] = CompStatus{Status: "ok", Latency: time.Since(start).String()}
		}()
	}
	wg.Wait()

	statuses := make(map[string]CompStatus, len(h.components))
	healthy := true
	for i, c := range h.components {
		statuses[c.Name] = results[i]
		healthy = healthy && results[i].Status == "ok"
	}
	return statuses, healthy
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}
