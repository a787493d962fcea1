package mcphttp

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/tidwall/gjson"

	"github.com/i2y/acapyclient/internal/usecase"
	"github.com/i2y/acapyclient/pkg/client"
)

// Handlers holds the dependencies of the admin HTTP endpoints served next to
// the MCP transport.
type Handlers struct {
	serveTools    *usecase.ServeToolsUseCase
	invoke        *usecase.InvokeEndpointUseCase
	checkDrift    *usecase.CheckDriftUseCase
	defaultSource string
	logger        *slog.Logger
}

// NewHandlers creates Handlers. defaultSource is the API document location
// used by the drift endpoint when the request names none.
func NewHandlers(
	serveTools *usecase.ServeToolsUseCase,
	invoke *usecase.InvokeEndpointUseCase,
	checkDrift *usecase.CheckDriftUseCase,
	defaultSource string,
	logger *slog.Logger,
) *Handlers {
	return &Handlers{
		serveTools:    serveTools,
		invoke:        invoke,
		checkDrift:    checkDrift,
		defaultSource: defaultSource,
		logger:        logger.With("component", "mcphttp_handler"),
	}
}

// RegisterAdminRoutes sets up the HTTP routes for admin endpoints.
func (h *Handlers) RegisterAdminRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /admin/operations", h.handleListOperations)
	mux.HandleFunc("GET /admin/drift", h.handleDrift)
	mux.HandleFunc("POST /admin/invoke/{name}", h.handleInvoke)
}

// InvokeResult is the JSON answer of POST /admin/invoke/{name}.
type InvokeResult struct {
	StatusCode int             `json:"status_code"`
	Body       json.RawMessage `json:"body,omitempty"`
	// Text carries bodies that are not JSON.
	Text string `json:"text,omitempty"`
}

func (h *Handlers) handleListOperations(w http.ResponseWriter, r *http.Request) {
	endpoints, err := h.serveTools.Execute(r.Context())
	if err != nil {
		h.logger.Error("Failed to list operations", slog.Any("error", err))
		http.Error(w, fmt.Sprintf("Failed to list operations: %v", err), http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, http.StatusOK, endpoints)
}

func (h *Handlers) handleDrift(w http.ResponseWriter, r *http.Request) {
	source := r.URL.Query().Get("source")
	if source == "" {
		source = h.defaultSource
	}
	if source == "" {
		http.Error(w, "Missing 'source' query parameter", http.StatusBadRequest)
		return
	}

	h.logger.Info("Received drift request", slog.String("source", source))
	report, err := h.checkDrift.Execute(r.Context(), source)
	if err != nil {
		h.logger.Error("Failed to check drift", slog.String("source", source), slog.Any("error", err))
		http.Error(w, fmt.Sprintf("Failed to check drift: %v", err), http.StatusBadGateway)
		return
	}
	h.writeJSON(w, http.StatusOK, report)
}

func (h *Handlers) handleInvoke(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	defer r.Body.Close()

	params := map[string]any{}
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
			h.logger.Warn("Failed to decode invoke request body", slog.Any("error", err))
			http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
			return
		}
	}

	resp, err := h.invoke.Execute(r.Context(), name, params)
	if err != nil {
		status := statusFor(err)
		h.logger.Warn("Invocation failed", slog.String("operation", name), slog.Int("status", status), slog.Any("error", err))
		http.Error(w, err.Error(), status)
		return
	}

	result := InvokeResult{StatusCode: resp.StatusCode}
	switch {
	case len(resp.Content) == 0:
	case gjson.ValidBytes(resp.Content):
		result.Body = json.RawMessage(resp.Content)
	default:
		result.Text = string(resp.Content)
	}
	h.writeJSON(w, http.StatusOK, result)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, usecase.ErrEndpointNotFound):
		return http.StatusNotFound
	case errors.Is(err, usecase.ErrInvalidParams),
		errors.Is(err, client.ErrMissingPathParam),
		errors.Is(err, client.ErrMissingBody),
		errors.Is(err, client.ErrUnknownQueryParam):
		return http.StatusBadRequest
	default:
		return http.StatusBadGateway
	}
}

func (h *Handlers) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Warn("Failed to write response", slog.Any("error", err))
	}
}
