package server

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/joseph-ayodele/invoice-drafter/internal/common"
	"github.com/joseph-ayodele/invoice-drafter/internal/invoices"
)

// maxBodyBytes caps request bodies on the JSON gateway.
const maxBodyBytes = 1 << 20

type generateRequest struct {
	Text string `json:"text"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// HTTPHandler exposes the invoice service as a JSON API.
type HTTPHandler struct {
	svc           *invoices.Service
	maxInputChars int
	logger        *slog.Logger
}

// NewRouter wires the JSON API, health and metrics routes. gatherer may be
// nil to serve the default registry.
func NewRouter(svc *invoices.Service, maxInputChars int, gatherer prometheus.Gatherer, logger *slog.Logger) *mux.Router {
	if logger == nil {
		logger = slog.Default()
	}
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	h := &HTTPHandler{svc: svc, maxInputChars: maxInputChars, logger: logger}

	r := mux.NewRouter()
	r.Use(requestIDMiddleware(logger))

	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})

	r.HandleFunc("/api/v1/invoices/generate", h.Generate).Methods(http.MethodPost)
	r.HandleFunc("/api/v1/invoices/revise", h.Revise).Methods(http.MethodPost)

	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})).Methods(http.MethodGet)
	return r
}

// Generate drafts an invoice from {"text": "..."}.
func (h *HTTPHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeBodyError(w, err)
		return
	}
	if err := common.CheckInputSize(req.Text, h.maxInputChars); err != nil {
		writeError(w, http.StatusRequestEntityTooLarge, err.Error())
		return
	}
	rec, err := h.svc.Generate(r.Context(), req.Text)
	if err != nil {
		writeStatusError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

// Revise recalculates an edited invoice record.
func (h *HTTPHandler) Revise(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeBodyError(w, err)
		return
	}
	rec, err := h.svc.ReviseJSON(r.Context(), raw)
	if err != nil {
		writeStatusError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func requestIDMiddleware(logger *slog.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := strings.TrimSpace(r.Header.Get(RequestIDHeader))
			if id == "" {
				id = uuid.NewString()
			}
			w.Header().Set(RequestIDHeader, id)

			start := time.Now()
			next.ServeHTTP(w, r.WithContext(common.WithRequestID(r.Context(), id)))
			logger.Debug("http.request",
				"method", r.Method,
				"path", r.URL.Path,
				"request_id", id,
				"elapsed_ms", time.Since(start).Milliseconds(),
			)
		})
	}
}

// writeStatusError maps service errors (gRPC statuses) onto HTTP codes.
func writeStatusError(w http.ResponseWriter, err error) {
	st := status.Convert(common.ToStatus(err))
	code := http.StatusInternalServerError
	switch st.Code() {
	case codes.InvalidArgument:
		code = http.StatusBadRequest
	case codes.ResourceExhausted:
		code = http.StatusRequestEntityTooLarge
	case codes.Canceled:
		code = 499
	case codes.DeadlineExceeded:
		code = http.StatusGatewayTimeout
	}
	writeError(w, code, st.Message())
}

// writeBodyError reports an unreadable body, or 413 when it exceeds maxBodyBytes.
func writeBodyError(w http.ResponseWriter, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
		return
	}
	writeError(w, http.StatusBadRequest, "invalid request body")
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, errorResponse{Error: msg})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
