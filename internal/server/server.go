// Package server exposes the annuity calculations over a small JSON API.
// Request bodies decode into loosely-typed maps; field values pass through
// the same scalar validation as formula-engine arguments, so numbers and
// numeric strings are both accepted.
package server

import (
	"encoding/json"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/finsheet/annuity-core/pkg/annuity"
	"github.com/finsheet/annuity-core/pkg/scalar"
	"github.com/finsheet/annuity-core/pkg/sheetfn"
	"go.uber.org/zap"
)

type handler struct {
	logger      *zap.Logger
	maxBodySize int64
}

// NewHandler constructs the HTTP handler that serves the calculation API.
func NewHandler(logger *zap.Logger, maxBodySize int64) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	h := &handler{logger: logger, maxBodySize: maxBodySize}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/pmt", h.handlePmt)
	mux.HandleFunc("/api/v1/ppmt", h.handlePpmt)
	mux.HandleFunc("/api/v1/ipmt", h.handleIpmt)
	mux.HandleFunc("/api/v1/schedule", h.handleSchedule)
	mux.HandleFunc("/healthz", h.handleHealth)

	return mux
}

type calcResponse struct {
	Result   float64 `json:"result"`
	Error    string  `json:"error,omitempty"`
	Duration string  `json:"duration"`
}

type scheduleResponse struct {
	Schedule []annuity.Step `json:"schedule"`
	Duration string         `json:"duration"`
}

// requestArgs extracts the request fields in the positional order the
// underlying function takes them. Optional fields default to 0.
func requestArgs(payload map[string]interface{}, fields []string, required int) ([]interface{}, bool) {
	args := make([]interface{}, 0, len(fields))
	for i, field := range fields {
		value, ok := payload[field]
		if !ok {
			if i < required {
				return nil, false
			}
			value = 0
		}
		args = append(args, value)
	}
	return args, true
}

func (h *handler) handlePmt(w http.ResponseWriter, r *http.Request) {
	h.handleCalc(w, r, "server.handlePmt",
		[]string{"rate", "periods", "presentValue", "futureValue", "timing"}, 2, sheetfn.Pmt)
}

func (h *handler) handlePpmt(w http.ResponseWriter, r *http.Request) {
	h.handleCalc(w, r, "server.handlePpmt",
		[]string{"rate", "period", "periods", "presentValue", "futureValue", "timing"}, 3, sheetfn.Ppmt)
}

func (h *handler) handleIpmt(w http.ResponseWriter, r *http.Request) {
	h.handleCalc(w, r, "server.handleIpmt",
		[]string{"rate", "period", "periods", "presentValue", "futureValue", "timing"}, 3, sheetfn.Ipmt)
}

func (h *handler) handleCalc(w http.ResponseWriter, r *http.Request, op string,
	fields []string, required int, fn func(...interface{}) (float64, error)) {

	start := time.Now()

	payload, ok := h.decodePayload(w, r, op)
	if !ok {
		return
	}

	args, ok := requestArgs(payload, fields, required)
	if !ok {
		h.respondError(w, http.StatusBadRequest,
			"missing required field, need "+strconv.Itoa(required)+" of "+fields[0]+"...", op)
		return
	}

	result, err := fn(args...)
	if err != nil {
		// Validation failures and arity errors both surface as 400s; the
		// distinction only matters to the formula layer.
		h.respondError(w, http.StatusBadRequest, err.Error(), op)
		return
	}

	h.writeResult(w, result, start, op)
}

func (h *handler) handleSchedule(w http.ResponseWriter, r *http.Request) {
	op := "server.handleSchedule"
	start := time.Now()

	payload, ok := h.decodePayload(w, r, op)
	if !ok {
		return
	}

	fields := []string{"rate", "periods", "presentValue", "futureValue", "timing"}
	args, ok := requestArgs(payload, fields, 2)
	if !ok {
		h.respondError(w, http.StatusBadRequest, "missing required field: rate and periods", op)
		return
	}

	rate, err := scalar.Float(args[0])
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error(), op)
		return
	}
	periods, err := scalar.Int(args[1])
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error(), op)
		return
	}
	presentValue, err := scalar.Float(args[2])
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error(), op)
		return
	}
	futureValue, err := scalar.Float(args[3])
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error(), op)
		return
	}
	timing, err := scalar.Int(args[4])
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error(), op)
		return
	}

	schedule := annuity.Schedule(rate, periods, presentValue, futureValue, timing)
	if schedule == nil {
		h.respondError(w, http.StatusUnprocessableEntity, "no schedule for the supplied parameters", op)
		return
	}

	h.logger.Debug("schedule computed",
		zap.String("op", op),
		zap.Int("periods", periods),
	)
	h.writeJSON(w, http.StatusOK, scheduleResponse{
		Schedule: schedule,
		Duration: time.Since(start).String(),
	})
}

func (h *handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// decodePayload enforces the method and body-size limits and decodes the
// request body into a loosely-typed map.
func (h *handler) decodePayload(w http.ResponseWriter, r *http.Request, op string) (map[string]interface{}, bool) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return nil, false
	}

	if h.maxBodySize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)
	}

	var payload map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.respondError(w, http.StatusBadRequest, "failed to decode request body: "+err.Error(), op)
		return nil, false
	}
	if payload == nil {
		payload = make(map[string]interface{})
	}
	return payload, true
}

// writeResult encodes a calculation result. NaN has no JSON representation,
// so domain errors travel as the string "NaN" in the error field with a
// zero result, which is how the formula layer renders them anyway.
func (h *handler) writeResult(w http.ResponseWriter, result float64, start time.Time, op string) {
	response := calcResponse{Duration: time.Since(start).String()}
	if math.IsNaN(result) {
		response.Error = "NaN"
	} else {
		response.Result = result
	}

	h.logger.Debug("calculation complete",
		zap.String("op", op),
		zap.Float64("result", result),
	)
	h.writeJSON(w, http.StatusOK, response)
}

func (h *handler) respondError(w http.ResponseWriter, status int, msg string, op string) {
	h.logger.Error("calculation request failed",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("error", msg),
	)
	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}
