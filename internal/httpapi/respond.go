package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/orgball2608/socialhub/pkg/errors"
)

// StatusClientClosedRequest marks requests whose client disconnected before the response.
const StatusClientClosedRequest = 499

type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("Failed to write response", "status", status, "error", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.IsNotFound(err):
		h.writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error(), Kind: errors.KindOf(err)})
	case errors.IsInvalidInput(err):
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: errors.GetMessage(err)})
	case errors.IsRateLimited(err):
		h.writeJSON(w, http.StatusTooManyRequests, errorResponse{Error: errors.GetMessage(err)})
	case errors.IsServiceUnavailable(err):
		h.writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: errors.GetMessage(err)})
	case errors.Is(err, context.Canceled):
		h.logger.Debug("Client went away", "method", r.Method, "path", r.URL.Path, "request_id", requestID(r.Context()))
		w.WriteHeader(StatusClientClosedRequest)
	case errors.Is(err, context.DeadlineExceeded):
		h.logger.Warn("Request timed out", "method", r.Method, "path", r.URL.Path, "request_id", requestID(r.Context()))
		h.writeJSON(w, http.StatusGatewayTimeout, errorResponse{Error: "request timed out"})
	default:
		h.logger.Error("Request failed", "method", r.Method, "path", r.URL.Path, "request_id", requestID(r.Context()), "error", err)
		h.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: errors.ErrInternalServer.Error()})
	}
}

func pathID(r *http.Request) (int, error) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.Invalid("invalid id " + strconv.Quote(raw))
	}
	return id, nil
}

func decode(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return errors.Invalid("invalid request body: " + err.Error())
	}
	return nil
}
