package utils

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/sembang-dev/sembang/shared/domain"
	"github.com/sembang-dev/sembang/shared/errors"
	"github.com/sembang-dev/sembang/shared/logger"
)

const (
	statusSuccess = "success"
	statusFail    = "fail"
	statusError   = "error"
)

type envelope struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// DecodePayload reads a JSON object without binding it to a struct, so the
// domain parsers can tell a missing property from one of the wrong type.
func DecodePayload(r io.Reader) (domain.Payload, error) {
	var payload domain.Payload
	if err := json.NewDecoder(r).Decode(&payload); err != nil {
		if errors.Is[*http.MaxBytesError](err) {
			return nil, errors.New(errors.TooLarge, "request body too large")
		}
		logger.Log.Debug("failed to decode request body", "error", err)
		return nil, errors.New(errors.InvalidType, "body is invalid json")
	}
	if payload == nil {
		// literal null
		payload = domain.Payload{}
	}
	return payload, nil
}

func WriteJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Log.Error("failed to encode response", "error", err)
	}
}

func WriteSuccess(w http.ResponseWriter, status int, data any) {
	WriteJSON(w, status, envelope{Status: statusSuccess, Data: data})
}

// WriteError maps err to its status code. Errors without a kind are logged
// and reported as a generic internal error.
func WriteError(w http.ResponseWriter, err error) {
	var e *errors.Error
	if !errors.As(err, &e) || e.Kind == errors.Internal {
		logger.Log.Error("internal error", "error", err)
		WriteJSON(w, http.StatusInternalServerError, envelope{Status: statusError, Message: "internal server error"})
		return
	}
	WriteJSON(w, e.StatusCode(), envelope{Status: statusFail, Message: e.Message})
}
