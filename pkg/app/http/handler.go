// Package http provides chi-compatible handlers that return errors and a
// graceful HTTP server loop.
package http

import (
	"encoding/json"
	"errors"
	"net/http"

	apperrors "github.com/0xNexuz/Tempocash/pkg/app/errors"
)

// HandlerFunc is an http handler that reports failures by returning them.
type HandlerFunc func(http.ResponseWriter, *http.Request) error

// HandleError adapts h to a standard http.HandlerFunc.
//
//	r.Post("/sessions", apphttp.HandleError(h.openSession))
func HandleError(h HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h(w, r); err != nil {
			DefaultErrorHandler(w, err)
		}
	}
}

// ErrorResponse is the JSON body written for failed requests.
type ErrorResponse struct {
	ErrMsg     string `json:"error"`
	ErrMsgCode int    `json:"code"`
	Kind       string `json:"kind,omitempty"`
	Action     string `json:"action,omitempty"`
}

// DefaultErrorHandler writes err as an ErrorResponse. Errors that are not a
// ServiceError are reported as a 500 without leaking their text.
func DefaultErrorHandler(w http.ResponseWriter, err error) {
	var svcErr *apperrors.ServiceError
	if errors.As(err, &svcErr) {
		WriteJSON(w, svcErr.StatusCode(), &ErrorResponse{
			ErrMsg:     svcErr.Message,
			ErrMsgCode: svcErr.StatusCode(),
			Kind:       svcErr.Kind,
			Action:     svcErr.Action,
		})
		return
	}

	WriteJSON(w, http.StatusInternalServerError, &ErrorResponse{
		ErrMsg:     "Unexpected Service Error",
		ErrMsgCode: http.StatusInternalServerError,
	})
}

// WriteJSON writes v with the given status code.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
