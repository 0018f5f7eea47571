package service

import (
	"github.com/0xNexuz/Tempocash/pkg/payment"
	"github.com/0xNexuz/Tempocash/pkg/session"
)

// OpenSessionRequest opens a payer session for a payment link.
type OpenSessionRequest struct {
	ID   string       `json:"id" validate:"required"`
	Mode payment.Mode `json:"mode" validate:"omitempty,oneof=live simulated"`
}

// ErrorView is the last classified failure of a session.
type ErrorView struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
	Action  string `json:"action,omitempty"`
}

// SessionResponse describes a session held by the service.
type SessionResponse struct {
	Handle string `json:"handle"`
	session.View
	LastError *ErrorView `json:"last_error,omitempty"`
}

func newSessionResponse(handle string, v session.View) *SessionResponse {
	resp := &SessionResponse{Handle: handle, View: v}
	if v.LastError != nil {
		resp.LastError = &ErrorView{
			Kind:    v.LastError.Kind.String(),
			Message: v.LastError.Kind.Message(),
			Action:  v.LastError.Kind.Action(),
		}
	}
	return resp
}
