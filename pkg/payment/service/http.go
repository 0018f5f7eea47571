package service

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	apperrors "github.com/0xNexuz/Tempocash/pkg/app/errors"
	apphttp "github.com/0xNexuz/Tempocash/pkg/app/http"
	"github.com/0xNexuz/Tempocash/pkg/payment"
)

const maxBodySize = 1 << 20

// HTTP wraps the Service to provide HTTP endpoints
type HTTP struct {
	service Service
	logger  *zap.Logger
}

// Routes configures the payment endpoints.
type Routes struct {
	// MerchantAuth guards payment creation; nil leaves it open.
	MerchantAuth func(http.Handler) http.Handler
	// RequestTimeout bounds every route except approve and settle.
	RequestTimeout time.Duration
	// TransitionTimeout bounds approve and settle, which wait for receipts.
	TransitionTimeout time.Duration
}

// RegisterRoutes registers the payment endpoints on the given chi router.
func RegisterRoutes(r chi.Router, service Service, routes Routes, logger *zap.Logger) {
	h := &HTTP{
		service: service,
		logger:  logger,
	}

	r.Group(func(r chi.Router) {
		if routes.RequestTimeout > 0 {
			r.Use(middleware.Timeout(routes.RequestTimeout))
		}

		r.Get("/tokens", apphttp.HandleError(h.listTokens))
		r.Group(func(r chi.Router) {
			if routes.MerchantAuth != nil {
				r.Use(routes.MerchantAuth)
			}
			r.Post("/payments", apphttp.HandleError(h.createPayment))
		})
		r.Post("/wallet/connect", apphttp.HandleError(h.connectWallet))

		r.Post("/sessions", apphttp.HandleError(h.openSession))
		r.Get("/sessions/{handle}", apphttp.HandleError(h.getSession))
		r.Delete("/sessions/{handle}", apphttp.HandleError(h.closeSession))
	})

	// A settlement outlives the client connection once it is sent.
	r.Group(func(r chi.Router) {
		r.Use(detach(routes.TransitionTimeout))
		r.Post("/sessions/{handle}/approve", apphttp.HandleError(h.approve))
		r.Post("/sessions/{handle}/settle", apphttp.HandleError(h.settle))
	})
}

// detach runs the handler on a context that ignores client cancellation,
// bounded by timeout when positive. The write deadline is pushed past it.
func detach(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithoutCancel(r.Context())
			if timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
				_ = http.NewResponseController(w).SetWriteDeadline(time.Now().Add(timeout + 10*time.Second))
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func decodeBody(r *http.Request, v any) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		return apperrors.BadRequestError(err, "failed to read request")
	}
	if err := json.Unmarshal(body, v); err != nil {
		return apperrors.BadRequestError(err, "invalid JSON")
	}
	return nil
}

func (h *HTTP) listTokens(w http.ResponseWriter, r *http.Request) error {
	tokens, err := h.service.ListTokens(r.Context())
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, tokens)
	return nil
}

func (h *HTTP) createPayment(w http.ResponseWriter, r *http.Request) error {
	var req payment.CreateRequest
	if err := decodeBody(r, &req); err != nil {
		return err
	}

	resp, err := h.service.CreatePayment(r.Context(), &req)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusCreated, resp)
	return nil
}

func (h *HTTP) connectWallet(w http.ResponseWriter, r *http.Request) error {
	conn, err := h.service.ConnectWallet(r.Context())
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, conn)
	return nil
}

func (h *HTTP) openSession(w http.ResponseWriter, r *http.Request) error {
	var req OpenSessionRequest
	if err := decodeBody(r, &req); err != nil {
		return err
	}

	resp, err := h.service.OpenSession(r.Context(), &req)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusCreated, resp)
	return nil
}

func (h *HTTP) getSession(w http.ResponseWriter, r *http.Request) error {
	resp, err := h.service.GetSession(r.Context(), chi.URLParam(r, "handle"))
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) approve(w http.ResponseWriter, r *http.Request) error {
	resp, err := h.service.Approve(r.Context(), chi.URLParam(r, "handle"))
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) settle(w http.ResponseWriter, r *http.Request) error {
	resp, err := h.service.Settle(r.Context(), chi.URLParam(r, "handle"))
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) closeSession(w http.ResponseWriter, r *http.Request) error {
	if err := h.service.CloseSession(r.Context(), chi.URLParam(r, "handle")); err != nil {
		return err
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}
