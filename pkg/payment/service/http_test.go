package service_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	apperrors "github.com/0xNexuz/Tempocash/pkg/app/errors"
	"github.com/0xNexuz/Tempocash/pkg/auth"
	"github.com/0xNexuz/Tempocash/pkg/payment"
	"github.com/0xNexuz/Tempocash/pkg/payment/service"
	"github.com/0xNexuz/Tempocash/pkg/payment/service/mocks"
	"github.com/0xNexuz/Tempocash/pkg/session"
	"github.com/0xNexuz/Tempocash/pkg/token"
)

func newPaymentTestServer(svc service.Service, merchantAuth func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()
	service.RegisterRoutes(r, svc, service.Routes{MerchantAuth: merchantAuth}, zap.NewNop())
	return r
}

type errorBody struct {
	Error  string `json:"error"`
	Code   int    `json:"code"`
	Kind   string `json:"kind"`
	Action string `json:"action"`
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var got errorBody
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response JSON: %v", err)
	}
	return got
}

func TestPaymentHTTP_CreatePayment_InvalidJSON(t *testing.T) {
	svc := mocks.NewService(t)
	handler := newPaymentTestServer(svc, nil)

	req := httptest.NewRequest(http.MethodPost, "/payments", bytes.NewBufferString("{invalid"))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
	if got := decodeError(t, rec); got.Error != "invalid JSON" {
		t.Fatalf("expected error %q, got %q", "invalid JSON", got.Error)
	}
}

func TestPaymentHTTP_CreatePayment_Created(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().
		CreatePayment(mock.Anything, mock.MatchedBy(func(r *payment.CreateRequest) bool {
			return r.Token == usdc && r.Amount == "150" && r.Memo == "Invoice" && r.Mode == payment.ModeSimulated
		})).
		Return(&payment.CreateResponse{ID: "demo-abc", Mode: payment.ModeSimulated, Link: "http://x/#/pay/demo-abc"}, nil).
		Once()

	handler := newPaymentTestServer(svc, nil)
	body := `{"mode":"simulated","token":"` + usdc + `","amount":"150","memo":"Invoice"}`
	req := httptest.NewRequest(http.MethodPost, "/payments", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d: %s", http.StatusCreated, rec.Code, rec.Body.String())
	}
	var got payment.CreateResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response JSON: %v", err)
	}
	if got.ID != "demo-abc" || got.Link != "http://x/#/pay/demo-abc" {
		t.Fatalf("unexpected response %+v", got)
	}
}

func TestPaymentHTTP_CreatePayment_MerchantAuth(t *testing.T) {
	svc := mocks.NewService(t)
	denyAll := func(http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		})
	}
	handler := newPaymentTestServer(svc, denyAll)

	req := httptest.NewRequest(http.MethodPost, "/payments", bytes.NewBufferString(`{}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status %d, got %d", http.StatusUnauthorized, rec.Code)
	}

	svc.EXPECT().ListTokens(mock.Anything).Return([]token.Info{{Symbol: "USDC"}}, nil).Once()
	req = httptest.NewRequest(http.MethodGet, "/tokens", nil)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected token list to bypass merchant auth, got %d", rec.Code)
	}
}

func TestPaymentHTTP_CreatePayment_MerchantInContext(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().
		CreatePayment(mock.MatchedBy(func(ctx context.Context) bool {
			m, _ := ctx.Value(auth.ContextKeyMerchant).(string)
			return m == "shop-1"
		}), mock.Anything).
		Return(&payment.CreateResponse{ID: "demo-abc"}, nil).
		Once()

	withMerchant := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(auth.WithMerchant(r.Context(), "shop-1")))
		})
	}
	handler := newPaymentTestServer(svc, withMerchant)

	req := httptest.NewRequest(http.MethodPost, "/payments", bytes.NewBufferString(`{"token":"`+usdc+`"}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d", http.StatusCreated, rec.Code)
	}
}

func TestPaymentHTTP_SessionLifecycle(t *testing.T) {
	svc := mocks.NewService(t)
	view := func(step payment.Step) *service.SessionResponse {
		return &service.SessionResponse{
			Handle: "h1",
			View: session.View{
				Request: &payment.Request{ID: "demo-abc"},
				Mode:    payment.ModeSimulated,
				Step:    step,
			},
		}
	}

	svc.EXPECT().
		OpenSession(mock.Anything, &service.OpenSessionRequest{ID: "demo-abc"}).
		Return(view(payment.StepNeedsAuthorization), nil).
		Once()
	svc.EXPECT().Approve(mock.Anything, "h1").Return(view(payment.StepReadyToSettle), nil).Once()
	svc.EXPECT().Settle(mock.Anything, "h1").Return(view(payment.StepSettled), nil).Once()
	svc.EXPECT().GetSession(mock.Anything, "h1").Return(view(payment.StepSettled), nil).Once()
	svc.EXPECT().CloseSession(mock.Anything, "h1").Return(nil).Once()

	handler := newPaymentTestServer(svc, nil)

	steps := []struct {
		method string
		path   string
		body   string
		status int
		step   payment.Step
	}{
		{http.MethodPost, "/sessions", `{"id":"demo-abc"}`, http.StatusCreated, payment.StepNeedsAuthorization},
		{http.MethodPost, "/sessions/h1/approve", "", http.StatusOK, payment.StepReadyToSettle},
		{http.MethodPost, "/sessions/h1/settle", "", http.StatusOK, payment.StepSettled},
		{http.MethodGet, "/sessions/h1", "", http.StatusOK, payment.StepSettled},
	}
	for _, st := range steps {
		req := httptest.NewRequest(st.method, st.path, bytes.NewBufferString(st.body))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != st.status {
			t.Fatalf("%s %s: expected status %d, got %d", st.method, st.path, st.status, rec.Code)
		}
		var got struct {
			Handle string       `json:"handle"`
			Step   payment.Step `json:"step"`
			Mode   payment.Mode `json:"mode"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
			t.Fatalf("failed to decode response JSON: %v", err)
		}
		if got.Handle != "h1" || got.Step != st.step || got.Mode != payment.ModeSimulated {
			t.Fatalf("%s %s: unexpected body %s", st.method, st.path, rec.Body.String())
		}
	}

	req := httptest.NewRequest(http.MethodDelete, "/sessions/h1", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected status %d, got %d", http.StatusNoContent, rec.Code)
	}
}

func TestPaymentHTTP_ClassifiedErrors(t *testing.T) {
	tests := []struct {
		name   string
		kind   payment.Kind
		status int
	}{
		{name: "invalid step", kind: payment.KindInvalidStep, status: http.StatusConflict},
		{name: "pending", kind: payment.KindOperationPending, status: http.StatusLocked},
		{name: "wrong network", kind: payment.KindNetworkMismatch, status: http.StatusPreconditionFailed},
		{name: "rejected", kind: payment.KindUserRejected, status: http.StatusForbidden},
		{name: "insufficient funds", kind: payment.KindInsufficientFunds, status: http.StatusPaymentRequired},
		{name: "settlement failed", kind: payment.KindSettlementFailed, status: http.StatusBadGateway},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewService(t)
			svc.EXPECT().
				Settle(mock.Anything, "h1").
				Return(nil, &apperrors.ServiceError{
					Category: categoryFor(tt.status),
					Message:  tt.kind.Message(),
					Kind:     tt.kind.String(),
					Action:   tt.kind.Action(),
					Err:      payment.NewError(tt.kind, "settle", nil),
				}).
				Once()

			handler := newPaymentTestServer(svc, nil)
			req := httptest.NewRequest(http.MethodPost, "/sessions/h1/settle", nil)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, rec.Code)
			}
			got := decodeError(t, rec)
			if got.Kind != tt.kind.String() || got.Error != tt.kind.Message() || got.Code != tt.status {
				t.Fatalf("unexpected error body %+v", got)
			}
		})
	}
}

func categoryFor(status int) apperrors.Category {
	switch status {
	case http.StatusConflict:
		return apperrors.CategoryDataConflict
	case http.StatusLocked:
		return apperrors.CategoryLocked
	case http.StatusPreconditionFailed:
		return apperrors.CategoryPreconditionFailed
	case http.StatusForbidden:
		return apperrors.CategoryForbidden
	case http.StatusPaymentRequired:
		return apperrors.CategoryPaymentRequired
	default:
		return apperrors.CategoryDependencyFailure
	}
}

func TestPaymentHTTP_UnknownSession(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().
		GetSession(mock.Anything, "nope").
		Return(nil, apperrors.ResourceNotFoundError(service.ErrSessionNotFound, "session not found")).
		Once()

	handler := newPaymentTestServer(svc, nil)
	req := httptest.NewRequest(http.MethodGet, "/sessions/nope", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, rec.Code)
	}
}

func TestPaymentHTTP_UnexpectedErrorIsHidden(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().ConnectWallet(mock.Anything).Return(nil, errors.New("dial tcp: refused")).Once()

	handler := newPaymentTestServer(svc, nil)
	req := httptest.NewRequest(http.MethodPost, "/wallet/connect", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, rec.Code)
	}
	if got := decodeError(t, rec); got.Error != "Unexpected Service Error" {
		t.Fatalf("unexpected error body %+v", got)
	}
}

func TestPaymentHTTP_SettleOutlivesRequestTimeout(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().
		Settle(mock.Anything, "h1").
		RunAndReturn(func(ctx context.Context, handle string) (*service.SessionResponse, error) {
			deadline, ok := ctx.Deadline()
			if !ok || time.Until(deadline) < time.Second {
				t.Errorf("expected the transition deadline, got %v (set %v)", deadline, ok)
			}
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(100 * time.Millisecond):
			}
			return &service.SessionResponse{
				Handle: handle,
				View:   session.View{Request: &payment.Request{ID: "demo-abc"}, Step: payment.StepSettled},
			}, nil
		}).
		Once()
	svc.EXPECT().
		GetSession(mock.Anything, "h1").
		RunAndReturn(func(ctx context.Context, handle string) (*service.SessionResponse, error) {
			deadline, ok := ctx.Deadline()
			if !ok || time.Until(deadline) > time.Second {
				t.Errorf("expected the request deadline, got %v (set %v)", deadline, ok)
			}
			return &service.SessionResponse{Handle: handle, View: session.View{Request: &payment.Request{ID: "demo-abc"}}}, nil
		}).
		Once()

	r := chi.NewRouter()
	service.RegisterRoutes(r, svc, service.Routes{
		RequestTimeout:    20 * time.Millisecond,
		TransitionTimeout: time.Minute,
	}, zap.NewNop())

	// The client hangs up before the receipt arrives.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req := httptest.NewRequest(http.MethodPost, "/sessions/h1/settle", nil).WithContext(ctx)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/sessions/h1", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
}
