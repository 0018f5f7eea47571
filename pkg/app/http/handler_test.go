package http

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"

	apperrors "github.com/0xNexuz/Tempocash/pkg/app/errors"
	"github.com/0xNexuz/Tempocash/pkg/config"
)

func TestHandleError_ServiceError(t *testing.T) {
	h := HandleError(func(http.ResponseWriter, *http.Request) error {
		return &apperrors.ServiceError{
			Category: apperrors.CategoryPreconditionFailed,
			Message:  "wrong network",
			Kind:     "NetworkMismatch",
			Action:   "switch-network",
			Err:      errors.New("chain 1"),
		}
	})

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodPost, "/", nil))

	if rec.Code != http.StatusPreconditionFailed {
		t.Fatalf("expected 412, got %d", rec.Code)
	}
	var body ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body.Kind != "NetworkMismatch" || body.Action != "switch-network" || body.ErrMsg != "wrong network" {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestHandleError_UnknownError(t *testing.T) {
	h := HandleError(func(http.ResponseWriter, *http.Request) error {
		return errors.New("db password leaked in message")
	})

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	var body ErrorResponse
	_ = json.NewDecoder(rec.Body).Decode(&body)
	if body.ErrMsg != "Unexpected Service Error" {
		t.Fatalf("unexpected message %q", body.ErrMsg)
	}
}

func TestServe_StopsOnCancel(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- Serve(ctx, ln, http.NotFoundHandler(), zap.NewNop(), &config.ServerConfig{ShutdownTimeout: time.Second})
	}()

	resp, err := http.Get("http://" + ln.Addr().String() + "/")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Serve returned error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}
