package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/smartcare-io/admin-api/internal/core/domain"
)

type stubAuthService struct {
	loginFn    func(ctx context.Context, email, password string) (string, *domain.User, error)
	activateFn func(ctx context.Context, token, password string) (*domain.User, error)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) Activate(ctx context.Context, token, password string) (*domain.User, error) {
	return s.activateFn(ctx, token, password)
}

func authContext(t *testing.T, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Login_Success(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(_ context.Context, email, password string) (string, *domain.User, error) {
			if email != "alice@p1.test" || password != "secret-123" {
				t.Fatalf("unexpected credentials: %s", email)
			}
			return "signed-token", &domain.User{ID: "U1", Email: email, Role: domain.RoleManager}, nil
		},
	}
	h := NewAuthHandler(stub, zerolog.Nop())

	c, rec := authContext(t, "/v1/auth/login", `{"email":"alice@p1.test","password":"secret-123"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "signed-token" {
		t.Errorf("token missing from response: %v", resp)
	}
	if _, ok := resp["user"]; !ok {
		t.Error("user missing from response")
	}
}

func TestAuthHandler_Login_BadCredentials(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(_ context.Context, _, _ string) (string, *domain.User, error) {
			return "", nil, domain.ErrInvalidCredentials
		},
	}
	h := NewAuthHandler(stub, zerolog.Nop())

	c, rec := authContext(t, "/v1/auth/login", `{"email":"alice@p1.test","password":"wrong"}`)
	_ = h.Login(c)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthHandler_Login_InactiveAccount(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(_ context.Context, _, _ string) (string, *domain.User, error) {
			return "", nil, domain.ErrUserInactive
		},
	}
	h := NewAuthHandler(stub, zerolog.Nop())

	c, rec := authContext(t, "/v1/auth/login", `{"email":"bob@p1.test","password":"pw-123456"}`)
	_ = h.Login(c)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "not been activated") {
		t.Errorf("expected activation message, got %s", rec.Body.String())
	}
}

func TestAuthHandler_Login_MissingFieldsIs400(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(_ context.Context, _, _ string) (string, *domain.User, error) {
			t.Fatal("service must not be called on invalid input")
			return "", nil, nil
		},
	}
	h := NewAuthHandler(stub, zerolog.Nop())

	c, rec := authContext(t, "/v1/auth/login", `{"email":"not-an-email"}`)
	_ = h.Login(c)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_Activate_Success(t *testing.T) {
	stub := &stubAuthService{
		activateFn: func(_ context.Context, token, password string) (*domain.User, error) {
			if token != "tok-1" || password != "fresh-password" {
				t.Fatalf("unexpected args: %s", token)
			}
			return &domain.User{ID: "U5", Email: "invited@p1.test", IsActive: true}, nil
		},
	}
	h := NewAuthHandler(stub, zerolog.Nop())

	c, rec := authContext(t, "/v1/auth/activate", `{"token":"tok-1","password":"fresh-password"}`)
	if err := h.Activate(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestAuthHandler_Activate_BadToken(t *testing.T) {
	stub := &stubAuthService{
		activateFn: func(_ context.Context, _, _ string) (*domain.User, error) {
			return nil, domain.ErrInviteTokenInvalid
		},
	}
	h := NewAuthHandler(stub, zerolog.Nop())

	c, rec := authContext(t, "/v1/auth/activate", `{"token":"stale","password":"long-enough"}`)
	_ = h.Activate(c)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthHandler_Activate_ShortPasswordIs400(t *testing.T) {
	stub := &stubAuthService{
		activateFn: func(_ context.Context, _, _ string) (*domain.User, error) {
			t.Fatal("service must not be called on invalid input")
			return nil, nil
		},
	}
	h := NewAuthHandler(stub, zerolog.Nop())

	c, rec := authContext(t, "/v1/auth/activate", `{"token":"tok-1","password":"short"}`)
	_ = h.Activate(c)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
