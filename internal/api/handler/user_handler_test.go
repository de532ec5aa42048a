package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/UtsavYadav1/empowerher/internal/api/middleware"
	"github.com/UtsavYadav1/empowerher/internal/core/domain"
	"github.com/UtsavYadav1/empowerher/internal/core/ports"
)

type stubUserService struct {
	assignRoleFn func(ctx context.Context, actor *domain.User, targetID, rawRole string) (*domain.User, error)
}

func (s *stubUserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func (s *stubUserService) AssignRole(ctx context.Context, actor *domain.User, targetID, rawRole string) (*domain.User, error) {
	return s.assignRoleFn(ctx, actor, targetID, rawRole)
}

func (s *stubUserService) SetVerified(ctx context.Context, actor *domain.User, targetID string, verified bool) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func (s *stubUserService) List(ctx context.Context, actor *domain.User, roleFilter string) ([]domain.User, error) {
	return nil, nil
}

var _ ports.UserService = (*stubUserService)(nil)

func TestUserHandler_Me(t *testing.T) {
	h := NewUserHandler(&stubUserService{})

	c, rec := newTestContext(t, http.MethodGet, "/api/users/me", "")
	c.Set(middleware.UserContextKey, &domain.User{ID: "u1", Name: "Asha", Role: domain.RoleGirl})

	if err := h.Me(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	data := decodeEnvelope(t, rec)["data"].(map[string]any)
	if data["id"] != "u1" || data["role"] != "girl" {
		t.Fatalf("unexpected snapshot: %v", data)
	}
}

func TestUserHandler_AssignRole_Success(t *testing.T) {
	svc := &stubUserService{
		assignRoleFn: func(ctx context.Context, actor *domain.User, targetID, rawRole string) (*domain.User, error) {
			if targetID != "u1" || rawRole != "woman" {
				t.Fatalf("unexpected args: %s %s", targetID, rawRole)
			}
			return &domain.User{ID: targetID, Role: domain.RoleWoman}, nil
		},
	}
	h := NewUserHandler(svc)

	c, rec := newTestContext(t, http.MethodPatch, "/api/users/u1", `{"role":"woman"}`)
	c.SetParamNames("id")
	c.SetParamValues("u1")
	c.Set(middleware.UserContextKey, &domain.User{ID: "u1", Role: domain.RoleNone})

	if err := h.AssignRole(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	data := decodeEnvelope(t, rec)["data"].(map[string]any)
	if data["dashboard"] != "/women/dashboard" {
		t.Fatalf("expected woman dashboard, got %v", data["dashboard"])
	}
	user := data["user"].(map[string]any)
	if user["role"] != "woman" {
		t.Fatalf("expected woman role, got %v", user["role"])
	}
}

func TestUserHandler_AssignRole_InvalidRole(t *testing.T) {
	called := false
	svc := &stubUserService{
		assignRoleFn: func(ctx context.Context, actor *domain.User, targetID, rawRole string) (*domain.User, error) {
			called = true
			_, err := domain.ParseRole(rawRole)
			return nil, err
		},
	}
	h := NewUserHandler(svc)

	c, rec := newTestContext(t, http.MethodPatch, "/api/users/u1", `{"role":"superadmin"}`)
	c.SetParamNames("id")
	c.SetParamValues("u1")
	c.Set(middleware.UserContextKey, &domain.User{ID: "u1", Role: domain.RoleNone})

	_ = h.AssignRole(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	resp := decodeEnvelope(t, rec)
	if resp["error"] != "invalid role" {
		t.Fatalf("unexpected error message: %v", resp["error"])
	}
	if !called {
		t.Fatalf("expected service to see the raw role")
	}
}

func TestUserHandler_AssignRole_MissingRole(t *testing.T) {
	svc := &stubUserService{
		assignRoleFn: func(ctx context.Context, actor *domain.User, targetID, rawRole string) (*domain.User, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewUserHandler(svc)

	c, rec := newTestContext(t, http.MethodPatch, "/api/users/u1", `{}`)
	c.SetParamNames("id")
	c.SetParamValues("u1")
	c.Set(middleware.UserContextKey, &domain.User{ID: "u1", Role: domain.RoleNone})

	_ = h.AssignRole(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestUserHandler_AssignRole_NoAuthenticatedUser(t *testing.T) {
	h := NewUserHandler(&stubUserService{})

	c, _ := newTestContext(t, http.MethodPatch, "/api/users/u1", `{"role":"woman"}`)
	c.SetParamNames("id")
	c.SetParamValues("u1")

	if err := h.AssignRole(c); err == nil {
		t.Fatalf("expected 401 error")
	}
}
