package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/UtsavYadav1/empowerher/internal/core/domain"
)

type stubSessions struct {
	tokens map[string]string
}

func (s *stubSessions) Create(_ context.Context, token, userID string) error {
	s.tokens[token] = userID
	return nil
}

func (s *stubSessions) Validate(_ context.Context, token string) (string, error) {
	if userID, ok := s.tokens[token]; ok {
		return userID, nil
	}
	return "", domain.ErrSessionNotFound
}

func (s *stubSessions) Delete(_ context.Context, token string) error {
	delete(s.tokens, token)
	return nil
}

type stubUsers struct {
	users map[string]*domain.User
}

func (r *stubUsers) Create(_ context.Context, u *domain.User) (*domain.User, error) { return u, nil }
func (r *stubUsers) FindByPhone(_ context.Context, _ string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}
func (r *stubUsers) FindByEmail(_ context.Context, _ string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}
func (r *stubUsers) UpdateRole(_ context.Context, _ string, _ domain.Role) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}
func (r *stubUsers) SetVerified(_ context.Context, _ string, _ bool) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}
func (r *stubUsers) List(_ context.Context, _ domain.Role) ([]domain.User, error) { return nil, nil }

func (r *stubUsers) FindByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, domain.ErrUserNotFound
}

func authFixture() (*stubSessions, *stubUsers) {
	sessions := &stubSessions{tokens: map[string]string{"tok-1": "user-1"}}
	users := &stubUsers{users: map[string]*domain.User{
		"user-1": {ID: "user-1", Name: "Asha", Role: domain.RoleWoman},
	}}
	return sessions, users
}

func TestAuth_ValidToken(t *testing.T) {
	sessions, users := authFixture()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer tok-1")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Auth(sessions, users)(func(c echo.Context) error {
		called = true
		user, ok := UserFromContext(c)
		if !ok {
			t.Fatalf("user not injected")
		}
		if user.ID != "user-1" || user.Role != domain.RoleWoman {
			t.Fatalf("unexpected user: %+v", user)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestAuth_MissingHeader(t *testing.T) {
	sessions, users := authFixture()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	err := Auth(sessions, users)(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})(c)

	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuth_RevokedTokenRejected(t *testing.T) {
	sessions, users := authFixture()
	_ = sessions.Delete(context.Background(), "tok-1")

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer tok-1")
	c := e.NewContext(req, httptest.NewRecorder())

	err := Auth(sessions, users)(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})(c)

	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for revoked token, got %v", err)
	}
}

func TestAuth_RoleReadFromStoreNotClient(t *testing.T) {
	sessions, users := authFixture()

	// Simulate a server-side role change after the client cached "woman".
	users.users["user-1"].Role = domain.RoleAdmin

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer tok-1")
	// A spoofed role header must be ignored.
	req.Header.Set("X-User-Role", "fieldagent")
	c := e.NewContext(req, httptest.NewRecorder())

	handler := Auth(sessions, users)(func(c echo.Context) error {
		user, _ := UserFromContext(c)
		if user.Role != domain.RoleAdmin {
			t.Fatalf("expected authoritative role admin, got %q", user.Role)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
}
