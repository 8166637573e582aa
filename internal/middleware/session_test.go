package middleware

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/creatorsmela/admin-console/internal/models"
	"github.com/creatorsmela/admin-console/internal/session"
	"github.com/creatorsmela/admin-console/internal/upstream"

	"github.com/gin-gonic/gin"
)

// loggedInStore builds a store with a live session for the given role
func loggedInStore(t *testing.T, role string, suspended int) *session.Store {
	t.Helper()
	profile := fmt.Sprintf(
		`{"user_id":"u1","name":"Asha","email":"asha@example.com","role":"%s","is_suspended":%d}`,
		role, suspended)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login":
			w.Write([]byte(`{"token":"tok"}`))
		case "/users/me":
			w.Write([]byte(profile))
		}
	}))
	t.Cleanup(srv.Close)

	store := session.NewStore(upstream.NewClient(srv.URL, time.Second), session.NewMemoryStorage())
	if _, err := store.Login(context.Background(), "asha@example.com", "secret"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	return store
}

func protectedRouter(store *session.Store, roles ...models.Role) *gin.Engine {
	gin.SetMode(gin.TestMode)
	m := NewSessionMiddleware(store)

	r := gin.New()
	group := r.Group("/", m.RequireSession())
	if len(roles) > 0 {
		group.Use(m.RequireRoles(roles...))
	}
	group.GET("/resource", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user": ContextUser(c).ID})
	})
	return r
}

func request(r *gin.Engine) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/resource", nil)
	r.ServeHTTP(w, req)
	return w
}

func TestRequireSessionWhileLoading(t *testing.T) {
	store := session.NewStore(nil, session.NewMemoryStorage())
	if w := request(protectedRouter(store)); w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 while loading, got %d", w.Code)
	}
}

func TestRequireSessionLoggedOut(t *testing.T) {
	store := loggedInStore(t, "admin", 0)
	store.Logout()

	w := request(protectedRouter(store))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 when logged out, got %d", w.Code)
	}
}

func TestRequireSessionSuspendedAccount(t *testing.T) {
	store := loggedInStore(t, "admin", 1)
	if w := request(protectedRouter(store)); w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for suspended account, got %d", w.Code)
	}
}

func TestRequireSessionSetsContext(t *testing.T) {
	store := loggedInStore(t, "admin", 0)
	w := request(protectedRouter(store))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if w.Body.String() != `{"user":"u1"}` {
		t.Fatalf("unexpected body %s", w.Body.String())
	}
}

func TestRequireRolesAllows(t *testing.T) {
	store := loggedInStore(t, "finance_manager", 0)
	w := request(protectedRouter(store, models.RoleAdmin, models.RoleFinanceManager))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for allowed role, got %d: %s", w.Code, w.Body.String())
	}
}

func TestRequireRolesBlocks(t *testing.T) {
	store := loggedInStore(t, "operation_manager", 0)
	w := request(protectedRouter(store, models.RoleAdmin, models.RoleFinanceManager))
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for blocked role, got %d", w.Code)
	}
}
