package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/Baktyiar1/Netflix144p/internal/api/config"
	"github.com/Baktyiar1/Netflix144p/internal/model"
	"github.com/Baktyiar1/Netflix144p/internal/pkg/security"

	"github.com/gin-gonic/gin"
)

type revokedSet map[string]bool

func (s revokedSet) Revoke(_ context.Context, signature string, _ time.Duration) error {
	s[signature] = true
	return nil
}

func (s revokedSet) IsRevoked(_ context.Context, signature string) (bool, error) {
	return s[signature], nil
}

func newAuthRouter(t *testing.T) (*gin.Engine, *security.JWTManager, revokedSet) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	jwt := security.NewJWTManager(config.JWTConfig{Secret: "middleware-secret", Issuer: "test", Expiration: 1})
	store := revokedSet{}

	r := gin.New()
	r.GET("/whoami", AuthMiddleware(jwt, store), func(c *gin.Context) {
		c.String(http.StatusOK, strconv.FormatUint(UserIDFromContext(c.Request.Context()), 10))
	})
	r.GET("/elevated", AuthMiddleware(jwt, store), CheckRoles(model.RoleManager, model.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r, jwt, store
}

func serve(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware_InjectsUserID(t *testing.T) {
	r, jwt, store := newAuthRouter(t)
	token, err := jwt.GenerateToken(42, []string{model.RoleUser})
	if err != nil {
		t.Fatalf("token: %v", err)
	}

	w := serve(r, "/whoami", token)
	if w.Code != http.StatusOK || w.Body.String() != "42" {
		t.Fatalf("whoami = %d %q", w.Code, w.Body.String())
	}

	signature, _ := security.ExtractSignature(token)
	store[signature] = true
	if w = serve(r, "/whoami", token); w.Code != http.StatusUnauthorized {
		t.Errorf("revoked token = %d", w.Code)
	}
}

func TestAuthMiddleware_Rejections(t *testing.T) {
	r, jwt, _ := newAuthRouter(t)
	viewer, _ := jwt.GenerateToken(1, []string{model.RoleUser})
	manager, _ := jwt.GenerateToken(2, []string{model.RoleUser, model.RoleManager})

	tests := []struct {
		name  string
		path  string
		token string
		want  int
	}{
		{"no token", "/whoami", "", http.StatusUnauthorized},
		{"garbage token", "/whoami", "abc", http.StatusUnauthorized},
		{"user on elevated route", "/elevated", viewer, http.StatusForbidden},
		{"manager on elevated route", "/elevated", manager, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if w := serve(r, tt.path, tt.token); w.Code != tt.want {
				t.Errorf("status = %d, want %d", w.Code, tt.want)
			}
		})
	}
}

func TestUserIDFromContext_Missing(t *testing.T) {
	if id := UserIDFromContext(context.Background()); id != 0 {
		t.Errorf("id = %d, want 0", id)
	}
}
