package dashboard

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func authTestRouter(secret string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(NewAuthMiddleware(secret).JWTAuth())
	router.GET("/probe", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return router
}

func TestJWTAuth_DisabledWithoutSecret(t *testing.T) {
	router := authTestRouter("")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected open access with no secret, got %d", w.Code)
	}
}

func TestJWTAuth_MissingHeader(t *testing.T) {
	router := authTestRouter("test-secret")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", w.Code)
	}
}

func TestJWTAuth_ValidToken(t *testing.T) {
	auth := NewAuthMiddleware("test-secret")
	token, err := auth.IssueToken("tester", time.Hour)
	if err != nil {
		t.Fatalf("IssueToken error: %v", err)
	}

	router := authTestRouter("test-secret")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 with valid token, got %d: %s", w.Code, w.Body.String())
	}
}

func TestJWTAuth_RejectsWrongSecret(t *testing.T) {
	other := NewAuthMiddleware("other-secret")
	token, err := other.IssueToken("tester", time.Hour)
	if err != nil {
		t.Fatalf("IssueToken error: %v", err)
	}

	router := authTestRouter("test-secret")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 with foreign token, got %d", w.Code)
	}
}

func TestIssueToken_DisabledAuth(t *testing.T) {
	if _, err := NewAuthMiddleware("").IssueToken("tester", time.Hour); err == nil {
		t.Fatal("expected error issuing token with auth disabled")
	}
}
