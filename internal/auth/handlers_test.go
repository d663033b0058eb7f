package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	repo := newSeededRepo(t)
	sessions := NewSessionStore(repo, 0, false)
	router := gin.New()
	RegisterRoutes(router.Group("/api"), NewHandler(repo, sessions), NewMiddleware(sessions))
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestLoginHandler(t *testing.T) {
	router := newTestRouter(t)

	t.Run("Success", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/auth/login", `{"email":"student@kec.edu","password":"password123"}`, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var resp struct {
			User map[string]interface{} `json:"user"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("Failed to decode body: %v", err)
		}
		if resp.User["email"] != "student@kec.edu" {
			t.Errorf("Unexpected user in response: %+v", resp.User)
		}
		if _, ok := resp.User["password"]; ok {
			t.Error("Password leaked in login response")
		}
		if len(w.Result().Cookies()) == 0 {
			t.Error("Expected a session cookie on login")
		}
	})

	t.Run("CaseInsensitiveEmail", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/auth/login", `{"email":"STUDENT@kec.edu","password":"password123"}`, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d", w.Code)
		}
	})

	t.Run("WrongPassword", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/auth/login", `{"email":"student@kec.edu","password":"nope"}`, nil)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("Expected 401, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "Invalid email or password") {
			t.Errorf("Expected generic auth error, got %s", w.Body.String())
		}
	})

	t.Run("UnknownEmailSameError", func(t *testing.T) {
		// Must not disclose whether the email exists
		w := doJSON(t, router, http.MethodPost, "/api/auth/login", `{"email":"ghost@kec.edu","password":"password123"}`, nil)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("Expected 401, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "Invalid email or password") {
			t.Errorf("Expected generic auth error, got %s", w.Body.String())
		}
	})

	t.Run("MissingFields", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/auth/login", `{"email":"student@kec.edu"}`, nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("Expected 400, got %d", w.Code)
		}
	})
}

func TestRegisterHandler(t *testing.T) {
	router := newTestRouter(t)

	t.Run("Success", func(t *testing.T) {
		body := `{"email":"new@kec.edu","password":"pw","department":"MECH","year":"1","userType":"day_scholar"}`
		w := doJSON(t, router, http.MethodPost, "/api/auth/register", body, nil)
		if w.Code != http.StatusCreated {
			t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var resp struct {
			User map[string]interface{} `json:"user"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("Failed to decode body: %v", err)
		}
		if resp.User["id"] == "" {
			t.Error("Expected assigned id")
		}
		if _, ok := resp.User["password"]; ok {
			t.Error("Password leaked in register response")
		}
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		// Case differs from the seeded account; still a conflict
		body := `{"email":"STUDENT@kec.edu","password":"pw","department":"CSE","year":"3","userType":"hostel"}`
		w := doJSON(t, router, http.MethodPost, "/api/auth/register", body, nil)
		if w.Code != http.StatusConflict {
			t.Fatalf("Expected 409, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "User already exists") {
			t.Errorf("Unexpected error body: %s", w.Body.String())
		}
	})

	t.Run("MissingFields", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/auth/register", `{"email":"x@kec.edu"}`, nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("Expected 400, got %d", w.Code)
		}
	})

	t.Run("InvalidUserType", func(t *testing.T) {
		body := `{"email":"y@kec.edu","password":"pw","department":"CSE","year":"1","userType":"visitor"}`
		w := doJSON(t, router, http.MethodPost, "/api/auth/register", body, nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("Expected 400, got %d", w.Code)
		}
	})
}

func TestSessionFlow(t *testing.T) {
	router := newTestRouter(t)

	t.Run("MeWithoutSession", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/auth/me", "", nil)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("Expected 401, got %d", w.Code)
		}
	})

	t.Run("LoginThenMeThenLogout", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/auth/login", `{"email":"admin@kec.edu","password":"admin123"}`, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("Login failed: %d", w.Code)
		}
		cookies := w.Result().Cookies()

		w = doJSON(t, router, http.MethodGet, "/api/auth/me", "", cookies)
		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200 from /me with session, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "admin@kec.edu") {
			t.Errorf("Unexpected /me body: %s", w.Body.String())
		}

		w = doJSON(t, router, http.MethodGet, "/api/auth/logout", "", cookies)
		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200 from /logout, got %d", w.Code)
		}

		// The session is gone server-side even if the client keeps the cookie
		w = doJSON(t, router, http.MethodGet, "/api/auth/me", "", cookies)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("Expected 401 after logout, got %d", w.Code)
		}
	})
}
