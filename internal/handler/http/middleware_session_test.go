package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/prasetyadi/ecosort/models"
)

func getWithCookie(h *Handler, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: token})
	}
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

func TestSession_NoCookieRedirectsToLogin(t *testing.T) {
	h := newTestHandler(sessionAuth("valid", accountIdentity), nil, &mockRecordsService{}, nil)

	protected := []string{"/home", "/classify", "/records", "/admin", "/admin/users", "/admin/records"}
	for _, path := range protected {
		t.Run(path, func(t *testing.T) {
			rec := getWithCookie(h, path, "")

			assert.Equal(t, http.StatusFound, rec.Code)
			assert.Equal(t, "/login", rec.Header().Get("Location"))
		})
	}
}

func TestSession_InvalidCookieClearedAndRedirected(t *testing.T) {
	h := newTestHandler(sessionAuth("valid", accountIdentity), nil, nil, nil)

	rec := getWithCookie(h, "/home", "tampered")

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))

	session := findCookie(rec, sessionCookieName)
	assert.NotNil(t, session)
	assert.Empty(t, session.Value)
	assert.Negative(t, session.MaxAge)
}

func TestSession_ValidCookieReachesHome(t *testing.T) {
	h := newTestHandler(sessionAuth("valid", accountIdentity), nil, nil, nil)

	rec := getWithCookie(h, "/home", "valid")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "budi")
}

func TestAdminOnly_AccountRedirectedHome(t *testing.T) {
	h := newTestHandler(sessionAuth("valid", accountIdentity), nil, nil, &mockAdminService{})

	for _, path := range []string{"/admin", "/admin/users", "/admin/records"} {
		t.Run(path, func(t *testing.T) {
			rec := getWithCookie(h, path, "valid")

			assert.Equal(t, http.StatusFound, rec.Code)
			assert.Equal(t, "/home", rec.Header().Get("Location"))
		})
	}
}

func TestAdminOnly_AdminReachesDashboard(t *testing.T) {
	h := newTestHandler(sessionAuth("valid", adminIdentity), nil, nil, &mockAdminService{})

	rec := getWithCookie(h, "/admin", "valid")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Dashboard Admin")
}

func TestAdminOnly_StoredAdminUsernameIsNotEnough(t *testing.T) {
	// a regular account that happens to be named "admin" stays locked out
	impostor := models.Identity{UserID: 8, Username: "admin", Role: models.RoleAccount}
	h := newTestHandler(sessionAuth("valid", impostor), nil, nil, &mockAdminService{})

	rec := getWithCookie(h, "/admin", "valid")

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/home", rec.Header().Get("Location"))
}
