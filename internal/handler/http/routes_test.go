package http

import (
	"net/http"
	"testing"

	"github.com/MKhiriev/go-app-scaffold/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestInit_RegistersAllRoutes(t *testing.T) {
	d := newTestDeps(t)

	d.users.EXPECT().GetUsers(gomock.Any()).Return([]models.User{}, nil)
	d.users.EXPECT().GetUser(gomock.Any(), int64(1)).Return(models.User{ID: 1}, nil)
	d.users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{ID: 3}, nil)
	d.users.EXPECT().UpdateUser(gomock.Any(), int64(1), gomock.Any()).Return(models.User{ID: 1}, nil)
	d.users.EXPECT().DeleteUser(gomock.Any(), int64(1)).Return(nil)
	d.items.EXPECT().GetItems(gomock.Any()).Return([]models.Item{}, nil)
	d.items.EXPECT().GetItem(gomock.Any(), int64(1)).Return(models.Item{ID: 1}, nil)
	d.items.EXPECT().CreateItem(gomock.Any(), gomock.Any()).Return(models.Item{ID: 3}, nil)
	d.items.EXPECT().UpdateItem(gomock.Any(), int64(1), gomock.Any()).Return(models.Item{ID: 1}, nil)
	d.items.EXPECT().DeleteItem(gomock.Any(), int64(1)).Return(nil)
	d.passwords.EXPECT().VerifyPassword(gomock.Any(), "pw", "rec").Return(true, nil)

	tests := []struct {
		method string
		path   string
		body   string
		want   int
	}{
		{http.MethodGet, "/api/health", "", http.StatusOK},
		{http.MethodGet, "/api/version", "", http.StatusOK},
		{http.MethodGet, "/api/metrics", "", http.StatusOK},
		{http.MethodGet, "/api/users/", "", http.StatusOK},
		{http.MethodGet, "/api/users/1", "", http.StatusOK},
		{http.MethodPost, "/api/users/", `{"username":"new"}`, http.StatusCreated},
		{http.MethodPut, "/api/users/1", `{}`, http.StatusOK},
		{http.MethodDelete, "/api/users/1", "", http.StatusNoContent},
		{http.MethodGet, "/api/items/", "", http.StatusOK},
		{http.MethodGet, "/api/items/1", "", http.StatusOK},
		{http.MethodPost, "/api/items/", `{"name":"new"}`, http.StatusCreated},
		{http.MethodPut, "/api/items/1", `{}`, http.StatusOK},
		{http.MethodDelete, "/api/items/1", "", http.StatusNoContent},
		{http.MethodPost, "/api/auth/verify", `{"password":"pw","password_hash":"rec"}`, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := d.do(t, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.want, rec.Code, rec.Body.String())
		})
	}
}

func TestInit_UnknownRouteReturns404(t *testing.T) {
	d := newTestDeps(t)

	rec := d.do(t, http.MethodGet, "/api/nonexistent", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Not found"}`, rec.Body.String())
}

func TestInit_WrongMethodReturns404(t *testing.T) {
	d := newTestDeps(t)

	// only GET is registered for the version route
	rec := d.do(t, http.MethodPost, "/api/version", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInit_NonNumericIDReturns404(t *testing.T) {
	d := newTestDeps(t)

	for _, path := range []string{"/api/users/abc", "/api/items/1x", "/api/users/-1"} {
		t.Run(path, func(t *testing.T) {
			rec := d.do(t, http.MethodGet, path, "")
			assert.Equal(t, http.StatusNotFound, rec.Code)
		})
	}
}

func TestInit_TraceIDHeaderIsSet(t *testing.T) {
	d := newTestDeps(t)

	rec := d.do(t, http.MethodGet, "/api/health", "")

	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
}

func TestInit_CORSPreflight(t *testing.T) {
	d := newTestDeps(t)

	tests := []struct {
		name       string
		origin     string
		wantOrigin string
	}{
		{name: "allowed origin", origin: "http://localhost:3000", wantOrigin: "http://localhost:3000"},
		{name: "foreign origin", origin: "http://evil.example", wantOrigin: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := newPreflight("/api/users/", tt.origin)
			rec := serve(d.router, req)

			assert.Equal(t, tt.wantOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
			assert.NotEqual(t, http.StatusUnauthorized, rec.Code, "preflight must not reach the gate")
		})
	}
}

func TestInit_CORSHeadersOnActualRequest(t *testing.T) {
	d := newTestDeps(t)

	req := newPreflight("/api/health", "http://localhost:3000")
	req.Method = http.MethodGet
	req.Header.Del("Access-Control-Request-Method")
	rec := serve(d.router, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
}
