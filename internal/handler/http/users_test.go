package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-app-scaffold/internal/service"
	"github.com/MKhiriev/go-app-scaffold/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testUser = models.User{
	ID:           1,
	Username:     "admin",
	Email:        "admin@example.com",
	PasswordHash: "100000:c2FsdA==:a2V5",
	IsActive:     true,
	IsAdmin:      true,
	CreatedAt:    time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
	UpdatedAt:    time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
}

func TestGetUsers(t *testing.T) {
	d := newTestDeps(t)
	d.users.EXPECT().GetUsers(gomock.Any()).Return([]models.User{testUser}, nil)

	rec := d.do(t, http.MethodGet, "/api/users/", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "admin", got[0]["username"])
	assert.NotContains(t, got[0], "password_hash", "hash must never be serialized")
	assert.NotContains(t, rec.Body.String(), testUser.PasswordHash)
}

func TestGetUser(t *testing.T) {
	tests := []struct {
		name       string
		svcErr     error
		wantStatus int
		wantBody   string
	}{
		{name: "found", wantStatus: http.StatusOK},
		{
			name:       "not found",
			svcErr:     fmt.Errorf("%w: id 42", service.ErrUserNotFound),
			wantStatus: http.StatusNotFound,
			wantBody:   `{"error":"User not found"}`,
		},
		{
			name:       "unexpected error",
			svcErr:     errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"Internal Server Error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newTestDeps(t)
			d.users.EXPECT().GetUser(gomock.Any(), int64(42)).Return(testUser, tt.svcErr)

			rec := d.do(t, http.MethodGet, "/api/users/42", "")

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}

func TestCreateUser(t *testing.T) {
	d := newTestDeps(t)

	want := models.CreateUserRequest{
		Username: "carol",
		Email:    "carol@example.com",
		Password: "s3cret-pass",
	}
	created := models.User{ID: 3, Username: "carol", Email: "carol@example.com", IsActive: true}
	d.users.EXPECT().CreateUser(gomock.Any(), want).Return(created, nil)

	rec := d.do(t, http.MethodPost, "/api/users/",
		`{"username":"carol","email":"carol@example.com","password":"s3cret-pass"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "/api/users/3", rec.Header().Get("Location"))

	var got models.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, int64(3), got.ID)
	assert.True(t, got.IsActive)
}

func TestCreateUser_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		svcErr     error
		callSvc    bool
		wantStatus int
		wantBody   string
	}{
		{
			name:       "invalid JSON",
			body:       `{"username":`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "validation failure",
			body:       `{"username":"x"}`,
			callSvc:    true,
			svcErr:     fmt.Errorf("%w: email failed on tag required", service.ErrInvalidDataProvided),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "hashing failure",
			body:       `{"username":"carol","email":"carol@example.com","password":"s3cret-pass"}`,
			callSvc:    true,
			svcErr:     fmt.Errorf("%w: entropy", service.ErrPasswordHashing),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"Failed to hash password"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newTestDeps(t)
			if tt.callSvc {
				d.users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, tt.svcErr)
			}

			rec := d.do(t, http.MethodPost, "/api/users/", tt.body)

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}

func TestUpdateUser(t *testing.T) {
	d := newTestDeps(t)

	email := "new@example.com"
	d.users.EXPECT().
		UpdateUser(gomock.Any(), int64(1), models.UpdateUserRequest{Email: &email}).
		Return(models.User{ID: 1, Email: email}, nil)

	rec := d.do(t, http.MethodPut, "/api/users/1", `{"email":"new@example.com"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), email)
}

func TestUpdateUser_NotFound(t *testing.T) {
	d := newTestDeps(t)
	d.users.EXPECT().UpdateUser(gomock.Any(), int64(99), gomock.Any()).Return(models.User{}, service.ErrUserNotFound)

	rec := d.do(t, http.MethodPut, "/api/users/99", `{}`)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"User not found"}`, rec.Body.String())
}

func TestDeleteUser(t *testing.T) {
	tests := []struct {
		name       string
		svcErr     error
		wantStatus int
	}{
		{name: "deleted", wantStatus: http.StatusNoContent},
		{name: "not found", svcErr: service.ErrUserNotFound, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newTestDeps(t)
			d.users.EXPECT().DeleteUser(gomock.Any(), int64(2)).Return(tt.svcErr)

			rec := d.do(t, http.MethodDelete, "/api/users/2", "")

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusNoContent {
				assert.Empty(t, rec.Body.String())
			}
		})
	}
}
