package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lilfaithontrack/abigail-admin/internal/client/api"
	"github.com/lilfaithontrack/abigail-admin/internal/client/session"
)

func TestCli_runLogin_Success(t *testing.T) {
	ctx := context.Background()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/login", r.URL.Path)

		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "admin@example.com", req["email"])
		assert.Equal(t, "secret123", req["password"])

		fmt.Fprint(w, `{"token": "issued-token"}`)
	}))
	defer server.Close()

	var savedToken, savedEmail string
	sess := &session.SessionMock{
		TokenFunc: func(ctx context.Context) (string, error) { return "", nil },
		SetTokenFunc: func(ctx context.Context, token, email string) error {
			savedToken, savedEmail = token, email
			return nil
		},
	}

	io, buf := newTestIO("admin@example.com")
	apiClient := api.NewClient(server.URL, sess)
	cli := New(io, apiClient, sess, server.URL+"/uploads")

	err := cli.Run(ctx, "login", nil)
	require.NoError(t, err)

	assert.Equal(t, "issued-token", savedToken)
	assert.Equal(t, "admin@example.com", savedEmail)
	assert.Contains(t, buf.String(), "✓ Login successful!")
}

func TestCli_runLogin_InvalidEmail(t *testing.T) {
	ctx := context.Background()

	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer server.Close()

	io, _ := newTestIO("not-an-email")
	cli := newTestCli(server.URL, "", io)

	err := cli.Run(ctx, "login", nil)
	require.Error(t, err)
	assert.Equal(t, 0, requests)
}

func TestCli_runLogin_WrongPassword(t *testing.T) {
	ctx := context.Background()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"message": "Invalid credentials"}`)
	}))
	defer server.Close()

	saveCalls := 0
	sess := &session.SessionMock{
		TokenFunc: func(ctx context.Context) (string, error) { return "", nil },
		SetTokenFunc: func(ctx context.Context, token, email string) error {
			saveCalls++
			return nil
		},
	}

	io, _ := newTestIO("admin@example.com")
	apiClient := api.NewClient(server.URL, sess)
	cli := New(io, apiClient, sess, server.URL+"/uploads")

	err := cli.Run(ctx, "login", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid credentials")
	assert.Equal(t, 0, saveCalls)
}

func TestCli_runLogin_EmptyToken(t *testing.T) {
	ctx := context.Background()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"message": "ok"}`)
	}))
	defer server.Close()

	io, _ := newTestIO("admin@example.com")
	cli := newTestCli(server.URL, "", io)

	err := cli.Run(ctx, "login", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no token")
}

func TestCli_runLogout(t *testing.T) {
	ctx := context.Background()

	cleared := false
	sess := &session.SessionMock{
		TokenFunc: func(ctx context.Context) (string, error) { return "", nil },
		ClearTokenFunc: func(ctx context.Context) error {
			cleared = true
			return nil
		},
	}

	io, buf := newTestIO()
	apiClient := api.NewClient("http://localhost:0", sess)
	cli := New(io, apiClient, sess, "http://localhost:0/uploads")

	err := cli.Run(ctx, "logout", nil)
	require.NoError(t, err)

	assert.True(t, cleared)
	assert.Contains(t, buf.String(), "✓ Logout successful!")
}

func TestCli_runStatus_NotAuthenticated(t *testing.T) {
	ctx := context.Background()

	sess := &session.SessionMock{
		TokenFunc: func(ctx context.Context) (string, error) { return "", nil },
		IsAuthenticatedFunc: func(ctx context.Context) (bool, error) {
			return false, nil
		},
	}

	io, buf := newTestIO()
	apiClient := api.NewClient("http://localhost:0", sess)
	cli := New(io, apiClient, sess, "http://localhost:0/uploads")

	err := cli.Run(ctx, "status", nil)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "Status: Not authenticated")
	assert.Contains(t, buf.String(), "abigail-admin login")
}

func TestCli_runStatus_Authenticated(t *testing.T) {
	ctx := context.Background()

	savedAt := time.Now().Add(-time.Hour)
	sess := &session.SessionMock{
		TokenFunc: func(ctx context.Context) (string, error) { return "tok", nil },
		IsAuthenticatedFunc: func(ctx context.Context) (bool, error) {
			return true, nil
		},
		InfoFunc: func(ctx context.Context) (*session.Info, error) {
			return &session.Info{
				Email:   "admin@example.com",
				SavedAt: savedAt,
			}, nil
		},
	}

	io, buf := newTestIO()
	apiClient := api.NewClient("http://localhost:0", sess)
	cli := New(io, apiClient, sess, "http://localhost:0/uploads")

	err := cli.Run(ctx, "status", nil)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Status: Authenticated")
	assert.Contains(t, out, "admin@example.com")
	// Для непрозрачного токена срок действия не показывается
	assert.NotContains(t, out, "Token expires")
}

func TestCli_runDashboard(t *testing.T) {
	ctx := context.Background()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/blogs":
			fmt.Fprint(w, `[
				{"_id": "b1", "title": "A", "author": "x", "status": "published"},
				{"_id": "b2", "title": "B", "author": "x", "status": "draft"},
				{"_id": "b3", "title": "C", "author": "x", "status": "published"}
			]`)
		case "/service":
			fmt.Fprint(w, `{"data": [
				{"_id": "s1", "title": "Deep Clean", "description": "d", "status": "active"},
				{"_id": "s2", "title": "Retired", "description": "d", "status": "inactive"}
			]}`)
		default:
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
	}))
	defer server.Close()

	io, buf := newTestIO()
	cli := newTestCli(server.URL, "", io)

	err := cli.Run(ctx, "dashboard", nil)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Blog posts: 3 total, 2 published")
	assert.Contains(t, out, "Services:   2 total, 1 active")
	assert.Contains(t, out, "Recent blog posts:")
}
