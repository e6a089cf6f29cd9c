package context7

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// TestStartShutdown runs the real listen/serve cycle: Shutdown from
// another goroutine must stop the server cleanly even when it arrives
// before Serve begins accepting.
func TestStartShutdown(t *testing.T) {
	srv := NewServer()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start("127.0.0.1:0")
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, srv.Shutdown(ctx))

	select {
	case err := <-errCh:
		assert.ErrorIs(t, err, http.ErrServerClosed)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after Shutdown")
	}
}

func TestEndpoints(t *testing.T) {
	router := NewServer().Routes()

	tests := []struct {
		name     string
		path     string
		wantBody string
	}{
		{
			name:     "root info",
			path:     "/",
			wantBody: `{"message": "Context7 MCP Service", "version": "0.1.0"}`,
		},
		{
			name:     "health",
			path:     "/health",
			wantBody: `{"status": "healthy", "service": "context7-mcp"}`,
		},
		{
			name:     "capabilities",
			path:     "/mcp/capabilities",
			wantBody: `{"capabilities": ["search", "upload", "index"], "service": "context7-mcp"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}
