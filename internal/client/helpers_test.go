package client_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/paperless-community/paperless-go/internal/client"
	"github.com/paperless-community/paperless-go/pkg/paperless"
)

// recordingLogger captures log lines for assertions.
type recordingLogger struct {
	mu    sync.Mutex
	lines []string
}

func (l *recordingLogger) Printf(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.lines = append(l.lines, fmt.Sprintf(format, args...))
}

func (l *recordingLogger) all() []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	return append([]string(nil), l.lines...)
}

// requestCounter wraps a handler and counts the requests it served.
type requestCounter struct {
	mu    sync.Mutex
	count int
}

func (c *requestCounter) wrap(handler http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		c.mu.Lock()
		c.count++
		c.mu.Unlock()

		handler.ServeHTTP(writer, request)
	})
}

func (c *requestCounter) total() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.count
}

func writeJSON(t *testing.T, writer http.ResponseWriter, status int, body string) {
	t.Helper()

	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(status)
	_, _ = writer.Write([]byte(body))
}

// newTestClient builds an uninitialized client against the test server.
func newTestClient(t *testing.T, server *httptest.Server) *client.Client {
	t.Helper()

	c, err := client.New(context.Background(), &paperless.Config{
		Endpoint: server.URL,
		Token:    "test-token",
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	return c
}

func listBody(results string, count int) string {
	return fmt.Sprintf(`{"count": %d, "next": null, "previous": null, "all": [], "results": %s}`, count, results)
}
