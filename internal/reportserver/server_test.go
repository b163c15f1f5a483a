package reportserver

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"edleval/internal/testutil"
)

func freeAddr(t *testing.T) string {
	t.Helper()
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := listener.Addr().String()
	require.NoError(t, listener.Close())
	return addr
}

func TestServeValidatesConfig(t *testing.T) {
	assert.Error(t, Serve(context.Background(), Config{Dir: t.TempDir()}))
	assert.Error(t, Serve(context.Background(), Config{Addr: "127.0.0.1:0"}))
}

// TestServeShutsDownOnCancel starts a real listener, waits for it to answer
// and checks that cancelling the context stops it cleanly.
func TestServeShutsDownOnCancel(t *testing.T) {
	root := t.TempDir()
	writeRun(t, root, "es", "run-1", "")
	addr := freeAddr(t)

	ctx, cancel := context.WithCancel(testutil.Context(t, 10*time.Second))
	done := make(chan error, 1)
	go func() {
		done <- Serve(ctx, Config{Addr: addr, Dir: root})
	}()

	testutil.Eventually(t, 5*time.Second, 20*time.Millisecond, func() bool {
		resp, err := http.Get("http://" + addr + "/api/runs")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, "report server did not start")

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatalf("server did not shut down")
	}
}
