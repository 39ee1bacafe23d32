package app

import (
	"bytes"
	"os"
	"sync"
	"testing"

	"github.com/vk/kspgrab/internal/config"
)

// SafeBuffer is a thread-safe buffer for capturing output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// SetupAppTest creates an app talking to baseURL with debug logging captured
// in the returned log buffer.
func SetupAppTest(t *testing.T, baseURL string, opts Options) (*App, *SafeBuffer, *SafeBuffer) {
	t.Helper()

	cfg := config.Default()
	cfg.BaseURL = baseURL
	cfg.Log.Level = "debug"
	opts.Config = cfg

	outBuffer := &SafeBuffer{}
	logBuffer := &SafeBuffer{}
	testApp, err := NewApp(outBuffer, logBuffer, opts)
	if err != nil {
		t.Fatalf("failed to create app: %v", err)
	}

	t.Cleanup(func() {
		testApp.Close()
		if os.Getenv("KSPGRAB_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
		}
	})

	return testApp, outBuffer, logBuffer
}
