package repository_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"webrtc-provisioner/internal/config"
	"webrtc-provisioner/internal/genesys"

	"github.com/sirupsen/logrus"
)

// newTestClient поднимает фейковый API и возвращает клиент, направленный на него.
func newTestClient(t *testing.T, handler http.Handler) *genesys.Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	cfg := config.Config{
		PageSize:    100,
		HTTPTimeout: 5 * time.Second,
	}

	return genesys.NewClient(server.URL, cfg, "test-token", logger)
}
