package genesys_test

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"webrtc-provisioner/internal/config"
	"webrtc-provisioner/internal/genesys"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

type thing struct {
	ID string `json:"id"`
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func testConfig() config.Config {
	return config.Config{
		PageSize:    2,
		HTTPTimeout: 5 * time.Second,
	}
}

func TestFetchAll_WalksAllPages(t *testing.T) {
	pages := map[string]string{
		"1": `{"entities":[{"id":"a"},{"id":"b"}],"pageCount":3}`,
		"2": `{"entities":[{"id":"c"}],"pageCount":3}`,
		"3": `{"entities":[{"id":"d"}],"pageCount":3}`,
	}

	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		assert.Equal(t, "2", r.URL.Query().Get("pageSize"))
		fmt.Fprint(w, pages[r.URL.Query().Get("pageNumber")])
	}))
	defer server.Close()

	client := genesys.NewClient(server.URL, testConfig(), "test-token", testLogger())

	entities := genesys.FetchAll[thing](context.Background(), client, "/api/v2/things")

	assert.Equal(t, []thing{{ID: "a"}, {ID: "b"}, {ID: "c"}, {ID: "d"}}, entities)
	assert.Equal(t, "Bearer test-token", gotAuth)
}

func TestFetchAll_SinglePage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"entities":[{"id":"a"}],"pageCount":1}`)
	}))
	defer server.Close()

	client := genesys.NewClient(server.URL, testConfig(), "test-token", testLogger())

	entities := genesys.FetchAll[thing](context.Background(), client, "/api/v2/things")

	assert.Len(t, entities, 1)
}

func TestFetchAll_FailedPageKeepsPartialResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("pageNumber") == "2" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		fmt.Fprint(w, `{"entities":[{"id":"a"},{"id":"b"}],"pageCount":5}`)
	}))
	defer server.Close()

	client := genesys.NewClient(server.URL, testConfig(), "test-token", testLogger())

	entities := genesys.FetchAll[thing](context.Background(), client, "/api/v2/things")

	assert.Equal(t, []thing{{ID: "a"}, {ID: "b"}}, entities)
}

func TestStatusIn(t *testing.T) {
	assert.True(t, genesys.StatusIn(204, 200, 202, 204))
	assert.False(t, genesys.StatusIn(400, 200, 202, 204))
}
