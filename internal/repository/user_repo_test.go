package repository_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"webrtc-provisioner/internal/repository"

	"github.com/stretchr/testify/assert"
)

func TestListActiveUsers_FiltersInactive(t *testing.T) {
	repo := repository.NewUserRepository(newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/users", r.URL.Path)
		fmt.Fprint(w, `{"entities":[
			{"id":"u1","name":"Alice","email":"alice@example.com","department":"Support","title":"Agent","state":"active"},
			{"id":"u2","name":"Bob","state":"inactive"},
			{"id":"u3","name":"Carol","state":"active"}
		],"pageCount":1}`)
	})))

	users := repo.ListActiveUsers(context.Background(), 0)

	assert.Len(t, users, 2)
	assert.Equal(t, "u1", users[0].ID)
	assert.Equal(t, "Alice", users[0].Name)
	assert.Equal(t, "alice@example.com", users[0].Email)
	assert.Equal(t, "Support", users[0].Department)
	assert.Equal(t, "u3", users[1].ID)
}

func TestListActiveUsers_MaxCap(t *testing.T) {
	repo := repository.NewUserRepository(newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"entities":[
			{"id":"u1","name":"Alice","state":"active"},
			{"id":"u2","name":"Bob","state":"active"},
			{"id":"u3","name":"Carol","state":"active"}
		],"pageCount":1}`)
	})))

	users := repo.ListActiveUsers(context.Background(), 2)

	assert.Len(t, users, 2)
}

func TestListActiveUsers_FailedFetchGivesEmptyResult(t *testing.T) {
	repo := repository.NewUserRepository(newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})))

	users := repo.ListActiveUsers(context.Background(), 0)

	assert.Empty(t, users)
}
