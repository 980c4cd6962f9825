package repository

import (
	"context"

	"webrtc-provisioner/internal/domain"
	"webrtc-provisioner/internal/genesys"
)

const usersPath = "/api/v2/users"

type userEntity struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Department string `json:"department"`
	Title      string `json:"title"`
	State      string `json:"state"`
}

// UserRepository реализует чтение пользователей из Genesys Cloud.
type UserRepository struct {
	client *genesys.Client
}

// NewUserRepository создает новый экземпляр UserRepository.
func NewUserRepository(client *genesys.Client) domain.UserRepository {
	return &UserRepository{client: client}
}

// ListActiveUsers возвращает всех активных пользователей организации.
func (r *UserRepository) ListActiveUsers(ctx context.Context, max int) []*domain.User {
	entities := genesys.FetchAll[userEntity](ctx, r.client, usersPath)

	users := make([]*domain.User, 0, len(entities))
	for _, e := range entities {
		if e.State != "active" {
			continue
		}
		users = append(users, &domain.User{
			ID:         e.ID,
			Name:       e.Name,
			Email:      e.Email,
			Department: e.Department,
			Title:      e.Title,
		})
		if max > 0 && len(users) >= max {
			break
		}
	}

	return users
}
