package repository

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"webrtc-provisioner/internal/domain"
	"webrtc-provisioner/internal/genesys"
)

const (
	skillsPath    = "/api/v2/routing/skills"
	languagesPath = "/api/v2/routing/languages"
)

type namedEntity struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type capabilityAssignment struct {
	ID          string  `json:"id"`
	Proficiency float64 `json:"proficiency"`
}

// RoutingRepository реализует работу с навыками и языками маршрутизации в Genesys Cloud.
type RoutingRepository struct {
	client *genesys.Client
}

// NewRoutingRepository создает новый экземпляр RoutingRepository.
func NewRoutingRepository(client *genesys.Client) domain.RoutingRepository {
	return &RoutingRepository{client: client}
}

// FindSkillID ищет навык по точному имени.
func (r *RoutingRepository) FindSkillID(ctx context.Context, name string) (string, error) {
	id := r.findByName(ctx, skillsPath, name)
	if id == "" {
		return "", fmt.Errorf("%w: %q", domain.ErrSkillNotFound, name)
	}
	return id, nil
}

// FindLanguageID ищет язык по точному имени.
func (r *RoutingRepository) FindLanguageID(ctx context.Context, name string) (string, error) {
	id := r.findByName(ctx, languagesPath, name)
	if id == "" {
		return "", fmt.Errorf("%w: %q", domain.ErrLanguageNotFound, name)
	}
	return id, nil
}

// findByName ищет сущность по точному имени без учета регистра и краевых пробелов.
func (r *RoutingRepository) findByName(ctx context.Context, path, name string) string {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return ""
	}

	for _, e := range genesys.FetchAll[namedEntity](ctx, r.client, path) {
		if strings.ToLower(strings.TrimSpace(e.Name)) == needle {
			return e.ID
		}
	}
	return ""
}

// UserHasSkill проверяет, назначен ли навык пользователю.
func (r *RoutingRepository) UserHasSkill(ctx context.Context, userID, skillID string) bool {
	return r.hasCapability(ctx, "/api/v2/users/"+userID+"/routingskills", skillID)
}

// UserHasLanguage проверяет, назначен ли язык пользователю.
func (r *RoutingRepository) UserHasLanguage(ctx context.Context, userID, languageID string) bool {
	return r.hasCapability(ctx, "/api/v2/users/"+userID+"/routinglanguages", languageID)
}

func (r *RoutingRepository) hasCapability(ctx context.Context, path, capabilityID string) bool {
	for _, e := range genesys.FetchAll[domain.EntityRef](ctx, r.client, path) {
		if e.ID == capabilityID {
			return true
		}
	}
	return false
}

// AssignSkill назначает навык пользователю через bulk PATCH.
func (r *RoutingRepository) AssignSkill(ctx context.Context, userID, skillID string, proficiency float64) error {
	return r.assignCapability(ctx, "/api/v2/users/"+userID+"/routingskills/bulk", "assign skill", skillID, proficiency)
}

// AssignLanguage назначает язык пользователю через bulk PATCH.
func (r *RoutingRepository) AssignLanguage(ctx context.Context, userID, languageID string, proficiency float64) error {
	return r.assignCapability(ctx, "/api/v2/users/"+userID+"/routinglanguages/bulk", "assign language", languageID, proficiency)
}

func (r *RoutingRepository) assignCapability(ctx context.Context, path, op, capabilityID string, proficiency float64) error {
	body := []capabilityAssignment{{ID: capabilityID, Proficiency: proficiency}}

	status, respBody, err := r.client.Send(ctx, http.MethodPatch, path, body)
	if err != nil {
		return fmt.Errorf("failed to %s: %w", op, err)
	}
	if !genesys.StatusIn(status, http.StatusOK, http.StatusCreated, http.StatusAccepted, http.StatusNoContent) {
		return genesys.APIError(op, status, respBody)
	}
	return nil
}
