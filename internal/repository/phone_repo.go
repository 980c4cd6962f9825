package repository

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"webrtc-provisioner/internal/domain"
	"webrtc-provisioner/internal/genesys"
)

const phonesPath = "/api/v2/telephony/providers/edges/phones"

type phoneEntity struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type phoneDetail struct {
	Site              *domain.EntityRef `json:"site"`
	PhoneBaseSettings *domain.EntityRef `json:"phoneBaseSettings"`
	Lines             []struct {
		LineBaseSettings *domain.EntityRef `json:"lineBaseSettings"`
	} `json:"lines"`
}

// PhoneRepository реализует работу с телефонами в Genesys Cloud.
type PhoneRepository struct {
	client *genesys.Client
}

// NewPhoneRepository создает новый экземпляр PhoneRepository.
func NewPhoneRepository(client *genesys.Client) domain.PhoneRepository {
	return &PhoneRepository{client: client}
}

// FindTemplatePhoneID ищет телефон по подстроке имени; первый подходящий выигрывает.
func (r *PhoneRepository) FindTemplatePhoneID(ctx context.Context, nameContains string) (string, error) {
	needle := strings.ToLower(strings.TrimSpace(nameContains))
	if needle == "" {
		return "", fmt.Errorf("%w: empty name filter", domain.ErrTemplatePhoneNotFound)
	}

	for _, e := range genesys.FetchAll[phoneEntity](ctx, r.client, phonesPath) {
		if strings.Contains(strings.ToLower(e.Name), needle) {
			return e.ID, nil
		}
	}

	return "", fmt.Errorf("%w: name contains %q", domain.ErrTemplatePhoneNotFound, nameContains)
}

// GetTemplatePhone возвращает валидированный снимок конфигурации телефона.
func (r *PhoneRepository) GetTemplatePhone(ctx context.Context, phoneID string) (*domain.TemplatePhone, error) {
	var detail phoneDetail
	if err := r.client.GetJSON(ctx, phonesPath+"/"+phoneID, &detail); err != nil {
		return nil, fmt.Errorf("failed to get template phone: %w", err)
	}

	if detail.Site == nil || detail.Site.ID == "" ||
		detail.PhoneBaseSettings == nil || detail.PhoneBaseSettings.ID == "" {
		return nil, domain.ErrTemplateIncomplete
	}
	if len(detail.Lines) == 0 {
		return nil, domain.ErrTemplateNoLines
	}
	line := detail.Lines[0]
	if line.LineBaseSettings == nil || line.LineBaseSettings.ID == "" {
		return nil, domain.ErrTemplateIncomplete
	}

	return &domain.TemplatePhone{
		SiteID:              detail.Site.ID,
		PhoneBaseSettingsID: detail.PhoneBaseSettings.ID,
		LineBaseSettingsID:  line.LineBaseSettings.ID,
	}, nil
}

// CreatePhone создает новый WebRTC-телефон.
func (r *PhoneRepository) CreatePhone(ctx context.Context, payload *domain.PhonePayload) error {
	status, body, err := r.client.Send(ctx, http.MethodPost, phonesPath, payload)
	if err != nil {
		return fmt.Errorf("failed to create phone: %w", err)
	}
	if !genesys.StatusIn(status, http.StatusOK, http.StatusCreated) {
		return genesys.APIError("create phone", status, body)
	}
	return nil
}
