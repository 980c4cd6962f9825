package domain

import "context"

// TemplatePhone — снимок конфигурации шаблонного телефона,
// из которого клонируются WebRTC-телефоны пользователей.
type TemplatePhone struct {
	SiteID              string
	PhoneBaseSettingsID string
	LineBaseSettingsID  string
}

// EntityRef — ссылка на сущность по id, как её ожидает API.
type EntityRef struct {
	ID string `json:"id"`
}

// PhoneLine — одна линия создаваемого телефона.
type PhoneLine struct {
	LineBaseSettings EntityRef `json:"lineBaseSettings"`
}

// PhonePayload — тело запроса на создание WebRTC-телефона.
type PhonePayload struct {
	Name              string      `json:"name"`
	Site              EntityRef   `json:"site"`
	PhoneBaseSettings EntityRef   `json:"phoneBaseSettings"`
	WebRtcUser        EntityRef   `json:"webRtcUser"`
	Lines             []PhoneLine `json:"lines"`
}

// NewPhonePayload собирает тело создания телефона из шаблона и пользователя.
// Имя телефона детерминировано выводится из имени пользователя.
func NewPhonePayload(template *TemplatePhone, user *User) (*PhonePayload, error) {
	if template == nil || template.SiteID == "" || template.PhoneBaseSettingsID == "" {
		return nil, ErrTemplateIncomplete
	}
	if template.LineBaseSettingsID == "" {
		return nil, ErrTemplateNoLines
	}

	return &PhonePayload{
		Name:              "WebRTC - " + user.Name,
		Site:              EntityRef{ID: template.SiteID},
		PhoneBaseSettings: EntityRef{ID: template.PhoneBaseSettingsID},
		WebRtcUser:        EntityRef{ID: user.ID},
		Lines:             []PhoneLine{{LineBaseSettings: EntityRef{ID: template.LineBaseSettingsID}}},
	}, nil
}

// PhoneRepository определяет контракт для работы с телефонами в директории.
type PhoneRepository interface {
	// FindTemplatePhoneID ищет телефон, имя которого содержит подстроку (без учета регистра).
	FindTemplatePhoneID(ctx context.Context, nameContains string) (string, error)
	// GetTemplatePhone возвращает снимок конфигурации телефона.
	GetTemplatePhone(ctx context.Context, phoneID string) (*TemplatePhone, error)
	// CreatePhone создает новый телефон.
	CreatePhone(ctx context.Context, payload *PhonePayload) error
}
