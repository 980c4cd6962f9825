package domain

import "context"

// ProvisioningTarget — целевые навык и язык, разрешенные один раз на запуск
// и переиспользуемые для каждого пользователя.
type ProvisioningTarget struct {
	SkillID             string
	SkillProficiency    float64
	LanguageID          string
	LanguageProficiency float64
}

// RoutingRepository определяет контракт для работы с навыками и языками маршрутизации.
type RoutingRepository interface {
	// FindSkillID ищет навык по точному имени (без учета регистра и пробелов по краям).
	FindSkillID(ctx context.Context, name string) (string, error)
	// FindLanguageID ищет язык по точному имени (без учета регистра и пробелов по краям).
	FindLanguageID(ctx context.Context, name string) (string, error)
	// UserHasSkill проверяет, назначен ли навык пользователю.
	// Недоступность списка трактуется как отсутствие назначения.
	UserHasSkill(ctx context.Context, userID, skillID string) bool
	// UserHasLanguage проверяет, назначен ли язык пользователю.
	UserHasLanguage(ctx context.Context, userID, languageID string) bool
	// AssignSkill назначает навык с заданным proficiency (bulk PATCH).
	AssignSkill(ctx context.Context, userID, skillID string, proficiency float64) error
	// AssignLanguage назначает язык с заданным proficiency (bulk PATCH).
	AssignLanguage(ctx context.Context, userID, languageID string, proficiency float64) error
}
