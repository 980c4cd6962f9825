package domain

import "context"

// StationState — состояние станции пользователя как его отдает read-path.
// Схема ответа нестабильна, поэтому хранится как есть.
type StationState map[string]any

// Порядок известных форм, в которых read-path отдает id default station.
// Каждый ключ может быть плоской строкой или объектом с полем id.
// TODO: выяснить у платформы, какие из алиасов еще реально отдаются.
var stationIDKeys = []string{
	"defaultStationId",
	"defaultStation",
	"stationId",
	"associatedStationId",
	"associatedStation",
	"station",
}

// HasDefaultStation проверяет, что ожидаемый id станции виден хотя бы
// в одной из известных форм ответа.
func (s StationState) HasDefaultStation(expectedID string) bool {
	if len(s) == 0 || expectedID == "" {
		return false
	}

	for _, key := range stationIDKeys {
		if extractStationID(s[key]) == expectedID {
			return true
		}
	}
	return false
}

func extractStationID(v any) string {
	switch value := v.(type) {
	case string:
		return value
	case map[string]any:
		if id, ok := value["id"].(string); ok {
			return id
		}
	}
	return ""
}

// StationRepository определяет контракт для работы со станциями пользователей.
type StationRepository interface {
	// FindUserStation проверяет привязку WebRTC-станции к пользователю.
	// Возвращает id первой найденной станции.
	FindUserStation(ctx context.Context, userID string) (bool, string, error)
	// GetStationState читает текущее состояние станции пользователя.
	GetStationState(ctx context.Context, userID string) (StationState, error)
	// SetDefaultStation назначает станцию как default station пользователя.
	SetDefaultStation(ctx context.Context, userID, stationID string) error
}
