package repository

import (
	"context"
	"fmt"
	"net/http"

	"webrtc-provisioner/internal/domain"
	"webrtc-provisioner/internal/genesys"
)

// StationRepository реализует работу со станциями пользователей в Genesys Cloud.
type StationRepository struct {
	client *genesys.Client
}

// NewStationRepository создает новый экземпляр StationRepository.
func NewStationRepository(client *genesys.Client) domain.StationRepository {
	return &StationRepository{client: client}
}

// FindUserStation проверяет наличие WebRTC-станции, привязанной к пользователю.
func (r *StationRepository) FindUserStation(ctx context.Context, userID string) (bool, string, error) {
	var page struct {
		Entities []domain.EntityRef `json:"entities"`
	}
	if err := r.client.GetJSON(ctx, "/api/v2/stations?webRtcUserId="+userID, &page); err != nil {
		return false, "", fmt.Errorf("failed to look up user station: %w", err)
	}

	if len(page.Entities) == 0 {
		return false, "", nil
	}
	return true, page.Entities[0].ID, nil
}

// GetStationState читает текущее состояние станции пользователя.
func (r *StationRepository) GetStationState(ctx context.Context, userID string) (domain.StationState, error) {
	var state domain.StationState
	if err := r.client.GetJSON(ctx, "/api/v2/users/"+userID+"/station", &state); err != nil {
		return nil, fmt.Errorf("failed to get station state: %w", err)
	}
	return state, nil
}

// SetDefaultStation назначает станцию как default station пользователя.
func (r *StationRepository) SetDefaultStation(ctx context.Context, userID, stationID string) error {
	path := "/api/v2/users/" + userID + "/station/defaultstation/" + stationID
	status, body, err := r.client.Send(ctx, http.MethodPut, path, nil)
	if err != nil {
		return fmt.Errorf("failed to set default station: %w", err)
	}
	if !genesys.StatusIn(status, http.StatusOK, http.StatusAccepted, http.StatusNoContent) {
		return genesys.APIError("set default station", status, body)
	}
	return nil
}
