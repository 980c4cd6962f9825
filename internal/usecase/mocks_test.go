package usecase_test

import (
	"context"

	"webrtc-provisioner/internal/domain"

	"github.com/stretchr/testify/mock"
)

type UserRepositoryMock struct{ mock.Mock }

func (m *UserRepositoryMock) ListActiveUsers(ctx context.Context, max int) []*domain.User {
	args := m.Called(ctx, max)
	return args.Get(0).([]*domain.User)
}

type PhoneRepositoryMock struct{ mock.Mock }

func (m *PhoneRepositoryMock) FindTemplatePhoneID(ctx context.Context, nameContains string) (string, error) {
	args := m.Called(ctx, nameContains)
	return args.String(0), args.Error(1)
}

func (m *PhoneRepositoryMock) GetTemplatePhone(ctx context.Context, phoneID string) (*domain.TemplatePhone, error) {
	args := m.Called(ctx, phoneID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TemplatePhone), args.Error(1)
}

func (m *PhoneRepositoryMock) CreatePhone(ctx context.Context, payload *domain.PhonePayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

type StationRepositoryMock struct{ mock.Mock }

func (m *StationRepositoryMock) FindUserStation(ctx context.Context, userID string) (bool, string, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.String(1), args.Error(2)
}

func (m *StationRepositoryMock) GetStationState(ctx context.Context, userID string) (domain.StationState, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.StationState), args.Error(1)
}

func (m *StationRepositoryMock) SetDefaultStation(ctx context.Context, userID, stationID string) error {
	args := m.Called(ctx, userID, stationID)
	return args.Error(0)
}

type RoutingRepositoryMock struct{ mock.Mock }

func (m *RoutingRepositoryMock) FindSkillID(ctx context.Context, name string) (string, error) {
	args := m.Called(ctx, name)
	return args.String(0), args.Error(1)
}

func (m *RoutingRepositoryMock) FindLanguageID(ctx context.Context, name string) (string, error) {
	args := m.Called(ctx, name)
	return args.String(0), args.Error(1)
}

func (m *RoutingRepositoryMock) UserHasSkill(ctx context.Context, userID, skillID string) bool {
	args := m.Called(ctx, userID, skillID)
	return args.Bool(0)
}

func (m *RoutingRepositoryMock) UserHasLanguage(ctx context.Context, userID, languageID string) bool {
	args := m.Called(ctx, userID, languageID)
	return args.Bool(0)
}

func (m *RoutingRepositoryMock) AssignSkill(ctx context.Context, userID, skillID string, proficiency float64) error {
	args := m.Called(ctx, userID, skillID, proficiency)
	return args.Error(0)
}

func (m *RoutingRepositoryMock) AssignLanguage(ctx context.Context, userID, languageID string, proficiency float64) error {
	args := m.Called(ctx, userID, languageID, proficiency)
	return args.Error(0)
}

type ProvisionUseCaseMock struct{ mock.Mock }

func (m *ProvisionUseCaseMock) ProvisionUser(ctx context.Context, user *domain.User, template *domain.TemplatePhone, target *domain.ProvisioningTarget) bool {
	args := m.Called(ctx, user, template, target)
	return args.Bool(0)
}
