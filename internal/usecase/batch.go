package usecase

import (
	"context"
	"fmt"

	"webrtc-provisioner/internal/config"
	"webrtc-provisioner/internal/domain"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	scanProgressEvery      = 50
	provisionProgressEvery = 25
)

// BatchUseCase реализует батч-запуск провижининга по всем активным пользователям.
type BatchUseCase struct {
	users     domain.UserRepository
	phones    domain.PhoneRepository
	stations  domain.StationRepository
	routing   domain.RoutingRepository
	provision domain.ProvisionUseCase
	cfg       config.Config
	logger    *logrus.Logger
}

// NewBatchUseCase создает новый экземпляр BatchUseCase.
func NewBatchUseCase(
	users domain.UserRepository,
	phones domain.PhoneRepository,
	stations domain.StationRepository,
	routing domain.RoutingRepository,
	provision domain.ProvisionUseCase,
	cfg config.Config,
	logger *logrus.Logger,
) domain.BatchUseCase {
	return &BatchUseCase{
		users:     users,
		phones:    phones,
		stations:  stations,
		routing:   routing,
		provision: provision,
		cfg:       cfg,
		logger:    logger,
	}
}

// Run выполняет полный цикл сверки: разрешение целей, фильтрация
// пользователей без станции и провижининг каждого из них.
func (uc *BatchUseCase) Run(ctx context.Context) (*domain.RunSummary, error) {
	log := uc.logger.WithField("run_id", uuid.NewString())

	// 1. Разрешаем целевые сущности; любой отказ фатален для запуска
	target, template, err := uc.resolveTargets(ctx)
	if err != nil {
		return nil, err
	}
	log.WithFields(logrus.Fields{
		"skill_id":    target.SkillID,
		"language_id": target.LanguageID,
	}).Info("Provisioning targets resolved")

	// 2. Все активные пользователи
	users := uc.users.ListActiveUsers(ctx, uc.cfg.MaxUsers)
	log.WithField("count", len(users)).Info("Active users fetched")

	// 3. Оставляем только пользователей без привязанной станции
	pending := uc.usersWithoutStation(ctx, log, users)
	log.WithField("count", len(pending)).Info("Users without WebRTC station")

	if len(pending) == 0 {
		log.Info("Nothing to do")
		return &domain.RunSummary{}, nil
	}

	// 4. Fold по пользователям: сбой одного не прерывает батч
	summary := &domain.RunSummary{Total: len(pending)}
	for idx, user := range pending {
		if uc.provisionSafely(ctx, log, user, template, target) {
			summary.OK++
		} else {
			summary.Fail++
		}

		if (idx+1)%provisionProgressEvery == 0 {
			log.WithFields(logrus.Fields{
				"processed": idx + 1,
				"total":     summary.Total,
				"ok":        summary.OK,
				"fail":      summary.Fail,
			}).Info("Provision progress")
		}
	}

	return summary, nil
}

// resolveTargets разрешает навык, язык и шаблонный телефон один раз на запуск.
func (uc *BatchUseCase) resolveTargets(ctx context.Context) (*domain.ProvisioningTarget, *domain.TemplatePhone, error) {
	skillID, err := uc.routing.FindSkillID(ctx, uc.cfg.TargetSkillName)
	if err != nil {
		return nil, nil, err
	}

	languageID, err := uc.routing.FindLanguageID(ctx, uc.cfg.TargetLanguageName)
	if err != nil {
		return nil, nil, err
	}

	templateID, err := uc.phones.FindTemplatePhoneID(ctx, uc.cfg.TemplatePhoneNameContains)
	if err != nil {
		return nil, nil, err
	}

	template, err := uc.phones.GetTemplatePhone(ctx, templateID)
	if err != nil {
		return nil, nil, fmt.Errorf("template phone %s: %w", templateID, err)
	}

	target := &domain.ProvisioningTarget{
		SkillID:             skillID,
		SkillProficiency:    uc.cfg.TargetSkillProficiency,
		LanguageID:          languageID,
		LanguageProficiency: uc.cfg.TargetLanguageProficiency,
	}
	return target, template, nil
}

// usersWithoutStation сканирует пользователей и оставляет тех, у кого
// нет привязанной WebRTC-станции.
func (uc *BatchUseCase) usersWithoutStation(ctx context.Context, log *logrus.Entry, users []*domain.User) []*domain.User {
	var result []*domain.User

	for idx, user := range users {
		found, _, err := uc.stations.FindUserStation(ctx, user.ID)
		if err != nil {
			// Недоступный lookup трактуем как отсутствие станции
			log.WithError(err).WithField("user_id", user.ID).Warn("Station lookup failed")
		}
		if !found {
			result = append(result, user)
		}

		if (idx+1)%scanProgressEvery == 0 {
			log.WithFields(logrus.Fields{
				"scanned": idx + 1,
				"total":   len(users),
				"without": len(result),
			}).Info("Station scan progress")
		}
	}

	return result
}

// provisionSafely изолирует сбой одного пользователя от остального батча.
func (uc *BatchUseCase) provisionSafely(ctx context.Context, log *logrus.Entry, user *domain.User, template *domain.TemplatePhone, target *domain.ProvisioningTarget) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			log.WithFields(logrus.Fields{
				"user_id": user.ID,
				"panic":   r,
			}).Error("Unhandled error during user provisioning")
			ok = false
		}
	}()

	return uc.provision.ProvisionUser(ctx, user, template, target)
}
