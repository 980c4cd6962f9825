package usecase

import (
	"context"
	"time"

	"webrtc-provisioner/internal/config"
	"webrtc-provisioner/internal/domain"

	"github.com/sethvargo/go-retry"
	"github.com/sirupsen/logrus"
)

// ProvisionUseCase реализует провижининг одного пользователя:
// создание WebRTC-телефона, ожидание привязки станции, назначение
// default station и целевых навыка и языка.
type ProvisionUseCase struct {
	phones   domain.PhoneRepository
	stations domain.StationRepository
	routing  domain.RoutingRepository
	cfg      config.Config
	logger   *logrus.Logger
}

// NewProvisionUseCase создает новый экземпляр ProvisionUseCase.
func NewProvisionUseCase(
	phones domain.PhoneRepository,
	stations domain.StationRepository,
	routing domain.RoutingRepository,
	cfg config.Config,
	logger *logrus.Logger,
) domain.ProvisionUseCase {
	return &ProvisionUseCase{
		phones:   phones,
		stations: stations,
		routing:  routing,
		cfg:      cfg,
		logger:   logger,
	}
}

// ProvisionUser выполняет полный цикл провижининга пользователя.
// Успех = телефон создан И навык и язык назначены; неподтвержденная
// default station результат не портит.
func (uc *ProvisionUseCase) ProvisionUser(ctx context.Context, user *domain.User, template *domain.TemplatePhone, target *domain.ProvisioningTarget) bool {
	log := uc.logger.WithFields(logrus.Fields{
		"user_id":   user.ID,
		"user_name": user.Name,
	})

	// 1. Собираем payload до любых сетевых мутаций
	payload, err := domain.NewPhonePayload(template, user)
	if err != nil {
		log.WithError(err).Error("Failed to build phone payload")
		return false
	}

	// 2. Создаем телефон; отказ — сбой этого пользователя
	if err := uc.phones.CreatePhone(ctx, payload); err != nil {
		log.WithError(err).Error("WebRTC phone create failed")
		return false
	}
	log.Info("WebRTC phone created")

	// 3. Привязка станции происходит асинхронно: ограниченный опрос.
	// Таймаут не валит пользователя, остальные шаги все равно выполняются.
	stationID, err := uc.waitForStation(ctx, user.ID)
	if err != nil {
		log.WithError(err).Warn("Station association not observed, continuing")
	} else {
		// 4. Назначаем default station и верифицируем опросом
		uc.setDefaultStation(ctx, log, user.ID, stationID)
	}

	// 5. Навык и язык назначаются идемпотентно; пробуем оба даже при сбое одного
	skillOK := uc.ensureSkill(ctx, log, user.ID, target)
	languageOK := uc.ensureLanguage(ctx, log, user.ID, target)

	return skillOK && languageOK
}

// waitForStation ждет, пока созданная станция станет видимой на пользователе.
func (uc *ProvisionUseCase) waitForStation(ctx context.Context, userID string) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-time.After(uc.cfg.StationSettleDelay):
	}

	var stationID string
	backoff := retry.WithMaxRetries(uint64(uc.cfg.StationWaitRetries), retry.NewConstant(uc.cfg.StationWaitInterval))

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		found, id, err := uc.stations.FindUserStation(ctx, userID)
		if err != nil {
			return retry.RetryableError(err)
		}
		if !found || id == "" {
			return retry.RetryableError(domain.ErrStationNotAssociated)
		}
		stationID = id
		return nil
	})
	if err != nil {
		return "", err
	}

	return stationID, nil
}

// setDefaultStation выполняет PUT и верифицирует сходимость read-path.
// Принятая, но неверифицированная мутация — мягкое предупреждение.
func (uc *ProvisionUseCase) setDefaultStation(ctx context.Context, log *logrus.Entry, userID, stationID string) {
	if err := uc.stations.SetDefaultStation(ctx, userID, stationID); err != nil {
		log.WithError(err).Warn("Default station PUT failed")
		return
	}

	backoff := retry.WithMaxRetries(uint64(uc.cfg.DefaultStationVerifyRetries), retry.NewConstant(uc.cfg.DefaultStationVerifyInterval))

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		state, err := uc.stations.GetStationState(ctx, userID)
		if err != nil {
			return retry.RetryableError(err)
		}
		if !state.HasDefaultStation(stationID) {
			return retry.RetryableError(domain.ErrDefaultStationUnverified)
		}
		return nil
	})
	if err != nil {
		// PUT не был отклонен, поэтому мутация считается принятой
		log.WithField("station_id", stationID).Warn("Default station accepted but not verified")
		return
	}

	log.WithField("station_id", stationID).Info("Default station set")
}

// ensureSkill идемпотентно назначает целевой навык.
func (uc *ProvisionUseCase) ensureSkill(ctx context.Context, log *logrus.Entry, userID string, target *domain.ProvisioningTarget) bool {
	if uc.routing.UserHasSkill(ctx, userID, target.SkillID) {
		return true
	}

	if err := uc.routing.AssignSkill(ctx, userID, target.SkillID, target.SkillProficiency); err != nil {
		log.WithError(err).Error("Skill assign failed")
		return false
	}
	return true
}

// ensureLanguage идемпотентно назначает целевой язык.
func (uc *ProvisionUseCase) ensureLanguage(ctx context.Context, log *logrus.Entry, userID string, target *domain.ProvisioningTarget) bool {
	if uc.routing.UserHasLanguage(ctx, userID, target.LanguageID) {
		return true
	}

	if err := uc.routing.AssignLanguage(ctx, userID, target.LanguageID, target.LanguageProficiency); err != nil {
		log.WithError(err).Error("Language assign failed")
		return false
	}
	return true
}
