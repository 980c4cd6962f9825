package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"webrtc-provisioner/internal/domain"

	"github.com/joho/godotenv"
)

// Config хранит всю конфигурацию запуска, собранную один раз при старте.
// Компоненты получают её по ссылке и не читают окружение напрямую.
type Config struct {
	// Environment — регион Genesys Cloud (например mypurecloud.de).
	Environment string
	// ClientID и ClientSecret — OAuth client credentials.
	ClientID     string
	ClientSecret string

	// TemplatePhoneNameContains — подстрока имени шаблонного телефона (без учета регистра).
	TemplatePhoneNameContains string

	// TargetSkillName и TargetLanguageName — точные имена навыка и языка маршрутизации.
	TargetSkillName    string
	TargetLanguageName string

	// Проставляемые proficiency; передаются в API как есть, без валидации диапазона.
	TargetSkillProficiency    float64
	TargetLanguageProficiency float64

	// PageSize — размер страницы для всех постраничных запросов.
	PageSize int

	// RequestDelay — фиксированная пауза между запросами к API.
	RequestDelay time.Duration
	// HTTPTimeout — таймаут одного HTTP-запроса.
	HTTPTimeout time.Duration

	// Ожидание привязки станции после создания телефона.
	StationSettleDelay  time.Duration
	StationWaitRetries  int
	StationWaitInterval time.Duration

	// Верификация default station после PUT.
	DefaultStationVerifyRetries  int
	DefaultStationVerifyInterval time.Duration

	// MaxUsers — ограничение числа обрабатываемых пользователей (0 = без лимита).
	MaxUsers int
}

// LoadConfig загружает .env (если есть) и собирает Config из переменных окружения.
func LoadConfig() (Config, error) {

	err := godotenv.Load()

	return Config{
		Environment:  getEnv("GENESYS_ENVIRONMENT", "mypurecloud.de"),
		ClientID:     getEnv("GENESYS_CLIENT_ID", ""),
		ClientSecret: getEnv("GENESYS_CLIENT_SECRET", ""),

		TemplatePhoneNameContains: getEnv("TEMPLATE_PHONE_NAME_CONTAINS", "WebRTC - Genesys Test User 1"),

		TargetSkillName:    getEnv("TARGET_SKILL_NAME", "_Voice"),
		TargetLanguageName: getEnv("TARGET_LANGUAGE_NAME", "Nederlands"),

		TargetSkillProficiency:    getFloatEnv("TARGET_SKILL_PROFICIENCY", 0),
		TargetLanguageProficiency: getFloatEnv("TARGET_LANGUAGE_PROFICIENCY", 0),

		PageSize: getIntEnv("PAGE_SIZE", 100),

		RequestDelay: getDurationEnv("REQUEST_DELAY", 200*time.Millisecond),
		HTTPTimeout:  getDurationEnv("HTTP_TIMEOUT", 30*time.Second),

		StationSettleDelay:  getDurationEnv("STATION_SETTLE_DELAY", 600*time.Millisecond),
		StationWaitRetries:  getIntEnv("STATION_WAIT_RETRIES", 6),
		StationWaitInterval: getDurationEnv("STATION_WAIT_INTERVAL", 700*time.Millisecond),

		DefaultStationVerifyRetries:  getIntEnv("DEFAULT_STATION_VERIFY_RETRIES", 8),
		DefaultStationVerifyInterval: getDurationEnv("DEFAULT_STATION_VERIFY_SLEEP", 600*time.Millisecond),

		MaxUsers: getIntEnv("MAX_USERS", 0),
	}, err
}

// Validate проверяет обязательные поля. Отсутствие учетных данных — фатальная ошибка запуска.
func (c Config) Validate() error {
	if c.ClientID == "" || c.ClientSecret == "" {
		return fmt.Errorf("%w: GENESYS_CLIENT_ID and GENESYS_CLIENT_SECRET must be set", domain.ErrMissingCredentials)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

// getDurationEnv принимает Go-длительности ("600ms") и голые секунды ("0.6").
func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if f, err := strconv.ParseFloat(value, 64); err == nil {
		return time.Duration(f * float64(time.Second))
	}
	return defaultValue
}
