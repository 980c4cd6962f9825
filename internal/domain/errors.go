package domain

import "errors"

// Domain errors (для бизнес-логики)
var (
	// Fatal errors — прерывают весь запуск до первой мутации
	ErrMissingCredentials    = errors.New("missing client credentials")
	ErrAuthFailed            = errors.New("authentication failed")
	ErrSkillNotFound         = errors.New("routing skill not found")
	ErrLanguageNotFound      = errors.New("routing language not found")
	ErrTemplatePhoneNotFound = errors.New("template phone not found")

	// Template errors
	ErrTemplateNoLines    = errors.New("template phone has no lines")
	ErrTemplateIncomplete = errors.New("template phone configuration incomplete")

	// Soft errors — логируются, но не валят пользователя
	ErrStationNotAssociated     = errors.New("station not associated within poll bound")
	ErrDefaultStationUnverified = errors.New("default station accepted but not verified")
)
