package domain

import "context"

// RunSummary — итог батч-запуска.
type RunSummary struct {
	OK    int
	Fail  int
	Total int
}

// ProvisionUseCase определяет бизнес-логику провижининга одного пользователя.
type ProvisionUseCase interface {
	ProvisionUser(ctx context.Context, user *User, template *TemplatePhone, target *ProvisioningTarget) bool
}

// BatchUseCase определяет бизнес-логику батч-запуска по всем пользователям.
type BatchUseCase interface {
	Run(ctx context.Context) (*RunSummary, error)
}
