package domain

import "context"

// User представляет активного пользователя организации.
// Снимок на момент запуска; между запусками ничего не кэшируется.
type User struct {
	ID         string
	Name       string
	Email      string
	Department string
	Title      string
}

// UserRepository определяет контракт для чтения пользователей из директории.
type UserRepository interface {
	// ListActiveUsers возвращает всех активных пользователей постранично.
	// Недоступная страница дает частичный результат, не ошибку.
	// max > 0 ограничивает размер результата.
	ListActiveUsers(ctx context.Context, max int) []*User
}
