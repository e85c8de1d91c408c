// Package models содержит доменные структуры сервиса: пользователя, сессию,
// записи настроения и дневника, статьи поддержки, а также типы для приёма
// данных из JSON‑запросов.
package models

import "time"

// User представляет зарегистрированного пользователя системы.
type User struct {
	ID           int64     // Уникальный идентификатор пользователя
	Username     string    // Имя пользователя (уникальное)
	Email        string    // Электронная почта (уникальная)
	PasswordHash string    // Хэш пароля пользователя, наружу не отдаётся
	CreatedAt    time.Time // Дата регистрации
}

// Principal описывает аутентифицированного пользователя в рамках одного запроса.
// Создаётся middleware по cookie-сессии и явно передаётся в сервисы.
type Principal struct {
	UserID    int64
	Username  string
	SessionID string
	ExpiresAt time.Time
}

// Session хранимое представление сессии. Срок жизни абсолютный и
// не продлевается при активности пользователя.
type Session struct {
	UserID    int64     `json:"user_id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}
