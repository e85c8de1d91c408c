package models

import "time"

// Mood запись настроения пользователя.
// Note и Tags опциональны; nil означает отсутствие значения (NULL в хранилище).
type Mood struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Mood      int       `json:"mood"`
	Energy    int       `json:"energy"`
	Note      *string   `json:"note"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"created_at"`
}

// MoodInput данные для создания или полной замены записи настроения.
// При обновлении отсутствующие Note и Tags перезаписываются в NULL.
type MoodInput struct {
	Mood   int      `json:"mood" validate:"required,min=1,max=5"`   // Настроение 1–5
	Energy int      `json:"energy" validate:"required,min=1,max=5"` // Энергия 1–5
	Note   *string  `json:"note,omitempty"`                         // Заметка (опционально)
	Tags   []string `json:"tags,omitempty" validate:"omitempty,max=20,dive,max=64"`
}

// DayStats агрегированная статистика настроения за один календарный день.
type DayStats struct {
	Date      string  `json:"date"` // Дата в формате 2006-01-02 (UTC)
	AvgMood   float64 `json:"avg_mood"`
	AvgEnergy float64 `json:"avg_energy"`
	Count     int     `json:"count"`
}
