package models

import "time"

// JournalEntry запись дневника. MoodID только ссылка на запись настроения:
// существование не проверяется, после удаления настроения ссылка может «висеть».
type JournalEntry struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Title     *string   `json:"title"`
	Content   string    `json:"content"`
	MoodID    *int64    `json:"mood_id"`
	CreatedAt time.Time `json:"created_at"`
}

// JournalInput данные для создания или полной замены записи дневника.
type JournalInput struct {
	Title   *string `json:"title,omitempty"`
	Content string  `json:"content" validate:"required"`
	MoodID  *int64  `json:"mood_id,omitempty"`
}
