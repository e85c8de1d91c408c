package models

import "time"

// Article статья поддержки. Общая для всех пользователей, только для чтения.
type Article struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Category  *string   `json:"category"`
	CreatedAt time.Time `json:"created_at"`
}
