package support

import "github.com/mindora/mindora/internal/models"

func category(name string) *string { return &name }

// DefaultArticles статьи, которыми заполняется пустой каталог при старте.
func DefaultArticles() []models.Article {
	return []models.Article{
		{
			Title:    "Deep breathing techniques",
			Content:  "Deep breathing helps reduce stress and anxiety. Try the 4-7-8 technique: breathe in for 4 counts, hold your breath for 7 counts, breathe out for 8 counts. Repeat 4-5 times.",
			Category: category("Relaxation techniques"),
		},
		{
			Title:    "Gratitude practice",
			Content:  "Every day, write down 3 things you are grateful for. It helps shift your attention to the positive sides of life and improves your overall mood.",
			Category: category("Positive thinking"),
		},
		{
			Title:    "Managing anxiety",
			Content:  "When you feel anxious, try the 5-4-3-2-1 technique: name 5 things you can see, 4 you can touch, 3 sounds, 2 smells and 1 taste. It brings you back to the present moment.",
			Category: category("Anxiety management"),
		},
		{
			Title:    "Why sleep matters",
			Content:  "Good sleep is the foundation of mental health. Aim for 7-9 hours a night, keep a regular schedule and build a relaxing bedtime routine.",
			Category: category("Healthy lifestyle"),
		},
		{
			Title:    "Meditation for beginners",
			Content:  "Start with 5 minutes a day. Sit comfortably, close your eyes and focus on your breath. When thoughts pull you away, gently bring your attention back to breathing. Meditation apps can help.",
			Category: category("Relaxation techniques"),
		},
	}
}
