package model

import "time"

// News is an operator-published article shown alongside promotions on
// the public news page.
type News struct {
	ID        uint64    `json:"news_id"`    // news.news_id
	Title     string    `json:"title"`      // news.title
	Content   string    `json:"content"`    // news.content
	Category  string    `json:"category"`   // news.category
	CreatedAt time.Time `json:"created_at"` // news.created_at
	UpdatedAt time.Time `json:"updated_at"` // news.updated_at
}
