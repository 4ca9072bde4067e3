package models

import "time"

// Announcement is one entry of the upstream announcements feed, rendered on
// the posts page in feed order.
type Announcement struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Subtitle     string    `json:"subtitle,omitempty"`
	Body         string    `json:"body"`
	AuthorName   string    `json:"author_name"`
	AuthorAvatar string    `json:"author_avatar"`
	CreatedAt    time.Time `json:"created_at"`
}
