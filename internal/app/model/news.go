package model

import "time"

// NewsArticle is a magazine entry in the storefront's news section.
// Like the product catalog this is static reference data.
type NewsArticle struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Excerpt     string    `json:"excerpt"`
	Content     string    `json:"content"`
	Image       string    `json:"image"`
	Category    string    `json:"category"`
	Author      string    `json:"author"`
	PublishedAt time.Time `json:"published_at"`
	Views       int       `json:"views"`
	Featured    bool      `json:"featured"`
	Tags        []string  `json:"tags"`
}
