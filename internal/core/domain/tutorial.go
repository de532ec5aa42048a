package domain

import "time"

// Tutorial is an educational content entry, optionally scoped to an
// audience role (empty Audience means visible to everyone).
type Tutorial struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category,omitempty"`
	VideoURL    string    `json:"video_url,omitempty"`
	Audience    Role      `json:"audience,omitempty"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
