package domain

import "time"

// Workshop is an event organised by an admin or field agent.
// Capacity 0 means unlimited.
type Workshop struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Village     string    `json:"village,omitempty"`
	Date        time.Time `json:"date"`
	Capacity    int       `json:"capacity"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Registration records a girl's or woman's sign-up for a workshop.
type Registration struct {
	ID         string    `json:"id"`
	WorkshopID string    `json:"workshop_id"`
	UserID     string    `json:"user_id"`
	CreatedAt  time.Time `json:"created_at"`
}
