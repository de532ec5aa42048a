package domain

import "time"

// SchemeCategory groups government schemes for discovery filtering.
type SchemeCategory string

const (
	SchemeEducation  SchemeCategory = "education"
	SchemeFinance    SchemeCategory = "finance"
	SchemeHealth     SchemeCategory = "health"
	SchemeLivelihood SchemeCategory = "livelihood"
)

// ParseSchemeCategory validates a user-supplied category string.
func ParseSchemeCategory(s string) (SchemeCategory, bool) {
	switch SchemeCategory(s) {
	case SchemeEducation, SchemeFinance, SchemeHealth, SchemeLivelihood:
		return SchemeCategory(s), true
	}
	return "", false
}

// Scheme is a government scheme or finance programme surfaced for discovery.
type Scheme struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Category    SchemeCategory `json:"category"`
	Eligibility string         `json:"eligibility,omitempty"`
	ApplyURL    string         `json:"apply_url,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}
