package model

import "time"

// ScopeAll is the unscoped sentinel of template filters.
const ScopeAll = "all"

// OutreachTemplate is a reusable DM text containing {variable} tokens.
// UsageCount increments on every successful copy action, never decrements.
type OutreachTemplate struct {
	ID      int64  `db:"id" json:"id"`
	Name    string `db:"name" json:"name"`
	Content string `db:"content" json:"content"`

	SeedingType string `db:"seeding_type" json:"seeding_type"`
	ContentType string `db:"content_type" json:"content_type"`
	Brand       string `db:"brand" json:"brand"`

	UsageCount int64 `db:"usage_count" json:"usage_count"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// MatchesScope reports whether the template applies to the given seeding
// type, content type and brand; each filter field set to "all" is unscoped.
func (t OutreachTemplate) MatchesScope(seedingType, contentType, brand string) bool {
	if t.SeedingType != ScopeAll && seedingType != "" && t.SeedingType != seedingType {
		return false
	}
	if t.ContentType != ScopeAll && contentType != "" && t.ContentType != contentType {
		return false
	}
	if t.Brand != ScopeAll && brand != "" && t.Brand != brand {
		return false
	}
	return true
}
