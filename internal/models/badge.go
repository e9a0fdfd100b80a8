package models

// Badge is a server-defined achievement and the current user's earned status
type Badge struct {
	// Code is the stable identifier of the achievement
	Code string `json:"code" yaml:"code" validate:"required"`

	// Title is the display name of the badge
	Title string `json:"title" yaml:"title" validate:"required"`

	// Description explains how the badge is earned
	Description string `json:"description" yaml:"description"`

	// Icon is an emoji or image URL shown with the badge
	Icon string `json:"icon" yaml:"icon"`

	// Earned is true once the user satisfied the badge condition
	Earned bool `json:"earned" yaml:"earned"`

	// EarnedAt is the server timestamp of the earn event, kept verbatim.
	// A locked badge never carries one.
	EarnedAt *string `json:"earnedAt,omitempty" yaml:"earnedAt,omitempty" validate:"excluded_if=Earned false"`
}

// IsAnnounceable reports whether the badge is earned and carries an earn timestamp
func (b *Badge) IsAnnounceable() bool {
	return b != nil && b.Earned && b.EarnedAt != nil && *b.EarnedAt != ""
}

// EarnedAtValue returns the earn timestamp or an empty string
func (b *Badge) EarnedAtValue() string {
	if b == nil || b.EarnedAt == nil {
		return ""
	}
	return *b.EarnedAt
}

// SeenBadges maps a badge code to the earnedAt value already shown to the user
type SeenBadges map[string]string

// Clone returns a copy that can be modified without touching the receiver
func (s SeenBadges) Clone() SeenBadges {
	out := make(SeenBadges, len(s))
	for code, earnedAt := range s {
		out[code] = earnedAt
	}
	return out
}

// HasSeen reports whether the badge's current earn event was already surfaced
func (s SeenBadges) HasSeen(b *Badge) bool {
	seenAt, ok := s[b.Code]
	return ok && seenAt == b.EarnedAtValue()
}
