package models

// RankGroup is a group of friends ranked by savings
type RankGroup struct {
	// ID is the server identifier of the group
	ID int64 `json:"id" yaml:"id"`

	// Name is the display name of the group
	Name string `json:"name" yaml:"name"`
}

// LeaderRow is one member's standing inside a rank group
type LeaderRow struct {
	// UserID is the member's user identifier
	UserID int64 `json:"userId" yaml:"userId"`

	// Name is the member's display name
	Name string `json:"name" yaml:"name"`

	// Total is everything the member has saved
	Total int64 `json:"total" yaml:"total"`

	// Last30d is what the member saved in the last 30 days
	Last30d int64 `json:"last30d" yaml:"last30d"`
}

// RankGroupDetail is a group with its member standings
type RankGroupDetail struct {
	ID      int64        `json:"id" yaml:"id"`
	Members []*LeaderRow `json:"members" yaml:"members"`
}

// InviteLink is an invite code for joining a rank group
type InviteLink struct {
	// Code is the value shared with friends
	Code string `json:"code" yaml:"code"`

	// ExpiresAt is when the code stops working
	ExpiresAt string `json:"expiresAt" yaml:"expiresAt"`

	// MaxUses caps how many times the code can be redeemed
	MaxUses int `json:"maxUses,omitempty" yaml:"maxUses,omitempty"`

	// UsedCount is how many times the code has been redeemed
	UsedCount int `json:"usedCount,omitempty" yaml:"usedCount,omitempty"`
}
