package models

import (
	"time"

	"github.com/google/uuid"
)

// Default review intervals, in minutes.
const (
	DefaultHardMinutes   = 5
	DefaultMediumMinutes = 1440
	DefaultEasyMinutes   = 2880
)

// ReviewIntervals is a user's interval policy: the delay, per difficulty
// tier, before a reviewed card becomes due again. Values are minutes and
// must satisfy 0 < hard < medium < easy.
type ReviewIntervals struct {
	HardMinutes   int `db:"hard_interval" json:"hardMinutes"`
	MediumMinutes int `db:"medium_interval" json:"mediumMinutes"`
	EasyMinutes   int `db:"easy_interval" json:"easyMinutes"`
}

// Minutes returns the delay for the given difficulty tier.
func (r ReviewIntervals) Minutes(d Difficulty) int {
	switch d {
	case DifficultyHard:
		return r.HardMinutes
	case DifficultyMedium:
		return r.MediumMinutes
	case DifficultyEasy:
		return r.EasyMinutes
	}
	return 0
}

// DefaultReviewIntervals returns the policy applied to new accounts:
// hard 5 minutes, medium 1 day, easy 2 days.
func DefaultReviewIntervals() ReviewIntervals {
	return ReviewIntervals{
		HardMinutes:   DefaultHardMinutes,
		MediumMinutes: DefaultMediumMinutes,
		EasyMinutes:   DefaultEasyMinutes,
	}
}

type User struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Email       string    `db:"email" json:"email"`
	Name        string    `db:"name" json:"name"`
	DisplayName string    `db:"display_name" json:"displayName"`
	ReviewIntervals
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}
