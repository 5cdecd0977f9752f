package scheduler

import "github.com/arthur12320/flash-cards-simple/internal/models"

const (
	minutesPerHour = 60
	minutesPerDay  = 24 * 60

	maxHardMinutes = 1440
	maxDays        = 365
	maxHours       = 23
)

// ConfigError reports an interval policy that failed validation. The
// message names the violated constraint so the user can correct the input.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return "invalid review intervals: " + e.Field + " " + e.Reason
}

// IntervalInput is an interval policy as submitted from the settings form:
// the hard tier in minutes, medium and easy as days plus hours.
type IntervalInput struct {
	HardMinutes int `json:"hardMinutes"`
	MediumDays  int `json:"mediumDays"`
	MediumHours int `json:"mediumHours"`
	EasyDays    int `json:"easyDays"`
	EasyHours   int `json:"easyHours"`
}

// ValidateIntervals checks an interval policy submission and converts it to
// per-tier minutes. Each component must be within its allowed range and the
// resulting delays strictly increasing (hard < medium < easy). Invalid
// input is rejected with a *ConfigError, never clamped or reordered.
func ValidateIntervals(in IntervalInput) (models.ReviewIntervals, error) {
	if in.HardMinutes < 1 || in.HardMinutes > maxHardMinutes {
		return models.ReviewIntervals{}, &ConfigError{Field: "hardMinutes", Reason: "must be between 1 and 1440"}
	}
	if in.MediumDays < 0 || in.MediumDays > maxDays {
		return models.ReviewIntervals{}, &ConfigError{Field: "mediumDays", Reason: "must be between 0 and 365"}
	}
	if in.MediumHours < 0 || in.MediumHours > maxHours {
		return models.ReviewIntervals{}, &ConfigError{Field: "mediumHours", Reason: "must be between 0 and 23"}
	}
	if in.EasyDays < 0 || in.EasyDays > maxDays {
		return models.ReviewIntervals{}, &ConfigError{Field: "easyDays", Reason: "must be between 0 and 365"}
	}
	if in.EasyHours < 0 || in.EasyHours > maxHours {
		return models.ReviewIntervals{}, &ConfigError{Field: "easyHours", Reason: "must be between 0 and 23"}
	}

	intervals := models.ReviewIntervals{
		HardMinutes:   in.HardMinutes,
		MediumMinutes: in.MediumDays*minutesPerDay + in.MediumHours*minutesPerHour,
		EasyMinutes:   in.EasyDays*minutesPerDay + in.EasyHours*minutesPerHour,
	}

	if intervals.MediumMinutes <= intervals.HardMinutes {
		return models.ReviewIntervals{}, &ConfigError{Field: "medium", Reason: "must be longer than the hard interval"}
	}
	if intervals.EasyMinutes <= intervals.MediumMinutes {
		return models.ReviewIntervals{}, &ConfigError{Field: "easy", Reason: "must be longer than the medium interval"}
	}

	return intervals, nil
}
