package users

import "time"

// AccountLevel is derived from the lifetime training volume and only ever
// recalculated from the stored total, never decremented manually.
type AccountLevel string

const (
	LevelNovice       AccountLevel = "novice"
	LevelBeginner     AccountLevel = "beginner"
	LevelIntermediate AccountLevel = "intermediate"
	LevelAdvanced     AccountLevel = "advanced"
	LevelElite        AccountLevel = "elite"
)

func (al AccountLevel) String() string {
	return string(al)
}

// LevelForVolume maps lifetime volume in kilos to an account level.
func LevelForVolume(totalVolumeKg float64) AccountLevel {
	switch {
	case totalVolumeKg >= 500000:
		return LevelElite
	case totalVolumeKg >= 150000:
		return LevelAdvanced
	case totalVolumeKg >= 50000:
		return LevelIntermediate
	case totalVolumeKg >= 10000:
		return LevelBeginner
	default:
		return LevelNovice
	}
}

type User struct {
	ID                int          `json:"id"`
	Email             string       `json:"email"`
	Username          string       `json:"username"`
	PasswordHash      string       `json:"-"`
	FullName          string       `json:"full_name,omitempty"`
	AccountLevel      AccountLevel `json:"account_level"`
	TotalVolumeKg     float64      `json:"total_volume_kg"`
	CurrentStreakDays int          `json:"current_streak_days"`
	LongestStreakDays int          `json:"longest_streak_days"`
	LastWorkoutAt     *time.Time   `json:"last_workout_at,omitempty"`
	LastLoginAt       *time.Time   `json:"last_login_at,omitempty"`
	CreatedAt         time.Time    `json:"created_at"`
}
