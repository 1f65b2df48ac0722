package users

import "time"

// NextStreak applies a workout completed at completedAt to the current
// streak counters. Days are compared as UTC calendar days: a workout on the
// day right after the last one extends the streak, a workout on the same
// day leaves it unchanged, anything later restarts it at 1.
func NextStreak(
	currentStreak, longestStreak int,
	lastWorkoutAt *time.Time,
	completedAt time.Time,
) (newCurrent, newLongest int) {
	switch {
	case lastWorkoutAt == nil:
		newCurrent = 1
	default:
		lastDay := toUTCDay(*lastWorkoutAt)
		thisDay := toUTCDay(completedAt)
		daysBetween := int(thisDay.Sub(lastDay).Hours() / 24)
		switch {
		case daysBetween == 0:
			newCurrent = currentStreak
		case daysBetween == 1:
			newCurrent = currentStreak + 1
		default:
			newCurrent = 1
		}
	}

	newLongest = longestStreak
	if newCurrent > newLongest {
		newLongest = newCurrent
	}
	return newCurrent, newLongest
}

func toUTCDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
