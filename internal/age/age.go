package age

import "time"

// Calc returns the whole years between birth and now using local calendar
// fields. Negative if birth is after now.
func Calc(birth, now time.Time) int {
	years := now.Year() - birth.Year()

	// день рождения в этом году ещё не наступил -> минус 1
	if now.Month() < birth.Month() ||
		(now.Month() == birth.Month() && now.Day() < birth.Day()) {
		years--
	}
	return years
}

// Decade rounds the age down to the nearest multiple of 10, never below 0.
func Decade(birth, now time.Time) int {
	a := Calc(birth, now)
	if a < 0 {
		return 0
	}
	return a / 10 * 10
}
