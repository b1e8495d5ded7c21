package usecase

import "fmt"

// Workday shape.
const (
	DefaultWorkHoursPerDay = 6.0
	dayStartHour           = 9 // all workdays begin at 09:00
)

// TimeSlot converts hours elapsed since the start of the workday into a
// 24-hour "HH:MM" clock string. Fractional hours are converted to minutes and
// truncated to whole minutes.
func TimeSlot(hoursElapsed float64) string {
	totalMinutes := dayStartHour*60 + int(hoursElapsed*60)
	return fmt.Sprintf("%02d:%02d", totalMinutes/60, totalMinutes%60)
}
