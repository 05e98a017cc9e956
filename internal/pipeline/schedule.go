package pipeline

import "time"

// ScheduleDateFormat is the wire format for interview dates.
const ScheduleDateFormat = "2006-01-02"

// ValidateSchedule checks an interview slot before it is committed: the
// date must be present, well-formed and not before today, and a time must
// be given. It returns a field-name to message map, empty when the slot is
// acceptable. ScheduleInterview itself trusts its caller; front ends run
// this first.
func ValidateSchedule(date, timeOfDay string, now time.Time) map[string]string {
	errs := map[string]string{}

	if date == "" {
		errs["date"] = "Interview date is required"
	} else if d, err := time.Parse(ScheduleDateFormat, date); err != nil {
		errs["date"] = "Interview date must be in YYYY-MM-DD format"
	} else {
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		if d.Before(today) {
			errs["date"] = "Interview date must be in the future"
		}
	}

	if timeOfDay == "" {
		errs["time"] = "Interview time is required"
	}

	return errs
}
