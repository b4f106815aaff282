package models

// Shift is a named recurring time-of-day slot with fixed wall-clock start and
// end times, e.g. morning 07:00-14:00.
type Shift struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}
