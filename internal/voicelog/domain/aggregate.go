package domain

import "time"

const dayFormat = "2006-01-02"

// DayKey formats a timestamp as the YYYY-MM-DD bucket it falls in, using the
// given location's midnight boundary.
func DayKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(dayFormat)
}

// DistinctDays counts the number of distinct calendar days with at least one
// entry.
func DistinctDays(logs []*VoiceLog, loc *time.Location) int {
	days := make(map[string]struct{}, len(logs))
	for _, l := range logs {
		days[DayKey(l.Datetime, loc)] = struct{}{}
	}
	return len(days)
}

// LatestPerDay buckets entries by calendar day, keeping the latest entry of
// each day. This is the calendar display policy: when a user submits twice
// on one date, the later submission is shown.
func LatestPerDay(logs []*VoiceLog, loc *time.Location) map[string]*VoiceLog {
	byDay := make(map[string]*VoiceLog)
	for _, l := range logs {
		key := DayKey(l.Datetime, loc)
		if cur, ok := byDay[key]; !ok || l.Datetime.After(cur.Datetime) {
			byDay[key] = l
		}
	}
	return byDay
}

// ForDate returns the entries whose local calendar date equals the given
// YYYY-MM-DD key.
func ForDate(logs []*VoiceLog, date string, loc *time.Location) []*VoiceLog {
	var matched []*VoiceLog
	for _, l := range logs {
		if DayKey(l.Datetime, loc) == date {
			matched = append(matched, l)
		}
	}
	return matched
}

// SameDay reports whether two timestamps fall on the same calendar day in
// the given location. Used by the manga once-per-day gate.
func SameDay(a, b time.Time, loc *time.Location) bool {
	return DayKey(a, loc) == DayKey(b, loc)
}
