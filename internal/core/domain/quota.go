package domain

// Report days offered by the original workflow: a mid-week check on
// Thursday and the weekly summary on Sunday. Only the summary day
// attaches a classification tag to raw counts.
const (
	DayThursday = "Четверг"
	DaySunday   = "Воскресенье"
)

// IsReportDay reports whether day is one of the two report days.
func IsReportDay(day string) bool {
	return day == DayThursday || day == DaySunday
}

const (
	DefaultQuota = 60
	ReducedQuota = 30
)

// Classification tags, exactly as they appear in the shared report.
const (
	TagQuotaMet = "[отыграл норму] ✅"
	TagNoAction = "[ничего не делаем] ✅"
	TagWarning  = "[+1 предупреждение] ❌"
	TagRebuke   = "[+1 выговор] ❌"
	TagInactive = "[инактив, причину в ЛС] ❌"
)

// TicketQuota returns the number of tickets expected from a player on the
// given weekday. An active exemption drops the quota to zero; a player
// whose return day falls on that weekday owes the reduced quota.
func TicketQuota(status *Status, dayOfWeek string) int {
	if status != nil {
		if status.Kind.Valid() {
			return 0
		}
		if status.ReturnDay == dayOfWeek {
			return ReducedQuota
		}
	}
	return DefaultQuota
}

// ClassifyTickets maps a weekly ticket count to its summary-day tag.
// Tiers are evaluated high to low; boundary values land in the higher
// tier.
func ClassifyTickets(count int) string {
	switch {
	case count >= 60:
		return TagQuotaMet
	case count >= 50:
		return TagNoAction
	case count >= 35:
		return TagWarning
	case count >= 15:
		return TagRebuke
	default:
		return TagInactive
	}
}
