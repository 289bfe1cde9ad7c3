package domain

import "testing"

func TestIsReportDay(t *testing.T) {
	if !IsReportDay(DayThursday) || !IsReportDay(DaySunday) {
		t.Fatal("report days not recognised")
	}
	for _, day := range []string{"Понедельник", "Sunday", ""} {
		if IsReportDay(day) {
			t.Errorf("IsReportDay(%q) = true", day)
		}
	}
}

func TestTicketQuota(t *testing.T) {
	tests := []struct {
		name   string
		status *Status
		day    string
		want   int
	}{
		{"no status", nil, DaySunday, DefaultQuota},
		{"vacation", &Status{Kind: StatusVacation}, DaySunday, 0},
		{"freeze", &Status{Kind: StatusFreeze}, DaySunday, 0},
		{"return day match", &Status{ReturnDay: DaySunday}, DaySunday, ReducedQuota},
		{"return day mismatch", &Status{ReturnDay: DayThursday}, DaySunday, DefaultQuota},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TicketQuota(tt.status, tt.day); got != tt.want {
				t.Errorf("TicketQuota() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestClassifyTickets(t *testing.T) {
	tests := []struct {
		count int
		want  string
	}{
		{75, TagQuotaMet},
		{60, TagQuotaMet},
		{59, TagNoAction},
		{50, TagNoAction},
		{49, TagWarning},
		{45, TagWarning},
		{35, TagWarning},
		{34, TagRebuke},
		{15, TagRebuke},
		{14, TagInactive},
		{1, TagInactive},
		{0, TagInactive},
	}
	for _, tt := range tests {
		if got := ClassifyTickets(tt.count); got != tt.want {
			t.Errorf("ClassifyTickets(%d) = %q, want %q", tt.count, got, tt.want)
		}
	}
}
