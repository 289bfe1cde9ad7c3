package domain

import (
	"errors"
	"time"
)

var ErrPlayerExists = errors.New("player already exists")
var ErrPlayerNotFound = errors.New("player not found")
var ErrSupervisorExists = errors.New("supervisor already exists")
var ErrSupervisorNotFound = errors.New("supervisor not found")
var ErrStatusNotFound = errors.New("status not found")
var ErrUnknownSupervisor = errors.New("supervisor is not registered")
var ErrInvalidStatus = errors.New("invalid status")
var ErrInvalidDay = errors.New("unknown report day")
var ErrInvalidCSV = errors.New("invalid statistics csv")

// Player is a tracked community member, keyed by canonical SteamID.
type Player struct {
	SteamID    string `json:"steam_id"`
	Name       string `json:"name"`
	Discord    string `json:"discord"`
	Supervisor string `json:"supervisor"`
}

// StatusKind is a temporary exemption suppressing the ticket quota.
type StatusKind string

const (
	StatusVacation StatusKind = "отпуск"
	StatusFreeze   StatusKind = "мороз"
)

// Valid reports whether k is a recognised exemption kind.
func (k StatusKind) Valid() bool {
	return k == StatusVacation || k == StatusFreeze
}

// dateLayout is the wire format of status expiry dates.
const dateLayout = "2006-01-02"

// Status is an exemption assigned to a player, at most one per SteamID.
// EndDate is a YYYY-MM-DD calendar date; the status applies through that
// day and is swept once it is strictly in the past. ReturnDay optionally
// names the weekday the player resumes with a reduced quota.
type Status struct {
	SteamID   string     `json:"steam_id"`
	Kind      StatusKind `json:"status"`
	EndDate   string     `json:"end_date"`
	ReturnDay string     `json:"return_day,omitempty"`
}

// ExpiredBefore reports whether the status ended strictly before today.
// An unparseable end date counts as expired so malformed entries cannot
// grant an exemption forever.
func (s Status) ExpiredBefore(today time.Time) bool {
	end, err := time.Parse(dateLayout, s.EndDate)
	if err != nil {
		return true
	}
	y, m, d := today.Date()
	return end.Before(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}

// ValidEndDate reports whether the end date parses as YYYY-MM-DD.
func (s Status) ValidEndDate() bool {
	_, err := time.Parse(dateLayout, s.EndDate)
	return err == nil
}
