package service

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/csv"
	"encoding/hex"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/gameops/ticket-board/internal/api/metrics"
	"github.com/gameops/ticket-board/internal/core/domain"
	"github.com/gameops/ticket-board/internal/core/ports"
)

// DedupChecker flags repeated CSV uploads. Failures are never fatal to
// report generation.
type DedupChecker interface {
	IsDuplicate(ctx context.Context, digest string) (bool, error)
	Mark(ctx context.Context, digest string) error
}

// NopDedup is used when no dedup backend is configured.
type NopDedup struct{}

func (NopDedup) IsDuplicate(context.Context, string) (bool, error) { return false, nil }
func (NopDedup) Mark(context.Context, string) error                { return nil }

// ReportService assembles the per-supervisor ticket report from an
// uploaded statistics CSV.
type ReportService struct {
	players     ports.PlayerRepository
	supervisors ports.SupervisorRepository
	statuses    ports.StatusService
	dedup       DedupChecker
	reportTZ    *time.Location
	log         zerolog.Logger
}

func NewReportService(
	players ports.PlayerRepository,
	supervisors ports.SupervisorRepository,
	statuses ports.StatusService,
	dedup DedupChecker,
	reportTZ *time.Location,
	log zerolog.Logger,
) *ReportService {
	if dedup == nil {
		dedup = NopDedup{}
	}
	if reportTZ == nil {
		reportTZ = time.UTC
	}
	return &ReportService{
		players:     players,
		supervisors: supervisors,
		statuses:    statuses,
		dedup:       dedup,
		reportTZ:    reportTZ,
		log:         log,
	}
}

// BuildReport sweeps expired statuses, joins the CSV counts against the
// supervisor's players and renders the shareable text report. Players
// missing from the CSV are reported with zero tickets; CSV rows without a
// registered player are ignored.
func (s *ReportService) BuildReport(ctx context.Context, input ports.BuildReportInput) (*ports.ReportResult, error) {
	if input.Supervisor == "" || input.Day == "" {
		return nil, domain.ErrMissingField
	}
	if !domain.IsReportDay(input.Day) {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidDay, input.Day)
	}

	known, err := s.supervisors.Exists(ctx, input.Supervisor)
	if err != nil {
		return nil, err
	}
	if !known {
		return nil, domain.ErrSupervisorNotFound
	}

	now := input.Now
	if now.IsZero() {
		now = time.Now()
	}

	digest := csvDigest(input.CSV)
	duplicate, err := s.dedup.IsDuplicate(ctx, digest)
	if err != nil {
		s.log.Warn().Err(err).Msg("upload dedup check failed, continuing")
		duplicate = false
	}

	// No stale exemption may survive into the report.
	if _, err := s.statuses.SweepExpired(ctx, now); err != nil {
		return nil, fmt.Errorf("build report: sweep: %w", err)
	}

	counts, err := parseTicketCSV(input.CSV)
	if err != nil {
		return nil, err
	}

	players, err := s.players.List(ctx, input.Supervisor)
	if err != nil {
		return nil, err
	}
	sort.Slice(players, func(i, j int) bool { return players[i].SteamID < players[j].SteamID })

	statuses, err := s.statuses.ListStatuses(ctx)
	if err != nil {
		return nil, err
	}
	statusByID := make(map[string]domain.Status, len(statuses))
	for _, st := range statuses {
		statusByID[st.SteamID] = st
	}

	lines := make([]string, 0, len(players)+1)
	lines = append(lines, fmt.Sprintf("# Статистика за %s состава %q (%s)",
		input.Day, input.Supervisor, now.In(s.reportTZ).Format("02.01.2006")))

	matched := 0
	for _, p := range players {
		tickets, ok := counts[p.SteamID]
		if ok {
			matched++
		}
		lines = append(lines, reportLine(p, statusByID, tickets, input.Day))
	}

	if err := s.dedup.Mark(ctx, digest); err != nil {
		s.log.Warn().Err(err).Msg("failed to mark upload digest")
	}

	metrics.ReportsBuiltTotal.WithLabelValues(input.Day).Inc()
	metrics.CSVRowsMatchedTotal.Add(float64(matched))
	s.log.Info().
		Str("supervisor", input.Supervisor).
		Str("day", input.Day).
		Int("players", len(players)).
		Int("matched_rows", matched).
		Bool("duplicate_upload", duplicate).
		Msg("report built")

	return &ports.ReportResult{
		Report:          strings.Join(lines, "\n"),
		Players:         len(players),
		MatchedRows:     matched,
		DuplicateUpload: duplicate,
	}, nil
}

// reportLine renders one player. Exempt players show their status instead
// of a count; the Sunday summary attaches the classification tag.
func reportLine(p domain.Player, statusByID map[string]domain.Status, tickets int, day string) string {
	if st, ok := statusByID[p.SteamID]; ok {
		switch st.Kind {
		case domain.StatusVacation:
			return fmt.Sprintf("@%s - Отпуск 📅", p.Discord)
		case domain.StatusFreeze:
			return fmt.Sprintf("@%s - Мороз ❄️", p.Discord)
		}
	}

	if day == domain.DaySunday {
		return fmt.Sprintf("@%s - %d тикетов %s", p.Discord, tickets, domain.ClassifyTickets(tickets))
	}
	return fmt.Sprintf("@%s - %d тикетов", p.Discord, tickets)
}

// parseTicketCSV extracts per-player weekly ticket counts keyed by
// canonical SteamID. Required columns: SteamID (numeric SteamID64) and
// WeekAmount. Rows with an unparseable SteamID are skipped.
func parseTicketCSV(data []byte) (map[string]int, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: cannot read header", domain.ErrInvalidCSV)
	}

	idCol, amountCol := -1, -1
	for i, name := range header {
		switch strings.TrimSpace(name) {
		case "SteamID":
			idCol = i
		case "WeekAmount":
			amountCol = i
		}
	}
	if idCol < 0 || amountCol < 0 {
		return nil, fmt.Errorf("%w: SteamID and WeekAmount columns are required", domain.ErrInvalidCSV)
	}

	counts := make(map[string]int)
	for {
		row, err := r.Read()
		if err != nil {
			break
		}
		if idCol >= len(row) || amountCol >= len(row) {
			continue
		}

		steamID, err := domain.ToCanonical(strings.TrimSpace(row[idCol]))
		if err != nil {
			continue
		}
		amount, err := strconv.Atoi(strings.TrimSpace(row[amountCol]))
		if err != nil {
			continue
		}
		counts[steamID] = amount
	}
	return counts, nil
}

func csvDigest(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
