package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/century/internal/db"
	"github.com/alexanderramin/century/internal/domain"
	"github.com/google/uuid"
)

// SQLiteEntryRepo implements EntryRepo. Each timeline entry is one
// timeline_entries row keyed by position; block events and stand-alone
// events live in entry_events.
type SQLiteEntryRepo struct {
	db db.DBTX
}

// NewSQLiteEntryRepo creates a new SQLiteEntryRepo.
func NewSQLiteEntryRepo(conn db.DBTX) *SQLiteEntryRepo {
	return &SQLiteEntryRepo{db: conn}
}

type entryRow struct {
	id              string
	kind            domain.EntryKind
	blockNumber     sql.NullInt64
	lastYear        sql.NullInt64
	repeats         sql.NullInt64
	outputStartYear sql.NullInt64
	outputMonth     sql.NullInt64
	outputInterval  sql.NullInt64
	weather         sql.NullString
	description     string
	template        string
}

func (r *SQLiteEntryRepo) ListBySchedule(ctx context.Context, scheduleID string) (*domain.Timeline, error) {
	query := `SELECT id, kind, block_number, last_year, repeats, output_start_year,
		output_month, output_interval, weather, description, template
		FROM timeline_entries WHERE schedule_id = ? ORDER BY position`
	rows, err := r.db.QueryContext(ctx, query, scheduleID)
	if err != nil {
		return nil, fmt.Errorf("listing timeline entries: %w", err)
	}

	var entryRows []entryRow
	for rows.Next() {
		var er entryRow
		var kind string
		if err := rows.Scan(
			&er.id, &kind, &er.blockNumber, &er.lastYear, &er.repeats, &er.outputStartYear,
			&er.outputMonth, &er.outputInterval, &er.weather, &er.description, &er.template,
		); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scanning timeline entry: %w", err)
		}
		er.kind = domain.EntryKind(kind)
		entryRows = append(entryRows, er)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("iterating timeline entries: %w", err)
	}
	rows.Close()

	events, err := r.eventsBySchedule(ctx, scheduleID)
	if err != nil {
		return nil, err
	}

	tl := domain.NewTimeline()
	for _, er := range entryRows {
		entry, err := er.toEntry(events[er.id])
		if err != nil {
			return nil, err
		}
		tl.Append(entry)
	}
	return tl, nil
}

func (r *SQLiteEntryRepo) eventsBySchedule(ctx context.Context, scheduleID string) (map[string][]domain.Event, error) {
	query := `SELECT ev.entry_id, ev.year_offset, ev.month, ev.event_type, ev.specific_code
		FROM entry_events ev
		JOIN timeline_entries te ON te.id = ev.entry_id
		WHERE te.schedule_id = ?
		ORDER BY te.position, ev.seq`
	rows, err := r.db.QueryContext(ctx, query, scheduleID)
	if err != nil {
		return nil, fmt.Errorf("listing entry events: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]domain.Event)
	for rows.Next() {
		var entryID, eventType string
		var ev domain.Event
		if err := rows.Scan(&entryID, &ev.Year, &ev.Month, &eventType, &ev.Code); err != nil {
			return nil, fmt.Errorf("scanning entry event: %w", err)
		}
		ev.Type = domain.EventType(eventType)
		out[entryID] = append(out[entryID], ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating entry events: %w", err)
	}
	return out, nil
}

func (er entryRow) header() domain.BlockHeader {
	return domain.BlockHeader{
		Number:          nullableInt(er.blockNumber),
		LastYear:        nullableInt(er.lastYear),
		Repeats:         nullableInt(er.repeats),
		OutputStartYear: nullableInt(er.outputStartYear),
		OutputMonth:     nullableInt(er.outputMonth),
		OutputInterval:  nullableInt(er.outputInterval),
		Weather:         domain.WeatherMode(nullableString(er.weather)),
		Description:     er.description,
	}
}

func (er entryRow) toEntry(events []domain.Event) (domain.Entry, error) {
	switch er.kind {
	case domain.EntryBlock:
		return &domain.Block{BlockHeader: er.header(), Template: er.template, Events: events}, nil
	case domain.EntryHeader:
		h := er.header()
		return &h, nil
	case domain.EntryEvent:
		if len(events) != 1 {
			return nil, fmt.Errorf("event entry %s has %d event rows, want 1", er.id, len(events))
		}
		ev := events[0]
		return &ev, nil
	case domain.EntryTerminator:
		return domain.Terminator{}, nil
	default:
		return nil, fmt.Errorf("entry %s: unknown kind %q", er.id, er.kind)
	}
}

// ReplaceAll deletes the schedule's stored timeline and writes tl in its
// place. Callers wrap it in a transaction.
func (r *SQLiteEntryRepo) ReplaceAll(ctx context.Context, scheduleID string, tl *domain.Timeline) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM timeline_entries WHERE schedule_id = ?`, scheduleID); err != nil {
		return fmt.Errorf("clearing timeline entries: %w", err)
	}
	for i, e := range tl.Entries() {
		if err := r.insert(ctx, scheduleID, i, e); err != nil {
			return err
		}
	}
	return nil
}

// Append writes entries after the last stored position.
func (r *SQLiteEntryRepo) Append(ctx context.Context, scheduleID string, entries ...domain.Entry) error {
	next, err := r.Count(ctx, scheduleID)
	if err != nil {
		return err
	}
	for i, e := range entries {
		if err := r.insert(ctx, scheduleID, next+i, e); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQLiteEntryRepo) Count(ctx context.Context, scheduleID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM timeline_entries WHERE schedule_id = ?`, scheduleID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting timeline entries: %w", err)
	}
	return n, nil
}

func (r *SQLiteEntryRepo) insert(ctx context.Context, scheduleID string, position int, e domain.Entry) error {
	id := uuid.New().String()
	var (
		h           *domain.BlockHeader
		template    string
		events      []domain.Event
		description string
	)
	switch v := e.(type) {
	case *domain.Block:
		h, template, events = &v.BlockHeader, v.Template, v.Events
	case *domain.BlockHeader:
		h = v
	case *domain.Event:
		events = []domain.Event{*v}
	case domain.Terminator:
	default:
		return fmt.Errorf("inserting timeline entry: unsupported entry %T", e)
	}

	var number, lastYear, repeats, startYear, month, interval sql.NullInt64
	var weather sql.NullString
	if h != nil {
		number = sql.NullInt64{Int64: int64(h.Number), Valid: true}
		lastYear = sql.NullInt64{Int64: int64(h.LastYear), Valid: true}
		repeats = sql.NullInt64{Int64: int64(h.Repeats), Valid: true}
		startYear = sql.NullInt64{Int64: int64(h.OutputStartYear), Valid: true}
		month = sql.NullInt64{Int64: int64(h.OutputMonth), Valid: true}
		interval = sql.NullInt64{Int64: int64(h.OutputInterval), Valid: true}
		weather = sql.NullString{String: string(h.Weather), Valid: true}
		description = h.Description
	}

	query := `INSERT INTO timeline_entries (id, schedule_id, position, kind, block_number, last_year,
		repeats, output_start_year, output_month, output_interval, weather, description, template)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query,
		id, scheduleID, position, string(e.Kind()),
		number, lastYear, repeats, startYear, month, interval, weather,
		description, template,
	); err != nil {
		return fmt.Errorf("inserting timeline entry %d: %w", position, err)
	}

	for seq, ev := range events {
		if _, err := r.db.ExecContext(ctx,
			`INSERT INTO entry_events (entry_id, seq, year_offset, month, event_type, specific_code)
			VALUES (?, ?, ?, ?, ?, ?)`,
			id, seq, ev.Year, ev.Month, string(ev.Type), ev.Code,
		); err != nil {
			return fmt.Errorf("inserting event %d of entry %d: %w", seq, position, err)
		}
	}
	return nil
}
