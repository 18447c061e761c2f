package store

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"timeclock/internal/database"
	"timeclock/internal/model"

	"github.com/jackc/pgx/v5"
)

// EntryFilter 描述 time_entries 的查詢條件。
// UserID 非 nil 時僅回傳該使用者的紀錄（非管理員一律帶此條件，先過濾再回傳）。
// From 為閉區間下界、Until 為開區間上界，皆套用在 start_time 上。
type EntryFilter struct {
	UserID    *string
	From      *time.Time
	Until     *time.Time
	Ascending bool
}

func ListTimeEntries(ctx context.Context, db database.DB, f EntryFilter) ([]model.TimeEntry, error) {
	query := `SELECT id, user_id, project_id, task_id, start_time, end_time, duration, entry_type, notes, created_at
		 FROM time_entries`
	var (
		conds []string
		args  []any
	)
	if f.UserID != nil {
		args = append(args, *f.UserID)
		conds = append(conds, "user_id = $"+strconv.Itoa(len(args)))
	}
	if f.From != nil {
		args = append(args, *f.From)
		conds = append(conds, "start_time >= $"+strconv.Itoa(len(args)))
	}
	if f.Until != nil {
		args = append(args, *f.Until)
		conds = append(conds, "start_time < $"+strconv.Itoa(len(args)))
	}
	for i, c := range conds {
		if i == 0 {
			query += " WHERE " + c
		} else {
			query += " AND " + c
		}
	}
	if f.Ascending {
		query += " ORDER BY start_time"
	} else {
		query += " ORDER BY start_time DESC"
	}

	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ListTimeEntries: %w", err)
	}
	defer rows.Close()

	var entries []model.TimeEntry
	for rows.Next() {
		var e model.TimeEntry
		if err := rows.Scan(
			&e.ID,
			&e.UserID,
			&e.ProjectID,
			&e.TaskID,
			&e.StartTime,
			&e.EndTime,
			&e.Duration,
			&e.EntryType,
			&e.Notes,
			&e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("ListTimeEntries: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListTimeEntries: %w", err)
	}
	return entries, nil
}

func GetTimeEntryByID(ctx context.Context, db database.DB, entryID string) (*model.TimeEntry, error) {
	row := db.QueryRow(ctx,
		`SELECT id, user_id, project_id, task_id, start_time, end_time, duration, entry_type, notes, created_at
		 FROM time_entries WHERE id = $1`,
		entryID,
	)
	e := &model.TimeEntry{}
	if err := row.Scan(
		&e.ID,
		&e.UserID,
		&e.ProjectID,
		&e.TaskID,
		&e.StartTime,
		&e.EndTime,
		&e.Duration,
		&e.EntryType,
		&e.Notes,
		&e.CreatedAt,
	); err != nil {
		return nil, fmt.Errorf("GetTimeEntryByID: %w", err)
	}
	return e, nil
}

func CreateTimeEntry(ctx context.Context, db database.DB, e *model.TimeEntry) (*model.TimeEntry, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO time_entries (id, user_id, project_id, task_id, start_time, end_time, duration, entry_type, notes)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING created_at`,
		e.ID,
		e.UserID,
		e.ProjectID,
		e.TaskID,
		e.StartTime,
		e.EndTime,
		e.Duration,
		e.EntryType,
		e.Notes,
	)
	if err := row.Scan(&e.CreatedAt); err != nil {
		return nil, fmt.Errorf("CreateTimeEntry: %w", err)
	}
	return e, nil
}

// UpdateTimeEntry 以「整段區間重設並重算 duration」的語意覆寫一筆紀錄
func UpdateTimeEntry(ctx context.Context, db database.DB, e *model.TimeEntry) error {
	tag, err := db.Exec(ctx,
		`UPDATE time_entries
		 SET project_id = $1, task_id = $2, start_time = $3, end_time = $4, duration = $5, notes = $6
		 WHERE id = $7`,
		e.ProjectID,
		e.TaskID,
		e.StartTime,
		e.EndTime,
		e.Duration,
		e.Notes,
		e.ID,
	)
	if err != nil {
		return fmt.Errorf("UpdateTimeEntry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("UpdateTimeEntry: %w", pgx.ErrNoRows)
	}
	return nil
}

func DeleteTimeEntry(ctx context.Context, db database.DB, entryID string) error {
	tag, err := db.Exec(ctx,
		`DELETE FROM time_entries WHERE id = $1`,
		entryID,
	)
	if err != nil {
		return fmt.Errorf("DeleteTimeEntry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("DeleteTimeEntry: %w", pgx.ErrNoRows)
	}
	return nil
}
