package store

import (
	"time"

	"timeclock/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

/* ---------- 假實作 ---------- */

// fakeRow 實作 pgx.Row，用於模擬單筆掃描行為。
type fakeRow struct {
	scanErr error
	scanFn  func(dest ...any) error
}

func (r *fakeRow) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	if r.scanFn != nil {
		return r.scanFn(dest...)
	}
	panic("fakeRow.Scan: no behavior configured")
}

// fakeRows 實作 pgx.Rows，用於模擬多筆掃描行為。
type fakeRows struct {
	entries []model.TimeEntry
	idx     int
	scanErr error
	err     error
}

func (r *fakeRows) Close()                                       {}
func (r *fakeRows) Err() error                                   { return r.err }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) Next() bool                                   { return r.idx < len(r.entries) }
func (r *fakeRows) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	e := r.entries[r.idx]
	r.idx++
	*dest[0].(*string) = e.ID
	*dest[1].(*string) = e.UserID
	*dest[2].(**string) = e.ProjectID
	*dest[3].(**string) = e.TaskID
	*dest[4].(*time.Time) = e.StartTime
	*dest[5].(*time.Time) = e.EndTime
	*dest[6].(*int) = e.Duration
	*dest[7].(*model.EntryType) = e.EntryType
	*dest[8].(**string) = e.Notes
	*dest[9].(*time.Time) = e.CreatedAt
	return nil
}
func (r *fakeRows) Values() ([]any, error) { return nil, nil }
func (r *fakeRows) RawValues() [][]byte    { return nil }
func (r *fakeRows) Conn() *pgx.Conn        { return nil }

// stubRows 以每列一個 scan 函式的方式模擬 pgx.Rows，供非 time_entries 的查詢使用。
type stubRows struct {
	scans []func(dest ...any) error
	idx   int
	err   error
}

func (r *stubRows) Close()                                       {}
func (r *stubRows) Err() error                                   { return r.err }
func (r *stubRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *stubRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *stubRows) Next() bool                                   { return r.idx < len(r.scans) }
func (r *stubRows) Scan(dest ...any) error {
	scan := r.scans[r.idx]
	r.idx++
	return scan(dest...)
}
func (r *stubRows) Values() ([]any, error) { return nil, nil }
func (r *stubRows) RawValues() [][]byte    { return nil }
func (r *stubRows) Conn() *pgx.Conn        { return nil }
