package repository

import (
	"context"
	"fmt"
	"reflect"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// fakeQuerier records the last statement and replays canned rows.
type fakeQuerier struct {
	sql  string
	args []any
	rows [][]any
	err  error
}

func (f *fakeQuerier) record(sql string, args []any) {
	f.sql = sql
	f.args = args
}

func (f *fakeQuerier) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	f.record(sql, args)
	if f.err != nil {
		return nil, f.err
	}
	return &fakeRows{rows: f.rows, pos: -1}, nil
}

func (f *fakeQuerier) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	f.record(sql, args)
	return &fakeRow{rows: f.rows, err: f.err}
}

func (f *fakeQuerier) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.record(sql, args)
	if f.err != nil {
		return pgconn.CommandTag{}, f.err
	}
	return pgconn.NewCommandTag(fmt.Sprintf("INSERT 0 %d", len(f.rows))), nil
}

type fakeRow struct {
	rows [][]any
	err  error
}

func (r *fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	if len(r.rows) == 0 {
		return pgx.ErrNoRows
	}
	return assignRow(r.rows[0], dest)
}

type fakeRows struct {
	rows   [][]any
	pos    int
	err    error
	closed bool
}

func (r *fakeRows) Close() { r.closed = true }

func (r *fakeRows) Err() error { return r.err }

func (r *fakeRows) CommandTag() pgconn.CommandTag {
	return pgconn.NewCommandTag(fmt.Sprintf("SELECT %d", len(r.rows)))
}

func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }

func (r *fakeRows) Next() bool {
	if r.closed || r.err != nil {
		return false
	}
	r.pos++
	return r.pos < len(r.rows)
}

func (r *fakeRows) Scan(dest ...any) error {
	if r.pos < 0 || r.pos >= len(r.rows) {
		return fmt.Errorf("scan called without a current row")
	}
	return assignRow(r.rows[r.pos], dest)
}

func (r *fakeRows) Values() ([]any, error) {
	if r.pos < 0 || r.pos >= len(r.rows) {
		return nil, fmt.Errorf("no current row")
	}
	return r.rows[r.pos], nil
}

func (r *fakeRows) RawValues() [][]byte { return nil }

func (r *fakeRows) Conn() *pgx.Conn { return nil }

// assignRow copies values into scan destinations the way the driver
// would: nil leaves pointer targets nil, numbers convert between kinds.
func assignRow(values []any, dest []any) error {
	if len(values) != len(dest) {
		return fmt.Errorf("row has %d values, scan has %d destinations", len(values), len(dest))
	}

	for i, value := range values {
		target := reflect.ValueOf(dest[i])
		if target.Kind() != reflect.Pointer || target.IsNil() {
			return fmt.Errorf("destination %d is not a pointer", i)
		}
		elem := target.Elem()

		if value == nil {
			elem.Set(reflect.Zero(elem.Type()))
			continue
		}

		src := reflect.ValueOf(value)
		if elem.Kind() == reflect.Pointer {
			ptr := reflect.New(elem.Type().Elem())
			if err := assignValue(ptr.Elem(), src, i); err != nil {
				return err
			}
			elem.Set(ptr)
			continue
		}
		if err := assignValue(elem, src, i); err != nil {
			return err
		}
	}
	return nil
}

func assignValue(elem, src reflect.Value, i int) error {
	switch {
	case src.Type().AssignableTo(elem.Type()):
		elem.Set(src)
	case src.Type().ConvertibleTo(elem.Type()) && src.Kind() != reflect.String:
		elem.Set(src.Convert(elem.Type()))
	default:
		return fmt.Errorf("cannot scan %T into destination %d of type %s", src.Interface(), i, elem.Type())
	}
	return nil
}

func propertyRow(id int64, city string, cents int64, rating any) []any {
	return []any{
		id, int64(1), "Cozy " + city, "", "thumb.jpg", "cover.jpg", cents,
		"1 Main St", city, "BC", "V5K", "Canada", 1, 2, 3, true, rating,
	}
}
