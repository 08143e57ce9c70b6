package speakers

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"

	"modernc.org/sqlite"

	"github.com/agentstation/speakerdir/pkg/errors"
)

func init() {
	err := sqlite.RegisterDeterministicScalarFunction(lowerFunc, 1,
		func(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
			return unicodeLower(args)
		})
	if err != nil {
		panic(fmt.Sprintf("register %s: %v", lowerFunc, err))
	}
}

// Store provides read-only access to the speaker database.
// A Store wraps a single connection and is meant to live for one request.
type Store struct {
	db *sql.DB
}

// Open opens the database at path in read-only mode.
func Open(ctx context.Context, path string) (*Store, error) {
	dsn, err := readOnlyDSN(path)
	if err != nil {
		return nil, errors.WrapQuery("open", err)
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.WrapQuery("open", err)
	}
	db.SetMaxOpenConns(1)

	// Verify connection
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, errors.WrapQuery("open", err)
	}

	return &Store{db: db}, nil
}

// readOnlyDSN returns a read-only SQLite URI for path. The path is made
// absolute and percent-encoded so '?', '#' and '%' in it stay part of
// the file name.
func readOnlyDSN(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	p := filepath.ToSlash(abs)
	if !strings.HasPrefix(p, "/") {
		// Windows drive letters: file:///C:/...
		p = "/" + p
	}
	u := url.URL{Scheme: "file", Path: p, RawQuery: "mode=ro"}
	return u.String(), nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Search returns the shaped speakers matching c, ordered by name.
func (s *Store) Search(ctx context.Context, c Criteria) ([]Speaker, error) {
	query, args := BuildSearchQuery(c)
	records, err := s.records(ctx, "search", query, args...)
	if err != nil {
		return nil, err
	}
	return ShapeAll(records), nil
}

// All returns every speaker, shaped and ordered by name.
func (s *Store) All(ctx context.Context) ([]Speaker, error) {
	records, err := s.records(ctx, "list", listQuery)
	if err != nil {
		return nil, err
	}
	return ShapeAll(records), nil
}

func (s *Store) records(ctx context.Context, op, query string, args ...any) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.WrapQuery(op, err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		var name, topic, challenges sql.NullString
		if err := rows.Scan(&r.ID, &name, &r.Company, &topic,
			&challenges, &r.Opportunities, &r.Hook); err != nil {
			return nil, errors.WrapQuery(op, fmt.Errorf("scan speaker: %w", err))
		}
		r.Name = name.String
		r.Topic = topic.String
		r.Challenges = challenges.String
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.WrapQuery(op, err)
	}
	return records, nil
}

// Stats counts all speakers and those with a non-blank hook.
func (s *Store) Stats(ctx context.Context) (Stats, error) {
	var st Stats
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM `+Table).Scan(&st.Total); err != nil {
		return Stats{}, errors.WrapQuery("count", err)
	}
	if err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM `+Table+`
		WHERE TRIM(COALESCE(zaczepka, '')) <> ''
	`).Scan(&st.WithHook); err != nil {
		return Stats{}, errors.WrapQuery("count", err)
	}
	return st, nil
}

// HookSamples returns up to limit speakers with a non-blank hook, hooks truncated to preview characters.
func (s *Store) HookSamples(ctx context.Context, limit, preview int) ([]HookSample, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, prelegent, firma_instytucja, zaczepka
		FROM `+Table+`
		WHERE TRIM(COALESCE(zaczepka, '')) <> ''
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, errors.WrapQuery("samples", err)
	}
	defer rows.Close()

	samples := []HookSample{}
	for rows.Next() {
		var hs HookSample
		var name, company, hook sql.NullString
		if err := rows.Scan(&hs.ID, &name, &company, &hook); err != nil {
			return nil, errors.WrapQuery("samples", fmt.Errorf("scan sample: %w", err))
		}
		hs.Name = name.String
		if company.Valid {
			hs.Company = &company.String
		}
		hs.HookShort = Truncate(hook.String, preview)
		samples = append(samples, hs)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.WrapQuery("samples", err)
	}
	return samples, nil
}

// Row returns the raw row with the given id.
func (s *Store) Row(ctx context.Context, id int64) (RawRow, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT * FROM `+Table+` WHERE id = ?`, id)
	if err != nil {
		return RawRow{}, errors.WrapQuery("row", err)
	}
	defer rows.Close()

	row, found, err := scanRaw(rows)
	if err != nil {
		return RawRow{}, errors.WrapQuery("row", err)
	}
	if !found {
		return RawRow{}, errors.NewNotFoundError("record", strconv.FormatInt(id, 10))
	}
	return row, nil
}

// Columns returns the column names of the speaker table in declaration order.
func (s *Store) Columns(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `PRAGMA table_info(`+Table+`)`)
	if err != nil {
		return nil, errors.WrapQuery("columns", err)
	}
	defer rows.Close()

	columns := []string{}
	for rows.Next() {
		var (
			cid, notNull, pk int
			name, ctype      string
			dflt             any
		)
		if err := rows.Scan(&cid, &name, &ctype, &notNull, &dflt, &pk); err != nil {
			return nil, errors.WrapQuery("columns", fmt.Errorf("scan column: %w", err))
		}
		columns = append(columns, name)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.WrapQuery("columns", err)
	}
	return columns, nil
}

// SampleKeys returns the keys of the first row, or nil when the table is empty.
func (s *Store) SampleKeys(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT * FROM `+Table+` LIMIT 1`)
	if err != nil {
		return nil, errors.WrapQuery("sample", err)
	}
	defer rows.Close()

	row, found, err := scanRaw(rows)
	if err != nil {
		return nil, errors.WrapQuery("sample", err)
	}
	if !found {
		return nil, nil
	}
	return row.Columns, nil
}

// scanRaw reads the first row of rows without a fixed shape.
func scanRaw(rows *sql.Rows) (RawRow, bool, error) {
	columns, err := rows.Columns()
	if err != nil {
		return RawRow{}, false, err
	}
	if !rows.Next() {
		return RawRow{}, false, rows.Err()
	}

	values := make([]any, len(columns))
	ptrs := make([]any, len(columns))
	for i := range values {
		ptrs[i] = &values[i]
	}
	if err := rows.Scan(ptrs...); err != nil {
		return RawRow{}, false, fmt.Errorf("scan row: %w", err)
	}
	for i, v := range values {
		if b, ok := v.([]byte); ok {
			values[i] = string(b)
		}
	}
	return RawRow{Columns: columns, Values: values}, true, nil
}
