// Package scan converts epoch columns out of SQLite databases.
//
// Browsers and desktop applications keep their history in SQLite with raw
// epoch columns: Chrome's History stores microseconds since 1601, Firefox's
// places.sqlite microseconds since 1970, macOS databases Cocoa seconds. A
// Scanner opens such a database strictly read-only, runs a query, and
// converts the first column of every row through a named catalog format.
package scan

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/roach88/epochs/internal/catalog"
)

// Preset pairs a well-known application query with its epoch format.
type Preset struct {
	Query  string
	Format string
}

// Presets are ready-made scans for common application databases, keyed by
// the name accepted on the command line.
var Presets = map[string]Preset{
	"chrome_history": {
		Query:  "SELECT last_visit_time FROM urls ORDER BY last_visit_time",
		Format: "chrome",
	},
	"firefox_places": {
		Query:  "SELECT last_visit_date FROM moz_places WHERE last_visit_date IS NOT NULL ORDER BY last_visit_date",
		Format: "mozilla",
	},
}

// Row is one converted database row.
type Row struct {
	// Raw is the column value as stored.
	Raw string `json:"raw"`

	// Civil is the converted datetime, zero when Err is set.
	Civil time.Time `json:"civil,omitempty"`

	// Err records a per-row conversion failure. A bad row never aborts
	// the scan.
	Err string `json:"error,omitempty"`
}

// Result is the outcome of one scan.
type Result struct {
	Format  string `json:"format"`
	Query   string `json:"query"`
	Rows    []Row  `json:"rows"`
	Skipped int    `json:"skipped"` // NULL values
}

// Scanner reads epoch columns from a SQLite database. Not safe for
// concurrent use; open one Scanner per goroutine.
type Scanner struct {
	db  *sql.DB
	reg *catalog.Registry
}

// Open opens the SQLite database at path strictly read-only. The file must
// already exist; unlike a writable open, a missing path is an error rather
// than a fresh database.
func Open(path string, reg *catalog.Registry) (*Scanner, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("database not found: %w", err)
	}

	db, err := sql.Open("sqlite3", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// One connection is plenty for a sequential read-only scan.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	return &Scanner{db: db, reg: reg}, nil
}

// Close closes the database connection.
func (s *Scanner) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Scan runs query and converts the first column of every row through the
// named format. limit > 0 caps the number of converted rows; NULL values
// are counted in Skipped. Row-level conversion failures are recorded on
// the row and do not abort the scan.
func (s *Scanner) Scan(ctx context.Context, query, format string, limit int) (*Result, error) {
	desc, err := s.reg.Lookup(format)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	result := &Result{Format: format, Query: query}
	for rows.Next() {
		if limit > 0 && len(result.Rows) >= limit {
			break
		}

		var v any
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		if v == nil {
			result.Skipped++
			continue
		}
		result.Rows = append(result.Rows, convertValue(desc, v))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading rows: %w", err)
	}
	return result, nil
}

// convertValue maps one SQLite storage value onto the descriptor. SQLite
// columns are dynamically typed, so every storage class shows up here.
func convertValue(desc catalog.Descriptor, v any) Row {
	switch val := v.(type) {
	case int64:
		row := Row{Raw: fmt.Sprintf("%d", val)}
		var civil time.Time
		var err error
		if desc.Kind == catalog.KindFractionalDay {
			civil, err = desc.FromFloat(float64(val))
		} else {
			civil, err = desc.FromTicks(val)
		}
		if err != nil {
			row.Err = err.Error()
			return row
		}
		row.Civil = civil
		return row
	case float64:
		row := Row{Raw: fmt.Sprintf("%v", val)}
		var civil time.Time
		var err error
		if desc.Kind == catalog.KindFractionalDay {
			civil, err = desc.FromFloat(val)
		} else {
			civil, err = desc.FromTicks(int64(val))
		}
		if err != nil {
			row.Err = err.Error()
			return row
		}
		row.Civil = civil
		return row
	case []byte:
		return decodeText(desc, string(val))
	case string:
		return decodeText(desc, val)
	default:
		return Row{Raw: fmt.Sprintf("%v", val), Err: fmt.Sprintf("unsupported column type %T", v)}
	}
}

func decodeText(desc catalog.Descriptor, raw string) Row {
	row := Row{Raw: raw}
	civil, err := desc.Decode(raw)
	if err != nil {
		row.Err = err.Error()
		return row
	}
	row.Civil = civil
	return row
}
