package scan

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/epochs/internal/catalog"
)

// newTestDB builds a places.sqlite-shaped database with known visit times.
func newTestDB(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "places.sqlite")

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`CREATE TABLE moz_places (id INTEGER PRIMARY KEY, last_visit_date INTEGER)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO moz_places (last_visit_date) VALUES (1234567890000000), (NULL), (1338100577971000)`)
	require.NoError(t, err)

	return path
}

func TestOpen_MissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope.sqlite"), catalog.NewRegistry())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestScan(t *testing.T) {
	path := newTestDB(t)

	s, err := Open(path, catalog.NewRegistry())
	require.NoError(t, err)
	defer s.Close()

	res, err := s.Scan(context.Background(),
		"SELECT last_visit_date FROM moz_places ORDER BY id", "mozilla", 0)
	require.NoError(t, err)

	require.Len(t, res.Rows, 2)
	assert.Equal(t, 1, res.Skipped)

	assert.Equal(t, "1234567890000000", res.Rows[0].Raw)
	assert.True(t, time.Date(2009, time.February, 13, 23, 31, 30, 0, time.UTC).Equal(res.Rows[0].Civil))

	assert.True(t, time.Date(2012, time.May, 27, 6, 36, 17, 971000000, time.UTC).Equal(res.Rows[1].Civil))
}

func TestScan_Limit(t *testing.T) {
	path := newTestDB(t)

	s, err := Open(path, catalog.NewRegistry())
	require.NoError(t, err)
	defer s.Close()

	res, err := s.Scan(context.Background(),
		"SELECT last_visit_date FROM moz_places WHERE last_visit_date IS NOT NULL", "mozilla", 1)
	require.NoError(t, err)
	assert.Len(t, res.Rows, 1)
}

func TestScan_RowErrorDoesNotAbort(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mixed.sqlite")
	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	_, err = db.Exec(`CREATE TABLE ts (v INTEGER)`)
	require.NoError(t, err)
	// Second value overflows the supported year range for unix seconds.
	_, err = db.Exec(`INSERT INTO ts VALUES (1234567890), (9223372036854775807)`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	s, err := Open(path, catalog.NewRegistry())
	require.NoError(t, err)
	defer s.Close()

	res, err := s.Scan(context.Background(), "SELECT v FROM ts ORDER BY v", "unix", 0)
	require.NoError(t, err)
	require.Len(t, res.Rows, 2)
	assert.Empty(t, res.Rows[0].Err)
	assert.NotEmpty(t, res.Rows[1].Err)
	assert.Contains(t, res.Rows[1].Err, "RANGE_OVERFLOW")
}

func TestScan_UnknownFormat(t *testing.T) {
	path := newTestDB(t)

	s, err := Open(path, catalog.NewRegistry())
	require.NoError(t, err)
	defer s.Close()

	_, err = s.Scan(context.Background(), "SELECT last_visit_date FROM moz_places", "klingon", 0)
	require.Error(t, err)
	assert.True(t, catalog.IsUnknownFormat(err))
}

func TestPresets(t *testing.T) {
	reg := catalog.NewRegistry()
	for name, p := range Presets {
		_, err := reg.Lookup(p.Format)
		assert.NoError(t, err, "preset %s references unknown format", name)
		assert.NotEmpty(t, p.Query)
	}
}
