// Package store implements the flat-file record store backing the speech
// catalog and its log tables. Tables are CSV files under a single data
// directory. Reads go through a per-table cache; every write invalidates
// the written table so the next read observes it. Writes are synchronous
// and last-writer-wins: the store assumes a single operator process and
// does not coordinate with concurrent external writers.
package store

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"sync"
)

// Row is one table record keyed by column name. Columns absent from the
// file read as empty strings.
type Row map[string]string

// Store provides read-all, append and replace-all access to the tables.
type Store struct {
	dir string

	mu    sync.Mutex
	cache map[Table][]Row
}

// Open prepares a store rooted at dir, creating the directory if needed.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	return &Store{
		dir:   dir,
		cache: make(map[Table][]Row),
	}, nil
}

// Dir returns the data directory the store operates on.
func (s *Store) Dir() string {
	return s.dir
}

// Path returns the on-disk location of the table's file.
func (s *Store) Path(t Table) string {
	return filepath.Join(s.dir, schemas[t].file)
}

// Load returns all rows of the table in file order. A table whose file does
// not exist yet is an empty collection, not an error. Results are cached
// until the table is written.
func (s *Store) Load(t Table) ([]Row, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if rows, ok := s.cache[t]; ok {
		return cloneRows(rows), nil
	}

	rows, err := s.readFile(t)
	if err != nil {
		return nil, err
	}
	s.cache[t] = rows
	return cloneRows(rows), nil
}

// SaveAll atomically replaces the full stored collection for the table and
// invalidates its cache entry.
func (s *Store) SaveAll(t Table, rows []Row) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.writeFile(t, rows); err != nil {
		return err
	}
	s.invalidateLocked(t)
	return nil
}

// Append adds a single row to the table.
func (s *Store) Append(t Table, row Row) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.loadLocked(t)
	if err != nil {
		return err
	}
	rows = append(rows, row)
	if err := s.writeFile(t, rows); err != nil {
		return err
	}
	s.invalidateLocked(t)
	return nil
}

// AppendOrIncrement appends the row unless a row with the same value in
// keyCol already exists, in which case the existing row's counterCol is
// incremented by the new row's counter value. This is the update-by-key
// path used by the usage table; all other tables are append-only.
func (s *Store) AppendOrIncrement(t Table, row Row, keyCol, counterCol string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.loadLocked(t)
	if err != nil {
		return err
	}

	updated := false
	for _, existing := range rows {
		if existing[keyCol] == row[keyCol] {
			existing[counterCol] = strconv.Itoa(parseCount(existing[counterCol]) + parseCount(row[counterCol]))
			updated = true
			break
		}
	}
	if !updated {
		rows = append(rows, row)
	}

	if err := s.writeFile(t, rows); err != nil {
		return err
	}
	s.invalidateLocked(t)
	return nil
}

// Invalidate drops the cached rows for the table so the next Load re-reads
// the file. Writers going through the store invalidate automatically; this
// is for callers that know the file changed underneath.
func (s *Store) Invalidate(t Table) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.invalidateLocked(t)
}

func (s *Store) invalidateLocked(t Table) {
	delete(s.cache, t)
}

// loadLocked returns a copy of the current rows. Callers hold s.mu.
func (s *Store) loadLocked(t Table) ([]Row, error) {
	if rows, ok := s.cache[t]; ok {
		return cloneRows(rows), nil
	}
	return s.readFile(t)
}

func (s *Store) readFile(t Table) ([]Row, error) {
	f, err := os.Open(s.Path(t))
	if err != nil {
		if os.IsNotExist(err) {
			return []Row{}, nil
		}
		return nil, fmt.Errorf("opening table %s: %w", t, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err == io.EOF {
		return []Row{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading table %s header: %w", t, err)
	}

	var rows []Row
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading table %s: %w", t, err)
		}
		row := make(Row, len(schemas[t].columns))
		for _, col := range schemas[t].columns {
			row[col] = ""
		}
		for i, col := range header {
			if i < len(record) {
				row[col] = record[i]
			}
		}
		rows = append(rows, row)
	}
	if rows == nil {
		rows = []Row{}
	}
	return rows, nil
}

// writeFile rewrites the table via a temp file and rename, so a crash
// mid-write leaves either the old or the new contents.
func (s *Store) writeFile(t Table, rows []Row) error {
	cols := schemas[t].columns
	path := s.Path(t)

	tmp, err := os.CreateTemp(s.dir, schemas[t].file+".tmp*")
	if err != nil {
		return fmt.Errorf("creating temp file for table %s: %w", t, err)
	}
	defer os.Remove(tmp.Name())

	w := csv.NewWriter(tmp)
	if err := w.Write(cols); err != nil {
		tmp.Close()
		return fmt.Errorf("writing table %s header: %w", t, err)
	}
	record := make([]string, len(cols))
	for _, row := range rows {
		for i, col := range cols {
			record[i] = row[col]
		}
		if err := w.Write(record); err != nil {
			tmp.Close()
			return fmt.Errorf("writing table %s: %w", t, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		tmp.Close()
		return fmt.Errorf("flushing table %s: %w", t, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file for table %s: %w", t, err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replacing table %s: %w", t, err)
	}
	return nil
}

func cloneRows(rows []Row) []Row {
	out := make([]Row, len(rows))
	for i, row := range rows {
		c := make(Row, len(row))
		for k, v := range row {
			c[k] = v
		}
		out[i] = c
	}
	return out
}

func parseCount(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
