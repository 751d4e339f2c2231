package storage

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"fooddelivery/internal/port"
)

// ensureFile creates a file holding only the header row when none exists.
func ensureFile(path string, header []string) error {
	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return atomicRewrite(path, func(w *csv.Writer) error {
		return w.Write(header)
	})
}

// appendRow adds one row to the end of the file and flushes it to disk.
func appendRow(path string, row []string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open for append: %w", err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(row); err != nil {
		f.Close()
		return fmt.Errorf("append row: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("append row: %w", err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return fmt.Errorf("sync after append: %w", err)
	}
	return f.Close()
}

// readRawRows returns the data rows exactly as stored, header excluded.
// Every row must have one of the given field counts; anything else aborts
// with ErrMalformedRecord since a write path cannot trust its positions.
func readRawRows(path string, validCounts ...int) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open for rewrite: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	if _, err := r.Read(); err != nil { // header
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	var rows [][]string
	for line := 2; ; line++ {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		if !countOK(len(row), validCounts) {
			return nil, fmt.Errorf("row at line %d has %d fields: %w", line, len(row), port.ErrMalformedRecord)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// readRawColumn returns one column of every data row, whatever the row's
// field count. Used where a value must be seen even in rows that no longer
// decode, such as the ID collision set.
func readRawColumn(path string, col int) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open for column scan: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	if _, err := r.Read(); err != nil { // header
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	var values []string
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		if col < len(row) {
			values = append(values, row[col])
		}
	}
	return values, nil
}

func countOK(n int, validCounts []int) bool {
	for _, c := range validCounts {
		if n == c {
			return true
		}
	}
	return false
}

// writeRawRows emits the header followed by every row.
func writeRawRows(w *csv.Writer, header []string, rows [][]string) error {
	if err := w.Write(header); err != nil {
		return err
	}
	return w.WriteAll(rows)
}
