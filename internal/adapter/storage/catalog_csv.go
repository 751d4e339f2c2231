package storage

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"

	"github.com/gofrs/flock"
	"go.uber.org/zap"

	"fooddelivery/internal/core/domain"
	"fooddelivery/internal/port"
)

const (
	foodIDLow  = 10000
	foodIDHigh = 99999
)

// CatalogStore owns durable access to the food catalog file.
type CatalogStore struct {
	path   string
	lock   *flock.Flock
	logger *zap.SugaredLogger

	// ID space bounds, shrunk by tests
	idLow  int
	idHigh int
}

// OpenCatalogStore opens the catalog file, creating it with a header row
// when absent.
func OpenCatalogStore(path string, logger *zap.SugaredLogger) (*CatalogStore, error) {
	if err := ensureFile(path, foodHeader); err != nil {
		return nil, fmt.Errorf("open catalog store: %w", err)
	}
	return &CatalogStore{
		path:   path,
		lock:   flock.New(path + ".lock"),
		logger: logger,
		idLow:  foodIDLow,
		idHigh: foodIDHigh,
	}, nil
}

// AllocateID draws random 5-digit candidates until one is free. The 90,000
// value space makes retry exhaustion effectively unreachable for real
// catalogs. The collision set comes from the raw first column, so an ID
// stays reserved even when the rest of its row no longer decodes.
func (s *CatalogStore) AllocateID(ctx context.Context) (string, error) {
	ids, err := readRawColumn(s.path, 0)
	if err != nil {
		return "", err
	}
	existing := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		existing[id] = struct{}{}
	}

	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		candidate := strconv.Itoa(s.idLow + rand.Intn(s.idHigh-s.idLow+1))
		if _, taken := existing[candidate]; !taken {
			return candidate, nil
		}
	}
}

func (s *CatalogStore) Insert(ctx context.Context, item domain.FoodItem) error {
	return withFileLock(s.lock, func() error {
		return appendRow(s.path, encodeFoodRow(item))
	})
}

func (s *CatalogStore) GetByID(ctx context.Context, id string) (*domain.FoodItem, error) {
	items, err := s.readAll()
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID == id {
			return &items[i], nil
		}
	}
	return nil, fmt.Errorf("food item %s: %w", id, port.ErrNotFound)
}

// Update rewrites the whole file, replacing the matching row. Every other
// row passes through with its stored field values untouched; the CSV writer
// may normalize quoting, so the bytes are identical only for files this
// store wrote itself. A malformed row is fatal here: a shifted column would
// silently corrupt data on a write path.
func (s *CatalogStore) Update(ctx context.Context, item domain.FoodItem) error {
	return withFileLock(s.lock, func() error {
		rows, err := readRawRows(s.path, foodFieldCount)
		if err != nil {
			return err
		}

		replaced := false
		for i, row := range rows {
			if row[0] == item.ID {
				rows[i] = encodeFoodRow(item)
				replaced = true
				break
			}
		}
		if !replaced {
			return fmt.Errorf("food item %s: %w", item.ID, port.ErrNotFound)
		}
		return atomicRewrite(s.path, func(w *csv.Writer) error {
			return writeRawRows(w, foodHeader, rows)
		})
	})
}

func (s *CatalogStore) Delete(ctx context.Context, id string) error {
	return withFileLock(s.lock, func() error {
		rows, err := readRawRows(s.path, foodFieldCount)
		if err != nil {
			return err
		}

		kept := rows[:0]
		removed := false
		for _, row := range rows {
			if row[0] == id {
				removed = true
				continue
			}
			kept = append(kept, row)
		}
		if !removed {
			return fmt.Errorf("food item %s: %w", id, port.ErrNotFound)
		}
		return atomicRewrite(s.path, func(w *csv.Writer) error {
			return writeRawRows(w, foodHeader, kept)
		})
	})
}

// ListAll re-reads the file each call and returns items in insertion order.
func (s *CatalogStore) ListAll(ctx context.Context) ([]domain.FoodItem, error) {
	return s.readAll()
}

// readAll scans the whole file for the read-only paths. A malformed row is
// skipped with a warning so one bad row cannot take down a listing; write
// paths go through readRawRows instead, where a bad row is fatal.
func (s *CatalogStore) readAll() ([]domain.FoodItem, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open catalog file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	if _, err := r.Read(); err != nil { // header
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("read catalog header: %w", err)
	}

	var items []domain.FoodItem
	for line := 2; ; line++ {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read catalog row: %w", err)
		}
		item, err := decodeFoodRow(row)
		if err != nil {
			s.logger.Warnw("skipping malformed catalog row", "line", line, "error", err)
			continue
		}
		items = append(items, item)
	}
	return items, nil
}
