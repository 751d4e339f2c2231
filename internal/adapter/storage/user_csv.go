package storage

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/gofrs/flock"
	"go.uber.org/zap"

	"fooddelivery/internal/core/domain"
	"fooddelivery/internal/port"
)

// Positions inside a raw user row. A legacy row may stop at the password
// column when the user has no orders yet.
const (
	userColFullName = iota
	userColPhone
	userColEmail
	userColAddress
	userColPassword
	userColHistory
)

// UserStore owns durable access to the registered-users file, keyed by email.
type UserStore struct {
	path   string
	lock   *flock.Flock
	logger *zap.SugaredLogger
}

// OpenUserStore opens the users file, creating it with a header row when
// absent.
func OpenUserStore(path string, logger *zap.SugaredLogger) (*UserStore, error) {
	if err := ensureFile(path, userHeader); err != nil {
		return nil, fmt.Errorf("open user store: %w", err)
	}
	return &UserStore{
		path:   path,
		lock:   flock.New(path + ".lock"),
		logger: logger,
	}, nil
}

func (s *UserStore) GetByEmail(ctx context.Context, email string) (*domain.UserAccount, error) {
	users, err := s.readAll()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Email == email {
			return &users[i], nil
		}
	}
	return nil, fmt.Errorf("user %s: %w", email, port.ErrNotFound)
}

func (s *UserStore) Insert(ctx context.Context, user domain.UserAccount) error {
	return withFileLock(s.lock, func() error {
		return appendRow(s.path, encodeUserRow(user))
	})
}

// UpdateProfile rewrites only the name, phone and address columns of the
// matching row; the password and order history columns pass through as
// stored.
func (s *UserStore) UpdateProfile(ctx context.Context, email string, profile domain.Profile) error {
	return s.rewriteRow(email, func(row []string) []string {
		row[userColFullName] = profile.FullName
		row[userColPhone] = profile.PhoneNumber
		row[userColAddress] = profile.Address
		return row
	})
}

// AppendOrderHistory concatenates one entry to the matching row's history
// text. This is a read-modify-write over the whole file; it is correct for
// the single-session usage model only.
func (s *UserStore) AppendOrderHistory(ctx context.Context, email, entry string) error {
	return s.rewriteRow(email, func(row []string) []string {
		if len(row) == userFieldCountNoHistory {
			return append(row, entry)
		}
		if row[userColHistory] == "" {
			row[userColHistory] = entry
		} else {
			row[userColHistory] += "\n" + entry
		}
		return row
	})
}

// rewriteRow applies mutate to the row matching email and atomically
// rewrites the whole file. A structurally bad row aborts the operation.
func (s *UserStore) rewriteRow(email string, mutate func(row []string) []string) error {
	return withFileLock(s.lock, func() error {
		rows, err := readRawRows(s.path, userFieldCountNoHistory, userFieldCount)
		if err != nil {
			return err
		}

		matched := false
		for i, row := range rows {
			if row[userColEmail] == email {
				rows[i] = mutate(row)
				matched = true
				break
			}
		}
		if !matched {
			return fmt.Errorf("user %s: %w", email, port.ErrNotFound)
		}
		return atomicRewrite(s.path, func(w *csv.Writer) error {
			return writeRawRows(w, userHeader, rows)
		})
	})
}

func (s *UserStore) readAll() ([]domain.UserAccount, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open users file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	if _, err := r.Read(); err != nil { // header
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("read users header: %w", err)
	}

	var users []domain.UserAccount
	for line := 2; ; line++ {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read users row: %w", err)
		}
		u, err := decodeUserRow(row)
		if err != nil {
			s.logger.Warnw("skipping malformed user row", "line", line, "error", err)
			continue
		}
		users = append(users, u)
	}
	return users, nil
}
