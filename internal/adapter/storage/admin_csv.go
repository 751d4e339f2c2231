package storage

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"fooddelivery/internal/core/domain"
)

// LoadAdminAccounts reads the full admin credential file. The result is
// read-once reference data; callers wanting a fresh view call again.
func LoadAdminAccounts(path string) ([]domain.AdminAccount, error) {
	if err := ensureFile(path, adminHeader); err != nil {
		return nil, fmt.Errorf("open admin file: %w", err)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open admin file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	if _, err := r.Read(); err != nil { // header
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("read admin header: %w", err)
	}

	var accounts []domain.AdminAccount
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read admin row: %w", err)
		}
		acct, err := decodeAdminRow(row)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, acct)
	}
	return accounts, nil
}
