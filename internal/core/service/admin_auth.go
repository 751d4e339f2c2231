package service

import (
	"fooddelivery/internal/core/domain"
)

// AdminAuth holds the admin credential set as an explicit read-once value
// handed in at construction, not ambient process-wide state. Reload pulls a
// fresh copy through the loader when hot reload is wanted.
type AdminAuth struct {
	accounts []domain.AdminAccount
	reload   func() ([]domain.AdminAccount, error)
}

func NewAdminAuth(accounts []domain.AdminAccount, reload func() ([]domain.AdminAccount, error)) *AdminAuth {
	return &AdminAuth{accounts: accounts, reload: reload}
}

// Login compares the given credentials against the loaded set. Plaintext
// comparison, as stored.
func (a *AdminAuth) Login(userID, password string) error {
	for _, acct := range a.accounts {
		if acct.UserID == userID && acct.Password == password {
			return nil
		}
	}
	return ErrInvalidCredentials
}

// Reload re-reads the credential set through the loader.
func (a *AdminAuth) Reload() error {
	accounts, err := a.reload()
	if err != nil {
		return err
	}
	a.accounts = accounts
	return nil
}
