package domain

// AdminAccount is one row of the read-only admin credential set.
type AdminAccount struct {
	UserID   string
	Password string
}
