package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// UserAccount is one registered user. Email is the lookup key.
// OrderHistory is append-only and keeps insertion order.
type UserAccount struct {
	FullName     string
	PhoneNumber  string
	Email        string
	Address      string
	Password     string
	OrderHistory []string
}

// Registration carries the fields collected at sign-up.
type Registration struct {
	FullName    string
	PhoneNumber string
	Email       string
	Address     string
	Password    string
}

// Profile carries the fields a user may change after registration.
// Email, password and order history are not part of it.
type Profile struct {
	FullName    string
	PhoneNumber string
	Address     string
}

const orderTimeLayout = "2006-01-02 15:04:05"

// FormatOrderEntry renders one order-history line.
func FormatOrderEntry(foodName string, price decimal.Decimal, at time.Time) string {
	return fmt.Sprintf("Food: %s - INR %s - Order date: %s",
		foodName, price.String(), at.Format(orderTimeLayout))
}
