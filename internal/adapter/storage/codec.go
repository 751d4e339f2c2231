package storage

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"fooddelivery/internal/core/domain"
	"fooddelivery/internal/port"
)

// Row codec: the single translation boundary between typed records and the
// flat comma-delimited row format. The files carry display headers; every
// position below is the canonical field order.

var (
	foodHeader  = []string{"FoodID", "Name", "Quantity", "Price", "Discount", "Stock"}
	userHeader  = []string{"Full Name", "Phone Number", "Email", "Address", "Password", "Order History"}
	adminHeader = []string{"user_id", "password"}
)

const (
	foodFieldCount          = 6
	userFieldCount          = 6
	userFieldCountNoHistory = 5
	adminFieldCount         = 2
)

func decodeFoodRow(row []string) (domain.FoodItem, error) {
	if len(row) != foodFieldCount {
		return domain.FoodItem{}, fmt.Errorf("food row has %d fields, want %d: %w",
			len(row), foodFieldCount, port.ErrMalformedRecord)
	}

	price, err := decimal.NewFromString(strings.TrimSpace(row[3]))
	if err != nil {
		return domain.FoodItem{}, fmt.Errorf("food row %s: price %q: %w", row[0], row[3], port.ErrMalformedRecord)
	}
	discount, err := decimal.NewFromString(strings.TrimSpace(row[4]))
	if err != nil {
		return domain.FoodItem{}, fmt.Errorf("food row %s: discount %q: %w", row[0], row[4], port.ErrMalformedRecord)
	}
	stock, err := parseStock(row[5])
	if err != nil {
		return domain.FoodItem{}, fmt.Errorf("food row %s: stock %q: %w", row[0], row[5], port.ErrMalformedRecord)
	}

	return domain.FoodItem{
		ID:              row[0],
		Name:            row[1],
		QuantityUnit:    row[2],
		Price:           price,
		DiscountPercent: discount,
		Stock:           stock,
	}, nil
}

func encodeFoodRow(item domain.FoodItem) []string {
	return []string{
		item.ID,
		item.Name,
		item.QuantityUnit,
		item.Price.String(),
		item.DiscountPercent.String(),
		strconv.Itoa(item.Stock),
	}
}

// parseStock strips non-digit characters before conversion, so a cell like
// "10 units" still reads as 10.
func parseStock(s string) (int, error) {
	var digits strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return 0, fmt.Errorf("no digits in %q", s)
	}
	return strconv.Atoi(digits.String())
}

// decodeUserRow accepts five fields for a user with no orders yet.
func decodeUserRow(row []string) (domain.UserAccount, error) {
	if len(row) != userFieldCount && len(row) != userFieldCountNoHistory {
		return domain.UserAccount{}, fmt.Errorf("user row has %d fields, want %d or %d: %w",
			len(row), userFieldCountNoHistory, userFieldCount, port.ErrMalformedRecord)
	}

	u := domain.UserAccount{
		FullName:    row[0],
		PhoneNumber: row[1],
		Email:       row[2],
		Address:     row[3],
		Password:    row[4],
	}
	if len(row) == userFieldCount {
		u.OrderHistory = splitOrderHistory(row[5])
	}
	return u, nil
}

func encodeUserRow(u domain.UserAccount) []string {
	return []string{
		u.FullName,
		u.PhoneNumber,
		u.Email,
		u.Address,
		u.Password,
		joinOrderHistory(u.OrderHistory),
	}
}

func splitOrderHistory(cell string) []string {
	if cell == "" {
		return nil
	}
	lines := strings.Split(cell, "\n")
	entries := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			entries = append(entries, line)
		}
	}
	return entries
}

func joinOrderHistory(entries []string) string {
	return strings.Join(entries, "\n")
}

func decodeAdminRow(row []string) (domain.AdminAccount, error) {
	if len(row) != adminFieldCount {
		return domain.AdminAccount{}, fmt.Errorf("admin row has %d fields, want %d: %w",
			len(row), adminFieldCount, port.ErrMalformedRecord)
	}
	return domain.AdminAccount{UserID: row[0], Password: row[1]}, nil
}
