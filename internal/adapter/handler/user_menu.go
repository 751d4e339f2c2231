package handler

import (
	"context"
	"errors"
	"strconv"

	"fooddelivery/internal/core/domain"
	"fooddelivery/internal/core/service"
)

func (h *CLIHandler) userScreen(ctx context.Context) {
	for !h.eof {
		h.printf("***User login screen***")
		h.printf("1. Login")
		h.printf("2. Register")
		h.printf("3. Go Back")

		switch h.prompt("Please enter your choice: ") {
		case "1":
			h.loginUser(ctx)
		case "2":
			h.registerUser(ctx)
		case "3":
			return
		default:
			h.invalidChoice()
		}
	}
}

func (h *CLIHandler) registerUser(ctx context.Context) {
	h.printf("***User Registration***")
	reg := domain.Registration{
		FullName:    h.prompt("Enter your full name: "),
		PhoneNumber: h.prompt("Enter your phone number: "),
		Email:       h.prompt("Enter your email: "),
		Address:     h.prompt("Enter your address: "),
		Password:    h.prompt("Enter your password: "),
	}

	err := h.users.Register(ctx, reg)
	var vErr *domain.ValidationError
	switch {
	case err == nil:
		h.printf("Registration successful! Please proceed to login.")
	case errors.As(err, &vErr):
		h.printf("Invalid %s: %s. Please try again.", vErr.Field, vErr.Reason)
	case errors.Is(err, service.ErrDuplicateEmail):
		h.printf("An account with this email already exists. Please log in.")
	default:
		h.printf("Registration failed: %v", err)
	}
}

func (h *CLIHandler) loginUser(ctx context.Context) {
	h.printf("***User Login***")
	email := h.prompt("Enter your email: ")
	password := h.prompt("Enter your password: ")

	account, err := h.users.Login(ctx, email, password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			h.printf("Invalid email or password. Please try again.")
		} else {
			h.printf("Login failed: %v", err)
		}
		return
	}
	h.printf("Login successful!")
	h.userMenu(ctx, account)
}

func (h *CLIHandler) userMenu(ctx context.Context, account *domain.UserAccount) {
	for !h.eof {
		h.printf("***User Menu***")
		h.printf("1. Place New Order")
		h.printf("2. Order History")
		h.printf("3. Update Profile")
		h.printf("4. Logout")

		switch h.prompt("Please enter your choice: ") {
		case "1":
			h.placeOrder(ctx, account)
		case "2":
			h.orderHistory(ctx, account)
		case "3":
			h.updateProfile(ctx, account)
		case "4":
			return
		default:
			h.invalidChoice()
		}
	}
}

// placeOrder walks the order flow: browse, pick a quantity, confirm. Only a
// confirmed order touches the stores; going back at any point has no side
// effects.
func (h *CLIHandler) placeOrder(ctx context.Context, account *domain.UserAccount) {
	h.printf("*Place New Order*")
	items, err := h.catalog.List(ctx)
	if err != nil {
		h.printf("Could not load the food list: %v", err)
		return
	}
	if len(items) == 0 {
		h.printf("No food items are available right now.")
		return
	}

	h.printf("Food List:")
	for i, item := range items {
		h.printf("%d.  %s (%d/%s) [INR %s]", i+1, item.Name, item.Stock, item.QuantityUnit, item.Price.String())
	}

	choice := h.prompt("Enter the index of the food item to order (or enter '0' to go back): ")
	if choice == "0" {
		return
	}
	index, err := strconv.Atoi(choice)
	if err != nil || index <= 0 || index > len(items) {
		h.printf("Invalid choice. Please enter a valid index.")
		return
	}
	chosen := items[index-1]

	raw := h.prompt("Enter the quantity you want to order (1-" + strconv.Itoa(chosen.Stock) + "): ")
	quantity, err := strconv.Atoi(raw)
	if err != nil || quantity <= 0 || quantity > chosen.Stock {
		h.printf("Invalid quantity. Please enter a valid quantity.")
		return
	}

	h.printf("You have chosen %d %s.", quantity, chosen.Name)
	h.printf("1. Confirm Order")
	h.printf("2. Go Back")

	switch h.prompt("Enter your choice: ") {
	case "1":
		ordered, err := h.orders.PlaceOrder(ctx, chosen.ID, quantity, account.Email)
		if err != nil {
			if errors.Is(err, service.ErrInsufficientStock) {
				h.printf("Insufficient stock. The available stock for %s has changed. Please choose a lower quantity.", chosen.Name)
			} else {
				h.printf("Could not place the order: %v", err)
			}
			return
		}
		h.printf("Order confirmed for %d %s INR %s each.", quantity, ordered.Name, ordered.Price.String())
		h.printf("Order placed successfully!")
	case "2":
		return
	default:
		h.invalidChoice()
	}
}

func (h *CLIHandler) orderHistory(ctx context.Context, account *domain.UserAccount) {
	h.printf("*Order History*")
	entries, err := h.users.OrderHistory(ctx, account.Email)
	if err != nil {
		h.printf("Could not load order history: %v", err)
		return
	}
	if len(entries) == 0 {
		h.printf("No order history found.")
		return
	}
	for _, entry := range entries {
		h.printf("%s", entry)
	}
}

func (h *CLIHandler) updateProfile(ctx context.Context, account *domain.UserAccount) {
	h.printf("Update Profile")
	h.printf("Enter new profile information (leave blank for no change):")

	profile := domain.Profile{
		FullName:    h.promptDefault("Full Name", account.FullName),
		PhoneNumber: h.promptDefault("Phone Number", account.PhoneNumber),
		Address:     h.promptDefault("Address", account.Address),
	}

	err := h.users.UpdateProfile(ctx, account.Email, profile)
	var vErr *domain.ValidationError
	switch {
	case err == nil:
		account.FullName = profile.FullName
		account.PhoneNumber = profile.PhoneNumber
		account.Address = profile.Address
		h.printf("Profile updated successfully!")
	case errors.As(err, &vErr):
		h.printf("Invalid %s. Profile update failed.", vErr.Field)
	default:
		h.printf("Profile update failed: %v", err)
	}
}
