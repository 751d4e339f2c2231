package handler

import (
	"context"
	"errors"
	"strconv"

	"github.com/shopspring/decimal"

	"fooddelivery/internal/core/domain"
	"fooddelivery/internal/core/service"
	"fooddelivery/internal/port"
)

func (h *CLIHandler) adminScreen(ctx context.Context) {
	for !h.eof {
		h.printf("***Admin login screen***")
		h.printf("1. Login")
		h.printf("2. Go back")

		switch h.prompt("Please enter your choice: ") {
		case "1":
			userID := h.prompt("Enter your user ID: ")
			password := h.prompt("Enter your password: ")
			if err := h.adminAuth.Login(userID, password); err != nil {
				h.printf("Invalid user ID or password. Please try again.")
				continue
			}
			h.printf("Login successful!")
			h.adminFeatures(ctx)
		case "2":
			return
		default:
			h.invalidChoice()
		}
	}
}

func (h *CLIHandler) adminFeatures(ctx context.Context) {
	for !h.eof {
		h.printf("***Admin login features***")
		h.printf("1. Add new food items")
		h.printf("2. Edit food items")
		h.printf("3. View the list of all food items")
		h.printf("4. Remove a food item from the menu")
		h.printf("5. Go back")

		switch h.prompt("Please enter your choice: ") {
		case "1":
			h.addFoodItem(ctx)
		case "2":
			h.editFoodItem(ctx)
		case "3":
			h.viewFoodItems(ctx)
		case "4":
			h.removeFoodItem(ctx)
		case "5":
			return
		default:
			h.invalidChoice()
		}
	}
}

func (h *CLIHandler) addFoodItem(ctx context.Context) {
	h.printf("**Add new food item**")

	name := h.prompt("Enter the name of the food item: ")
	unit := h.prompt("Enter the quantity of the food item (For eg, 100ml, 250gm, 4pieces etc): ")

	price, ok := h.promptDecimal("Enter the price of the food item: ")
	if !ok {
		return
	}
	discount, ok := h.promptDecimal("Enter the discount for the food item in %: ")
	if !ok {
		return
	}
	stock, ok := h.promptInt("Enter the stock amount of the food item: ")
	if !ok {
		return
	}

	item, err := h.catalog.Add(ctx, service.ItemDraft{
		Name:            name,
		QuantityUnit:    unit,
		Price:           price,
		DiscountPercent: discount,
		Stock:           stock,
	})
	if err != nil {
		h.printf("Could not add the food item: %v", err)
		return
	}
	h.printf("Food item added successfully! FoodID: %s", item.ID)
	h.printf("")
}

func (h *CLIHandler) editFoodItem(ctx context.Context) {
	h.printf("**Edit food item**")
	id := h.prompt("Enter the FoodID of the food item to edit: ")

	existing, err := h.catalog.Get(ctx, id)
	if err != nil {
		if errors.Is(err, port.ErrNotFound) {
			h.printf("Food item does not exist.")
		} else {
			h.printf("Could not read the food item: %v", err)
		}
		h.printf("")
		return
	}

	h.printf("Existing details:")
	h.printf("")
	h.displayFoodItem(*existing)
	h.printf("")

	h.printf("Enter the new details (leave blank to keep existing):")
	updated := *existing
	updated.Name = h.promptDefault("Name", existing.Name)
	updated.QuantityUnit = h.promptDefault("Quantity", existing.QuantityUnit)

	if raw := h.prompt("Price (" + existing.Price.String() + "): "); raw != "" {
		price, err := decimal.NewFromString(raw)
		if err != nil {
			h.printf("Invalid price. Food item not updated.")
			return
		}
		updated.Price = price
	}
	if raw := h.prompt("Discount (" + existing.DiscountPercent.String() + "): "); raw != "" {
		discount, err := decimal.NewFromString(raw)
		if err != nil {
			h.printf("Invalid discount. Food item not updated.")
			return
		}
		updated.DiscountPercent = discount
	}
	if raw := h.prompt("Stock (" + strconv.Itoa(existing.Stock) + "): "); raw != "" {
		stock, err := strconv.Atoi(raw)
		if err != nil || stock < 0 {
			h.printf("Invalid stock. Food item not updated.")
			return
		}
		updated.Stock = stock
	}

	if err := h.catalog.Edit(ctx, updated); err != nil {
		h.printf("Could not update the food item: %v", err)
		return
	}
	h.printf("Food item updated successfully!")
	h.printf("")
}

func (h *CLIHandler) viewFoodItems(ctx context.Context) {
	h.printf("View all food items")
	items, err := h.catalog.List(ctx)
	if err != nil {
		h.printf("Could not list food items: %v", err)
		return
	}
	for _, item := range items {
		h.displayFoodItem(item)
		h.printf("")
	}
}

func (h *CLIHandler) removeFoodItem(ctx context.Context) {
	h.printf("Remove food item")
	id := h.prompt("Enter the FoodID of the food item to remove: ")

	if err := h.catalog.Remove(ctx, id); err != nil {
		if errors.Is(err, port.ErrNotFound) {
			h.printf("Food item does not exist.")
		} else {
			h.printf("Could not remove the food item: %v", err)
		}
		h.printf("")
		return
	}
	h.printf("Food item removed successfully!")
	h.printf("")
}

func (h *CLIHandler) displayFoodItem(item domain.FoodItem) {
	h.printf("FoodID: %s", item.ID)
	h.printf("Name: %s", item.Name)
	h.printf("Quantity: %s", item.QuantityUnit)
	h.printf("Price: %s", item.Price.String())
	h.printf("Discount: %s", item.DiscountPercent.String())
	h.printf("Stock: %d", item.Stock)
}

func (h *CLIHandler) promptDecimal(label string) (decimal.Decimal, bool) {
	for !h.eof {
		raw := h.prompt(label)
		if h.eof {
			break
		}
		d, err := decimal.NewFromString(raw)
		if err == nil {
			return d, true
		}
		h.printf("Invalid amount. Please try again.")
	}
	return decimal.Decimal{}, false
}

func (h *CLIHandler) promptInt(label string) (int, bool) {
	for !h.eof {
		raw := h.prompt(label)
		if h.eof {
			break
		}
		n, err := strconv.Atoi(raw)
		if err == nil && n >= 0 {
			return n, true
		}
		h.printf("Invalid number. Please try again.")
	}
	return 0, false
}
