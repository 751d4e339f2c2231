package handler

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"fooddelivery/internal/core/service"
)

// CLIHandler drives the interactive session. It talks only to the façade
// services; file paths and row formats never reach this layer.
type CLIHandler struct {
	in  *bufio.Scanner
	out io.Writer
	eof bool

	adminAuth *service.AdminAuth
	catalog   *service.CatalogService
	users     *service.UserService
	orders    *service.OrderService
}

func NewCLIHandler(
	in io.Reader,
	out io.Writer,
	adminAuth *service.AdminAuth,
	catalog *service.CatalogService,
	users *service.UserService,
	orders *service.OrderService,
) *CLIHandler {
	return &CLIHandler{
		in:        bufio.NewScanner(in),
		out:       out,
		adminAuth: adminAuth,
		catalog:   catalog,
		users:     users,
		orders:    orders,
	}
}

// Run shows the welcome screen until the operator exits or input ends.
func (h *CLIHandler) Run(ctx context.Context) {
	for !h.eof {
		h.printf("Welcome to the Food Delivery App!")
		h.printf("1. Admin Login")
		h.printf("2. User Login")
		h.printf("3. Exit")

		switch h.prompt("Please enter your choice: ") {
		case "1":
			h.adminScreen(ctx)
		case "2":
			h.userScreen(ctx)
		case "3":
			h.printf("Exiting the program. Goodbye!")
			return
		default:
			h.invalidChoice()
		}
	}
}

func (h *CLIHandler) prompt(label string) string {
	fmt.Fprint(h.out, label)
	if !h.in.Scan() {
		h.eof = true
		return ""
	}
	return strings.TrimSpace(h.in.Text())
}

// promptDefault keeps the current value when the operator enters nothing.
func (h *CLIHandler) promptDefault(field, current string) string {
	v := h.prompt(fmt.Sprintf("%s (%s): ", field, current))
	if v == "" {
		return current
	}
	return v
}

func (h *CLIHandler) printf(format string, args ...any) {
	fmt.Fprintf(h.out, format+"\n", args...)
}

func (h *CLIHandler) invalidChoice() {
	if !h.eof {
		h.printf("Invalid choice. Please try again.")
	}
}
