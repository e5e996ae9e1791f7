package schema

import (
	"strings"

	"acorn/internal/domain/entity"
	"acorn/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	MsgSelectCustomer = "Please select a customer."
	MsgAmountPositive = "Please enter an amount greater than $0."
	MsgAmountTooLarge = "Please enter an amount of at most $1,000,000,000."
	MsgSelectStatus   = "Please select an invoice status."
	MsgInvalidInvoice = "Invalid invoice id."
)

var (
	minAmount = decimal.New(1, -2) // 0.01
	maxAmount = decimal.New(1, 9)  // keeps cents well inside bigint and the search format
)

// invoiceForm is validated by tags; amount is checked separately with exact decimals.
type invoiceForm struct {
	CustomerID string `form:"customerId" validate:"required,uuid"`
	Amount     string `form:"amount" validate:"required"`
	Status     string `form:"status" validate:"required,oneof=pending paid overdue"`
}

var invoiceMessages = fieldMessages{
	"customerId": MsgSelectCustomer,
	"amount":     MsgAmountPositive,
	"status":     MsgSelectStatus,
}

// InvoiceFields are validated, typed invoice form values.
type InvoiceFields struct {
	CustomerID    uuid.UUID
	AmountInCents int64
	Status        entity.InvoiceStatus
}

// ParseInvoiceForm validates the three invoice fields. On failure the returned fields are nil
// and the errors are keyed by customerId, amount and status.
func ParseInvoiceForm(input usecase.InvoiceFormInput) (*InvoiceFields, usecase.FieldErrors) {
	form := invoiceForm{
		CustomerID: strings.TrimSpace(input.CustomerID),
		Amount:     strings.TrimSpace(input.Amount),
		Status:     strings.TrimSpace(input.Status),
	}

	fieldErrs := collect(form, invoiceMessages)

	var cents int64
	if _, failed := fieldErrs["amount"]; !failed {
		var msg string
		cents, msg = parseAmount(form.Amount)
		if msg != "" {
			fieldErrs.Add("amount", msg)
		}
	}

	if !fieldErrs.Empty() {
		return nil, fieldErrs
	}

	status, _ := entity.ParseInvoiceStatus(form.Status)

	return &InvoiceFields{
		CustomerID:    uuid.MustParse(form.CustomerID),
		AmountInCents: cents,
		Status:        status,
	}, nil
}

// parseAmount requires amount >= 0.01 and a positive cent value after rounding.
func parseAmount(raw string) (int64, string) {
	amount, err := decimal.NewFromString(raw)
	if err != nil || amount.LessThan(minAmount) {
		return 0, MsgAmountPositive
	}
	if amount.GreaterThan(maxAmount) {
		return 0, MsgAmountTooLarge
	}

	cents, err := entity.CentsFromAmount(raw)
	if err != nil || cents <= 0 {
		return 0, MsgAmountPositive
	}

	return cents, ""
}

// ParseInvoiceID parses an invoice id coming from the route rather than the form.
func ParseInvoiceID(raw string) (uuid.UUID, bool) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil || id == uuid.Nil {
		return uuid.Nil, false
	}

	return id, true
}
