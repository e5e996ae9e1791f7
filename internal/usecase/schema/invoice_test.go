package schema

import (
	"testing"

	"acorn/internal/domain/entity"
	"acorn/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const customerID = "d6e15727-9fe1-4961-8c5b-ea44a9bd81aa"

func TestParseInvoiceForm_Valid(t *testing.T) {
	tests := []struct {
		amount string
		cents  int64
	}{
		{"0.01", 1},
		{"12.345", 1235},
		{"12.344", 1234},
		{"157.95", 15795},
		{" 100 ", 10000},
		{"1000000000", 100000000000},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			fields, errs := ParseInvoiceForm(usecase.InvoiceFormInput{
				CustomerID: customerID,
				Amount:     tt.amount,
				Status:     "paid",
			})
			require.Nil(t, errs)
			require.NotNil(t, fields)

			assert.Equal(t, uuid.MustParse(customerID), fields.CustomerID)
			assert.Equal(t, tt.cents, fields.AmountInCents)
			assert.Equal(t, entity.InvoiceStatusPaid, fields.Status)
		})
	}
}

func TestParseInvoiceForm_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input usecase.InvoiceFormInput
		want  usecase.FieldErrors
	}{
		{
			name:  "everything missing",
			input: usecase.InvoiceFormInput{},
			want: usecase.FieldErrors{
				"customerId": {MsgSelectCustomer},
				"amount":     {MsgAmountPositive},
				"status":     {MsgSelectStatus},
			},
		},
		{
			name:  "customer is not a uuid",
			input: usecase.InvoiceFormInput{CustomerID: "abc", Amount: "10", Status: "pending"},
			want:  usecase.FieldErrors{"customerId": {MsgSelectCustomer}},
		},
		{
			name:  "zero amount",
			input: usecase.InvoiceFormInput{CustomerID: customerID, Amount: "0", Status: "pending"},
			want:  usecase.FieldErrors{"amount": {MsgAmountPositive}},
		},
		{
			name:  "negative amount",
			input: usecase.InvoiceFormInput{CustomerID: customerID, Amount: "-3", Status: "pending"},
			want:  usecase.FieldErrors{"amount": {MsgAmountPositive}},
		},
		{
			name:  "rounds to zero cents",
			input: usecase.InvoiceFormInput{CustomerID: customerID, Amount: "0.004", Status: "pending"},
			want:  usecase.FieldErrors{"amount": {MsgAmountPositive}},
		},
		{
			name:  "below one cent even though it rounds up",
			input: usecase.InvoiceFormInput{CustomerID: customerID, Amount: "0.005", Status: "pending"},
			want:  usecase.FieldErrors{"amount": {MsgAmountPositive}},
		},
		{
			name:  "not a number",
			input: usecase.InvoiceFormInput{CustomerID: customerID, Amount: "ten", Status: "pending"},
			want:  usecase.FieldErrors{"amount": {MsgAmountPositive}},
		},
		{
			name:  "too large",
			input: usecase.InvoiceFormInput{CustomerID: customerID, Amount: "1000000000.01", Status: "pending"},
			want:  usecase.FieldErrors{"amount": {MsgAmountTooLarge}},
		},
		{
			name:  "status outside the enum",
			input: usecase.InvoiceFormInput{CustomerID: customerID, Amount: "10", Status: "cancelled"},
			want:  usecase.FieldErrors{"status": {MsgSelectStatus}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields, errs := ParseInvoiceForm(tt.input)
			assert.Nil(t, fields)
			assert.Equal(t, tt.want, errs)
		})
	}
}

func TestParseInvoiceID(t *testing.T) {
	id, ok := ParseInvoiceID(customerID)
	assert.True(t, ok)
	assert.Equal(t, uuid.MustParse(customerID), id)

	_, ok = ParseInvoiceID("not-a-uuid")
	assert.False(t, ok)

	_, ok = ParseInvoiceID(uuid.Nil.String())
	assert.False(t, ok)
}
