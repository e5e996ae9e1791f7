package entity

// InvoiceTotals aggregates invoice amounts by status.
type InvoiceTotals struct {
	Count               int64
	TotalPaidInCents    int64
	TotalPendingInCents int64
}

// CardData is the summary shown on the dashboard overview.
type CardData struct {
	NumberOfInvoices    int64
	NumberOfCustomers   int64
	TotalPaidInCents    int64
	TotalPendingInCents int64
}
