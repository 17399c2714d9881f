package models

import (
	"github.com/shopspring/decimal"
)

// Kind is the tag that distinguishes detail-line layouts.
type Kind string

const (
	// KindBank is a bank-billing line carrying a billing reference.
	KindBank Kind = "BANC"
	// KindCard is a card-payment line without a billing reference.
	KindCard Kind = "CART"
)

// Variant names the detail pattern that produced a record.
type Variant string

const (
	VariantBank    Variant = "bank"
	VariantCard    Variant = "card"
	VariantGeneric Variant = "generic"
)

// DetailRecord is one financial obligation, with a snapshot of the party it belongs to.
type DetailRecord struct {
	Party PartyContext `json:"party"`

	DocumentID string  `json:"document_id"`
	IssueDate  string  `json:"issue_date"`
	DueDate    string  `json:"due_date"`
	Aging      int     `json:"aging"`
	Kind       Kind    `json:"kind"`
	Variant    Variant `json:"variant"`
	BillingRef string  `json:"billing_ref"`

	DocumentAmount decimal.Decimal `json:"document_amount"`
	Interest       decimal.Decimal `json:"interest"`
	Penalty        decimal.Decimal `json:"penalty"`
	Fee            decimal.Decimal `json:"fee"`
	TotalAmount    decimal.Decimal `json:"total_amount"`

	// Page and Line locate the source line (1-based).
	Page int `json:"page"`
	Line int `json:"line"`
}

// Amounts returns the five amount fields in column order.
func (r DetailRecord) Amounts() []decimal.Decimal {
	return []decimal.Decimal{r.DocumentAmount, r.Interest, r.Penalty, r.Fee, r.TotalAmount}
}
