package firefly

import (
	"github.com/shopspring/decimal"
)

// Wire shapes for the Firefly III JSON envelope. Amounts travel as decimal
// strings; they are parsed into decimal.Decimal at the boundary and never
// handled as floats.

type accountAttributes struct {
	Name           string  `json:"name"`
	Type           string  `json:"type"`
	CurrencyCode   *string `json:"currency_code"`
	CurrentBalance *string `json:"current_balance"`
}

type accountRead struct {
	ID         string            `json:"id"`
	Attributes accountAttributes `json:"attributes"`
}

type accountArray struct {
	Data []accountRead  `json:"data"`
	Meta paginationMeta `json:"meta"`
}

type accountSingle struct {
	Data accountRead `json:"data"`
}

type paginationMeta struct {
	Pagination *struct {
		Total       int `json:"total"`
		CurrentPage int `json:"current_page"`
		PerPage     int `json:"per_page"`
	} `json:"pagination"`
}

type transactionSplit struct {
	Type            string  `json:"type"`
	Date            Date    `json:"date"`
	Amount          string  `json:"amount"`
	Description     string  `json:"description"`
	CurrencyCode    *string `json:"currency_code"`
	SourceID        *string `json:"source_id"`
	SourceName      *string `json:"source_name"`
	DestinationID   *string `json:"destination_id"`
	DestinationName *string `json:"destination_name"`
	BudgetID        *string `json:"budget_id"`
	BudgetName      *string `json:"budget_name"`
	CategoryName    *string `json:"category_name"`
}

type transactionRead struct {
	ID         string `json:"id"`
	Attributes struct {
		GroupTitle   *string            `json:"group_title"`
		Transactions []transactionSplit `json:"transactions"`
	} `json:"attributes"`
}

type transactionArray struct {
	Data []transactionRead `json:"data"`
	Meta paginationMeta    `json:"meta"`
}

type transactionSingle struct {
	Data transactionRead `json:"data"`
}

type transactionSplitStore struct {
	Type            string  `json:"type"`
	Date            string  `json:"date"`
	Amount          string  `json:"amount"`
	Description     string  `json:"description"`
	SourceID        *string `json:"source_id,omitempty"`
	SourceName      *string `json:"source_name,omitempty"`
	DestinationID   *string `json:"destination_id,omitempty"`
	DestinationName *string `json:"destination_name,omitempty"`
	BudgetID        *string `json:"budget_id,omitempty"`
	BudgetName      *string `json:"budget_name,omitempty"`
	CategoryName    *string `json:"category_name,omitempty"`
}

type transactionStore struct {
	ErrorIfDuplicateHash bool                    `json:"error_if_duplicate_hash"`
	ApplyRules           bool                    `json:"apply_rules"`
	FireWebhooks         bool                    `json:"fire_webhooks"`
	Transactions         []transactionSplitStore `json:"transactions"`
}

type transactionSplitUpdate struct {
	Amount        *string `json:"amount,omitempty"`
	Description   *string `json:"description,omitempty"`
	Date          *string `json:"date,omitempty"`
	SourceID      *string `json:"source_id,omitempty"`
	DestinationID *string `json:"destination_id,omitempty"`
	BudgetID      *string `json:"budget_id,omitempty"`
	CategoryName  *string `json:"category_name,omitempty"`
}

type transactionUpdate struct {
	ApplyRules   bool                     `json:"apply_rules"`
	FireWebhooks bool                     `json:"fire_webhooks"`
	Transactions []transactionSplitUpdate `json:"transactions"`
}

type budgetAttributes struct {
	Name   string  `json:"name"`
	Active *bool   `json:"active"`
	Notes  *string `json:"notes"`
	Order  *int    `json:"order"`
}

type budgetRead struct {
	ID         string           `json:"id"`
	Attributes budgetAttributes `json:"attributes"`
}

type budgetArray struct {
	Data []budgetRead `json:"data"`
}

type budgetSingle struct {
	Data budgetRead `json:"data"`
}

type spentEntry struct {
	Sum          *string `json:"sum"`
	CurrencyCode *string `json:"currency_code"`
}

type budgetLimitRead struct {
	ID         string `json:"id"`
	Attributes struct {
		Amount string       `json:"amount"`
		Start  Date         `json:"start"`
		End    Date         `json:"end"`
		Spent  []spentEntry `json:"spent"`
	} `json:"attributes"`
}

type budgetLimitArray struct {
	Data []budgetLimitRead `json:"data"`
}

type availableBudgetRead struct {
	ID         string `json:"id"`
	Attributes struct {
		Amount       string  `json:"amount"`
		CurrencyCode *string `json:"currency_code"`
		Start        Date    `json:"start"`
		End          Date    `json:"end"`
	} `json:"attributes"`
}

type availableBudgetArray struct {
	Data []availableBudgetRead `json:"data"`
}

// parseAmount converts a wire decimal string into a Decimal, surfacing a
// DeserializationError on malformed input.
func parseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, &DeserializationError{Err: err}
	}
	return d, nil
}

// strValue returns an empty string if the pointer is nil
func strValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// strPtr returns a pointer to s, or nil if s is empty
func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// boolValue returns false if the pointer is nil
func boolValue(b *bool) bool {
	if b == nil {
		return false
	}
	return *b
}

// intValue returns 0 if the pointer is nil
func intValue(i *int) int {
	if i == nil {
		return 0
	}
	return *i
}
