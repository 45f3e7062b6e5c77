package firefly

import (
	"github.com/shopspring/decimal"
)

// AccountType enumerates the Firefly III account categories
type AccountType string

// Account type values
const (
	AccountTypeAsset     AccountType = "asset"
	AccountTypeExpense   AccountType = "expense"
	AccountTypeRevenue   AccountType = "revenue"
	AccountTypeLiability AccountType = "liabilities"
	AccountTypeAll       AccountType = "all"
)

// Valid reports whether the value is a known account type filter
func (t AccountType) Valid() bool {
	switch t {
	case AccountTypeAsset, AccountTypeExpense, AccountTypeRevenue, AccountTypeLiability, AccountTypeAll:
		return true
	}
	return false
}

// TransactionType enumerates the transaction kinds
type TransactionType string

// Transaction type values
const (
	TransactionWithdrawal TransactionType = "withdrawal"
	TransactionDeposit    TransactionType = "deposit"
	TransactionTransfer   TransactionType = "transfer"
)

// Valid reports whether the value is a known transaction type
func (t TransactionType) Valid() bool {
	switch t {
	case TransactionWithdrawal, TransactionDeposit, TransactionTransfer:
		return true
	}
	return false
}

// Account is a Firefly III account. Owned by the upstream system; this
// layer never mutates it.
type Account struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Type           AccountType     `json:"type"`
	CurrencyCode   string          `json:"currencyCode,omitempty"`
	CurrentBalance decimal.Decimal `json:"currentBalance"`
}

// Transaction is a single Firefly III transaction
type Transaction struct {
	ID              string          `json:"id,omitempty"`
	Type            TransactionType `json:"type"`
	Amount          decimal.Decimal `json:"amount"`
	Description     string          `json:"description"`
	Date            Date            `json:"date"`
	CurrencyCode    string          `json:"currencyCode,omitempty"`
	SourceID        string          `json:"sourceId,omitempty"`
	SourceName      string          `json:"sourceName,omitempty"`
	DestinationID   string          `json:"destinationId,omitempty"`
	DestinationName string          `json:"destinationName,omitempty"`
	BudgetID        string          `json:"budgetId,omitempty"`
	BudgetName      string          `json:"budgetName,omitempty"`
	CategoryName    string          `json:"categoryName,omitempty"`
}

// TransactionList is a page of transactions plus pagination metadata
type TransactionList struct {
	Transactions []*Transaction `json:"transactions"`
	TotalCount   int            `json:"totalCount"`
	CurrentPage  int            `json:"currentPage"`
	PerPage      int            `json:"perPage"`
}

// Budget is a Firefly III budget
type Budget struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
	Notes  string `json:"notes,omitempty"`
	Order  int    `json:"order,omitempty"`
}

// BudgetSpending is the spending analysis for one budget over a period.
// Always computed from fresh upstream reads, never from a local cache.
type BudgetSpending struct {
	BudgetID        string           `json:"budgetId"`
	BudgetName      string           `json:"budgetName"`
	Spent           decimal.Decimal  `json:"spent"`
	Budgeted        *decimal.Decimal `json:"budgeted,omitempty"`
	Remaining       *decimal.Decimal `json:"remaining,omitempty"`
	PercentageSpent *decimal.Decimal `json:"percentageSpent,omitempty"`
}

// BudgetSummary aggregates spending across all budgets
type BudgetSummary struct {
	Budgets        []*BudgetSpending `json:"budgets"`
	TotalBudgeted  *decimal.Decimal  `json:"totalBudgeted,omitempty"`
	TotalSpent     decimal.Decimal   `json:"totalSpent"`
	TotalRemaining *decimal.Decimal  `json:"totalRemaining,omitempty"`
}

// AvailableBudget is the unallocated amount for a period
type AvailableBudget struct {
	Amount       decimal.Decimal `json:"amount"`
	CurrencyCode string          `json:"currencyCode"`
	Start        Date            `json:"start"`
	End          Date            `json:"end"`
}

// CreateWithdrawalParams describes money leaving an asset account
type CreateWithdrawalParams struct {
	Amount          decimal.Decimal
	Description     string
	Date            Date
	SourceID        string
	DestinationName string
	BudgetID        string
	BudgetName      string
}

// CreateDepositParams describes money arriving into an asset account
type CreateDepositParams struct {
	Amount        decimal.Decimal
	Description   string
	Date          Date
	SourceName    string
	DestinationID string
}

// CreateTransferParams describes money moving between two asset accounts
type CreateTransferParams struct {
	Amount        decimal.Decimal
	Description   string
	Date          Date
	SourceID      string
	DestinationID string
}

// NewTransaction is one item of a bulk create batch. Required fields vary
// by type; see Validate.
type NewTransaction struct {
	Type            TransactionType `json:"type"`
	Amount          decimal.Decimal `json:"amount"`
	Description     string          `json:"description"`
	Date            Date            `json:"date"`
	SourceID        string          `json:"sourceId,omitempty"`
	SourceName      string          `json:"sourceName,omitempty"`
	DestinationID   string          `json:"destinationId,omitempty"`
	DestinationName string          `json:"destinationName,omitempty"`
	BudgetID        string          `json:"budgetId,omitempty"`
	BudgetName      string          `json:"budgetName,omitempty"`
	CategoryName    string          `json:"categoryName,omitempty"`
}

// ListTransactionsParams filters a transaction listing. Nil date bounds
// mean unbounded; when both are set Start must not be after End.
type ListTransactionsParams struct {
	Start     *Date
	End       *Date
	Type      TransactionType
	AccountID string
	Page      int
	Limit     int
}

// SearchTransactionsParams composes a Firefly III search query from free
// text plus structured filters; all filters combine with AND logic.
type SearchTransactionsParams struct {
	Query               string
	Type                TransactionType
	AmountEquals        *decimal.Decimal
	AmountMore          *decimal.Decimal
	AmountLess          *decimal.Decimal
	DateOn              *Date
	DateAfter           *Date
	DateBefore          *Date
	DescriptionContains string
	Category            string
	Budget              string
	AccountContains     string
	AccountID           string
	Page                int
	Limit               int
}

// UpdateTransactionParams is a partial patch; nil fields are left
// untouched upstream.
type UpdateTransactionParams struct {
	Amount        *decimal.Decimal
	Description   *string
	Date          *Date
	SourceID      *string
	DestinationID *string
	BudgetID      *string
	CategoryName  *string
}

// BulkUpdateItem pairs a transaction ID with its patch
type BulkUpdateItem struct {
	TransactionID string
	Patch         *UpdateTransactionParams
}

// BulkOutcome is the result of one item in a bulk operation. Exactly one
// of Transaction and Error is set.
type BulkOutcome struct {
	Index       int          `json:"index"`
	Transaction *Transaction `json:"transaction,omitempty"`
	Error       *ErrorReport `json:"error,omitempty"`
}

// BulkResult reports the per-item outcomes of a bulk operation, in input
// order. A failed item never aborts its siblings.
type BulkResult struct {
	Outcomes  []*BulkOutcome `json:"outcomes"`
	Requested int            `json:"requested"`
	Succeeded int            `json:"succeeded"`
	Failed    int            `json:"failed"`
}

// SpendingParams scopes a budget spending query
type SpendingParams struct {
	BudgetID string
	Start    *Date
	End      *Date
}

// SummaryParams scopes a budget summary query
type SummaryParams struct {
	Start *Date
	End   *Date
}

// AvailableParams scopes an available-budget query
type AvailableParams struct {
	Start *Date
	End   *Date
}

// ListBudgetsParams filters a budget listing
type ListBudgetsParams struct {
	Active *bool
}
