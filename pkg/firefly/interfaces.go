package firefly

import (
	"context"
)

// AccountService handles account-related read operations
type AccountService interface {
	// List returns accounts, optionally filtered by type
	List(ctx context.Context, accountType AccountType) ([]*Account, error)

	// Search finds accounts by name, optionally filtered by type
	Search(ctx context.Context, query string, accountType AccountType) ([]*Account, error)

	// Get returns a single account by ID
	Get(ctx context.Context, id string) (*Account, error)
}

// TransactionService handles transaction operations
type TransactionService interface {
	// List returns a page of transactions matching the filter
	List(ctx context.Context, params *ListTransactionsParams) (*TransactionList, error)

	// Search runs a Firefly III search query built from free text and
	// structured filters
	Search(ctx context.Context, params *SearchTransactionsParams) (*TransactionList, error)

	// Get returns a single transaction by ID
	Get(ctx context.Context, id string) (*Transaction, error)

	// CreateWithdrawal records money leaving an asset account
	CreateWithdrawal(ctx context.Context, params *CreateWithdrawalParams) (*Transaction, error)

	// CreateDeposit records money arriving into an asset account
	CreateDeposit(ctx context.Context, params *CreateDepositParams) (*Transaction, error)

	// CreateTransfer records money moving between two asset accounts
	CreateTransfer(ctx context.Context, params *CreateTransferParams) (*Transaction, error)

	// CreateBulk creates up to 100 transactions, reporting one outcome per
	// input in input order
	CreateBulk(ctx context.Context, items []*NewTransaction) (*BulkResult, error)

	// Update applies a partial patch to an existing transaction
	Update(ctx context.Context, id string, params *UpdateTransactionParams) (*Transaction, error)

	// UpdateBulk patches up to 50 transactions, reporting one outcome per
	// input in input order
	UpdateBulk(ctx context.Context, items []*BulkUpdateItem) (*BulkResult, error)

	// Delete removes a transaction permanently
	Delete(ctx context.Context, id string) error
}

// BudgetService handles budget reads and spending analysis
type BudgetService interface {
	// List returns budgets, optionally filtered to active ones
	List(ctx context.Context, params *ListBudgetsParams) ([]*Budget, error)

	// Get returns a single budget by ID
	Get(ctx context.Context, id string) (*Budget, error)

	// GetSpending returns the spending analysis for one budget over a period
	GetSpending(ctx context.Context, params *SpendingParams) (*BudgetSpending, error)

	// GetSummary aggregates spending across all budgets for a period
	GetSummary(ctx context.Context, params *SummaryParams) (*BudgetSummary, error)

	// GetAvailable returns the available (unallocated) budgets for a period
	GetAvailable(ctx context.Context, params *AvailableParams) ([]*AvailableBudget, error)
}
