package main

import (
	"github.com/pkg/errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// toolEntry pairs a tool name with the call that adds it to the server.
// The name is held separately so registration can reject duplicates before
// the add runs.
type toolEntry struct {
	name string
	add  func()
}

// registerTools wires every tool into the server. Registration is explicit
// and duplicate names fail startup rather than shadowing each other.
func registerTools(server *mcp.Server, tools *fireflyTools) error {
	return registerEntries(toolEntries(server, tools))
}

// registerEntries adds each entry in order, failing on the first repeated
// name without running its add.
func registerEntries(entries []toolEntry) error {
	seen := map[string]bool{}
	for _, e := range entries {
		if seen[e.name] {
			return errors.Errorf("duplicate tool name %q", e.name)
		}
		seen[e.name] = true
		e.add()
	}
	return nil
}

func toolEntries(server *mcp.Server, tools *fireflyTools) []toolEntry {
	return []toolEntry{
		{"list_accounts", func() {
			mcp.AddTool(server, &mcp.Tool{
				Name:        "list_accounts",
				Description: "List accounts with their current balances. Optionally filter by type: asset, expense, revenue, or liabilities.",
			}, tools.ListAccounts)
		}},
		{"search_accounts", func() {
			mcp.AddTool(server, &mcp.Tool{
				Name:        "search_accounts",
				Description: "Search accounts by name. Returns matching accounts with IDs, types, and balances.",
			}, tools.SearchAccounts)
		}},
		{"get_account", func() {
			mcp.AddTool(server, &mcp.Tool{
				Name:        "get_account",
				Description: "Get a single account by ID, including its current balance and currency.",
			}, tools.GetAccount)
		}},
		{"list_transactions", func() {
			mcp.AddTool(server, &mcp.Tool{
				Name:        "list_transactions",
				Description: "List transactions with optional date range, type, and account filters. Results are paginated.",
			}, tools.ListTransactions)
		}},
		{"search_transactions", func() {
			mcp.AddTool(server, &mcp.Tool{
				Name:        "search_transactions",
				Description: "Search transactions with free text plus structured filters for amount, date, description, category, budget, and account. All filters combine with AND logic.",
			}, tools.SearchTransactions)
		}},
		{"get_transaction", func() {
			mcp.AddTool(server, &mcp.Tool{
				Name:        "get_transaction",
				Description: "Get a single transaction by ID.",
			}, tools.GetTransaction)
		}},
		{"create_withdrawal", func() {
			mcp.AddTool(server, &mcp.Tool{
				Name:        "create_withdrawal",
				Description: "Record an expense: money leaving an asset account. Amount must be a positive decimal string; the date defaults to today.",
			}, tools.CreateWithdrawal)
		}},
		{"create_deposit", func() {
			mcp.AddTool(server, &mcp.Tool{
				Name:        "create_deposit",
				Description: "Record income: money arriving into an asset account. Amount must be a positive decimal string; the date defaults to today.",
			}, tools.CreateDeposit)
		}},
		{"create_transfer", func() {
			mcp.AddTool(server, &mcp.Tool{
				Name:        "create_transfer",
				Description: "Move money between two different asset accounts. Source and destination must differ.",
			}, tools.CreateTransfer)
		}},
		{"create_transactions", func() {
			mcp.AddTool(server, &mcp.Tool{
				Name:        "create_transactions",
				Description: "Create up to 100 transactions in one call. Returns one outcome per input in input order; a failed item never aborts the rest.",
			}, tools.CreateTransactions)
		}},
		{"update_transaction", func() {
			mcp.AddTool(server, &mcp.Tool{
				Name:        "update_transaction",
				Description: "Apply a partial update to an existing transaction. Omitted fields are left unchanged.",
			}, tools.UpdateTransaction)
		}},
		{"update_transactions", func() {
			mcp.AddTool(server, &mcp.Tool{
				Name:        "update_transactions",
				Description: "Apply partial updates to up to 50 transactions in one call. Returns one outcome per input in input order.",
			}, tools.UpdateTransactions)
		}},
		{"delete_transaction", func() {
			mcp.AddTool(server, &mcp.Tool{
				Name:        "delete_transaction",
				Description: "Permanently delete a transaction by ID. Deleting an unknown ID is an error, not a silent success.",
			}, tools.DeleteTransaction)
		}},
		{"list_budgets", func() {
			mcp.AddTool(server, &mcp.Tool{
				Name:        "list_budgets",
				Description: "List budgets, optionally restricted to active ones.",
			}, tools.ListBudgets)
		}},
		{"get_budget", func() {
			mcp.AddTool(server, &mcp.Tool{
				Name:        "get_budget",
				Description: "Get a single budget by ID.",
			}, tools.GetBudget)
		}},
		{"get_budget_spending", func() {
			mcp.AddTool(server, &mcp.Tool{
				Name:        "get_budget_spending",
				Description: "Get spending analysis for one budget over a period: spent, budgeted, remaining, and percentage. The period defaults to the current month.",
			}, tools.GetBudgetSpending)
		}},
		{"get_budget_summary", func() {
			mcp.AddTool(server, &mcp.Tool{
				Name:        "get_budget_summary",
				Description: "Get spending across all budgets for a period, with totals. Computed from fresh upstream reads.",
			}, tools.GetBudgetSummary)
		}},
		{"get_available_budget", func() {
			mcp.AddTool(server, &mcp.Tool{
				Name:        "get_available_budget",
				Description: "Get the available (unallocated) budget amounts for a period. The period defaults to the current month.",
			}, tools.GetAvailableBudget)
		}},
	}
}
