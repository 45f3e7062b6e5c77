package main

import (
	"context"

	"github.com/lampyrid/lampyrid-go/pkg/firefly"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ListBudgets tool - lists budgets
type ListBudgetsInput struct {
	ActiveOnly bool `json:"activeOnly,omitempty" jsonschema:"Return only active budgets"`
}

type BudgetEntry struct {
	ID     string `json:"id" jsonschema:"Budget ID"`
	Name   string `json:"name" jsonschema:"Budget name"`
	Active bool   `json:"active" jsonschema:"Whether the budget is active"`
	Notes  string `json:"notes,omitempty" jsonschema:"Budget notes"`
	Order  int    `json:"order,omitempty" jsonschema:"Display order"`
}

type ListBudgetsOutput struct {
	Budgets []BudgetEntry `json:"budgets" jsonschema:"List of budgets"`
	Count   int           `json:"count" jsonschema:"Number of budgets returned"`
}

func (t *fireflyTools) ListBudgets(ctx context.Context, req *mcp.CallToolRequest, input ListBudgetsInput) (result *mcp.CallToolResult, output ListBudgetsOutput, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = t.recovered("list_budgets", r)
		}
	}()

	params := &firefly.ListBudgetsParams{}
	if input.ActiveOnly {
		active := true
		params.Active = &active
	}

	budgets, err := t.client.Budgets.List(ctx, params)
	if err != nil {
		return toolError(err), ListBudgetsOutput{}, nil
	}

	entries := make([]BudgetEntry, 0, len(budgets))
	for _, b := range budgets {
		entries = append(entries, convertBudgetEntry(b))
	}

	return nil, ListBudgetsOutput{Budgets: entries, Count: len(entries)}, nil
}

// GetBudget tool - fetches one budget by ID
type GetBudgetInput struct {
	ID string `json:"id" jsonschema:"Budget ID"`
}

type GetBudgetOutput struct {
	Budget BudgetEntry `json:"budget" jsonschema:"The requested budget"`
}

func (t *fireflyTools) GetBudget(ctx context.Context, req *mcp.CallToolRequest, input GetBudgetInput) (result *mcp.CallToolResult, output GetBudgetOutput, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = t.recovered("get_budget", r)
		}
	}()

	budget, err := t.client.Budgets.Get(ctx, input.ID)
	if err != nil {
		return toolError(err), GetBudgetOutput{}, nil
	}

	return nil, GetBudgetOutput{Budget: convertBudgetEntry(budget)}, nil
}

// GetBudgetSpending tool - spending analysis for one budget
type GetBudgetSpendingInput struct {
	BudgetID string `json:"budgetId" jsonschema:"Budget ID"`
	Start    string `json:"start,omitempty" jsonschema:"Period start YYYY-MM-DD (default: first day of current month)"`
	End      string `json:"end,omitempty" jsonschema:"Period end YYYY-MM-DD (default: last day of current month)"`
}

type BudgetSpendingEntry struct {
	BudgetID        string `json:"budgetId" jsonschema:"Budget ID"`
	BudgetName      string `json:"budgetName" jsonschema:"Budget name"`
	Spent           string `json:"spent" jsonschema:"Amount spent in the period as a decimal string"`
	Budgeted        string `json:"budgeted,omitempty" jsonschema:"Budgeted amount; empty when no limit is set"`
	Remaining       string `json:"remaining,omitempty" jsonschema:"Budgeted minus spent; empty when no limit is set"`
	PercentageSpent string `json:"percentageSpent,omitempty" jsonschema:"Spent as a percentage of budgeted"`
}

type GetBudgetSpendingOutput struct {
	Spending BudgetSpendingEntry `json:"spending" jsonschema:"Spending analysis for the budget"`
}

func (t *fireflyTools) GetBudgetSpending(ctx context.Context, req *mcp.CallToolRequest, input GetBudgetSpendingInput) (result *mcp.CallToolResult, output GetBudgetSpendingOutput, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = t.recovered("get_budget_spending", r)
		}
	}()

	start, perr := parseOptionalDate("start", input.Start)
	if perr != nil {
		return toolError(perr), GetBudgetSpendingOutput{}, nil
	}
	end, perr := parseOptionalDate("end", input.End)
	if perr != nil {
		return toolError(perr), GetBudgetSpendingOutput{}, nil
	}

	spending, err := t.client.Budgets.GetSpending(ctx, &firefly.SpendingParams{
		BudgetID: input.BudgetID,
		Start:    start,
		End:      end,
	})
	if err != nil {
		return toolError(err), GetBudgetSpendingOutput{}, nil
	}

	return nil, GetBudgetSpendingOutput{Spending: convertSpendingEntry(spending)}, nil
}

// GetBudgetSummary tool - spending across all budgets
type GetBudgetSummaryInput struct {
	Start string `json:"start,omitempty" jsonschema:"Period start YYYY-MM-DD (default: first day of current month)"`
	End   string `json:"end,omitempty" jsonschema:"Period end YYYY-MM-DD (default: last day of current month)"`
}

type GetBudgetSummaryOutput struct {
	Budgets        []BudgetSpendingEntry `json:"budgets" jsonschema:"Per-budget spending rows"`
	TotalBudgeted  string                `json:"totalBudgeted,omitempty" jsonschema:"Sum of budgeted amounts; empty when no limits are set"`
	TotalSpent     string                `json:"totalSpent" jsonschema:"Sum of spent amounts"`
	TotalRemaining string                `json:"totalRemaining,omitempty" jsonschema:"Total budgeted minus total spent"`
}

func (t *fireflyTools) GetBudgetSummary(ctx context.Context, req *mcp.CallToolRequest, input GetBudgetSummaryInput) (result *mcp.CallToolResult, output GetBudgetSummaryOutput, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = t.recovered("get_budget_summary", r)
		}
	}()

	start, perr := parseOptionalDate("start", input.Start)
	if perr != nil {
		return toolError(perr), GetBudgetSummaryOutput{}, nil
	}
	end, perr := parseOptionalDate("end", input.End)
	if perr != nil {
		return toolError(perr), GetBudgetSummaryOutput{}, nil
	}

	summary, err := t.client.Budgets.GetSummary(ctx, &firefly.SummaryParams{Start: start, End: end})
	if err != nil {
		return toolError(err), GetBudgetSummaryOutput{}, nil
	}

	out := GetBudgetSummaryOutput{
		Budgets:        make([]BudgetSpendingEntry, 0, len(summary.Budgets)),
		TotalBudgeted:  decimalString(summary.TotalBudgeted),
		TotalSpent:     summary.TotalSpent.String(),
		TotalRemaining: decimalString(summary.TotalRemaining),
	}
	for _, row := range summary.Budgets {
		out.Budgets = append(out.Budgets, convertSpendingEntry(row))
	}

	return nil, out, nil
}

// GetAvailableBudget tool - unallocated amounts for a period
type GetAvailableBudgetInput struct {
	Start string `json:"start,omitempty" jsonschema:"Period start YYYY-MM-DD (default: first day of current month)"`
	End   string `json:"end,omitempty" jsonschema:"Period end YYYY-MM-DD (default: last day of current month)"`
}

type AvailableBudgetEntry struct {
	Amount       string `json:"amount" jsonschema:"Available amount as a decimal string"`
	CurrencyCode string `json:"currencyCode,omitempty" jsonschema:"ISO currency code"`
	Start        string `json:"start" jsonschema:"Period start"`
	End          string `json:"end" jsonschema:"Period end"`
}

type GetAvailableBudgetOutput struct {
	Available []AvailableBudgetEntry `json:"available" jsonschema:"Available budgets for the period"`
}

func (t *fireflyTools) GetAvailableBudget(ctx context.Context, req *mcp.CallToolRequest, input GetAvailableBudgetInput) (result *mcp.CallToolResult, output GetAvailableBudgetOutput, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = t.recovered("get_available_budget", r)
		}
	}()

	start, perr := parseOptionalDate("start", input.Start)
	if perr != nil {
		return toolError(perr), GetAvailableBudgetOutput{}, nil
	}
	end, perr := parseOptionalDate("end", input.End)
	if perr != nil {
		return toolError(perr), GetAvailableBudgetOutput{}, nil
	}

	available, err := t.client.Budgets.GetAvailable(ctx, &firefly.AvailableParams{Start: start, End: end})
	if err != nil {
		return toolError(err), GetAvailableBudgetOutput{}, nil
	}

	entries := make([]AvailableBudgetEntry, 0, len(available))
	for _, a := range available {
		entries = append(entries, AvailableBudgetEntry{
			Amount:       a.Amount.String(),
			CurrencyCode: a.CurrencyCode,
			Start:        a.Start.String(),
			End:          a.End.String(),
		})
	}

	return nil, GetAvailableBudgetOutput{Available: entries}, nil
}

func convertBudgetEntry(b *firefly.Budget) BudgetEntry {
	return BudgetEntry{
		ID:     b.ID,
		Name:   b.Name,
		Active: b.Active,
		Notes:  b.Notes,
		Order:  b.Order,
	}
}

func convertSpendingEntry(s *firefly.BudgetSpending) BudgetSpendingEntry {
	return BudgetSpendingEntry{
		BudgetID:        s.BudgetID,
		BudgetName:      s.BudgetName,
		Spent:           s.Spent.String(),
		Budgeted:        decimalString(s.Budgeted),
		Remaining:       decimalString(s.Remaining),
		PercentageSpent: decimalString(s.PercentageSpent),
	}
}
