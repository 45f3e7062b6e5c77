package firefly

import (
	"context"
	"net/url"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// summaryConcurrency caps the parallel per-budget reads in GetSummary
const summaryConcurrency = 5

type budgetService struct {
	client *Client
}

// List returns budgets, optionally filtered to active ones. The upstream
// endpoint has no active filter, so filtering happens here.
func (s *budgetService) List(ctx context.Context, params *ListBudgetsParams) ([]*Budget, error) {
	var resp budgetArray
	if err := s.client.get(ctx, "budgets.list", "/budgets", nil, &resp); err != nil {
		return nil, err
	}

	budgets := make([]*Budget, 0, len(resp.Data))
	for i := range resp.Data {
		budget := convertBudget(&resp.Data[i])
		if params != nil && params.Active != nil && budget.Active != *params.Active {
			continue
		}
		budgets = append(budgets, budget)
	}
	return budgets, nil
}

// Get returns a single budget by ID
func (s *budgetService) Get(ctx context.Context, id string) (*Budget, error) {
	if id == "" {
		return nil, &ValidationError{Field: "id", Reason: "required"}
	}

	var resp budgetSingle
	if err := s.client.get(ctx, "budgets.get", "/budgets/"+url.PathEscape(id), nil, &resp); err != nil {
		return nil, err
	}

	return convertBudget(&resp.Data), nil
}

// GetSpending returns the spending analysis for one budget over a period.
// The period defaults to the current month when unset.
func (s *budgetService) GetSpending(ctx context.Context, params *SpendingParams) (*BudgetSpending, error) {
	if params == nil || params.BudgetID == "" {
		return nil, &ValidationError{Field: "budget_id", Reason: "required"}
	}
	if err := validateSpendingPeriod(params.Start, params.End); err != nil {
		return nil, err
	}

	budget, err := s.Get(ctx, params.BudgetID)
	if err != nil {
		return nil, err
	}

	return s.spendingFor(ctx, budget, params.Start, params.End)
}

// spendingFor reads the budget limits for the period and folds the spent
// entries into a single analysis row.
func (s *budgetService) spendingFor(ctx context.Context, budget *Budget, start, end *Date) (*BudgetSpending, error) {
	periodStart, periodEnd := resolvePeriod(start, end)

	query := url.Values{}
	query.Set("start", periodStart.String())
	query.Set("end", periodEnd.String())

	var resp budgetLimitArray
	if err := s.client.get(ctx, "budgets.spending", "/budgets/"+url.PathEscape(budget.ID)+"/limits", query, &resp); err != nil {
		return nil, err
	}

	spending := &BudgetSpending{
		BudgetID:   budget.ID,
		BudgetName: budget.Name,
		Spent:      decimal.Zero,
	}

	var budgeted decimal.Decimal
	haveLimit := false
	for i := range resp.Data {
		limit := &resp.Data[i]

		amount, err := parseAmount(limit.Attributes.Amount)
		if err != nil {
			return nil, err
		}
		budgeted = budgeted.Add(amount)
		haveLimit = true

		for _, entry := range limit.Attributes.Spent {
			if entry.Sum == nil {
				continue
			}
			sum, err := parseAmount(*entry.Sum)
			if err != nil {
				return nil, err
			}
			// Firefly reports spending as negative sums
			spending.Spent = spending.Spent.Add(sum.Abs())
		}
	}

	if haveLimit {
		remaining := budgeted.Sub(spending.Spent)
		spending.Budgeted = &budgeted
		spending.Remaining = &remaining
		if budgeted.IsPositive() {
			pct := spending.Spent.Div(budgeted).Mul(decimal.NewFromInt(100)).Round(2)
			spending.PercentageSpent = &pct
		}
	}

	return spending, nil
}

// GetSummary aggregates spending across every budget for a period, active or
// not. Per-budget reads run concurrently; any sub-read failure fails the
// whole summary rather than returning a partial answer.
func (s *budgetService) GetSummary(ctx context.Context, params *SummaryParams) (*BudgetSummary, error) {
	if params == nil {
		params = &SummaryParams{}
	}
	if err := validateSpendingPeriod(params.Start, params.End); err != nil {
		return nil, err
	}

	budgets, err := s.List(ctx, nil)
	if err != nil {
		return nil, err
	}

	rows := make([]*BudgetSpending, len(budgets))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(summaryConcurrency)

	var mu sync.Mutex
	for i, budget := range budgets {
		g.Go(func() error {
			row, err := s.spendingFor(gctx, budget, params.Start, params.End)
			if err != nil {
				return err
			}
			mu.Lock()
			rows[i] = row
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	summary := &BudgetSummary{
		Budgets:    rows,
		TotalSpent: decimal.Zero,
	}

	var totalBudgeted decimal.Decimal
	haveBudgeted := false
	for _, row := range rows {
		summary.TotalSpent = summary.TotalSpent.Add(row.Spent)
		if row.Budgeted != nil {
			totalBudgeted = totalBudgeted.Add(*row.Budgeted)
			haveBudgeted = true
		}
	}
	if haveBudgeted {
		remaining := totalBudgeted.Sub(summary.TotalSpent)
		summary.TotalBudgeted = &totalBudgeted
		summary.TotalRemaining = &remaining
	}

	return summary, nil
}

// GetAvailable returns the available (unallocated) budgets for a period
func (s *budgetService) GetAvailable(ctx context.Context, params *AvailableParams) ([]*AvailableBudget, error) {
	if params == nil {
		params = &AvailableParams{}
	}
	if err := validateSpendingPeriod(params.Start, params.End); err != nil {
		return nil, err
	}

	periodStart, periodEnd := resolvePeriod(params.Start, params.End)

	query := url.Values{}
	query.Set("start", periodStart.String())
	query.Set("end", periodEnd.String())

	var resp availableBudgetArray
	if err := s.client.get(ctx, "budgets.available", "/available-budgets", query, &resp); err != nil {
		return nil, err
	}

	available := make([]*AvailableBudget, 0, len(resp.Data))
	for i := range resp.Data {
		r := &resp.Data[i]
		amount, err := parseAmount(r.Attributes.Amount)
		if err != nil {
			return nil, err
		}
		available = append(available, &AvailableBudget{
			Amount:       amount,
			CurrencyCode: strValue(r.Attributes.CurrencyCode),
			Start:        r.Attributes.Start,
			End:          r.Attributes.End,
		})
	}
	return available, nil
}

// resolvePeriod fills missing bounds with the current month
func resolvePeriod(start, end *Date) (Date, Date) {
	now := timeNow()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := monthStart.AddDate(0, 1, -1)

	resolvedStart := NewDate(monthStart)
	resolvedEnd := NewDate(monthEnd)
	if start != nil {
		resolvedStart = *start
	}
	if end != nil {
		resolvedEnd = *end
	}
	return resolvedStart, resolvedEnd
}

func convertBudget(r *budgetRead) *Budget {
	return &Budget{
		ID:     r.ID,
		Name:   r.Attributes.Name,
		Active: boolValue(r.Attributes.Active),
		Notes:  strValue(r.Attributes.Notes),
		Order:  intValue(r.Attributes.Order),
	}
}
