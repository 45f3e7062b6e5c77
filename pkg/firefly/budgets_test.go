package firefly

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const budgetListResponse = `{
	"data": [
		{"id": "1", "attributes": {"name": "Groceries", "active": true, "order": 1}},
		{"id": "2", "attributes": {"name": "Dining", "active": true, "order": 2}},
		{"id": "3", "attributes": {"name": "Old Budget", "active": false, "order": 3}}
	]
}`

func TestBudgetService_List(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	mockTransport.On("Get",
		mock.Anything,
		"/budgets",
		mock.Anything,
		mock.Anything,
	).Return(budgetListResponse, nil)

	budgets, err := client.Budgets.List(context.Background(), nil)

	require.NoError(t, err)
	assert.Len(t, budgets, 3)
	assert.Equal(t, "Groceries", budgets[0].Name)
	assert.True(t, budgets[0].Active)
}

func TestBudgetService_List_ActiveOnly(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	mockTransport.On("Get",
		mock.Anything,
		"/budgets",
		mock.Anything,
		mock.Anything,
	).Return(budgetListResponse, nil)

	active := true
	budgets, err := client.Budgets.List(context.Background(), &ListBudgetsParams{Active: &active})

	require.NoError(t, err)
	assert.Len(t, budgets, 2)
	for _, b := range budgets {
		assert.True(t, b.Active)
	}
}

func TestBudgetService_GetSpending(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	mockTransport.On("Get",
		mock.Anything,
		"/budgets/1",
		mock.Anything,
		mock.Anything,
	).Return(`{"data": {"id": "1", "attributes": {"name": "Groceries", "active": true}}}`, nil)

	mockTransport.On("Get",
		mock.Anything,
		"/budgets/1/limits",
		mock.Anything,
		mock.Anything,
	).Return(`{
		"data": [
			{
				"id": "10",
				"attributes": {
					"amount": "400.00",
					"start": "2026-08-01",
					"end": "2026-08-31",
					"spent": [{"sum": "-150.25", "currency_code": "USD"}]
				}
			}
		]
	}`, nil)

	start, _ := ParseDate("2026-08-01")
	end, _ := ParseDate("2026-08-31")
	spending, err := client.Budgets.GetSpending(context.Background(), &SpendingParams{
		BudgetID: "1",
		Start:    &start,
		End:      &end,
	})

	require.NoError(t, err)
	assert.Equal(t, "Groceries", spending.BudgetName)
	assert.Equal(t, "150.25", spending.Spent.String())
	require.NotNil(t, spending.Budgeted)
	assert.Equal(t, "400", spending.Budgeted.String())
	require.NotNil(t, spending.Remaining)
	assert.Equal(t, "249.75", spending.Remaining.String())
	require.NotNil(t, spending.PercentageSpent)
	assert.Equal(t, "37.56", spending.PercentageSpent.String())
}

func TestBudgetService_GetSpending_NoLimit(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	mockTransport.On("Get",
		mock.Anything,
		"/budgets/1",
		mock.Anything,
		mock.Anything,
	).Return(`{"data": {"id": "1", "attributes": {"name": "Groceries", "active": true}}}`, nil)

	mockTransport.On("Get",
		mock.Anything,
		"/budgets/1/limits",
		mock.Anything,
		mock.Anything,
	).Return(`{"data": []}`, nil)

	spending, err := client.Budgets.GetSpending(context.Background(), &SpendingParams{BudgetID: "1"})

	require.NoError(t, err)
	assert.True(t, spending.Spent.IsZero())
	assert.Nil(t, spending.Budgeted)
	assert.Nil(t, spending.Remaining)
	assert.Nil(t, spending.PercentageSpent)
}

func TestBudgetService_GetSpending_RequiresBudgetID(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	_, err := client.Budgets.GetSpending(context.Background(), &SpendingParams{})

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	mockTransport.AssertNotCalled(t, "Get", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestBudgetService_GetSummary(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	mockTransport.On("Get",
		mock.Anything,
		"/budgets",
		mock.Anything,
		mock.Anything,
	).Return(budgetListResponse, nil)

	mockTransport.On("Get",
		mock.Anything,
		"/budgets/1/limits",
		mock.Anything,
		mock.Anything,
	).Return(`{
		"data": [
			{
				"id": "10",
				"attributes": {
					"amount": "400.00",
					"start": "2026-08-01",
					"end": "2026-08-31",
					"spent": [{"sum": "-100.00", "currency_code": "USD"}]
				}
			}
		]
	}`, nil)

	mockTransport.On("Get",
		mock.Anything,
		"/budgets/2/limits",
		mock.Anything,
		mock.Anything,
	).Return(`{
		"data": [
			{
				"id": "11",
				"attributes": {
					"amount": "200.00",
					"start": "2026-08-01",
					"end": "2026-08-31",
					"spent": [{"sum": "-50.00", "currency_code": "USD"}]
				}
			}
		]
	}`, nil)

	mockTransport.On("Get",
		mock.Anything,
		"/budgets/3/limits",
		mock.Anything,
		mock.Anything,
	).Return(`{"data": []}`, nil)

	start, _ := ParseDate("2026-08-01")
	end, _ := ParseDate("2026-08-31")
	summary, err := client.Budgets.GetSummary(context.Background(), &SummaryParams{Start: &start, End: &end})

	require.NoError(t, err)
	// Every budget gets a row, inactive ones included; rows follow the
	// upstream budget order
	require.Len(t, summary.Budgets, 3)
	assert.Equal(t, "Groceries", summary.Budgets[0].BudgetName)
	assert.Equal(t, "Dining", summary.Budgets[1].BudgetName)
	assert.Equal(t, "Old Budget", summary.Budgets[2].BudgetName)
	assert.Equal(t, "150", summary.TotalSpent.String())
	require.NotNil(t, summary.TotalBudgeted)
	assert.Equal(t, "600", summary.TotalBudgeted.String())
	require.NotNil(t, summary.TotalRemaining)
	assert.Equal(t, "450", summary.TotalRemaining.String())
}

func TestBudgetService_GetSummary_IncludesInactiveBudgets(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	mockTransport.On("Get",
		mock.Anything,
		"/budgets",
		mock.Anything,
		mock.Anything,
	).Return(`{
		"data": [
			{"id": "1", "attributes": {"name": "Groceries", "active": true, "order": 1}},
			{"id": "2", "attributes": {"name": "Retired", "active": false, "order": 2}}
		]
	}`, nil)

	mockTransport.On("Get",
		mock.Anything,
		"/budgets/1/limits",
		mock.Anything,
		mock.Anything,
	).Return(`{"data": []}`, nil)

	mockTransport.On("Get",
		mock.Anything,
		"/budgets/2/limits",
		mock.Anything,
		mock.Anything,
	).Return(`{
		"data": [
			{
				"id": "20",
				"attributes": {
					"amount": "75.00",
					"start": "2026-08-01",
					"end": "2026-08-31",
					"spent": [{"sum": "-25.00", "currency_code": "USD"}]
				}
			}
		]
	}`, nil)

	start, _ := ParseDate("2026-08-01")
	end, _ := ParseDate("2026-08-31")
	summary, err := client.Budgets.GetSummary(context.Background(), &SummaryParams{Start: &start, End: &end})

	require.NoError(t, err)
	require.Len(t, summary.Budgets, 2)
	assert.Equal(t, "Retired", summary.Budgets[1].BudgetName)
	assert.Equal(t, "25", summary.Budgets[1].Spent.String())
	assert.Equal(t, "25", summary.TotalSpent.String())
}

func TestBudgetService_GetSummary_FailsWholeOnSubReadError(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	mockTransport.On("Get",
		mock.Anything,
		"/budgets",
		mock.Anything,
		mock.Anything,
	).Return(budgetListResponse, nil)

	mockTransport.On("Get",
		mock.Anything,
		"/budgets/1/limits",
		mock.Anything,
		mock.Anything,
	).Return(`{"data": []}`, nil).Maybe()

	mockTransport.On("Get",
		mock.Anything,
		"/budgets/3/limits",
		mock.Anything,
		mock.Anything,
	).Return(`{"data": []}`, nil).Maybe()

	mockTransport.On("Get",
		mock.Anything,
		"/budgets/2/limits",
		mock.Anything,
		mock.Anything,
	).Return(nil, &UnavailableError{Cause: "server error: 503"})

	start, _ := ParseDate("2026-08-01")
	end, _ := ParseDate("2026-08-31")
	summary, err := client.Budgets.GetSummary(context.Background(), &SummaryParams{Start: &start, End: &end})

	// A partial answer is worse than no answer
	assert.Nil(t, summary)
	var unErr *UnavailableError
	assert.ErrorAs(t, err, &unErr)
}

func TestBudgetService_GetAvailable(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	mockTransport.On("Get",
		mock.Anything,
		"/available-budgets",
		mock.Anything,
		mock.Anything,
	).Return(`{
		"data": [
			{
				"id": "5",
				"attributes": {
					"amount": "1200.00",
					"currency_code": "USD",
					"start": "2026-08-01",
					"end": "2026-08-31"
				}
			}
		]
	}`, nil)

	available, err := client.Budgets.GetAvailable(context.Background(), nil)

	require.NoError(t, err)
	require.Len(t, available, 1)
	assert.Equal(t, "1200", available[0].Amount.String())
	assert.Equal(t, "USD", available[0].CurrencyCode)
}

func TestBudgetService_Get_NotFound(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	mockTransport.On("Get",
		mock.Anything,
		"/budgets/999",
		mock.Anything,
		mock.Anything,
	).Return(nil, ErrNotFound)

	_, err := client.Budgets.Get(context.Background(), "999")
	assert.True(t, IsNotFound(err))
}
