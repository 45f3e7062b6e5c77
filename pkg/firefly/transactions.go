package firefly

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

type transactionService struct {
	client *Client
}

// List returns a page of transactions matching the filter
func (s *transactionService) List(ctx context.Context, params *ListTransactionsParams) (*TransactionList, error) {
	if params == nil {
		params = &ListTransactionsParams{}
	}
	if err := validateListTransactions(params); err != nil {
		return nil, err
	}

	query := url.Values{}
	if params.Start != nil {
		query.Set("start", params.Start.String())
	}
	if params.End != nil {
		query.Set("end", params.End.String())
	}
	if params.Type != "" {
		query.Set("type", string(params.Type))
	}
	if params.Page > 0 {
		query.Set("page", strconv.Itoa(params.Page))
	}
	if params.Limit > 0 {
		query.Set("limit", strconv.Itoa(params.Limit))
	}

	path := "/transactions"
	if params.AccountID != "" {
		path = "/accounts/" + url.PathEscape(params.AccountID) + "/transactions"
	}

	var resp transactionArray
	if err := s.client.get(ctx, "transactions.list", path, query, &resp); err != nil {
		return nil, err
	}

	return convertTransactionList(&resp)
}

// Search runs a Firefly III search query built from free text and structured
// filters. All filters combine with AND logic.
func (s *transactionService) Search(ctx context.Context, params *SearchTransactionsParams) (*TransactionList, error) {
	if err := validateSearchTransactions(params); err != nil {
		return nil, err
	}

	searchQuery := buildSearchQuery(params)
	if searchQuery == "" {
		return nil, &ValidationError{Field: "query", Reason: "at least one search term or filter is required"}
	}

	query := url.Values{}
	query.Set("query", searchQuery)
	if params.Page > 0 {
		query.Set("page", strconv.Itoa(params.Page))
	}
	if params.Limit > 0 {
		query.Set("limit", strconv.Itoa(params.Limit))
	}

	var resp transactionArray
	if err := s.client.get(ctx, "transactions.search", "/search/transactions", query, &resp); err != nil {
		return nil, err
	}

	return convertTransactionList(&resp)
}

// buildSearchQuery assembles the Firefly III search grammar from structured
// filters. Values with spaces are quoted.
func buildSearchQuery(params *SearchTransactionsParams) string {
	var parts []string

	if q := strings.TrimSpace(params.Query); q != "" {
		parts = append(parts, q)
	}
	if params.Type != "" {
		parts = append(parts, "type:"+string(params.Type))
	}
	if params.AmountEquals != nil {
		parts = append(parts, "amount:"+params.AmountEquals.String())
	}
	if params.AmountMore != nil {
		parts = append(parts, "more:"+params.AmountMore.String())
	}
	if params.AmountLess != nil {
		parts = append(parts, "less:"+params.AmountLess.String())
	}
	if params.DateOn != nil {
		parts = append(parts, "date_on:"+params.DateOn.String())
	}
	if params.DateAfter != nil {
		parts = append(parts, "date_after:"+params.DateAfter.String())
	}
	if params.DateBefore != nil {
		parts = append(parts, "date_before:"+params.DateBefore.String())
	}
	if params.DescriptionContains != "" {
		parts = append(parts, "description_contains:"+quoteSearchValue(params.DescriptionContains))
	}
	if params.Category != "" {
		parts = append(parts, "category_is:"+quoteSearchValue(params.Category))
	}
	if params.Budget != "" {
		parts = append(parts, "budget_is:"+quoteSearchValue(params.Budget))
	}
	if params.AccountContains != "" {
		parts = append(parts, "account_contains:"+quoteSearchValue(params.AccountContains))
	}
	if params.AccountID != "" {
		parts = append(parts, "account_id:"+params.AccountID)
	}

	return strings.Join(parts, " ")
}

func quoteSearchValue(s string) string {
	if strings.ContainsAny(s, " \t") {
		return `"` + s + `"`
	}
	return s
}

// Get returns a single transaction by ID
func (s *transactionService) Get(ctx context.Context, id string) (*Transaction, error) {
	if id == "" {
		return nil, &ValidationError{Field: "id", Reason: "required"}
	}

	var resp transactionSingle
	if err := s.client.get(ctx, "transactions.get", "/transactions/"+url.PathEscape(id), nil, &resp); err != nil {
		return nil, err
	}

	return convertTransaction(&resp.Data)
}

// CreateWithdrawal records money leaving an asset account
func (s *transactionService) CreateWithdrawal(ctx context.Context, params *CreateWithdrawalParams) (*Transaction, error) {
	if err := validateWithdrawal(params); err != nil {
		return nil, err
	}

	split := transactionSplitStore{
		Type:            string(TransactionWithdrawal),
		Date:            effectiveDate(params.Date),
		Amount:          params.Amount.String(),
		Description:     params.Description,
		SourceID:        strPtr(params.SourceID),
		DestinationName: strPtr(params.DestinationName),
		BudgetID:        strPtr(params.BudgetID),
		BudgetName:      strPtr(params.BudgetName),
	}

	return s.store(ctx, "transactions.create_withdrawal", split)
}

// CreateDeposit records money arriving into an asset account
func (s *transactionService) CreateDeposit(ctx context.Context, params *CreateDepositParams) (*Transaction, error) {
	if err := validateDeposit(params); err != nil {
		return nil, err
	}

	split := transactionSplitStore{
		Type:          string(TransactionDeposit),
		Date:          effectiveDate(params.Date),
		Amount:        params.Amount.String(),
		Description:   params.Description,
		SourceName:    strPtr(params.SourceName),
		DestinationID: strPtr(params.DestinationID),
	}

	return s.store(ctx, "transactions.create_deposit", split)
}

// CreateTransfer records money moving between two asset accounts
func (s *transactionService) CreateTransfer(ctx context.Context, params *CreateTransferParams) (*Transaction, error) {
	if err := validateTransfer(params); err != nil {
		return nil, err
	}

	split := transactionSplitStore{
		Type:          string(TransactionTransfer),
		Date:          effectiveDate(params.Date),
		Amount:        params.Amount.String(),
		Description:   params.Description,
		SourceID:      strPtr(params.SourceID),
		DestinationID: strPtr(params.DestinationID),
	}

	return s.store(ctx, "transactions.create_transfer", split)
}

// CreateBulk creates transactions one at a time, preserving input order.
// A failed item is reported in its outcome slot and never aborts the batch.
func (s *transactionService) CreateBulk(ctx context.Context, items []*NewTransaction) (*BulkResult, error) {
	if len(items) == 0 {
		return nil, &ValidationError{Field: "transactions", Reason: "at least one transaction is required"}
	}
	if len(items) > MaxBulkCreate {
		return nil, &ValidationError{Field: "transactions", Reason: fmt.Sprintf("at most %d transactions per batch", MaxBulkCreate)}
	}

	result := &BulkResult{
		Outcomes:  make([]*BulkOutcome, len(items)),
		Requested: len(items),
	}

	for i, item := range items {
		outcome := &BulkOutcome{Index: i}
		result.Outcomes[i] = outcome

		if err := validateNewTransaction(item); err != nil {
			outcome.Error = Report(err)
			result.Failed++
			continue
		}

		split := transactionSplitStore{
			Type:            string(item.Type),
			Date:            effectiveDate(item.Date),
			Amount:          item.Amount.String(),
			Description:     item.Description,
			SourceID:        strPtr(item.SourceID),
			SourceName:      strPtr(item.SourceName),
			DestinationID:   strPtr(item.DestinationID),
			DestinationName: strPtr(item.DestinationName),
			BudgetID:        strPtr(item.BudgetID),
			BudgetName:      strPtr(item.BudgetName),
			CategoryName:    strPtr(item.CategoryName),
		}

		tx, err := s.store(ctx, "transactions.create_bulk", split)
		if err != nil {
			outcome.Error = Report(err)
			result.Failed++
			continue
		}

		outcome.Transaction = tx
		result.Succeeded++
	}

	return result, nil
}

// Update applies a partial patch to an existing transaction
func (s *transactionService) Update(ctx context.Context, id string, params *UpdateTransactionParams) (*Transaction, error) {
	if id == "" {
		return nil, &ValidationError{Field: "id", Reason: "required"}
	}
	if err := validateUpdate(params); err != nil {
		return nil, err
	}

	split := transactionSplitUpdate{
		Description:   params.Description,
		SourceID:      params.SourceID,
		DestinationID: params.DestinationID,
		BudgetID:      params.BudgetID,
		CategoryName:  params.CategoryName,
	}
	if params.Amount != nil {
		amount := params.Amount.String()
		split.Amount = &amount
	}
	if params.Date != nil {
		date := params.Date.String()
		split.Date = &date
	}

	body := transactionUpdate{
		ApplyRules:   true,
		FireWebhooks: true,
		Transactions: []transactionSplitUpdate{split},
	}

	var resp transactionSingle
	if err := s.client.put(ctx, "transactions.update", "/transactions/"+url.PathEscape(id), body, &resp); err != nil {
		return nil, err
	}

	return convertTransaction(&resp.Data)
}

// UpdateBulk patches transactions one at a time, preserving input order
func (s *transactionService) UpdateBulk(ctx context.Context, items []*BulkUpdateItem) (*BulkResult, error) {
	if len(items) == 0 {
		return nil, &ValidationError{Field: "updates", Reason: "at least one update is required"}
	}
	if len(items) > MaxBulkUpdate {
		return nil, &ValidationError{Field: "updates", Reason: fmt.Sprintf("at most %d updates per batch", MaxBulkUpdate)}
	}

	result := &BulkResult{
		Outcomes:  make([]*BulkOutcome, len(items)),
		Requested: len(items),
	}

	for i, item := range items {
		outcome := &BulkOutcome{Index: i}
		result.Outcomes[i] = outcome

		if item == nil || item.TransactionID == "" {
			outcome.Error = Report(&ValidationError{Field: "transaction_id", Reason: "required"})
			result.Failed++
			continue
		}

		tx, err := s.Update(ctx, item.TransactionID, item.Patch)
		if err != nil {
			outcome.Error = Report(err)
			result.Failed++
			continue
		}

		outcome.Transaction = tx
		result.Succeeded++
	}

	return result, nil
}

// Delete removes a transaction permanently. Deleting an unknown ID surfaces
// ErrNotFound rather than succeeding silently.
func (s *transactionService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return &ValidationError{Field: "id", Reason: "required"}
	}

	return s.client.del(ctx, "transactions.delete", "/transactions/"+url.PathEscape(id))
}

// store posts a single-split transaction group and returns the created
// transaction as read back from the response.
func (s *transactionService) store(ctx context.Context, op string, split transactionSplitStore) (*Transaction, error) {
	body := transactionStore{
		ErrorIfDuplicateHash: false,
		ApplyRules:           true,
		FireWebhooks:         true,
		Transactions:         []transactionSplitStore{split},
	}

	var resp transactionSingle
	if err := s.client.post(ctx, op, "/transactions", body, &resp); err != nil {
		return nil, err
	}

	return convertTransaction(&resp.Data)
}

// effectiveDate defaults a zero date to today
func effectiveDate(d Date) string {
	if d.IsZero() {
		return NewDate(timeNow()).String()
	}
	return d.String()
}

func convertTransactionList(resp *transactionArray) (*TransactionList, error) {
	list := &TransactionList{
		Transactions: make([]*Transaction, 0, len(resp.Data)),
	}
	for i := range resp.Data {
		tx, err := convertTransaction(&resp.Data[i])
		if err != nil {
			return nil, err
		}
		list.Transactions = append(list.Transactions, tx)
	}
	if resp.Meta.Pagination != nil {
		list.TotalCount = resp.Meta.Pagination.Total
		list.CurrentPage = resp.Meta.Pagination.CurrentPage
		list.PerPage = resp.Meta.Pagination.PerPage
	} else {
		list.TotalCount = len(list.Transactions)
	}
	return list, nil
}

// convertTransaction maps the first split of a transaction group into the
// flat domain shape. Firefly stores every transaction as a group of splits;
// this layer only ever creates single-split groups.
func convertTransaction(r *transactionRead) (*Transaction, error) {
	if len(r.Attributes.Transactions) == 0 {
		return nil, &DeserializationError{Err: fmt.Errorf("transaction %s has no splits", r.ID)}
	}
	split := r.Attributes.Transactions[0]

	amount, err := parseAmount(split.Amount)
	if err != nil {
		return nil, err
	}

	return &Transaction{
		ID:              r.ID,
		Type:            TransactionType(split.Type),
		Amount:          amount,
		Description:     split.Description,
		Date:            split.Date,
		CurrencyCode:    strValue(split.CurrencyCode),
		SourceID:        strValue(split.SourceID),
		SourceName:      strValue(split.SourceName),
		DestinationID:   strValue(split.DestinationID),
		DestinationName: strValue(split.DestinationName),
		BudgetID:        strValue(split.BudgetID),
		BudgetName:      strValue(split.BudgetName),
		CategoryName:    strValue(split.CategoryName),
	}, nil
}
