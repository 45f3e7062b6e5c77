package main

import (
	"context"
	"fmt"

	"github.com/lampyrid/lampyrid-go/pkg/firefly"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type TransactionEntry struct {
	ID              string `json:"id" jsonschema:"Transaction ID"`
	Type            string `json:"type" jsonschema:"Transaction type: withdrawal, deposit, or transfer"`
	Amount          string `json:"amount" jsonschema:"Amount as a decimal string"`
	Description     string `json:"description" jsonschema:"Transaction description"`
	Date            string `json:"date" jsonschema:"Transaction date (YYYY-MM-DD)"`
	CurrencyCode    string `json:"currencyCode,omitempty" jsonschema:"ISO currency code"`
	SourceID        string `json:"sourceId,omitempty" jsonschema:"Source account ID"`
	SourceName      string `json:"sourceName,omitempty" jsonschema:"Source account name"`
	DestinationID   string `json:"destinationId,omitempty" jsonschema:"Destination account ID"`
	DestinationName string `json:"destinationName,omitempty" jsonschema:"Destination account name"`
	BudgetID        string `json:"budgetId,omitempty" jsonschema:"Linked budget ID"`
	BudgetName      string `json:"budgetName,omitempty" jsonschema:"Linked budget name"`
	CategoryName    string `json:"categoryName,omitempty" jsonschema:"Category name"`
}

type TransactionPageOutput struct {
	Transactions []TransactionEntry `json:"transactions" jsonschema:"List of transactions"`
	TotalCount   int                `json:"totalCount" jsonschema:"Total number of matching transactions across all pages"`
	CurrentPage  int                `json:"currentPage" jsonschema:"Current page number"`
	PerPage      int                `json:"perPage" jsonschema:"Page size"`
}

// ListTransactions tool - lists transactions with optional filters
type ListTransactionsInput struct {
	Start     string `json:"start,omitempty" jsonschema:"Start date YYYY-MM-DD (inclusive)"`
	End       string `json:"end,omitempty" jsonschema:"End date YYYY-MM-DD (inclusive); must not precede start"`
	Type      string `json:"type,omitempty" jsonschema:"Transaction type filter: withdrawal, deposit, or transfer"`
	AccountID string `json:"accountId,omitempty" jsonschema:"Restrict to transactions touching this account"`
	Page      int    `json:"page,omitempty" jsonschema:"Page number (default 1)"`
	Limit     int    `json:"limit,omitempty" jsonschema:"Page size (max 500)"`
}

func (t *fireflyTools) ListTransactions(ctx context.Context, req *mcp.CallToolRequest, input ListTransactionsInput) (result *mcp.CallToolResult, output TransactionPageOutput, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = t.recovered("list_transactions", r)
		}
	}()

	start, perr := parseOptionalDate("start", input.Start)
	if perr != nil {
		return toolError(perr), TransactionPageOutput{}, nil
	}
	end, perr := parseOptionalDate("end", input.End)
	if perr != nil {
		return toolError(perr), TransactionPageOutput{}, nil
	}

	list, err := t.client.Transactions.List(ctx, &firefly.ListTransactionsParams{
		Start:     start,
		End:       end,
		Type:      firefly.TransactionType(input.Type),
		AccountID: input.AccountID,
		Page:      input.Page,
		Limit:     input.Limit,
	})
	if err != nil {
		return toolError(err), TransactionPageOutput{}, nil
	}

	return nil, convertTransactionPage(list), nil
}

// SearchTransactions tool - searches with free text plus structured filters
type SearchTransactionsInput struct {
	Query               string `json:"query,omitempty" jsonschema:"Free text matched against transaction descriptions"`
	Type                string `json:"type,omitempty" jsonschema:"Transaction type filter: withdrawal, deposit, or transfer"`
	AmountEquals        string `json:"amountEquals,omitempty" jsonschema:"Exact amount as a decimal string"`
	AmountMore          string `json:"amountMore,omitempty" jsonschema:"Minimum amount as a decimal string (exclusive)"`
	AmountLess          string `json:"amountLess,omitempty" jsonschema:"Maximum amount as a decimal string (exclusive)"`
	DateOn              string `json:"dateOn,omitempty" jsonschema:"Exact date YYYY-MM-DD"`
	DateAfter           string `json:"dateAfter,omitempty" jsonschema:"Earliest date YYYY-MM-DD"`
	DateBefore          string `json:"dateBefore,omitempty" jsonschema:"Latest date YYYY-MM-DD"`
	DescriptionContains string `json:"descriptionContains,omitempty" jsonschema:"Substring matched against descriptions"`
	Category            string `json:"category,omitempty" jsonschema:"Exact category name"`
	Budget              string `json:"budget,omitempty" jsonschema:"Exact budget name"`
	AccountContains     string `json:"accountContains,omitempty" jsonschema:"Substring matched against account names"`
	AccountID           string `json:"accountId,omitempty" jsonschema:"Restrict to transactions touching this account"`
	Page                int    `json:"page,omitempty" jsonschema:"Page number (default 1)"`
	Limit               int    `json:"limit,omitempty" jsonschema:"Page size (max 500)"`
}

func (t *fireflyTools) SearchTransactions(ctx context.Context, req *mcp.CallToolRequest, input SearchTransactionsInput) (result *mcp.CallToolResult, output TransactionPageOutput, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = t.recovered("search_transactions", r)
		}
	}()

	params := &firefly.SearchTransactionsParams{
		Query:               input.Query,
		Type:                firefly.TransactionType(input.Type),
		DescriptionContains: input.DescriptionContains,
		Category:            input.Category,
		Budget:              input.Budget,
		AccountContains:     input.AccountContains,
		AccountID:           input.AccountID,
		Page:                input.Page,
		Limit:               input.Limit,
	}

	var perr error
	if params.AmountEquals, perr = parseOptionalAmount("amountEquals", input.AmountEquals); perr != nil {
		return toolError(perr), TransactionPageOutput{}, nil
	}
	if params.AmountMore, perr = parseOptionalAmount("amountMore", input.AmountMore); perr != nil {
		return toolError(perr), TransactionPageOutput{}, nil
	}
	if params.AmountLess, perr = parseOptionalAmount("amountLess", input.AmountLess); perr != nil {
		return toolError(perr), TransactionPageOutput{}, nil
	}
	if params.DateOn, perr = parseOptionalDate("dateOn", input.DateOn); perr != nil {
		return toolError(perr), TransactionPageOutput{}, nil
	}
	if params.DateAfter, perr = parseOptionalDate("dateAfter", input.DateAfter); perr != nil {
		return toolError(perr), TransactionPageOutput{}, nil
	}
	if params.DateBefore, perr = parseOptionalDate("dateBefore", input.DateBefore); perr != nil {
		return toolError(perr), TransactionPageOutput{}, nil
	}

	list, err := t.client.Transactions.Search(ctx, params)
	if err != nil {
		return toolError(err), TransactionPageOutput{}, nil
	}

	return nil, convertTransactionPage(list), nil
}

// GetTransaction tool - fetches one transaction by ID
type GetTransactionInput struct {
	ID string `json:"id" jsonschema:"Transaction ID"`
}

type GetTransactionOutput struct {
	Transaction TransactionEntry `json:"transaction" jsonschema:"The requested transaction"`
}

func (t *fireflyTools) GetTransaction(ctx context.Context, req *mcp.CallToolRequest, input GetTransactionInput) (result *mcp.CallToolResult, output GetTransactionOutput, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = t.recovered("get_transaction", r)
		}
	}()

	tx, err := t.client.Transactions.Get(ctx, input.ID)
	if err != nil {
		return toolError(err), GetTransactionOutput{}, nil
	}

	return nil, GetTransactionOutput{Transaction: convertTransactionEntry(tx)}, nil
}

// CreateWithdrawal tool - records an expense
type CreateWithdrawalInput struct {
	Amount          string `json:"amount" jsonschema:"Positive amount as a decimal string"`
	Description     string `json:"description" jsonschema:"Transaction description"`
	Date            string `json:"date,omitempty" jsonschema:"Transaction date YYYY-MM-DD (default today)"`
	SourceID        string `json:"sourceId" jsonschema:"Asset account the money leaves"`
	DestinationName string `json:"destinationName,omitempty" jsonschema:"Expense account name; created upstream if new"`
	BudgetID        string `json:"budgetId,omitempty" jsonschema:"Budget to link"`
	BudgetName      string `json:"budgetName,omitempty" jsonschema:"Budget name to link (alternative to budgetId)"`
}

type CreateTransactionOutput struct {
	Transaction TransactionEntry `json:"transaction" jsonschema:"The created transaction as stored upstream"`
}

func (t *fireflyTools) CreateWithdrawal(ctx context.Context, req *mcp.CallToolRequest, input CreateWithdrawalInput) (result *mcp.CallToolResult, output CreateTransactionOutput, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = t.recovered("create_withdrawal", r)
		}
	}()

	amount, perr := parseAmount("amount", input.Amount)
	if perr != nil {
		return toolError(perr), CreateTransactionOutput{}, nil
	}
	date, perr := parseOptionalDate("date", input.Date)
	if perr != nil {
		return toolError(perr), CreateTransactionOutput{}, nil
	}

	params := &firefly.CreateWithdrawalParams{
		Amount:          amount,
		Description:     input.Description,
		SourceID:        input.SourceID,
		DestinationName: input.DestinationName,
		BudgetID:        input.BudgetID,
		BudgetName:      input.BudgetName,
	}
	if date != nil {
		params.Date = *date
	}

	tx, err := t.client.Transactions.CreateWithdrawal(ctx, params)
	if err != nil {
		return toolError(err), CreateTransactionOutput{}, nil
	}

	return nil, CreateTransactionOutput{Transaction: convertTransactionEntry(tx)}, nil
}

// CreateDeposit tool - records income
type CreateDepositInput struct {
	Amount        string `json:"amount" jsonschema:"Positive amount as a decimal string"`
	Description   string `json:"description" jsonschema:"Transaction description"`
	Date          string `json:"date,omitempty" jsonschema:"Transaction date YYYY-MM-DD (default today)"`
	SourceName    string `json:"sourceName,omitempty" jsonschema:"Revenue account name; created upstream if new"`
	DestinationID string `json:"destinationId" jsonschema:"Asset account the money arrives into"`
}

func (t *fireflyTools) CreateDeposit(ctx context.Context, req *mcp.CallToolRequest, input CreateDepositInput) (result *mcp.CallToolResult, output CreateTransactionOutput, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = t.recovered("create_deposit", r)
		}
	}()

	amount, perr := parseAmount("amount", input.Amount)
	if perr != nil {
		return toolError(perr), CreateTransactionOutput{}, nil
	}
	date, perr := parseOptionalDate("date", input.Date)
	if perr != nil {
		return toolError(perr), CreateTransactionOutput{}, nil
	}

	params := &firefly.CreateDepositParams{
		Amount:        amount,
		Description:   input.Description,
		SourceName:    input.SourceName,
		DestinationID: input.DestinationID,
	}
	if date != nil {
		params.Date = *date
	}

	tx, err := t.client.Transactions.CreateDeposit(ctx, params)
	if err != nil {
		return toolError(err), CreateTransactionOutput{}, nil
	}

	return nil, CreateTransactionOutput{Transaction: convertTransactionEntry(tx)}, nil
}

// CreateTransfer tool - moves money between asset accounts
type CreateTransferInput struct {
	Amount        string `json:"amount" jsonschema:"Positive amount as a decimal string"`
	Description   string `json:"description" jsonschema:"Transaction description"`
	Date          string `json:"date,omitempty" jsonschema:"Transaction date YYYY-MM-DD (default today)"`
	SourceID      string `json:"sourceId" jsonschema:"Asset account the money leaves"`
	DestinationID string `json:"destinationId" jsonschema:"Asset account the money arrives into; must differ from sourceId"`
}

func (t *fireflyTools) CreateTransfer(ctx context.Context, req *mcp.CallToolRequest, input CreateTransferInput) (result *mcp.CallToolResult, output CreateTransactionOutput, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = t.recovered("create_transfer", r)
		}
	}()

	amount, perr := parseAmount("amount", input.Amount)
	if perr != nil {
		return toolError(perr), CreateTransactionOutput{}, nil
	}
	date, perr := parseOptionalDate("date", input.Date)
	if perr != nil {
		return toolError(perr), CreateTransactionOutput{}, nil
	}

	params := &firefly.CreateTransferParams{
		Amount:        amount,
		Description:   input.Description,
		SourceID:      input.SourceID,
		DestinationID: input.DestinationID,
	}
	if date != nil {
		params.Date = *date
	}

	tx, err := t.client.Transactions.CreateTransfer(ctx, params)
	if err != nil {
		return toolError(err), CreateTransactionOutput{}, nil
	}

	return nil, CreateTransactionOutput{Transaction: convertTransactionEntry(tx)}, nil
}

// CreateTransactions tool - creates a batch with per-item outcomes
type NewTransactionInput struct {
	Type            string `json:"type" jsonschema:"Transaction type: withdrawal, deposit, or transfer"`
	Amount          string `json:"amount" jsonschema:"Positive amount as a decimal string"`
	Description     string `json:"description" jsonschema:"Transaction description"`
	Date            string `json:"date,omitempty" jsonschema:"Transaction date YYYY-MM-DD (default today)"`
	SourceID        string `json:"sourceId,omitempty" jsonschema:"Source account ID"`
	SourceName      string `json:"sourceName,omitempty" jsonschema:"Source account name"`
	DestinationID   string `json:"destinationId,omitempty" jsonschema:"Destination account ID"`
	DestinationName string `json:"destinationName,omitempty" jsonschema:"Destination account name"`
	BudgetID        string `json:"budgetId,omitempty" jsonschema:"Budget to link"`
	BudgetName      string `json:"budgetName,omitempty" jsonschema:"Budget name to link"`
	CategoryName    string `json:"categoryName,omitempty" jsonschema:"Category name"`
}

type CreateTransactionsInput struct {
	Transactions []NewTransactionInput `json:"transactions" jsonschema:"Transactions to create, at most 100"`
}

type BulkOutcomeEntry struct {
	Index       int               `json:"index" jsonschema:"Position in the input batch"`
	Transaction *TransactionEntry `json:"transaction,omitempty" jsonschema:"Created or updated transaction on success"`
	Error       *ErrorEntry       `json:"error,omitempty" jsonschema:"Failure report for this item"`
}

type ErrorEntry struct {
	Kind          string `json:"kind" jsonschema:"Error category"`
	Message       string `json:"message" jsonschema:"Human-readable description"`
	Field         string `json:"field,omitempty" jsonschema:"Offending input field for validation errors"`
	CorrelationID string `json:"correlationId,omitempty" jsonschema:"Correlation ID for internal errors"`
}

type BulkResultOutput struct {
	Outcomes  []BulkOutcomeEntry `json:"outcomes" jsonschema:"One outcome per input item, in input order"`
	Requested int                `json:"requested" jsonschema:"Number of items submitted"`
	Succeeded int                `json:"succeeded" jsonschema:"Number of items that succeeded"`
	Failed    int                `json:"failed" jsonschema:"Number of items that failed"`
}

func (t *fireflyTools) CreateTransactions(ctx context.Context, req *mcp.CallToolRequest, input CreateTransactionsInput) (result *mcp.CallToolResult, output BulkResultOutput, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = t.recovered("create_transactions", r)
		}
	}()

	n := len(input.Transactions)
	if n == 0 {
		return toolError(&firefly.ValidationError{
			Field:  "transactions",
			Reason: "at least one transaction is required",
		}), BulkResultOutput{}, nil
	}
	if n > firefly.MaxBulkCreate {
		return toolError(&firefly.ValidationError{
			Field:  "transactions",
			Reason: fmt.Sprintf("at most %d transactions per batch", firefly.MaxBulkCreate),
		}), BulkResultOutput{}, nil
	}

	// An item that fails amount or date parsing gets its own failed outcome
	// slot; the remaining items still go upstream.
	out := BulkResultOutput{
		Outcomes:  make([]BulkOutcomeEntry, n),
		Requested: n,
	}
	var (
		items   []*firefly.NewTransaction
		indices []int
	)
	for i, in := range input.Transactions {
		out.Outcomes[i] = BulkOutcomeEntry{Index: i}

		item, perr := buildNewTransaction(in)
		if perr != nil {
			out.Outcomes[i].Error = errorEntry(perr)
			out.Failed++
			continue
		}
		items = append(items, item)
		indices = append(indices, i)
	}

	if len(items) > 0 {
		res, err := t.client.Transactions.CreateBulk(ctx, items)
		if err != nil {
			return toolError(err), BulkResultOutput{}, nil
		}
		mergeBulkOutcomes(&out, indices, res)
	}

	return nil, out, nil
}

func buildNewTransaction(in NewTransactionInput) (*firefly.NewTransaction, error) {
	amount, err := parseAmount("amount", in.Amount)
	if err != nil {
		return nil, err
	}
	date, err := parseOptionalDate("date", in.Date)
	if err != nil {
		return nil, err
	}

	item := &firefly.NewTransaction{
		Type:            firefly.TransactionType(in.Type),
		Amount:          amount,
		Description:     in.Description,
		SourceID:        in.SourceID,
		SourceName:      in.SourceName,
		DestinationID:   in.DestinationID,
		DestinationName: in.DestinationName,
		BudgetID:        in.BudgetID,
		BudgetName:      in.BudgetName,
		CategoryName:    in.CategoryName,
	}
	if date != nil {
		item.Date = *date
	}
	return item, nil
}

// UpdateTransaction tool - applies a partial patch
type UpdateTransactionInput struct {
	ID            string `json:"id" jsonschema:"Transaction ID to update"`
	Amount        string `json:"amount,omitempty" jsonschema:"New amount as a decimal string"`
	Description   string `json:"description,omitempty" jsonschema:"New description"`
	Date          string `json:"date,omitempty" jsonschema:"New date YYYY-MM-DD"`
	SourceID      string `json:"sourceId,omitempty" jsonschema:"New source account ID"`
	DestinationID string `json:"destinationId,omitempty" jsonschema:"New destination account ID"`
	BudgetID      string `json:"budgetId,omitempty" jsonschema:"New budget ID"`
	CategoryName  string `json:"categoryName,omitempty" jsonschema:"New category name"`
}

func (t *fireflyTools) UpdateTransaction(ctx context.Context, req *mcp.CallToolRequest, input UpdateTransactionInput) (result *mcp.CallToolResult, output GetTransactionOutput, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = t.recovered("update_transaction", r)
		}
	}()

	params, perr := buildUpdateParams(input)
	if perr != nil {
		return toolError(perr), GetTransactionOutput{}, nil
	}

	tx, err := t.client.Transactions.Update(ctx, input.ID, params)
	if err != nil {
		return toolError(err), GetTransactionOutput{}, nil
	}

	return nil, GetTransactionOutput{Transaction: convertTransactionEntry(tx)}, nil
}

// UpdateTransactions tool - patches a batch with per-item outcomes
type BulkUpdateItemInput struct {
	ID            string `json:"id" jsonschema:"Transaction ID to update"`
	Amount        string `json:"amount,omitempty" jsonschema:"New amount as a decimal string"`
	Description   string `json:"description,omitempty" jsonschema:"New description"`
	Date          string `json:"date,omitempty" jsonschema:"New date YYYY-MM-DD"`
	SourceID      string `json:"sourceId,omitempty" jsonschema:"New source account ID"`
	DestinationID string `json:"destinationId,omitempty" jsonschema:"New destination account ID"`
	BudgetID      string `json:"budgetId,omitempty" jsonschema:"New budget ID"`
	CategoryName  string `json:"categoryName,omitempty" jsonschema:"New category name"`
}

type UpdateTransactionsInput struct {
	Updates []BulkUpdateItemInput `json:"updates" jsonschema:"Updates to apply, at most 50"`
}

func (t *fireflyTools) UpdateTransactions(ctx context.Context, req *mcp.CallToolRequest, input UpdateTransactionsInput) (result *mcp.CallToolResult, output BulkResultOutput, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = t.recovered("update_transactions", r)
		}
	}()

	n := len(input.Updates)
	if n == 0 {
		return toolError(&firefly.ValidationError{
			Field:  "updates",
			Reason: "at least one update is required",
		}), BulkResultOutput{}, nil
	}
	if n > firefly.MaxBulkUpdate {
		return toolError(&firefly.ValidationError{
			Field:  "updates",
			Reason: fmt.Sprintf("at most %d updates per batch", firefly.MaxBulkUpdate),
		}), BulkResultOutput{}, nil
	}

	out := BulkResultOutput{
		Outcomes:  make([]BulkOutcomeEntry, n),
		Requested: n,
	}
	var (
		items   []*firefly.BulkUpdateItem
		indices []int
	)
	for i, in := range input.Updates {
		out.Outcomes[i] = BulkOutcomeEntry{Index: i}

		patch, perr := buildUpdateParams(UpdateTransactionInput(in))
		if perr != nil {
			out.Outcomes[i].Error = errorEntry(perr)
			out.Failed++
			continue
		}
		items = append(items, &firefly.BulkUpdateItem{
			TransactionID: in.ID,
			Patch:         patch,
		})
		indices = append(indices, i)
	}

	if len(items) > 0 {
		res, err := t.client.Transactions.UpdateBulk(ctx, items)
		if err != nil {
			return toolError(err), BulkResultOutput{}, nil
		}
		mergeBulkOutcomes(&out, indices, res)
	}

	return nil, out, nil
}

// DeleteTransaction tool - permanently removes a transaction
type DeleteTransactionInput struct {
	ID string `json:"id" jsonschema:"Transaction ID to delete"`
}

type DeleteTransactionOutput struct {
	Deleted bool   `json:"deleted" jsonschema:"True when the transaction was removed"`
	ID      string `json:"id" jsonschema:"ID of the deleted transaction"`
}

func (t *fireflyTools) DeleteTransaction(ctx context.Context, req *mcp.CallToolRequest, input DeleteTransactionInput) (result *mcp.CallToolResult, output DeleteTransactionOutput, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = t.recovered("delete_transaction", r)
		}
	}()

	if err := t.client.Transactions.Delete(ctx, input.ID); err != nil {
		return toolError(err), DeleteTransactionOutput{}, nil
	}

	return nil, DeleteTransactionOutput{Deleted: true, ID: input.ID}, nil
}

func buildUpdateParams(input UpdateTransactionInput) (*firefly.UpdateTransactionParams, error) {
	params := &firefly.UpdateTransactionParams{
		Description:   optionalString(input.Description),
		SourceID:      optionalString(input.SourceID),
		DestinationID: optionalString(input.DestinationID),
		BudgetID:      optionalString(input.BudgetID),
		CategoryName:  optionalString(input.CategoryName),
	}

	var err error
	if params.Amount, err = parseOptionalAmount("amount", input.Amount); err != nil {
		return nil, err
	}
	if params.Date, err = parseOptionalDate("date", input.Date); err != nil {
		return nil, err
	}
	return params, nil
}

// mergeBulkOutcomes copies per-item results back into their original input
// slots. indices maps the submitted batch position to the input position.
func mergeBulkOutcomes(out *BulkResultOutput, indices []int, res *firefly.BulkResult) {
	for j, o := range res.Outcomes {
		entry := &out.Outcomes[indices[j]]
		if o.Transaction != nil {
			tx := convertTransactionEntry(o.Transaction)
			entry.Transaction = &tx
		}
		if o.Error != nil {
			entry.Error = convertErrorEntry(o.Error)
		}
	}
	out.Succeeded += res.Succeeded
	out.Failed += res.Failed
}

func convertErrorEntry(rep *firefly.ErrorReport) *ErrorEntry {
	return &ErrorEntry{
		Kind:          string(rep.Kind),
		Message:       rep.Message,
		Field:         rep.Field,
		CorrelationID: rep.CorrelationID,
	}
}

func errorEntry(err error) *ErrorEntry {
	return convertErrorEntry(firefly.Report(err))
}

func convertTransactionPage(list *firefly.TransactionList) TransactionPageOutput {
	out := TransactionPageOutput{
		Transactions: make([]TransactionEntry, 0, len(list.Transactions)),
		TotalCount:   list.TotalCount,
		CurrentPage:  list.CurrentPage,
		PerPage:      list.PerPage,
	}
	for _, tx := range list.Transactions {
		out.Transactions = append(out.Transactions, convertTransactionEntry(tx))
	}
	return out
}

func convertTransactionEntry(tx *firefly.Transaction) TransactionEntry {
	return TransactionEntry{
		ID:              tx.ID,
		Type:            string(tx.Type),
		Amount:          tx.Amount.String(),
		Description:     tx.Description,
		Date:            tx.Date.String(),
		CurrencyCode:    tx.CurrencyCode,
		SourceID:        tx.SourceID,
		SourceName:      tx.SourceName,
		DestinationID:   tx.DestinationID,
		DestinationName: tx.DestinationName,
		BudgetID:        tx.BudgetID,
		BudgetName:      tx.BudgetName,
		CategoryName:    tx.CategoryName,
	}
}
