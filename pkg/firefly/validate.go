package firefly

import "fmt"

// Validation is a discrete, side-effect-free step that runs before any
// network call. Each function either returns nil or a *ValidationError
// naming the offending field.

// MaxBulkCreate and MaxBulkUpdate cap how many items a single bulk call
// may carry. Callers building batches can check these before submitting.
const (
	MaxBulkCreate = 100
	MaxBulkUpdate = 50

	maxPageLimit = 500
)

func validateWithdrawal(p *CreateWithdrawalParams) error {
	if p == nil {
		return &ValidationError{Field: "request", Reason: "missing request body"}
	}
	if !p.Amount.IsPositive() {
		return &ValidationError{Field: "amount", Reason: "must be a positive decimal"}
	}
	if p.Description == "" {
		return &ValidationError{Field: "description", Reason: "required"}
	}
	if p.SourceID == "" {
		return &ValidationError{Field: "source_id", Reason: "required: withdrawals leave an asset account"}
	}
	return nil
}

func validateDeposit(p *CreateDepositParams) error {
	if p == nil {
		return &ValidationError{Field: "request", Reason: "missing request body"}
	}
	if !p.Amount.IsPositive() {
		return &ValidationError{Field: "amount", Reason: "must be a positive decimal"}
	}
	if p.Description == "" {
		return &ValidationError{Field: "description", Reason: "required"}
	}
	if p.DestinationID == "" {
		return &ValidationError{Field: "destination_id", Reason: "required: deposits arrive into an asset account"}
	}
	return nil
}

func validateTransfer(p *CreateTransferParams) error {
	if p == nil {
		return &ValidationError{Field: "request", Reason: "missing request body"}
	}
	if !p.Amount.IsPositive() {
		return &ValidationError{Field: "amount", Reason: "must be a positive decimal"}
	}
	if p.Description == "" {
		return &ValidationError{Field: "description", Reason: "required"}
	}
	if p.SourceID == "" {
		return &ValidationError{Field: "source_id", Reason: "required"}
	}
	if p.DestinationID == "" {
		return &ValidationError{Field: "destination_id", Reason: "required"}
	}
	if p.SourceID == p.DestinationID {
		return &ValidationError{Field: "destination_id", Reason: "transfer source and destination must differ"}
	}
	return nil
}

func validateNewTransaction(t *NewTransaction) error {
	if t == nil {
		return &ValidationError{Field: "transaction", Reason: "missing transaction"}
	}
	if !t.Type.Valid() {
		return &ValidationError{Field: "type", Reason: "must be withdrawal, deposit, or transfer"}
	}
	if !t.Amount.IsPositive() {
		return &ValidationError{Field: "amount", Reason: "must be a positive decimal"}
	}
	if t.Description == "" {
		return &ValidationError{Field: "description", Reason: "required"}
	}

	switch t.Type {
	case TransactionWithdrawal:
		if t.SourceID == "" {
			return &ValidationError{Field: "source_id", Reason: "required for withdrawals"}
		}
	case TransactionDeposit:
		if t.DestinationID == "" {
			return &ValidationError{Field: "destination_id", Reason: "required for deposits"}
		}
	case TransactionTransfer:
		if t.SourceID == "" || t.DestinationID == "" {
			return &ValidationError{Field: "source_id", Reason: "transfers require both source_id and destination_id"}
		}
		if t.SourceID == t.DestinationID {
			return &ValidationError{Field: "destination_id", Reason: "transfer source and destination must differ"}
		}
	}
	return nil
}

func validateListTransactions(p *ListTransactionsParams) error {
	if p == nil {
		return nil
	}
	// start == end is a valid single-instant range
	if p.Start != nil && p.End != nil && p.Start.After(p.End.Time) {
		return &ValidationError{Field: "date_range", Reason: "start must not be after end"}
	}
	if p.Type != "" && !p.Type.Valid() {
		return &ValidationError{Field: "type", Reason: "must be withdrawal, deposit, or transfer"}
	}
	return validatePagination(p.Page, p.Limit)
}

// validatePagination treats zero as unset; the transport applies upstream
// defaults in that case.
func validatePagination(page, limit int) error {
	if page < 0 {
		return &ValidationError{Field: "page", Reason: "must not be negative"}
	}
	if limit < 0 {
		return &ValidationError{Field: "limit", Reason: "must not be negative"}
	}
	if limit > maxPageLimit {
		return &ValidationError{Field: "limit", Reason: fmt.Sprintf("must not exceed %d", maxPageLimit)}
	}
	return nil
}

func validateSearchTransactions(p *SearchTransactionsParams) error {
	if p == nil {
		return &ValidationError{Field: "request", Reason: "missing request body"}
	}
	if p.Type != "" && !p.Type.Valid() {
		return &ValidationError{Field: "type", Reason: "must be withdrawal, deposit, or transfer"}
	}
	if p.DateAfter != nil && p.DateBefore != nil && p.DateAfter.After(p.DateBefore.Time) {
		return &ValidationError{Field: "date_range", Reason: "date_after must not be after date_before"}
	}
	return validatePagination(p.Page, p.Limit)
}

func validateUpdate(p *UpdateTransactionParams) error {
	if p == nil {
		return &ValidationError{Field: "request", Reason: "missing request body"}
	}
	if p.Amount != nil && !p.Amount.IsPositive() {
		return &ValidationError{Field: "amount", Reason: "must be a positive decimal"}
	}
	if p.Description != nil && *p.Description == "" {
		return &ValidationError{Field: "description", Reason: "must not be empty"}
	}
	if p.SourceID != nil && p.DestinationID != nil && *p.SourceID == *p.DestinationID {
		return &ValidationError{Field: "destination_id", Reason: "source and destination must differ"}
	}
	return nil
}

func validateSpendingPeriod(start, end *Date) error {
	if start != nil && end != nil && start.After(end.Time) {
		return &ValidationError{Field: "date_range", Reason: "start must not be after end"}
	}
	return nil
}
