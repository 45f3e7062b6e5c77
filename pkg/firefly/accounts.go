package firefly

import (
	"context"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"
)

type accountService struct {
	client *Client
}

// List returns accounts, optionally filtered by type
func (s *accountService) List(ctx context.Context, accountType AccountType) ([]*Account, error) {
	if accountType != "" && !accountType.Valid() {
		return nil, &ValidationError{Field: "type", Reason: "must be asset, expense, revenue, liabilities, or all"}
	}

	query := url.Values{}
	if accountType != "" && accountType != AccountTypeAll {
		query.Set("type", string(accountType))
	}

	var resp accountArray
	if err := s.client.get(ctx, "accounts.list", "/accounts", query, &resp); err != nil {
		return nil, err
	}

	return convertAccounts(resp.Data)
}

// Search finds accounts by name, optionally filtered by type
func (s *accountService) Search(ctx context.Context, query string, accountType AccountType) ([]*Account, error) {
	if strings.TrimSpace(query) == "" {
		return nil, &ValidationError{Field: "query", Reason: "required"}
	}
	if accountType != "" && !accountType.Valid() {
		return nil, &ValidationError{Field: "type", Reason: "must be asset, expense, revenue, liabilities, or all"}
	}
	if accountType == "" {
		accountType = AccountTypeAll
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("field", "name")
	params.Set("type", string(accountType))

	var resp accountArray
	if err := s.client.get(ctx, "accounts.search", "/search/accounts", params, &resp); err != nil {
		return nil, err
	}

	return convertAccounts(resp.Data)
}

// Get returns a single account by ID
func (s *accountService) Get(ctx context.Context, id string) (*Account, error) {
	if id == "" {
		return nil, &ValidationError{Field: "id", Reason: "required"}
	}

	var resp accountSingle
	if err := s.client.get(ctx, "accounts.get", "/accounts/"+url.PathEscape(id), nil, &resp); err != nil {
		return nil, err
	}

	return convertAccount(&resp.Data)
}

func convertAccounts(reads []accountRead) ([]*Account, error) {
	accounts := make([]*Account, 0, len(reads))
	for i := range reads {
		account, err := convertAccount(&reads[i])
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
	}
	return accounts, nil
}

func convertAccount(r *accountRead) (*Account, error) {
	balance := decimal.Zero
	if r.Attributes.CurrentBalance != nil {
		var err error
		balance, err = parseAmount(*r.Attributes.CurrentBalance)
		if err != nil {
			return nil, err
		}
	}

	return &Account{
		ID:             r.ID,
		Name:           r.Attributes.Name,
		Type:           AccountType(r.Attributes.Type),
		CurrencyCode:   strValue(r.Attributes.CurrencyCode),
		CurrentBalance: balance,
	}, nil
}
