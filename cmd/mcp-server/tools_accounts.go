package main

import (
	"context"

	"github.com/lampyrid/lampyrid-go/pkg/firefly"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ListAccounts tool - lists accounts by type
type ListAccountsInput struct {
	Type string `json:"type,omitempty" jsonschema:"Account type filter: asset, expense, revenue, liabilities, or all (default all)"`
}

type AccountEntry struct {
	ID             string `json:"id" jsonschema:"Account ID"`
	Name           string `json:"name" jsonschema:"Account name"`
	Type           string `json:"type" jsonschema:"Account type"`
	CurrencyCode   string `json:"currencyCode,omitempty" jsonschema:"ISO currency code"`
	CurrentBalance string `json:"currentBalance" jsonschema:"Current balance as a decimal string"`
}

type ListAccountsOutput struct {
	Accounts []AccountEntry `json:"accounts" jsonschema:"List of accounts"`
	Count    int            `json:"count" jsonschema:"Number of accounts returned"`
}

func (t *fireflyTools) ListAccounts(ctx context.Context, req *mcp.CallToolRequest, input ListAccountsInput) (result *mcp.CallToolResult, output ListAccountsOutput, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = t.recovered("list_accounts", r)
		}
	}()

	accountType := firefly.AccountType(input.Type)
	if input.Type == "" {
		accountType = firefly.AccountTypeAll
	}

	accounts, err := t.client.Accounts.List(ctx, accountType)
	if err != nil {
		return toolError(err), ListAccountsOutput{}, nil
	}

	return nil, ListAccountsOutput{
		Accounts: convertAccountEntries(accounts),
		Count:    len(accounts),
	}, nil
}

// SearchAccounts tool - finds accounts by name
type SearchAccountsInput struct {
	Query string `json:"query" jsonschema:"Search text matched against account names"`
	Type  string `json:"type,omitempty" jsonschema:"Account type filter: asset, expense, revenue, liabilities, or all (default all)"`
}

type SearchAccountsOutput struct {
	Accounts []AccountEntry `json:"accounts" jsonschema:"Matching accounts"`
	Count    int            `json:"count" jsonschema:"Number of accounts returned"`
}

func (t *fireflyTools) SearchAccounts(ctx context.Context, req *mcp.CallToolRequest, input SearchAccountsInput) (result *mcp.CallToolResult, output SearchAccountsOutput, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = t.recovered("search_accounts", r)
		}
	}()

	accounts, err := t.client.Accounts.Search(ctx, input.Query, firefly.AccountType(input.Type))
	if err != nil {
		return toolError(err), SearchAccountsOutput{}, nil
	}

	return nil, SearchAccountsOutput{
		Accounts: convertAccountEntries(accounts),
		Count:    len(accounts),
	}, nil
}

// GetAccount tool - fetches one account by ID
type GetAccountInput struct {
	ID string `json:"id" jsonschema:"Account ID"`
}

type GetAccountOutput struct {
	Account AccountEntry `json:"account" jsonschema:"The requested account"`
}

func (t *fireflyTools) GetAccount(ctx context.Context, req *mcp.CallToolRequest, input GetAccountInput) (result *mcp.CallToolResult, output GetAccountOutput, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = t.recovered("get_account", r)
		}
	}()

	account, err := t.client.Accounts.Get(ctx, input.ID)
	if err != nil {
		return toolError(err), GetAccountOutput{}, nil
	}

	return nil, GetAccountOutput{Account: convertAccountEntry(account)}, nil
}

func convertAccountEntries(accounts []*firefly.Account) []AccountEntry {
	entries := make([]AccountEntry, 0, len(accounts))
	for _, a := range accounts {
		entries = append(entries, convertAccountEntry(a))
	}
	return entries
}

func convertAccountEntry(a *firefly.Account) AccountEntry {
	return AccountEntry{
		ID:             a.ID,
		Name:           a.Name,
		Type:           string(a.Type),
		CurrencyCode:   a.CurrencyCode,
		CurrentBalance: a.CurrentBalance.String(),
	}
}
