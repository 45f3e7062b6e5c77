package firefly

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAccountService_List(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	mockResponse := `{
		"data": [
			{
				"id": "1",
				"attributes": {
					"name": "Checking",
					"type": "asset",
					"currency_code": "USD",
					"current_balance": "1500.50"
				}
			},
			{
				"id": "2",
				"attributes": {
					"name": "Savings",
					"type": "asset",
					"currency_code": "USD",
					"current_balance": "5000.00"
				}
			}
		],
		"meta": {"pagination": {"total": 2, "current_page": 1, "per_page": 50}}
	}`

	mockTransport.On("Get",
		mock.Anything,
		"/accounts",
		mock.Anything,
		mock.Anything,
	).Return(mockResponse, nil)

	accounts, err := client.Accounts.List(context.Background(), AccountTypeAsset)

	require.NoError(t, err)
	assert.Len(t, accounts, 2)
	assert.Equal(t, "1", accounts[0].ID)
	assert.Equal(t, "Checking", accounts[0].Name)
	assert.Equal(t, AccountTypeAsset, accounts[0].Type)
	assert.Equal(t, "1500.5", accounts[0].CurrentBalance.String())

	mockTransport.AssertExpectations(t)
}

func TestAccountService_List_InvalidType(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	_, err := client.Accounts.List(context.Background(), AccountType("bogus"))

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "type", vErr.Field)

	// Invalid input never reaches the network
	mockTransport.AssertNotCalled(t, "Get", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAccountService_Search(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	mockResponse := `{
		"data": [
			{
				"id": "7",
				"attributes": {
					"name": "Groceries Card",
					"type": "asset",
					"current_balance": "42.00"
				}
			}
		]
	}`

	mockTransport.On("Get",
		mock.Anything,
		"/search/accounts",
		mock.Anything,
		mock.Anything,
	).Return(mockResponse, nil)

	accounts, err := client.Accounts.Search(context.Background(), "groceries", "")

	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, "Groceries Card", accounts[0].Name)

	mockTransport.AssertExpectations(t)
}

func TestAccountService_Search_EmptyQuery(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	_, err := client.Accounts.Search(context.Background(), "   ", AccountTypeAsset)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "query", vErr.Field)
	mockTransport.AssertNotCalled(t, "Get", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAccountService_Get(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	mockResponse := `{
		"data": {
			"id": "42",
			"attributes": {
				"name": "Main Account",
				"type": "asset",
				"currency_code": "EUR",
				"current_balance": "-12.34"
			}
		}
	}`

	mockTransport.On("Get",
		mock.Anything,
		"/accounts/42",
		mock.Anything,
		mock.Anything,
	).Return(mockResponse, nil)

	account, err := client.Accounts.Get(context.Background(), "42")

	require.NoError(t, err)
	assert.Equal(t, "42", account.ID)
	assert.Equal(t, "EUR", account.CurrencyCode)
	assert.True(t, account.CurrentBalance.IsNegative())
}

func TestAccountService_Get_NotFound(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	mockTransport.On("Get",
		mock.Anything,
		"/accounts/999",
		mock.Anything,
		mock.Anything,
	).Return(nil, ErrNotFound)

	_, err := client.Accounts.Get(context.Background(), "999")
	assert.True(t, IsNotFound(err))
}

func TestAccountService_Get_MalformedBalance(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	mockResponse := `{
		"data": {
			"id": "42",
			"attributes": {
				"name": "Broken",
				"type": "asset",
				"current_balance": "not-a-number"
			}
		}
	}`

	mockTransport.On("Get",
		mock.Anything,
		"/accounts/42",
		mock.Anything,
		mock.Anything,
	).Return(mockResponse, nil)

	_, err := client.Accounts.Get(context.Background(), "42")

	var dErr *DeserializationError
	assert.ErrorAs(t, err, &dErr)
}
