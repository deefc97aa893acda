package transaction

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/bank-server/internal/ledger"
	"github.com/carson-networks/bank-server/internal/service"
)

func newListTestAPI(t *testing.T, svc transactionLister) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewListTransactionsHandler(svc).Register(api)
	return api
}

// -- parseListTransactionsInput unit tests --

func TestParseListTransactionsInput_NoCursor(t *testing.T) {
	accountNumber, cursor, err := parseListTransactionsInput(&ListTransactionsInput{
		Body: ListTransactionsBody{AccountNumber: "SAV001"},
	})

	assert.NoError(t, err)
	assert.Equal(t, "SAV001", accountNumber)
	assert.Nil(t, cursor)
}

func TestParseListTransactionsInput_CursorOverridesFilter(t *testing.T) {
	accountNumber, cursor, err := parseListTransactionsInput(&ListTransactionsInput{
		Body: ListTransactionsBody{
			AccountNumber: "SAV001",
			Cursor: &ListTransactionsCursor{
				Position:      40,
				Limit:         10,
				AccountNumber: "CHK001",
			},
		},
	})

	assert.NoError(t, err)
	assert.Equal(t, "CHK001", accountNumber)
	require.NotNil(t, cursor)
	assert.Equal(t, 40, cursor.Position)
	assert.Equal(t, 10, cursor.Limit)
	assert.Equal(t, "CHK001", cursor.AccountNumber)
}

func TestParseListTransactionsInput_NegativePosition(t *testing.T) {
	_, _, err := parseListTransactionsInput(&ListTransactionsInput{
		Body: ListTransactionsBody{Cursor: &ListTransactionsCursor{Position: -1, Limit: 10}},
	})

	assert.Error(t, err)
}

// -- HTTP integration tests --

func TestHTTP_ListTransactions_FirstPage(t *testing.T) {
	txs := []service.Transaction{
		makeTransaction("SAV001", ledger.TransactionTypeDeposit, "1000"),
		makeTransaction("SAV001", ledger.TransactionTypeTransferOut, "1500"),
	}
	mockSvc := new(mockTransactionService)
	mockSvc.On("ListTransactions", mock.Anything, "SAV001", (*service.TransactionCursor)(nil)).
		Return(txs, &service.TransactionCursor{Position: 2, Limit: 2, AccountNumber: "SAV001"}, nil)

	resp := newListTestAPI(t, mockSvc).Post("/v1/transaction/list", ListTransactionsBody{AccountNumber: "SAV001"})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListTransactionsResponseBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Transactions, 2)
	assert.Equal(t, txs[0].ID.String(), body.Transactions[0].ID)
	assert.Equal(t, "1500.00", body.Transactions[1].Amount)
	require.NotNil(t, body.NextCursor)
	assert.Equal(t, 2, body.NextCursor.Position)
	assert.Equal(t, "SAV001", body.NextCursor.AccountNumber)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ListTransactions_WithCursor(t *testing.T) {
	mockSvc := new(mockTransactionService)
	mockSvc.On("ListTransactions", mock.Anything, "", &service.TransactionCursor{Position: 20, Limit: 20}).
		Return([]service.Transaction{makeTransaction("CHK001", ledger.TransactionTypeWithdrawal, "5")}, nil, nil)

	resp := newListTestAPI(t, mockSvc).Post("/v1/transaction/list", ListTransactionsBody{
		Cursor: &ListTransactionsCursor{Position: 20, Limit: 20},
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListTransactionsResponseBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Transactions, 1)
	assert.Nil(t, body.NextCursor)
}

func TestHTTP_ListTransactions_Empty(t *testing.T) {
	mockSvc := new(mockTransactionService)
	mockSvc.On("ListTransactions", mock.Anything, "", mock.Anything).Return(nil, nil, nil)

	resp := newListTestAPI(t, mockSvc).Post("/v1/transaction/list", ListTransactionsBody{})

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"transactions":[]`)
}

func TestHTTP_ListTransactions_CursorLimitOutOfRange(t *testing.T) {
	mockSvc := new(mockTransactionService)

	resp := newListTestAPI(t, mockSvc).Post("/v1/transaction/list", ListTransactionsBody{
		Cursor: &ListTransactionsCursor{Position: 0, Limit: 1000},
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "ListTransactions", mock.Anything, mock.Anything, mock.Anything)
}

func TestHTTP_ListTransactions_ServiceError(t *testing.T) {
	mockSvc := new(mockTransactionService)
	mockSvc.On("ListTransactions", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, nil, errors.Join(context.Canceled, errors.New("read aborted")))

	resp := newListTestAPI(t, mockSvc).Post("/v1/transaction/list", ListTransactionsBody{})

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}
