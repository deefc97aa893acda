package cycle

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/bank-server/internal/bank"
	"github.com/carson-networks/bank-server/internal/service"
)

type mockAccountService struct {
	mock.Mock
}

func (m *mockAccountService) ProcessEndOfMonth(ctx context.Context) ([]service.CycleReport, error) {
	args := m.Called(ctx)
	reports, _ := args.Get(0).([]service.CycleReport)
	return reports, args.Error(1)
}

func newTestAPI(t *testing.T, svc endOfMonthProcessor) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewEndOfMonthHandler(svc).Register(api)
	return api
}

func TestHTTP_EndOfMonth_Success(t *testing.T) {
	mockSvc := new(mockAccountService)
	mockSvc.On("ProcessEndOfMonth", mock.Anything).Return([]service.CycleReport{
		{
			AccountNumber: "SAV001",
			AccountType:   bank.AccountTypeSavings,
			Interest:      decimal.RequireFromString("11.25"),
			Fees:          decimal.Zero,
			Balance:       decimal.RequireFromString("4511.25"),
		},
		{
			AccountNumber: "CHK001",
			AccountType:   bank.AccountTypeChecking,
			Interest:      decimal.Zero,
			Fees:          decimal.RequireFromString("10"),
			Balance:       decimal.RequireFromString("990"),
		},
	}, nil)

	resp := newTestAPI(t, mockSvc).Post("/v1/end-of-month")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body EndOfMonthResponseBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Reports, 2)
	assert.Equal(t, "11.25", body.Reports[0].Interest)
	assert.Equal(t, "0.00", body.Reports[0].Fees)
	assert.Equal(t, "4511.25", body.Reports[0].Balance)
	assert.Equal(t, "Checking", body.Reports[1].Type)
	assert.Equal(t, "10.00", body.Reports[1].Fees)
	assert.Equal(t, "990.00", body.Reports[1].Balance)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_EndOfMonth_Error(t *testing.T) {
	mockSvc := new(mockAccountService)
	mockSvc.On("ProcessEndOfMonth", mock.Anything).Return(nil, errors.New("operator is stopped"))

	resp := newTestAPI(t, mockSvc).Post("/v1/end-of-month")

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}
