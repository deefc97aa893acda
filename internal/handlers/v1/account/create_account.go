package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/bank-server/internal/bank"
	"github.com/carson-networks/bank-server/internal/handlers/v1/apierror"
	"github.com/carson-networks/bank-server/internal/logging"
	"github.com/carson-networks/bank-server/internal/service"
)

// CreateAccountInput is the Huma input for opening an account.
type CreateAccountInput struct {
	Body CreateAccountBody
}

// CreateAccountBody is the request body for opening an account. Savings
// terms are read for Savings accounts, checking terms for Checking accounts.
type CreateAccountBody struct {
	AccountNumber  string `json:"accountNumber" minLength:"1" doc:"Unique account number"`
	AccountHolder  string `json:"accountHolder" minLength:"1" doc:"Account holder name"`
	Type           string `json:"type" enum:"Savings,Checking" doc:"Account type"`
	InitialBalance string `json:"initialBalance,omitempty" doc:"Opening balance (e.g. '5000.00'), defaults to 0"`

	InterestRate   string `json:"interestRate,omitempty" doc:"Savings: annual interest rate as a fraction, defaults to 0"`
	MinimumBalance string `json:"minimumBalance,omitempty" doc:"Savings: minimum balance, defaults to 0"`

	OverdraftLimit   string `json:"overdraftLimit,omitempty" doc:"Checking: overdraft limit, defaults to 0"`
	MonthlyFee       string `json:"monthlyFee,omitempty" doc:"Checking: monthly fee, defaults to 0"`
	FreeTransactions int    `json:"freeTransactions,omitempty" minimum:"0" doc:"Checking: free transactions per month"`
	TransactionFee   string `json:"transactionFee,omitempty" doc:"Checking: fee per extra transaction, defaults to 0"`
}

// CreateAccountOutput is the response for opening an account.
type CreateAccountOutput struct {
	Status int
	Body   Account
}

// accountCreator is the interface for opening accounts.
type accountCreator interface {
	OpenAccount(ctx context.Context, open service.AccountOpen) (*service.Account, error)
}

// CreateAccountHandler handles POST /v1/account.
type CreateAccountHandler struct {
	AccountService accountCreator
}

// NewCreateAccountHandler creates a new CreateAccountHandler.
func NewCreateAccountHandler(svc accountCreator) *CreateAccountHandler {
	return &CreateAccountHandler{AccountService: svc}
}

// Register registers the create account endpoint with the Huma API.
func (h *CreateAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-account",
		Method:      http.MethodPost,
		Path:        "/v1/account",
		Summary:     "Open an account",
		Description: "Opens a Savings or Checking account. Account numbers must be unique.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func parseCreateAccountInput(input *CreateAccountInput) (service.AccountOpen, error) {
	body := input.Body
	open := service.AccountOpen{
		Number: body.AccountNumber,
		Holder: body.AccountHolder,
		Type:   bank.AccountType(body.Type),
	}

	var err error
	if open.InitialBalance, err = apierror.ParseAmount("initialBalance", body.InitialBalance, decimal.Zero); err != nil {
		return open, err
	}

	switch open.Type {
	case bank.AccountTypeSavings:
		if open.Savings.InterestRate, err = apierror.ParseRate("interestRate", body.InterestRate, decimal.Zero); err != nil {
			return open, err
		}
		if open.Savings.MinimumBalance, err = apierror.ParseAmount("minimumBalance", body.MinimumBalance, decimal.Zero); err != nil {
			return open, err
		}
	case bank.AccountTypeChecking:
		if open.Checking.OverdraftLimit, err = apierror.ParseAmount("overdraftLimit", body.OverdraftLimit, decimal.Zero); err != nil {
			return open, err
		}
		if open.Checking.MonthlyFee, err = apierror.ParseAmount("monthlyFee", body.MonthlyFee, decimal.Zero); err != nil {
			return open, err
		}
		if open.Checking.TransactionFee, err = apierror.ParseAmount("transactionFee", body.TransactionFee, decimal.Zero); err != nil {
			return open, err
		}
		open.Checking.FreeTransactions = body.FreeTransactions
	}

	terms := []struct {
		field string
		value decimal.Decimal
	}{
		{"interestRate", open.Savings.InterestRate},
		{"minimumBalance", open.Savings.MinimumBalance},
		{"overdraftLimit", open.Checking.OverdraftLimit},
		{"monthlyFee", open.Checking.MonthlyFee},
		{"transactionFee", open.Checking.TransactionFee},
	}
	for _, term := range terms {
		if err := apierror.NonNegative(term.field, term.value); err != nil {
			return open, err
		}
	}

	return open, nil
}

func (h *CreateAccountHandler) handle(ctx context.Context, input *CreateAccountInput) (*CreateAccountOutput, error) {
	logData := logging.GetLogData(ctx)

	open, err := parseCreateAccountInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("openAccountMs")
	}
	account, err := h.AccountService.OpenAccount(ctx, open)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, apierror.From(err, "failed to open account")
	}

	if logData != nil {
		logData.AddData("accountNumber", account.Number)
	}

	return &CreateAccountOutput{
		Status: http.StatusCreated,
		Body:   toAPIAccount(*account),
	}, nil
}
