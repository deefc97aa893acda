package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/bank-server/internal/handlers/v1/apierror"
	"github.com/carson-networks/bank-server/internal/ledger"
	"github.com/carson-networks/bank-server/internal/logging"
	"github.com/carson-networks/bank-server/internal/service"
)

// CreateTransactionBody is the request body for a deposit or withdrawal.
type CreateTransactionBody struct {
	AccountNumber string `json:"accountNumber" minLength:"1" doc:"Account number"`
	Type          string `json:"type" enum:"DEPOSIT,WITHDRAWAL" doc:"Transaction type"`
	Amount        string `json:"amount" doc:"Positive decimal amount"`
	Description   string `json:"description,omitempty" doc:"Free-text description"`
}

// CreateTransactionInput is the Huma input for creating a transaction.
type CreateTransactionInput struct {
	Body CreateTransactionBody
}

// CreateTransactionResponse is the recorded transaction and the resulting balance.
type CreateTransactionResponse struct {
	Transaction Transaction `json:"transaction" doc:"Recorded transaction"`
	Balance     string      `json:"balance" doc:"Account balance after the transaction"`
}

// CreateTransactionOutput is the Huma output for creating a transaction.
type CreateTransactionOutput struct {
	Status int
	Body   CreateTransactionResponse
}

// transactionCreator is the interface for deposits and withdrawals.
type transactionCreator interface {
	Deposit(ctx context.Context, movement service.Movement) (*service.MovementResult, error)
	Withdraw(ctx context.Context, movement service.Movement) (*service.MovementResult, error)
}

// CreateTransactionHandler handles POST /v1/transaction.
type CreateTransactionHandler struct {
	TransactionService transactionCreator
}

// NewCreateTransactionHandler creates a new CreateTransactionHandler.
func NewCreateTransactionHandler(svc transactionCreator) *CreateTransactionHandler {
	return &CreateTransactionHandler{TransactionService: svc}
}

// Register registers the create transaction endpoint with the Huma API.
func (h *CreateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-transaction",
		Method:      http.MethodPost,
		Path:        "/v1/transaction",
		Summary:     "Deposit or withdraw",
		Description: "Deposits into or withdraws from an account and records the transaction. Nothing is recorded when the account rejects the operation.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func parseCreateTransactionInput(input *CreateTransactionInput) (ledger.TransactionType, service.Movement, error) {
	amount, err := apierror.ParseAmount("amount", input.Body.Amount)
	if err != nil {
		return "", service.Movement{}, err
	}

	return ledger.TransactionType(input.Body.Type), service.Movement{
		AccountNumber: input.Body.AccountNumber,
		Amount:        amount,
		Description:   input.Body.Description,
	}, nil
}

func (h *CreateTransactionHandler) handle(ctx context.Context, input *CreateTransactionInput) (*CreateTransactionOutput, error) {
	logData := logging.GetLogData(ctx)

	txType, movement, err := parseCreateTransactionInput(input)
	if err != nil {
		return nil, err
	}

	if logData != nil {
		logData.AddData("accountNumber", movement.AccountNumber)
		logData.AddData("transactionType", txType)
	}

	var result *service.MovementResult
	switch txType {
	case ledger.TransactionTypeDeposit:
		result, err = h.TransactionService.Deposit(ctx, movement)
	case ledger.TransactionTypeWithdrawal:
		result, err = h.TransactionService.Withdraw(ctx, movement)
	default:
		return nil, huma.NewError(http.StatusBadRequest, "type must be DEPOSIT or WITHDRAWAL")
	}
	if err != nil {
		return nil, apierror.From(err, "failed to create transaction")
	}

	if logData != nil {
		logData.AddData("transactionID", result.Transaction.ID.String())
	}

	return &CreateTransactionOutput{
		Status: http.StatusCreated,
		Body: CreateTransactionResponse{
			Transaction: toAPITransaction(result.Transaction),
			Balance:     apierror.Money(result.Balance),
		},
	}, nil
}
