package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/bank-server/internal/handlers/v1/apierror"
	"github.com/carson-networks/bank-server/internal/logging"
	"github.com/carson-networks/bank-server/internal/service"
)

type TransferBody struct {
	FromAccountNumber string `json:"fromAccountNumber" minLength:"1" doc:"Account to debit"`
	ToAccountNumber   string `json:"toAccountNumber" minLength:"1" doc:"Account to credit"`
	Amount            string `json:"amount" doc:"Positive decimal amount"`
	Description       string `json:"description,omitempty" doc:"Free-text description"`
}

type TransferInput struct {
	Body TransferBody
}

type TransferResponse struct {
	Transactions []Transaction `json:"transactions" doc:"TRANSFER_OUT then TRANSFER_IN"`
	FromBalance  string        `json:"fromBalance" doc:"Source balance after the transfer"`
	ToBalance    string        `json:"toBalance" doc:"Target balance after the transfer"`
}

type TransferOutput struct {
	Status int
	Body   TransferResponse
}

type transferrer interface {
	Transfer(ctx context.Context, request service.TransferRequest) (*service.TransferResult, error)
}

// TransferHandler handles POST /v1/transfer.
type TransferHandler struct {
	TransactionService transferrer
}

func NewTransferHandler(svc transferrer) *TransferHandler {
	return &TransferHandler{TransactionService: svc}
}

func (h *TransferHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "transfer",
		Method:      http.MethodPost,
		Path:        "/v1/transfer",
		Summary:     "Transfer between accounts",
		Description: "Moves funds between two accounts. The source must hold at least the amount before its own withdrawal rules are applied.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *TransferHandler) handle(ctx context.Context, input *TransferInput) (*TransferOutput, error) {
	logData := logging.GetLogData(ctx)

	amount, err := apierror.ParseAmount("amount", input.Body.Amount)
	if err != nil {
		return nil, err
	}

	if logData != nil {
		logData.AddData("fromAccountNumber", input.Body.FromAccountNumber)
		logData.AddData("toAccountNumber", input.Body.ToAccountNumber)
	}

	result, err := h.TransactionService.Transfer(ctx, service.TransferRequest{
		FromAccountNumber: input.Body.FromAccountNumber,
		ToAccountNumber:   input.Body.ToAccountNumber,
		Amount:            amount,
		Description:       input.Body.Description,
	})
	if err != nil {
		return nil, apierror.From(err, "failed to transfer")
	}

	if logData != nil {
		logData.AddData("correlationID", result.Out.CorrelationID.String())
	}

	return &TransferOutput{
		Status: http.StatusCreated,
		Body: TransferResponse{
			Transactions: []Transaction{toAPITransaction(result.Out), toAPITransaction(result.In)},
			FromBalance:  apierror.Money(result.FromBalance),
			ToBalance:    apierror.Money(result.ToBalance),
		},
	}, nil
}
