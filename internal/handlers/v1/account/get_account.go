package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/bank-server/internal/handlers/v1/apierror"
	"github.com/carson-networks/bank-server/internal/logging"
	"github.com/carson-networks/bank-server/internal/service"
)

type GetAccountInput struct {
	AccountNumber string `path:"accountNumber" minLength:"1" doc:"Account number"`
}

type GetAccountOutput struct {
	Body Account
}

type accountGetter interface {
	GetAccount(ctx context.Context, number string) (*service.Account, error)
}

// GetAccountHandler handles GET /v1/account/{accountNumber}.
type GetAccountHandler struct {
	AccountService accountGetter
}

func NewGetAccountHandler(svc accountGetter) *GetAccountHandler {
	return &GetAccountHandler{AccountService: svc}
}

func (h *GetAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-account",
		Method:      http.MethodGet,
		Path:        "/v1/account/{accountNumber}",
		Summary:     "Get an account",
		Description: "Returns one account with its terms and the fees it would be charged now.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *GetAccountHandler) handle(ctx context.Context, input *GetAccountInput) (*GetAccountOutput, error) {
	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("accountNumber", input.AccountNumber)
	}

	account, err := h.AccountService.GetAccount(ctx, input.AccountNumber)
	if err != nil {
		return nil, apierror.From(err, "failed to get account")
	}

	return &GetAccountOutput{Body: toAPIAccount(*account)}, nil
}
