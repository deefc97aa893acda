package cycle

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/bank-server/internal/handlers/v1/apierror"
	"github.com/carson-networks/bank-server/internal/logging"
	"github.com/carson-networks/bank-server/internal/service"
)

// Report is the end-of-month outcome for one account.
type Report struct {
	AccountNumber string `json:"accountNumber" doc:"Account number"`
	Type          string `json:"type" doc:"Account type"`
	Interest      string `json:"interest" doc:"Interest credited"`
	Fees          string `json:"fees" doc:"Fees charged"`
	Balance       string `json:"balance" doc:"Balance after processing"`
	Skipped       bool   `json:"skipped" doc:"True when the account has no end-of-month behaviour"`
}

type EndOfMonthResponseBody struct {
	Reports []Report `json:"reports" doc:"One report per account, in opening order"`
}

type EndOfMonthOutput struct {
	Body EndOfMonthResponseBody
}

type endOfMonthProcessor interface {
	ProcessEndOfMonth(ctx context.Context) ([]service.CycleReport, error)
}

// EndOfMonthHandler handles POST /v1/end-of-month.
type EndOfMonthHandler struct {
	AccountService endOfMonthProcessor
}

func NewEndOfMonthHandler(svc endOfMonthProcessor) *EndOfMonthHandler {
	return &EndOfMonthHandler{AccountService: svc}
}

func (h *EndOfMonthHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "end-of-month",
		Method:      http.MethodPost,
		Path:        "/v1/end-of-month",
		Summary:     "Run end-of-month processing",
		Description: "Credits savings interest and charges checking fees across all accounts, then resets checking transaction counts.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *EndOfMonthHandler) handle(ctx context.Context, _ *struct{}) (*EndOfMonthOutput, error) {
	logData := logging.GetLogData(ctx)

	reports, err := h.AccountService.ProcessEndOfMonth(ctx)
	if err != nil {
		return nil, apierror.From(err, "failed to run end-of-month processing")
	}

	if logData != nil {
		logData.AddData("accountCount", len(reports))
	}

	resp := EndOfMonthResponseBody{Reports: make([]Report, len(reports))}
	for i, report := range reports {
		resp.Reports[i] = Report{
			AccountNumber: report.AccountNumber,
			Type:          string(report.AccountType),
			Interest:      apierror.Money(report.Interest),
			Fees:          apierror.Money(report.Fees),
			Balance:       apierror.Money(report.Balance),
			Skipped:       report.Skipped,
		}
	}

	return &EndOfMonthOutput{Body: resp}, nil
}
