package status

import (
	"errors"
	"net/http"

	"github.com/carson-networks/bank-server/internal/logging"
)

type operatorState interface {
	Stopped() bool
}

type Handler struct {
	Operator operatorState
}

func NewHandler(op operatorState) Handler {
	return Handler{Operator: op}
}

// Handler reports 200 while mutations are being accepted and 503 once the
// operator has been stopped for shutdown.
func (h *Handler) Handler(w http.ResponseWriter, req *http.Request, logData *logging.LogData) error {
	if req.Method != http.MethodGet {
		w.WriteHeader(http.StatusBadRequest)
		return errors.New("status: method not GET")
	}

	stopped := h.Operator.Stopped()
	logData.AddData("operatorStopped", stopped)
	if stopped {
		w.WriteHeader(http.StatusServiceUnavailable)
		return nil
	}

	w.WriteHeader(http.StatusOK)
	return nil
}
