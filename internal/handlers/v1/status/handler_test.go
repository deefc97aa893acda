package status

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"

	"github.com/carson-networks/bank-server/internal/logging"
)

type fakeOperator struct {
	stopped bool
}

func (f fakeOperator) Stopped() bool {
	return f.stopped
}

func createTestLogData() *logging.LogData {
	logger, _ := test.NewNullLogger()
	return logging.NewLogData(logger)
}

func TestHandler_GoodMethod(t *testing.T) {
	statusHandler := NewHandler(fakeOperator{})
	req := httptest.NewRequest(http.MethodGet, "/status", nil)

	w := httptest.NewRecorder()

	err := statusHandler.Handler(w, req, createTestLogData())
	assert.NoError(t, err)

	res := w.Result()
	assert.Equal(t, 200, res.StatusCode)
}

func TestHandler_OperatorStopped(t *testing.T) {
	statusHandler := NewHandler(fakeOperator{stopped: true})
	req := httptest.NewRequest(http.MethodGet, "/status", nil)
	w := httptest.NewRecorder()
	logData := createTestLogData()

	err := statusHandler.Handler(w, req, logData)
	assert.NoError(t, err)

	assert.Equal(t, http.StatusServiceUnavailable, w.Result().StatusCode)
	assert.Equal(t, true, logData.Log().Data["operatorStopped"])
}

func TestHandler_BadMethod(t *testing.T) {
	statusHandler := NewHandler(fakeOperator{})
	req := httptest.NewRequest(http.MethodPost, "/status", nil)
	w := httptest.NewRecorder()

	err := statusHandler.Handler(w, req, createTestLogData())
	assert.Error(t, err)

	res := w.Result()
	assert.Equal(t, 400, res.StatusCode)
}
