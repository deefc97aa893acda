package logging

import (
	"context"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/bank-server/internal/metrics"
)

type logDataKey struct{}

func WithLogData(ctx context.Context, logData *LogData) context.Context {
	return context.WithValue(ctx, logDataKey{}, logData)
}

// GetLogData returns the request's LogData, or nil outside a request.
func GetLogData(ctx context.Context) *LogData {
	logData, _ := ctx.Value(logDataKey{}).(*LogData)
	return logData
}

// Middleware gives every huma operation its own LogData, logs it once the
// operation finishes and records request metrics.
func Middleware(log *logrus.Logger) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		logData := NewLogData(log)
		name := ctx.Operation().OperationID
		start := time.Now()

		endTimer := logData.AddTiming("durationMs")
		next(huma.WithValue(ctx, logDataKey{}, logData))
		endTimer()

		status := ctx.Status()
		metrics.RecordHTTPRequest(ctx.Method(), ctx.Operation().Path, status, time.Since(start).Seconds())

		logData.AddData("status", status)
		entry := logData.Log()
		switch {
		case status >= 500:
			entry.Errorf("Handler.%v.Error", name)
		case status >= 400:
			entry.Warnf("Handler.%v.Rejected", name)
		default:
			entry.Infof("Handler.%v.Complete", name)
		}
	}
}
