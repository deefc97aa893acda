package logging

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// LogData collects the fields of one request so they are logged as a single
// entry when the request finishes. Timings are in milliseconds.
type LogData struct {
	mu      sync.Mutex
	timings map[string]int64
	data    logrus.Fields
	logger  *logrus.Logger
}

func NewLogData(logger *logrus.Logger) *LogData {
	return &LogData{
		timings: make(map[string]int64),
		data:    make(logrus.Fields),
		logger:  logger,
	}
}

// AddTiming starts a timer; calling the returned func records it under entryName.
func (l *LogData) AddTiming(entryName string) func() {
	startTime := time.Now()

	return func() {
		elapsed := time.Since(startTime).Milliseconds()
		l.mu.Lock()
		defer l.mu.Unlock()
		l.timings[entryName] = elapsed
	}
}

func (l *LogData) AddData(key string, value interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.data[key] = value
}

func (l *LogData) Log() *logrus.Entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	fields := make(logrus.Fields, len(l.data)+len(l.timings))
	for key, value := range l.data {
		fields[key] = value
	}
	for key, value := range l.timings {
		fields[key] = value
	}

	return l.logger.WithFields(fields)
}
