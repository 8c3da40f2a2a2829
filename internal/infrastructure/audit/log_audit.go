package audit

import (
	"context"
	"encoding/json"
	"log"

	"github.com/willcheung/robinhood-export-function/domain"
)

// LogAuditLogger implements domain.AuditLogger on the process log.
type LogAuditLogger struct {
	logger *log.Logger
}

// NewLogAuditLogger creates an audit logger writing to the default logger
// when logger is nil.
func NewLogAuditLogger(logger *log.Logger) domain.AuditLogger {
	if logger == nil {
		logger = log.Default()
	}
	return &LogAuditLogger{logger: logger}
}

// LogEvent implements domain.AuditLogger
func (l *LogAuditLogger) LogEvent(_ context.Context, event *domain.AuditEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	l.logger.Printf("audit: %s", data)
	return nil
}
