// Package audit keeps the append-only record of accepted submissions.
package audit

import (
	"fmt"
	"sync"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Log appends one line per accepted submission to a rotating file:
// timestamp - email - subject.
type Log struct {
	mu     sync.Mutex
	writer *lumberjack.Logger
	now    func() time.Time
}

// NewLog creates an audit log writing to path.
func NewLog(path string) *Log {
	return &Log{
		writer: &lumberjack.Logger{
			Filename:   path,
			MaxSize:    50, // MB
			MaxBackups: 5,
			MaxAge:     365, // days
			Compress:   true,
		},
		now: time.Now,
	}
}

// Record appends the submission line. Audit failures must never fail the
// request, so the error is returned for logging only.
func (l *Log) Record(email, subject string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	line := fmt.Sprintf("%s - %s - %s\n", l.now().Format("2006-01-02 15:04:05"), email, subject)
	if _, err := l.writer.Write([]byte(line)); err != nil {
		return fmt.Errorf("failed to append audit line: %w", err)
	}
	return nil
}

// Close flushes and closes the underlying file.
func (l *Log) Close() error {
	return l.writer.Close()
}
