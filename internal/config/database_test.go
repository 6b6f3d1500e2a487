package config

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type recordingWriter struct{ lines []string }

func (w *recordingWriter) Printf(format string, args ...interface{}) {
	w.lines = append(w.lines, fmt.Sprintf(format, args...))
}

func TestGormLogger(t *testing.T) {
	query := func() (string, int64) { return "SELECT * FROM users WHERE username = 'nobody'", 0 }

	t.Run("record not found is quiet", func(t *testing.T) {
		w := &recordingWriter{}
		newGormLoggerTo(w).Trace(context.Background(), time.Now(), query, gorm.ErrRecordNotFound)
		assert.Empty(t, w.lines)
	})

	t.Run("real errors are logged", func(t *testing.T) {
		w := &recordingWriter{}
		newGormLoggerTo(w).Trace(context.Background(), time.Now(), query, errors.New("connection reset"))
		assert.Len(t, w.lines, 1)
		assert.Contains(t, w.lines[0], "connection reset")
	})

	t.Run("info is below the level", func(t *testing.T) {
		w := &recordingWriter{}
		newGormLoggerTo(w).Info(context.Background(), "migrating %s", "users")
		assert.Empty(t, w.lines)
	})
}
