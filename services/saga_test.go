package services

import (
	"context"
	"errors"
	"testing"

	"nagaralert-be/logger"

	"github.com/stretchr/testify/assert"
)

func TestSagaRollbackRunsNewestFirst(t *testing.T) {
	var order []string
	tx := newSaga("test", logger.Discard())
	tx.onUndo("first", func(context.Context) error {
		order = append(order, "first")
		return nil
	})
	tx.onUndo("second", func(context.Context) error {
		order = append(order, "second")
		return errors.New("undo failed")
	})
	tx.onUndo("third", func(context.Context) error {
		order = append(order, "third")
		return nil
	})

	tx.rollback(context.Background())

	assert.Equal(t, []string{"third", "second", "first"}, order)
}

func TestSagaRollbackSurvivesCancelledRequest(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var undoErr error
	tx := newSaga("test", logger.Discard())
	tx.onUndo("check", func(ctx context.Context) error {
		undoErr = ctx.Err()
		return nil
	})
	tx.rollback(ctx)

	assert.NoError(t, undoErr)
}

type recordingMailer struct {
	to, subject, body string
}

func (m *recordingMailer) Send(_ context.Context, to, subject, body string) error {
	m.to, m.subject, m.body = to, subject, body
	return nil
}

func TestNotifierRendersTemplates(t *testing.T) {
	mailer := &recordingMailer{}
	n := NewNotifier(mailer, logger.Discard())

	n.Resolved(context.Background(), "Sita", "sita@example.com", "Pothole <b>", 20)

	assert.Equal(t, "sita@example.com", mailer.to)
	assert.Contains(t, mailer.body, "You earned 20 points.")
	assert.Contains(t, mailer.body, "Pothole &lt;b&gt;")

	n.Resolved(context.Background(), "Sita", "sita@example.com", "Pothole", 0)
	assert.NotContains(t, mailer.body, "points")
}
