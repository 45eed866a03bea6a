package services

import (
	"context"

	"nagaralert-be/logger"
)

// saga records undo steps for a multi-document write. On failure the steps
// run newest first; their own failures are logged and do not stop the rest.
type saga struct {
	name  string
	log   *logger.Logger
	steps []undoStep
}

type undoStep struct {
	name string
	fn   func(context.Context) error
}

func newSaga(name string, log *logger.Logger) *saga {
	return &saga{name: name, log: log}
}

func (s *saga) onUndo(name string, fn func(context.Context) error) {
	s.steps = append(s.steps, undoStep{name: name, fn: fn})
}

// rollback runs on a context detached from the request so a cancelled
// request still cleans up.
func (s *saga) rollback(ctx context.Context) {
	undoCtx := context.WithoutCancel(ctx)
	for i := len(s.steps) - 1; i >= 0; i-- {
		step := s.steps[i]
		if err := step.fn(undoCtx); err != nil {
			s.log.WithContext(ctx).WithError(err).WithFields(map[string]interface{}{
				"saga": s.name,
				"step": step.name,
			}).Error("undo step failed")
		}
	}
	s.steps = nil
}
