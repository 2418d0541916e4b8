package reset_selection

import (
	"context"

	"github.com/google/uuid"
)

type ResetSelectionUseCase interface {
	Reset(ctx context.Context, sessionID uuid.UUID) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
