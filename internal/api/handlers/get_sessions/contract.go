package get_sessions

import (
	"context"

	getSessions "github.com/m04kA/SMC-BayBooking/internal/usecase/get_sessions"
)

type GetSessionsUseCase interface {
	Execute(ctx context.Context, req *getSessions.Request) (*getSessions.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
