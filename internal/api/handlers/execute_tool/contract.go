package execute_tool

import (
	"context"
	"encoding/json"

	"github.com/erplora/OnlineBooking-Service/internal/assistant"
)

type ToolRegistry interface {
	Execute(ctx context.Context, hubID int64, name string, args json.RawMessage) (interface{}, error)
	List() []assistant.ToolInfo
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
