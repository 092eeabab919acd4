package execute_tool

import (
	"github.com/erplora/OnlineBooking-Service/internal/assistant"
)

// ToolResultResponse wraps a successful tool execution.
type ToolResultResponse struct {
	Tool   string      `json:"tool"`
	Result interface{} `json:"result"`
}

// ToolListResponse lists the available tools.
type ToolListResponse struct {
	Tools []assistant.ToolInfo `json:"tools"`
}
