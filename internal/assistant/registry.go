package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
)

// Tool is one assistant-callable operation. Arguments arrive as the
// raw JSON object the assistant produced; every tool is scoped to the
// hub resolved from the request, never from the arguments.
type Tool interface {
	Name() string
	Description() string
	Execute(ctx context.Context, hubID int64, args json.RawMessage) (interface{}, error)
}

// ToolInfo describes a registered tool.
type ToolInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Registry holds the assistant tools by name.
type Registry struct {
	tools  map[string]Tool
	logger Logger
}

// NewRegistry creates an empty registry.
func NewRegistry(logger Logger) *Registry {
	return &Registry{
		tools:  make(map[string]Tool),
		logger: logger,
	}
}

// Register adds a tool. A second tool with the same name replaces the
// first.
func (r *Registry) Register(tool Tool) {
	r.tools[tool.Name()] = tool
}

// Execute runs the named tool for the hub.
func (r *Registry) Execute(ctx context.Context, hubID int64, name string, args json.RawMessage) (interface{}, error) {
	tool, ok := r.tools[name]
	if !ok {
		r.logger.Warn("assistant: unknown tool %q requested by hub=%d", name, hubID)
		return nil, fmt.Errorf("%w: %q", ErrToolNotFound, name)
	}

	r.logger.Info("assistant: executing tool %q for hub=%d", name, hubID)
	return tool.Execute(ctx, hubID, args)
}

// List returns the registered tools sorted by name.
func (r *Registry) List() []ToolInfo {
	infos := make([]ToolInfo, 0, len(r.tools))
	for _, tool := range r.tools {
		infos = append(infos, ToolInfo{Name: tool.Name(), Description: tool.Description()})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
	return infos
}

// NewDefaultRegistry creates the registry with the full tool set.
func NewDefaultRegistry(
	bookings BookingService,
	settings SettingsService,
	creator CreateBookingUseCase,
	logger Logger,
) *Registry {
	r := NewRegistry(logger)
	r.Register(&listBookingsTool{bookings: bookings})
	r.Register(&getBookingTool{bookings: bookings})
	r.Register(&updateBookingStatusTool{bookings: bookings})
	r.Register(&createBookingTool{creator: creator})
	r.Register(&getSettingsTool{settings: settings})
	return r
}
