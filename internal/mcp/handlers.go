package mcp

import (
	"context"
	"encoding/json"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/hpungsan/todo/internal/config"
	"github.com/hpungsan/todo/internal/errors"
	"github.com/hpungsan/todo/internal/logging"
	"github.com/hpungsan/todo/internal/store"
	"github.com/hpungsan/todo/internal/task"
)

// Handlers holds dependencies for MCP tool handlers.
type Handlers struct {
	mu     sync.Mutex
	store  *store.Store
	cfg    *config.Config
	logger *log.Logger
}

// NewHandlers creates a new Handlers instance. A nil logger discards output.
func NewHandlers(st *store.Store, cfg *config.Config, logger *log.Logger) *Handlers {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Handlers{store: st, cfg: cfg, logger: logger}
}

// serialized wraps fn so that calls hold the handler lock for their duration.
func (h *Handlers) serialized(name string, fn server.ToolHandlerFunc) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		h.mu.Lock()
		defer h.mu.Unlock()
		h.logger.Debug("tool call", "tool", name)
		return fn(ctx, req)
	}
}

// Request types for each tool

// AddRequest represents the arguments for task_add.
type AddRequest struct {
	Title    string `json:"title"`
	Category string `json:"category,omitempty"`
}

// ListRequest represents the arguments for task_list.
type ListRequest struct {
	Filter   string `json:"filter,omitempty"`
	Category string `json:"category,omitempty"`
}

// IDRequest represents the arguments for task_toggle and task_delete.
type IDRequest struct {
	ID *int `json:"id"`
}

// Response types

// Warning reports a failure that did not undo the operation.
type Warning struct {
	Code    errors.ErrorCode `json:"code"`
	Message string           `json:"message"`
}

// TaskResult is a task plus an optional persistence warning.
type TaskResult struct {
	task.Task
	Warning *Warning `json:"warning,omitempty"`
}

// DeleteResult is the delete output plus an optional persistence warning.
type DeleteResult struct {
	store.DeleteOutput
	Warning *Warning `json:"warning,omitempty"`
}

// HandleAdd handles the task_add tool call.
func (h *Handlers) HandleAdd(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[AddRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	created, err := h.store.Create(input.Title, input.Category)
	warning, err := persistWarning(err)
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(TaskResult{Task: created, Warning: warning})
}

// HandleList handles the task_list tool call.
func (h *Handlers) HandleList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[ListRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	filter, err := task.ParseFilter(input.Filter, input.Category)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	return successResult(h.store.ListWithSummary(filter))
}

// HandleToggle handles the task_toggle tool call.
func (h *Handlers) HandleToggle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := decodeID(req)
	if err != nil {
		return errorResult(err), nil
	}

	updated, err := h.store.Toggle(id)
	warning, err := persistWarning(err)
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(TaskResult{Task: updated, Warning: warning})
}

// HandleDelete handles the task_delete tool call.
func (h *Handlers) HandleDelete(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := decodeID(req)
	if err != nil {
		return errorResult(err), nil
	}

	out, err := h.store.Delete(id)
	warning, err := persistWarning(err)
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(DeleteResult{DeleteOutput: *out, Warning: warning})
}

// HandleSave handles the task_save tool call.
func (h *Handlers) HandleSave(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	out, err := h.store.SaveWithSummary()
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(out)
}

// HandleLoad handles the task_load tool call.
func (h *Handlers) HandleLoad(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	out, err := h.store.Load()
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(out)
}

// persistWarning turns PERSIST_FAILED into a warning; any other error is returned.
func persistWarning(err error) (*Warning, error) {
	if err == nil {
		return nil, nil
	}
	if e, ok := errors.As(err); ok && e.Code == errors.ErrPersistFailed {
		return &Warning{Code: e.Code, Message: e.Message}, nil
	}
	return nil, err
}

// Result helpers

// errorResult creates an MCP error result from any error.
// Uses IsError: true so MCP clients recognize failures properly.
// Note: Internal error details are not exposed to prevent leaking sensitive info.
func errorResult(err error) *mcp.CallToolResult {
	var payload map[string]any

	if todoErr, ok := errors.As(err); ok {
		// Keep wrapper context such as "load: " in front of the message
		msg := todoErr.Message
		if prefix, found := strings.CutSuffix(err.Error(), todoErr.Error()); found && prefix != "" {
			msg = prefix + msg
		}

		errorObj := map[string]any{
			"code":    todoErr.Code,
			"message": msg,
			"status":  todoErr.Status,
		}
		if todoErr.Code != errors.ErrInternal && todoErr.Details != nil {
			errorObj["details"] = todoErr.Details
		}
		payload = map[string]any{"error": errorObj}
	} else {
		payload = map[string]any{
			"error": map[string]any{
				"code":    errors.ErrInternal,
				"message": "an internal error occurred",
				"status":  500,
			},
		}
	}

	content, _ := json.Marshal(payload)
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.TextContent{Type: "text", Text: string(content)}},
		IsError: true,
	}
}

// successResult creates an MCP success result from any data.
func successResult(data any) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultJSON(data)
}
