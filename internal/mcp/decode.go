package mcp

import (
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/hpungsan/todo/internal/errors"
)

// decode unmarshals MCP request arguments into a typed struct.
// Numbers arrive as float64 from the transport; decoding into an int field
// rejects fractional values.
func decode[T any](req mcp.CallToolRequest) (T, error) {
	var result T
	args := req.GetArguments()
	b, err := json.Marshal(args)
	if err != nil {
		return result, fmt.Errorf("marshal args: %w", err)
	}
	if err := json.Unmarshal(b, &result); err != nil {
		return result, fmt.Errorf("unmarshal args: %w", err)
	}
	return result, nil
}

// decodeID reads the required integer id argument.
func decodeID(req mcp.CallToolRequest) (int, error) {
	input, err := decode[IDRequest](req)
	if err != nil {
		return 0, errors.NewInvalidRequest("id must be an integer")
	}
	if input.ID == nil {
		return 0, errors.NewInvalidRequest("id is required")
	}
	return *input.ID, nil
}
