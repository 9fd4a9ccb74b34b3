package mcp

import (
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/jmallek/promptstash/internal/errors"
)

// decode unmarshals MCP request arguments into a typed request struct.
// Malformed arguments surface as INVALID_REQUEST so handlers can relay
// the error without re-wrapping it.
func decode[T any](req mcp.CallToolRequest) (T, error) {
	var out T
	raw, err := json.Marshal(req.GetArguments())
	if err != nil {
		return out, errors.NewInvalidRequest(fmt.Sprintf("unreadable arguments: %v", err))
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, errors.NewInvalidRequest(fmt.Sprintf("malformed arguments: %v", err))
	}
	return out, nil
}
