package tools

import (
	"context"
)

// Tool is one capability the agent can invoke during a step.
type Tool interface {
	Name() string
	Description() string
	Parameters() []Parameter
	Execute(ctx context.Context, args map[string]any) (*ExecResult, error)
}

// Parameter describes one argument of a tool, in the shape provider
// clients need to build a function-calling schema.
type Parameter struct {
	Name        string
	Type        string
	Description string
	Required    bool
}

// ExecResult is the intermediate outcome of one tool execution, before
// it is folded into a ToolResult for the model.
type ExecResult struct {
	Output    string
	Error     string
	ErrorCode int
}

// Names returns the tool names in order, for recording which tools were
// available to an LLM exchange.
func Names(tools []Tool) []string {
	if tools == nil {
		return nil
	}
	names := make([]string, 0, len(tools))
	for _, tool := range tools {
		names = append(names, tool.Name())
	}
	return names
}
