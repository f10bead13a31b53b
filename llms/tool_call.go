package llms

// ToolCall is a structured request from the model to run a tool. CallID
// correlates the call with its result. ID is the provider-assigned
// identifier; it stays empty for providers that do not assign one.
type ToolCall struct {
	CallID    string
	Name      string
	Arguments map[string]any
	ID        string
}

// ToolResult is the outcome of one tool call.
type ToolResult struct {
	CallID  string
	Name    string
	Success bool
	Result  string
	Error   string
	ID      string
}
