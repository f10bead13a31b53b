package llms

// Message is one entry of a chat exchange as handed to a provider
// client. A message carries at most one of ToolCall or ToolResult,
// depending on its role.
type Message struct {
	Role       string
	Content    string
	ToolCall   *ToolCall
	ToolResult *ToolResult
}

// Response is a provider-agnostic completion. Usage and ToolCalls stay
// nil when the provider reports none.
type Response struct {
	Content      string
	Model        string
	FinishReason string
	Usage        *Usage
	ToolCalls    []ToolCall
}

// Usage holds token accounting for one completion. The pointer-typed
// counters are absent on providers that do not report them.
type Usage struct {
	InputTokens              int
	OutputTokens             int
	CacheCreationInputTokens *int
	CacheReadInputTokens     *int
	ReasoningTokens          *int
}
