package trajectories

// Trajectory is the full record of one agent run: metadata, every LLM
// exchange, every step. It serializes to a single JSON document with a
// stable shape: nullable fields render as explicit null, the two entry
// sequences always render as arrays.
type Trajectory struct {
	Task            string           `json:"task"`
	StartTime       string           `json:"start_time"`
	EndTime         *string          `json:"end_time"`
	Provider        string           `json:"provider"`
	Model           string           `json:"model"`
	MaxSteps        int              `json:"max_steps"`
	LLMInteractions []LLMInteraction `json:"llm_interactions"`
	AgentSteps      []AgentStep      `json:"agent_steps"`
	Success         bool             `json:"success"`
	FinalResult     *string          `json:"final_result"`
	ExecutionTime   float64          `json:"execution_time"`
}

// LLMInteraction records one request/response exchange with a provider.
// ToolsAvailable is null when the caller supplied no tool list, and an
// empty array when it supplied an empty one.
type LLMInteraction struct {
	Timestamp      string    `json:"timestamp"`
	Provider       string    `json:"provider"`
	Model          string    `json:"model"`
	InputMessages  []Message `json:"input_messages"`
	Response       Response  `json:"response"`
	ToolsAvailable []string  `json:"tools_available"`
}

// Response is the recorded shape of one LLM completion.
type Response struct {
	Content      string     `json:"content"`
	Model        string     `json:"model"`
	FinishReason string     `json:"finish_reason"`
	Usage        Usage      `json:"usage"`
	ToolCalls    []ToolCall `json:"tool_calls"`
}

// Usage mirrors provider token accounting. The optional counters are
// null for providers that do not report them.
type Usage struct {
	InputTokens              int  `json:"input_tokens"`
	OutputTokens             int  `json:"output_tokens"`
	CacheCreationInputTokens *int `json:"cache_creation_input_tokens"`
	CacheReadInputTokens     *int `json:"cache_read_input_tokens"`
	ReasoningTokens          *int `json:"reasoning_tokens"`
}

// AgentStep records one iteration of the agent loop. Step numbers are
// caller-supplied; monotonicity is the caller's contract, not checked
// here. Every optional field is independently nullable.
type AgentStep struct {
	StepNumber  int          `json:"step_number"`
	Timestamp   string       `json:"timestamp"`
	State       string       `json:"state"`
	LLMMessages []Message    `json:"llm_messages"`
	LLMResponse *Response    `json:"llm_response"`
	ToolCalls   []ToolCall   `json:"tool_calls"`
	ToolResults []ToolResult `json:"tool_results"`
	Reflection  *string      `json:"reflection"`
	Error       *string      `json:"error"`
}

// Message is the recorded shape of one chat message. The embedded tool
// call and tool result keys appear only when the source message carried
// one.
type Message struct {
	Role       string      `json:"role"`
	Content    string      `json:"content"`
	ToolCall   *ToolCall   `json:"tool_call,omitempty"`
	ToolResult *ToolResult `json:"tool_result,omitempty"`
}

// ToolCall is the recorded shape of one tool invocation request. ID is
// null when the source call has no provider-assigned identifier.
type ToolCall struct {
	CallID    string         `json:"call_id"`
	Name      string         `json:"name"`
	Arguments map[string]any `json:"arguments"`
	ID        *string        `json:"id"`
}

// ToolResult is the recorded outcome of one tool call.
type ToolResult struct {
	CallID  string  `json:"call_id"`
	Success bool    `json:"success"`
	Result  *string `json:"result"`
	Error   *string `json:"error"`
	ID      *string `json:"id"`
}
