package trajectories

import (
	"github.com/sekino/tra/llms"
)

// The serializers below always produce the complete record shape:
// anything absent on the input degrades to null, never to an error.

func serializeMessage(m llms.Message) Message {
	ret := Message{
		Role:    m.Role,
		Content: m.Content,
	}
	if m.ToolCall != nil {
		call := serializeToolCall(*m.ToolCall)
		ret.ToolCall = &call
	}
	if m.ToolResult != nil {
		result := serializeToolResult(*m.ToolResult)
		ret.ToolResult = &result
	}
	return ret
}

func serializeMessages(messages []llms.Message) []Message {
	if messages == nil {
		return nil
	}
	ret := make([]Message, 0, len(messages))
	for _, m := range messages {
		ret = append(ret, serializeMessage(m))
	}
	return ret
}

func serializeToolCall(c llms.ToolCall) ToolCall {
	return ToolCall{
		CallID:    c.CallID,
		Name:      c.Name,
		Arguments: c.Arguments,
		ID:        nullableString(c.ID),
	}
}

func serializeToolCalls(calls []llms.ToolCall) []ToolCall {
	if calls == nil {
		return nil
	}
	ret := make([]ToolCall, 0, len(calls))
	for _, c := range calls {
		ret = append(ret, serializeToolCall(c))
	}
	return ret
}

func serializeToolResult(r llms.ToolResult) ToolResult {
	return ToolResult{
		CallID:  r.CallID,
		Success: r.Success,
		Result:  nullableString(r.Result),
		Error:   nullableString(r.Error),
		ID:      nullableString(r.ID),
	}
}

func serializeToolResults(results []llms.ToolResult) []ToolResult {
	if results == nil {
		return nil
	}
	ret := make([]ToolResult, 0, len(results))
	for _, r := range results {
		ret = append(ret, serializeToolResult(r))
	}
	return ret
}

func serializeResponse(r *llms.Response) *Response {
	if r == nil {
		return nil
	}
	return &Response{
		Content:      r.Content,
		Model:        r.Model,
		FinishReason: r.FinishReason,
		Usage:        serializeUsage(r.Usage),
		ToolCalls:    serializeToolCalls(r.ToolCalls),
	}
}

func serializeUsage(u *llms.Usage) Usage {
	if u == nil {
		return Usage{}
	}
	return Usage{
		InputTokens:              u.InputTokens,
		OutputTokens:             u.OutputTokens,
		CacheCreationInputTokens: u.CacheCreationInputTokens,
		CacheReadInputTokens:     u.CacheReadInputTokens,
		ReasoningTokens:          u.ReasoningTokens,
	}
}

func nullableString(str string) *string {
	if str == "" {
		return nil
	}
	return &str
}
