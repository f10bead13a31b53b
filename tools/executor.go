package tools

import (
	"context"
	"fmt"

	"github.com/sekino/tra/llms"
	"github.com/sekino/tra/logs"
	"github.com/sekino/tra/syncs"
)

// Executor dispatches tool calls to registered tools and folds every
// outcome, including failures, into a ToolResult the model can see.
type Executor struct {
	tools    map[string]Tool
	logger   logs.Logger
	newSpan  logs.NewSpan
	parallel int
}

// Run executes one call under its own log span.
func (e *Executor) Run(ctx context.Context, call llms.ToolCall) llms.ToolResult {
	ctx, _ = e.newSpan(ctx, "")

	result := llms.ToolResult{
		CallID: call.CallID,
		Name:   call.Name,
		ID:     call.ID,
	}

	tool, ok := e.tools[call.Name]
	if !ok {
		result.Error = fmt.Sprintf("tool '%s' not found", call.Name)
		return result
	}

	e.logger.InfoContext(ctx, "executing tool",
		"tool", call.Name,
		"call_id", call.CallID,
	)
	execResult, err := tool.Execute(ctx, call.Arguments)
	if err != nil {
		e.logger.WarnContext(ctx, "tool execution failed",
			"tool", call.Name,
			"error", err,
		)
		result.Error = err.Error()
		return result
	}

	result.Success = execResult.ErrorCode == 0
	result.Result = execResult.Output
	result.Error = execResult.Error
	return result
}

// SequentialRun executes calls one by one, in order.
func (e *Executor) SequentialRun(ctx context.Context, calls []llms.ToolCall) []llms.ToolResult {
	results := make([]llms.ToolResult, 0, len(calls))
	for _, call := range calls {
		results = append(results, e.Run(ctx, call))
	}
	return results
}

// ParallelRun executes calls concurrently, bounded by the configured
// parallelism. Results keep call order.
func (e *Executor) ParallelRun(ctx context.Context, calls []llms.ToolCall) []llms.ToolResult {
	results := make([]llms.ToolResult, len(calls))
	sem := syncs.NewSemaphore(e.parallel)
	done := make(chan struct{})
	for i, call := range calls {
		go func() {
			defer func() {
				done <- struct{}{}
			}()
			sem.Acquire()
			defer sem.Release()
			results[i] = e.Run(ctx, call)
		}()
	}
	for range calls {
		<-done
	}
	return results
}
