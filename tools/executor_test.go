package tools

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/reusee/dscope"
	"github.com/sekino/tra/configs"
	"github.com/sekino/tra/llms"
	"github.com/sekino/tra/logs"
	"github.com/sekino/tra/modes"
)

func testScope(t *testing.T) dscope.Scope {
	return dscope.New(
		modes.ForTest(t),
		new(Module),
		dscope.Provide(configs.NewLoader(nil, "")),
	)
}

type echoTool struct{}

func (echoTool) Name() string {
	return "echo"
}

func (echoTool) Description() string {
	return "echo back the text argument"
}

func (echoTool) Parameters() []Parameter {
	return []Parameter{
		{Name: "text", Type: "string", Description: "text to echo", Required: true},
	}
}

func (echoTool) Execute(ctx context.Context, args map[string]any) (*ExecResult, error) {
	text, _ := args["text"].(string)
	return &ExecResult{
		Output: text,
	}, nil
}

func TestExecutorRun(t *testing.T) {
	testScope(t).Call(func(
		newExecutor NewExecutor,
	) {
		executor := newExecutor(echoTool{})
		ctx := context.Background()

		result := executor.Run(ctx, llms.ToolCall{
			CallID: "call_1",
			Name:   "echo",
			Arguments: map[string]any{
				"text": "hello",
			},
		})
		if !result.Success {
			t.Fatalf("got %+v", result)
		}
		if result.Result != "hello" {
			t.Fatalf("got %q", result.Result)
		}
		if result.CallID != "call_1" {
			t.Fatalf("got %q", result.CallID)
		}

		result = executor.Run(ctx, llms.ToolCall{
			CallID: "call_2",
			Name:   "no_such_tool",
		})
		if result.Success {
			t.Fatal()
		}
		if !strings.Contains(result.Error, "not found") {
			t.Fatalf("got %q", result.Error)
		}
	})
}

func TestExecutorParallelRun(t *testing.T) {
	testScope(t).Call(func(
		newExecutor NewExecutor,
	) {
		executor := newExecutor(echoTool{})
		ctx := context.Background()

		var calls []llms.ToolCall
		for i := range 16 {
			calls = append(calls, llms.ToolCall{
				CallID: fmt.Sprintf("call_%d", i),
				Name:   "echo",
				Arguments: map[string]any{
					"text": fmt.Sprintf("text %d", i),
				},
			})
		}

		results := executor.ParallelRun(ctx, calls)
		if len(results) != len(calls) {
			t.Fatalf("got %d", len(results))
		}
		for i, result := range results {
			if result.Result != fmt.Sprintf("text %d", i) {
				t.Fatalf("got %q at %d", result.Result, i)
			}
		}
	})
}

func TestBash(t *testing.T) {
	testScope(t).Call(func(
		newExecutor NewExecutor,
		bash *Bash,
	) {
		executor := newExecutor(bash)
		ctx := context.Background()

		result := executor.Run(ctx, llms.ToolCall{
			CallID: "call_1",
			Name:   "bash",
			Arguments: map[string]any{
				"command": "echo hi",
			},
		})
		if !result.Success {
			t.Fatalf("got %+v", result)
		}
		if result.Result != "hi\n" {
			t.Fatalf("got %q", result.Result)
		}

		result = executor.Run(ctx, llms.ToolCall{
			CallID: "call_2",
			Name:   "bash",
			Arguments: map[string]any{
				"command": "exit 7",
			},
		})
		if result.Success {
			t.Fatal()
		}

		result = executor.Run(ctx, llms.ToolCall{
			CallID:    "call_3",
			Name:      "bash",
			Arguments: map[string]any{},
		})
		if result.Success {
			t.Fatal()
		}
		if !strings.Contains(result.Error, "no command") {
			t.Fatalf("got %q", result.Error)
		}
	})
}

func TestRunSpans(t *testing.T) {
	buf := new(bytes.Buffer)
	testScope(t).Fork(
		func() logs.Writer {
			return buf
		},
	).Call(func(
		newExecutor NewExecutor,
	) {
		executor := newExecutor(echoTool{})
		executor.Run(context.Background(), llms.ToolCall{
			CallID: "call_1",
			Name:   "echo",
			Arguments: map[string]any{
				"text": "hi",
			},
		})
		if !strings.Contains(buf.String(), "logs.span=") {
			t.Fatalf("got %q", buf.String())
		}
	})
}

func TestNames(t *testing.T) {
	if Names(nil) != nil {
		t.Fatal()
	}
	names := Names([]Tool{echoTool{}})
	if fmt.Sprintf("%v", names) != "[echo]" {
		t.Fatalf("got %v", names)
	}
}
