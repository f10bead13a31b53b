package tools

import (
	"context"
	"fmt"

	"github.com/sekino/tra/runners"
)

// Bash runs shell commands through the command runner. Each call is an
// independent subprocess; no shell state survives between calls.
type Bash struct {
	run runners.Run
}

var _ Tool = new(Bash)

func (b *Bash) Name() string {
	return "bash"
}

func (b *Bash) Description() string {
	return `Run commands in a shell
* Each invocation runs in a fresh /bin/sh subprocess; shell state does not persist between calls.
* To inspect a particular line range of a file, e.g. lines 10-25, try 'sed -n 10,25p /path/to/the/file'.
* Please avoid commands that may produce a very large amount of output.
* Please run long lived commands in the background, e.g. 'sleep 10 &' or start a server in the background.`
}

func (b *Bash) Parameters() []Parameter {
	return []Parameter{
		{
			Name:        "command",
			Type:        "string",
			Description: "The shell command to run.",
			Required:    true,
		},
	}
}

func (b *Bash) Execute(ctx context.Context, args map[string]any) (*ExecResult, error) {
	command, _ := args["command"].(string)
	if command == "" {
		return nil, fmt.Errorf("no command provided for the %s tool", b.Name())
	}
	result, err := b.run(ctx, command)
	if err != nil {
		return nil, err
	}
	return &ExecResult{
		Output:    result.Stdout,
		Error:     result.Stderr,
		ErrorCode: result.ReturnCode,
	}, nil
}
