package runners

import (
	"context"

	"github.com/reusee/dscope"
	"github.com/sekino/tra/cmds"
	"github.com/sekino/tra/configs"
	"github.com/sekino/tra/logs"
	"github.com/sekino/tra/vars"
)

type Module struct {
	dscope.Module
	Configs configs.Module
	Logs    logs.Module
}

// CommandTimeout is the default wall clock limit in seconds, taken
// from the -command-timeout flag, then the command_timeout config key.
type CommandTimeout float64

var timeoutFlag = cmds.Var[float64]("-command-timeout")

func (Module) CommandTimeout(
	loader configs.Loader,
) CommandTimeout {
	var seconds float64
	loader.AssignFirst("command_timeout", &seconds)
	return CommandTimeout(vars.FirstNonZero(
		*timeoutFlag,
		seconds,
		DefaultTimeout,
	))
}

// TruncateAfter is the default output bound in bytes, taken from the
// -truncate-after flag, then the truncate_after config key.
type TruncateAfter int

var truncateFlag = cmds.Var[int]("-truncate-after")

func (Module) TruncateAfter(
	loader configs.Loader,
) TruncateAfter {
	var limit int
	loader.AssignFirst("truncate_after", &limit)
	return TruncateAfter(vars.FirstNonZero(
		*truncateFlag,
		limit,
		DefaultTruncateAfter,
	))
}

// Run executes one shell command, bounded in time and output. Each call
// spawns an independent subprocess; concurrent calls are safe. The only
// way to abort a running command is the timeout.
type Run func(ctx context.Context, command string, options ...RunOption) (*Result, error)

func (Module) Run(
	logger logs.Logger,
	timeout CommandTimeout,
	truncateAfter TruncateAfter,
) Run {
	return func(ctx context.Context, command string, options ...RunOption) (*Result, error) {
		limit := int(truncateAfter)
		o := runOptions{
			timeout:       float64(timeout),
			truncateAfter: &limit,
		}
		for _, option := range options {
			option(&o)
		}

		logger.DebugContext(ctx, "running command",
			"command", command,
			"timeout", o.timeout,
		)
		result, err := runCommand(ctx, command, o)
		if err != nil {
			logger.WarnContext(ctx, "command failed",
				"command", command,
				"error", err,
			)
			return nil, err
		}
		logger.DebugContext(ctx, "command completed",
			"command", command,
			"return_code", result.ReturnCode,
		)
		return result, nil
	}
}
