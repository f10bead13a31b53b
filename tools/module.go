package tools

import (
	"github.com/reusee/dscope"
	"github.com/sekino/tra/configs"
	"github.com/sekino/tra/logs"
	"github.com/sekino/tra/runners"
	"github.com/sekino/tra/vars"
)

type Module struct {
	dscope.Module
	Runners runners.Module
}

// ParallelTools bounds concurrent tool executions, taken from the
// parallel_tools config key.
type ParallelTools int

const defaultParallelTools = 4

func (Module) ParallelTools(
	loader configs.Loader,
) ParallelTools {
	var n int
	loader.AssignFirst("parallel_tools", &n)
	return ParallelTools(vars.FirstNonZero(
		n,
		defaultParallelTools,
	))
}

func (Module) Bash(
	run runners.Run,
) *Bash {
	return &Bash{
		run: run,
	}
}

type NewExecutor func(tools ...Tool) *Executor

func (Module) NewExecutor(
	logger logs.Logger,
	newSpan logs.NewSpan,
	parallel ParallelTools,
) NewExecutor {
	return func(tools ...Tool) *Executor {
		byName := make(map[string]Tool)
		for _, tool := range tools {
			byName[tool.Name()] = tool
		}
		return &Executor{
			tools:    byName,
			logger:   logger,
			newSpan:  newSpan,
			parallel: int(parallel),
		}
	}
}
