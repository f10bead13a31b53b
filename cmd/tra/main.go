package main

import (
	"context"
	"fmt"
	"os"

	"github.com/reusee/dscope"
	"github.com/sekino/tra/cmds"
	"github.com/sekino/tra/llms"
	"github.com/sekino/tra/logs"
	"github.com/sekino/tra/modes"
	"github.com/sekino/tra/storages"
	"github.com/sekino/tra/tools"
	"github.com/sekino/tra/trajectories"
	"github.com/sekino/tra/vars"
)

var (
	execArg        = cmds.Var[string]("exec")
	runsSwitch     = cmds.Switch("runs")
	trajectoryFlag = cmds.Var[string]("-trajectory")
)

func main() {
	cmds.Execute(os.Args[1:])

	if *execArg == "" && !*runsSwitch {
		cmds.GlobalExecutor.PrintUsage()
		os.Exit(1)
	}

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	scope.Call(func(
		logger logs.Logger,
		newSpan logs.NewSpan,
		newRecorder trajectories.NewRecorder,
		newExecutor tools.NewExecutor,
		bash *tools.Bash,
		openStore storages.OpenRunStore,
		dbPath storages.RunsDBPath,
	) {
		ctx := context.Background()
		ctx, _ = newSpan(ctx, "")

		if *runsSwitch {
			store, err := openStore(string(dbPath))
			if err != nil {
				fmt.Fprintln(os.Stderr, logs.WrapSpan(ctx, err))
				os.Exit(1)
			}
			defer store.Close()
			runs, err := store.Recent(20)
			if err != nil {
				fmt.Fprintln(os.Stderr, logs.WrapSpan(ctx, err))
				os.Exit(1)
			}
			for _, run := range runs {
				status := "FAILED"
				if run.Success {
					status = "OK"
				}
				fmt.Printf("%s  %s  %-6s  %.2fs  %s\n",
					run.CreatedAt.Format("2006-01-02 15:04:05"),
					run.ID,
					status,
					run.ExecutionTime,
					run.Task,
				)
			}
			return
		}

		command := *execArg

		recorder := newRecorder(*trajectoryFlag)
		recorder.StartRecording(command, "local", "shell", 1)

		executor := newExecutor(bash)
		call := llms.ToolCall{
			CallID: "call_1",
			Name:   "bash",
			Arguments: map[string]any{
				"command": command,
			},
		}
		result := executor.Run(ctx, call)

		recorder.RecordAgentStep(trajectories.Step{
			Number:      1,
			State:       "calling_tool",
			ToolCalls:   []llms.ToolCall{call},
			ToolResults: []llms.ToolResult{result},
		})
		recorder.FinalizeRecording(result.Success, vars.PtrTo(result.Result))

		store, err := openStore(string(dbPath))
		if err != nil {
			logger.Warn("open run store", "error", err)
		} else {
			defer store.Close()
			if _, err := store.Record(storages.Run{
				TrajectoryPath: recorder.TrajectoryPath(),
				Task:           command,
				Provider:       "local",
				Model:          "shell",
				Success:        result.Success,
				ExecutionTime:  recorder.ExecutionTime(),
			}); err != nil {
				logger.Warn("record run", "error", err)
			}
		}

		if result.Result != "" {
			fmt.Print(result.Result)
		}
		if result.Error != "" {
			fmt.Fprint(os.Stderr, result.Error)
		}
		logger.Info("trajectory saved",
			"path", recorder.TrajectoryPath(),
		)
		if !result.Success {
			os.Exit(1)
		}
	})
}
