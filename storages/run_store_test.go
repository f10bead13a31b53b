package storages

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/reusee/dscope"
	"github.com/sekino/tra/configs"
	"github.com/sekino/tra/modes"
)

func TestRunStore(t *testing.T) {
	dscope.New(
		modes.ForTest(t),
		new(Module),
		dscope.Provide(configs.NewLoader(nil, "")),
	).Call(func(
		openStore OpenRunStore,
	) {
		store, err := openStore(filepath.Join(t.TempDir(), "runs.db"))
		if err != nil {
			t.Fatal(err)
		}
		defer store.Close()

		id, err := store.Record(Run{
			TrajectoryPath: "trajectory_1.json",
			Task:           "fix the bug",
			Provider:       "openai",
			Model:          "gpt-4o",
			Success:        true,
			ExecutionTime:  1.5,
		})
		if err != nil {
			t.Fatal(err)
		}
		if id == "" {
			t.Fatal()
		}

		_, err = store.Record(Run{
			TrajectoryPath: "trajectory_2.json",
			Task:           "add a feature",
			Provider:       "anthropic",
			Model:          "claude-sonnet-4",
			Success:        false,
			ExecutionTime:  3.25,
			CreatedAt:      time.Now().Add(time.Second),
		})
		if err != nil {
			t.Fatal(err)
		}

		runs, err := store.Recent(10)
		if err != nil {
			t.Fatal(err)
		}
		if len(runs) != 2 {
			t.Fatalf("got %d", len(runs))
		}
		if runs[0].Task != "add a feature" {
			t.Fatalf("got %q", runs[0].Task)
		}
		if runs[1].Task != "fix the bug" {
			t.Fatalf("got %q", runs[1].Task)
		}
		if !runs[1].Success {
			t.Fatal()
		}
		if runs[1].ExecutionTime != 1.5 {
			t.Fatalf("got %v", runs[1].ExecutionTime)
		}

		runs, err = store.Recent(1)
		if err != nil {
			t.Fatal(err)
		}
		if len(runs) != 1 {
			t.Fatalf("got %d", len(runs))
		}
	})
}
