package storages

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/reusee/dscope"
	"github.com/sekino/tra/configs"
	"github.com/sekino/tra/vars"
)

type Module struct {
	dscope.Module
	Configs configs.Module
}

// RunsDBPath locates the run index database, taken from the runs_db
// config key.
type RunsDBPath string

const defaultRunsDB = "runs.db"

func (Module) RunsDBPath(
	loader configs.Loader,
) RunsDBPath {
	var path string
	loader.AssignFirst("runs_db", &path)
	return RunsDBPath(vars.FirstNonZero(
		path,
		defaultRunsDB,
	))
}

type OpenRunStore func(path string) (*RunStore, error)

func (Module) OpenRunStore() OpenRunStore {
	return func(path string) (*RunStore, error) {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("create db dir: %w", err)
			}
		}
		db, err := sql.Open("sqlite", path)
		if err != nil {
			return nil, fmt.Errorf("open db: %w", err)
		}
		store, err := NewRunStore(db)
		if err != nil {
			db.Close()
			return nil, err
		}
		return store, nil
	}
}
