package trajectories

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/reusee/dscope"
	"github.com/sekino/tra/configs"
	"github.com/sekino/tra/logs"
)

type Module struct {
	dscope.Module
	Configs configs.Module
	Logs    logs.Module
}

// TrajectoryDir is where default-named trajectory files land, taken
// from the trajectory_dir config key. Empty means the working
// directory. Explicit paths passed to NewRecorder are not affected.
type TrajectoryDir string

func (Module) TrajectoryDir(
	loader configs.Loader,
) TrajectoryDir {
	var dir string
	loader.AssignFirst("trajectory_dir", &dir)
	return TrajectoryDir(dir)
}

// NewRecorder builds a Recorder writing to path. An empty path picks
// trajectory_<YYYYMMDD_HHMMSS>.json under TrajectoryDir, with the
// timestamp taken at construction.
type NewRecorder func(path string) *Recorder

func (Module) NewRecorder(
	logger logs.Logger,
	dir TrajectoryDir,
) NewRecorder {
	return func(path string) *Recorder {
		if path == "" {
			path = filepath.Join(
				string(dir),
				fmt.Sprintf("trajectory_%s.json",
					time.Now().Format("20060102_150405")),
			)
		}
		return &Recorder{
			path:   path,
			logger: logger,
			trajectory: Trajectory{
				LLMInteractions: []LLMInteraction{},
				AgentSteps:      []AgentStep{},
			},
		}
	}
}
