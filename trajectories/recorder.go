package trajectories

import (
	"os"
	"path/filepath"
	"time"

	"github.com/segmentio/encoding/json"
	"github.com/sekino/tra/llms"
	"github.com/sekino/tra/logs"
	"github.com/sekino/tra/vars"
)

// Recorder accumulates one trajectory document in memory and mirrors it
// to a single file after every mutation. The in-memory document is
// authoritative: a failed write is logged and the run continues.
//
// A Recorder assumes one logical caller invoking its methods
// sequentially; concurrent writers need external serialization.
type Recorder struct {
	path       string
	logger     logs.Logger
	startTime  time.Time
	trajectory Trajectory
}

// Step is the input to RecordAgentStep. Everything except Number and
// State is optional and serializes to null when absent.
type Step struct {
	Number      int
	State       string
	LLMMessages []llms.Message
	LLMResponse *llms.Response
	ToolCalls   []llms.ToolCall
	ToolResults []llms.ToolResult
	Reflection  *string
	Error       *string
}

// StartRecording initializes the document metadata, captures the start
// timestamp, and persists.
func (r *Recorder) StartRecording(task, provider, model string, maxSteps int) {
	r.startTime = time.Now()
	r.trajectory.Task = task
	r.trajectory.Provider = provider
	r.trajectory.Model = model
	r.trajectory.MaxSteps = maxSteps
	r.trajectory.StartTime = r.startTime.Format(time.RFC3339)
	r.persist()
}

// RecordLLMInteraction appends one exchange and persists. A nil tools
// slice records tools_available as null; an empty one stays empty.
func (r *Recorder) RecordLLMInteraction(
	messages []llms.Message,
	response *llms.Response,
	provider string,
	model string,
	tools []string,
) {
	interaction := LLMInteraction{
		Timestamp:      time.Now().Format(time.RFC3339),
		Provider:       provider,
		Model:          model,
		InputMessages:  serializeMessages(messages),
		ToolsAvailable: tools,
	}
	if serialized := serializeResponse(response); serialized != nil {
		interaction.Response = *serialized
	}
	r.trajectory.LLMInteractions = append(r.trajectory.LLMInteractions, interaction)
	r.persist()
}

// RecordAgentStep appends one step and persists.
func (r *Recorder) RecordAgentStep(step Step) {
	r.trajectory.AgentSteps = append(r.trajectory.AgentSteps, AgentStep{
		StepNumber:  step.Number,
		Timestamp:   time.Now().Format(time.RFC3339),
		State:       step.State,
		LLMMessages: serializeMessages(step.LLMMessages),
		LLMResponse: serializeResponse(step.LLMResponse),
		ToolCalls:   serializeToolCalls(step.ToolCalls),
		ToolResults: serializeToolResults(step.ToolResults),
		Reflection:  step.Reflection,
		Error:       step.Error,
	})
	r.persist()
}

// FinalizeRecording seals the document with the outcome and the total
// execution time, then persists. Appending after finalization is
// permitted but leaves end_time before the later entries.
func (r *Recorder) FinalizeRecording(success bool, finalResult *string) {
	endTime := time.Now()
	r.trajectory.EndTime = vars.PtrTo(endTime.Format(time.RFC3339))
	r.trajectory.Success = success
	r.trajectory.FinalResult = finalResult
	if r.startTime.IsZero() {
		r.trajectory.ExecutionTime = 0
	} else {
		r.trajectory.ExecutionTime = endTime.Sub(r.startTime).Seconds()
	}
	r.persist()
}

// TrajectoryPath returns the destination file path.
func (r *Recorder) TrajectoryPath() string {
	return r.path
}

// ExecutionTime reports the recorded total run time in seconds; zero
// until finalized.
func (r *Recorder) ExecutionTime() float64 {
	return r.trajectory.ExecutionTime
}

// persist rewrites the whole document. A temp file plus rename keeps a
// crash mid-write from corrupting the previous version.
func (r *Recorder) persist() {
	data, err := json.MarshalIndent(&r.trajectory, "", "  ")
	if err != nil {
		r.logger.Warn("marshal trajectory",
			"path", r.path,
			"error", err,
		)
		return
	}
	if dir := filepath.Dir(r.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			r.logger.Warn("create trajectory dir",
				"dir", dir,
				"error", err,
			)
			return
		}
	}
	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		r.logger.Warn("write trajectory",
			"path", tmp,
			"error", err,
		)
		return
	}
	if err := os.Rename(tmp, r.path); err != nil {
		r.logger.Warn("rename trajectory",
			"path", r.path,
			"error", err,
		)
	}
}
