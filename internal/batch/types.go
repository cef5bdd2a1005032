// Package batch runs scripted sequences of compiler invocations, one at
// a time. The console capture underneath is process-global single-owner
// state, so the runner owns the serialization the driver documents as a
// caller obligation.
package batch

// Job is one scripted invocation: a working directory plus the raw
// command line handed to the driver.
type Job struct {
	Name string `toml:"name"`
	Dir  string `toml:"dir"`
	Args string `toml:"args"`
}

// Label returns the job's display name, falling back to its command line.
func (j Job) Label() string {
	if j.Name != "" {
		return j.Name
	}
	return j.Args
}

// Script is a decoded TOML run script.
type Script struct {
	Jobs []Job `toml:"job"`
}

// Stage of a job's lifecycle.
type Stage uint8

const (
	StageQueued Stage = iota
	StageCompiling
	StageDone
)

func (s Stage) String() string {
	switch s {
	case StageCompiling:
		return "compiling"
	case StageDone:
		return "done"
	}
	return "queued"
}

// Event reports a job lifecycle transition.
type Event struct {
	Index    int
	Job      Job
	Stage    Stage
	ExitCode int  // meaningful at StageDone
	Failed   bool // meaningful at StageDone
}

// Sink receives job events.
type Sink interface {
	OnEvent(Event)
}

// ChannelSink forwards events into a channel.
type ChannelSink struct {
	Ch chan<- Event
}

func (s ChannelSink) OnEvent(evt Event) {
	if s.Ch == nil {
		return
	}
	s.Ch <- evt
}
