package domain

// Manifest points at a runner binary. Runners are external processes that
// build, test, or scaffold a project checkout; the host talks to them over
// gRPC.
type Manifest struct {
	Name        string
	Binary      string
	Description string
}

type Metadata struct {
	Name         string
	Version      string
	Description  string
	Capabilities []string
}

type CommandDescriptor struct {
	ID          string
	Title       string
	Description string
	TimeoutMS   int
}

type RunContext struct {
	ProjectDir string
	ProjectID  int
	Env        map[string]string
}

type RunRequest struct {
	CommandID string
	InputJSON string
	Context   RunContext
}

type RunResult struct {
	Stdout     string
	Stderr     string
	OutputJSON string
	ExitCode   int
}
