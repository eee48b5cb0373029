// --- START OF FINAL REVISED FILE pkg/reporter/report.go ---
package reporter

import "time"

// RunReport summarizes the result of a single GenerateReport run.
type RunReport struct {
	SchemaVersion    string    `json:"schemaVersion" yaml:"schemaVersion"`
	RunID            string    `json:"runId" yaml:"runId"`
	ProjectName      string    `json:"projectName" yaml:"projectName"`
	BuildNumber      string    `json:"buildNumber" yaml:"buildNumber"`
	CucumberOutput   string    `json:"cucumberOutput" yaml:"cucumberOutput"`
	OutputDirectory  string    `json:"outputDirectory" yaml:"outputDirectory"`
	ProfileUsed      string    `json:"profileUsed,omitempty" yaml:"profileUsed,omitempty"`
	ConfigFilePath   string    `json:"configFilePath,omitempty" yaml:"configFilePath,omitempty"`
	JSONFiles        []string  `json:"jsonFiles" yaml:"jsonFiles"`
	FileCount        int       `json:"fileCount" yaml:"fileCount"`
	BuilderInvoked   bool      `json:"builderInvoked" yaml:"builderInvoked"`
	Passed           bool      `json:"passed" yaml:"passed"`
	CheckBuildResult bool      `json:"checkBuildResult" yaml:"checkBuildResult"`
	Outcome          Outcome   `json:"outcome" yaml:"outcome"`
	ReportPath       string    `json:"reportPath,omitempty" yaml:"reportPath,omitempty"`
	Error            string    `json:"error,omitempty" yaml:"error,omitempty"`
	DurationSeconds  float64   `json:"durationSeconds" yaml:"durationSeconds"`
	Timestamp        time.Time `json:"timestamp" yaml:"timestamp"`
}

// Failed reports whether the run ended in a state the host should treat as a failed build.
func (r RunReport) Failed() bool {
	return r.Outcome == OutcomeBuildFailed || r.Outcome == OutcomeError
}

// --- END OF FINAL REVISED FILE pkg/reporter/report.go ---
