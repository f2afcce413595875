package cli

import "fmt"

// Exit codes of the yamlunist commands.
const (
	ExitOK      = 0
	ExitFailure = 1
)

// CommandError carries the exit code of a command that already printed why
// it failed. main exits with the code and prints nothing more.
type CommandError struct {
	exitCode int
}

func NewCommandError(exitCode int) *CommandError {
	return &CommandError{exitCode: exitCode}
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("exit status %d", e.exitCode)
}

func (e *CommandError) ExitCode() int {
	return e.exitCode
}

// CheckStage names the step of check that reported findings.
type CheckStage string

const (
	StageDecode    CheckStage = "decode"
	StageCST       CheckStage = "cst"
	StageTransform CheckStage = "transform"
	StageVerify    CheckStage = "verify"
)

// CheckResult is the outcome of check. Findings were printed already; Err
// is set when the check could not run at all, for example without a dump.
type CheckResult struct {
	Stage    CheckStage
	Findings int
	Err      error
}

// ExitCode maps the result to the process exit code.
func (r CheckResult) ExitCode() int {
	if r.Err != nil || r.Findings > 0 {
		return ExitFailure
	}
	return ExitOK
}

func checkPassed() CheckResult { return CheckResult{} }

func checkFailed(err error) CheckResult { return CheckResult{Err: err} }

func checkFindings(stage CheckStage, n int) CheckResult {
	return CheckResult{Stage: stage, Findings: n}
}
