package common

import (
	"errors"
	"fmt"
)

// Stage codes for PipelineError. Each invocation fails at most once, at the
// first stage that cannot produce its output.
const (
	StageConfiguration = "CONFIGURATION"
	StageLoad          = "LOAD"
	StageExtraction    = "EXTRACTION"
	StageNaming        = "NAMING"
	StageRename        = "RENAME"
)

// PipelineError is a stage-tagged failure. Nothing downstream of a failed
// stage runs; callers distinguish the five kinds via the Is* predicates.
type PipelineError struct {
	Stage   string
	Message string
	Cause   error
}

func (e *PipelineError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Stage, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Stage, e.Message)
}

func (e *PipelineError) Unwrap() error {
	return e.Cause
}

// Failure constructors, one per stage.

func NewConfigurationFailure(message string, cause error) *PipelineError {
	return &PipelineError{Stage: StageConfiguration, Message: message, Cause: cause}
}

func NewLoadFailure(message string, cause error) *PipelineError {
	return &PipelineError{Stage: StageLoad, Message: message, Cause: cause}
}

func NewExtractionFailure(message string, cause error) *PipelineError {
	return &PipelineError{Stage: StageExtraction, Message: message, Cause: cause}
}

func NewNamingFailure(message string, cause error) *PipelineError {
	return &PipelineError{Stage: StageNaming, Message: message, Cause: cause}
}

func NewRenameFailure(message string, cause error) *PipelineError {
	return &PipelineError{Stage: StageRename, Message: message, Cause: cause}
}

// StageOf returns the stage code of err, or "" if err carries no stage.
func StageOf(err error) string {
	var pe *PipelineError
	if errors.As(err, &pe) {
		return pe.Stage
	}
	return ""
}

func IsConfigurationFailure(err error) bool { return StageOf(err) == StageConfiguration }
func IsLoadFailure(err error) bool          { return StageOf(err) == StageLoad }
func IsExtractionFailure(err error) bool    { return StageOf(err) == StageExtraction }
func IsNamingFailure(err error) bool        { return StageOf(err) == StageNaming }
func IsRenameFailure(err error) bool        { return StageOf(err) == StageRename }
