package service

import (
	"errors"
	"fmt"
)

// Stage names the pipeline step that failed.
type Stage string

const (
	StageFetch     Stage = "fetch"
	StageParse     Stage = "parse"
	StageScore     Stage = "score"
	StageAggregate Stage = "aggregate"
)

// ErrMalformedInput is returned by the aggregator for rows it cannot bucket.
var ErrMalformedInput = errors.New("malformed input")

// PipelineError is the only error type that leaves the sentiment service.
// Callers map it to one user-facing message; the wrapped error is for logs.
type PipelineError struct {
	Stage  Stage
	Ticker string
	Err    error
}

func (e *PipelineError) Error() string {
	return fmt.Sprintf("%s stage failed for ticker %q: %v", e.Stage, e.Ticker, e.Err)
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

func newPipelineError(stage Stage, ticker string, err error) *PipelineError {
	return &PipelineError{Stage: stage, Ticker: ticker, Err: err}
}

// StageOf reports the failed stage of err, or "" if err did not come from
// the pipeline.
func StageOf(err error) Stage {
	var pErr *PipelineError
	if errors.As(err, &pErr) {
		return pErr.Stage
	}
	return ""
}
