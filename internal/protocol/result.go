package protocol

import (
	"fmt"
	"strconv"
	"strings"
)

// Status is the terminal classification of a single protocol invocation.
// Invocations are never retried at this layer.
type Status int

const (
	// StatusOk means the child honored the contract and produced an answer.
	StatusOk Status = iota + 1
	// StatusInputMissing means the expected input file does not exist; no
	// process was launched.
	StatusInputMissing
	// StatusProtocolError means the child violated the stdout/exit-code
	// contract: nonzero exit, wrong line count, or a malformed timing line.
	StatusProtocolError
	// StatusTimeout means the child exceeded the bounded wait and was killed.
	// Output drained before the deadline is discarded.
	StatusTimeout
)

func (s Status) String() string {
	switch s {
	case StatusOk:
		return "ok"
	case StatusInputMissing:
		return "input missing"
	case StatusProtocolError:
		return "protocol error"
	case StatusTimeout:
		return "timeout"
	default:
		return "unknown"
	}
}

// ExecutionResult is produced exactly once per Runner invocation and is
// immutable after construction. Answer, RunningTime and Unit are set only for
// StatusOk, and RunningTime/Unit only when the child printed a timing line.
type ExecutionResult struct {
	Status      Status
	Answer      *string
	RunningTime *int64
	Unit        *MetricPrefix
}

// parseRunningTime parses a timing line of the exact shape "RT <integer> <unit>".
func parseRunningTime(line string) (int64, MetricPrefix, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 || fields[0] != "RT" {
		return 0, 0, fmt.Errorf("could not parse running time for %q", line)
	}
	magnitude, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("could not parse running time for %q: %w", line, err)
	}
	unit, err := ParseMetricPrefix(fields[2], "second", "s")
	if err != nil {
		return 0, 0, fmt.Errorf("could not parse running time for %q: %w", line, err)
	}
	return magnitude, unit, nil
}
