package domain

import (
	"time"

	"github.com/google/uuid"
)

// RunStatus is the terminal classification of one protocol invocation.
type RunStatus string

const (
	RunStatusOk            RunStatus = "OK"
	RunStatusInputMissing  RunStatus = "INPUT_MISSING"
	RunStatusProtocolError RunStatus = "PROTOCOL_ERROR"
	RunStatusTimeout       RunStatus = "TIMEOUT"
)

// Run records one execution of a solution against the real puzzle input.
type Run struct {
	ID       uuid.UUID `db:"id"`
	Year     int       `db:"year"`
	Day      int       `db:"day"`
	Language string    `db:"language"`
	Part     int       `db:"part"`
	Status   RunStatus `db:"status"`
	Answer   *string   `db:"answer"`
	TimeNs   *int64    `db:"time_ns"`
	RanAt    time.Time `db:"ran_at"`
}

// NewRun creates a run record with a fresh id and the current timestamp.
func NewRun(year, day int, language string, part Part, status RunStatus) *Run {
	return &Run{
		ID:       uuid.New(),
		Year:     year,
		Day:      day,
		Language: language,
		Part:     int(part),
		Status:   status,
		RanAt:    time.Now(),
	}
}

type RunTable struct {
	ID       string
	Year     string
	Day      string
	Language string
	Part     string
	Status   string
	Answer   string
	TimeNs   string
	RanAt    string
}

func GetRunTable() RunTable {
	return RunTable{
		ID:       "id",
		Year:     "year",
		Day:      "day",
		Language: "language",
		Part:     "part",
		Status:   "status",
		Answer:   "answer",
		TimeNs:   "time_ns",
		RanAt:    "ran_at",
	}
}

func (RunTable) TableName() string {
	return "runs"
}
