package secondary

import "context"

// StatementPage is the parsed result of one puzzle statement fetch.
type StatementPage struct {
	URL       string
	Statement string
	Title     string
	Pt1Answer *string
	Pt2Answer *string
}

// PuzzleFetcher downloads statements and inputs from the puzzle site.
type PuzzleFetcher interface {
	// FetchStatement downloads and parses the statement page for (year, day).
	FetchStatement(ctx context.Context, year, day int) (*StatementPage, error)

	// FetchInput downloads the raw puzzle input for (year, day).
	FetchInput(ctx context.Context, year, day int) (string, error)
}
