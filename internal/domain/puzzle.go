package domain

// Puzzle represents one Advent of Code day: its statement metadata and the
// answers confirmed so far. Keyed by (year, day).
type Puzzle struct {
	Year      int     `db:"year"`
	Day       int     `db:"day"`
	Title     string  `db:"title"`
	URL       string  `db:"url"`
	Pt1Answer *string `db:"pt1_answer"`
	Pt2Answer *string `db:"pt2_answer"`
}

// AnswerFor returns the confirmed answer for the given part, if any.
func (p *Puzzle) AnswerFor(part Part) *string {
	if part == Part1 {
		return p.Pt1Answer
	}
	return p.Pt2Answer
}

// Solved reports how many parts have confirmed answers: 0, 1 or 2 stars.
func (p *Puzzle) Solved() int {
	switch {
	case p.Pt1Answer == nil:
		return 0
	case p.Pt2Answer == nil:
		return 1
	default:
		return 2
	}
}

type PuzzleTable struct {
	Year      string
	Day       string
	Title     string
	URL       string
	Pt1Answer string
	Pt2Answer string
}

func GetPuzzleTable() PuzzleTable {
	return PuzzleTable{
		Year:      "year",
		Day:       "day",
		Title:     "title",
		URL:       "url",
		Pt1Answer: "pt1_answer",
		Pt2Answer: "pt2_answer",
	}
}

func (PuzzleTable) TableName() string {
	return "puzzles"
}
