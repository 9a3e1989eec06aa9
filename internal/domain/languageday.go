package domain

// LanguageDay tracks scaffolding progress of one (year, day) in one language.
type LanguageDay struct {
	Year        int    `db:"year"`
	Day         int    `db:"day"`
	Language    string `db:"language"`
	Started     bool   `db:"started"`
	FinishedPt1 bool   `db:"finished_pt1"`
	FinishedPt2 bool   `db:"finished_pt2"`
}

// MarkFinished flips the finished flag for the given part.
func (l *LanguageDay) MarkFinished(part Part) {
	if part == Part1 {
		l.FinishedPt1 = true
		return
	}
	l.FinishedPt2 = true
}

type LanguageDayTable struct {
	Year        string
	Day         string
	Language    string
	Started     string
	FinishedPt1 string
	FinishedPt2 string
}

func GetLanguageDayTable() LanguageDayTable {
	return LanguageDayTable{
		Year:        "year",
		Day:         "day",
		Language:    "language",
		Started:     "started",
		FinishedPt1: "finished_pt1",
		FinishedPt2: "finished_pt2",
	}
}

func (LanguageDayTable) TableName() string {
	return "language_days"
}
