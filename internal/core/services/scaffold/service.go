package scaffold

import "context"

// IScaffoldService starts a day in a target language.
type IScaffoldService interface {
	// StartDay fetches the day if needed, writes the solution file from the
	// language template and records the language-day as started. Returns the
	// path of the solution file. A day already started in the language is
	// refused unless force is set.
	StartDay(ctx context.Context, language string, year, day int, force bool) (string, error)
}
