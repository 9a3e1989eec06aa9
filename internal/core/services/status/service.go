package status

import "context"

// IStatusService reports workspace progress from the archive and cache.
type IStatusService interface {
	// Show renders the cached statement for (year, day), the answers
	// confirmed so far and the recorded run history.
	Show(ctx context.Context, year, day int) (string, error)

	// Summary renders the workspace identity line and a per-year star grid,
	// one slot per day (".": unsolved, "*": one star, "#": both stars).
	Summary(ctx context.Context) (string, error)
}
