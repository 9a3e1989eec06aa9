package errs

import "errors"

var NotAWorkspace = errors.New("this is not an aockit workspace")

var (
	WorkspaceConflict = errors.New("directory not clean, cannot initialize")
	CookieMissing     = errors.New("could not find AOC_SESSION_COOKIE")
	FetchFailed       = errors.New("could not fetch, the session cookie may have expired")
	AlreadyStarted    = errors.New("day already started for this language")
	UnknownLanguage   = errors.New("unknown language")
)
