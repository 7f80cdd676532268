package main

// Exit codes used across all commands.
const (
	ExitSuccess        = 0 // Success
	ExitError          = 1 // General error (invalid arguments, runtime failure)
	ExitConfigError    = 2 // Configuration error (unreadable config file)
	ExitNoBibliography = 3 // No bibliography configured, or every source failed
	ExitInvalidKey     = 4 // Malformed citation key passed to cite
)
