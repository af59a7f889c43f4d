package main

import (
	"log/slog"
	"os"

	"ngmap/internal/errors"
	"ngmap/internal/slogutil"
)

func main() {
	logger := slogutil.NewLogger(os.Stderr, slog.LevelError)

	if err := rootCmd.Execute(); err != nil {
		logger.Error("Command execution failed", "error", err.Error())
		for _, fix := range suggestedFixes(err) {
			logger.Error("Suggested fix", "description", fix.Description, "command", fix.Command)
		}
		os.Exit(1)
	}
}

// suggestedFixes returns the fixes carried by an NgmapError anywhere in err's chain.
func suggestedFixes(err error) []errors.FixAction {
	for _, code := range []errors.ErrorCode{errors.PathNotFound, errors.ConfigInvalid, errors.UnsupportedFormat} {
		if errors.Is(err, code) {
			return errors.GetSuggestedFixes(code)
		}
	}
	return nil
}
