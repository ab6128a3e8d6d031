package main

import (
	"fmt"

	"github.com/charmbracelet/log"
)

// chlogAdapter satisfies pgsgd.Logger over a *log.Logger, so the engine's
// progress output flows through the same structured logger the rest of the
// CLI uses, rather than a hardcoded stderr write.
type chlogAdapter struct {
	logger *log.Logger
}

func (a chlogAdapter) Printf(format string, args ...any) {
	a.logger.Info(fmt.Sprintf(format, args...))
}
