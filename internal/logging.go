package internal

import (
	"log"
	"os"
)

// InitLogging sets the standard logger to timestamped stdout output. The
// CLI calls it once at startup.
func InitLogging() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
}
