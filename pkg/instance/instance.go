package instance

import (
	"os"
	"strings"
)

// GetID returns the process instance identifier used to tag log lines.
// DYNO wins over HOSTNAME; "local" is the fallback.
func GetID() string {
	for _, key := range []string{"DYNO", "HOSTNAME"} {
		if id := strings.TrimSpace(os.Getenv(key)); id != "" {
			return id
		}
	}
	return "local"
}
