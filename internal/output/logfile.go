package output

import "os"

// GetLogFilePath returns the path of the log file, or "" when file logging is off.
// File logging is enabled by setting GITPUSH_LOG_FILE.
func GetLogFilePath() string {
	return os.Getenv("GITPUSH_LOG_FILE")
}
