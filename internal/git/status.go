package git

import "strings"

// StatusArgs returns the arguments of the machine-readable status query
func StatusArgs() []string {
	return []string{"status", "--porcelain"}
}

// IsCleanStatus reports whether porcelain status output describes a clean working tree
func IsCleanStatus(porcelain string) bool {
	return strings.TrimSpace(porcelain) == ""
}
