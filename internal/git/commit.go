package git

// CommitArgs returns the arguments that commit the staged changes with message
func CommitArgs(message string) []string {
	return []string{"commit", "-m", message}
}
