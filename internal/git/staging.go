package git

// StageAllArgs returns the arguments that stage every change in the working tree
func StageAllArgs() []string {
	return []string{"add", "."}
}
