package git

// PushArgs returns the push arguments. The remote and branch are always the
// last two tokens; -u is added when setUpstream is true.
func PushArgs(remote, branch string, setUpstream bool) []string {
	args := []string{"push"}
	if setUpstream {
		args = append(args, "-u")
	}
	return append(args, remote, branch)
}
