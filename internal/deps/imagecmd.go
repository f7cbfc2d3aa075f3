package deps

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
)

// CheckImageCmd resolves the CoronaImageCmd binary the extractor will execute.
//
// The configured command may be a bare name, resolved from PATH, or an
// explicit path (absolute or relative). Explicit paths are checked directly so
// that status output matches exactly what the extractor would invoke.
func CheckImageCmd(command string) Status {
	result := Status{
		Name:        "CoronaImageCmd",
		Description: "Converts CXR frames to viewable images",
	}

	command = strings.TrimSpace(command)
	if command == "" {
		result.Detail = "command not configured"
		return result
	}
	result.Command = command

	if strings.ContainsAny(command, `/\`) {
		info, err := os.Stat(command)
		if err != nil || !isExecutable(info) {
			result.Detail = fmt.Sprintf("path %q is not an executable file", command)
			return result
		}
		result.Available = true
		return result
	}

	resolved, err := exec.LookPath(command)
	if err != nil {
		result.Detail = fmt.Sprintf("binary %q not found", command)
		return result
	}
	result.Command = resolved
	result.Available = true
	return result
}

func isExecutable(info os.FileInfo) bool {
	if info == nil || info.IsDir() {
		return false
	}
	if runtime.GOOS == "windows" {
		return true
	}
	return info.Mode().Perm()&0o111 != 0
}
