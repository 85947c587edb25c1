package cmd

import (
	"fmt"
	"os/exec"
	"runtime"
)

type dependency struct {
	name       string
	binary     string
	installCmd map[string]string // GOOS -> install command
}

func adbDependency(path string) dependency {
	return dependency{
		name:   "ADB (Android Debug Bridge)",
		binary: path,
		installCmd: map[string]string{
			"darwin":  "brew install android-platform-tools",
			"linux":   "sudo apt install android-tools-adb",
			"windows": "winget install Google.PlatformTools",
		},
	}
}

func npmDependency(path string) dependency {
	return dependency{
		name:   "npm",
		binary: path,
		installCmd: map[string]string{
			"darwin":  "brew install node",
			"linux":   "sudo apt install npm",
			"windows": "winget install OpenJS.NodeJS",
		},
	}
}

// checkDeps verifies that the required external tools are installed.
func checkDeps(deps ...dependency) error {
	for _, dep := range deps {
		if _, err := exec.LookPath(dep.binary); err == nil {
			continue
		}
		if cmd, ok := dep.installCmd[runtime.GOOS]; ok {
			return fmt.Errorf("%s (%s) is required but not installed; install it with: %s", dep.name, dep.binary, cmd)
		}
		return fmt.Errorf("%s (%s) is required but not installed", dep.name, dep.binary)
	}
	return nil
}
