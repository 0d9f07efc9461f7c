// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package cmdrunner

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/matt-FFFFFF/forge/internal/ctxlog"
)

const (
	// GOOSWindows is the string constant for Windows OS from the runtime package.
	GOOSWindows          = "windows"
	commandSwitchWindows = "/C"         // Command switch for Windows cmd.exe
	commandSwitchUnix    = "-c"         // Command switch for Unix-like shells
	winSystem32          = "System32"   // System32 is the directory where cmd.exe is located on Windows.
	cmdExe               = "cmd.exe"    // cmdExe is the name of the command interpreter executable on Windows.
	binSh                = "/bin/sh"    // Default shell for Unix-like systems.
	winSystemRootEnv     = "SystemRoot" // Environment variable for Windows system root directory.
)

// defaultShell returns the command interpreter used to run the joined
// command line. On Windows this is cmd.exe; elsewhere the SHELL environment
// variable, falling back to /bin/sh.
func defaultShell(ctx context.Context) string {
	if runtime.GOOS == GOOSWindows {
		systemRoot := os.Getenv(winSystemRootEnv)
		if systemRoot == "" {
			systemRoot = `C:\Windows`
		}

		return fmt.Sprintf(`%s\%s\%s`, systemRoot, winSystem32, cmdExe)
	}

	if shell := os.Getenv("SHELL"); shell != "" {
		ctxlog.Debug(ctx, "Using SHELL environment variable", "shell", shell)
		return shell
	}

	return binSh
}

// commandSwitch returns the flag that makes the shell interpret the next
// argument as a command line.
func commandSwitch() string {
	if runtime.GOOS == GOOSWindows {
		return commandSwitchWindows
	}

	return commandSwitchUnix
}
