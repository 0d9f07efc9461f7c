// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package cmdrunner builds and runs shell commands, capturing their exit
// code, stdout and stderr, and reporting the outcome through a buildlog
// logger.
//
// Execution is synchronous and blocking with no retries and no default
// timeout. The command line is handed to the system shell as a single
// string, the way defaultShell selects it.
package cmdrunner
