// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package buildlog provides the user-facing build logger: leveled, colored
// console messages in the form "[timestamp SEVERITY]: message", with an
// optional append-only plain-text file sink.
//
// This is deliberately separate from the structured diagnostics in the
// ctxlog package: buildlog lines are the tool's output, ctxlog is its
// debug chatter.
package buildlog
