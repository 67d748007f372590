// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the scripted console client.
//
// A run logs in once, executes the commands given on the command line in
// order (enroll, verify, toggle, status, ...) against a [adapter.ConsoleAdapter]
// and logs out.
package client
