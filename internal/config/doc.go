// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config loads the settings of the notes server and the notes CLI.
//
// Values come from environment variables, command-line flags and an
// optional JSON file, then built-in defaults fill whatever is still empty.
// Sources are merged with mergo in that order and the first non-zero value
// wins, so the environment overrides flags and flags override the file.
package config
