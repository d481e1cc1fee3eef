// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the note-keeper command-line client.
//
// Every command maps to one client service call. Without arguments the
// client starts an interactive shell, in which a background worker drops
// the local session once its token expires.
package client
