// Copyright 2026 FitLink QA. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

// Package flow provides the report-flow runner orchestration.
package flow

// State represents the runner lifecycle state. The flow is strictly linear;
// the only branch is the abort out of Authenticating when a login yields no
// bearer token.
type State int

const (
	StateStart State = iota
	StateRegistering
	StateWaiting
	StateAuthenticating
	StateReporting
	StateDone
	StateAborted
)

func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StateRegistering:
		return "registering"
	case StateWaiting:
		return "waiting"
	case StateAuthenticating:
		return "authenticating"
	case StateReporting:
		return "reporting"
	case StateDone:
		return "done"
	case StateAborted:
		return "aborted"
	default:
		return "unknown"
	}
}
