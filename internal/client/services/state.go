package services

import "github.com/dmitrijs2005/lmsclient/internal/client/models"

// State is the current step of an AuthFlow. Exactly one of Idle,
// CodeRequested, Verified or Failed.
type State interface {
	String() string
	state()
}

// Idle means no code has been requested yet.
type Idle struct{}

// CodeRequested holds the challenge awaiting a code.
type CodeRequested struct {
	Challenge models.Challenge
}

// Verified is terminal: the session has been committed to the store.
type Verified struct {
	Session models.Session
}

// Failed records why the last code request did not go through.
// A new RequestCode may be issued from here.
type Failed struct {
	Err *FlowError
}

func (Idle) String() string          { return "idle" }
func (CodeRequested) String() string { return "code_requested" }
func (Verified) String() string      { return "verified" }
func (Failed) String() string        { return "failed" }

func (Idle) state()          {}
func (CodeRequested) state() {}
func (Verified) state()      {}
func (Failed) state()        {}
