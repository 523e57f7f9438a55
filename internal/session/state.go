// Package session owns the authentication lifecycle: the reducer-driven
// auth state, the persisted session record and registry, and the async
// operations (init, login, signup, logout, clear-error) the rest of the
// application calls into.
package session

import "github.com/avoronin/authkeep/internal/models"

// AuthState is the single source of truth for UI branching.
//
// Invariant: IsAuthenticated == (User != nil) after every completed
// transition. It may be transiently false while the stored session is
// being restored during initialization.
type AuthState struct {
	User            *models.User
	IsLoading       bool
	Error           string
	IsAuthenticated bool
}

// action is the closed set of state transitions. Every variant is handled
// by reduce; adding a variant without extending the switch there is a bug.
type action interface {
	isAction()
}

type initRequest struct{}

type initSuccess struct {
	user *models.User
}

type initFailure struct {
	message string
}

type loginRequest struct{}

type loginSuccess struct {
	user *models.User
}

type loginFailure struct {
	message string
}

type signupRequest struct{}

type signupSuccess struct {
	user *models.User
}

type signupFailure struct {
	message string
}

type logoutAction struct{}

type clearErrorAction struct{}

func (initRequest) isAction()      {}
func (initSuccess) isAction()      {}
func (initFailure) isAction()      {}
func (loginRequest) isAction()     {}
func (loginSuccess) isAction()     {}
func (loginFailure) isAction()     {}
func (signupRequest) isAction()    {}
func (signupSuccess) isAction()    {}
func (signupFailure) isAction()    {}
func (logoutAction) isAction()     {}
func (clearErrorAction) isAction() {}

// reduce applies a single transition and returns the next state. Request
// actions enter the busy overlay: IsLoading flips on while User and
// IsAuthenticated keep their pre-request values. Failure actions record the
// message and leave the current user untouched.
func reduce(state AuthState, a action) AuthState {
	switch act := a.(type) {
	case initRequest:
		state.IsLoading = true
		state.Error = ""
	case initSuccess:
		state.User = act.user
		state.IsLoading = false
		state.IsAuthenticated = act.user != nil
		state.Error = ""
	case initFailure:
		state.IsLoading = false
		state.Error = act.message
	case loginRequest:
		state.IsLoading = true
		state.Error = ""
	case signupRequest:
		state.IsLoading = true
		state.Error = ""
	case loginSuccess:
		state.User = act.user
		state.IsLoading = false
		state.IsAuthenticated = true
		state.Error = ""
	case signupSuccess:
		state.User = act.user
		state.IsLoading = false
		state.IsAuthenticated = true
		state.Error = ""
	case loginFailure:
		state.IsLoading = false
		state.Error = act.message
	case signupFailure:
		state.IsLoading = false
		state.Error = act.message
	case logoutAction:
		state.User = nil
		state.IsLoading = false
		state.IsAuthenticated = false
		state.Error = ""
	case clearErrorAction:
		state.Error = ""
	}
	return state
}
