// Package cli provides the interactive authkeep command-line client.
//
// It wires configuration, local storage, the session manager and the form
// controllers into a small REPL. Typical flow: restore any persisted
// session on start, then accept signup/login/logout commands until the
// user exits. The prompt reflects the current authentication state, which
// is the command-line stand-in for the original application's navigation
// branching.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
