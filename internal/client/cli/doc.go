// Package cli provides the interactive DeadSwitch command-line client.
//
// NewApp wires configuration, the local session store, the gRPC client and
// the application services. App.Run resumes a saved session, starts a
// background connectivity watcher and runs the REPL until the user exits.
//
// Commands take their arguments inline ("deposit 100", "extend alice").
// Reads that take an optional owner default to the logged-in user. Only
// passwords, passphrases and message bodies are prompted for.
package cli
