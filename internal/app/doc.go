// Package app contains the core application logic: it loads the command
// manifest, parses the target argument vector against it, and either
// dispatches to a registered command handler or prints the parse outcome.
// It is decoupled from any specific entrypoint like the CLI binary.
package app
