// Package app wires configuration, logging, transport and the grabber into a
// runnable application and renders results for the terminal. It is decoupled
// from any specific entrypoint like a CLI.
package app
