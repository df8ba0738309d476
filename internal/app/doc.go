// Package app wires application dependencies for the CLI.
//
// It builds the HTTP transport, the file stores and the LNURL services
// from Config, exposing them via the Wire struct for commands to use.
package app
