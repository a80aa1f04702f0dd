// Package commands defines the patterns CLI and wires the demo catalog.
//
// Commands
//
//   - list         Print the demo names and one-line descriptions
//   - run <name>   Run one demo (or every demo with --all)
//
// # Implementation
//
// The root command builds the catalog registry once, so subcommands resolve
// demos against the same wiring. Demo output goes through the command's
// configured output stream, which keeps the CLI testable with a buffer.
package commands
