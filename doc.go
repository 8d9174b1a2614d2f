// Package marina provides the types and functions to manage the boat registry
// of a marina. It is local-first: the whole registry lives in a single flat
// CSV file that is loaded at startup and written back on exit.
//
// The core functionalities include:
//   - Record Codec: decoding a comma-separated record into a Boat and
//     encoding it back to the exact same text.
//   - Registry: an in-memory collection of boats, always sorted by name
//     (case-insensitive), with add, remove, find and list operations.
//   - Billing: the monthly per-foot charge and the payments that settle a
//     boat's balance.
//   - Persistence: reading and writing the registry file.
//
// This package serves as the foundational logic for the `marina` command-line
// tool; the interactive menu and the one-shot subcommands only call into it.
package marina
