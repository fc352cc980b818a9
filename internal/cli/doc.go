// Package cli implements the epochs command tree.
//
// Commands are thin: they parse input, route through the catalog, and hand
// results to the OutputFormatter, which renders text, json, or yaml. All
// conversion logic lives in the epoch and catalog packages.
//
// Exit codes: 0 success, 1 conversion failure, 2 command error (bad flags,
// unknown format, missing files). Structured output always goes to stdout;
// --verbose diagnostics go to stderr so they never corrupt json output.
package cli
