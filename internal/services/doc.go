// Package services defines shared utilities consumed by the sequencing
// pipeline and its external tool integrations.
//
// Key responsibilities:
//   - Context helpers that stamp the run identifier and target directory for
//     logging.
//   - Structured error markers plus the Wrap helper so failures from external
//     tools, missing artifacts and timeouts can be told apart in log output.
//
// Subpackages wrap individual external tools (see alignstack).
package services
