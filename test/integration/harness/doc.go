// Package harness provides utilities for integration testing the codetally CLI.
// It handles binary compilation, environment isolation, command execution
// and building throwaway git repositories with known history.
//
// Environment variables managed:
//   - CODETALLY_HOME: Isolated per test (temp directory)
//   - CODETALLY_DEBUG: Disabled to reduce noise
package harness
