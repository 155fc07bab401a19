// Package testutil provides utilities for testing assetlint components.
//
// Key components:
//   - Isolate: points user-level config, state and environment at temp dirs
//   - Tree / CreateFile: build project trees on the real filesystem
//   - MemoryTree: the same trees on an in-memory filesystem
//
// Usage guidelines:
//   - Call Isolate in every test that loads configuration or runs the CLI
//   - Prefer MemoryTree for scanner-level tests; use Tree when a component
//     only accepts OS paths
package testutil
