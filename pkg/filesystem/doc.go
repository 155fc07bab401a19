// Package filesystem provides the filesystem abstraction assetlint scans through.
//
// Every implementation is backed by afero: NewOS for real trees and NewMemory for
// fast, isolated tests. The scanner only needs read access (Walk, Lstat); the
// write operations exist for configuration generation and test fixtures.
package filesystem
