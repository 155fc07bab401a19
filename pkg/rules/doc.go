// Package rules provides the naming-convention rule model for assetlint.
//
// A rule pairs an extension pattern with a name pattern. A file whose extension
// matches a rule's extension pattern must have a base name (the file name
// without its extension) that matches the rule's name pattern; otherwise it is
// a mismatch.
//
// # Matching
//
// Rules are evaluated in declaration order and the first rule whose extension
// pattern matches but whose name pattern does not decides the verdict. Order
// does not express priority: a file that satisfies one applicable rule can
// still be flagged by another.
//
// Files with the ".meta" extension are sidecar metadata and are never checked.
//
// # Dialects
//
//   - re2: Go regexp syntax (default)
//   - dotnet: .NET compatible syntax via regexp2, for rule sets carried over from
//     tooling that used System.Text.RegularExpressions
//
// # Case Policy
//
// Extension matching is case-sensitive unless IgnoreExtensionCase is set, in
// which case extension patterns are compiled case-insensitively. Name patterns
// are always case-sensitive.
//
// # Configuration
//
//	[[rules]]
//	category = "Script"
//	name = '^[A-Z]+[A-Za-z]+$'
//	extension = '\.cs$|\.js$'
//
// All patterns are compiled when the RuleSet is built; a malformed pattern is a
// configuration error, never a scan-time one.
package rules
