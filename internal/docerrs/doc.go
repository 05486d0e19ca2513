// Package docerrs provides centralized error types for the asciidoc
// toolchain.
//
// All custom error types in this package:
//   - Use pointer receivers for the Error() method
//   - Include structured fields for contextual information
//   - Implement Unwrap() when wrapping underlying errors
//
// Error types are organized by domain:
//   - convert.go: backend conversion errors and fatal parse failures
//   - config.go: configuration loading errors
package docerrs
