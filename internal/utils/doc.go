// Package utils provides shared utility functions.
//
// These utilities are used across multiple packages and include:
//   - Locating the directory of the running binary
//   - Resolving the directory git commands run in
package utils
