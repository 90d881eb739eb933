// Package internalcheck provides internal validation and testing utilities.
//
// This package contains static policy checks run as tests over the library
// packages: secret byte slices must never be compared with == (use
// crypto/subtle or crypto/hmac), and key material must never be hex-formatted
// into errors or logs. It is not intended for external use and the API may
// change without notice.
package internalcheck
