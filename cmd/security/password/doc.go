// Package password provides password policy validation and bcrypt
// hashing/verification for Spirits Forest accounts.
//
// It includes:
//   - A fixed acceptance policy (length, whitespace, complexity) whose
//     violation messages are part of the public API contract and are
//     returned to clients verbatim.
//   - bcrypt hashing with configurable cost (via environment variables).
//   - A concurrency limiter so bursts of CPU-bound hashing cannot starve
//     request handling.
//
// Security notes:
// - Hash strings are treated as untrusted input during Verify; malformed
//   hashes verify false rather than erroring.
// - Plaintext passwords are never logged or persisted by this package.
package password
