// Package rest implements the authenticated request executor for the EMC API.
//
// The executor owns the call policy around a single logical request:
//   - attach the session's bearer token and a correlation ID,
//   - map transport-level failures to a structured APIError (code 500),
//   - on 401, ask the session to re-authenticate and replay the request
//     exactly once; a second 401 is surfaced as an ordinary API error, so
//     retries are bounded by construction,
//   - normalize server error bodies into APIError using a fixed field
//     precedence (ExtendedCode over Code over HTTP status; ExtendedMessage
//     over Message over status text),
//   - reject soft errors: a success status whose body still carries an
//     error message is a failure, not a payload.
//
// All expected failure modes are returned as *APIError values; the executor
// never panics past its boundary for runtime conditions.
package rest
