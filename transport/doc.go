// Package transport provides HTTP/TLS transport for EMC API communication.
//
// The transport layer handles:
//   - HTTP/HTTPS connections
//   - TLS configuration
//   - JSON request encoding and response capture
//
// It deliberately does not interpret HTTP status codes: any response from
// the server, success or error, is returned as a *Response so the caller
// can apply its own error-normalization policy. A non-nil error is returned
// only for failures that produced no response at all (DNS, connection,
// TLS, context cancellation).
package transport
