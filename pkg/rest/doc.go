// Package rest is the HTTP transport used by the request builders.
//
// # Overview
//
// The builders in pkg/builder never talk to the network themselves. They hand
// a fully formed Request to a Submitter, which owns everything below the
// payload: JSON encoding, authentication, headers, retries and response
// decoding. Client is the production Submitter; tests substitute their own.
//
//	client, err := rest.NewClient(&rest.Config{
//		BaseURL: "https://discord.com/api/v10",
//		Token:   os.Getenv("DISCORD_TOKEN"),
//	})
//
// # Audit log reason
//
// Mutating requests may carry a reason for the guild audit log. It is sent
// as the URL-encoded X-Audit-Log-Reason header and never as part of the JSON
// body.
//
// # Error Handling
//
// Non-2xx responses are returned as *APIError, carrying the HTTP status, the
// service's numeric error code and message, and the nested per-field errors.
// Network failures and 5xx responses are retried with exponential backoff up
// to Config.MaxRetries times; 4xx responses are returned immediately.
//
// Rate limit scheduling is not implemented. A 429 response is returned to the
// caller as an *APIError.
//
// # Security
//
//   - Bot token authentication via the Authorization header
//   - Token not logged or serialized to JSON
//   - Audit reasons are logged only as a presence flag
package rest
