// Package answerhub is a typed client for the AnswerHub REST API (services/v2).
//
// The client retrieves paginated collections and individual items (questions,
// answers, comments, articles) as read-only snapshots. It holds no cache and
// no mutable state after construction, so a single Client is safe for
// concurrent use.
//
// Wire quirk: the platform expects POST for every operation, including reads.
// This is the actual API contract, not a bug in this package: do not change
// the verb to GET when porting call sites to another HTTP abstraction.
//
// Failures are classified into three error types:
//   - [TransportError]: the request never produced an HTTP response
//     (connection refused, DNS failure, timeout, TLS error)
//   - [UnexpectedStatusError]: any HTTP status other than 200
//   - [MalformedResponseError]: a 200 response whose body is not valid JSON
//
// The client performs no retries and no logging; every failure propagates
// directly to the caller. Payloads that parse as JSON but lack expected
// fields are passed through as-is; there is no schema validation beyond
// JSON well-formedness.
package answerhub
