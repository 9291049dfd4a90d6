// Package zipdemographics is a client for the APIVerve ZIP Demographics API.
//
// The API returns US Census American Community Survey data (population,
// income, education, housing, employment, racial composition) for a 5-digit
// US ZIP code. This package wraps the single hosted endpoint:
//
//	GET https://api.apiverve.com/v1/zipdemographics?zip=90210
//
// authenticated with an x-api-key header.
//
// # Usage
//
//	client, err := zipdemographics.New(apiKey)
//	if err != nil {
//	    return err
//	}
//	resp, err := client.Lookup(ctx, "90210")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(string(resp.Payload()))
//
// The demographic payload is returned verbatim as JSON; the client does not
// interpret individual fields, so upstream additions to the ACS dataset need
// no client release. Use [Client.LookupInto] to decode the payload into your
// own struct.
//
// # Errors
//
// Failures are classified into three kinds:
//
//   - [RequestError]: the server rejected the request (non-2xx status, or a
//     2xx envelope reporting an error such as an exhausted quota)
//   - [TransportError]: the request never completed (DNS, dial, timeout,
//     cancellation)
//   - [DecodeError]: a success response carried an unparsable body
//
// Construction fails with [ErrMissingAPIKey] or [ErrInvalidAPIKey] before any
// network traffic happens.
//
// # Concurrency
//
// A Client holds no mutable state and is safe for concurrent use. Each Lookup
// issues exactly one outbound request; there is no caching and no automatic
// retry. Cancellation and timeouts are controlled by the caller's context and
// the underlying http.Client.
package zipdemographics
