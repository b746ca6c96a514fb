// Package copper defines the public types for the Copper CRM API client:
// entity models (Person, Company, Opportunity, Task), the wire marshaling
// layer that converts them to and from the API's JSON format, batch outcome
// types, the error taxonomy, and the Client interface.
//
// To create a working client, use
// github.com/fivetwenty-io/copper-client/pkg/copperclient.
//
// # Wire format
//
// The Copper API represents timestamps as Unix epoch seconds, phone numbers
// as [{"number": "..."}] objects, emails as [{"email": "..."}] objects, and
// websites as [{"url": "..."}] objects. The types in this package perform
// those conversions during JSON marshaling, so entity structs hold plain Go
// values (time.Time, []string) while the encoded form matches the API
// exactly. Optional fields that are unset are omitted from request payloads,
// never serialized as null.
package copper
