package copper

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// Timestamp is a calendar time that serializes as Unix epoch seconds, the
// representation the Copper API uses for every date field.
type Timestamp struct {
	time.Time
}

// NewTimestamp wraps a time.Time, truncating to second precision.
func NewTimestamp(t time.Time) *Timestamp {
	return &Timestamp{Time: t.Truncate(time.Second)}
}

// MarshalJSON encodes the timestamp as an integer epoch-seconds value.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatInt(t.Unix(), 10)), nil
}

// UnmarshalJSON decodes an integer epoch-seconds value.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	seconds, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return &MalformedResponseError{Err: fmt.Errorf("timestamp is not epoch seconds: %w", err)}
	}

	t.Time = time.Unix(seconds, 0).UTC()

	return nil
}

// Equal compares two timestamps at second precision.
func (t *Timestamp) Equal(other *Timestamp) bool {
	if t == nil || other == nil {
		return t == other
	}

	return t.Unix() == other.Unix()
}

// Address is a postal address attached to a person or company. All fields
// are optional; the wire shape is a flat object with no wrapping.
type Address struct {
	Street     *string `json:"street,omitempty"`
	City       *string `json:"city,omitempty"`
	State      *string `json:"state,omitempty"`
	PostalCode *string `json:"postal_code,omitempty"`
	Country    *string `json:"country,omitempty"`
}

// CustomField is one (definition id, value) pair from an entity's custom
// field bag. Duplicate definition ids are permitted and insertion order is
// preserved, so the bag is a slice rather than a map.
type CustomField struct {
	DefinitionID int64       `json:"field_id"`
	Value        interface{} `json:"value"`
}

// PhoneNumberList holds phone numbers as plain strings in memory while
// marshaling to the API's [{"number": "..."}] shape. Wire entries without a
// "number" key are dropped silently; entries that are not objects fail with
// MalformedResponseError.
type PhoneNumberList []string

// MarshalJSON wraps each number into a {"number": ...} object.
func (l PhoneNumberList) MarshalJSON() ([]byte, error) {
	return marshalKeyedList("number", l)
}

// UnmarshalJSON unwraps [{"number": ...}] into plain strings.
func (l *PhoneNumberList) UnmarshalJSON(data []byte) error {
	values, err := unmarshalKeyedList("number", data)
	if err != nil {
		return err
	}

	*l = values

	return nil
}

// EmailList holds email addresses as plain strings in memory while marshaling
// to the API's [{"email": "..."}] shape. Syntactic validation happens in the
// entity schema, not here.
type EmailList []string

// MarshalJSON wraps each address into an {"email": ...} object.
func (l EmailList) MarshalJSON() ([]byte, error) {
	return marshalKeyedList("email", l)
}

// UnmarshalJSON unwraps [{"email": ...}] into plain strings.
func (l *EmailList) UnmarshalJSON(data []byte) error {
	values, err := unmarshalKeyedList("email", data)
	if err != nil {
		return err
	}

	*l = values

	return nil
}

// WebsiteList holds website URLs as plain strings in memory while marshaling
// to the API's [{"url": "..."}] shape.
type WebsiteList []string

// MarshalJSON wraps each URL into a {"url": ...} object.
func (l WebsiteList) MarshalJSON() ([]byte, error) {
	return marshalKeyedList("url", l)
}

// UnmarshalJSON unwraps [{"url": ...}] into plain strings.
func (l *WebsiteList) UnmarshalJSON(data []byte) error {
	values, err := unmarshalKeyedList("url", data)
	if err != nil {
		return err
	}

	*l = values

	return nil
}

func marshalKeyedList(key string, values []string) ([]byte, error) {
	wrapped := make([]map[string]string, 0, len(values))
	for _, v := range values {
		wrapped = append(wrapped, map[string]string{key: v})
	}

	return json.Marshal(wrapped)
}

func unmarshalKeyedList(key string, data []byte) ([]string, error) {
	if string(data) == "null" {
		return nil, nil
	}

	var entries []map[string]json.RawMessage

	err := json.Unmarshal(data, &entries)
	if err != nil {
		return nil, &MalformedResponseError{Err: fmt.Errorf("%s list entry is not an object: %w", key, err)}
	}

	var values []string

	for _, entry := range entries {
		raw, ok := entry[key]
		if !ok {
			// Entries missing the expected key are dropped, not rejected.
			continue
		}

		var value string

		err := json.Unmarshal(raw, &value)
		if err != nil {
			return nil, &MalformedResponseError{Err: fmt.Errorf("%s value is not a string: %w", key, err)}
		}

		values = append(values, value)
	}

	return values, nil
}

// ListOptions control pagination and sorting for entity list calls.
type ListOptions struct {
	PageSize      int
	PageNumber    int
	SortBy        string
	SortDirection string
}

// PageOptions control pagination for related-record calls.
type PageOptions struct {
	PageSize   int
	PageNumber int
}

// SearchQuery describes a search request. Fields holds field-specific
// criteria merged verbatim into the search body alongside the free-text
// query.
type SearchQuery struct {
	Query      string
	Fields     map[string]interface{}
	PageSize   int
	PageNumber int
}

// RelatedList is the result of a related-records fetch. For every related
// type except "activities" the marshaled entities are returned under Data.
// When the related type is "activities" the raw records are returned under
// Activities instead, a quirk of the upstream API surface preserved for
// wire compatibility.
type RelatedList struct {
	Data       []interface{}     `json:"data,omitempty"`
	Activities []json.RawMessage `json:"activities,omitempty"`
	Metadata   json.RawMessage   `json:"metadata,omitempty"`
}

// ActivityList is the result of an activity-history fetch. Activity records
// are opaque: they bypass entity marshaling entirely.
type ActivityList struct {
	Activities []json.RawMessage `json:"activities"`
	Metadata   json.RawMessage   `json:"metadata,omitempty"`
}

// ActivityFilter narrows an activity-history fetch. Zero values are omitted
// from the request.
type ActivityFilter struct {
	Types      []string
	DateFrom   string
	DateTo     string
	PageSize   int
	PageNumber int
}

// RateLimits reports the API's current rate limit state.
type RateLimits struct {
	RequestsPerSecond   int64 `json:"per_second"`
	RequestsPerHour     int64 `json:"per_hour"`
	RemainingThisSecond int64 `json:"remaining_this_second"`
	RemainingThisHour   int64 `json:"remaining_this_hour"`
	ResetAt             int64 `json:"reset_at"`
}
