package copper

import (
	"encoding/json"
	"errors"
	"fmt"
)

// PersonFromWire decodes and validates an API person payload.
func PersonFromWire(data []byte) (*Person, error) {
	var person Person

	err := json.Unmarshal(data, &person)
	if err != nil {
		return nil, wrapDecodeError("person", err)
	}

	err = person.Validate()
	if err != nil {
		return nil, err
	}

	return &person, nil
}

// CompanyFromWire decodes and validates an API company payload.
func CompanyFromWire(data []byte) (*Company, error) {
	var company Company

	err := json.Unmarshal(data, &company)
	if err != nil {
		return nil, wrapDecodeError("company", err)
	}

	err = company.Validate()
	if err != nil {
		return nil, err
	}

	return &company, nil
}

// OpportunityFromWire decodes and validates an API opportunity payload.
func OpportunityFromWire(data []byte) (*Opportunity, error) {
	var opportunity Opportunity

	err := json.Unmarshal(data, &opportunity)
	if err != nil {
		return nil, wrapDecodeError("opportunity", err)
	}

	err = opportunity.Validate()
	if err != nil {
		return nil, err
	}

	return &opportunity, nil
}

// TaskFromWire decodes and validates an API task payload.
func TaskFromWire(data []byte) (*Task, error) {
	var task Task

	err := json.Unmarshal(data, &task)
	if err != nil {
		return nil, wrapDecodeError("task", err)
	}

	err = task.Validate()
	if err != nil {
		return nil, err
	}

	return &task, nil
}

// ToWire validates the person and encodes it for the API. Absent optional
// fields are omitted from the payload.
func (p *Person) ToWire() ([]byte, error) {
	err := p.Validate()
	if err != nil {
		return nil, err
	}

	return json.Marshal(p)
}

// ToWire validates the company and encodes it for the API.
func (c *Company) ToWire() ([]byte, error) {
	err := c.Validate()
	if err != nil {
		return nil, err
	}

	return json.Marshal(c)
}

// ToWire validates the opportunity and encodes it for the API.
func (o *Opportunity) ToWire() ([]byte, error) {
	err := o.Validate()
	if err != nil {
		return nil, err
	}

	return json.Marshal(o)
}

// ToWire validates the task and encodes it for the API.
func (t *Task) ToWire() ([]byte, error) {
	err := t.Validate()
	if err != nil {
		return nil, err
	}

	return json.Marshal(t)
}

// FromWire decodes and validates a payload of the given entity type. The
// returned value is *Person, *Company, *Opportunity, or *Task.
func FromWire(entityType EntityType, data []byte) (interface{}, error) {
	codec, err := codecFor(entityType)
	if err != nil {
		return nil, err
	}

	return codec.decode(data)
}

// ToWire validates and encodes a record of the given entity type. The record
// must be the pointer type matching entityType.
func ToWire(entityType EntityType, record interface{}) ([]byte, error) {
	codec, err := codecFor(entityType)
	if err != nil {
		return nil, err
	}

	return codec.encode(record)
}

// ValidateRecord runs the schema checks for the given entity type without
// encoding the record.
func ValidateRecord(entityType EntityType, record interface{}) error {
	codec, err := codecFor(entityType)
	if err != nil {
		return err
	}

	return codec.validate(record)
}

// wrapDecodeError classifies a json.Unmarshal failure. Errors raised by the
// custom field types are already typed and pass through unchanged.
func wrapDecodeError(entity string, err error) error {
	var malformed *MalformedResponseError
	if errors.As(err, &malformed) {
		return malformed
	}

	var validation *ValidationError
	if errors.As(err, &validation) {
		return validation
	}

	return &MalformedResponseError{Entity: entity, Err: fmt.Errorf("decode payload: %w", err)}
}
