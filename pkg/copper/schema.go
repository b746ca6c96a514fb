package copper

import (
	"fmt"
	"net/mail"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"
)

// EntityType identifies one of the four record types the API exposes. The
// set is closed; every value maps to exactly one codec in the table below.
type EntityType string

// The supported entity types, named by their API path segments.
const (
	EntityPeople        EntityType = "people"
	EntityCompanies     EntityType = "companies"
	EntityOpportunities EntityType = "opportunities"
	EntityTasks         EntityType = "tasks"
)

// Valid reports whether t is one of the supported entity types.
func (t EntityType) Valid() bool {
	_, ok := entityCodecs[t]

	return ok
}

// Path returns the API path for the entity collection, e.g. "/people".
func (t EntityType) Path() string {
	return "/" + string(t)
}

// RelatedType identifies what kind of related records to fetch. It is the
// entity type set plus "activities".
type RelatedType string

// Related record types.
const (
	RelatedPeople        RelatedType = "people"
	RelatedCompanies     RelatedType = "companies"
	RelatedOpportunities RelatedType = "opportunities"
	RelatedTasks         RelatedType = "tasks"
	RelatedActivities    RelatedType = "activities"
)

// Closed enum sets. Validation rejects any value outside these.
var (
	personStatuses      = enumSet(PersonStatusActive, PersonStatusInactive, PersonStatusLead, PersonStatusCustomer)
	priorities          = enumSet(PriorityNone, PriorityLow, PriorityMedium, PriorityHigh)
	opportunityStatuses = enumSet(OpportunityStatusOpen, OpportunityStatusWon, OpportunityStatusLost, OpportunityStatusAbandoned)
	taskStatuses        = enumSet(TaskStatusOpen, TaskStatusCompleted)
)

func enumSet(values ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}

	return set
}

const (
	monetaryMaxDigits        = 15
	monetaryMaxDecimalPlaces = 2
	probabilityMax           = 100
)

// Validate checks the person against the entity schema.
func (p *Person) Validate() error {
	err := validateName(p.Name)
	if err != nil {
		return err
	}

	err = validateEnum("status", p.Status, personStatuses)
	if err != nil {
		return err
	}

	err = validateCount("interaction_count", p.InteractionCount)
	if err != nil {
		return err
	}

	for _, email := range p.Emails {
		_, parseErr := mail.ParseAddress(email)
		if parseErr != nil {
			return &ValidationError{Field: "emails", Err: fmt.Errorf("%w: %q", ErrInvalidEmail, email)}
		}
	}

	return nil
}

// Validate checks the company against the entity schema.
func (c *Company) Validate() error {
	err := validateName(c.Name)
	if err != nil {
		return err
	}

	err = validateCount("interaction_count", c.InteractionCount)
	if err != nil {
		return err
	}

	for _, website := range c.Websites {
		parsed, parseErr := url.Parse(website)
		if parseErr != nil || parsed.Scheme == "" || parsed.Host == "" {
			return &ValidationError{Field: "websites", Err: fmt.Errorf("%w: %q", ErrInvalidURL, website)}
		}
	}

	return nil
}

// Validate checks the opportunity against the entity schema.
func (o *Opportunity) Validate() error {
	err := validateName(o.Name)
	if err != nil {
		return err
	}

	err = validateEnum("priority", o.Priority, priorities)
	if err != nil {
		return err
	}

	err = validateEnum("status", o.Status, opportunityStatuses)
	if err != nil {
		return err
	}

	err = validateProbability("probability", o.Probability)
	if err != nil {
		return err
	}

	err = validateProbability("win_probability", o.WinProbability)
	if err != nil {
		return err
	}

	return validateMonetaryValue(o.MonetaryValue)
}

// Validate checks the task against the entity schema.
func (t *Task) Validate() error {
	err := validateName(t.Name)
	if err != nil {
		return err
	}

	err = validateEnum("priority", t.Priority, priorities)
	if err != nil {
		return err
	}

	return validateEnum("status", t.Status, taskStatuses)
}

func validateName(name string) error {
	if name == "" {
		return &ValidationError{Field: "name", Err: ErrNameRequired}
	}

	return nil
}

func validateEnum(field string, value *string, allowed map[string]struct{}) error {
	if value == nil {
		return nil
	}

	_, ok := allowed[*value]
	if !ok {
		return &ValidationError{Field: field, Err: fmt.Errorf("%w: %q", ErrUnknownEnumValue, *value)}
	}

	return nil
}

func validateCount(field string, value *int64) error {
	if value != nil && *value < 0 {
		return &ValidationError{Field: field, Err: ErrNegativeCount}
	}

	return nil
}

func validateProbability(field string, value *int64) error {
	if value != nil && (*value < 0 || *value > probabilityMax) {
		return &ValidationError{Field: field, Err: ErrProbabilityRange}
	}

	return nil
}

func validateMonetaryValue(value *decimal.Decimal) error {
	if value == nil {
		return nil
	}

	if value.Exponent() < -monetaryMaxDecimalPlaces {
		return &ValidationError{Field: "monetary_value", Err: ErrDecimalPrecision}
	}

	digits := strings.NewReplacer("-", "", ".", "").Replace(value.String())

	digits = strings.TrimLeft(digits, "0")
	if len(digits) > monetaryMaxDigits {
		return &ValidationError{Field: "monetary_value", Err: ErrDecimalPrecision}
	}

	return nil
}

// entityCodec bundles the marshal, unmarshal, and validate functions for one
// entity type. The table is built once; callers dispatch through FromWire and
// ToWire rather than switching on the type tag themselves.
type entityCodec struct {
	name     string
	decode   func(data []byte) (interface{}, error)
	encode   func(record interface{}) ([]byte, error)
	validate func(record interface{}) error
}

var entityCodecs = map[EntityType]entityCodec{
	EntityPeople: {
		name: "person",
		decode: func(data []byte) (interface{}, error) {
			return PersonFromWire(data)
		},
		encode: func(record interface{}) ([]byte, error) {
			person, ok := record.(*Person)
			if !ok {
				return nil, fmt.Errorf("%w: want *copper.Person, got %T", ErrInvalidRecordType, record)
			}

			return person.ToWire()
		},
		validate: func(record interface{}) error {
			person, ok := record.(*Person)
			if !ok {
				return fmt.Errorf("%w: want *copper.Person, got %T", ErrInvalidRecordType, record)
			}

			return person.Validate()
		},
	},
	EntityCompanies: {
		name: "company",
		decode: func(data []byte) (interface{}, error) {
			return CompanyFromWire(data)
		},
		encode: func(record interface{}) ([]byte, error) {
			company, ok := record.(*Company)
			if !ok {
				return nil, fmt.Errorf("%w: want *copper.Company, got %T", ErrInvalidRecordType, record)
			}

			return company.ToWire()
		},
		validate: func(record interface{}) error {
			company, ok := record.(*Company)
			if !ok {
				return fmt.Errorf("%w: want *copper.Company, got %T", ErrInvalidRecordType, record)
			}

			return company.Validate()
		},
	},
	EntityOpportunities: {
		name: "opportunity",
		decode: func(data []byte) (interface{}, error) {
			return OpportunityFromWire(data)
		},
		encode: func(record interface{}) ([]byte, error) {
			opportunity, ok := record.(*Opportunity)
			if !ok {
				return nil, fmt.Errorf("%w: want *copper.Opportunity, got %T", ErrInvalidRecordType, record)
			}

			return opportunity.ToWire()
		},
		validate: func(record interface{}) error {
			opportunity, ok := record.(*Opportunity)
			if !ok {
				return fmt.Errorf("%w: want *copper.Opportunity, got %T", ErrInvalidRecordType, record)
			}

			return opportunity.Validate()
		},
	},
	EntityTasks: {
		name: "task",
		decode: func(data []byte) (interface{}, error) {
			return TaskFromWire(data)
		},
		encode: func(record interface{}) ([]byte, error) {
			task, ok := record.(*Task)
			if !ok {
				return nil, fmt.Errorf("%w: want *copper.Task, got %T", ErrInvalidRecordType, record)
			}

			return task.ToWire()
		},
		validate: func(record interface{}) error {
			task, ok := record.(*Task)
			if !ok {
				return fmt.Errorf("%w: want *copper.Task, got %T", ErrInvalidRecordType, record)
			}

			return task.Validate()
		},
	},
}

func codecFor(entityType EntityType) (entityCodec, error) {
	codec, ok := entityCodecs[entityType]
	if !ok {
		return entityCodec{}, fmt.Errorf("%w: %q", ErrUnknownEntityType, entityType)
	}

	return codec, nil
}
