package copper_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/fivetwenty-io/copper-client/pkg/copper"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPersonRoundTrip(t *testing.T) {
	t.Parallel()

	original := &copper.Person{
		ID:           copper.Int64(42),
		Name:         "Ada Lovelace",
		Emails:       copper.EmailList{"ada@example.com"},
		PhoneNumbers: copper.PhoneNumberList{"+1-555-0100", "+1-555-0101"},
		Status:       copper.String(copper.PersonStatusLead),
		Tags:         []string{"vip"},
		CustomFields: []copper.CustomField{
			{DefinitionID: 100, Value: "alpha"},
			{DefinitionID: 100, Value: "beta"},
		},
		CreatedAt: copper.NewTimestamp(time.Unix(1609459200, 0)),
	}

	wire, err := original.ToWire()
	require.NoError(t, err)

	decoded, err := copper.PersonFromWire(wire)
	require.NoError(t, err)

	assert.Equal(t, original.Name, decoded.Name)
	assert.Equal(t, original.Emails, decoded.Emails)
	assert.Equal(t, original.PhoneNumbers, decoded.PhoneNumbers)
	assert.Equal(t, original.Status, decoded.Status)
	// duplicate field_id entries survive in order
	assert.Equal(t, original.CustomFields, decoded.CustomFields)
	assert.True(t, original.CreatedAt.Equal(decoded.CreatedAt))
}

func TestPersonToWire_Shapes(t *testing.T) {
	t.Parallel()

	person := &copper.Person{
		Name:         "Ada",
		Emails:       copper.EmailList{"ada@example.com"},
		PhoneNumbers: copper.PhoneNumberList{"+1-555-0100"},
		CreatedAt:    copper.NewTimestamp(time.Unix(1609459200, 0)),
	}

	wire, err := person.ToWire()
	require.NoError(t, err)

	var raw map[string]json.RawMessage

	err = json.Unmarshal(wire, &raw)
	require.NoError(t, err)

	assert.JSONEq(t, `[{"email":"ada@example.com"}]`, string(raw["emails"]))
	assert.JSONEq(t, `[{"number":"+1-555-0100"}]`, string(raw["phone_numbers"]))
	// dates go out as epoch seconds under their wire aliases
	assert.Equal(t, "1609459200", string(raw["date_created"]))

	_, hasStatus := raw["status"]
	assert.False(t, hasStatus, "absent fields must be omitted")

	_, hasID := raw["id"]
	assert.False(t, hasID)
}

func TestPersonFromWire_DropsEntriesMissingKey(t *testing.T) {
	t.Parallel()

	wire := []byte(`{
		"name": "Ada",
		"phone_numbers": [{"number": "+1-555-0100"}, {"category": "work"}]
	}`)

	person, err := copper.PersonFromWire(wire)
	require.NoError(t, err)
	assert.Equal(t, copper.PhoneNumberList{"+1-555-0100"}, person.PhoneNumbers)
}

func TestPersonFromWire_NonObjectEntry(t *testing.T) {
	t.Parallel()

	wire := []byte(`{"name": "Ada", "emails": ["ada@example.com"]}`)

	_, err := copper.PersonFromWire(wire)
	require.Error(t, err)
	assert.True(t, copper.IsMalformedResponse(err))
}

func TestPersonFromWire_MissingName(t *testing.T) {
	t.Parallel()

	_, err := copper.PersonFromWire([]byte(`{"id": 1}`))
	require.Error(t, err)
	require.ErrorIs(t, err, copper.ErrNameRequired)
	assert.True(t, copper.IsValidation(err))
}

func TestPersonFromWire_BadTimestamp(t *testing.T) {
	t.Parallel()

	_, err := copper.PersonFromWire([]byte(`{"name": "Ada", "date_created": "2021-01-01"}`))
	require.Error(t, err)
	assert.True(t, copper.IsMalformedResponse(err))
}

func TestPersonValidate_BadEmail(t *testing.T) {
	t.Parallel()

	person := &copper.Person{Name: "Ada", Emails: copper.EmailList{"not-an-email"}}

	err := person.Validate()
	require.ErrorIs(t, err, copper.ErrInvalidEmail)
}

func TestPersonValidate_NegativeInteractionCount(t *testing.T) {
	t.Parallel()

	person := &copper.Person{Name: "Ada", InteractionCount: copper.Int64(-1)}

	err := person.Validate()
	require.ErrorIs(t, err, copper.ErrNegativeCount)
}

func TestCompanyValidate_Websites(t *testing.T) {
	t.Parallel()

	company := &copper.Company{Name: "Acme", Websites: copper.WebsiteList{"https://acme.test"}}
	require.NoError(t, company.Validate())

	company.Websites = copper.WebsiteList{"acme.test"}
	err := company.Validate()
	require.ErrorIs(t, err, copper.ErrInvalidURL)
}

func TestCompanyRoundTrip_Websites(t *testing.T) {
	t.Parallel()

	company := &copper.Company{
		Name:     "Acme",
		Websites: copper.WebsiteList{"https://acme.test"},
	}

	wire, err := company.ToWire()
	require.NoError(t, err)

	var raw map[string]json.RawMessage

	err = json.Unmarshal(wire, &raw)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"url":"https://acme.test"}]`, string(raw["websites"]))

	decoded, err := copper.CompanyFromWire(wire)
	require.NoError(t, err)
	assert.Equal(t, company.Websites, decoded.Websites)
}

func TestOpportunityValidate_Probability(t *testing.T) {
	t.Parallel()

	opportunity := &copper.Opportunity{Name: "Big deal", Probability: copper.Int64(75)}
	require.NoError(t, opportunity.Validate())

	opportunity.Probability = copper.Int64(150)
	err := opportunity.Validate()
	require.ErrorIs(t, err, copper.ErrProbabilityRange)

	opportunity.Probability = copper.Int64(-1)
	err = opportunity.Validate()
	require.ErrorIs(t, err, copper.ErrProbabilityRange)
}

func TestOpportunityValidate_MonetaryValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{name: "two decimal places", value: "1234.56", wantErr: false},
		{name: "whole number", value: "1000000", wantErr: false},
		{name: "fifteen digits", value: "1234567890123.45", wantErr: false},
		{name: "three decimal places", value: "10.123", wantErr: true},
		{name: "sixteen digits", value: "12345678901234.56", wantErr: true},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			value, err := decimal.NewFromString(testCase.value)
			require.NoError(t, err)

			opportunity := &copper.Opportunity{Name: "Deal", MonetaryValue: &value}

			err = opportunity.Validate()
			if testCase.wantErr {
				require.ErrorIs(t, err, copper.ErrDecimalPrecision)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestOpportunityRoundTrip_MonetaryValue(t *testing.T) {
	t.Parallel()

	value := decimal.RequireFromString("99999.99")
	opportunity := &copper.Opportunity{
		Name:          "Deal",
		MonetaryValue: &value,
		Status:        copper.String(copper.OpportunityStatusOpen),
	}

	wire, err := opportunity.ToWire()
	require.NoError(t, err)

	decoded, err := copper.OpportunityFromWire(wire)
	require.NoError(t, err)

	require.NotNil(t, decoded.MonetaryValue)
	assert.True(t, value.Equal(*decoded.MonetaryValue))
}

func TestOpportunityValidate_Status(t *testing.T) {
	t.Parallel()

	opportunity := &copper.Opportunity{Name: "Deal", Status: copper.String("Pending")}

	err := opportunity.Validate()
	require.ErrorIs(t, err, copper.ErrUnknownEnumValue)
}

func TestTaskValidate_Status(t *testing.T) {
	t.Parallel()

	task := &copper.Task{Name: "Call", Status: copper.String(copper.TaskStatusCompleted)}
	require.NoError(t, task.Validate())

	task.Status = copper.String("Bogus")
	err := task.Validate()
	require.ErrorIs(t, err, copper.ErrUnknownEnumValue)
}

func TestTaskValidate_Priority(t *testing.T) {
	t.Parallel()

	task := &copper.Task{Name: "Call", Priority: copper.String(copper.PriorityHigh)}
	require.NoError(t, task.Validate())

	task.Priority = copper.String("Urgent")
	err := task.Validate()
	require.ErrorIs(t, err, copper.ErrUnknownEnumValue)
}

func TestFromWire_Dispatch(t *testing.T) {
	t.Parallel()

	record, err := copper.FromWire(copper.EntityTasks, []byte(`{"name": "Call", "status": "Open"}`))
	require.NoError(t, err)

	task, ok := record.(*copper.Task)
	require.True(t, ok)
	assert.Equal(t, "Call", task.Name)
}

func TestFromWire_UnknownEntityType(t *testing.T) {
	t.Parallel()

	_, err := copper.FromWire(copper.EntityType("leads"), []byte(`{"name": "x"}`))
	require.ErrorIs(t, err, copper.ErrUnknownEntityType)
}

func TestToWire_TypeMismatch(t *testing.T) {
	t.Parallel()

	_, err := copper.ToWire(copper.EntityPeople, &copper.Task{Name: "Call"})
	require.ErrorIs(t, err, copper.ErrInvalidRecordType)
}
