package copper

import (
	"github.com/shopspring/decimal"
)

// Contact status values for Person.Status.
const (
	PersonStatusActive   = "Active"
	PersonStatusInactive = "Inactive"
	PersonStatusLead     = "Lead"
	PersonStatusCustomer = "Customer"
)

// Priority values for Opportunity.Priority and Task.Priority.
const (
	PriorityNone   = "None"
	PriorityLow    = "Low"
	PriorityMedium = "Medium"
	PriorityHigh   = "High"
)

// Status values for Opportunity.Status.
const (
	OpportunityStatusOpen      = "Open"
	OpportunityStatusWon       = "Won"
	OpportunityStatusLost      = "Lost"
	OpportunityStatusAbandoned = "Abandoned"
)

// Status values for Task.Status.
const (
	TaskStatusOpen      = "Open"
	TaskStatusCompleted = "Completed"
)

// Person represents a person record. JSON tags are the wire-side names:
// CreatedAt and UpdatedAt map to the API's date_created and date_modified
// aliases, so the single tag table defines the remapping for both directions.
type Person struct {
	ID               *int64            `json:"id,omitempty"`
	Name             string            `json:"name"`
	Prefix           *string           `json:"prefix,omitempty"`
	FirstName        *string           `json:"first_name,omitempty"`
	LastName         *string           `json:"last_name,omitempty"`
	Suffix           *string           `json:"suffix,omitempty"`
	Emails           EmailList         `json:"emails,omitempty"`
	PhoneNumbers     PhoneNumberList   `json:"phone_numbers,omitempty"`
	Addresses        []Address         `json:"addresses,omitempty"`
	Title            *string           `json:"title,omitempty"`
	CompanyID        *int64            `json:"company_id,omitempty"`
	CompanyName      *string           `json:"company_name,omitempty"`
	Tags             []string          `json:"tags,omitempty"`
	SocialLinks      map[string]string `json:"social_links,omitempty"`
	Details          *string           `json:"details,omitempty"`
	AssigneeID       *int64            `json:"assignee_id,omitempty"`
	Status           *string           `json:"status,omitempty"`
	ContactTypeID    *int64            `json:"contact_type_id,omitempty"`
	InteractionCount *int64            `json:"interaction_count,omitempty"`
	LastInteraction  *Timestamp        `json:"last_interaction,omitempty"`
	CustomFields     []CustomField     `json:"custom_fields,omitempty"`
	CreatedAt        *Timestamp        `json:"date_created,omitempty"`
	UpdatedAt        *Timestamp        `json:"date_modified,omitempty"`
}

// Company represents a company record.
type Company struct {
	ID               *int64            `json:"id,omitempty"`
	Name             string            `json:"name"`
	AssigneeID       *int64            `json:"assignee_id,omitempty"`
	ContactTypeID    *int64            `json:"contact_type_id,omitempty"`
	Details          *string           `json:"details,omitempty"`
	EmailDomain      *string           `json:"email_domain,omitempty"`
	PhoneNumbers     PhoneNumberList   `json:"phone_numbers,omitempty"`
	Socials          map[string]string `json:"socials,omitempty"`
	Tags             []string          `json:"tags,omitempty"`
	Websites         WebsiteList       `json:"websites,omitempty"`
	Addresses        []Address         `json:"addresses,omitempty"`
	ParentCompanyID  *int64            `json:"parent_company_id,omitempty"`
	InteractionCount *int64            `json:"interaction_count,omitempty"`
	LastInteraction  *Timestamp        `json:"last_interaction,omitempty"`
	CustomFields     []CustomField     `json:"custom_fields,omitempty"`
	CreatedAt        *Timestamp        `json:"date_created,omitempty"`
	UpdatedAt        *Timestamp        `json:"date_modified,omitempty"`
}

// Opportunity represents an opportunity record. MonetaryValue is a
// fixed-point decimal limited to 15 total digits with 2 fractional digits;
// it serializes as a quoted decimal string, which the API accepts.
type Opportunity struct {
	ID               *int64           `json:"id,omitempty"`
	Name             string           `json:"name"`
	AssigneeID       *int64           `json:"assignee_id,omitempty"`
	CloseDate        *Timestamp       `json:"close_date,omitempty"`
	CompanyID        *int64           `json:"company_id,omitempty"`
	CompanyName      *string          `json:"company_name,omitempty"`
	CustomerSourceID *int64           `json:"customer_source_id,omitempty"`
	Details          *string          `json:"details,omitempty"`
	LossReasonID     *int64           `json:"loss_reason_id,omitempty"`
	MonetaryValue    *decimal.Decimal `json:"monetary_value,omitempty"`
	PipelineID       *int64           `json:"pipeline_id,omitempty"`
	PipelineStageID  *int64           `json:"pipeline_stage_id,omitempty"`
	Priority         *string          `json:"priority,omitempty"`
	Probability      *int64           `json:"probability,omitempty"`
	Status           *string          `json:"status,omitempty"`
	Tags             []string         `json:"tags,omitempty"`
	WinProbability   *int64           `json:"win_probability,omitempty"`
	CustomFields     []CustomField    `json:"custom_fields,omitempty"`
	CreatedAt        *Timestamp       `json:"date_created,omitempty"`
	UpdatedAt        *Timestamp       `json:"date_modified,omitempty"`
}

// Task represents a task record.
type Task struct {
	ID                  *int64        `json:"id,omitempty"`
	Name                string        `json:"name"`
	AssigneeID          *int64        `json:"assignee_id,omitempty"`
	DueDate             *Timestamp    `json:"due_date,omitempty"`
	ReminderDate        *Timestamp    `json:"reminder_date,omitempty"`
	Priority            *string       `json:"priority,omitempty"`
	Status              *string       `json:"status,omitempty"`
	Details             *string       `json:"details,omitempty"`
	RelatedResource     *string       `json:"related_resource,omitempty"`
	RelatedResourceID   *int64        `json:"related_resource_id,omitempty"`
	RelatedResourceType *string       `json:"related_resource_type,omitempty"`
	CompletedDate       *Timestamp    `json:"completed_date,omitempty"`
	CustomFields        []CustomField `json:"custom_fields,omitempty"`
	Tags                []string      `json:"tags,omitempty"`
	CreatedAt           *Timestamp    `json:"date_created,omitempty"`
	UpdatedAt           *Timestamp    `json:"date_modified,omitempty"`
}

// String returns a pointer to s, for populating optional fields.
func String(s string) *string {
	return &s
}

// Int64 returns a pointer to n, for populating optional fields.
func Int64(n int64) *int64 {
	return &n
}
