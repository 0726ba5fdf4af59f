package audit

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/bcce/onboard/internal/platform/aws"
	"github.com/bcce/onboard/internal/provisioning"
	"github.com/bcce/onboard/internal/util/naming"
)

// EventTypeOnboarded is the audit event type for a completed onboarding.
const EventTypeOnboarded = "developer_onboarded"

// Event is the audit record written for every completed onboarding run.
type Event struct {
	ID          string    `json:"id"`
	Type        string    `json:"event_type"`
	Timestamp   time.Time `json:"timestamp"`
	OnboardedBy string    `json:"onboarded_by"`

	Email       string `json:"developer_email"`
	Department  string `json:"department"`
	AccessTier  string `json:"access_tier"`
	UseCase     string `json:"use_case"`
	IDPProvider string `json:"idp_provider"`

	Organization string `json:"organization"`
	UserPoolID   string `json:"user_pool_id"`
	Username     string `json:"username"`

	// Provisioned resources. Absent fields mean the resource degraded.
	Bucket     string  `json:"bucket,omitempty"`
	KMSKeyID   string  `json:"kms_key_id,omitempty"`
	LogGroup   string  `json:"log_group,omitempty"`
	BudgetName string  `json:"budget_name,omitempty"`
	BudgetUSD  float64 `json:"budget_limit_usd,omitempty"`

	Warnings []string `json:"warnings,omitempty"`
}

// Key returns the S3 object key for the event, partitioned by date.
func (e Event) Key() string {
	return fmt.Sprintf("events/onboarding/%s/%s.json",
		e.Timestamp.UTC().Format("2006/01/02"), naming.Username(e.Email))
}

// Phase records the onboarding event as the final pipeline step.
type Phase struct{}

// NewPhase creates the audit phase.
func NewPhase() *Phase {
	return &Phase{}
}

// Name implements the provisioning.Phase interface.
func (p *Phase) Name() string {
	return "audit"
}

// Provision implements the provisioning.Phase interface.
// The event is always logged locally; the analytics-bucket write is soft.
func (p *Phase) Provision(ctx *provisioning.Context) error {
	event := BuildEvent(ctx)

	data, err := json.MarshalIndent(event, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal audit event: %w", err)
	}

	ctx.Observer.Printf("[audit] onboarding event %s: %s", event.ID, string(data))

	bucket := ctx.Config.Governance.AnalyticsBucket
	if bucket == "" {
		return nil
	}

	opts := aws.PutObjectOptions{
		SSEKMSKeyID: ctx.Config.Governance.KMSKeyID,
		ContentType: "application/json",
	}
	if err := ctx.Clients.Objects.PutObject(ctx, bucket, event.Key(), data, opts); err != nil {
		ctx.State.Warnf(ctx.Observer, p.Name(), "could not store onboarding event: %v", err)
		return nil
	}

	ctx.Observer.Printf("[audit] onboarding event stored at s3://%s/%s", bucket, event.Key())
	return nil
}

// BuildEvent assembles the audit record from the run's state.
func BuildEvent(ctx *provisioning.Context) Event {
	req := ctx.Request
	state := ctx.State

	operator := os.Getenv("USER")
	if operator == "" {
		operator = "system"
	}

	event := Event{
		ID:          uuid.NewString(),
		Type:        EventTypeOnboarded,
		Timestamp:   ctx.Now(),
		OnboardedBy: operator,

		Email:       req.Email,
		Department:  req.Department,
		AccessTier:  string(req.AccessTier),
		UseCase:     req.UseCase,
		IDPProvider: req.IDPProvider,

		Organization: ctx.Config.Organization.Name,
		UserPoolID:   ctx.Config.Authentication.UserPoolID,
		Username:     state.Username,

		Bucket:   state.Bucket,
		KMSKeyID: state.Key.ID,
		LogGroup: state.LogGroup,

		Warnings: state.Warnings,
	}
	if state.Budget != nil {
		event.BudgetName = state.Budget.Name
		event.BudgetUSD = state.Budget.LimitUSD
	}
	return event
}
