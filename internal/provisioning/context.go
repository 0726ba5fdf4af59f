package provisioning

import (
	"context"
	"fmt"
	"time"

	"github.com/bcce/onboard/internal/config"
	"github.com/bcce/onboard/internal/platform/aws"
)

// Request is a validated-on-entry onboarding request for a single developer.
type Request struct {
	Email        string      `json:"email"`
	Department   string      `json:"department"`
	AccessTier   config.Tier `json:"access_tier"`
	ManagerEmail string      `json:"manager_email"`
	UseCase      string      `json:"use_case"`
	IDPProvider  string      `json:"idp_provider"`
}

// BudgetRecord describes the created individual budget.
type BudgetRecord struct {
	Name       string   `json:"name"`
	LimitUSD   float64  `json:"limit_usd"`
	Currency   string   `json:"currency"`
	Thresholds []float64 `json:"thresholds"`
}

// MonitoringConfig is the declared (informational) monitoring setup for a
// developer. No alarms are created; the pipeline only records intent.
type MonitoringConfig struct {
	Namespace     string            `json:"namespace"`
	DashboardName string            `json:"dashboard_name"`
	Dimensions    map[string]string `json:"dimensions"`
	Metrics       []string          `json:"metrics"`
	RetentionDays int               `json:"retention_days"`
	CostAlerts    bool              `json:"cost_alerts"`
}

// Artifacts holds the rendered developer-facing outputs.
type Artifacts struct {
	ClientConfigYAML string `json:"-"`
	EnvBlock         string `json:"-"`
	GettingStarted   string `json:"-"`

	// Paths of the written files, empty until persisted.
	Files []string `json:"files,omitempty"`
}

// State holds the shared results of onboarding phases.
// It is progressively populated as each phase completes and is passed to
// subsequent phases that need earlier results.
type State struct {
	// Identity results (populated by the identity provisioner)
	Username    string      `json:"username"`
	User        aws.UserRef `json:"user"`
	GroupName   string      `json:"group_name"`
	GroupRole   string      `json:"group_role"`
	BudgetLimit float64     `json:"budget_limit"` // department limit snapshot

	// Resource results (populated by the resource provisioner).
	// Bucket is empty when bucket creation degraded.
	Bucket   string     `json:"bucket,omitempty"`
	Key      aws.KeyRef `json:"key"`
	LogGroup string     `json:"log_group,omitempty"`

	// Budget results. Nil when budget creation degraded.
	Budget *BudgetRecord `json:"budget,omitempty"`

	// Monitoring declaration.
	Monitoring *MonitoringConfig `json:"monitoring,omitempty"`

	// Emitted artifacts.
	Artifacts *Artifacts `json:"artifacts,omitempty"`

	// Warnings collects soft-failure messages for the final summary.
	Warnings []string `json:"warnings,omitempty"`
}

// NewState creates an empty onboarding state.
func NewState() *State {
	return &State{}
}

// Warnf records a soft-failure warning on the state and logs it.
func (s *State) Warnf(obs Observer, phase, format string, v ...interface{}) {
	msg := fmt.Sprintf(format, v...)
	s.Warnings = append(s.Warnings, msg)
	obs.Event(Event{
		Type:    EventResourceFailed,
		Phase:   phase,
		Message: msg,
	})
}

// Context wraps all dependencies and state needed for an onboarding phase.
type Context struct {
	context.Context
	Config   *config.Config
	Request  *Request
	State    *State
	Clients  *aws.Clients
	Observer Observer

	// Now supplies timestamps so emission stays a pure function of its
	// inputs under test.
	Now func() time.Time
}

// NewContext creates a new onboarding context.
func NewContext(ctx context.Context, cfg *config.Config, req *Request, clients *aws.Clients) *Context {
	return &Context{
		Context:  ctx,
		Config:   cfg,
		Request:  req,
		State:    NewState(),
		Clients:  clients,
		Observer: NewConsoleObserver(),
		Now:      time.Now,
	}
}
