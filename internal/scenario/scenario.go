package scenario

import (
	"context"
	"fmt"
	"strings"
	"time"

	cognitotypes "github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"

	"github.com/bcce/onboard/internal/config"
	"github.com/bcce/onboard/internal/platform/aws"
	"github.com/bcce/onboard/internal/provisioning"
	"github.com/bcce/onboard/internal/provisioning/identity"
)

// Scenario is a scripted onboarding flow executed against an in-memory
// identity store. A scenario passes when the pipeline outcome matches the
// expectation and the optional check holds.
type Scenario struct {
	Name        string
	Description string
	Request     provisioning.Request

	// Setup pre-seeds the identity store (e.g. an existing user).
	Setup func(store *Store)

	// WantErr, when non-empty, is a substring the pipeline error must
	// contain. Empty means the scenario must succeed.
	WantErr string

	// Check runs extra assertions after a successful pipeline run.
	Check func(cfg *config.Config, store *Store, state *provisioning.State) error
}

// Store is an in-memory identity store. Errors are the SDK's typed errors
// so the platform classification helpers behave as they would against the
// live service.
type Store struct {
	Users  map[string]map[string]string // username -> attributes
	Groups map[string]string            // group -> role ARN
}

// NewStore creates an empty in-memory identity store.
func NewStore() *Store {
	return &Store{
		Users:  make(map[string]map[string]string),
		Groups: make(map[string]string),
	}
}

func (s *Store) UserExists(_ context.Context, _, username string) (bool, error) {
	_, ok := s.Users[username]
	return ok, nil
}

func (s *Store) CreateUser(_ context.Context, userPoolID, username string, attributes map[string]string) (aws.UserRef, error) {
	if _, ok := s.Users[username]; ok {
		return aws.UserRef{}, &cognitotypes.UsernameExistsException{}
	}
	s.Users[username] = attributes
	return aws.UserRef{Username: username, UserPoolID: userPoolID, Sub: username}, nil
}

func (s *Store) AddUserToGroup(_ context.Context, _, _, group string) error {
	if _, ok := s.Groups[group]; !ok {
		return &cognitotypes.ResourceNotFoundException{}
	}
	return nil
}

func (s *Store) CreateGroup(_ context.Context, _, group, roleARN, _ string) error {
	s.Groups[group] = roleARN
	return nil
}

// Result is the outcome of a single scenario.
type Result struct {
	Name       string `json:"name"`
	Status     string `json:"status"` // "passed" or "failed"
	Detail     string `json:"detail,omitempty"`
	DurationMS int64  `json:"duration_ms"`
}

// Passed reports whether the scenario passed.
func (r Result) Passed() bool { return r.Status == "passed" }

// Run executes a single scenario: validation plus identity provisioning
// against a fresh in-memory store.
func Run(ctx context.Context, cfg *config.Config, sc Scenario) Result {
	start := time.Now()

	store := NewStore()
	if sc.Setup != nil {
		sc.Setup(store)
	}

	req := sc.Request
	pctx := &provisioning.Context{
		Context:  ctx,
		Config:   cfg,
		Request:  &req,
		State:    provisioning.NewState(),
		Clients:  &aws.Clients{Identity: store, AccountID: "000000000000", Region: cfg.Organization.Region},
		Observer: silentObserver{},
		Now:      time.Now,
	}

	phases := []provisioning.Phase{
		provisioning.NewValidationPhase(),
		identity.NewProvisioner(),
	}

	err := provisioning.RunPhases(pctx, phases)
	result := Result{Name: sc.Name, DurationMS: time.Since(start).Milliseconds()}

	switch {
	case sc.WantErr == "" && err != nil:
		result.Status = "failed"
		result.Detail = fmt.Sprintf("expected success, got: %v", err)
	case sc.WantErr != "" && err == nil:
		result.Status = "failed"
		result.Detail = fmt.Sprintf("expected error containing %q, got success", sc.WantErr)
	case sc.WantErr != "" && !strings.Contains(err.Error(), sc.WantErr):
		result.Status = "failed"
		result.Detail = fmt.Sprintf("expected error containing %q, got: %v", sc.WantErr, err)
	default:
		if err == nil && sc.Check != nil {
			if checkErr := sc.Check(cfg, store, pctx.State); checkErr != nil {
				result.Status = "failed"
				result.Detail = checkErr.Error()
				return result
			}
		}
		result.Status = "passed"
	}

	return result
}

type silentObserver struct{}

func (silentObserver) Printf(string, ...interface{})                        {}
func (silentObserver) Event(provisioning.Event)                             {}
func (o silentObserver) WithFields(map[string]string) provisioning.Observer { return o }
