package provisioning

import (
	"fmt"
	"net/mail"
	"sort"
	"strings"

	"github.com/bcce/onboard/internal/config"
	"github.com/bcce/onboard/internal/util/naming"
)

// ValidationPhase implements the Phase interface for pre-flight validation.
// It checks the request against the organization configuration and verifies
// the derived username is free. Dry-run mode stops after this phase.
type ValidationPhase struct{}

// NewValidationPhase creates a new validation phase.
func NewValidationPhase() *ValidationPhase {
	return &ValidationPhase{}
}

// Name implements the Phase interface.
func (vp *ValidationPhase) Name() string {
	return "validation"
}

// Provision implements the Phase interface.
func (vp *ValidationPhase) Provision(ctx *Context) error {
	ctx.Observer.Printf("[Validation] Running pre-flight validation...")

	allErrors := validate(ctx)

	var errors []ValidationError
	var warnings []ValidationError
	for _, ve := range allErrors {
		if ve.IsError() {
			errors = append(errors, ve)
		} else {
			warnings = append(warnings, ve)
		}
	}

	for _, warning := range warnings {
		ctx.Observer.Event(Event{
			Type:    EventValidationWarning,
			Phase:   vp.Name(),
			Message: warning.Message,
		})
	}

	if len(errors) > 0 {
		var errMsgs []string
		for _, e := range errors {
			ctx.Observer.Event(Event{
				Type:    EventValidationError,
				Phase:   vp.Name(),
				Message: e.Message,
				Fields:  map[string]string{"field": e.Field},
			})
			errMsgs = append(errMsgs, e.Error())
		}
		return fmt.Errorf("request validation failed:\n  %s", strings.Join(errMsgs, "\n  "))
	}

	// The duplicate check runs only after field validation passed, and no
	// provisioning call happens before it.
	username := naming.Username(ctx.Request.Email)
	exists, err := ctx.Clients.Identity.UserExists(ctx, ctx.Config.Authentication.UserPoolID, username)
	if err != nil {
		return fmt.Errorf("failed to check existing user: %w", err)
	}
	if exists {
		return &DuplicateUserError{Email: ctx.Request.Email, Username: username}
	}

	ctx.State.Username = username
	ctx.Observer.Printf("[Validation] Validation passed for %s (username %s)", ctx.Request.Email, username)
	return nil
}

// validate runs all request checks and returns any errors or warnings.
func validate(ctx *Context) []ValidationError {
	var errs []ValidationError
	cfg := ctx.Config
	req := ctx.Request

	// --- Required fields ---

	if req.Email == "" {
		errs = append(errs, ValidationError{
			Field:    "Email",
			Message:  "developer email is required",
			Severity: "error",
		})
	} else if _, err := mail.ParseAddress(req.Email); err != nil {
		errs = append(errs, ValidationError{
			Field:    "Email",
			Message:  fmt.Sprintf("invalid email address: %v", err),
			Severity: "error",
		})
	}

	if req.ManagerEmail != "" {
		if _, err := mail.ParseAddress(req.ManagerEmail); err != nil {
			errs = append(errs, ValidationError{
				Field:    "ManagerEmail",
				Message:  fmt.Sprintf("invalid manager email address: %v", err),
				Severity: "error",
			})
		}
	} else {
		errs = append(errs, ValidationError{
			Field:    "ManagerEmail",
			Message:  "no manager email given; the 100% budget alert will only notify the developer",
			Severity: "warning",
		})
	}

	if cfg.Authentication.UserPoolID == "" {
		errs = append(errs, ValidationError{
			Field:    "Authentication.UserPoolID",
			Message:  "user pool id is required",
			Severity: "error",
		})
	}

	// --- Department and tier ---

	dept, ok := cfg.Departments[req.Department]
	if !ok {
		errs = append(errs, ValidationError{
			Field:    "Department",
			Message:  fmt.Sprintf("unknown department %q, valid options: %s", req.Department, strings.Join(departmentNames(cfg.Departments), ", ")),
			Severity: "error",
		})
		return errs
	}

	if !req.AccessTier.Valid() {
		errs = append(errs, ValidationError{
			Field:    "AccessTier",
			Message:  fmt.Sprintf("unknown access tier %q, valid options: sandbox, integration, production", req.AccessTier),
			Severity: "error",
		})
		return errs
	}

	if !dept.AllowsTier(req.AccessTier) {
		errs = append(errs, ValidationError{
			Field:    "AccessTier",
			Message:  fmt.Sprintf("access tier %q is not allowed for department %q", req.AccessTier, req.Department),
			Severity: "error",
		})
	}

	return errs
}

func departmentNames(departments map[string]config.Department) []string {
	names := make([]string, 0, len(departments))
	for name := range departments {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
