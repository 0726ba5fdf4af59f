package provisioning

// Phase defines the interface for an onboarding phase.
type Phase interface {
	// Name returns the human-readable name of this phase.
	Name() string

	// Provision executes the provisioning logic for this phase.
	Provision(ctx *Context) error
}

// Logger is the minimal logging surface phases depend on.
type Logger interface {
	Printf(format string, v ...interface{})
}
