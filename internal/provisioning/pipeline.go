package provisioning

import (
	"fmt"
	"time"
)

// RunPhases executes all onboarding phases sequentially.
// A phase error aborts the run; soft failures inside a phase are recorded
// on the state instead of returned. Every event emitted during the run
// carries the developer email as a context field.
func RunPhases(ctx *Context, phases []Phase) error {
	start := time.Now()
	ctx.Observer = ctx.Observer.WithFields(map[string]string{"email": ctx.Request.Email})
	ctx.Observer.Printf("Starting onboarding for %s with %d phases...", ctx.Request.Email, len(phases))

	for i, phase := range phases {
		phaseStart := time.Now()

		ctx.Observer.Event(Event{
			Type:    EventPhaseStarted,
			Phase:   phase.Name(),
			Message: fmt.Sprintf("starting (%d/%d)", i+1, len(phases)),
		})

		if err := phase.Provision(ctx); err != nil {
			ctx.Observer.Event(Event{
				Type:    EventPhaseFailed,
				Phase:   phase.Name(),
				Message: err.Error(),
			})
			return fmt.Errorf("%s phase failed: %w", phase.Name(), err)
		}

		ctx.Observer.Event(Event{
			Type:    EventPhaseCompleted,
			Phase:   phase.Name(),
			Message: fmt.Sprintf("completed in %v", time.Since(phaseStart).Round(time.Millisecond)),
		})
	}

	ctx.Observer.Printf("Onboarding completed in %v", time.Since(start).Round(time.Millisecond))
	return nil
}
