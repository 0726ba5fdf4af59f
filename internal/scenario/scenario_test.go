package scenario

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bcce/onboard/internal/config"
	"github.com/bcce/onboard/internal/provisioning"
)

func TestSuite_AllScenariosPass(t *testing.T) {
	t.Parallel()

	report := RunSuite(context.Background(), DemoConfig(), Suite())

	for _, result := range report.Results {
		assert.True(t, result.Passed(), "%s: %s", result.Name, result.Detail)
	}
	assert.Equal(t, len(Suite()), report.Total)
	assert.Equal(t, report.Total, report.Passed)
	assert.Zero(t, report.Failed)
	assert.Equal(t, 100.0, report.SuccessRate)
}

func TestRun_WantErrMismatch(t *testing.T) {
	t.Parallel()

	sc := Scenario{
		Name: "expected-failure-that-succeeds",
		Request: provisioning.Request{
			Email:      "ok@acme.com",
			Department: "engineering",
			AccessTier: config.TierSandbox,
		},
		WantErr: "should not happen",
	}

	result := Run(context.Background(), DemoConfig(), sc)
	assert.False(t, result.Passed())
	assert.Contains(t, result.Detail, "expected error")
}

func TestRun_CheckFailure(t *testing.T) {
	t.Parallel()

	sc := Scenario{
		Name: "check-fails",
		Request: provisioning.Request{
			Email:      "ok@acme.com",
			Department: "engineering",
			AccessTier: config.TierSandbox,
		},
		Check: func(*config.Config, *Store, *provisioning.State) error {
			return fmt.Errorf("assertion failed")
		},
	}

	result := Run(context.Background(), DemoConfig(), sc)
	assert.False(t, result.Passed())
	assert.Equal(t, "assertion failed", result.Detail)
}

func TestRunSuite_CountsFailures(t *testing.T) {
	t.Parallel()

	scenarios := []Scenario{
		{
			Name: "passes",
			Request: provisioning.Request{
				Email:      "a@acme.com",
				Department: "engineering",
				AccessTier: config.TierSandbox,
			},
		},
		{
			Name: "fails",
			Request: provisioning.Request{
				Email:      "b@acme.com",
				Department: "nope",
				AccessTier: config.TierSandbox,
			},
		},
	}

	report := RunSuite(context.Background(), DemoConfig(), scenarios)
	assert.Equal(t, 2, report.Total)
	assert.Equal(t, 1, report.Passed)
	assert.Equal(t, 1, report.Failed)
	assert.Equal(t, 50.0, report.SuccessRate)
}

func TestReport_Write(t *testing.T) {
	t.Parallel()

	report := RunSuite(context.Background(), DemoConfig(), Suite()[:1])
	path := t.TempDir() + "/report.json"
	require.NoError(t, report.Write(path))

	assert.FileExists(t, path)
}
