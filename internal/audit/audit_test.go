package audit

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bcce/onboard/internal/platform/aws"
	"github.com/bcce/onboard/internal/provisioning"
	internaltesting "github.com/bcce/onboard/internal/testing"
)

func auditState() *provisioning.State {
	return &provisioning.State{
		Username: "dev-acme-com",
		Bucket:   "bcce-dev-acme-com-12345678",
		Key:      aws.KeyRef{ID: "key-1"},
		LogGroup: "/bcce/developer/dev-acme-com",
		Budget:   &provisioning.BudgetRecord{Name: "BCCE-dev-acme-com", LimitUSD: 100, Currency: "USD"},
		Warnings: []string{"could not create log group"},
	}
}

func TestBuildEvent(t *testing.T) {
	ctx := internaltesting.NewTestContext(
		internaltesting.TestConfig(),
		internaltesting.TestRequest(),
		&aws.Clients{},
	)
	ctx.State = auditState()

	event := BuildEvent(ctx)

	assert.NotEmpty(t, event.ID)
	assert.Equal(t, EventTypeOnboarded, event.Type)
	assert.Equal(t, internaltesting.FixedTime, event.Timestamp)
	assert.NotEmpty(t, event.OnboardedBy)

	assert.Equal(t, "dev@acme.com", event.Email)
	assert.Equal(t, "engineering", event.Department)
	assert.Equal(t, "sandbox", event.AccessTier)
	assert.Equal(t, "Acme", event.Organization)
	assert.Equal(t, "dev-acme-com", event.Username)

	assert.Equal(t, "bcce-dev-acme-com-12345678", event.Bucket)
	assert.Equal(t, "key-1", event.KMSKeyID)
	assert.Equal(t, "BCCE-dev-acme-com", event.BudgetName)
	assert.Equal(t, 100.0, event.BudgetUSD)
	assert.Equal(t, []string{"could not create log group"}, event.Warnings)
}

func TestEventKey_DatePartitioned(t *testing.T) {
	t.Parallel()

	event := Event{
		Email:     "dev@acme.com",
		Timestamp: time.Date(2025, 6, 15, 23, 30, 0, 0, time.UTC),
	}
	assert.Equal(t, "events/onboarding/2025/06/15/dev-acme-com.json", event.Key())
}

func TestPhase_StoresEvent(t *testing.T) {
	t.Parallel()

	objects := &internaltesting.MockObjectStore{}
	ctx := internaltesting.NewTestContext(
		internaltesting.TestConfig(),
		internaltesting.TestRequest(),
		&aws.Clients{Objects: objects},
	)
	ctx.State = auditState()

	objects.On("PutObject", mock.Anything, "bcce-acme-analytics",
		"events/onboarding/2025/06/15/dev-acme-com.json", mock.Anything,
		mock.MatchedBy(func(opts aws.PutObjectOptions) bool {
			return opts.ContentType == "application/json" && opts.SSEKMSKeyID != ""
		})).
		Return(nil)

	err := NewPhase().Provision(ctx)
	require.NoError(t, err)
	objects.AssertExpectations(t)
}

func TestPhase_UploadFailureDegrades(t *testing.T) {
	t.Parallel()

	objects := &internaltesting.MockObjectStore{}
	ctx := internaltesting.NewTestContext(
		internaltesting.TestConfig(),
		internaltesting.TestRequest(),
		&aws.Clients{Objects: objects},
	)
	ctx.State = auditState()

	objects.On("PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("access denied"))

	err := NewPhase().Provision(ctx)
	require.NoError(t, err, "a failed event upload must not fail the run")
	assert.Contains(t, ctx.State.Warnings[len(ctx.State.Warnings)-1], "onboarding event")
}

func TestPhase_NoAnalyticsBucket(t *testing.T) {
	t.Parallel()

	cfg := internaltesting.TestConfig()
	cfg.Governance.AnalyticsBucket = ""

	objects := &internaltesting.MockObjectStore{}
	ctx := internaltesting.NewTestContext(cfg, internaltesting.TestRequest(), &aws.Clients{Objects: objects})
	ctx.State = auditState()

	err := NewPhase().Provision(ctx)
	require.NoError(t, err)
	objects.AssertNotCalled(t, "PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
