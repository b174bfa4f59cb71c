package handler

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dtroode/fingerprint-server/internal/api/grpc/apiv1"
	"github.com/dtroode/fingerprint-server/internal/mocks"
	"github.com/dtroode/fingerprint-server/internal/model"
	"github.com/dtroode/fingerprint-server/internal/testutil"
)

func TestAdmin_AuditDuplicates(t *testing.T) {
	t.Parallel()

	id := uuid.MustParse("6f1c2a9e-3b44-4c0e-9d2a-8f5b7e1a0c33")
	started := time.Date(2026, 10, 17, 2, 0, 0, 0, time.UTC)

	t.Run("duplicate found", func(t *testing.T) {
		t.Parallel()

		runner := mocks.NewAuditRunner(t)
		runner.On("Run", mock.Anything).Return(model.AuditReport{
			ID: id, StartedAt: started, FinishedAt: started.Add(time.Minute),
			Outcome: model.AuditOutcomeDuplicate, Templates: 3, Comparisons: 2,
			Threshold: model.ThresholdConservative,
			Pair: &model.DuplicatePair{
				First:  model.PairMember{TemplateID: 1, EmployeeID: 10, Finger: model.FingerRightThumb},
				Second: model.PairMember{TemplateID: 3, EmployeeID: 30, Finger: model.FingerLeftThumb},
				Score:  0,
			},
		}, nil).Once()

		resp, err := NewAdmin(runner, testutil.MakeNoopLogger()).AuditDuplicates(context.Background(), &apiv1.AuditDuplicatesRequest{})
		require.NoError(t, err)
		assert.Equal(t, &apiv1.AuditDuplicatesResponse{
			Found: true, Outcome: "duplicate", ReportID: id.String(),
			Templates: 3, Comparisons: 2, Threshold: "conservative",
			StartedAt: started, FinishedAt: started.Add(time.Minute),
			Pair: &apiv1.DuplicatePair{
				First:  apiv1.PairMember{TemplateID: 1, EmployeeID: 10, Finger: "RIGHT_THUMB"},
				Second: apiv1.PairMember{TemplateID: 3, EmployeeID: 30, Finger: "LEFT_THUMB"},
			},
		}, resp)
	})

	t.Run("empty corpus", func(t *testing.T) {
		t.Parallel()

		runner := mocks.NewAuditRunner(t)
		runner.On("Run", mock.Anything).Return(model.AuditReport{ID: id, Outcome: model.AuditOutcomeEmpty}, nil).Once()

		resp, err := NewAdmin(runner, testutil.MakeNoopLogger()).AuditDuplicates(context.Background(), &apiv1.AuditDuplicatesRequest{})
		require.NoError(t, err)
		assert.False(t, resp.Found)
		assert.Equal(t, "empty", resp.Outcome)
		assert.Nil(t, resp.Pair)
	})

	t.Run("already running", func(t *testing.T) {
		t.Parallel()

		runner := mocks.NewAuditRunner(t)
		runner.On("Run", mock.Anything).Return(model.AuditReport{}, model.ErrAuditInProgress).Once()

		_, err := NewAdmin(runner, testutil.MakeNoopLogger()).AuditDuplicates(context.Background(), &apiv1.AuditDuplicatesRequest{})
		assert.Equal(t, codes.Unavailable, status.Code(err))
	})
}
