package baseline_test

import (
	"context"
	"testing"
	"time"

	"github.com/ganot/teampulse/internal/domain/baseline"
	"github.com/ganot/teampulse/internal/domain/metric"
	"github.com/ganot/teampulse/internal/repository"
	"github.com/ganot/teampulse/internal/repository/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func aggregateRows(teamID string, values ...float64) []metric.Aggregate {
	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	rows := make([]metric.Aggregate, len(values))
	for i, v := range values {
		rows[i] = metric.Aggregate{
			TeamID: teamID,
			Date:   start.AddDate(0, 0, i),
			Signals: map[metric.Signal]float64{
				metric.SignalMeetingLoad: v,
				metric.SignalAfterHours:  0.1,
			},
		}
	}
	return rows
}

func TestBaselineService_Calibrate(t *testing.T) {
	ctx := context.Background()
	baselines := &mocks.BaselineRepository{}
	aggregates := &mocks.AggregateRepository{}

	aggregates.On("ListRecent", ctx, "t1", 30).Return(aggregateRows("t1", 18, 20, 22), nil)
	baselines.On("Create", ctx, mock.Anything).Return(nil)

	svc := baseline.NewService(baselines, aggregates, nil)
	b, err := svc.Calibrate(ctx, "t1", 30)
	require.NoError(t, err)
	require.Equal(t, "t1", b.TeamID)
	require.NotEmpty(t, b.ID)
	require.Equal(t, 3, b.SampleSize)
	require.Equal(t, 30, b.WindowLength)
	require.InDelta(t, 20.0, b.Values[metric.SignalMeetingLoad], 1e-9)
	require.InDelta(t, 0.1, b.Values[metric.SignalAfterHours], 1e-9)
	// 3 of 30 periods is far below medium coverage.
	require.Equal(t, baseline.ConfidenceLow, b.Confidence)

	baselines.AssertCalled(t, "Create", ctx, mock.Anything)
}

func TestBaselineService_Calibrate_SkipsMissingSignals(t *testing.T) {
	ctx := context.Background()
	baselines := &mocks.BaselineRepository{}
	aggregates := &mocks.AggregateRepository{}

	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	rows := []metric.Aggregate{
		{TeamID: "t1", Date: start, Signals: map[metric.Signal]float64{
			metric.SignalMeetingLoad: 10,
			metric.SignalFocusTime:   0.6,
		}},
		{TeamID: "t1", Date: start.AddDate(0, 0, 1), Signals: map[metric.Signal]float64{
			metric.SignalMeetingLoad: 30,
		}},
	}
	aggregates.On("ListRecent", ctx, "t1", 30).Return(rows, nil)
	baselines.On("Create", ctx, mock.Anything).Return(nil)

	svc := baseline.NewService(baselines, aggregates, nil)
	b, err := svc.Calibrate(ctx, "t1", 30)
	require.NoError(t, err)

	// Mean over rows that carry the signal, not over the full window.
	require.InDelta(t, 20.0, b.Values[metric.SignalMeetingLoad], 1e-9)
	require.InDelta(t, 0.6, b.Values[metric.SignalFocusTime], 1e-9)
	_, ok := b.Values[metric.SignalBDI]
	require.False(t, ok, "signals absent from every row must stay absent")
}

func TestBaselineService_Calibrate_Deterministic(t *testing.T) {
	ctx := context.Background()
	baselines := &mocks.BaselineRepository{}
	aggregates := &mocks.AggregateRepository{}

	rows := aggregateRows("t1", 18, 20, 22)
	aggregates.On("ListRecent", ctx, "t1", 30).Return(rows, nil)
	baselines.On("Create", ctx, mock.Anything).Return(nil)

	svc := baseline.NewService(baselines, aggregates, nil)
	first, err := svc.Calibrate(ctx, "t1", 30)
	require.NoError(t, err)
	second, err := svc.Calibrate(ctx, "t1", 30)
	require.NoError(t, err)

	require.Equal(t, first.Values, second.Values)
	require.Equal(t, first.Confidence, second.Confidence)
	require.Equal(t, first.SampleSize, second.SampleSize)
	require.NotEqual(t, first.ID, second.ID, "each calibration is a fresh snapshot")
}

func TestBaselineService_Calibrate_NoData(t *testing.T) {
	ctx := context.Background()
	baselines := &mocks.BaselineRepository{}
	aggregates := &mocks.AggregateRepository{}

	aggregates.On("ListRecent", ctx, "t1", 30).Return([]metric.Aggregate{}, nil)

	svc := baseline.NewService(baselines, aggregates, nil)
	_, err := svc.Calibrate(ctx, "t1", 30)
	require.ErrorIs(t, err, baseline.ErrNoData)
	baselines.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestBaselineService_Calibrate_InvalidInput(t *testing.T) {
	ctx := context.Background()
	svc := baseline.NewService(&mocks.BaselineRepository{}, &mocks.AggregateRepository{}, nil)

	_, err := svc.Calibrate(ctx, "", 30)
	require.ErrorIs(t, err, baseline.ErrInvalidInput)

	_, err = svc.Calibrate(ctx, "t1", 0)
	require.ErrorIs(t, err, baseline.ErrInvalidInput)
}

func TestBaselineService_Current_NotFound(t *testing.T) {
	ctx := context.Background()
	baselines := &mocks.BaselineRepository{}
	baselines.On("GetCurrent", ctx, "t1").Return(nil, repository.ErrNotFound)

	svc := baseline.NewService(baselines, &mocks.AggregateRepository{}, nil)
	_, err := svc.Current(ctx, "t1")
	require.ErrorIs(t, err, baseline.ErrNotFound)
}

func TestGradeConfidence(t *testing.T) {
	require.Equal(t, baseline.ConfidenceHigh, baseline.GradeConfidence(24, 30))
	require.Equal(t, baseline.ConfidenceHigh, baseline.GradeConfidence(30, 30))
	require.Equal(t, baseline.ConfidenceMedium, baseline.GradeConfidence(12, 30))
	require.Equal(t, baseline.ConfidenceMedium, baseline.GradeConfidence(23, 30))
	require.Equal(t, baseline.ConfidenceLow, baseline.GradeConfidence(11, 30))
	require.Equal(t, baseline.ConfidenceLow, baseline.GradeConfidence(0, 30))
	require.Equal(t, baseline.ConfidenceLow, baseline.GradeConfidence(5, 0))
}

func TestGradeConfidence_Monotonic(t *testing.T) {
	rank := map[baseline.Confidence]int{
		baseline.ConfidenceLow:    0,
		baseline.ConfidenceMedium: 1,
		baseline.ConfidenceHigh:   2,
	}
	prev := baseline.GradeConfidence(0, 30)
	for n := 1; n <= 30; n++ {
		cur := baseline.GradeConfidence(n, 30)
		require.GreaterOrEqual(t, rank[cur], rank[prev], "confidence regressed at %d samples", n)
		prev = cur
	}
}
