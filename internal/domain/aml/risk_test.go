//go:build unit
// +build unit

package aml

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestScore_WeightedAverage(t *testing.T) {
	tests := []struct {
		name       string
		assessment Assessment
		expected   float64
	}{
		{
			name:       "all minimum",
			assessment: Assessment{GeographyRisk: 1, IndustryRisk: 1, OwnershipRisk: 1, TransactionRisk: 1},
			expected:   1.0,
		},
		{
			name:       "all maximum",
			assessment: Assessment{GeographyRisk: 5, IndustryRisk: 5, OwnershipRisk: 5, TransactionRisk: 5},
			expected:   5.0,
		},
		{
			name:       "weights favour industry and ownership",
			assessment: Assessment{GeographyRisk: 1, IndustryRisk: 5, OwnershipRisk: 5, TransactionRisk: 1},
			expected:   3.4,
		},
		{
			name:       "rounded to two decimals",
			assessment: Assessment{GeographyRisk: 2, IndustryRisk: 3, OwnershipRisk: 4, TransactionRisk: 2},
			expected:   2.9,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Score(tt.assessment), 0.001)
		})
	}
}

func TestLevel_Thresholds(t *testing.T) {
	assert.Equal(t, RiskLow, Level(1.0, false))
	assert.Equal(t, RiskLow, Level(2.49, false))
	assert.Equal(t, RiskMedium, Level(2.5, false))
	assert.Equal(t, RiskMedium, Level(3.49, false))
	assert.Equal(t, RiskHigh, Level(3.5, false))
	assert.Equal(t, RiskHigh, Level(5.0, false))
}

func TestLevel_PepForcesHigh(t *testing.T) {
	assert.Equal(t, RiskHigh, Level(1.0, true))
}

func TestNextReview_Cadence(t *testing.T) {
	reviewedAt := time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)

	assert.Equal(t, reviewedAt.AddDate(2, 0, 0), NextReview(reviewedAt, RiskLow))
	assert.Equal(t, reviewedAt.AddDate(1, 0, 0), NextReview(reviewedAt, RiskMedium))
	assert.Equal(t, reviewedAt.AddDate(0, 6, 0), NextReview(reviewedAt, RiskHigh))
}

func TestEvaluate(t *testing.T) {
	reviewedAt := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	a := Assessment{GeographyRisk: 4, IndustryRisk: 4, OwnershipRisk: 4, TransactionRisk: 4}

	score, level, next := Evaluate(a, reviewedAt)

	assert.InDelta(t, 4.0, score, 0.001)
	assert.Equal(t, RiskHigh, level)
	assert.Equal(t, reviewedAt.AddDate(0, 6, 0), next)
}

func TestAmlStatus_ReviewOverdue(t *testing.T) {
	now := time.Now()
	s := &AmlStatus{NextReviewAt: now.Add(-time.Hour)}
	assert.True(t, s.ReviewOverdue(now))

	s.NextReviewAt = now.Add(time.Hour)
	assert.False(t, s.ReviewOverdue(now))
}
