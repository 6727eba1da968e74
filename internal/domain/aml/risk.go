package aml

import (
	"math"
	"time"
)

// Factor weights. Ownership structure and industry dominate because they are
// the factors hvitvaskingsloven audits focus on.
const (
	weightGeography   = 0.2
	weightIndustry    = 0.3
	weightOwnership   = 0.3
	weightTransaction = 0.2
)

// Level thresholds on the weighted score.
const (
	mediumThreshold = 2.5
	highThreshold   = 3.5
)

// Review intervals per risk level.
const (
	reviewMonthsLow    = 24
	reviewMonthsMedium = 12
	reviewMonthsHigh   = 6
)

// Score computes the weighted average of the four factor scores, rounded to
// two decimals.
func Score(a Assessment) float64 {
	score := float64(a.GeographyRisk)*weightGeography +
		float64(a.IndustryRisk)*weightIndustry +
		float64(a.OwnershipRisk)*weightOwnership +
		float64(a.TransactionRisk)*weightTransaction
	return math.Round(score*100) / 100
}

// Level maps a weighted score to a risk level. A confirmed PEP is always
// high risk regardless of the score.
func Level(score float64, pepConfirmed bool) string {
	if pepConfirmed {
		return RiskHigh
	}
	switch {
	case score < mediumThreshold:
		return RiskLow
	case score < highThreshold:
		return RiskMedium
	default:
		return RiskHigh
	}
}

// NextReview returns the next review deadline for a level, counted from the
// review instant.
func NextReview(reviewedAt time.Time, level string) time.Time {
	switch level {
	case RiskLow:
		return reviewedAt.AddDate(0, reviewMonthsLow, 0)
	case RiskMedium:
		return reviewedAt.AddDate(0, reviewMonthsMedium, 0)
	default:
		return reviewedAt.AddDate(0, reviewMonthsHigh, 0)
	}
}

// Evaluate applies an assessment at the given instant and returns the
// resulting status fields.
func Evaluate(a Assessment, reviewedAt time.Time) (score float64, level string, nextReview time.Time) {
	score = Score(a)
	level = Level(score, a.PepConfirmed)
	nextReview = NextReview(reviewedAt, level)
	return score, level, nextReview
}
