package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weighttrack/internal/domain"
)

func TestCalculateBMI(t *testing.T) {
	assert.Equal(t, 22.9, domain.CalculateBMI(70, 175))
	assert.Equal(t, 25.0, domain.CalculateBMI(81, 180))
	assert.Equal(t, 31.2, domain.CalculateBMI(100, 179))
}

func TestClassifyBMI(t *testing.T) {
	tests := []struct {
		bmi  float64
		want domain.BMICategory
	}{
		{15.0, domain.BMIUnderweight},
		{18.4, domain.BMIUnderweight},
		{18.5, domain.BMINormal},
		{24.9, domain.BMINormal},
		{25.0, domain.BMIOverweight},
		{29.9, domain.BMIOverweight},
		{30.0, domain.BMIObese},
		{42.0, domain.BMIObese},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, domain.ClassifyBMI(tc.bmi), "bmi %v", tc.bmi)
	}
}

func TestBMICategoryLabel(t *testing.T) {
	assert.Equal(t, "Normal weight", domain.BMINormal.Label())
	assert.Equal(t, "Obese (grade 1)", domain.BMIOverweight.Label())
	assert.Equal(t, "Obese (grade 2+)", domain.BMIObese.Label())
}

func TestWeightLossRate(t *testing.T) {
	assert.Equal(t, 10.0, domain.WeightLossRate(72, 80))
	assert.Equal(t, 0.0, domain.WeightLossRate(80, 80))
	assert.Equal(t, -5.0, domain.WeightLossRate(84, 80))
	assert.Equal(t, 3.3, domain.WeightLossRate(87, 90))
}

func TestProgressPercentage(t *testing.T) {
	assert.Equal(t, 50.0, domain.ProgressPercentage(75, 80, 70))
	assert.Equal(t, 0.0, domain.ProgressPercentage(85, 80, 70), "gain clamps to 0")
	assert.Equal(t, 100.0, domain.ProgressPercentage(65, 80, 70), "overshoot clamps to 100")
	assert.Equal(t, 0.0, domain.ProgressPercentage(70, 70, 70), "nothing to lose")
	assert.Equal(t, 33.3, domain.ProgressPercentage(79, 80, 77))
}

func TestExpectedCompletionDate(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	got := domain.ExpectedCompletionDate(1, 8, now)
	require.NotNil(t, got)
	assert.Equal(t, now.AddDate(0, 0, 56), *got)

	// 5 kg at 2 kg/week is 17.5 days, rounded up.
	got = domain.ExpectedCompletionDate(2, 5, now)
	require.NotNil(t, got)
	assert.Equal(t, now.AddDate(0, 0, 18), *got)

	assert.Nil(t, domain.ExpectedCompletionDate(0, 5, now))
	assert.Nil(t, domain.ExpectedCompletionDate(-1, 5, now))
	assert.Nil(t, domain.ExpectedCompletionDate(1, 0, now))
}
