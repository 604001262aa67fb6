package telemetry

import (
	"math"
	"testing"
)

func TestComputeAgeStats(t *testing.T) {
	ages := []float64{100, 200, 300, 400, 500}
	mean, std := ComputeAgeStats(ages)

	if math.Abs(mean-300) > 0.001 {
		t.Errorf("mean = %v, want 300", mean)
	}
	// Sample standard deviation of 100..500 step 100.
	want := math.Sqrt(25000)
	if math.Abs(std-want) > 0.001 {
		t.Errorf("std = %v, want %v", std, want)
	}
}

func TestComputeAgeStatsEmpty(t *testing.T) {
	mean, std := ComputeAgeStats(nil)
	if mean != 0 || std != 0 {
		t.Errorf("empty input should return zeros, got mean=%v std=%v", mean, std)
	}
}

func TestComputeAgeStatsSingle(t *testing.T) {
	mean, std := ComputeAgeStats([]float64{750})
	if mean != 750 {
		t.Errorf("mean = %v, want 750", mean)
	}
	if std != 0 {
		t.Errorf("single sample std = %v, want 0", std)
	}
}
