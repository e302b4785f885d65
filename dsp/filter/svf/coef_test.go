package svf

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-svf/dsp/core"
	"github.com/cwbudde/algo-svf/internal/testutil"
)

func countTan(t *testing.T) *int {
	t.Helper()

	calls := 0
	orig := tanFunc
	tanFunc = func(x float64) float64 {
		calls++
		return math.Tan(x)
	}

	t.Cleanup(func() { tanFunc = orig })

	return &calls
}

func TestCoefficientScenario(t *testing.T) {
	spec := NewSpec(core.NewClock(44_100), 22_000, 0.5).Cook()

	var cache CoefficientCache

	got := cache.Apply(spec.GPrime(), spec.K())
	want := []float64{1.2638659037921946e-5, 0.0035482799198535164, 0.9961729604271197}

	testutil.RequireSliceNearlyEqual(t, got[:], want, 1e-12)
}

func TestCoefficientCacheSkipsTan(t *testing.T) {
	calls := countTan(t)

	var cache CoefficientCache

	first := cache.Apply(0.3, 1.2)
	second := cache.Apply(0.3, 1.2)

	if *calls != 1 {
		t.Fatalf("tan calls = %d, want 1", *calls)
	}

	if first != second {
		t.Fatalf("cached coefficients changed: %v vs %v", first, second)
	}

	kOnly := cache.Apply(0.3, 0.4)
	if *calls != 1 {
		t.Fatalf("tan calls after k change = %d, want 1", *calls)
	}

	var fresh CoefficientCache
	if want := fresh.Apply(0.3, 0.4); kOnly != want {
		t.Fatalf("k-only recompute = %v, want %v", kOnly, want)
	}

	cache.Apply(0.31, 0.4)

	if *calls != 3 {
		t.Fatalf("tan calls after g' change = %d, want 3", *calls)
	}
}

func TestCoefficientCacheZeroValue(t *testing.T) {
	calls := countTan(t)

	var cache CoefficientCache

	if got := cache.Apply(0, 0); got != (Coefficients{}) {
		t.Fatalf("zero inputs = %v, want zero coefficients", got)
	}

	// g' unchanged at 0 means g = tan(0) = 0 without evaluating tan.
	if got := cache.Apply(0, 2); got != (Coefficients{1, 0, 0}) {
		t.Fatalf("g'=0 k=2 = %v, want [1 0 0]", got)
	}

	if *calls != 0 {
		t.Fatalf("tan calls = %d, want 0", *calls)
	}
}

func TestCoefficientFormulas(t *testing.T) {
	var cache CoefficientCache

	gPrime, k := 0.7, 0.9
	c := cache.Apply(gPrime, k)

	g := math.Tan(gPrime)
	c0 := 1 / (1 + g*(g+k))

	if c[0] != c0 || c[1] != g*c0 || c[2] != g*(g*c0) {
		t.Fatalf("coefficients = %v, want [%v %v %v]", c, c0, g*c0, g*(g*c0))
	}
}
