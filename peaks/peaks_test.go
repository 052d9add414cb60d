package peaks

import (
	"math"
	"math/rand"
	"reflect"
	"testing"

	"gopkg.in/guregu/null.v3"
)

func defined(vals ...float64) []null.Float {
	out := make([]null.Float, 0, len(vals))
	for _, v := range vals {
		out = append(out, null.FloatFrom(v))
	}
	return out
}

// sameIndices treats nil and empty as equal.
func sameIndices(got, expected []int) bool {
	if len(got) == 0 && len(expected) == 0 {
		return true
	}

	return reflect.DeepEqual(got, expected)
}

func TestDetectFiveSampleScenario(t *testing.T) {
	// With a one-sample window the smoothed trace equals the raw trace. The
	// endpoints are never reported, even though they are the lowest samples.
	pk, err := Detect(defined(1, 3, 2, 5, 1), 1)
	if err != nil {
		t.Fatal(err)
	}

	if !sameIndices(pk.Systolic, []int{1, 3}) {
		t.Errorf("systolic %v, expected [1 3]", pk.Systolic)
	}
	if !sameIndices(pk.Diastolic, []int{2}) {
		t.Errorf("diastolic %v, expected [2]", pk.Diastolic)
	}
}

func TestFind(t *testing.T) {
	for name, v := range map[string]struct {
		x        []float64
		distance int
		expected []int
	}{
		"empty":      {[]float64{}, 1, nil},
		"one":        {[]float64{4}, 1, nil},
		"two":        {[]float64{4, 5}, 1, nil},
		"increasing": {[]float64{1, 2, 3, 4, 5, 6}, 1, nil},
		"decreasing": {[]float64{6, 5, 4, 3, 2, 1}, 1, nil},
		"flat":       {[]float64{3, 3, 3, 3}, 1, nil},

		"odd plateau":  {[]float64{0, 2, 2, 2, 0}, 1, []int{2}},
		"even plateau": {[]float64{0, 2, 2, 0}, 1, []int{1}},
		"rising shelf": {[]float64{0, 2, 2, 3, 1}, 1, []int{3}},
		"plateau to end": {[]float64{0, 2, 2}, 1, nil},
		"adjacent rise":  {[]float64{0, 1, 2, 1}, 1, []int{2}},

		"distance keeps tallest": {[]float64{0, 5, 0, 6, 0, 4, 0}, 3, []int{3}},
		"distance satisfied":     {[]float64{0, 5, 0, 6, 0, 4, 0}, 2, []int{1, 3, 5}},
		"tie goes to earliest":   {[]float64{0, 5, 0, 5, 0}, 3, []int{1}},
	} {
		got, err := Find(v.x, v.distance)
		if err != nil {
			t.Errorf("%s: %v", name, err)
			continue
		}

		if !sameIndices(got, v.expected) {
			t.Errorf("%s: got %v, expected %v", name, got, v.expected)
		}
	}
}

func TestFindRejectsBadDistance(t *testing.T) {
	if _, err := Find([]float64{0, 1, 0}, 0); err == nil {
		t.Error("distance 0: expected an error")
	}

	if _, err := Detect(defined(0, 1, 0), -1); err == nil {
		t.Error("distance -1: expected an error")
	}
}

func TestFindAscendingAndSeparated(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	x := make([]float64, 2000)
	for i := range x {
		tm := float64(i) * 0.01
		x[i] = 100 + 20*math.Sin(2*math.Pi*1.2*tm) + rng.NormFloat64()*3
	}

	for _, distance := range []int{1, 5, 20, 80} {
		got, err := Find(x, distance)
		if err != nil {
			t.Fatal(err)
		}
		if len(got) == 0 {
			t.Fatalf("distance %d: no peaks found", distance)
		}

		for i := 1; i < len(got); i++ {
			if got[i]-got[i-1] < distance {
				t.Errorf("distance %d: peaks %d and %d are too close", distance, got[i-1], got[i])
			}
		}
	}
}

func TestFillCoercesUndefinedToZero(t *testing.T) {
	smoothed := []null.Float{{}, null.FloatFrom(2), null.FloatFrom(1), null.FloatFrom(3), {}}

	if got, expected := Fill(smoothed), []float64{0, 2, 1, 3, 0}; !reflect.DeepEqual(got, expected) {
		t.Errorf("Fill() = %v, expected %v", got, expected)
	}

	// The zero-filled edges make index 1 and index 3 maxima.
	pk, err := Detect(smoothed, 1)
	if err != nil {
		t.Fatal(err)
	}

	if !sameIndices(pk.Systolic, []int{1, 3}) || !sameIndices(pk.Diastolic, []int{2}) {
		t.Errorf("got %+v", pk)
	}
}

func TestDetectOnSinusoid(t *testing.T) {
	// 1 Hz sampled at 100 Hz for 5 s: one maximum and one minimum per cycle.
	vals := make([]float64, 500)
	for i := range vals {
		vals[i] = 100 + 20*math.Sin(2*math.Pi*float64(i)/100)
	}

	pk, err := Detect(defined(vals...), 5)
	if err != nil {
		t.Fatal(err)
	}

	if expected := []int{25, 125, 225, 325, 425}; !sameIndices(pk.Systolic, expected) {
		t.Errorf("systolic %v, expected %v", pk.Systolic, expected)
	}
	if expected := []int{75, 175, 275, 375, 475}; !sameIndices(pk.Diastolic, expected) {
		t.Errorf("diastolic %v, expected %v", pk.Diastolic, expected)
	}
}
