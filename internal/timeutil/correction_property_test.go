package timeutil

import (
	"fmt"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// A correction followed by its negation must give back the original
// wall-clock string for every canonical "HH:MM" input.
func TestProperty_CorrectionIsInvertible(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("apply(apply(t, c), -c) == t", prop.ForAll(
		func(hour, minute, offset int) bool {
			clock := fmt.Sprintf("%02d:%02d", hour, minute)
			return ApplyCorrection(ApplyCorrection(clock, offset), -offset) == clock
		},
		gen.IntRange(0, 23),
		gen.IntRange(0, 59),
		gen.IntRange(-3000, 3000),
	))

	properties.Property("result stays a valid clock string", prop.ForAll(
		func(hour, minute, offset int) bool {
			clock := fmt.Sprintf("%02d:%02d", hour, minute)
			_, _, ok := ParseClock(ApplyCorrection(clock, offset))
			return ok
		},
		gen.IntRange(0, 23),
		gen.IntRange(0, 59),
		gen.IntRange(-3000, 3000),
	))

	properties.TestingRun(t)
}
