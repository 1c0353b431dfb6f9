package adapt

// Level is a WCAG 2 conformance grade for a contrast ratio.
type Level string

const (
	LevelAAA     Level = "AAA"
	LevelAA      Level = "AA"
	LevelAALarge Level = "AA-large"
	LevelFail    Level = "fail"
)

// WCAG minimum ratios.
const (
	RatioAAA     = 7.0
	RatioAA      = 4.5
	RatioAALarge = 3.0
)

// Grade returns the highest level the ratio satisfies.
func Grade(ratio float64) Level {
	switch {
	case ratio >= RatioAAA:
		return LevelAAA
	case ratio >= RatioAA:
		return LevelAA
	case ratio >= RatioAALarge:
		return LevelAALarge
	default:
		return LevelFail
	}
}
