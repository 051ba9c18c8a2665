package constants

// Growth stage thresholds, in percent of a plant's habits completed.
// A percentage belongs to the highest band whose threshold it reaches.
const (
	MatureThreshold    = 100.0
	FloweringThreshold = 75.0
	GrowingThreshold   = 50.0
	SproutThreshold    = 25.0
)

func init() {
	if !(MatureThreshold > FloweringThreshold &&
		FloweringThreshold > GrowingThreshold &&
		GrowingThreshold > SproutThreshold &&
		SproutThreshold > 0) {
		panic("growth thresholds must be strictly descending and positive")
	}
}
