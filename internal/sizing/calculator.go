package sizing

const (
	// BaseJacketSize is used when the weight does not exceed any band threshold.
	BaseJacketSize = 46
	// TrouserDrop is subtracted from the jacket size to obtain the trouser size.
	TrouserDrop = 6
	// ChestAdjustThreshold is the chest slider value above which the jacket grows.
	ChestAdjustThreshold = 2
	// ChestAdjustIncrement is added to the jacket when the chest slider exceeds ChestAdjustThreshold.
	ChestAdjustIncrement = 2
)

// weightBands must stay sorted by descending threshold, the first match wins.
var weightBands = []Band{
	{Threshold: 115, Size: 60},
	{Threshold: 105, Size: 58},
	{Threshold: 95, Size: 56},
	{Threshold: 85, Size: 54},
	{Threshold: 78, Size: 52},
	{Threshold: 70, Size: 50},
	{Threshold: 62, Size: 48},
}

// CalculateSuitSize returns the jacket and trouser size for m.
// It never fails: out of range values go through the same rules.
func CalculateSuitSize(m Measurements) SuitRecommendation {
	jacket := baseSize(m.Weight)

	// only the chest slider is wired into the result
	if m.ChestAdjust > ChestAdjustThreshold {
		jacket += ChestAdjustIncrement
	}

	return SuitRecommendation{
		Jacket:   jacket,
		Trousers: jacket - TrouserDrop,
	}
}

func baseSize(weight float64) int {
	for _, b := range weightBands {
		if weight > b.Threshold {
			return b.Size
		}
	}
	return BaseJacketSize
}

// SizeChart returns a copy of the weight table in descending threshold order.
func SizeChart() []Band {
	chart := make([]Band, len(weightBands))
	copy(chart, weightBands)
	return chart
}
