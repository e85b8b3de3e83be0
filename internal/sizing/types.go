package sizing

// Measurements is the record collected by the fitting room form.
//
// Height, Age, WaistAdjust and HipAdjust are carried for the form but do not take part in the calculation.
type Measurements struct {
	Height      float64 `json:"height"`      // cm
	Weight      float64 `json:"weight"`      // kg
	Age         float64 `json:"age"`         // years
	ChestAdjust int     `json:"chestAdjust"` // slider, -5..5
	WaistAdjust int     `json:"waistAdjust"` // slider, -5..5
	HipAdjust   int     `json:"hipAdjust"`   // slider, -5..5
}

// SuitRecommendation is the size pair derived from a Measurements record.
type SuitRecommendation struct {
	Jacket   int `json:"jacket"`
	Trousers int `json:"trousers"`
}

// Band is one row of the weight table: a weight strictly above Threshold selects Size.
type Band struct {
	Threshold float64 `json:"threshold"`
	Size      int     `json:"size"`
}

// DefaultMeasurements returns the values the form starts with.
func DefaultMeasurements() Measurements {
	return Measurements{
		Height: 175,
		Weight: 80,
		Age:    30,
	}
}
