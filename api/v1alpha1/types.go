// Package v1alpha1 holds the wire types of the fitting room HTTP API.
package v1alpha1

import (
	"time"

	"github.com/google/uuid"
)

// Measurements defines model for Measurements.
type Measurements struct {
	Height      float64 `json:"height" validate:"height"`
	Weight      float64 `json:"weight" validate:"weight"`
	Age         float64 `json:"age" validate:"age"`
	ChestAdjust int     `json:"chestAdjust" validate:"slider"`
	WaistAdjust int     `json:"waistAdjust" validate:"slider"`
	HipAdjust   int     `json:"hipAdjust" validate:"slider"`
}

// MeasurementsUpdate defines model for MeasurementsUpdate. Absent fields are left unchanged.
type MeasurementsUpdate struct {
	Height      *float64 `json:"height,omitempty" validate:"omitempty,height"`
	Weight      *float64 `json:"weight,omitempty" validate:"omitempty,weight"`
	Age         *float64 `json:"age,omitempty" validate:"omitempty,age"`
	ChestAdjust *int     `json:"chestAdjust,omitempty" validate:"omitempty,slider"`
	WaistAdjust *int     `json:"waistAdjust,omitempty" validate:"omitempty,slider"`
	HipAdjust   *int     `json:"hipAdjust,omitempty" validate:"omitempty,slider"`
}

// Recommendation defines model for Recommendation.
type Recommendation struct {
	Jacket   int    `json:"jacket" yaml:"jacket"`
	Trousers int    `json:"trousers" yaml:"trousers"`
	Summary  string `json:"summary" yaml:"summary"`
}

// Session defines model for Session.
type Session struct {
	Id             uuid.UUID      `json:"id"`
	Measurements   Measurements   `json:"measurements"`
	Recommendation Recommendation `json:"recommendation"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
	ExpiresAt      time.Time      `json:"expiresAt"`
}

// SizeBand defines model for SizeBand.
type SizeBand struct {
	// MinWeight is exclusive: a weight strictly above it selects Size.
	MinWeight float64 `json:"minWeight" yaml:"minWeight"`
	Size      int     `json:"size" yaml:"size"`
}

// SizeChart defines model for SizeChart.
type SizeChart struct {
	Bands                []SizeBand `json:"bands" yaml:"bands"`
	BaseSize             int        `json:"baseSize" yaml:"baseSize"`
	TrouserDrop          int        `json:"trouserDrop" yaml:"trouserDrop"`
	ChestAdjustThreshold int        `json:"chestAdjustThreshold" yaml:"chestAdjustThreshold"`
	ChestAdjustIncrement int        `json:"chestAdjustIncrement" yaml:"chestAdjustIncrement"`
}

// Info defines model for Info.
type Info struct {
	GitCommit   string `json:"gitCommit"`
	VersionName string `json:"versionName"`
}

// Error defines model for Error.
type Error struct {
	Message   string `json:"message"`
	RequestId string `json:"requestId"`
}
