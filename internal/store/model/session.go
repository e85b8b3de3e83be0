package model

import (
	"encoding/json"
	"time"

	"github.com/4kternos/fitting-room/internal/sizing"
	"github.com/google/uuid"
)

// FittingSession holds the form state of one customer going through the fitting room.
// The recommendation is not stored: it is derived from the measurements on every read.
type FittingSession struct {
	ID          uuid.UUID `json:"id" gorm:"primaryKey;column:id;type:VARCHAR(255);"`
	Height      float64   `json:"height"`
	Weight      float64   `json:"weight"`
	Age         float64   `json:"age"`
	ChestAdjust int       `json:"chestAdjust"`
	WaistAdjust int       `json:"waistAdjust"`
	HipAdjust   int       `json:"hipAdjust"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	ExpiresAt   time.Time `json:"expiresAt" gorm:"not null;index:fitting_sessions_expires_at_idx"`
}

func NewFittingSession(id uuid.UUID, m sizing.Measurements, expiresAt time.Time) FittingSession {
	s := FittingSession{ID: id, ExpiresAt: expiresAt}
	s.SetMeasurements(m)
	return s
}

func (s FittingSession) Measurements() sizing.Measurements {
	return sizing.Measurements{
		Height:      s.Height,
		Weight:      s.Weight,
		Age:         s.Age,
		ChestAdjust: s.ChestAdjust,
		WaistAdjust: s.WaistAdjust,
		HipAdjust:   s.HipAdjust,
	}
}

func (s *FittingSession) SetMeasurements(m sizing.Measurements) {
	s.Height = m.Height
	s.Weight = m.Weight
	s.Age = m.Age
	s.ChestAdjust = m.ChestAdjust
	s.WaistAdjust = m.WaistAdjust
	s.HipAdjust = m.HipAdjust
}

// Expired reports whether the session is past its expiration at now.
func (s FittingSession) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

func (s FittingSession) String() string {
	val, _ := json.Marshal(s)
	return string(val)
}
