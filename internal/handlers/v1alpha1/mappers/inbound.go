package mappers

import (
	"github.com/4kternos/fitting-room/api/v1alpha1"
	"github.com/4kternos/fitting-room/internal/service"
	"github.com/4kternos/fitting-room/internal/sizing"
)

func MeasurementsFormApi(resource v1alpha1.Measurements) sizing.Measurements {
	return sizing.Measurements{
		Height:      resource.Height,
		Weight:      resource.Weight,
		Age:         resource.Age,
		ChestAdjust: resource.ChestAdjust,
		WaistAdjust: resource.WaistAdjust,
		HipAdjust:   resource.HipAdjust,
	}
}

func MeasurementsUpdateFormApi(resource v1alpha1.MeasurementsUpdate) service.MeasurementsUpdate {
	return service.MeasurementsUpdate{
		Height:      resource.Height,
		Weight:      resource.Weight,
		Age:         resource.Age,
		ChestAdjust: resource.ChestAdjust,
		WaistAdjust: resource.WaistAdjust,
		HipAdjust:   resource.HipAdjust,
	}
}
