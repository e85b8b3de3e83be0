package mappers

import (
	"github.com/4kternos/fitting-room/api/v1alpha1"
	"github.com/4kternos/fitting-room/internal/service"
	"github.com/4kternos/fitting-room/internal/sizing"
)

func MeasurementsToApi(m sizing.Measurements) v1alpha1.Measurements {
	return v1alpha1.Measurements{
		Height:      m.Height,
		Weight:      m.Weight,
		Age:         m.Age,
		ChestAdjust: m.ChestAdjust,
		WaistAdjust: m.WaistAdjust,
		HipAdjust:   m.HipAdjust,
	}
}

func RecommendationToApi(r sizing.SuitRecommendation) v1alpha1.Recommendation {
	return v1alpha1.Recommendation{
		Jacket:   r.Jacket,
		Trousers: r.Trousers,
		Summary:  sizing.Summary(r),
	}
}

func SessionToApi(f *service.Fitting) v1alpha1.Session {
	return v1alpha1.Session{
		Id:           f.Session.ID,
		Measurements: MeasurementsToApi(f.Session.Measurements()),
		Recommendation: v1alpha1.Recommendation{
			Jacket:   f.Recommendation.Jacket,
			Trousers: f.Recommendation.Trousers,
			Summary:  f.Summary,
		},
		CreatedAt: f.Session.CreatedAt,
		UpdatedAt: f.Session.UpdatedAt,
		ExpiresAt: f.Session.ExpiresAt,
	}
}

func SizeChartToApi(bands []sizing.Band) v1alpha1.SizeChart {
	chart := v1alpha1.SizeChart{
		Bands:                make([]v1alpha1.SizeBand, 0, len(bands)),
		BaseSize:             sizing.BaseJacketSize,
		TrouserDrop:          sizing.TrouserDrop,
		ChestAdjustThreshold: sizing.ChestAdjustThreshold,
		ChestAdjustIncrement: sizing.ChestAdjustIncrement,
	}
	for _, b := range bands {
		chart.Bands = append(chart.Bands, v1alpha1.SizeBand{MinWeight: b.Threshold, Size: b.Size})
	}
	return chart
}
