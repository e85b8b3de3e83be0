package validator

import (
	"fmt"
	"math"
	"reflect"

	"github.com/go-playground/validator/v10"
)

// Range is a closed interval of accepted values.
type Range struct {
	Min float64
	Max float64
}

func (r Range) Contains(v float64) bool {
	return !math.IsNaN(v) && v >= r.Min && v <= r.Max
}

func (r Range) String() string {
	return fmt.Sprintf("between %g and %g", r.Min, r.Max)
}

// Ranges offered by the fitting room form.
var (
	HeightRange = Range{Min: 100, Max: 250}
	WeightRange = Range{Min: 40, Max: 200}
	AgeRange    = Range{Min: 10, Max: 100}
	SliderRange = Range{Min: -5, Max: 5}
)

var rangeTags = map[string]Range{
	"height": HeightRange,
	"weight": WeightRange,
	"age":    AgeRange,
	"slider": SliderRange,
}

func registerFn(tag string, fn func(fl validator.FieldLevel) bool) func(v *validator.Validate) {
	return func(v *validator.Validate) {
		_ = v.RegisterValidation(tag, fn)
	}
}

func rangeValidator(r Range) func(fl validator.FieldLevel) bool {
	return func(fl validator.FieldLevel) bool {
		field := fl.Field()
		switch field.Kind() {
		case reflect.Float32, reflect.Float64:
			return r.Contains(field.Float())
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return r.Contains(float64(field.Int()))
		default:
			return false
		}
	}
}

func NewMeasurementsValidationRules() []ValidationRule {
	rules := make([]ValidationRule, 0, len(rangeTags))
	for _, tag := range []string{"height", "weight", "age", "slider"} {
		rules = append(rules, ValidationRule{Rule: registerFn(tag, rangeValidator(rangeTags[tag]))})
	}
	return rules
}

func fieldMessage(fe validator.FieldError) string {
	if r, ok := rangeTags[fe.Tag()]; ok {
		return fmt.Sprintf("%s must be %s", fe.Field(), r)
	}
	return fmt.Sprintf("%s failed on the '%s' rule", fe.Field(), fe.Tag())
}
