// Package bmi computes and classifies Body Mass Index values.
package bmi

// Category is the health category a BMI value falls into.
type Category string

const (
	CategoryUnderweight Category = "Under weight"
	CategoryNormal      Category = "Normal weight"
	CategoryOverweight  Category = "Overweight"
	CategoryObesity     Category = "Obesity"
)

// Category band edges.
const (
	ThresholdUnderweight = 18.5
	ThresholdNormalHigh  = 24.9
	ThresholdOverweight  = 25.0
	ThresholdObesity     = 29.9
)

// Categories lists every category in ascending BMI order.
var Categories = []Category{
	CategoryUnderweight,
	CategoryNormal,
	CategoryOverweight,
	CategoryObesity,
}

// Categorize maps a BMI value to its category.
//
// The bands are half-open and leave [24.9, 25) without a branch of its own,
// so values there land in the final Obesity case along with everything
// from 29.9 upwards.
func Categorize(bmi float64) Category {
	if bmi < ThresholdUnderweight {
		return CategoryUnderweight
	}
	if bmi >= ThresholdUnderweight && bmi < ThresholdNormalHigh {
		return CategoryNormal
	}
	if bmi >= ThresholdOverweight && bmi < ThresholdObesity {
		return CategoryOverweight
	}
	return CategoryObesity
}

func (c Category) String() string {
	return string(c)
}
