package bmi

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Accepted input ranges, both exclusive.
const (
	MaxWeightKg = 500.0
	MaxHeightM  = 3.0
)

// UserMessage is shown to the user whenever an input is rejected.
const UserMessage = "Please enter valid numbers for weight (0-500 kg) and height (0-300 cm)."

// ErrInvalidInput is the cause of every InputError.
var ErrInvalidInput = errors.New("invalid input")

// Input field names.
const (
	FieldWeight = "weight"
	FieldHeight = "height"
)

// InputError reports an unparsable or out-of-range form field.
type InputError struct {
	Field string
	Value string
	Err   error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Field, e.Value, e.Err)
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// IsInputError reports whether err is, or wraps, an InputError.
func IsInputError(err error) bool {
	var inputErr *InputError
	return errors.As(err, &inputErr)
}

// Result is a successful BMI computation.
type Result struct {
	WeightKg float64
	HeightM  float64
	BMI      float64
	Category Category
}

// Calculate validates raw weight (kg) and height (cm) text and computes the
// rounded BMI and its category. Invalid input yields an *InputError.
func Calculate(weightText, heightText string) (Result, error) {
	weight, err := parseField(FieldWeight, weightText)
	if err != nil {
		return Result{}, err
	}
	heightCm, err := parseField(FieldHeight, heightText)
	if err != nil {
		return Result{}, err
	}
	height := heightCm / 100

	// Negated comparisons so NaN is rejected too.
	if !(weight > 0 && weight < MaxWeightKg) {
		return Result{}, &InputError{
			Field: FieldWeight,
			Value: weightText,
			Err:   errors.Wrapf(ErrInvalidInput, "must be between 0 and %g kg", MaxWeightKg),
		}
	}
	if !(height > 0 && height < MaxHeightM) {
		return Result{}, &InputError{
			Field: FieldHeight,
			Value: heightText,
			Err:   errors.Wrapf(ErrInvalidInput, "must be between 0 and %g cm", MaxHeightM*100),
		}
	}

	value := Compute(weight, height)
	return Result{
		WeightKg: weight,
		HeightM:  height,
		BMI:      value,
		Category: Categorize(value),
	}, nil
}

// Compute returns weight / height², rounded to two decimals.
func Compute(weightKg, heightM float64) float64 {
	return Round2(weightKg / (heightM * heightM))
}

// Round2 rounds v to two decimal places. The exact binary value is rounded,
// with exact ties going to the even digit, so 22.125 becomes 22.12.
func Round2(v float64) float64 {
	r, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
	return r
}

func parseField(field, text string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0, &InputError{
			Field: field,
			Value: text,
			Err:   errors.Wrap(ErrInvalidInput, "not a number"),
		}
	}
	return v, nil
}
