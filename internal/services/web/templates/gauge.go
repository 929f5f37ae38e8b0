package templates

import (
	"math"
	"strconv"
)

// GaugeRadius is the ring radius on the gauge's 100x100 canvas.
const GaugeRadius = 45.0

// RingGauge holds the stroke parameters for a circular progress ring.
type RingGauge struct {
	Percentage    int
	Radius        float64
	Circumference float64
	DashOffset    float64
}

// NewRingGauge derives the dash length and dash offset for percentage.
// The input is not clamped: values outside [0, 100] overshoot the ring.
func NewRingGauge(percentage int) RingGauge {
	circumference := 2 * math.Pi * GaugeRadius
	offset := circumference - (float64(percentage)/100)*circumference
	return RingGauge{
		Percentage:    percentage,
		Radius:        GaugeRadius,
		Circumference: circumference,
		DashOffset:    offset,
	}
}

func formatSVGNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
