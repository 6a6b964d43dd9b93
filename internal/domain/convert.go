package domain

const kgToLb = 2.2046226218

// Weight units. Records are always stored in kilograms.
const (
	UnitKg = "kg"
	UnitLb = "lb"
)

// ConvertWeight converts a weight value between "kg" and "lb".
// Returns v unchanged if from == to or if the units are unrecognised.
func ConvertWeight(v float64, from, to string) float64 {
	if from == to {
		return v
	}
	if from == UnitKg && to == UnitLb {
		return v * kgToLb
	}
	if from == UnitLb && to == UnitKg {
		return v / kgToLb
	}
	return v
}

// ConvertChartPoints returns a copy of points with the mass fields (weight
// and muscle mass) expressed in unit. BMI and body fat are unitless here.
func ConvertChartPoints(points []ChartPoint, unit string) []ChartPoint {
	out := make([]ChartPoint, len(points))
	for i, p := range points {
		p.Weight = ConvertWeight(p.Weight, UnitKg, unit)
		if p.MuscleMass != nil {
			m := ConvertWeight(*p.MuscleMass, UnitKg, unit)
			p.MuscleMass = &m
		}
		out[i] = p
	}
	return out
}
