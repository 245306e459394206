package feature

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Scale conversion floors and the default dynamic-range limit, matching the
// conventions of common spectrogram tooling.
const (
	AminAmplitude = 1e-5
	AminPower     = 1e-10
	DefaultTopDB  = 80.0
)

// MaxRef returns the maximum of x for use as a dB reference, or 1 when x is
// empty or non-positive throughout.
func MaxRef(x []float64) float64 {
	if len(x) == 0 {
		return 1
	}
	m := floats.Max(x)
	if m <= 0 {
		return 1
	}
	return m
}

// AmplitudeToDB converts amplitude values to decibels relative to ref,
// flooring inputs at AminAmplitude. topDB > 0 limits the output dynamic
// range to [max - topDB, max].
func AmplitudeToDB(x []float64, ref, topDB float64) []float64 {
	return toDB(x, ref, topDB, AminAmplitude, 20)
}

// PowerToDB converts power values to decibels relative to ref, flooring
// inputs at AminPower. topDB > 0 limits the output dynamic range.
func PowerToDB(x []float64, ref, topDB float64) []float64 {
	return toDB(x, ref, topDB, AminPower, 10)
}

// DBToAmplitude inverts AmplitudeToDB for the given reference.
func DBToAmplitude(db []float64, ref float64) []float64 {
	out := make([]float64, len(db))
	for i, v := range db {
		out[i] = ref * math.Pow(10, v/20)
	}
	return out
}

// DBToPower inverts PowerToDB for the given reference.
func DBToPower(db []float64, ref float64) []float64 {
	out := make([]float64, len(db))
	for i, v := range db {
		out[i] = ref * math.Pow(10, v/10)
	}
	return out
}

func toDB(x []float64, ref, topDB, amin, factor float64) []float64 {
	if ref <= 0 {
		ref = 1
	}
	refDB := factor * math.Log10(math.Max(amin, ref))

	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = factor*math.Log10(math.Max(amin, v)) - refDB
	}

	if topDB > 0 && len(out) > 0 {
		limit := floats.Max(out) - topDB
		for i, v := range out {
			if v < limit {
				out[i] = limit
			}
		}
	}
	return out
}
