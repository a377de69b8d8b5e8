package astro

// Ephemeris exposes the package functions as a value, so callers can
// depend on an interface and substitute their own source of positions.
// The zero value is ready to use and safe for concurrent use.
type Ephemeris struct{}

func (Ephemeris) SolarLongitude(t float64) float64 {
	return SolarLongitude(t)
}

func (Ephemeris) SolarLongitudeAtAfter(lambda, t float64) float64 {
	return SolarLongitudeAtAfter(lambda, t)
}

func (Ephemeris) EstimatePriorSolarLongitude(lambda, t float64) float64 {
	return EstimatePriorSolarLongitude(lambda, t)
}

func (Ephemeris) NewMoonBefore(t float64) float64 {
	return NewMoonBefore(t)
}

func (Ephemeris) NewMoonAtAfter(t float64) float64 {
	return NewMoonAtAfter(t)
}

func (Ephemeris) LunarPhase(t float64) float64 {
	return LunarPhase(t)
}

func (Ephemeris) LunarPhaseAtAfter(phi, t float64) float64 {
	return LunarPhaseAtAfter(phi, t)
}
