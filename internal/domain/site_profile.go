package domain

// Stored duration preset for a work site.
// A profile carries the site-specific fields of Parameters; quantities to pour,
// start time and fleet size come from the request.
type SiteProfile struct {
	Name            string
	LoadTime        int
	TravelTime      int
	DischargeTime   int
	BufferTime      int
	QuantityPerTrip int
}

// ApplyTo copies the profile durations and per-trip quantity into p.
func (s SiteProfile) ApplyTo(p Parameters) Parameters {
	p.LoadTime = s.LoadTime
	p.TravelTime = s.TravelTime
	p.DischargeTime = s.DischargeTime
	p.BufferTime = s.BufferTime
	p.QuantityPerTrip = s.QuantityPerTrip
	return p
}
