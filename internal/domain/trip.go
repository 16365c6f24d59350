package domain

// One plant -> site -> plant cycle of a transit mixer.
// Field order follows the exported schedule columns.
// A Trip is produced once by the scheduler and never mutated afterwards.
type Trip struct {
	TripNo             int
	VehicleNo          int
	WorkStart          int
	PlantDeparture     int
	SiteArrival        int
	DischargeStart     int
	SiteDeparture      int
	BufferTime         int
	PlantArrival       int
	RoundTrip          int
	QuantityPerTrip    int
	CumulativeQuantity int
}

// Phases returns the six phase timestamps in chronological order.
func (t Trip) Phases() [6]int {
	return [6]int{
		t.WorkStart,
		t.PlantDeparture,
		t.SiteArrival,
		t.DischargeStart,
		t.SiteDeparture,
		t.PlantArrival,
	}
}
