package domain

// Represents the outcome of one scheduling run.
// Trips is the ordered trip sequence; the remaining fields summarize it.
type Schedule struct {
	Parameters          Parameters
	Trips               []Trip
	DeliveredQuantity   int
	UndeliveredQuantity int
	SiteFinishTime      int
	FinishTime          int
}

// NewSchedule summarizes trips computed from p.
// Quantity that does not fill a whole trip is reported as undelivered.
func NewSchedule(p Parameters, trips []Trip) *Schedule {
	s := &Schedule{
		Parameters:     p,
		Trips:          trips,
		SiteFinishTime: p.StartTime,
		FinishTime:     p.StartTime,
	}

	if n := len(trips); n > 0 {
		s.DeliveredQuantity = trips[n-1].CumulativeQuantity
		// Label-1 trips can start before their predecessor returns, so the
		// last trip is not guaranteed to be the last one back at the plant.
		for _, t := range trips {
			if t.PlantArrival > s.FinishTime {
				s.FinishTime = t.PlantArrival
			}
			if t.SiteDeparture > s.SiteFinishTime {
				s.SiteFinishTime = t.SiteDeparture
			}
		}
	}

	if p.TotalQuantity > s.DeliveredQuantity {
		s.UndeliveredQuantity = p.TotalQuantity - s.DeliveredQuantity
	}

	return s
}
