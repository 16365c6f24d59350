package services

import "transit-mixer-scheduler/internal/domain"

// availability tracks, per vehicle label, the minute the vehicle is back at the plant.
// It lives for a single ComputeTrips call.
type availability []int

func newAvailability(numVehicles, start int) availability {
	a := make(availability, numVehicles)
	for i := range a {
		a[i] = start
	}
	return a
}

func (a availability) at(vehicleNo int) int { return a[vehicleNo-1] }

func (a availability) release(vehicleNo, at int) { a[vehicleNo-1] = at }

// Upper bound on the trips slice capacity reserved up front; longer runs grow
// it on append.
const maxPrealloc = 1024

// ComputeTrips derives the full trip sequence for p in a single pass.
//
// Trips are labeled round-robin 1..NumVehicles. A trip labeled 1 starts when
// vehicle 1 is back at the plant (StartTime for the first one); every other
// trip starts when the preceding trip leaves the site, whichever vehicle ran
// it. Availability is recorded for every label but only read for label 1.
//
// Quantity below one full trip is dropped. ComputeTrips never fails: inputs
// that cannot produce a trip (including non-positive quantities or fleet size)
// yield an empty, non-nil slice.
func ComputeTrips(p domain.Parameters) []domain.Trip {
	if p.QuantityPerTrip <= 0 || p.NumVehicles <= 0 || p.TotalQuantity <= 0 {
		return []domain.Trip{}
	}

	n := p.TotalQuantity / p.QuantityPerTrip
	trips := make([]domain.Trip, 0, min(n, maxPrealloc))
	fleet := newAvailability(p.NumVehicles, p.StartTime)
	cumulative := 0

	for i := 0; i < n; i++ {
		vehicleNo := i%p.NumVehicles + 1

		var workStart int
		if vehicleNo == 1 {
			workStart = fleet.at(vehicleNo)
		} else {
			workStart = trips[i-1].SiteDeparture
		}

		plantDeparture := workStart + p.LoadTime
		siteArrival := plantDeparture + p.TravelTime
		dischargeStart := siteArrival + p.BufferTime
		siteDeparture := dischargeStart + p.DischargeTime
		plantArrival := siteDeparture + p.TravelTime

		fleet.release(vehicleNo, plantArrival)
		cumulative += p.QuantityPerTrip

		trips = append(trips, domain.Trip{
			TripNo:             i + 1,
			VehicleNo:          vehicleNo,
			WorkStart:          workStart,
			PlantDeparture:     plantDeparture,
			SiteArrival:        siteArrival,
			DischargeStart:     dischargeStart,
			SiteDeparture:      siteDeparture,
			BufferTime:         p.BufferTime,
			PlantArrival:       plantArrival,
			RoundTrip:          plantArrival - workStart,
			QuantityPerTrip:    p.QuantityPerTrip,
			CumulativeQuantity: cumulative,
		})
	}

	return trips
}
