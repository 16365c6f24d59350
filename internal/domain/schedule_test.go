package domain

import "testing"

func TestNewScheduleSummary(t *testing.T) {
	p := validParameters()
	p.TotalQuantity = 45

	trips := []Trip{
		{TripNo: 1, VehicleNo: 1, SiteDeparture: 345, PlantArrival: 365, CumulativeQuantity: 10},
		{TripNo: 2, VehicleNo: 2, SiteDeparture: 390, PlantArrival: 410, CumulativeQuantity: 20},
		{TripNo: 3, VehicleNo: 1, SiteDeparture: 410, PlantArrival: 430, CumulativeQuantity: 30},
		{TripNo: 4, VehicleNo: 2, SiteDeparture: 455, PlantArrival: 475, CumulativeQuantity: 40},
	}

	s := NewSchedule(p, trips)

	if s.DeliveredQuantity != 40 {
		t.Errorf("DeliveredQuantity = %d, want 40", s.DeliveredQuantity)
	}
	if s.UndeliveredQuantity != 5 {
		t.Errorf("UndeliveredQuantity = %d, want 5", s.UndeliveredQuantity)
	}
	if s.SiteFinishTime != 455 {
		t.Errorf("SiteFinishTime = %d, want 455", s.SiteFinishTime)
	}
	if s.FinishTime != 475 {
		t.Errorf("FinishTime = %d, want 475", s.FinishTime)
	}
}

func TestNewScheduleFinishIsLatestReturn(t *testing.T) {
	trips := []Trip{
		{TripNo: 1, SiteDeparture: 500, PlantArrival: 560, CumulativeQuantity: 6},
		{TripNo: 2, SiteDeparture: 480, PlantArrival: 540, CumulativeQuantity: 12},
	}

	s := NewSchedule(Parameters{StartTime: 400, TotalQuantity: 12}, trips)

	if s.FinishTime != 560 {
		t.Errorf("FinishTime = %d, want 560", s.FinishTime)
	}
	if s.SiteFinishTime != 500 {
		t.Errorf("SiteFinishTime = %d, want 500", s.SiteFinishTime)
	}
}

func TestNewScheduleEmpty(t *testing.T) {
	p := validParameters()
	p.TotalQuantity = 8

	s := NewSchedule(p, []Trip{})

	if len(s.Trips) != 0 {
		t.Fatalf("expected no trips, got %d", len(s.Trips))
	}
	if s.DeliveredQuantity != 0 || s.UndeliveredQuantity != 8 {
		t.Errorf("delivered=%d undelivered=%d, want 0 and 8", s.DeliveredQuantity, s.UndeliveredQuantity)
	}
	if s.FinishTime != 300 || s.SiteFinishTime != 300 {
		t.Errorf("finish=%d siteFinish=%d, want both 300", s.FinishTime, s.SiteFinishTime)
	}
}

func TestTripPhasesOrder(t *testing.T) {
	trip := Trip{WorkStart: 1, PlantDeparture: 2, SiteArrival: 3, DischargeStart: 4, SiteDeparture: 5, PlantArrival: 6}

	got := trip.Phases()
	want := [6]int{1, 2, 3, 4, 5, 6}
	if got != want {
		t.Fatalf("Phases = %v, want %v", got, want)
	}
}
