package report

import (
	"strconv"

	"transit-mixer-scheduler/internal/domain"
)

// Column titles of the exported schedule, in Trip field order.
var Headers = []string{
	"Trip No.",
	"Vehicle No.",
	"Work Start Time",
	"Plant Start Time",
	"Site Reach Time",
	"Pump Start Time",
	"Site Left Time After Pumping",
	"Buffer Time",
	"Plant Reach Time",
	"Round Trip Time",
	"Batch Qty per Trip",
	"Cumulative Qty",
}

// Presentation copy of a Trip: phase timestamps as HH:MM, everything else
// as plain integers.
type Row struct {
	TripNo             int
	VehicleNo          int
	WorkStart          string
	PlantDeparture     string
	SiteArrival        string
	DischargeStart     string
	SiteDeparture      string
	BufferTime         int
	PlantArrival       string
	RoundTrip          int
	QuantityPerTrip    int
	CumulativeQuantity int
}

// NewRow formats one trip. The trip itself is left untouched.
func NewRow(t domain.Trip) Row {
	return Row{
		TripNo:             t.TripNo,
		VehicleNo:          t.VehicleNo,
		WorkStart:          FormatClock(t.WorkStart),
		PlantDeparture:     FormatClock(t.PlantDeparture),
		SiteArrival:        FormatClock(t.SiteArrival),
		DischargeStart:     FormatClock(t.DischargeStart),
		SiteDeparture:      FormatClock(t.SiteDeparture),
		BufferTime:         t.BufferTime,
		PlantArrival:       FormatClock(t.PlantArrival),
		RoundTrip:          t.RoundTrip,
		QuantityPerTrip:    t.QuantityPerTrip,
		CumulativeQuantity: t.CumulativeQuantity,
	}
}

func Rows(trips []domain.Trip) []Row {
	rows := make([]Row, 0, len(trips))
	for _, t := range trips {
		rows = append(rows, NewRow(t))
	}
	return rows
}

// Cells returns the row as strings aligned with Headers.
func (r Row) Cells() []string {
	return []string{
		strconv.Itoa(r.TripNo),
		strconv.Itoa(r.VehicleNo),
		r.WorkStart,
		r.PlantDeparture,
		r.SiteArrival,
		r.DischargeStart,
		r.SiteDeparture,
		strconv.Itoa(r.BufferTime),
		r.PlantArrival,
		strconv.Itoa(r.RoundTrip),
		strconv.Itoa(r.QuantityPerTrip),
		strconv.Itoa(r.CumulativeQuantity),
	}
}
