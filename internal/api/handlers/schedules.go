package handlers

import (
	"bytes"
	"errors"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	"transit-mixer-scheduler/internal/adapters/export"
	"transit-mixer-scheduler/internal/api/dto"
	"transit-mixer-scheduler/internal/domain"
	"transit-mixer-scheduler/internal/ports"
	"transit-mixer-scheduler/internal/report"
	"transit-mixer-scheduler/internal/services"
)

type ScheduleHandler struct {
	Planner  *services.Planner
	Defaults domain.Parameters
}

// Create computes a schedule and returns it as JSON.
func (h *ScheduleHandler) Create(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	schedule, ok := h.plan(w, r)
	if !ok {
		return
	}

	writeJSON(w, r, http.StatusOK, toScheduleResponse(schedule))
}

// Export computes a schedule and returns it as a downloadable table.
// The format query parameter selects csv (default) or xlsx.
func (h *ScheduleHandler) Export(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = "csv"
	}
	exporter, err := export.ForFormat(format)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "format must be csv or xlsx")
		return
	}

	schedule, ok := h.plan(w, r)
	if !ok {
		return
	}

	// Buffer so a failed export can still produce a JSON error response.
	var buf bytes.Buffer
	if err := exporter.Export(&buf, schedule.Trips); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Str("format", format).Msg("export schedule failed")
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	w.Header().Set("Content-Type", exporter.ContentType())
	w.Header().Set("Content-Disposition", `attachment; filename="`+export.FileName(exporter)+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		zerolog.Ctx(r.Context()).Warn().Err(err).Msg("write export body failed")
	}
}

func (h *ScheduleHandler) plan(w http.ResponseWriter, r *http.Request) (*domain.Schedule, bool) {
	var req dto.ScheduleRequest
	if err := decodeJSON(r, &req); err != nil {
		if errors.Is(err, errTrailingData) {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return nil, false
		}
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return nil, false
	}

	schedule, err := h.Planner.PlanSchedule(r.Context(), services.PlanScheduleRequest{
		Site:     req.Site,
		Defaults: h.Defaults,
		Overrides: domain.ParameterOverrides{
			StartTime:       req.StartTime,
			TotalQuantity:   req.TotalQuantity,
			LoadTime:        req.LoadTime,
			TravelTime:      req.TravelTime,
			DischargeTime:   req.DischargeTime,
			BufferTime:      req.BufferTime,
			QuantityPerTrip: req.QuantityPerTrip,
			NumVehicles:     req.NumVehicles,
		},
		Source: "api",
	})
	switch {
	case err == nil:
		return schedule, true
	case errors.Is(err, domain.ErrInvalidParameters):
		writeError(w, r, http.StatusBadRequest, err.Error())
	case errors.Is(err, ports.ErrProfileNotFound):
		writeError(w, r, http.StatusNotFound, "site profile not found")
	default:
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("plan schedule failed")
		writeError(w, r, http.StatusInternalServerError, "internal server error")
	}
	return nil, false
}

func toScheduleResponse(s *domain.Schedule) dto.ScheduleResponse {
	p := s.Parameters
	res := dto.ScheduleResponse{
		Parameters: dto.ParametersResponse{
			StartTime:       p.StartTime,
			TotalQuantity:   p.TotalQuantity,
			LoadTime:        p.LoadTime,
			TravelTime:      p.TravelTime,
			DischargeTime:   p.DischargeTime,
			BufferTime:      p.BufferTime,
			QuantityPerTrip: p.QuantityPerTrip,
			NumVehicles:     p.NumVehicles,
		},
		DeliveredQuantity:   s.DeliveredQuantity,
		UndeliveredQuantity: s.UndeliveredQuantity,
		SiteFinishTime:      s.SiteFinishTime,
		SiteFinishClock:     report.FormatClock(s.SiteFinishTime),
		FinishTime:          s.FinishTime,
		FinishClock:         report.FormatClock(s.FinishTime),
		Trips:               make([]dto.TripResponse, 0, len(s.Trips)),
	}

	for _, t := range s.Trips {
		res.Trips = append(res.Trips, dto.TripResponse{
			TripNo:              t.TripNo,
			VehicleNo:           t.VehicleNo,
			WorkStart:           t.WorkStart,
			WorkStartClock:      report.FormatClock(t.WorkStart),
			PlantDeparture:      t.PlantDeparture,
			PlantDepartureClock: report.FormatClock(t.PlantDeparture),
			SiteArrival:         t.SiteArrival,
			SiteArrivalClock:    report.FormatClock(t.SiteArrival),
			DischargeStart:      t.DischargeStart,
			DischargeStartClock: report.FormatClock(t.DischargeStart),
			SiteDeparture:       t.SiteDeparture,
			SiteDepartureClock:  report.FormatClock(t.SiteDeparture),
			BufferTime:          t.BufferTime,
			PlantArrival:        t.PlantArrival,
			PlantArrivalClock:   report.FormatClock(t.PlantArrival),
			RoundTrip:           t.RoundTrip,
			QuantityPerTrip:     t.QuantityPerTrip,
			CumulativeQuantity:  t.CumulativeQuantity,
		})
	}

	return res
}
