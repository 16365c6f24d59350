package handlers

import (
	"net/http"

	"github.com/rs/zerolog"

	"transit-mixer-scheduler/internal/api/dto"
	"transit-mixer-scheduler/internal/ports"
)

// SiteHandler exposes read-only site profile endpoints.
type SiteHandler struct {
	Repo ports.SiteProfileRepository
}

func (h *SiteHandler) List(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	profiles, err := h.Repo.ListProfiles(r.Context())
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("list site profiles failed")
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListSiteProfilesResponse{
		Sites: make([]dto.SiteProfileResponse, 0, len(profiles)),
	}
	for _, p := range profiles {
		res.Sites = append(res.Sites, dto.SiteProfileResponse{
			Name:            p.Name,
			LoadTime:        p.LoadTime,
			TravelTime:      p.TravelTime,
			DischargeTime:   p.DischargeTime,
			BufferTime:      p.BufferTime,
			QuantityPerTrip: p.QuantityPerTrip,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
