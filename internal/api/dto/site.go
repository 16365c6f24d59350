package dto

type SiteProfileResponse struct {
	Name            string `json:"name"`
	LoadTime        int    `json:"load_time"`
	TravelTime      int    `json:"travel_time"`
	DischargeTime   int    `json:"discharge_time"`
	BufferTime      int    `json:"buffer_time"`
	QuantityPerTrip int    `json:"quantity_per_trip"`
}

type ListSiteProfilesResponse struct {
	Sites []SiteProfileResponse `json:"sites"`
}
