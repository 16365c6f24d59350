package dto

// Every field is optional: nil keeps the value from the site profile or the
// server defaults.
type ScheduleRequest struct {
	Site            string `json:"site"`
	StartTime       *int   `json:"start_time"`
	TotalQuantity   *int   `json:"total_quantity"`
	LoadTime        *int   `json:"load_time"`
	TravelTime      *int   `json:"travel_time"`
	DischargeTime   *int   `json:"discharge_time"`
	BufferTime      *int   `json:"buffer_time"`
	QuantityPerTrip *int   `json:"quantity_per_trip"`
	NumVehicles     *int   `json:"num_vehicles"`
}

type ParametersResponse struct {
	StartTime       int `json:"start_time"`
	TotalQuantity   int `json:"total_quantity"`
	LoadTime        int `json:"load_time"`
	TravelTime      int `json:"travel_time"`
	DischargeTime   int `json:"discharge_time"`
	BufferTime      int `json:"buffer_time"`
	QuantityPerTrip int `json:"quantity_per_trip"`
	NumVehicles     int `json:"num_vehicles"`
}

type TripResponse struct {
	TripNo              int    `json:"trip_no"`
	VehicleNo           int    `json:"vehicle_no"`
	WorkStart           int    `json:"work_start"`
	WorkStartClock      string `json:"work_start_clock"`
	PlantDeparture      int    `json:"plant_departure"`
	PlantDepartureClock string `json:"plant_departure_clock"`
	SiteArrival         int    `json:"site_arrival"`
	SiteArrivalClock    string `json:"site_arrival_clock"`
	DischargeStart      int    `json:"discharge_start"`
	DischargeStartClock string `json:"discharge_start_clock"`
	SiteDeparture       int    `json:"site_departure"`
	SiteDepartureClock  string `json:"site_departure_clock"`
	BufferTime          int    `json:"buffer_time"`
	PlantArrival        int    `json:"plant_arrival"`
	PlantArrivalClock   string `json:"plant_arrival_clock"`
	RoundTrip           int    `json:"round_trip"`
	QuantityPerTrip     int    `json:"quantity_per_trip"`
	CumulativeQuantity  int    `json:"cumulative_quantity"`
}

type ScheduleResponse struct {
	Parameters          ParametersResponse `json:"parameters"`
	DeliveredQuantity   int                `json:"delivered_quantity"`
	UndeliveredQuantity int                `json:"undelivered_quantity"`
	SiteFinishTime      int                `json:"site_finish_time"`
	SiteFinishClock     string             `json:"site_finish_clock"`
	FinishTime          int                `json:"finish_time"`
	FinishClock         string             `json:"finish_clock"`
	Trips               []TripResponse     `json:"trips"`
}
