package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"tripatlas/logger"
	"tripatlas/middleware"
	"tripatlas/services"
)

type PlanRequest struct {
	Destination string `json:"destination" binding:"required"`
	Days        int    `json:"days" binding:"required,min=1,max=14"`
	Month       string `json:"month" binding:"required,oneof=January February March April May June July August September October November December"`
	Origin      string `json:"origin" binding:"required"`
}

// Each soft section carries either data or a notice; a failed section never
// blocks its siblings.
type WeatherSection struct {
	Available    bool     `json:"available"`
	Notice       string   `json:"notice,omitempty"`
	TemperatureC *float64 `json:"temperature_c,omitempty"`
	Description  string   `json:"description,omitempty"`
}

type HotelSection struct {
	Available bool             `json:"available"`
	Notice    string           `json:"notice,omitempty"`
	Hotels    []services.Hotel `json:"hotels"`
}

type FlightSection struct {
	Available       bool              `json:"available"`
	Notice          string            `json:"notice,omitempty"`
	OriginCode      string            `json:"origin_code"`
	DestinationCode string            `json:"destination_code"`
	Flights         []services.Flight `json:"flights"`
}

type PlanResponse struct {
	PlanID      string         `json:"plan_id"`
	Destination string         `json:"destination"`
	Origin      string         `json:"origin"`
	Days        int            `json:"days"`
	Month       string         `json:"month"`
	Weather     WeatherSection `json:"weather"`
	Narrative   string         `json:"narrative"`
	Hotels      HotelSection   `json:"hotels"`
	Flights     FlightSection  `json:"flights"`
}

const (
	hotelNotice  = "Could not fetch hotel data. Please check hotel booking websites directly."
	flightNotice = "Could not fetch real-time flight data. Please check airline websites directly."
)

// PlanHandler runs the full aggregation pipeline for one trip request:
// weather, then the AI narrative, then hotels (geocoding inside), then
// flights (airport code resolution inside). All calls are sequential.
func PlanHandler(c *gin.Context) {
	var req PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	req.Destination = strings.TrimSpace(req.Destination)
	req.Origin = strings.TrimSpace(req.Origin)

	planID := c.GetString(middleware.RequestIDKey)
	if planID == "" {
		planID = uuid.New().String()
	}

	resp := PlanResponse{
		PlanID:      planID,
		Destination: req.Destination,
		Origin:      req.Origin,
		Days:        req.Days,
		Month:       req.Month,
	}

	// Weather (soft failure)
	weather, err := services.GetWeatherClient().CurrentWeather(req.Destination)
	if err != nil {
		logger.ErrorLogger.WithField("plan_id", planID).Error("weather fetch failed: ", err)
		resp.Weather = WeatherSection{Notice: "Weather data not available."}
	} else {
		resp.Weather = WeatherSection{
			Available:    true,
			TemperatureC: &weather.TemperatureC,
			Description:  weather.Description,
		}
	}

	// Narrative (hard failure: abort the request)
	narrative, err := services.GetAIClient().GenerateTripPlan(req.Destination, req.Days, req.Month)
	if err != nil {
		logger.ErrorLogger.WithField("plan_id", planID).Error("trip plan generation failed: ", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to generate trip plan: " + err.Error()})
		return
	}
	resp.Narrative = narrative

	// Hotels (soft failure; empty when the city cannot be geocoded)
	hotels, err := services.GetHotelClient().SearchHotels(req.Destination)
	if err != nil {
		logger.ErrorLogger.WithField("plan_id", planID).Error("hotel search failed: ", err)
		resp.Hotels = HotelSection{Notice: hotelNotice, Hotels: []services.Hotel{}}
	} else if len(hotels) == 0 {
		resp.Hotels = HotelSection{Notice: hotelNotice, Hotels: []services.Hotel{}}
	} else {
		resp.Hotels = HotelSection{Available: true, Hotels: hotels}
	}

	// Flights (soft failure)
	fc := services.GetFlightClient()
	originCode := fc.AirportCode(req.Origin)
	destCode := fc.AirportCode(req.Destination)

	flights, err := fc.SearchFlights(originCode, destCode)
	section := FlightSection{
		OriginCode:      originCode,
		DestinationCode: destCode,
		Flights:         []services.Flight{},
	}
	if err != nil {
		logger.ErrorLogger.WithField("plan_id", planID).Error("flight search failed: ", err)
		section.Notice = flightNotice
	} else if len(flights) == 0 {
		section.Notice = flightNotice
	} else {
		section.Available = true
		section.Flights = flights
	}
	resp.Flights = section

	c.JSON(http.StatusOK, resp)
}
