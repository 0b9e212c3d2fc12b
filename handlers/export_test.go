package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripatlas/services"
)

func TestExport(t *testing.T) {
	f := &fakeUpstreams{}
	r := startPipeline(t, f)

	temp := 16.5
	plan := PlanResponse{
		PlanID:      "test-plan",
		Destination: "Tokyo",
		Origin:      "London",
		Days:        3,
		Month:       "April",
		Weather: WeatherSection{
			Available:    true,
			TemperatureC: &temp,
			Description:  "clear sky",
		},
		Narrative: "Day 1: Asakusa.",
		Hotels: HotelSection{
			Available: true,
			Hotels: []services.Hotel{{
				Name:    "Hotel A",
				Address: services.HotelAddress{Street: "1 Chome", City: "Tokyo", Country: "JP"},
				Stars:   "4",
				Phone:   "Phone not available",
				Website: "Website not available",
			}},
		},
		Flights: FlightSection{
			Available:       true,
			OriginCode:      "LHR",
			DestinationCode: "HND",
			Flights: []services.Flight{{
				Airline:      "Japan Airlines",
				FlightNumber: "44",
				Departure:    "2024-04-01T09:30:00+00:00",
				Arrival:      "2024-04-02T07:55:00+09:00",
			}},
		},
	}

	body, err := json.Marshal(plan)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/export", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "tripatlas-travel-brief.pdf")
	assert.Equal(t, "%PDF", rec.Body.String()[:4])
}

func TestExportMissingDestination(t *testing.T) {
	f := &fakeUpstreams{}
	r := startPipeline(t, f)

	req := httptest.NewRequest(http.MethodPost, "/api/export", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
