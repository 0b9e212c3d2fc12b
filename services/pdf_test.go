package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratePDFBytes(t *testing.T) {
	data := PDFData{
		Destination: "Tokyo",
		Origin:      "London",
		Days:        3,
		Month:       "April",
		Weather:     &Weather{TemperatureC: 16.5, Description: "clear sky"},
		Narrative:   "Day 1: Asakusa and Senso-ji.",
		Hotels: []Hotel{{
			Name:    "Hotel A",
			Address: HotelAddress{Street: "1 Chome", City: "Tokyo", Country: "JP"},
			Stars:   "4",
			Phone:   "+81 3 0000 0000",
			Website: "https://example.com",
		}},
		Flights: []Flight{{
			Airline:      "Japan Airlines",
			FlightNumber: "44",
			Departure:    "2024-04-01T09:30:00+00:00",
			Arrival:      "2024-04-02T07:55:00+09:00",
		}},
	}

	out, err := GeneratePDFBytes(data)
	require.NoError(t, err)
	assert.True(t, len(out) > 500)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestGeneratePDFBytesEmptySections(t *testing.T) {
	out, err := GeneratePDFBytes(PDFData{Destination: "Tokyo", Origin: "London", Days: 3, Month: "April"})
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(out[:4]))
}
