package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAirportCodeKnownCities(t *testing.T) {
	r := NewStaticAirportCodes()

	assert.Equal(t, "HND", r.Code("Tokyo"))
	assert.Equal(t, "HND", r.Code("TOKYO"))
	assert.Equal(t, "HND", r.Code("tokyo"))
	assert.Equal(t, "LHR", r.Code("London"))
	assert.Equal(t, "JFK", r.Code("New York"))
	// Kyoto has no airport of its own; it maps to Osaka's.
	assert.Equal(t, "KIX", r.Code("Kyoto"))
	assert.Equal(t, "KIX", r.Code("Osaka"))
}

func TestAirportCodeFallback(t *testing.T) {
	r := NewStaticAirportCodes()

	assert.Equal(t, "LAG", r.Code("Lagos"))
	assert.Equal(t, "BER", r.Code("Berlin"))
	assert.Equal(t, "LAG", r.Code("  Lagos  "))
}

func TestAirportCodeShortName(t *testing.T) {
	r := NewStaticAirportCodes()

	assert.Equal(t, "UB", r.Code("Ub"))
	assert.Equal(t, "", r.Code(""))
}
