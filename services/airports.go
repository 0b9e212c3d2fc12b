package services

import "strings"

// AirportCodeResolver maps a city name to an IATA airport code. The static
// table below is a stand-in for a full airport dataset; keeping it behind
// this interface lets a real lookup replace it without touching callers.
type AirportCodeResolver interface {
	Code(city string) string
}

type StaticAirportCodes struct {
	codes map[string]string
}

func NewStaticAirportCodes() *StaticAirportCodes {
	return &StaticAirportCodes{codes: map[string]string{
		"tokyo":     "HND",
		"osaka":     "KIX",
		"kyoto":     "KIX", // Kyoto is served by Osaka's airport
		"delhi":     "DEL",
		"mumbai":    "BOM",
		"udaipur":   "UDR",
		"london":    "LHR",
		"paris":     "CDG",
		"new york":  "JFK",
		"singapore": "SIN",
		"bangkok":   "BKK",
	}}
}

// Code returns the mapped IATA code, or the first three letters of the
// city uppercased. The fallback is approximate and may not be a real code.
func (s *StaticAirportCodes) Code(city string) string {
	city = strings.TrimSpace(city)
	if code, ok := s.codes[strings.ToLower(city)]; ok {
		return code
	}

	r := []rune(strings.ToUpper(city))
	if len(r) > 3 {
		r = r[:3]
	}
	return string(r)
}
