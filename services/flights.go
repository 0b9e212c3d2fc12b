package services

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"

	"tripatlas/logger"
)

// Flight is one scheduled flight between two airports. Fields missing from
// the upstream payload are defaulted independently.
type Flight struct {
	Airline      string `json:"airline"`
	FlightNumber string `json:"flight_number"`
	Departure    string `json:"departure"`
	Arrival      string `json:"arrival"`
}

type FlightClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	airports   AirportCodeResolver
	maxResults int
}

var flightClient *FlightClient

func InitFlights() {
	flightClient = &FlightClient{
		apiKey:  os.Getenv("AVIATIONSTACK_API_KEY"),
		baseURL: env("AVIATIONSTACK_BASE_URL", "http://api.aviationstack.com/v1"),
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		airports:   NewStaticAirportCodes(),
		maxResults: envInt("FLIGHT_MAX_RESULTS", 3),
	}

	if flightClient.apiKey == "" {
		logger.InfoLogger.Warn("AVIATIONSTACK_API_KEY not set — flight lookups will fail at call time")
	}
}

func GetFlightClient() *FlightClient {
	return flightClient
}

func (c *FlightClient) Configured() bool {
	return c.apiKey != ""
}

// AirportCode resolves a city name to an IATA code.
func (c *FlightClient) AirportCode(city string) string {
	return c.airports.Code(city)
}

type aviationStackResponse struct {
	Data []struct {
		Airline struct {
			Name string `json:"name"`
		} `json:"airline"`
		Flight struct {
			Number string `json:"number"`
		} `json:"flight"`
		Departure struct {
			Scheduled string `json:"scheduled"`
		} `json:"departure"`
		Arrival struct {
			Scheduled string `json:"scheduled"`
		} `json:"arrival"`
	} `json:"data"`
}

// SearchFlights queries flights between two IATA codes, capped at the
// configured result count.
func (c *FlightClient) SearchFlights(originCode, destCode string) ([]Flight, error) {
	params := url.Values{}
	params.Set("access_key", c.apiKey)
	params.Set("dep_iata", originCode)
	params.Set("arr_iata", destCode)
	params.Set("limit", strconv.Itoa(c.maxResults))

	resp, err := c.httpClient.Get(c.baseURL + "/flights?" + params.Encode())
	if err != nil {
		return nil, fmt.Errorf("flight search failed: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("flights API error (%d): %s", resp.StatusCode, string(body))
	}

	var raw aviationStackResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse flights response: %w", err)
	}

	data := raw.Data
	if len(data) > c.maxResults {
		data = data[:c.maxResults]
	}

	flights := make([]Flight, 0, len(data))
	for _, f := range data {
		flights = append(flights, Flight{
			Airline:      orDefault(f.Airline.Name, "Unknown Airline"),
			FlightNumber: orDefault(f.Flight.Number, "Unknown"),
			Departure:    orDefault(f.Departure.Scheduled, "Unknown"),
			Arrival:      orDefault(f.Arrival.Scheduled, "Unknown"),
		})
	}
	return flights, nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
