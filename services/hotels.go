package services

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Hotel is one lodging point of interest near the destination. Every field
// is filled with a fallback when the map data omits it, so a record is never
// rejected for being incomplete.
type Hotel struct {
	Name        string       `json:"name"`
	Address     HotelAddress `json:"address"`
	Stars       string       `json:"stars"`
	Phone       string       `json:"phone"`
	Website     string       `json:"website"`
	Coordinates *Coordinates `json:"coordinates"`
}

type HotelAddress struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	Country string `json:"country"`
}

type HotelClient struct {
	baseURL    string
	httpClient *http.Client
	geo        *GeoClient

	radiusM       int
	maxCandidates int
	maxResults    int
}

var hotelClient *HotelClient

// InitHotels must run after InitGeocoder: hotel search needs coordinates.
func InitHotels() {
	hotelClient = &HotelClient{
		baseURL: env("OVERPASS_URL", "https://overpass-api.de/api/interpreter"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		geo:           geoClient,
		radiusM:       envInt("HOTEL_SEARCH_RADIUS_M", 5000),
		maxCandidates: envInt("HOTEL_MAX_CANDIDATES", 5),
		maxResults:    envInt("HOTEL_MAX_RESULTS", 3),
	}
}

func GetHotelClient() *HotelClient {
	return hotelClient
}

type overpassResponse struct {
	Elements []struct {
		Type string            `json:"type"`
		Lat  float64           `json:"lat"`
		Lon  float64           `json:"lon"`
		Tags map[string]string `json:"tags"`
	} `json:"elements"`
}

// SearchHotels finds hotels around the city via the Overpass API. If the
// city cannot be geocoded it returns an empty list without querying.
func (c *HotelClient) SearchHotels(city string) ([]Hotel, error) {
	coords, err := c.geo.CityCoordinates(city)
	if err != nil {
		return nil, err
	}
	if coords == nil {
		return []Hotel{}, nil
	}

	query := fmt.Sprintf(`[out:json][timeout:25];
(
  node["tourism"="hotel"](around:%d,%f,%f);
  way["tourism"="hotel"](around:%d,%f,%f);
  relation["tourism"="hotel"](around:%d,%f,%f);
);
out body;
>;
out skel qt;`,
		c.radiusM, coords.Lat, coords.Lon,
		c.radiusM, coords.Lat, coords.Lon,
		c.radiusM, coords.Lat, coords.Lon,
	)

	resp, err := c.httpClient.PostForm(c.baseURL, url.Values{"data": {query}})
	if err != nil {
		return nil, fmt.Errorf("hotel search failed: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("overpass API error (%d): %s", resp.StatusCode, string(body))
	}

	var raw overpassResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse overpass response: %w", err)
	}

	elements := raw.Elements
	if len(elements) > c.maxCandidates {
		elements = elements[:c.maxCandidates]
	}

	hotels := make([]Hotel, 0, c.maxResults)
	for _, el := range elements {
		// Ways and relations need geometry resolution; nodes carry their
		// own coordinates, so only nodes are considered.
		if el.Type != "node" {
			continue
		}

		tags := el.Tags
		hotels = append(hotels, Hotel{
			Name: tagOr(tags, "name", "Unnamed Hotel"),
			Address: HotelAddress{
				Street:  tagOr(tags, "addr:street", "Street not available"),
				City:    tagOr(tags, "addr:city", city),
				Country: tagOr(tags, "addr:country", "Country not available"),
			},
			Stars:       tagOr(tags, "stars", "N/A"),
			Phone:       tagOr(tags, "phone", "Phone not available"),
			Website:     tagOr(tags, "website", "Website not available"),
			Coordinates: &Coordinates{Lat: el.Lat, Lon: el.Lon},
		})

		if len(hotels) >= c.maxResults {
			break
		}
	}

	return hotels, nil
}

func tagOr(tags map[string]string, key, def string) string {
	if v, ok := tags[key]; ok && v != "" {
		return v
	}
	return def
}
