package services

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"tripatlas/logger"
)

// Weather is the current-conditions snapshot shown to the user.
type Weather struct {
	TemperatureC float64 `json:"temperature_c"`
	Description  string  `json:"description"`
}

type WeatherClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

var weatherClient *WeatherClient

func InitWeather() {
	weatherClient = &WeatherClient{
		apiKey:  os.Getenv("OPENWEATHER_API_KEY"),
		baseURL: env("OPENWEATHER_BASE_URL", "http://api.openweathermap.org/data/2.5"),
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}

	if weatherClient.apiKey == "" {
		logger.InfoLogger.Warn("OPENWEATHER_API_KEY not set — weather lookups will fail at call time")
	}
}

func GetWeatherClient() *WeatherClient {
	return weatherClient
}

func (c *WeatherClient) Configured() bool {
	return c.apiKey != ""
}

type openWeatherResponse struct {
	Main struct {
		Temp float64 `json:"temp"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
}

// CurrentWeather fetches current conditions for a city in metric units.
func (c *WeatherClient) CurrentWeather(city string) (*Weather, error) {
	params := url.Values{}
	params.Set("q", city)
	params.Set("appid", c.apiKey)
	params.Set("units", "metric")

	resp, err := c.httpClient.Get(c.baseURL + "/weather?" + params.Encode())
	if err != nil {
		return nil, fmt.Errorf("weather request failed: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("weather API error (%d): %s", resp.StatusCode, string(body))
	}

	var raw openWeatherResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse weather response: %w", err)
	}

	w := &Weather{TemperatureC: raw.Main.Temp}
	if len(raw.Weather) > 0 {
		w.Description = raw.Weather[0].Description
	}
	return w, nil
}
