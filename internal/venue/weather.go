package venue

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"time"
)

// Weather is the current-conditions summary shown in the board header.
type Weather struct {
	TemperatureC int    `json:"temperature_c"`
	Condition    string `json:"condition"`
}

// WeatherClient fetches current conditions from open-meteo.
type WeatherClient struct {
	baseURL  string
	lat, lon float64
	http     *http.Client
}

func NewWeatherClient(lat, lon float64) *WeatherClient {
	return &WeatherClient{
		baseURL: "https://api.open-meteo.com",
		lat:     lat,
		lon:     lon,
		http: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type meteoResponse struct {
	CurrentWeather struct {
		Temperature float64 `json:"temperature"`
		WeatherCode int     `json:"weathercode"`
	} `json:"current_weather"`
}

// Current fetches the live weather. Failures are expected and
// non-fatal: the board simply omits the indicator.
func (c *WeatherClient) Current(ctx context.Context) (Weather, error) {
	url := fmt.Sprintf(
		"%s/v1/forecast?latitude=%.4f&longitude=%.4f&current_weather=true",
		c.baseURL, c.lat, c.lon,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Weather{}, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return Weather{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Weather{}, fmt.Errorf("weather: unexpected status %d", resp.StatusCode)
	}

	var body meteoResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Weather{}, fmt.Errorf("weather: decode: %w", err)
	}

	return Weather{
		TemperatureC: int(math.Round(body.CurrentWeather.Temperature)),
		Condition:    condition(body.CurrentWeather.WeatherCode),
	}, nil
}

// condition buckets the WMO weather code into the handful of icons the
// board can draw.
func condition(code int) string {
	switch {
	case code <= 1:
		return "clear"
	case code <= 3:
		return "cloudy"
	case code == 45 || code == 48:
		return "fog"
	case code >= 71 && code <= 77:
		return "snow"
	case code >= 95:
		return "storm"
	default:
		return "rain"
	}
}
