package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"github.com/i474232898/garden-planner/internal/common"
	"github.com/i474232898/garden-planner/internal/fetch"
)

// DefaultBaseURL is the WeatherAPI.com forecast endpoint.
const DefaultBaseURL = "https://api.weatherapi.com/v1/forecast.json"

// DefaultDays is the number of forecast days requested.
const DefaultDays = 7

// ErrNoData is returned when the vendor response has no forecast section.
var ErrNoData = fmt.Errorf("%w: no weather forecast data found for this ZIP code", common.ErrParse)

var errNoAPIKey = errors.New("weatherapi api key is not configured")

// Client reads daily forecasts from WeatherAPI.com.
type Client struct {
	apiKey  string
	baseURL string
	days    int
	fetcher fetch.Fetcher
}

// NewClient creates a forecast client. Empty baseURL and non-positive days
// fall back to the defaults.
func NewClient(fetcher fetch.Fetcher, apiKey, baseURL string, days int) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if days <= 0 {
		days = DefaultDays
	}
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		days:    days,
		fetcher: fetcher,
	}
}

// Every field is a pointer so a missing key can be told apart from a zero value.
type forecastPayload struct {
	Forecast *struct {
		ForecastDay *[]forecastDayPayload `json:"forecastday"`
	} `json:"forecast"`
}

type forecastDayPayload struct {
	Date *string `json:"date"`
	Day  *struct {
		MaxTempF      *float64 `json:"maxtemp_f"`
		MinTempF      *float64 `json:"mintemp_f"`
		TotalPrecipMm *float64 `json:"totalprecip_mm"`
		Condition     *struct {
			Text *string `json:"text"`
			Icon *string `json:"icon"`
		} `json:"condition"`
	} `json:"day"`
}

func (c *Client) requestURL(zipcode string) string {
	values := url.Values{}
	values.Set("key", c.apiKey)
	values.Set("q", zipcode)
	values.Set("days", strconv.Itoa(c.days))
	return fmt.Sprintf("%s?%s", c.baseURL, values.Encode())
}

// Forecast returns the vendor's daily forecast for zipcode in vendor order.
func (c *Client) Forecast(ctx context.Context, zipcode string) ([]ForecastDay, error) {
	if c.apiKey == "" {
		return nil, errNoAPIKey
	}

	body, err := c.fetcher.Fetch(ctx, c.requestURL(zipcode), nil)
	if err != nil {
		// The request URL carries the key; keep it out of the message.
		var se *fetch.StatusError
		if errors.As(err, &se) {
			return nil, fmt.Errorf("%w: failed to fetch weather data: HTTP %d", common.ErrFetch, se.StatusCode)
		}
		return nil, fmt.Errorf("%w: failed to fetch weather data", common.ErrFetch)
	}

	days, err := parseForecast(body)
	if err != nil {
		return nil, fmt.Errorf("weather for %s: %w", zipcode, err)
	}
	return days, nil
}

func parseForecast(body []byte) ([]ForecastDay, error) {
	var payload forecastPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: decoding forecast: %v", common.ErrParse, err)
	}
	if payload.Forecast == nil {
		return nil, ErrNoData
	}
	if payload.Forecast.ForecastDay == nil {
		return nil, fmt.Errorf("%w: forecast is missing forecastday", common.ErrParse)
	}

	entries := *payload.Forecast.ForecastDay
	days := make([]ForecastDay, 0, len(entries))
	for i, d := range entries {
		day, err := d.normalize()
		if err != nil {
			return nil, fmt.Errorf("%w: forecast day %d is missing %s", common.ErrParse, i, err)
		}
		days = append(days, day)
	}
	return days, nil
}

type missingField string

func (m missingField) Error() string { return string(m) }

func (d forecastDayPayload) normalize() (ForecastDay, error) {
	switch {
	case d.Date == nil:
		return ForecastDay{}, missingField("date")
	case d.Day == nil:
		return ForecastDay{}, missingField("day")
	case d.Day.MaxTempF == nil:
		return ForecastDay{}, missingField("maxtemp_f")
	case d.Day.MinTempF == nil:
		return ForecastDay{}, missingField("mintemp_f")
	case d.Day.TotalPrecipMm == nil:
		return ForecastDay{}, missingField("totalprecip_mm")
	case d.Day.Condition == nil:
		return ForecastDay{}, missingField("condition")
	case d.Day.Condition.Text == nil:
		return ForecastDay{}, missingField("condition.text")
	case d.Day.Condition.Icon == nil:
		return ForecastDay{}, missingField("condition.icon")
	}

	precip := *d.Day.TotalPrecipMm
	return ForecastDay{
		Date:          *d.Date,
		TempMax:       *d.Day.MaxTempF,
		TempMin:       *d.Day.MinTempF,
		Precipitation: precip,
		Condition:     *d.Day.Condition.Text,
		Icon:          *d.Day.Condition.Icon,
		WaterNeeded:   WaterNeeded(precip),
	}, nil
}
