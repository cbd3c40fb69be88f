package weather

// Condition represents a normalized high-level weather condition.
type Condition string

const (
	ConditionUnknown Condition = "unknown"
	ConditionClear   Condition = "clear"
	ConditionCloudy  Condition = "cloudy"
	ConditionRain    Condition = "rain"
	ConditionSnow    Condition = "snow"
	ConditionStorm   Condition = "storm"
	ConditionWind    Condition = "wind"
)

// WaterThresholdMM is the daily precipitation above which WaterNeeded is "No".
const WaterThresholdMM = 1.5

// ForecastDay is one day of the normalized forecast.
type ForecastDay struct {
	Date          string  `json:"date"`
	TempMax       float64 `json:"temp_max"`      // Fahrenheit
	TempMin       float64 `json:"temp_min"`      // Fahrenheit
	Precipitation float64 `json:"precipitation"` // mm
	Condition     string  `json:"condition"`
	Icon          string  `json:"icon"`
	WaterNeeded   string  `json:"water_needed"`
}

// WaterNeeded labels a day's precipitation exactly as the garden UI expects:
// "No" above WaterThresholdMM, "Yes" otherwise.
func WaterNeeded(precipMM float64) string {
	if precipMM > WaterThresholdMM {
		return "No"
	}
	return "Yes"
}
