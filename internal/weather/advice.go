package weather

import (
	"fmt"
	"strings"

	"github.com/i474232898/garden-planner/internal/common"
)

const (
	heavyRainMM = 5.0
	hotDayF     = 85.0
)

// Advice is the watering recommendation for the first forecast day.
type Advice struct {
	Date       string    `json:"date"`
	WaterToday bool      `json:"water_today"`
	Reason     string    `json:"reason"`
	Category   Condition `json:"category"`
}

// Categorize maps a vendor condition text to a coarse Condition.
func Categorize(text string) Condition {
	t := strings.ToLower(text)
	switch {
	case t == "":
		return ConditionUnknown
	case common.HasAny(t, "thunder", "storm"):
		return ConditionStorm
	case common.HasAny(t, "rain", "shower", "drizzle"):
		return ConditionRain
	case common.HasAny(t, "snow", "sleet", "blizzard"):
		return ConditionSnow
	case common.HasAny(t, "cloud", "overcast"):
		return ConditionCloudy
	case common.HasAny(t, "sun", "clear"):
		return ConditionClear
	case strings.Contains(t, "wind"):
		return ConditionWind
	default:
		return ConditionUnknown
	}
}

// Advise decides whether the garden needs water today. days[0] is today and
// days[1], when present, is tomorrow.
func Advise(days []ForecastDay) (Advice, error) {
	if len(days) == 0 {
		return Advice{}, fmt.Errorf("%w: no forecast days", common.ErrParse)
	}

	today := days[0]
	a := Advice{Date: today.Date, Category: Categorize(today.Condition)}

	switch {
	case common.ContainsFold(today.Condition, "rain"):
		a.Reason = "rain is expected today"
	case today.Precipitation > heavyRainMM:
		a.Reason = fmt.Sprintf("%.1fmm of precipitation is expected today", today.Precipitation)
	case today.TempMax > hotDayF:
		a.WaterToday = true
		a.Reason = fmt.Sprintf("hot day (%.0f°F) without rain", today.TempMax)
	case len(days) > 1 && !common.ContainsFold(days[1].Condition, "rain") && days[1].Precipitation < heavyRainMM:
		a.WaterToday = true
		a.Reason = "no rain expected today or tomorrow"
	default:
		a.Reason = "rain is expected soon"
	}
	return a, nil
}
