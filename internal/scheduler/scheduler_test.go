package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/i474232898/garden-planner/internal/weather"
)

type fakeForecasts map[string][]weather.ForecastDay

func (f fakeForecasts) Forecast(_ context.Context, zip string) ([]weather.ForecastDay, error) {
	days, ok := f[zip]
	if !ok {
		return nil, errors.New("unknown zip")
	}
	return days, nil
}

func TestRunOnce(t *testing.T) {
	src := fakeForecasts{
		"10001": {
			{Date: "2024-07-01", Condition: "Sunny", TempMax: 91},
		},
		"98101": {
			{Date: "2024-07-01", Condition: "Light rain", Precipitation: 3},
			{Date: "2024-07-02", Condition: "Cloudy"},
		},
		"00000": {},
	}

	s := New([]string{"10001", "98101", "00000", "55555"}, time.Hour, src)
	got := s.RunOnce()

	if len(got) != 2 {
		t.Fatalf("expected advice for 2 zip codes, got %v", got)
	}
	if !got["10001"].WaterToday {
		t.Errorf("expected watering for hot dry day, got %+v", got["10001"])
	}
	if got["98101"].WaterToday {
		t.Errorf("expected no watering on rainy day, got %+v", got["98101"])
	}
}

func TestStartWithoutZipcodes(t *testing.T) {
	s := New(nil, time.Hour, fakeForecasts{})
	if err := s.Start(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s.Stop()
}
