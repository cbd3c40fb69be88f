package scheduler

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/i474232898/garden-planner/internal/weather"
)

// ForecastSource returns the daily forecast for a zip code.
type ForecastSource interface {
	Forecast(ctx context.Context, zipcode string) ([]weather.ForecastDay, error)
}

// Scheduler periodically computes the watering advice for configured zip
// codes and logs it.
type Scheduler struct {
	scheduler *gocron.Scheduler
	forecasts ForecastSource
	zipcodes  []string
	interval  time.Duration
}

// New creates a new Scheduler.
func New(zipcodes []string, interval time.Duration, forecasts ForecastSource) *Scheduler {
	s := gocron.NewScheduler(time.UTC)
	return &Scheduler{
		scheduler: s,
		forecasts: forecasts,
		zipcodes:  zipcodes,
		interval:  interval,
	}
}

// Start schedules the periodic job and starts the underlying scheduler.
func (s *Scheduler) Start() error {
	if len(s.zipcodes) == 0 {
		log.Println("scheduler: no zip codes configured; nothing to schedule")
		return nil
	}

	minutes := int(s.interval.Minutes())
	if minutes <= 0 {
		minutes = 360
	}

	_, err := s.scheduler.Every(minutes).Minutes().Do(func() {
		log.Println("scheduler: running watering advice job")
		s.RunOnce()
		log.Println("scheduler: completed watering advice job")
	})
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

// RunOnce checks every zip code and returns the advice that could be computed.
func (s *Scheduler) RunOnce() map[string]weather.Advice {
	var (
		wg  sync.WaitGroup
		mu  sync.Mutex
		out = make(map[string]weather.Advice, len(s.zipcodes))
	)

	for _, zip := range s.zipcodes {
		zip := zip // per-iteration copy (pre-Go 1.22 loop semantics)
		wg.Add(1)
		go func() {
			defer wg.Done()

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			days, err := s.forecasts.Forecast(ctx, zip)
			if err != nil {
				log.Printf("scheduler: forecast failed for %s: %v", zip, err)
				return
			}
			advice, err := weather.Advise(days)
			if err != nil {
				log.Printf("scheduler: no advice for %s: %v", zip, err)
				return
			}
			log.Printf("scheduler: %s %s water_today=%t (%s)", zip, advice.Date, advice.WaterToday, advice.Reason)

			mu.Lock()
			out[zip] = advice
			mu.Unlock()
		}()
	}
	wg.Wait()

	return out
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
