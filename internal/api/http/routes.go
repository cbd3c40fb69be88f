package httpapi

import (
	"context"
	"math/rand"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/i474232898/garden-planner/internal/garden"
	"github.com/i474232898/garden-planner/internal/planting"
	"github.com/i474232898/garden-planner/internal/weather"
)

var validate = validator.New()

// PlantingSource returns the planting calendar rows for a zip code.
type PlantingSource interface {
	Records(ctx context.Context, zipcode string) ([]planting.Record, error)
}

// ForecastSource returns the daily forecast for a zip code.
type ForecastSource interface {
	Forecast(ctx context.Context, zipcode string) ([]weather.ForecastDay, error)
}

// Deps are the components served by the API.
type Deps struct {
	Planting PlantingSource
	Weather  ForecastSource
	Garden   garden.Store
}

var tips = []string{
	"Water your garden early in the morning to reduce evaporation.",
	"Companion planting can help deter pests naturally.",
	"Rotating crops each season helps prevent disease and pest issues.",
	"Mulch helps retain moisture and suppresses weeds.",
	"Consider your garden's sun exposure when choosing planting locations.",
}

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, deps Deps) {
	api := app.Group("/api")

	api.Get("/planting-data/:zipcode", func(c *fiber.Ctx) error {
		zip, err := zipcodeParam(c)
		if err != nil {
			return err
		}

		var q plantingQuery
		if err := q.bind(c); err != nil {
			return err
		}

		records, err := deps.Planting.Records(c.UserContext(), zip)
		if err != nil {
			return err
		}
		return success(c, q.filter().Apply(records))
	})

	api.Get("/weather/:zipcode", func(c *fiber.Ctx) error {
		zip, err := zipcodeParam(c)
		if err != nil {
			return err
		}

		days, err := deps.Weather.Forecast(c.UserContext(), zip)
		if err != nil {
			return err
		}
		return success(c, days)
	})

	api.Get("/weather/:zipcode/advice", func(c *fiber.Ctx) error {
		zip, err := zipcodeParam(c)
		if err != nil {
			return err
		}

		days, err := deps.Weather.Forecast(c.UserContext(), zip)
		if err != nil {
			return err
		}
		advice, err := weather.Advise(days)
		if err != nil {
			return err
		}
		return success(c, advice)
	})

	api.Get("/garden", func(c *fiber.Ctx) error {
		entries, err := deps.Garden.List(c.UserContext())
		if err != nil {
			return err
		}
		return success(c, entries)
	})

	api.Post("/garden", func(c *fiber.Ctx) error {
		// Fiber reuses the body buffer once the handler returns.
		entry := garden.CropEntry(append([]byte(nil), c.Body()...))

		entries, err := deps.Garden.Append(c.UserContext(), entry)
		if err != nil {
			return err
		}
		return success(c, entries)
	})

	api.Get("/tips", func(c *fiber.Ctx) error {
		return success(c, fiber.Map{"tip": tips[rand.Intn(len(tips))]})
	})
}

// zipcodeParam returns the :zipcode path parameter if it is a 5-digit zip code.
func zipcodeParam(c *fiber.Ctx) (string, error) {
	zip := strings.TrimSpace(c.Params("zipcode"))
	if err := validate.Var(zip, "required,len=5,number"); err != nil {
		return "", fiber.NewError(fiber.StatusBadRequest, "please enter a valid 5-digit ZIP code")
	}
	return strings.Clone(zip), nil
}

// plantingQuery holds the optional crop filter for the planting endpoint.
type plantingQuery struct {
	Search   string `query:"search" validate:"max=64"`
	Category string `query:"category" validate:"omitempty,oneof=all vegetables herbs fruits"`
}

func (q *plantingQuery) bind(c *fiber.Ctx) error {
	if err := c.QueryParser(q); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	q.Search = strings.TrimSpace(q.Search)
	q.Category = strings.ToLower(strings.TrimSpace(q.Category))

	if err := validate.Struct(q); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid planting filter: "+err.Error())
	}
	return nil
}

func (q plantingQuery) filter() planting.Filter {
	return planting.Filter{Search: q.Search, Category: q.Category}
}
