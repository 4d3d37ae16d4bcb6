package httpapi

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/i474232898/weather-data-analyzer/internal/weather"
)

var validate = validator.New()

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, service *weather.Service) {
	app.Get("/health", func(c *fiber.Ctx) error {
		resp := fiber.Map{
			"status":  "ok",
			"service": "weather-data-analyzer",
		}
		ds, err := service.Dataset()
		switch {
		case errors.Is(err, weather.ErrNotLoaded):
			resp["status"] = "loading"
		case err != nil:
			return err
		default:
			resp["dataset"] = ds
			resp["records"] = service.RecordCount()
		}
		return c.JSON(resp)
	})

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	v1 := app.Group("/api/v1")

	v1.Get("/months", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"months": weather.MonthNames()})
	})

	v1.Get("/kinds", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"kinds":      weather.Kinds(),
			"thresholds": service.Thresholds(),
		})
	})

	v1.Get("/reports/:kind", func(c *fiber.Ctx) error {
		var req reportQuery
		if err := req.bind(c); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		rep := service.RunQuery(req.toQuery())
		if rep.Status == weather.StatusInvalidMonth || rep.Status == weather.StatusNoMonthSelected {
			return fiber.NewError(fiber.StatusBadRequest, rep.Text)
		}

		if req.Format == "text" {
			return c.SendString(rep.Text)
		}
		return c.JSON(rep)
	})

	v1.Post("/reload", func(c *fiber.Ctx) error {
		ds, err := service.Reload(c.UserContext())
		if err != nil {
			return fiber.NewError(fiber.StatusBadGateway, "failed to reload weather data")
		}
		return c.JSON(fiber.Map{
			"dataset": ds,
			"records": len(ds.Records),
		})
	})
}

// reportQuery holds path and query parameters for the reports endpoint.
type reportQuery struct {
	Kind      string   `validate:"required,oneof=average-temperature hot-days cold-days rainy-days extreme-temperatures humidity-analysis"`
	Month     string   `validate:"required"`
	Threshold *float64 `validate:"omitempty"`
	Format    string   `validate:"omitempty,oneof=json text"`
}

func (q *reportQuery) bind(c *fiber.Ctx) error {
	// Kind ends up as a metric label, so it must not alias fiber's request buffer.
	q.Kind = utils.CopyString(c.Params("kind"))
	q.Month = utils.CopyString(c.Query("month"))
	q.Format = strings.ToLower(c.Query("format"))

	if q.Month == "" {
		return fiber.NewError(fiber.StatusBadRequest, "No month selected")
	}

	if raw := c.Query("threshold"); raw != "" {
		t, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(t) || math.IsInf(t, 0) {
			return errors.New("threshold must be a finite number")
		}
		q.Threshold = &t
	}
	return nil
}

func (q reportQuery) toQuery() weather.Query {
	month, name := weather.ResolveMonth(q.Month)
	return weather.Query{
		Kind:      weather.Kind(q.Kind),
		Month:     month,
		MonthName: name,
		Threshold: q.Threshold,
	}
}
