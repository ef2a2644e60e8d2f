// Package serve exposes the mood calendar as a local JSON API.
package serve

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"tableflip.dev/moodcal/pkg/app"
	"tableflip.dev/moodcal/pkg/entry"
	"tableflip.dev/moodcal/pkg/logging"
	"tableflip.dev/moodcal/pkg/mood"
)

// Config wraps the knobs that impact runtime behavior.
type Config struct {
	Addr string
	// AccessLog receives one line per request; nil disables request logging.
	AccessLog io.Writer
	// Now defaults to time.Now.
	Now func() time.Time
}

// Server exposes the Fiber application.
type Server struct {
	app *fiber.App
	svc *app.Service
	cfg Config
	log *zap.Logger
}

// NewServer wires handlers and middleware.
func NewServer(cfg Config, svc *app.Service, log *zap.Logger) *Server {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	f := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ReadTimeout:           15 * time.Second,
		WriteTimeout:          15 * time.Second,
		ErrorHandler:          errorHandler,
	})
	f.Use(recover.New())
	if cfg.AccessLog != nil {
		f.Use(logger.New(logger.Config{
			Format: "${time} | ${status} | ${latency} | ${method} ${path}\n",
			Output: cfg.AccessLog,
		}))
	}
	f.Use(cors.New())

	s := &Server{app: f, svc: svc, cfg: cfg, log: logging.OrNop(log)}
	s.registerRoutes()
	return s
}

// App returns the underlying Fiber application.
func (s *Server) App() *fiber.App {
	return s.app
}

// Run starts listening for HTTP traffic until the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	if err := s.svc.Watch(ctx); err != nil {
		s.log.Debug("store not watched", zap.Error(err))
	}
	go func() {
		<-ctx.Done()
		_ = s.app.Shutdown()
	}()

	s.log.Info("mood api listening", zap.String("addr", s.cfg.Addr))
	return s.app.Listen(s.cfg.Addr)
}

func (s *Server) registerRoutes() {
	s.app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := s.app.Group("/api/v1")
	api.Get("/calendar", s.handleCalendar)
	api.Get("/calendar/:month", s.handleCalendar)
	api.Get("/summary/:month", s.handleSummary)
	api.Get("/moods", s.handleListMoods)
	api.Get("/moods/:date", s.handleGetMood)
	api.Put("/moods/:date", s.handlePutMood)
}

type moodPayload struct {
	Mood string `json:"mood"`
}

func (s *Server) month(c *fiber.Ctx) (time.Time, error) {
	raw := c.Params("month")
	if raw == "" {
		return s.svc.InitialMonth(s.cfg.Now()), nil
	}
	d, err := entry.ParseMonth(raw)
	if err != nil {
		return time.Time{}, fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("invalid month %q, expected YYYY-MM", raw))
	}
	return d.Time, nil
}

func dateParam(c *fiber.Ctx) (entry.Date, error) {
	raw := c.Params("date")
	d, err := entry.ParseDate(raw)
	if err != nil {
		return entry.Date{}, fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", raw))
	}
	return d, nil
}

func (s *Server) handleCalendar(c *fiber.Ctx) error {
	t, err := s.month(c)
	if err != nil {
		return err
	}
	grid, err := s.svc.Month(c.UserContext(), t)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, fmt.Sprintf("build calendar: %v", err))
	}
	return c.JSON(fiber.Map{"data": grid})
}

func (s *Server) handleSummary(c *fiber.Ctx) error {
	t, err := s.month(c)
	if err != nil {
		return err
	}
	sum, err := s.svc.Summary(c.UserContext(), t)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, fmt.Sprintf("summary: %v", err))
	}
	return c.JSON(fiber.Map{"data": sum})
}

func (s *Server) handleListMoods(c *fiber.Ctx) error {
	var since, until entry.Date
	for name, dst := range map[string]*entry.Date{"since": &since, "until": &until} {
		raw := c.Query(name)
		if raw == "" {
			continue
		}
		d, err := entry.ParseDate(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("invalid %s %q, expected YYYY-MM-DD", name, raw))
		}
		*dst = d
	}
	res, err := s.svc.Report(c.UserContext(), since, until)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, fmt.Sprintf("list moods: %v", err))
	}
	return c.JSON(fiber.Map{"data": res, "meta": fiber.Map{"count": res.Total}})
}

func (s *Server) handleGetMood(c *fiber.Ctx) error {
	d, err := dateParam(c)
	if err != nil {
		return err
	}
	m, ok, err := s.svc.Mood(c.UserContext(), d)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, fmt.Sprintf("get mood: %v", err))
	}
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("no mood recorded for %s", d))
	}
	return c.JSON(fiber.Map{"data": entry.New(d, m)})
}

func (s *Server) handlePutMood(c *fiber.Ctx) error {
	d, err := dateParam(c)
	if err != nil {
		return err
	}
	var payload moodPayload
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	m, err := mood.Parse(payload.Mood)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	rec, err := s.svc.Record(c.UserContext(), d, m)
	switch {
	case errors.Is(err, app.ErrIneligible):
		return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
	case err != nil:
		return fiber.NewError(fiber.StatusInternalServerError, fmt.Sprintf("record mood: %v", err))
	}
	return c.JSON(fiber.Map{"data": rec})
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}
