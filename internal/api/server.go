// Package api exposes the tracker's REST interface over Fiber. Handlers
// translate HTTP requests into storage calls and map the storage error
// taxonomy onto status codes; they hold no business rules of their own.
package api

import (
	"time"

	sentryfiber "github.com/getsentry/sentry-go/fiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/onegoal/tracker/internal/sqlite"
	"github.com/onegoal/tracker/pkg/types"
)

// Server wires the Fiber app, the storage layer, and the logger.
type Server struct {
	app   *fiber.App
	store *sqlite.Store
	log   *zap.Logger
	cfg   types.Config
}

// New builds the server with its middleware chain and routes registered.
func New(cfg types.Config, store *sqlite.Store, log *zap.Logger) *Server {
	s := &Server{store: store, log: log, cfg: cfg}

	s.app = fiber.New(fiber.Config{
		AppName:      "tracker",
		ErrorHandler: s.errorHandler,
	})

	if cfg.SentryDSN != "" {
		s.app.Use(sentryfiber.New(sentryfiber.Options{
			Repanic:         true,
			WaitForDelivery: false,
		}))
	}
	s.app.Use(recover.New())
	s.app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	s.app.Use(s.requestLogger())
	if cfg.CORSOrigins != "" {
		s.app.Use(cors.New(cors.Config{AllowOrigins: cfg.CORSOrigins}))
	} else {
		s.app.Use(cors.New())
	}

	s.routes()
	return s
}

func (s *Server) routes() {
	s.app.Get("/", s.handleRoot)
	s.app.Get("/health", s.handleHealth)

	v1 := s.app.Group("/api/v1")

	apps := v1.Group("/applications")
	apps.Get("/", s.handleListApplications)
	apps.Post("/", s.handleCreateApplication)
	apps.Get("/:id", s.handleGetApplication)
	apps.Put("/:id", s.handleUpdateApplication)
	apps.Delete("/:id", s.handleDeleteApplication)

	companies := v1.Group("/companies")
	companies.Get("/", s.handleListCompanies)
	companies.Post("/", s.handleCreateCompany)
	companies.Get("/:id", s.handleGetCompany)
	companies.Put("/:id", s.handleUpdateCompany)
	companies.Delete("/:id", s.handleDeleteCompany)

	clients := v1.Group("/clients")
	clients.Get("/", s.handleListClients)
	clients.Post("/", s.handleCreateClient)
	clients.Get("/:id", s.handleGetClient)
	clients.Put("/:id", s.handleUpdateClient)
	clients.Delete("/:id", s.handleDeleteClient)

	contacts := v1.Group("/contacts")
	contacts.Get("/", s.handleListContacts)
	contacts.Post("/", s.handleCreateContact)
	contacts.Get("/:id", s.handleGetContact)
	contacts.Put("/:id", s.handleUpdateContact)
	contacts.Delete("/:id", s.handleDeleteContact)
	contacts.Post("/:id/emails", s.handleAddContactEmail)
	contacts.Post("/:id/phones", s.handleAddContactPhone)

	notes := v1.Group("/notes")
	notes.Get("/", s.handleListNotes)
	notes.Post("/", s.handleCreateNote)
	notes.Get("/:id", s.handleGetNote)
	notes.Put("/:id", s.handleUpdateNote)
	notes.Delete("/:id", s.handleDeleteNote)

	sites := v1.Group("/job-search-sites")
	sites.Get("/", s.handleListJobSearchSites)
	sites.Post("/", s.handleCreateJobSearchSite)
	sites.Get("/:id", s.handleGetJobSearchSite)
	sites.Put("/:id", s.handleUpdateJobSearchSite)
	sites.Delete("/:id", s.handleDeleteJobSearchSite)

	defaults := v1.Group("/defaults")
	defaults.Get("/", s.handleListDefaultValues)
	defaults.Post("/", s.handleCreateDefaultValue)
	defaults.Get("/:id", s.handleGetDefaultValue)
	defaults.Put("/:id", s.handleUpdateDefaultValue)
	defaults.Delete("/:id", s.handleDeleteDefaultValue)
}

// requestLogger logs one line per request with the correlation id.
func (s *Server) requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		rid, _ := c.Locals(requestid.ConfigDefault.ContextKey).(string)
		s.log.Info("request",
			zap.String("request_id", rid),
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("latency", time.Since(start)),
		)
		return err
	}
}

// Listen serves until Shutdown is called.
func (s *Server) Listen() error {
	return s.app.Listen(s.cfg.Addr)
}

// Shutdown drains in-flight requests and stops the listener.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// App exposes the Fiber app for in-process testing.
func (s *Server) App() *fiber.App {
	return s.app
}

func (s *Server) handleRoot(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"name":        "tracker",
		"environment": s.cfg.Environment,
	})
}

func (s *Server) handleHealth(c *fiber.Ctx) error {
	if err := s.store.Ping(); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "degraded",
		})
	}
	return c.JSON(fiber.Map{"status": "ok"})
}
