package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/rs/zerolog"

	"notes-backend/config"
	"notes-backend/repository"
)

// Server owns the Fiber app and the repository it serves.
type Server struct {
	cfg  *config.Config
	log  zerolog.Logger
	repo repository.NotesRepository
	app  *fiber.App
}

func NewServer(cfg *config.Config, log zerolog.Logger, repo repository.NotesRepository) *Server {
	s := &Server{cfg: cfg, log: log, repo: repo}

	s.app = fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ErrorHandler: s.errorHandler,
	})

	s.app.Use(recover.New())
	s.app.Use(requestid.New())
	// Allow all origins during development; restrict for prod as needed.
	s.app.Use(cors.New())
	s.app.Use(s.requestLogger)

	s.routes()
	return s
}

func (s *Server) routes() {
	s.app.Get("/", s.HandleHealth)
	s.app.Get("/docs/usage", s.HandleUsage)

	notes := s.app.Group("/notes")
	notes.Get("/", s.HandleListNotes)
	notes.Post("/", s.HandleCreateNote)
	notes.Get("/:id", s.HandleGetNote)
	notes.Put("/:id", s.HandleUpdateNote)
	notes.Delete("/:id", s.HandleDeleteNote)
}

// Listen serves on addr until Shutdown is called.
func (s *Server) Listen(addr string) error {
	return s.app.Listen(addr)
}

func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// App exposes the underlying Fiber app, used by tests via app.Test.
func (s *Server) App() *fiber.App {
	return s.app
}

func (s *Server) requestLogger(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()

	status := c.Response().StatusCode()
	if err != nil {
		status = fiber.StatusInternalServerError
		var e *fiber.Error
		if errors.As(err, &e) {
			status = e.Code
		}
	}

	s.log.Info().
		Str("request_id", requestID(c)).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Int("status", status).
		Dur("duration", time.Since(start)).
		Msg("request")

	return err
}

func requestID(c *fiber.Ctx) string {
	if id, ok := c.Locals(requestid.ConfigDefault.ContextKey).(string); ok {
		return id
	}
	return ""
}

// errorHandler turns handler errors into JSON responses. fiber.Error keeps
// its status code; anything else is a storage fault and maps to 500.
func (s *Server) errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "internal server error"

	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
		message = e.Message
	} else {
		s.log.Error().Err(err).Str("path", c.Path()).Msg("unhandled error")
	}

	return c.Status(code).JSON(fiber.Map{"error": message})
}
