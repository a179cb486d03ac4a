package http

import (
	"github.com/gofiber/fiber/v2"

	"notes-backend/domain"
)

// HandleHealth reports service liveness and identity.
func (s *Server) HandleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"service": s.cfg.AppName,
		"version": s.cfg.Version,
	})
}

// HandleUsage describes the REST surface and the reserved realtime path.
// The WebSocket endpoint is documentation only; nothing serves it yet.
func (s *Server) HandleUsage(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"rest_endpoints": fiber.Map{
			"list":   "GET /notes",
			"create": "POST /notes",
			"get":    "GET /notes/{note_id}",
			"update": "PUT /notes/{note_id}",
			"delete": "DELETE /notes/{note_id}",
		},
		"realtime": fiber.Map{
			"planned":            true,
			"websocket_endpoint": "/ws/notes",
			"note":               "WebSocket endpoints are not implemented yet; reserved for future use.",
		},
	})
}

func (s *Server) HandleListNotes(c *fiber.Ctx) error {
	notes, err := s.repo.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(notes)
}

func (s *Server) HandleCreateNote(c *fiber.Ctx) error {
	var payload domain.NoteCreate
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := payload.Validate(); err != nil {
		return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
	}

	note, err := s.repo.Create(c.UserContext(), payload)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(note)
}

func (s *Server) HandleGetNote(c *fiber.Ctx) error {
	note, err := s.repo.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	if note == nil {
		return fiber.NewError(fiber.StatusNotFound, "note not found")
	}
	return c.JSON(note)
}

func (s *Server) HandleUpdateNote(c *fiber.Ctx) error {
	var payload domain.NoteUpdate
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := payload.Validate(); err != nil {
		return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
	}

	note, err := s.repo.Update(c.UserContext(), c.Params("id"), payload)
	if err != nil {
		return err
	}
	if note == nil {
		return fiber.NewError(fiber.StatusNotFound, "note not found")
	}
	return c.JSON(note)
}

func (s *Server) HandleDeleteNote(c *fiber.Ctx) error {
	deleted, err := s.repo.Delete(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	if !deleted {
		return fiber.NewError(fiber.StatusNotFound, "note not found")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
