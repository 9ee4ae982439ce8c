package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/onegoal/tracker/pkg/types"
)

func (s *Server) handleListNotes(c *fiber.Ctx) error {
	p, err := parseListParams(c)
	if err != nil {
		return err
	}
	applicationID, err := queryInt64(c, "application_id")
	if err != nil {
		return err
	}
	page, err := s.store.ListNotes(p, types.NoteFilter{ApplicationID: applicationID})
	if err != nil {
		return err
	}
	return c.JSON(page)
}

func (s *Server) handleCreateNote(c *fiber.Ctx) error {
	var req types.NoteCreate
	if err := c.BodyParser(&req); err != nil {
		return badRequest("invalid request body")
	}
	created, err := s.store.CreateNote(req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (s *Server) handleGetNote(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	note, err := s.store.GetNote(id, c.QueryBool("include_deleted"))
	if err != nil {
		return err
	}
	return c.JSON(note)
}

func (s *Server) handleUpdateNote(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req types.NoteUpdate
	if err := c.BodyParser(&req); err != nil {
		return badRequest("invalid request body")
	}
	updated, err := s.store.UpdateNote(id, req)
	if err != nil {
		return err
	}
	return c.JSON(updated)
}

func (s *Server) handleDeleteNote(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := s.store.DeleteNote(id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
