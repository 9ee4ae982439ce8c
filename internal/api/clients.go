package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/onegoal/tracker/pkg/types"
)

func (s *Server) handleListClients(c *fiber.Ctx) error {
	p, err := parseListParams(c)
	if err != nil {
		return err
	}
	page, err := s.store.ListClients(p)
	if err != nil {
		return err
	}
	return c.JSON(page)
}

func (s *Server) handleCreateClient(c *fiber.Ctx) error {
	var req types.ClientCreate
	if err := c.BodyParser(&req); err != nil {
		return badRequest("invalid request body")
	}
	created, err := s.store.CreateClient(req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (s *Server) handleGetClient(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	client, err := s.store.GetClient(id, c.QueryBool("include_deleted"))
	if err != nil {
		return err
	}
	return c.JSON(client)
}

func (s *Server) handleUpdateClient(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req types.ClientUpdate
	if err := c.BodyParser(&req); err != nil {
		return badRequest("invalid request body")
	}
	updated, err := s.store.UpdateClient(id, req)
	if err != nil {
		return err
	}
	return c.JSON(updated)
}

func (s *Server) handleDeleteClient(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := s.store.DeleteClient(id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
