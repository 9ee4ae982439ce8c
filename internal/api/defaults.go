package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/onegoal/tracker/pkg/types"
)

func (s *Server) handleListDefaultValues(c *fiber.Ctx) error {
	p, err := parseListParams(c)
	if err != nil {
		return err
	}
	filter := types.DefaultValueFilter{
		TableName: c.Query("table_name"),
		UserID:    c.Query("user_id"),
	}
	page, err := s.store.ListDefaultValues(p, filter)
	if err != nil {
		return err
	}
	return c.JSON(page)
}

func (s *Server) handleCreateDefaultValue(c *fiber.Ctx) error {
	var req types.DefaultValueCreate
	if err := c.BodyParser(&req); err != nil {
		return badRequest("invalid request body")
	}
	created, err := s.store.CreateDefaultValue(req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (s *Server) handleGetDefaultValue(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	value, err := s.store.GetDefaultValue(id)
	if err != nil {
		return err
	}
	return c.JSON(value)
}

func (s *Server) handleUpdateDefaultValue(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req types.DefaultValueUpdate
	if err := c.BodyParser(&req); err != nil {
		return badRequest("invalid request body")
	}
	updated, err := s.store.UpdateDefaultValue(id, req)
	if err != nil {
		return err
	}
	return c.JSON(updated)
}

func (s *Server) handleDeleteDefaultValue(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := s.store.DeleteDefaultValue(id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
