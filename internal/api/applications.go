package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/onegoal/tracker/pkg/types"
)

func (s *Server) handleListApplications(c *fiber.Ctx) error {
	p, err := parseListParams(c)
	if err != nil {
		return err
	}
	companyID, err := queryInt64(c, "company_id")
	if err != nil {
		return err
	}
	clientID, err := queryInt64(c, "client_id")
	if err != nil {
		return err
	}
	filter := types.ApplicationFilter{
		Status:    c.Query("status"),
		CompanyID: companyID,
		ClientID:  clientID,
	}

	page, err := s.store.ListApplications(p, filter)
	if err != nil {
		return err
	}
	return c.JSON(page)
}

func (s *Server) handleCreateApplication(c *fiber.Ctx) error {
	var req types.ApplicationCreate
	if err := c.BodyParser(&req); err != nil {
		return badRequest("invalid request body")
	}
	created, err := s.store.CreateApplication(req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (s *Server) handleGetApplication(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	detail, err := s.store.GetApplication(id, c.QueryBool("include_deleted"))
	if err != nil {
		return err
	}
	return c.JSON(detail)
}

func (s *Server) handleUpdateApplication(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req types.ApplicationUpdate
	if err := c.BodyParser(&req); err != nil {
		return badRequest("invalid request body")
	}
	updated, err := s.store.UpdateApplication(id, req)
	if err != nil {
		return err
	}
	return c.JSON(updated)
}

func (s *Server) handleDeleteApplication(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := s.store.DeleteApplication(id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
