package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/onegoal/tracker/pkg/types"
)

func (s *Server) handleListCompanies(c *fiber.Ctx) error {
	p, err := parseListParams(c)
	if err != nil {
		return err
	}
	page, err := s.store.ListCompanies(p, types.CompanyFilter{JobType: c.Query("job_type")})
	if err != nil {
		return err
	}
	return c.JSON(page)
}

func (s *Server) handleCreateCompany(c *fiber.Ctx) error {
	var req types.CompanyCreate
	if err := c.BodyParser(&req); err != nil {
		return badRequest("invalid request body")
	}
	created, err := s.store.CreateCompany(req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (s *Server) handleGetCompany(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	company, err := s.store.GetCompany(id, c.QueryBool("include_deleted"))
	if err != nil {
		return err
	}
	return c.JSON(company)
}

func (s *Server) handleUpdateCompany(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req types.CompanyUpdate
	if err := c.BodyParser(&req); err != nil {
		return badRequest("invalid request body")
	}
	updated, err := s.store.UpdateCompany(id, req)
	if err != nil {
		return err
	}
	return c.JSON(updated)
}

func (s *Server) handleDeleteCompany(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := s.store.DeleteCompany(id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
