package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/onegoal/tracker/pkg/types"
)

func (s *Server) handleListJobSearchSites(c *fiber.Ctx) error {
	p, err := parseListParams(c)
	if err != nil {
		return err
	}
	page, err := s.store.ListJobSearchSites(p)
	if err != nil {
		return err
	}
	return c.JSON(page)
}

func (s *Server) handleCreateJobSearchSite(c *fiber.Ctx) error {
	var req types.JobSearchSiteCreate
	if err := c.BodyParser(&req); err != nil {
		return badRequest("invalid request body")
	}
	created, err := s.store.CreateJobSearchSite(req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (s *Server) handleGetJobSearchSite(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	site, err := s.store.GetJobSearchSite(id, c.QueryBool("include_deleted"))
	if err != nil {
		return err
	}
	return c.JSON(site)
}

func (s *Server) handleUpdateJobSearchSite(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req types.JobSearchSiteUpdate
	if err := c.BodyParser(&req); err != nil {
		return badRequest("invalid request body")
	}
	updated, err := s.store.UpdateJobSearchSite(id, req)
	if err != nil {
		return err
	}
	return c.JSON(updated)
}

func (s *Server) handleDeleteJobSearchSite(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := s.store.DeleteJobSearchSite(id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
