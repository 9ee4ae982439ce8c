package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/onegoal/tracker/pkg/types"
)

func (s *Server) handleListContacts(c *fiber.Ctx) error {
	p, err := parseListParams(c)
	if err != nil {
		return err
	}
	companyID, err := queryInt64(c, "company_id")
	if err != nil {
		return err
	}
	applicationID, err := queryInt64(c, "application_id")
	if err != nil {
		return err
	}
	clientID, err := queryInt64(c, "client_id")
	if err != nil {
		return err
	}
	filter := types.ContactFilter{
		CompanyID:     companyID,
		ApplicationID: applicationID,
		ClientID:      clientID,
		ContactType:   c.Query("contact_type"),
	}

	page, err := s.store.ListContacts(p, filter)
	if err != nil {
		return err
	}
	return c.JSON(page)
}

func (s *Server) handleCreateContact(c *fiber.Ctx) error {
	var req types.ContactCreate
	if err := c.BodyParser(&req); err != nil {
		return badRequest("invalid request body")
	}
	created, err := s.store.CreateContact(req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (s *Server) handleGetContact(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	detail, err := s.store.GetContact(id, c.QueryBool("include_deleted"))
	if err != nil {
		return err
	}
	return c.JSON(detail)
}

func (s *Server) handleUpdateContact(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req types.ContactUpdate
	if err := c.BodyParser(&req); err != nil {
		return badRequest("invalid request body")
	}
	updated, err := s.store.UpdateContact(id, req)
	if err != nil {
		return err
	}
	return c.JSON(updated)
}

func (s *Server) handleDeleteContact(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := s.store.DeleteContact(id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (s *Server) handleAddContactEmail(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req struct {
		types.ContactEmailCreate
		ModifiedBy string `json:"modified_by"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest("invalid request body")
	}
	email, err := s.store.AddContactEmail(id, req.ContactEmailCreate, req.ModifiedBy)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(email)
}

func (s *Server) handleAddContactPhone(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req struct {
		types.ContactPhoneCreate
		ModifiedBy string `json:"modified_by"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest("invalid request body")
	}
	phone, err := s.store.AddContactPhone(id, req.ContactPhoneCreate, req.ModifiedBy)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(phone)
}
