package handler

import (
	"github.com/gofiber/fiber/v2"

	"sogrinha/internal/model"
	"sogrinha/internal/service"
)

// CreateOwner stores a new owner.
//
// @Summary  Create an owner
// @Tags     records
// @Accept   json
// @Produce  json
// @Success  201 {object} model.Owner
// @Failure  400 {object} errorPayload
// @Security BearerAuth
// @Router   /owners [post]
func CreateOwner(svc service.RecordService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in model.Owner
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		out, err := svc.CreateOwner(c.UserContext(), &in)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(out)
	}
}

// GetOwner returns an owner by id.
//
// @Summary  Get an owner
// @Tags     records
// @Produce  json
// @Param    id path string true "owner id"
// @Success  200 {object} model.Owner
// @Failure  404 {object} errorPayload
// @Security BearerAuth
// @Router   /owners/{id} [get]
func GetOwner(svc service.RecordService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		out, err := svc.GetOwner(c.UserContext(), c.Params("id"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(out)
	}
}

// CreateLessee stores a new lessee.
//
// @Summary  Create a lessee
// @Tags     records
// @Accept   json
// @Produce  json
// @Success  201 {object} model.Lessee
// @Failure  400 {object} errorPayload
// @Security BearerAuth
// @Router   /lessees [post]
func CreateLessee(svc service.RecordService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in model.Lessee
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		out, err := svc.CreateLessee(c.UserContext(), &in)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(out)
	}
}

// GetLessee returns a lessee by id.
//
// @Summary  Get a lessee
// @Tags     records
// @Produce  json
// @Param    id path string true "lessee id"
// @Success  200 {object} model.Lessee
// @Failure  404 {object} errorPayload
// @Security BearerAuth
// @Router   /lessees/{id} [get]
func GetLessee(svc service.RecordService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		out, err := svc.GetLessee(c.UserContext(), c.Params("id"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(out)
	}
}

// CreateRealEstate stores a new property.
//
// @Summary  Create a real estate
// @Tags     records
// @Accept   json
// @Produce  json
// @Success  201 {object} model.RealEstate
// @Failure  400 {object} errorPayload
// @Security BearerAuth
// @Router   /real-estates [post]
func CreateRealEstate(svc service.RecordService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in model.RealEstate
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		out, err := svc.CreateRealEstate(c.UserContext(), &in)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(out)
	}
}

// GetRealEstate returns a property by id.
//
// @Summary  Get a real estate
// @Tags     records
// @Produce  json
// @Param    id path string true "real estate id"
// @Success  200 {object} model.RealEstate
// @Failure  404 {object} errorPayload
// @Security BearerAuth
// @Router   /real-estates/{id} [get]
func GetRealEstate(svc service.RecordService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		out, err := svc.GetRealEstate(c.UserContext(), c.Params("id"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(out)
	}
}
