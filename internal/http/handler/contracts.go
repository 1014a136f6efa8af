package handler

import (
	"mime"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"sogrinha/internal/bridge"
	"sogrinha/internal/document"
	"sogrinha/internal/model"
	"sogrinha/internal/repository"
	"sogrinha/internal/service"
)

// CreateContract stores a contract and assigns its identifier.
//
// @Summary  Create a contract
// @Tags     contracts
// @Accept   json
// @Produce  json
// @Success  201 {object} model.Contract
// @Failure  400 {object} errorPayload
// @Security BearerAuth
// @Router   /contracts [post]
func CreateContract(svc service.ContractService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in model.Contract
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		out, err := svc.Create(c.UserContext(), &in)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(out)
	}
}

// ListContracts returns one page of contracts. A token subject restricts the page to that user.
//
// @Summary  List contracts
// @Tags     contracts
// @Produce  json
// @Param    limit      query int    false "page size"
// @Param    offset     query int    false "page offset"
// @Param    owner_id   query string false "owner id"
// @Param    lessee_id  query string false "lessee id"
// @Param    kind       query string false "contract kind"
// @Param    status     query string false "contract status"
// @Param    ends_after query string false "YYYY-MM-DD"
// @Success  200 {object} service.ContractListResult
// @Failure  400 {object} errorPayload
// @Security BearerAuth
// @Router   /contracts [get]
func ListContracts(svc service.ContractService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, err := strconv.Atoi(c.Query("limit", "0"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
		}
		offset, err := strconv.Atoi(c.Query("offset", "0"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_OFFSET", "invalid offset")
		}

		f := repository.ContractFilter{
			UserID:   c.Query("user_id"),
			OwnerID:  c.Query("owner_id"),
			LesseeID: c.Query("lessee_id"),
			Kind:     model.ContractKind(c.Query("kind")),
			Status:   model.ContractStatus(c.Query("status")),
		}
		if v := c.Query("ends_after"); v != "" {
			t, err := time.Parse(time.DateOnly, v)
			if err != nil {
				return writeError(c, fiber.StatusBadRequest, "INVALID_DATE", "ends_after must be YYYY-MM-DD")
			}
			f.EndsAfter = t
		}
		if sub, ok := bridge.SubjectFrom(c.UserContext()); ok {
			f.UserID = sub
		}

		res, err := svc.List(c.UserContext(), f, limit, offset)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}

// GetContract returns a contract by id.
//
// @Summary  Get a contract
// @Tags     contracts
// @Produce  json
// @Param    id path string true "contract id"
// @Success  200 {object} model.Contract
// @Failure  404 {object} errorPayload
// @Security BearerAuth
// @Router   /contracts/{id} [get]
func GetContract(svc service.ContractService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		out, err := svc.Get(c.UserContext(), c.Params("id"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(out)
	}
}

// DeleteContract removes a contract.
//
// @Summary  Delete a contract
// @Tags     contracts
// @Param    id path string true "contract id"
// @Success  204
// @Failure  404 {object} errorPayload
// @Security BearerAuth
// @Router   /contracts/{id} [delete]
func DeleteContract(svc service.ContractService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Delete(c.UserContext(), c.Params("id")); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// ContractDocument renders the contract document and returns it as a download.
//
// @Summary  Render a contract document
// @Tags     contracts
// @Produce  application/pdf
// @Param    id     path  string true  "contract id"
// @Param    format query string false "pdf (default) or docx"
// @Success  200
// @Failure  404 {object} errorPayload
// @Failure  422 {object} errorPayload
// @Security BearerAuth
// @Router   /contracts/{id}/document [get]
func ContractDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		format, err := document.ParseFormat(c.Query("format"))
		if err != nil {
			return writeServiceError(c, err)
		}
		doc, err := svc.Render(c.UserContext(), c.Params("id"), format)
		if err != nil {
			return writeServiceError(c, err)
		}
		c.Set(fiber.HeaderContentType, doc.ContentType)
		c.Set(fiber.HeaderContentDisposition, mime.FormatMediaType("attachment", map[string]string{"filename": doc.FileName}))
		return c.Send(doc.Content)
	}
}
