package handler

import (
	"mime"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"sogrinha/internal/attachment"
	"sogrinha/internal/bridge"
	"sogrinha/internal/model"
)

// BridgeCall runs the operation named in the path with the request body as params.
// The response is always 200 with a bridge.Result; failures are reported in its code.
//
// @Summary  Call a bridge operation
// @Tags     bridge
// @Accept   json
// @Produce  json
// @Param    op  path  string  true  "operation name, e.g. attachments.list"
// @Success  200 {object} bridge.Result
// @Failure  401 {object} errorPayload
// @Security BearerAuth
// @Router   /bridge/{op} [post]
func BridgeCall(b *bridge.Bridge) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res := b.Call(c.UserContext(), c.Params("op"), c.Body())
		return c.JSON(res)
	}
}

// DownloadAttachment streams one attachment as the response body.
//
// @Summary  Download an attachment
// @Tags     attachments
// @Produce  octet-stream
// @Param    entityType path string true "owners, lessees, realEstates or contracts"
// @Param    identifier path string true "owning user"
// @Param    entityId   path string true "record id"
// @Param    name       path string true "file name"
// @Success  200
// @Failure  400 {object} errorPayload
// @Failure  403 {object} errorPayload
// @Failure  404 {object} errorPayload
// @Security BearerAuth
// @Router   /attachments/{entityType}/{identifier}/{entityId}/{name} [get]
func DownloadAttachment(store attachment.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		et, err := model.ParseEntityType(c.Params("entityType"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ARGUMENT", "unknown entity type")
		}
		scope := model.Scope{EntityType: et, Identifier: c.Params("identifier"), EntityID: c.Params("entityId")}
		if sub, ok := bridge.SubjectFrom(c.UserContext()); ok && sub != scope.Identifier {
			return writeError(c, fiber.StatusForbidden, "FORBIDDEN", "identifier does not match token")
		}

		r, a, err := store.Open(c.UserContext(), scope, c.Params("name"))
		if err != nil {
			return writeServiceError(c, err)
		}

		c.Set(fiber.HeaderContentType, a.ContentType)
		c.Set(fiber.HeaderContentLength, strconv.FormatInt(a.Size, 10))
		c.Set(fiber.HeaderContentDisposition, mime.FormatMediaType("attachment", map[string]string{"filename": a.Name}))
		// fasthttp closes r once the body has been written.
		return c.SendStream(r, int(a.Size))
	}
}
