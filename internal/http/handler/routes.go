package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"sogrinha/internal/attachment"
	"sogrinha/internal/bridge"
	"sogrinha/internal/http/middleware"
	"sogrinha/internal/service"
)

// Deps are the collaborators the routes dispatch to. A nil service leaves its routes unregistered.
type Deps struct {
	DB           *sql.DB
	Bridge       *bridge.Bridge
	Store        attachment.Store
	BridgeSecret []byte
	Records      service.RecordService
	Contracts    service.ContractService
	Documents    service.DocumentService
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Everything except the probes requires a bridge bearer token.
func RegisterRoutes(app *fiber.App, d Deps) {
	app.Get("/health", HealthCheck(d.DB))
	app.Get("/healthz", LivenessProbe())

	auth := middleware.BridgeAuth(d.BridgeSecret)

	if d.Bridge != nil {
		app.Post("/bridge/:op", auth, BridgeCall(d.Bridge))
	}
	if d.Store != nil {
		app.Get("/attachments/:entityType/:identifier/:entityId/:name", auth, DownloadAttachment(d.Store))
	}

	if d.Records != nil {
		app.Post("/owners", auth, CreateOwner(d.Records))
		app.Get("/owners/:id", auth, GetOwner(d.Records))
		app.Post("/lessees", auth, CreateLessee(d.Records))
		app.Get("/lessees/:id", auth, GetLessee(d.Records))
		app.Post("/real-estates", auth, CreateRealEstate(d.Records))
		app.Get("/real-estates/:id", auth, GetRealEstate(d.Records))
	}

	if d.Contracts != nil {
		app.Post("/contracts", auth, CreateContract(d.Contracts))
		app.Get("/contracts", auth, ListContracts(d.Contracts))
		app.Get("/contracts/:id", auth, GetContract(d.Contracts))
		app.Delete("/contracts/:id", auth, DeleteContract(d.Contracts))
	}
	if d.Documents != nil {
		app.Get("/contracts/:id/document", auth, ContractDocument(d.Documents))
	}
}
