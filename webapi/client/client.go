package client

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	clientsvc "github.com/jamadeu/multicontas/pkg/service/client"
	"github.com/jamadeu/multicontas/webapi/common"
)

func Routes(app *fiber.App, svc *clientsvc.Service) {
	app.Post("/v1/clients", CreateClient(svc))
	app.Get("/v1/clients/:id", GetClient(svc))
	app.Get("/v1/clients/cpf/:cpf", GetClientByCpf(svc))
	app.Put("/v1/clients/:id", UpdateClient(svc))
	app.Delete("/v1/clients/:id", DeleteClient(svc))
}

// CreateClient registers a new client.
// @Summary Create a new client
// @Description Register a client with a name and a valid CPF
// @Tags clients
// @Accept json
// @Produce json
// @Param request body NewClient true "Client data"
// @Success 201 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 500 {object} common.ProblemDetails
// @Router /v1/clients [post]
func CreateClient(svc *clientsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[NewClient](c)
		if input == nil {
			return err // error response already written
		}
		created, err := svc.Create(c.Context(), input.Name, input.Cpf)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't create client", err)
		}
		c.Location("/v1/clients/" + created.ID.String())
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Client created", toResponse(created))
	}
}

// GetClient retrieves a client by ID.
// @Summary Get client by ID
// @Tags clients
// @Produce json
// @Param id path string true "Client ID"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /v1/clients/{id} [get]
func GetClient(svc *clientsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			log.Errorf("Invalid client ID: %v", err)
			return common.ProblemDetailsJSON(c, "Invalid client ID", err, "Client ID must be a valid UUID", fiber.StatusBadRequest)
		}
		found, err := svc.Get(c.Context(), id)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't get client", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Client found", toResponse(found))
	}
}

// GetClientByCpf retrieves a client by CPF.
// @Summary Get client by CPF
// @Tags clients
// @Produce json
// @Param cpf path string true "Client CPF"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /v1/clients/cpf/{cpf} [get]
func GetClientByCpf(svc *clientsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		found, err := svc.GetByCpf(c.Context(), c.Params("cpf"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't get client", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Client found", toResponse(found))
	}
}

// UpdateClient replaces a client's name and CPF.
// @Summary Update client
// @Tags clients
// @Accept json
// @Param id path string true "Client ID"
// @Param request body UpdateClientInput true "Client data"
// @Success 204
// @Failure 400 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /v1/clients/{id} [put]
func UpdateClient(svc *clientsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			log.Errorf("Invalid client ID: %v", err)
			return common.ProblemDetailsJSON(c, "Invalid client ID", err, "Client ID must be a valid UUID", fiber.StatusBadRequest)
		}
		input, err := common.BindAndValidate[UpdateClientInput](c)
		if input == nil {
			return err // error response already written
		}
		if _, err := svc.Update(c.Context(), id, input.Name, input.Cpf); err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't update client", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusNoContent, "", nil)
	}
}

// DeleteClient removes a client. Absent clients are a no-op.
// @Summary Delete client
// @Tags clients
// @Param id path string true "Client ID"
// @Success 204
// @Failure 400 {object} common.ProblemDetails
// @Router /v1/clients/{id} [delete]
func DeleteClient(svc *clientsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			log.Errorf("Invalid client ID: %v", err)
			return common.ProblemDetailsJSON(c, "Invalid client ID", err, "Client ID must be a valid UUID", fiber.StatusBadRequest)
		}
		if err := svc.Delete(c.Context(), id); err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't delete client", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusNoContent, "", nil)
	}
}
