package account

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"github.com/jamadeu/multicontas/pkg/domain/money"
	accountsvc "github.com/jamadeu/multicontas/pkg/service/account"
	"github.com/jamadeu/multicontas/webapi/common"
)

func Routes(app *fiber.App, svc *accountsvc.Service) {
	app.Post("/v1/accounts", CreateAccount(svc))
	app.Get("/v1/accounts/:id", GetAccount(svc))
	app.Get("/v1/accounts/account-number/:accountNumber/branch-number/:branchNumber", GetAccountByNumberAndBranch(svc))
	app.Get("/v1/accounts/clientId/:clientId", ListAccountsByClient(svc))
	app.Put("/v1/accounts/deposit/account/:id", Deposit(svc))
	app.Put("/v1/accounts/:id", UpdateAccount(svc))
	app.Delete("/v1/accounts/:id", DeleteAccount(svc))
}

// CreateAccount opens a new account for a client.
// @Summary Create a new account
// @Description Open an account identified by the account number and branch number pair
// @Tags accounts
// @Accept json
// @Produce json
// @Param request body NewAccount true "Account data"
// @Success 201 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 500 {object} common.ProblemDetails
// @Router /v1/accounts [post]
func CreateAccount(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[NewAccount](c)
		if input == nil {
			return err // error response already written
		}
		balance, err := money.New(input.Balance)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid balance", err)
		}
		clientID, err := uuid.Parse(input.ClientID)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid client ID", err, "Client ID must be a valid UUID", fiber.StatusBadRequest)
		}
		created, err := svc.Create(c.Context(), input.AccountNumber, input.BranchNumber, balance, clientID)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't create account", err)
		}
		c.Location("/v1/accounts/" + created.ID.String())
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Account created", toResponse(created))
	}
}

// GetAccount retrieves an account by ID.
// @Summary Get account by ID
// @Tags accounts
// @Produce json
// @Param id path string true "Account ID"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /v1/accounts/{id} [get]
func GetAccount(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			log.Errorf("Invalid account ID: %v", err)
			return common.ProblemDetailsJSON(c, "Invalid account ID", err, "Account ID must be a valid UUID", fiber.StatusBadRequest)
		}
		found, err := svc.Get(c.Context(), id)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't get account", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Account found", toResponse(found))
	}
}

// GetAccountByNumberAndBranch retrieves an account by its number and branch pair.
// @Summary Get account by number and branch
// @Tags accounts
// @Produce json
// @Param accountNumber path string true "Account number"
// @Param branchNumber path string true "Branch number"
// @Success 200 {object} common.Response
// @Failure 404 {object} common.ProblemDetails
// @Router /v1/accounts/account-number/{accountNumber}/branch-number/{branchNumber} [get]
func GetAccountByNumberAndBranch(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		found, err := svc.GetByNumberAndBranch(c.Context(), c.Params("accountNumber"), c.Params("branchNumber"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't get account", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Account found", toResponse(found))
	}
}

// ListAccountsByClient retrieves every account owned by a client.
// A client with no accounts yields 404.
// @Summary List accounts by client
// @Tags accounts
// @Produce json
// @Param clientId path string true "Client ID"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /v1/accounts/clientId/{clientId} [get]
func ListAccountsByClient(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		clientID, err := uuid.Parse(c.Params("clientId"))
		if err != nil {
			log.Errorf("Invalid client ID: %v", err)
			return common.ProblemDetailsJSON(c, "Invalid client ID", err, "Client ID must be a valid UUID", fiber.StatusBadRequest)
		}
		accounts, err := svc.ListByClient(c.Context(), clientID)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't list accounts", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Accounts found", toResponseList(accounts))
	}
}

// UpdateAccount replaces an account's data.
// @Summary Update account
// @Tags accounts
// @Accept json
// @Param id path string true "Account ID"
// @Param request body UpdateAccountInput true "Account data"
// @Success 204
// @Failure 400 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /v1/accounts/{id} [put]
func UpdateAccount(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			log.Errorf("Invalid account ID: %v", err)
			return common.ProblemDetailsJSON(c, "Invalid account ID", err, "Account ID must be a valid UUID", fiber.StatusBadRequest)
		}
		input, err := common.BindAndValidate[UpdateAccountInput](c)
		if input == nil {
			return err // error response already written
		}
		balance, err := money.New(input.Balance)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid balance", err)
		}
		clientID, err := uuid.Parse(input.ClientID)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid client ID", err, "Client ID must be a valid UUID", fiber.StatusBadRequest)
		}
		if _, err := svc.Update(c.Context(), id, input.AccountNumber, input.BranchNumber, balance, clientID); err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't update account", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusNoContent, "", nil)
	}
}

// Deposit credits an amount to an account's balance.
// @Summary Deposit into account
// @Tags accounts
// @Accept json
// @Param id path string true "Account ID"
// @Param request body DepositInput true "Deposit amount in reais"
// @Success 204
// @Failure 400 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /v1/accounts/deposit/account/{id} [put]
func Deposit(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			log.Errorf("Invalid account ID: %v", err)
			return common.ProblemDetailsJSON(c, "Invalid account ID", err, "Account ID must be a valid UUID", fiber.StatusBadRequest)
		}
		input, err := common.BindAndValidate[DepositInput](c)
		if input == nil {
			return err // error response already written
		}
		amount, err := money.New(input.Amount)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid deposit amount", err)
		}
		if _, err := svc.Deposit(c.Context(), id, amount); err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't deposit into account", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusNoContent, "", nil)
	}
}

// DeleteAccount removes an account. Absent accounts are a no-op.
// @Summary Delete account
// @Tags accounts
// @Param id path string true "Account ID"
// @Success 204
// @Failure 400 {object} common.ProblemDetails
// @Router /v1/accounts/{id} [delete]
func DeleteAccount(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			log.Errorf("Invalid account ID: %v", err)
			return common.ProblemDetailsJSON(c, "Invalid account ID", err, "Account ID must be a valid UUID", fiber.StatusBadRequest)
		}
		if err := svc.Delete(c.Context(), id); err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't delete account", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusNoContent, "", nil)
	}
}
