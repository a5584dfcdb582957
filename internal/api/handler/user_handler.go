package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mercatto/account-service/internal/core/ports"
)

// UserHandler serves the /users routes. Access control runs in the gate
// middleware; by the time a handler executes the request is already
// authenticated (and authorized where required).
type UserHandler struct {
	accounts ports.AccountService
}

func NewUserHandler(accounts ports.AccountService) *UserHandler {
	return &UserHandler{accounts: accounts}
}

// List returns all accounts. Admin only.
//
// @Summary      List accounts
// @Tags         users
// @Produce      json
// @Success      200  {object}  listAccountsResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	accounts, err := h.accounts.List(c.Request().Context())
	if err != nil {
		return err
	}
	public := toPublicList(accounts)
	return c.JSON(http.StatusOK, listAccountsResponse{Total: len(public), Accounts: public})
}

// Create creates an account on behalf of an administrator.
//
// @Summary      Create account
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      createAccountRequest  true  "Account details"
// @Success      201   {object}  accountResponse
// @Failure      409   {object}  errorResponse
// @Router       /users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createAccountRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	account, err := h.accounts.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, accountResponse{Account: account.Public()})
}

// GetByID returns a single account.
//
// @Summary      Get account by id
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "Account ID"
// @Success      200  {object}  accountResponse
// @Failure      404  {object}  errorResponse
// @Router       /users/{id} [get]
func (h *UserHandler) GetByID(c echo.Context) error {
	account, err := h.accounts.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, accountResponse{Account: account.Public()})
}

// Update applies a partial update to an account.
//
// @Summary      Update account
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path      string                true  "Account ID"
// @Param        body  body      updateAccountRequest  true  "Fields to update"
// @Success      200   {object}  accountResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /users/{id} [patch]
func (h *UserHandler) Update(c echo.Context) error {
	return h.update(c, c.Param("id"))
}

// Delete removes an account and returns the record as it was. Admin only.
//
// @Summary      Delete account
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "Account ID"
// @Success      200  {object}  accountResponse
// @Failure      404  {object}  errorResponse
// @Router       /users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	account, err := h.accounts.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, accountResponse{Account: account.Public()})
}

// Me returns the caller's own account.
//
// @Summary      Own account
// @Tags         users
// @Produce      json
// @Success      200  {object}  accountResponse
// @Router       /users/me [get]
func (h *UserHandler) Me(c echo.Context) error {
	account, err := currentAccount(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, accountResponse{Account: account.Public()})
}

// UpdateMe applies a partial update to the caller's own account.
//
// @Summary      Update own account
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      updateAccountRequest  true  "Fields to update"
// @Success      200   {object}  accountResponse
// @Router       /users/me [patch]
func (h *UserHandler) UpdateMe(c echo.Context) error {
	account, err := currentAccount(c)
	if err != nil {
		return err
	}
	return h.update(c, account.ID)
}

func (h *UserHandler) update(c echo.Context, id string) error {
	var req updateAccountRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	account, err := h.accounts.Update(c.Request().Context(), id, req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, accountResponse{Account: account.Public()})
}
