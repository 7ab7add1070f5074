package user

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/wichananm65/user-account-backend/internal/apperror"
)

const defaultPageSize = 10

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type createRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

type updateRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// getUserResponse is a deliberate allow-list: the fetch-one endpoint returns
// these fields and nothing else, regardless of what the stored record holds.
type getUserResponse struct {
	ID          string     `json:"id"`
	Email       string     `json:"email"`
	Name        string     `json:"name"`
	LastLogin   *time.Time `json:"lastLogin,omitempty"`
	Created     time.Time  `json:"created"`
	LastUpdated time.Time  `json:"lastUpdated"`
}

func (h *Handler) RegisterRoutes(app *fiber.App) {
	app.Post("/api/v1/user", h.createUser)
	app.Get("/api/v1/user", h.listUsers)
	app.Get("/api/v1/user/:id", h.getUser)
	app.Put("/api/v1/user/:id", h.updateUser)
	app.Delete("/api/v1/user/:id", h.deleteUser)
	app.Post("/api/v1/login", h.login)
}

func (h *Handler) createUser(c *fiber.Ctx) error {
	payload := new(createRequest)
	_ = c.BodyParser(payload)

	if payload.Email == "" || payload.Name == "" || payload.Password == "" {
		return apperror.New(fiber.StatusBadRequest, "Bad Request", "Missing Required Fields")
	}

	id, err := h.service.Register(c.Context(), payload.Email, payload.Name, payload.Password)
	switch {
	case errors.Is(err, ErrEmailExists):
		return apperror.New(fiber.StatusBadRequest, "Bad Request", "User is already configured in the system")
	case errors.Is(err, ErrCreateFailed):
		return apperror.New(fiber.StatusInternalServerError, "Internal Server Error", "Unable to create user record")
	case err != nil:
		return err
	}

	return c.JSON(fiber.Map{"id": id})
}

func (h *Handler) listUsers(c *fiber.Ctx) error {
	result, err := h.service.List(c.Context(), ListQuery{
		Email: c.Query("email"),
		Name:  c.Query("name"),
		Page:  int64(c.QueryInt("page", 1)),
		Limit: int64(c.QueryInt("limit", defaultPageSize)),
	})
	if err != nil {
		return err
	}

	return c.JSON(result)
}

func (h *Handler) getUser(c *fiber.Ctx) error {
	id := c.Params("id")

	u, err := h.service.Get(c.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return notFound(id)
		}
		return err
	}

	return c.JSON(getUserResponse{
		ID:          u.ID,
		Email:       u.Email,
		Name:        u.Name,
		LastLogin:   u.LastLogin,
		Created:     u.Created,
		LastUpdated: u.LastUpdated,
	})
}

func (h *Handler) updateUser(c *fiber.Ctx) error {
	id := c.Params("id")

	payload := new(updateRequest)
	// An empty or malformed body is treated as "no fields supplied"; every
	// field of the update is optional.
	_ = c.BodyParser(payload)

	err := h.service.Update(c.Context(), id, UpdateInput{
		Name:        payload.Name,
		Email:       payload.Email,
		OldPassword: payload.OldPassword,
		NewPassword: payload.NewPassword,
	})
	switch {
	case errors.Is(err, ErrNotFound):
		return notFound(id)
	case errors.Is(err, ErrEmailExists):
		return apperror.New(fiber.StatusBadRequest, "Bad Request", "User is already configured in the system")
	case errors.Is(err, ErrPasswordMismatch):
		return apperror.New(fiber.StatusBadRequest, "Bad Request", "Attempted Password Change Fail")
	case err != nil:
		return err
	}

	return nil
}

func (h *Handler) deleteUser(c *fiber.Ctx) error {
	id := c.Params("id")

	err := h.service.Delete(c.Context(), id)
	switch {
	case errors.Is(err, ErrNotFound):
		return notFound(id)
	case errors.Is(err, ErrDeleteFailed):
		return apperror.New(fiber.StatusInternalServerError, "Internal Server Error", "Unable to delete document")
	case err != nil:
		return err
	}

	return nil
}

func (h *Handler) login(c *fiber.Ctx) error {
	payload := new(loginRequest)
	_ = c.BodyParser(payload)

	if payload.Email == "" || payload.Password == "" {
		return apperror.New(fiber.StatusUnauthorized, "Unauthorized", "Missing Required Fields")
	}

	if err := h.service.Authenticate(c.Context(), payload.Email, payload.Password); err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			// Empty detail: an unknown email and a bad password must be
			// indistinguishable to the caller.
			return apperror.New(fiber.StatusUnauthorized, "Unauthorized", "")
		}
		return err
	}

	return nil
}

func notFound(id string) *apperror.Error {
	return apperror.New(fiber.StatusNotFound, "Not Found", fmt.Sprintf("User Record %s not found", id))
}
