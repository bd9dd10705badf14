package handlers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	supa "github.com/supabase-community/supabase-go"

	"mobilemall/api-gateway/config"
	"mobilemall/api-gateway/internal/boards"
	"mobilemall/api-gateway/internal/store"
	"mobilemall/api-gateway/utils"
)

// ApplicationHandler holds shared dependencies for handlers.
type ApplicationHandler struct {
	Logger   *logrus.Logger
	DB       *supa.Client
	Store    *store.Store
	Validate *validator.Validate
	Boards   *boards.Registry
	Config   *config.Config
}

// NewApplicationHandler creates an ApplicationHandler with the given
// dependencies.
func NewApplicationHandler(cfg *config.Config, logger *logrus.Logger, db *supa.Client, st *store.Store, registry *boards.Registry) *ApplicationHandler {
	return &ApplicationHandler{
		Logger:   logger,
		DB:       db,
		Store:    st,
		Validate: validator.New(),
		Boards:   registry,
		Config:   cfg,
	}
}

// respondStoreError maps store errors on admin write paths to HTTP
// statuses: missing row 404, stale precondition 409, anything else 500.
func (h *ApplicationHandler) respondStoreError(c *fiber.Ctx, err error, what string) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return utils.RespondWithError(c, fiber.StatusNotFound, what+" not found")
	case errors.Is(err, store.ErrConflict):
		return utils.RespondWithError(c, fiber.StatusConflict, what+" was modified by someone else; reload and retry")
	default:
		h.Logger.WithError(err).Errorf("%s operation failed", what)
		return utils.RespondWithError(c, fiber.StatusInternalServerError, "Could not complete "+what+" operation")
	}
}
