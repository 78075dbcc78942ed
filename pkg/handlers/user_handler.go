package handlers

import (
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/backsoul/classroom/pkg/models"
	"github.com/backsoul/classroom/pkg/services"
)

// UserHandler maneja las peticiones HTTP de usuarios
type UserHandler struct {
	userService *services.UserService
	logger      *zap.Logger
}

// NewUserHandler crea una nueva instancia del handler de usuarios
func NewUserHandler(userService *services.UserService, logger *zap.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		logger:      logger,
	}
}

// Create maneja POST /api/users
func (h *UserHandler) Create(ctx *fasthttp.RequestCtx) {
	var request models.UserCreateRequest
	if err := decodeAndValidate(ctx, &request); err != nil {
		respondWithError(ctx, fasthttp.StatusBadRequest, err.Error())
		return
	}

	user, err := h.userService.Create(ctx, request)
	if err != nil {
		respondWithServiceError(ctx, h.logger, err)
		return
	}

	respondWithSuccess(ctx, user, "Usuario creado exitosamente")
}

// Get maneja GET /api/users/{id}
func (h *UserHandler) Get(ctx *fasthttp.RequestCtx) {
	userID := ctx.UserValue("id").(string)

	user, err := h.userService.Get(ctx, userID)
	if err != nil {
		respondWithServiceError(ctx, h.logger, err)
		return
	}

	respondWithSuccess(ctx, user, "Usuario obtenido exitosamente")
}

// List maneja GET /api/users
func (h *UserHandler) List(ctx *fasthttp.RequestCtx) {
	users, err := h.userService.List(ctx)
	if err != nil {
		respondWithServiceError(ctx, h.logger, err)
		return
	}

	respondWithSuccess(ctx, map[string]interface{}{
		"users": users,
		"count": len(users),
	}, "Usuarios obtenidos exitosamente")
}
