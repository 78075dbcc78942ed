package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/backsoul/classroom/pkg/apierr"
	"github.com/backsoul/classroom/pkg/models"
	"github.com/backsoul/classroom/pkg/postgres"
)

// UserService maneja los usuarios de la plataforma
type UserService struct {
	userRepo *postgres.UserRepository
}

// NewUserService crea una nueva instancia del servicio de usuarios
func NewUserService(userRepo *postgres.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// Create registra un usuario nuevo
func (s *UserService) Create(ctx context.Context, request models.UserCreateRequest) (*models.User, error) {
	user := &models.User{
		ID:        uuid.New().String(),
		Name:      request.Name,
		Email:     request.Email,
		Role:      request.Role,
		CreatedAt: time.Now(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, apierr.Connection("No se pudo guardar el usuario", err)
	}

	return user, nil
}

// Get busca un usuario por id
func (s *UserService) Get(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, postgres.ErrUserNotFound) {
			return nil, apierr.NotFound("Usuario no encontrado")
		}
		return nil, apierr.Connection("No se pudo consultar el usuario", err)
	}

	return user, nil
}

// List retorna todos los usuarios
func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, apierr.Connection("No se pudieron consultar los usuarios", err)
	}

	return users, nil
}
