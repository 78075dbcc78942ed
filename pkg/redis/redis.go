package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/backsoul/classroom/pkg/models"
)

var ErrSessionNotFound = errors.New("sesión no encontrada")

// Client envuelve la conexión a Redis donde viven las sesiones de quiz.
// Las sesiones son estado efímero de una toma de quiz: se guardan como
// JSON bajo classroom:session:<id> con TTL y se descartan solas.
type Client struct {
	client *redis.Client
}

// New crea el cliente y verifica la conexión
func New(ctx context.Context, addr, password string, db int) (*Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("error conectando a Redis: %w", err)
	}

	return &Client{client: rdb}, nil
}

func sessionKey(sessionID string) string {
	return fmt.Sprintf("classroom:session:%s", sessionID)
}

func quizSessionsKey(quizID string) string {
	return fmt.Sprintf("classroom:quiz_sessions:%s", quizID)
}

func userSessionsKey(userID string) string {
	return fmt.Sprintf("classroom:user_sessions:%s", userID)
}

// SaveSession guarda (o actualiza) una sesión con su TTL
func (c *Client) SaveSession(ctx context.Context, session *models.QuizSession, ttl time.Duration) error {
	sessionJSON, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("error serializando sesión: %w", err)
	}

	if err := c.client.Set(ctx, sessionKey(session.ID), sessionJSON, ttl).Err(); err != nil {
		return fmt.Errorf("error guardando sesión: %w", err)
	}

	return nil
}

// GetSession recupera una sesión por id
func (c *Client) GetSession(ctx context.Context, sessionID string) (*models.QuizSession, error) {
	sessionJSON, err := c.client.Get(ctx, sessionKey(sessionID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("error obteniendo sesión: %w", err)
	}

	var session models.QuizSession
	if err := json.Unmarshal([]byte(sessionJSON), &session); err != nil {
		return nil, fmt.Errorf("error deserializando sesión: %w", err)
	}

	return &session, nil
}

// IndexSession registra la sesión en los índices por quiz y por usuario
func (c *Client) IndexSession(ctx context.Context, session *models.QuizSession) error {
	if err := c.client.SAdd(ctx, quizSessionsKey(session.QuizID), session.ID).Err(); err != nil {
		return fmt.Errorf("error indexando sesión por quiz: %w", err)
	}
	if err := c.client.SAdd(ctx, userSessionsKey(session.UserID), session.ID).Err(); err != nil {
		return fmt.Errorf("error indexando sesión por usuario: %w", err)
	}
	return nil
}

// QuizSessionIDs retorna los ids de sesiones de un quiz
func (c *Client) QuizSessionIDs(ctx context.Context, quizID string) ([]string, error) {
	ids, err := c.client.SMembers(ctx, quizSessionsKey(quizID)).Result()
	if err != nil {
		return nil, fmt.Errorf("error obteniendo sesiones del quiz: %w", err)
	}
	return ids, nil
}

// UserSessionIDs retorna los ids de sesiones de un usuario
func (c *Client) UserSessionIDs(ctx context.Context, userID string) ([]string, error) {
	ids, err := c.client.SMembers(ctx, userSessionsKey(userID)).Result()
	if err != nil {
		return nil, fmt.Errorf("error obteniendo sesiones del usuario: %w", err)
	}
	return ids, nil
}

// HealthCheck verifica que Redis responda
func (c *Client) HealthCheck(ctx context.Context) error {
	if _, err := c.client.Ping(ctx).Result(); err != nil {
		return fmt.Errorf("redis health check failed: %w", err)
	}
	return nil
}

// Close cierra la conexión con Redis
func (c *Client) Close() error {
	return c.client.Close()
}
