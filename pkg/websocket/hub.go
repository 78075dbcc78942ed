package websocket

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/fasthttp/websocket"
	"go.uber.org/zap"
)

// Hub mantiene los tableros de profesores conectados y les difunde
// eventos de la plataforma (inscripciones, envíos calificados)
type Hub struct {
	clients    map[*websocket.Conn]bool
	broadcast  chan []byte
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	mutex      sync.RWMutex
	logger     *zap.Logger
}

// Message sobre genérico de los eventos difundidos
type Message struct {
	Type      string      `json:"type"`
	Data      interface{} `json:"data"`
	Timestamp string      `json:"timestamp"`
}

// SubmissionEvent un estudiante terminó un quiz
type SubmissionEvent struct {
	QuizID         string  `json:"quizId"`
	CourseID       string  `json:"courseId"`
	UserID         string  `json:"userId"`
	Score          float64 `json:"score"`
	CorrectAnswers int     `json:"correctAnswers"`
	TotalQuestions int     `json:"totalQuestions"`
}

// EnrollmentEvent un estudiante se inscribió en un curso
type EnrollmentEvent struct {
	CourseID string `json:"courseId"`
	UserID   string `json:"userId"`
}

// NewHub crea el hub de tableros
func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		clients:    make(map[*websocket.Conn]bool),
		broadcast:  make(chan []byte),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
		logger:     logger,
	}
}

// Run procesa registros, bajas y difusiones; correr en su propia goroutine
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mutex.Lock()
			h.clients[client] = true
			total := len(h.clients)
			h.mutex.Unlock()
			h.logger.Info("tablero conectado", zap.Int("total", total))

		case client := <-h.unregister:
			h.mutex.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				client.Close()
			}
			total := len(h.clients)
			h.mutex.Unlock()
			h.logger.Info("tablero desconectado", zap.Int("total", total))

		case message := <-h.broadcast:
			h.mutex.Lock()
			for client := range h.clients {
				if err := client.WriteMessage(websocket.TextMessage, message); err != nil {
					h.logger.Warn("error enviando mensaje al tablero", zap.Error(err))
					delete(h.clients, client)
					client.Close()
				}
			}
			h.mutex.Unlock()
		}
	}
}

// Register agrega una conexión de tablero
func (h *Hub) Register(conn *websocket.Conn) {
	h.register <- conn
}

// Unregister quita una conexión de tablero
func (h *Hub) Unregister(conn *websocket.Conn) {
	h.unregister <- conn
}

// BroadcastEvent difunde un evento tipado a todos los tableros
func (h *Hub) BroadcastEvent(eventType string, data interface{}) {
	msg := Message{
		Type:      eventType,
		Data:      data,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		h.logger.Warn("error serializando evento", zap.Error(err))
		return
	}

	h.broadcast <- payload
}
