package handlers

import (
	"github.com/fasthttp/websocket"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/backsoul/classroom/pkg/redis"
	websocketHub "github.com/backsoul/classroom/pkg/websocket"
)

// DashboardHandler maneja las conexiones WebSocket de los tableros de
// profesores y el health check del servicio
type DashboardHandler struct {
	hub         *websocketHub.Hub
	redisClient *redis.Client
	logger      *zap.Logger
}

// NewDashboardHandler crea una nueva instancia del handler de tableros
func NewDashboardHandler(hub *websocketHub.Hub, redisClient *redis.Client, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		hub:         hub,
		redisClient: redisClient,
		logger:      logger,
	}
}

var upgrader = websocket.FastHTTPUpgrader{
	CheckOrigin: func(ctx *fasthttp.RequestCtx) bool {
		return true // los tableros se sirven desde otros orígenes en desarrollo
	},
}

// HandleWebSocket maneja GET /ws
func (h *DashboardHandler) HandleWebSocket(ctx *fasthttp.RequestCtx) {
	err := upgrader.Upgrade(ctx, func(ws *websocket.Conn) {
		defer ws.Close()

		h.hub.Register(ws)
		defer h.hub.Unregister(ws)

		// La conexión sólo recibe eventos; se drena la lectura hasta
		// que el tablero se desconecte
		for {
			if _, _, err := ws.ReadMessage(); err != nil {
				return
			}
		}
	})

	if err != nil {
		h.logger.Warn("error actualizando a WebSocket", zap.Error(err))
		ctx.Error("Error actualizando a WebSocket", fasthttp.StatusInternalServerError)
	}
}

// HealthCheck maneja GET /api/health
func (h *DashboardHandler) HealthCheck(ctx *fasthttp.RequestCtx) {
	if err := h.redisClient.HealthCheck(ctx); err != nil {
		respondWithError(ctx, fasthttp.StatusServiceUnavailable, "Servicio no disponible")
		return
	}

	respondWithSuccess(ctx, map[string]interface{}{
		"status": "healthy",
		"redis":  "connected",
	}, "Servicio funcionando correctamente")
}
