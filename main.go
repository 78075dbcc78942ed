package main

import (
	"context"
	"log"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/backsoul/classroom/pkg/config"
	"github.com/backsoul/classroom/pkg/handlers"
	"github.com/backsoul/classroom/pkg/logger"
	"github.com/backsoul/classroom/pkg/postgres"
	"github.com/backsoul/classroom/pkg/redis"
	"github.com/backsoul/classroom/pkg/services"
	websocketHub "github.com/backsoul/classroom/pkg/websocket"
)

type application struct {
	userHandler      *handlers.UserHandler
	courseHandler    *handlers.CourseHandler
	quizHandler      *handlers.QuizHandler
	sessionHandler   *handlers.SessionHandler
	materialHandler  *handlers.MaterialHandler
	dashboardHandler *handlers.DashboardHandler
	logger           *zap.Logger
}

func main() {
	// Variables de entorno locales (.env es opcional)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("error cargando configuración: %v", err)
	}

	zapLogger, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("error creando logger: %v", err)
	}
	defer zapLogger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	zapLogger.Info("🚀 Iniciando servidor Classroom")

	// Conexiones a los almacenes
	dsn, err := cfg.DB.DSN()
	if err != nil {
		zapLogger.Fatal("configuración de base de datos incompleta", zap.Error(err))
	}

	pool, err := postgres.NewPool(ctx, dsn, postgres.PoolConfig{
		MaxConns:        int32(cfg.DB.MaxConnections),
		MaxConnLifetime: cfg.DB.MaxConnLifetime,
	})
	if err != nil {
		zapLogger.Fatal("error conectando a PostgreSQL", zap.Error(err))
	}
	defer pool.Close()

	redisClient, err := redis.New(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		zapLogger.Fatal("error conectando a Redis", zap.Error(err))
	}
	defer redisClient.Close()

	zapLogger.Info("✅ Conexión exitosa a PostgreSQL y Redis")

	// Repositorios
	userRepo := postgres.NewUserRepository(pool)
	courseRepo := postgres.NewCourseRepository(pool)
	quizRepo := postgres.NewQuizRepository(pool)
	materialRepo := postgres.NewMaterialRepository(pool)

	// Servicios
	userService := services.NewUserService(userRepo)
	courseService := services.NewCourseService(courseRepo, userRepo)
	quizService := services.NewQuizService(quizRepo, courseRepo)
	sessionService := services.NewSessionService(quizRepo, courseRepo, userRepo, redisClient, cfg.Session.TTL, zapLogger)
	materialService := services.NewMaterialService(materialRepo, courseRepo, cfg.UploadDir)

	// Hub de tableros de profesores
	hub := websocketHub.NewHub(zapLogger)
	go hub.Run()

	app := &application{
		userHandler:      handlers.NewUserHandler(userService, zapLogger),
		courseHandler:    handlers.NewCourseHandler(courseService, hub, zapLogger),
		quizHandler:      handlers.NewQuizHandler(quizService, zapLogger),
		sessionHandler:   handlers.NewSessionHandler(sessionService, hub, zapLogger),
		materialHandler:  handlers.NewMaterialHandler(materialService, zapLogger),
		dashboardHandler: handlers.NewDashboardHandler(hub, redisClient, zapLogger),
		logger:           zapLogger,
	}

	server := &fasthttp.Server{
		Handler: app.requestHandler,
		Name:    "Classroom Server",
	}

	go func() {
		zapLogger.Info("🎓 Servidor Classroom escuchando", zap.String("addr", cfg.HTTPAddr))
		if err := server.ListenAndServe(cfg.HTTPAddr); err != nil {
			zapLogger.Fatal("error al iniciar el servidor", zap.Error(err))
		}
	}()

	<-ctx.Done()
	zapLogger.Info("señal de apagado recibida")
	if err := server.Shutdown(); err != nil {
		zapLogger.Warn("error apagando el servidor", zap.Error(err))
	}
}

func (app *application) requestHandler(ctx *fasthttp.RequestCtx) {
	path := string(ctx.Path())
	method := string(ctx.Method())

	app.logger.Debug("📡 request", zap.String("method", method), zap.String("path", path))

	ctx.Response.Header.Set("Server", "Classroom-FastHTTP/1.0")
	ctx.Response.Header.Set("Cache-Control", "no-cache")

	// Headers CORS para desarrollo
	ctx.Response.Header.Set("Access-Control-Allow-Origin", "*")
	ctx.Response.Header.Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
	ctx.Response.Header.Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

	if method == "OPTIONS" {
		ctx.SetStatusCode(fasthttp.StatusOK)
		return
	}

	// Enrutamiento
	switch {
	case path == "/api/health":
		app.dashboardHandler.HealthCheck(ctx)

	// Usuarios
	case path == "/api/users" && method == "POST":
		app.userHandler.Create(ctx)
	case path == "/api/users" && method == "GET":
		app.userHandler.List(ctx)
	case strings.HasPrefix(path, "/api/users/") && method == "GET":
		app.handleUserRoutes(ctx, path)

	// Cursos
	case path == "/api/courses" && method == "POST":
		app.courseHandler.Create(ctx)
	case path == "/api/courses" && method == "GET":
		app.courseHandler.List(ctx)
	case strings.HasPrefix(path, "/api/courses/"):
		app.handleCourseRoutes(ctx, path, method)

	// Quizzes
	case strings.HasPrefix(path, "/api/quizzes/"):
		app.handleQuizRoutes(ctx, path, method)

	// Sesiones de quiz
	case path == "/api/sessions" && method == "POST":
		app.sessionHandler.Start(ctx)
	case strings.HasPrefix(path, "/api/sessions/"):
		app.handleSessionRoutes(ctx, path, method)

	// Materiales
	case strings.HasPrefix(path, "/api/materials/"):
		app.handleMaterialRoutes(ctx, path, method)

	// WebSocket de tableros
	case path == "/ws":
		app.dashboardHandler.HandleWebSocket(ctx)

	default:
		app.serve404(ctx)
	}
}

func (app *application) handleUserRoutes(ctx *fasthttp.RequestCtx, path string) {
	parts := strings.Split(path, "/")

	// /api/users/{id}
	if len(parts) == 4 {
		ctx.SetUserValue("id", parts[3])
		app.userHandler.Get(ctx)
		return
	}

	app.serve404(ctx)
}

func (app *application) handleCourseRoutes(ctx *fasthttp.RequestCtx, path, method string) {
	parts := strings.Split(path, "/")

	// /api/courses/{id}
	if len(parts) == 4 && method == "GET" {
		ctx.SetUserValue("id", parts[3])
		app.courseHandler.Get(ctx)
		return
	}

	if len(parts) == 5 {
		ctx.SetUserValue("id", parts[3])

		switch {
		case parts[4] == "enroll" && method == "POST":
			app.courseHandler.Enroll(ctx)
			return
		case parts[4] == "quizzes" && method == "POST":
			app.quizHandler.Create(ctx)
			return
		case parts[4] == "quizzes" && method == "GET":
			app.quizHandler.ListByCourse(ctx)
			return
		case parts[4] == "materials" && method == "POST":
			app.materialHandler.Upload(ctx)
			return
		case parts[4] == "materials" && method == "GET":
			app.materialHandler.ListByCourse(ctx)
			return
		}
	}

	app.serve404(ctx)
}

func (app *application) handleQuizRoutes(ctx *fasthttp.RequestCtx, path, method string) {
	parts := strings.Split(path, "/")

	// /api/quizzes/{id}
	if len(parts) == 4 && method == "GET" {
		ctx.SetUserValue("id", parts[3])
		app.quizHandler.Get(ctx)
		return
	}

	if len(parts) == 5 {
		ctx.SetUserValue("id", parts[3])

		switch {
		case parts[4] == "questions" && method == "POST":
			app.quizHandler.AddQuestion(ctx)
			return
		case parts[4] == "questions" && method == "GET":
			app.quizHandler.ListQuestions(ctx)
			return
		case parts[4] == "leaderboard" && method == "GET":
			app.sessionHandler.Leaderboard(ctx)
			return
		}
	}

	app.serve404(ctx)
}

func (app *application) handleSessionRoutes(ctx *fasthttp.RequestCtx, path, method string) {
	parts := strings.Split(path, "/")

	// /api/sessions/user/{userId}
	if len(parts) == 5 && parts[3] == "user" && method == "GET" {
		ctx.SetUserValue("userId", parts[4])
		app.sessionHandler.UserHistory(ctx)
		return
	}

	// /api/sessions/{id}
	if len(parts) == 4 && method == "GET" {
		ctx.SetUserValue("id", parts[3])
		app.sessionHandler.Get(ctx)
		return
	}

	if len(parts) == 5 {
		ctx.SetUserValue("id", parts[3])

		switch {
		case parts[4] == "answer" && method == "POST":
			app.sessionHandler.RecordAnswer(ctx)
			return
		case parts[4] == "submit" && method == "POST":
			app.sessionHandler.Submit(ctx)
			return
		case parts[4] == "result" && method == "GET":
			app.sessionHandler.Result(ctx)
			return
		}
	}

	app.serve404(ctx)
}

func (app *application) handleMaterialRoutes(ctx *fasthttp.RequestCtx, path, method string) {
	parts := strings.Split(path, "/")

	// /api/materials/{id}/download
	if len(parts) == 5 && parts[4] == "download" && method == "GET" {
		ctx.SetUserValue("id", parts[3])
		app.materialHandler.Download(ctx)
		return
	}

	app.serve404(ctx)
}

func (app *application) serve404(ctx *fasthttp.RequestCtx) {
	ctx.SetStatusCode(fasthttp.StatusNotFound)
	ctx.SetContentType("application/json")
	ctx.SetBodyString(`{"success": false, "error": "Ruta no encontrada"}`)
}
