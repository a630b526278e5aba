package main

import (
	"fmt"
	"log"

	"github.com/chatboost/chatboost-server/config"
	"github.com/chatboost/chatboost-server/internal/api"
	"github.com/chatboost/chatboost-server/internal/api/handler"
	"github.com/chatboost/chatboost-server/internal/database"
	"github.com/chatboost/chatboost-server/internal/pkg/email"
	"github.com/chatboost/chatboost-server/internal/pkg/ws"
	"github.com/chatboost/chatboost-server/internal/repository"
	"github.com/chatboost/chatboost-server/internal/service"
	"github.com/chatboost/chatboost-server/internal/session"
)

func main() {
	// 加载配置
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 初始化数据库
	db, err := database.NewMySQL(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}
	log.Println("Database connected")

	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	if cfg.Server.Mode == "debug" {
		if err := database.SeedDemoUsers(db); err != nil {
			log.Printf("Failed to seed demo users: %v", err)
		}
	}

	// 初始化 Redis
	rdb, err := database.NewRedis(&cfg.Redis)
	if err != nil {
		log.Fatalf("Failed to connect redis: %v", err)
	}
	log.Println("Redis connected")

	// 初始化会话
	sessionStore := session.NewStore(rdb, cfg.Session.TTL())
	sessions := session.NewManager(sessionStore)

	// 初始化 WebSocket Hub
	wsHub := ws.NewHub()
	log.Println("WebSocket hub started")

	// 初始化 Repository
	userRepo := repository.NewUserRepository(db)
	msgRepo := repository.NewMessageRepository(db)
	subRepo := repository.NewSubscriptionRepository(db)
	feedbackRepo := repository.NewFeedbackRepository(db)

	// 初始化 Service
	mailer := email.NewService(&cfg.Email)
	entitlement := service.NewEntitlementService(cfg)
	authService := service.NewAuthService(userRepo, sessions, entitlement, mailer, cfg)
	userService := service.NewUserService(userRepo, subRepo, sessions, entitlement, cfg)
	chatService := service.NewChatService(userRepo, msgRepo, sessions, wsHub, cfg)
	feedbackService := service.NewFeedbackService(feedbackRepo)

	// 初始化 Handler
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	chatHandler := handler.NewChatHandler(chatService)
	plansHandler := handler.NewPlansHandler(entitlement)
	feedbackHandler := handler.NewFeedbackHandler(feedbackService)
	websocketHandler := handler.NewWebSocketHandler(wsHub, sessions, cfg.JWT.Secret)

	// 初始化 Router
	router := api.NewRouter(
		authHandler,
		userHandler,
		chatHandler,
		plansHandler,
		feedbackHandler,
		websocketHandler,
		chatService,
		entitlement,
		userRepo,
		sessions,
		cfg,
	)
	engine := router.Setup()

	// 启动服务器
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Printf("Server starting on %s", addr)
	if err := engine.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
