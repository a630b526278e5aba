package api

import (
	"github.com/gin-gonic/gin"

	"github.com/chatboost/chatboost-server/config"
	"github.com/chatboost/chatboost-server/internal/api/handler"
	"github.com/chatboost/chatboost-server/internal/api/middleware"
	"github.com/chatboost/chatboost-server/internal/repository"
	"github.com/chatboost/chatboost-server/internal/service"
	"github.com/chatboost/chatboost-server/internal/session"
)

type Router struct {
	authHandler      *handler.AuthHandler
	userHandler      *handler.UserHandler
	chatHandler      *handler.ChatHandler
	plansHandler     *handler.PlansHandler
	feedbackHandler  *handler.FeedbackHandler
	websocketHandler *handler.WebSocketHandler
	chatService      *service.ChatService
	entitlement      *service.EntitlementService
	userRepo         *repository.UserRepository
	sessions         *session.Manager
	cfg              *config.Config
}

func NewRouter(
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	chatHandler *handler.ChatHandler,
	plansHandler *handler.PlansHandler,
	feedbackHandler *handler.FeedbackHandler,
	websocketHandler *handler.WebSocketHandler,
	chatService *service.ChatService,
	entitlement *service.EntitlementService,
	userRepo *repository.UserRepository,
	sessions *session.Manager,
	cfg *config.Config,
) *Router {
	return &Router{
		authHandler:      authHandler,
		userHandler:      userHandler,
		chatHandler:      chatHandler,
		plansHandler:     plansHandler,
		feedbackHandler:  feedbackHandler,
		websocketHandler: websocketHandler,
		chatService:      chatService,
		entitlement:      entitlement,
		userRepo:         userRepo,
		sessions:         sessions,
		cfg:              cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	if r.cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.CORS(r.cfg.CORS))

	api := engine.Group("/api/v1")
	{
		// WebSocket
		api.GET("/ws", r.websocketHandler.Handle)

		// 公开接口 - 认证
		auth := api.Group("/auth")
		{
			auth.POST("/register", r.authHandler.Register)
			auth.POST("/login", r.authHandler.Login)
			auth.POST("/reset-password", r.authHandler.ResetPassword)
		}

		// 公开接口 - 机器人目录与套餐
		api.GET("/bots", r.chatHandler.ListBots)
		api.GET("/bots/:id", r.chatHandler.GetBot)
		api.GET("/plans", r.plansHandler.List)

		// 公开接口 - 反馈与联系（登录用户自动带上身份）
		forms := api.Group("")
		forms.Use(middleware.OptionalAuth(r.cfg.JWT.Secret, r.sessions))
		{
			forms.POST("/feedback", r.feedbackHandler.SubmitFeedback)
			forms.POST("/contact", r.feedbackHandler.SubmitContact)
		}

		// 对话接口 - API Key 认证
		chat := api.Group("/chat")
		chat.Use(middleware.APIKeyAuth(r.chatService))
		chat.Use(middleware.QuotaCheck(r.userRepo, r.entitlement))
		{
			chat.POST("", r.chatHandler.Send)
		}

		// 需要认证的接口
		authenticated := api.Group("")
		authenticated.Use(middleware.Auth(r.cfg.JWT.Secret, r.sessions))
		{
			authenticated.POST("/auth/logout", r.authHandler.Logout)

			user := authenticated.Group("/user")
			{
				user.GET("/profile", r.userHandler.GetProfile)
				user.GET("/quota", r.userHandler.GetQuota)
				user.POST("/api-key", r.userHandler.GenerateAPIKey)
				user.POST("/subscribe", r.userHandler.Subscribe)
				user.GET("/messages", r.chatHandler.History)
			}
		}
	}

	return engine
}
