package server

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/SeaS7/mentor-verse/backend/internal/database"
	"github.com/SeaS7/mentor-verse/backend/internal/handlers"
	"github.com/SeaS7/mentor-verse/backend/internal/middleware"
)

type Server struct {
	db      database.Service
	handler *handlers.Handler
}

// New configures the HTTP server around an already-connected database
// service. The caller owns the database lifecycle.
func New(db database.Service) *http.Server {
	newServer := &Server{
		db:      db,
		handler: handlers.NewHandler(db.GetDB()),
	}

	router := newServer.RegisterRoutes()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080" // local dev fallback
	}

	server := &http.Server{
		Addr:         "0.0.0.0:" + port,
		Handler:      router,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	log.Printf("🚀 Server starting on port %s\n", port)

	return server
}

// RegisterRoutes sets up all application routes
func (s *Server) RegisterRoutes() *gin.Engine {
	r := gin.Default()

	// CORS configuration
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, s.db.Health())
	})

	// API routes
	api := r.Group("/api")
	{
		// Auth routes (public)
		api.POST("/register", s.handler.Auth.Register)
		api.POST("/login", s.handler.Auth.Login)

		// Question routes (public reads)
		api.GET("/questions/pagenated-ques", s.handler.Question.GetPaginatedQuestions)
		api.GET("/questions/:id", s.handler.Question.GetQuestion)
		api.GET("/questions/:id/answers", s.handler.Answer.GetAnswers)

		// Vote and comment routes (public reads)
		api.GET("/votes", s.handler.Vote.GetVotes)
		api.GET("/comments", s.handler.Comment.GetComments)

		// User routes (public reads)
		api.GET("/users/top", s.handler.User.GetTopContributors)
		api.GET("/users/:id", s.handler.User.GetUserProfile)

		// Protected routes (authentication required)
		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			// Auth protected routes
			protected.GET("/me", s.handler.Auth.GetMe)

			// Phone verification
			protected.POST("/verify/send", s.handler.Verify.SendCode)
			protected.POST("/verify/check", s.handler.Verify.CheckCode)

			// Question protected routes
			protected.POST("/questions", s.handler.Question.CreateQuestion)
			protected.PUT("/questions/:id", s.handler.Question.UpdateQuestion)
			protected.DELETE("/questions/:id", s.handler.Question.DeleteQuestion)

			// Answer protected routes
			protected.POST("/answers", s.handler.Answer.CreateAnswer)
			protected.POST("/answer/accept", s.handler.Answer.AcceptAnswer)
			protected.DELETE("/answers/:id", s.handler.Answer.DeleteAnswer)

			// Vote protected routes
			protected.POST("/votes", s.handler.Vote.CastVote)

			// Comment protected routes
			protected.POST("/comments", s.handler.Comment.CreateComment)
			protected.DELETE("/comments/:id", s.handler.Comment.DeleteComment)

			// User protected routes
			protected.PUT("/users/:id", s.handler.User.UpdateUserProfile)

			// Notification routes
			protected.GET("/notifications", s.handler.Notification.GetNotifications)
			protected.PATCH("/notifications/read-all", s.handler.Notification.MarkAllRead)
			protected.PATCH("/notifications/:id/read", s.handler.Notification.MarkRead)
		}
	}

	return r
}
