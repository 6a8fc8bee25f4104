package routes

import (
	"time"

	"league-portal-backend/internal/api/handlers"
	"league-portal-backend/internal/api/middleware"
	"league-portal-backend/internal/auth"
	"league-portal-backend/internal/config"
	"league-portal-backend/internal/repository"
	"league-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	validator := validator.New()

	// Initialize repositories
	txManager := repository.NewTxManager(db)
	userRepo := repository.NewUserRepository(db)
	leagueRepo := repository.NewLeagueRepository(db)
	leagueMemberRepo := repository.NewLeagueMemberRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	teamMemberRepo := repository.NewTeamMemberRepository(db)
	locationRepo := repository.NewLocationRepository(db)
	matchRepo := repository.NewMatchRepository(db)
	submissionRepo := repository.NewMatchResultSubmissionRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	// Initialize services
	userService := service.NewUserService(userRepo, validator)
	leagueService := service.NewLeagueService(leagueRepo, leagueMemberRepo, userRepo, validator)
	teamService := service.NewTeamService(teamRepo, teamMemberRepo, leagueRepo, userRepo, validator)
	locationService := service.NewLocationService(locationRepo, validator)
	matchService := service.NewMatchService(matchRepo, leagueRepo, teamRepo, locationRepo, submissionRepo, validator)
	notificationService := service.NewNotificationService(notificationRepo)
	eligibilityResolver := service.NewEligibilityResolver(teamMemberRepo, leagueMemberRepo)
	reconciliationService := service.NewReconciliationService(
		txManager, matchRepo, submissionRepo, teamRepo, leagueMemberRepo,
		eligibilityResolver, notificationService, validator,
	)

	// Initialize auth
	authService := auth.NewService(cfg.JWTSecret, time.Duration(cfg.JWTExpiryHours)*time.Hour)
	authMiddleware := auth.NewMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	userHandler := handlers.NewUserHandler(userService)
	leagueHandler := handlers.NewLeagueHandler(leagueService)
	teamHandler := handlers.NewTeamHandler(teamService)
	locationHandler := handlers.NewLocationHandler(locationService)
	matchHandler := handlers.NewMatchHandler(matchService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	submissionHandler := handlers.NewSubmissionHandler(reconciliationService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes - All endpoints require authentication
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		// User routes
		users := v1.Group("/users")
		{
			users.GET("", userHandler.GetUsers)
			users.POST("", userHandler.CreateUser)
			users.GET("/:id", userHandler.GetUser)
			users.PUT("/:id", userHandler.UpdateUser)
			users.DELETE("/:id", userHandler.DeleteUser)
		}

		// League routes
		leagues := v1.Group("/leagues")
		{
			leagues.GET("", leagueHandler.GetLeagues)
			leagues.POST("", leagueHandler.CreateLeague)
			leagues.GET("/:id", leagueHandler.GetLeague)
			leagues.PUT("/:id", leagueHandler.UpdateLeague)
			leagues.DELETE("/:id", leagueHandler.DeleteLeague)
			leagues.GET("/:id/members", leagueHandler.GetLeagueMembers)
			leagues.POST("/:id/members", leagueHandler.AddLeagueMember)
			leagues.DELETE("/:id/members/:memberId", leagueHandler.RemoveLeagueMember)
			leagues.GET("/:id/teams", teamHandler.GetTeamsByLeague)
			leagues.GET("/:id/matches", matchHandler.GetMatchesByLeague)
		}

		// Team routes
		teams := v1.Group("/teams")
		{
			teams.POST("", teamHandler.CreateTeam)
			teams.GET("/:id", teamHandler.GetTeam)
			teams.PUT("/:id", teamHandler.UpdateTeam)
			teams.DELETE("/:id", teamHandler.DeleteTeam)
			teams.GET("/:id/members", teamHandler.GetTeamMembers)
			teams.POST("/:id/members", teamHandler.AddTeamMember)
			teams.DELETE("/:id/members/:memberId", teamHandler.RemoveTeamMember)
		}

		// Location routes
		locations := v1.Group("/locations")
		{
			locations.GET("", locationHandler.GetLocations)
			locations.POST("", locationHandler.CreateLocation)
			locations.GET("/:id", locationHandler.GetLocation)
			locations.PUT("/:id", locationHandler.UpdateLocation)
			locations.DELETE("/:id", locationHandler.DeleteLocation)
		}

		// Match routes, including result submission
		matches := v1.Group("/matches")
		{
			matches.POST("", matchHandler.CreateMatch)
			matches.GET("/:id", matchHandler.GetMatch)
			matches.PUT("/:id", matchHandler.UpdateMatch)
			matches.DELETE("/:id", matchHandler.DeleteMatch)
			matches.GET("/:id/submissions", matchHandler.GetMatchSubmissions)
			matches.POST("/:id/results", submissionHandler.SubmitResult)
		}

		// Submission adjudication routes
		submissions := v1.Group("/submissions")
		{
			submissions.PATCH("/:id/status", submissionHandler.UpdateSubmissionStatus)
			submissions.DELETE("/:id", submissionHandler.DeleteSubmission)
		}

		// Notification routes
		notifications := v1.Group("/notifications")
		{
			notifications.GET("", notificationHandler.GetNotifications)
			notifications.PATCH("/:id/read", notificationHandler.MarkNotificationRead)
			notifications.DELETE("/:id", notificationHandler.DeleteNotification)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
