package app

import (
	"gleam_backend/docs"
	"gleam_backend/internal/config"
	"gleam_backend/internal/middleware"
	"gleam_backend/internal/model"
	"gleam_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	a.registerPublicRoutes(router, c, cfg)
	a.registerPortalRoutes(router, c, cfg)

	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		a.registerPatientRoutes(authGroup, c)
		a.registerHealthWorkerRoutes(authGroup, c)
		a.registerManagementRoutes(authGroup, c)
		a.registerAdminRoutes(authGroup, c)
	}
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
		public.POST("/logout", c.auth.Logout)

		// Educational materials and the feedback survey are open to guests.
		public.GET("/materials", c.content.ListPublished)
		public.GET("/materials/:id", c.content.GetMaterial)
		public.POST("/feedback", middleware.TryAuthMiddleware(cfg), c.feedback.Create)
	}
}

// registerPortalRoutes covers the protected navigation subtree. The guard
// decides allow/redirect before any handler runs.
func (a *App) registerPortalRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	portal := router.Group(middleware.PortalRoot)
	portal.Use(middleware.PortalGuard(cfg))
	{
		portal.GET("", c.portal.Home)
		portal.GET("/:segment", c.portal.Home)
		portal.GET("/:segment/*page", c.portal.Home)
	}
}

func (a *App) registerPatientRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.GET("/profile", c.auth.GetProfile)

	patient := rg.Group("/patient")
	patient.Use(middleware.RoleMiddleware(model.Patient))
	{
		patient.GET("/quiz/active", c.quiz.GetActiveBank)
		patient.GET("/quiz/:id/questions", c.quiz.LoadQuestions)
		patient.POST("/quiz/:id/answers", c.quiz.RecordAnswer)
		patient.GET("/quiz/:id/session", c.quiz.GetSession)
		patient.DELETE("/quiz/:id/session", c.quiz.AbandonSession)
		patient.POST("/quiz/:id/submit", c.quiz.Submit)

		patient.GET("/riwayat", c.history.MyHistory)
		patient.GET("/riwayat/:id", c.history.MyDetail)

		patient.POST("/screening/predict", c.screening.Predict)
		patient.GET("/screening", c.screening.MyHistory)
	}
}

func (a *App) registerHealthWorkerRoutes(rg *gin.RouterGroup, c *controllers) {
	hw := rg.Group("/health_worker")
	hw.Use(middleware.RoleMiddleware(model.HealthWorker, model.Admin))
	{
		hw.GET("/screenings", c.screening.List)
		hw.GET("/screenings/:id", c.screening.Get)
		hw.GET("/submissions", c.history.ListSubmissions)
		hw.GET("/submissions/:id", c.history.SubmissionDetail)
	}
}

func (a *App) registerManagementRoutes(rg *gin.RouterGroup, c *controllers) {
	mgmt := rg.Group("/management")
	mgmt.Use(middleware.RoleMiddleware(model.Management, model.Admin))
	{
		mgmt.GET("/submissions", c.history.ListSubmissions)
		mgmt.GET("/submissions/:id", c.history.SubmissionDetail)
		mgmt.GET("/feedback", c.feedback.List)
	}
}

func (a *App) registerAdminRoutes(rg *gin.RouterGroup, c *controllers) {
	admin := rg.Group("/admin")
	admin.Use(middleware.RoleMiddleware(model.Admin))
	{
		admin.GET("/users", c.user.ListUsers)
		admin.GET("/users/:id", c.user.GetUser)
		admin.PUT("/users/:id", c.user.UpdateUser)
		admin.DELETE("/users/:id", c.user.DeleteUser)
		admin.POST("/users/:id/password", c.user.ResetPassword)
		admin.PATCH("/users/:id/disabled", c.user.SetDisabled)

		admin.POST("/banks", c.bank.CreateBank)
		admin.GET("/banks", c.bank.ListBanks)
		admin.GET("/banks/:id", c.bank.GetBank)
		admin.PUT("/banks/:id", c.bank.UpdateBank)
		admin.POST("/banks/:id/publish", c.bank.PublishBank)
		admin.DELETE("/banks/:id", c.bank.DeleteBank)

		admin.POST("/banks/:id/questions", c.bank.CreateQuestion)
		admin.GET("/banks/:id/questions", c.bank.ListQuestions)
		admin.PUT("/questions/:qid", c.bank.UpdateQuestion)
		admin.DELETE("/questions/:qid", c.bank.DeleteQuestion)

		admin.POST("/materials", c.content.CreateMaterial)
		admin.GET("/materials", c.content.ListAll)
		admin.PUT("/materials/:id", c.content.UpdateMaterial)
		admin.PATCH("/materials/:id/publish", c.content.SetPublished)
		admin.DELETE("/materials/:id", c.content.DeleteMaterial)
		admin.POST("/materials/upload", c.content.UploadFile)

		admin.GET("/feedback", c.feedback.List)
	}
}
