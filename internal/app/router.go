package app

import (
	"educonexa_backend/docs"
	"educonexa_backend/internal/middleware"
	"educonexa_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, s *services) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api")
	api.GET("/health", c.health.HealthCheck)

	a.registerAuthRoutes(api, c)
	a.registerCourseRoutes(api, c, s)
	a.registerCommunityRoutes(api, c, s)
	a.registerUserRoutes(api, c)
	a.registerResourceRoutes(api, c, s)
	a.registerAdminRoutes(api, c)
}

func (a *App) registerAuthRoutes(api *gin.RouterGroup, c *controllers) {
	auth := api.Group("/auth")
	{
		auth.POST("/register", c.auth.Register)
		auth.POST("/login", c.auth.Login)
		auth.POST("/logout", c.auth.Logout)
		auth.GET("/me", c.auth.Me)
	}
}

func (a *App) registerCourseRoutes(api *gin.RouterGroup, c *controllers, s *services) {
	courseOwner := middleware.OwnerOrAdmin("id", s.course.OwnerID)

	courses := api.Group("/courses")
	{
		courses.GET("", c.course.ListCourses)
		courses.POST("", middleware.RequireAuth(), c.course.CreateCourse)
		courses.GET("/:id", c.course.GetCourse)
		courses.PATCH("/:id", courseOwner, c.course.UpdateCourse)
		courses.DELETE("/:id", courseOwner, c.course.DeleteCourse)
		courses.GET("/:id/lessons", c.course.ListLessons)
		courses.POST("/:id/lessons", courseOwner, c.course.CreateLesson)
	}

	learner := api.Group("")
	learner.Use(middleware.RequireAuth())
	{
		learner.POST("/lessons/:id/complete", c.learning.CompleteLesson)
		learner.GET("/enrollments", c.learning.ListEnrollments)
		learner.POST("/enrollments", c.learning.Enroll)
		learner.GET("/certifications", c.learning.ListCertifications)
		learner.POST("/certifications/self", c.learning.SelfCertify)
	}

	api.POST("/certifications", middleware.RequireAdmin(), c.learning.GrantCertification)
}

func (a *App) registerCommunityRoutes(api *gin.RouterGroup, c *controllers, s *services) {
	authed := middleware.RequireAuth()

	posts := api.Group("/posts")
	{
		posts.GET("", c.community.ListPosts)
		posts.POST("", authed, c.community.CreatePost)
		posts.DELETE("/:id", middleware.OwnerOrAdmin("id", s.community.PostOwnerID), c.community.DeletePost)
		posts.POST("/:id/like", authed, c.community.LikePost)
		posts.DELETE("/:id/like", authed, c.community.UnlikePost)
		posts.POST("/:id/share", authed, c.community.SharePost)
		posts.GET("/:id/comments", c.community.ListComments)
		posts.POST("/:id/comments", authed, c.community.CreateComment)
	}

	api.DELETE("/comments/:id", middleware.OwnerOrAdmin("id", s.community.CommentOwnerID), c.community.DeleteComment)

	api.GET("/events", c.community.ListEvents)
	api.POST("/events", authed, c.community.CreateEvent)
}

func (a *App) registerUserRoutes(api *gin.RouterGroup, c *controllers) {
	authed := middleware.RequireAuth()

	users := api.Group("/users")
	{
		users.GET("/:id", c.user.GetUser)
		users.POST("/:id/follow", authed, c.user.Follow)
		users.DELETE("/:id/follow", authed, c.user.Unfollow)
		users.GET("/:id/followers", c.user.Followers)
		users.GET("/:id/following", c.user.Following)
	}

	profile := api.Group("/profile")
	profile.Use(authed)
	{
		profile.PATCH("", c.user.UpdateProfile)
		profile.POST("/avatar", c.user.UploadAvatar)
	}
}

func (a *App) registerResourceRoutes(api *gin.RouterGroup, c *controllers, s *services) {
	resources := api.Group("/resources")
	{
		resources.GET("", c.resource.ListResources)
		resources.POST("", middleware.RequireAuth(), c.resource.CreateResource)
		resources.POST("/upload", middleware.RequireAuth(), c.resource.UploadResource)
		resources.DELETE("/:id", middleware.OwnerOrAdmin("id", s.resource.OwnerID), c.resource.DeleteResource)
	}
}

func (a *App) registerAdminRoutes(api *gin.RouterGroup, c *controllers) {
	admin := api.Group("/admin")
	admin.Use(middleware.RequireAdmin())
	{
		admin.GET("/users", c.user.ListUsers)
		admin.PATCH("/users/:id/role", c.user.ChangeRole)
	}
}
