package app

import (
	"lms_backend/docs"
	"lms_backend/internal/config"
	"lms_backend/internal/middleware"
	"lms_backend/internal/model"
	"lms_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())
	router.GET("/health", c.health.Health)

	a.registerPublicRoutes(router, c)

	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		a.registerAuthenticatedRoutes(authGroup, c)
		a.registerTeacherRoutes(authGroup, c)
		a.registerAdminRoutes(authGroup, c)
	}
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.Health)
		public.POST("/auth/register", c.auth.Register)
		public.POST("/auth/login", c.auth.Login)

		public.GET("/certificates/verify/:code", c.certificate.Verify)

		videos := public.Group("/videos")
		{
			videos.GET("/list", c.video.List)
			videos.GET("/stream/:filename", c.video.Stream)
			videos.GET("/pdf/:filename", c.video.PDF)
		}
	}
}

func (a *App) registerAuthenticatedRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.GET("/auth/me", c.auth.GetProfile)

	rg.GET("/users", c.user.List)
	rg.GET("/users/:id", c.user.Get)
	rg.GET("/users/role/:role", c.user.ListByRole)

	rg.GET("/courses", c.course.List)
	rg.GET("/courses/active", c.course.ListActive)
	rg.GET("/courses/:id", c.course.Get)

	rg.GET("/modules/:id", c.module.Get)
	rg.GET("/modules/course/:courseId", c.module.ListByCourse)

	rg.GET("/lessons", c.videoLesson.List)
	rg.GET("/lessons/:id", c.videoLesson.Get)
	rg.GET("/lessons/course/:courseId", c.videoLesson.ListByCourse)

	rg.GET("/quizzes", c.quiz.List)
	rg.GET("/quizzes/:id", c.quiz.Get)
	rg.POST("/quizzes/:id/submit", c.quiz.Submit)
	rg.GET("/quizzes/:id/attempts", c.quiz.GetAttempts)

	rg.POST("/enrollments", c.enrollment.Enroll)
	rg.GET("/enrollments/student/:id", c.enrollment.ListByStudent)
	rg.GET("/enrollments/course/:id", c.enrollment.ListByCourse)
	rg.PUT("/enrollments/:id/progress", c.enrollment.UpdateProgress)
	rg.POST("/enrollments/:id/drop", c.enrollment.Drop)

	rg.GET("/reflections/:id", c.reflection.GetAssignment)
	rg.POST("/reflections/:id/submissions", c.reflection.SaveDraft)
	rg.GET("/reflections/submissions/:id", c.reflection.GetSubmission)
	rg.PUT("/reflections/submissions/:id", c.reflection.UpdateDraft)
	rg.POST("/reflections/submissions/:id/submit", c.reflection.Submit)

	rg.GET("/certificates/student/:id", c.certificate.ListByStudent)

	rg.GET("/forums", c.forum.ListForums)
	rg.GET("/forums/:id", c.forum.GetForum)
	rg.POST("/forums", c.forum.CreateForum)
	rg.GET("/forums/:id/posts", c.forum.ListPosts)
	rg.POST("/forums/:id/posts", c.forum.CreatePost)
	rg.GET("/posts/:id/replies", c.forum.ListReplies)
	rg.POST("/posts/:id/replies", c.forum.CreateReply)
	rg.DELETE("/posts/:id", c.forum.DeletePost)

	rg.GET("/portfolio", c.portfolio.Get)
	rg.POST("/portfolio/items", c.portfolio.AddItem)
	rg.DELETE("/portfolio/items/:id", c.portfolio.RemoveItem)

	rg.GET("/notifications", c.notification.List)
	rg.GET("/notifications/unread-count", c.notification.UnreadCount)
	rg.POST("/notifications/:id/read", c.notification.MarkRead)
	rg.POST("/notifications/read-all", c.notification.MarkAllRead)
	rg.DELETE("/notifications/:id", c.notification.Delete)

	rg.GET("/rubrics", c.rubric.List)
	rg.GET("/rubrics/:id", c.rubric.Get)

	rg.POST("/files/upload/video", c.file.UploadVideo)
	rg.POST("/files/upload/pdf", c.file.UploadPDF)
	rg.DELETE("/files/delete", c.file.Delete)
	rg.POST("/videos/metadata", c.video.SaveMetadata)
}

// registerTeacherRoutes covers the authoring surface. Admins pass the role
// check as well.
func (a *App) registerTeacherRoutes(rg *gin.RouterGroup, c *controllers) {
	teacher := rg.Group("")
	teacher.Use(middleware.RoleMiddleware(model.RoleTeacher))
	{
		teacher.POST("/courses", c.course.Create)
		teacher.PUT("/courses/:id", c.course.Update)
		teacher.DELETE("/courses/:id", c.course.Delete)

		teacher.POST("/modules", c.module.Create)
		teacher.PUT("/modules/:id", c.module.Update)
		teacher.DELETE("/modules/:id", c.module.Delete)

		teacher.POST("/lessons", c.videoLesson.Create)
		teacher.PUT("/lessons/:id", c.videoLesson.Update)
		teacher.DELETE("/lessons/:id", c.videoLesson.Delete)

		teacher.POST("/quizzes", c.quiz.Create)
		teacher.DELETE("/quizzes/:id", c.quiz.Delete)

		teacher.POST("/reflections", c.reflection.CreateAssignment)
		teacher.PUT("/reflections/:id", c.reflection.UpdateAssignment)
		teacher.DELETE("/reflections/:id", c.reflection.DeleteAssignment)
		teacher.GET("/reflections/:id/submissions", c.reflection.ListSubmissions)
		teacher.POST("/reflections/submissions/:id/grade", c.reflection.Grade)

		teacher.POST("/certificates", c.certificate.Generate)

		teacher.DELETE("/forums/:id", c.forum.DeleteForum)

		teacher.POST("/rubrics", c.rubric.Create)
		teacher.PUT("/rubrics/:id", c.rubric.Update)
		teacher.DELETE("/rubrics/:id", c.rubric.Delete)
		teacher.POST("/rubrics/:id/criteria", c.rubric.AddCriterion)
		teacher.PUT("/rubrics/criteria/:id", c.rubric.UpdateCriterion)
		teacher.DELETE("/rubrics/criteria/:id", c.rubric.DeleteCriterion)
	}
}

func (a *App) registerAdminRoutes(rg *gin.RouterGroup, c *controllers) {
	admin := rg.Group("")
	admin.Use(middleware.RoleMiddleware(model.RoleAdmin))
	{
		admin.POST("/users", c.user.Create)
		admin.PUT("/users/:id", c.user.Update)
		admin.DELETE("/users/:id", c.user.Delete)
	}
}
