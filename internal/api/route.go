package api

import (
	"ProtectAdmin/internal/api/middleware"
	"ProtectAdmin/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		authGroup := apiGroup.Group("/auth")
		{
			// 无需登录即可访问的接口
			authGroup.POST("/login", group.AuthHandler.Login)
			authGroup.POST("/password/forgot", group.AuthHandler.ForgotPassword)
			authGroup.PUT("/password/reset", group.AuthHandler.ResetPassword)

			sessionGroup := authGroup.Group("")
			sessionGroup.Use(middleware.AuthMiddleware())
			{
				sessionGroup.POST("/logout", group.AuthHandler.Logout)
				sessionGroup.GET("/session", group.AuthHandler.GetSession)
			}
		}

		postGroup := apiGroup.Group("/posts")
		postGroup.Use(middleware.AuthMiddleware(), middleware.CheckRoles("ADMIN"))
		{
			postGroup.GET("", group.PostHandler.List)
			postGroup.GET("/:id", group.PostHandler.GetByID)
			postGroup.POST("", group.PostHandler.Create)
			postGroup.PUT("/:id", group.PostHandler.Update)
			postGroup.DELETE("/:id", group.PostHandler.Delete)
		}

		productGroup := apiGroup.Group("/products")
		productGroup.Use(middleware.AuthMiddleware(), middleware.CheckRoles("ADMIN"))
		{
			productGroup.GET("", group.ProductHandler.List)
			productGroup.GET("/:id", group.ProductHandler.GetByID)
			productGroup.POST("", group.ProductHandler.Create)
			productGroup.PUT("/:id", group.ProductHandler.Update)
			productGroup.DELETE("/:id", group.ProductHandler.Delete)
		}

		galleryGroup := apiGroup.Group("/gallery")
		galleryGroup.Use(middleware.AuthMiddleware(), middleware.CheckRoles("ADMIN"))
		{
			galleryGroup.GET("", group.GalleryHandler.List)
			galleryGroup.GET("/:id", group.GalleryHandler.GetByID)
			galleryGroup.POST("", group.GalleryHandler.Create)
			galleryGroup.DELETE("/:id", group.GalleryHandler.Delete)
		}

		videoGroup := apiGroup.Group("/videos")
		videoGroup.Use(middleware.AuthMiddleware(), middleware.CheckRoles("ADMIN"))
		{
			videoGroup.GET("", group.VideoHandler.List)
			videoGroup.POST("", group.VideoHandler.Create)
			videoGroup.DELETE("/:id", group.VideoHandler.Delete)
			videoGroup.GET("/progress/:upload_id", group.VideoHandler.GetProgress)
		}

		// WS 鉴权走查询串 token，不挂 AuthMiddleware
		apiGroup.GET("/ws", group.WSHandler.Connect)
	}

	return r
}
