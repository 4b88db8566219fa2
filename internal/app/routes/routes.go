package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rbvitales/yearbook-api/internal/app/controllers"
	"github.com/rbvitales/yearbook-api/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	studentController *controllers.StudentController,
	albumController *controllers.AlbumController,
	photoController *controllers.PhotoController,
	searchController *controllers.SearchController,
	dashboardController *controllers.DashboardController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.RefreshToken)
	}

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		// Profile routes
		authenticated.GET("/profile", authController.GetProfile)
		authenticated.PUT("/profile", authController.UpdateProfile)

		// Student directory routes
		students := authenticated.Group("/students")
		{
			students.GET("", studentController.Directory)
			students.GET("/typeahead", studentController.Typeahead)
			students.GET("/:id", studentController.GetStudentByID)

			// Staff-only record management
			studentsStaffProtected := students.Group("")
			studentsStaffProtected.Use(authMiddleware.StaffRequired())
			{
				studentsStaffProtected.POST("", studentController.CreateStudent)
				studentsStaffProtected.PUT("/:id", studentController.UpdateStudent)
				studentsStaffProtected.DELETE("/:id", studentController.DeleteStudent)
				studentsStaffProtected.POST("/bulk", studentController.BulkAction)
			}
		}

		// Album routes
		albums := authenticated.Group("/albums")
		{
			albums.GET("", albumController.ListAlbums)
			albums.GET("/:id", albumController.GetAlbum)

			albumsStaffProtected := albums.Group("")
			albumsStaffProtected.Use(authMiddleware.StaffRequired())
			{
				albumsStaffProtected.POST("", albumController.CreateAlbum)
				albumsStaffProtected.PUT("/:id", albumController.UpdateAlbum)
				albumsStaffProtected.DELETE("/:id", albumController.DeleteAlbum)
				albumsStaffProtected.POST("/:id/photos", photoController.AddPhotos)
			}
		}

		// Photo routes
		photos := authenticated.Group("/photos")
		{
			photos.GET("/:id", photoController.GetPhoto)

			photosStaffProtected := photos.Group("")
			photosStaffProtected.Use(authMiddleware.StaffRequired())
			{
				photosStaffProtected.DELETE("/:id", photoController.DeletePhoto)
			}
		}

		// Unified search and history routes
		authenticated.GET("/search", searchController.Search)
		authenticated.GET("/searches/recent", searchController.RecentSearches)

		// Staff administration routes
		admin := authenticated.Group("/admin")
		admin.Use(authMiddleware.StaffRequired())
		{
			admin.GET("/dashboard", dashboardController.Overview)
			admin.GET("/students", studentController.AdminList)
			admin.GET("/albums", albumController.AdminListAlbums)
		}
	}
}
