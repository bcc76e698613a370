package router

import (
	"net/http"

	"github.com/Ritesh-Sharma-Dev/trisikkim-bi-sub001/internal/config"
	"github.com/Ritesh-Sharma-Dev/trisikkim-bi-sub001/internal/handler"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

// Setup wires every route onto a gin engine.
func Setup(api *handler.API, cfg config.AppConfig) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	r := gin.Default()

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	// the store's own defaults mark the cookie Secure with SameSite=None,
	// which plain-http clients drop; Secure stays opt-in for TLS deployments
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   30 * 24 * 60 * 60,
		HttpOnly: true,
		Secure:   cfg.SessionSecure,
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions("trisikkim_session", store))

	// uploaded images are served straight from disk
	r.Static(cfg.UploadURLPath, cfg.UploadDir)

	r.GET("/healthz", api.HealthCheck)

	auth := r.Group("/api/auth")
	{
		auth.POST("/login", api.Login)
		auth.POST("/logout", api.Logout)
		auth.GET("/session", api.Session)
		if api.AllowRegistration() {
			auth.POST("/register", api.Register)
		}
	}

	// public read surface: active rows only
	public := r.Group("/api")
	{
		public.GET("/hero-slides", api.ListHeroSlides)
		public.GET("/dignitaries", api.ListDignitaries)
		public.GET("/tribes", api.ListTribes)
		public.GET("/tribes/:id", api.GetTribe)
		public.GET("/staff", api.ListStaff)
		public.GET("/gallery/categories", api.ListGalleryCategories)
		public.GET("/gallery/images", api.ListGalleryImages)
		public.GET("/updates", api.ListUpdates)
		public.GET("/updates/:id", api.GetUpdate)
		public.GET("/pages/:slug", api.GetPage)
		public.GET("/settings", api.ListSettings)
		public.GET("/settings/last-updated", api.LastUpdated)
		public.POST("/visitors", api.IncrementVisitors)
		public.POST("/contact", api.SubmitContact)
	}

	// admin surface: session required, inactive rows visible
	admin := r.Group("/api/admin")
	admin.Use(handler.AuthRequired())
	{
		admin.GET("/stats", api.DashboardStats)
		admin.POST("/upload", api.UploadImage)

		admin.GET("/hero-slides", api.ListHeroSlidesAdmin)
		admin.GET("/hero-slides/:id", api.GetHeroSlide)
		admin.POST("/hero-slides", api.CreateHeroSlide)
		admin.PUT("/hero-slides/:id", api.UpdateHeroSlide)
		admin.DELETE("/hero-slides/:id", api.DeleteHeroSlide)

		admin.GET("/dignitaries", api.ListDignitariesAdmin)
		admin.GET("/dignitaries/:id", api.GetDignitary)
		admin.POST("/dignitaries", api.CreateDignitary)
		admin.PUT("/dignitaries/:id", api.UpdateDignitary)
		admin.DELETE("/dignitaries/:id", api.DeleteDignitary)

		admin.GET("/tribes", api.ListTribesAdmin)
		admin.GET("/tribes/:id", api.GetTribe)
		admin.POST("/tribes", api.CreateTribe)
		admin.PUT("/tribes/:id", api.UpdateTribe)
		admin.DELETE("/tribes/:id", api.DeleteTribe)

		admin.GET("/staff", api.ListStaffAdmin)
		admin.GET("/staff/:id", api.GetStaffMember)
		admin.POST("/staff", api.CreateStaffMember)
		admin.PUT("/staff/:id", api.UpdateStaffMember)
		admin.DELETE("/staff/:id", api.DeleteStaffMember)

		admin.GET("/gallery/categories", api.ListGalleryCategoriesAdmin)
		admin.POST("/gallery/categories", api.CreateGalleryCategory)
		admin.PUT("/gallery/categories/:id", api.UpdateGalleryCategory)
		admin.DELETE("/gallery/categories/:id", api.DeleteGalleryCategory)

		admin.GET("/gallery/images", api.ListGalleryImagesAdmin)
		admin.POST("/gallery/images", api.CreateGalleryImage)
		admin.PUT("/gallery/images/:id", api.UpdateGalleryImage)
		admin.DELETE("/gallery/images/:id", api.DeleteGalleryImage)

		admin.GET("/updates", api.ListUpdatesAdmin)
		admin.GET("/updates/:id", api.GetUpdate)
		admin.POST("/updates", api.CreateUpdate)
		admin.PUT("/updates/:id", api.UpdateUpdate)
		admin.DELETE("/updates/:id", api.DeleteUpdate)

		admin.GET("/pages", api.ListPagesAdmin)
		admin.PUT("/pages/:slug", api.UpsertPage)
		admin.DELETE("/pages/:slug", api.DeletePage)

		admin.PUT("/settings", api.SetSettings)
		admin.DELETE("/settings/:key", api.DeleteSetting)
		admin.PUT("/visitors", api.SetVisitors)

		admin.GET("/messages", api.ListContactMessages)
		admin.PUT("/messages/:id/read", api.MarkContactMessageRead)
		admin.DELETE("/messages/:id", api.DeleteContactMessage)
	}

	return r
}
