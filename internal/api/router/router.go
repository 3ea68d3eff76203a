package router

import (
	"fmt"
	"net/http"

	"github.com/RoyceAzure/lab/vendorportal/internal/api"
	m "github.com/RoyceAzure/lab/vendorportal/internal/api/middleware"
	"github.com/RoyceAzure/lab/vendorportal/internal/pkg/limiter"
	"github.com/RoyceAzure/lab/vendorportal/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

func SetupRouter(server *api.Server, authService service.IAuthService, bucket *limiter.TokenBucket, logger *zerolog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// 全局中間件
	r.Use(m.RequestIdMiddleware)
	r.Use(middleware.RealIP)
	r.Use(m.LoggerMiddleware(logger))

	authRequired := m.AuthMiddleware(authService)
	companyUserLimit := m.NewRateLimitMiddleware(bucket)

	// API 路由
	r.Route("/api/v1", func(r chi.Router) {
		//Auth相關路由
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", server.AuthHandler.Login)
			r.Post("/signup", server.AuthHandler.Signup)
			r.Post("/logout", server.AuthHandler.Logout)
			r.With(authRequired).Get("/me", server.AuthHandler.Me)
		})

		//登入後才能使用的路由
		r.Group(func(r chi.Router) {
			r.Use(authRequired)

			r.Route("/products", func(r chi.Router) {
				r.Get("/", server.ProductHandler.List)
				r.Post("/", server.ProductHandler.Create)
				r.Get("/export/xlsx", server.ProductHandler.ExportXLSX)
				r.Get("/{id}", server.ProductHandler.Get)
				r.Put("/{id}", server.ProductHandler.Update)
				r.Delete("/{id}", server.ProductHandler.Delete)
			})

			r.Route("/users", func(r chi.Router) {
				r.Get("/", server.UserHandler.List)
				r.Post("/", server.UserHandler.Create)
				r.Get("/export/csv", server.UserHandler.ExportCSV)
				r.Get("/{id}", server.UserHandler.Get)
				r.Put("/{id}", server.UserHandler.Update)
				r.Delete("/{id}", server.UserHandler.Delete)
			})

			r.Route("/admin/users", func(r chi.Router) {
				r.Get("/", server.AdminUserHandler.List)
				r.Post("/", server.AdminUserHandler.Create)
				r.Get("/export/csv", server.AdminUserHandler.ExportCSV)
				r.Delete("/{id}", server.AdminUserHandler.Delete)
				r.Patch("/{id}/status", server.AdminUserHandler.ToggleStatus)
			})

			//上游名錄走外部API，掛rate limit保護
			r.Route("/company-users", func(r chi.Router) {
				r.Use(companyUserLimit)
				r.Get("/", server.CompanyUserHandler.List)
				r.Get("/{id}", server.CompanyUserHandler.Get)
			})

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", server.CartHandler.Get)
				r.Post("/items", server.CartHandler.AddItem)
				r.Put("/items/{productID}", server.CartHandler.UpdateItem)
				r.Delete("/items/{productID}", server.CartHandler.RemoveItem)
				r.Post("/invoice", server.CartHandler.GenerateInvoice)
				r.Post("/invoice/export/text", server.CartHandler.ExportInvoiceText)
				r.Post("/invoice/export/html", server.CartHandler.ExportInvoiceHTML)
				r.Post("/checkout", server.CartHandler.ConfirmCheckout)
			})

			r.Route("/profile", func(r chi.Router) {
				r.Get("/theme", server.ProfileHandler.GetTheme)
				r.Put("/theme", server.ProfileHandler.SetTheme)
			})
		})
	})

	// 在設置完所有路由後打印路由樹
	fmt.Println(chi.Walk(r, func(method string, route string, handler http.Handler, middlewares ...func(http.Handler) http.Handler) error {
		fmt.Printf("%s %s\n", method, route)
		return nil
	}))
	return r
}
