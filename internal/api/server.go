package api

import "github.com/RoyceAzure/lab/vendorportal/internal/api/handler"

type Server struct {
	AuthHandler        *handler.AuthHandler
	ProductHandler     *handler.ProductHandler
	UserHandler        *handler.UserHandler
	AdminUserHandler   *handler.AdminUserHandler
	CompanyUserHandler *handler.CompanyUserHandler
	CartHandler        *handler.CartHandler
	ProfileHandler     *handler.ProfileHandler
}

func NewServer(
	authHandler *handler.AuthHandler,
	productHandler *handler.ProductHandler,
	userHandler *handler.UserHandler,
	adminUserHandler *handler.AdminUserHandler,
	companyUserHandler *handler.CompanyUserHandler,
	cartHandler *handler.CartHandler,
	profileHandler *handler.ProfileHandler,
) *Server {
	return &Server{
		AuthHandler:        authHandler,
		ProductHandler:     productHandler,
		UserHandler:        userHandler,
		AdminUserHandler:   adminUserHandler,
		CompanyUserHandler: companyUserHandler,
		CartHandler:        cartHandler,
		ProfileHandler:     profileHandler,
	}
}
