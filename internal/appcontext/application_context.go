package appcontext

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/RoyceAzure/lab/vendorportal/internal/config"
	"github.com/RoyceAzure/lab/vendorportal/internal/infra/client"
	"github.com/RoyceAzure/lab/vendorportal/internal/infra/repository/localstore"
	"github.com/RoyceAzure/lab/vendorportal/internal/infra/repository/memstore"
	"github.com/RoyceAzure/lab/vendorportal/internal/pkg/limiter"
	"github.com/RoyceAzure/lab/vendorportal/internal/service"
)

type ApplicationContext struct {
	Cf                 *config.Config
	LocalStore         localstore.IStore
	ProductRepo        memstore.IProductRepository
	UserRepo           memstore.IUserRepository
	AdminUserRepo      memstore.IAdminUserRepository
	CompanyUserClient  client.ICompanyUserClient
	RateLimiter        *limiter.TokenBucket
	AuthService        service.IAuthService
	ProductService     service.IProductService
	UserService        service.IUserService
	AdminUserService   service.IAdminUserService
	CompanyUserService service.ICompanyUserService
	CartService        service.ICartService
	ProfileService     service.IProfileService
}

func NewApplicationContext(cf *config.Config) (*ApplicationContext, error) {
	app := ApplicationContext{
		Cf: cf,
	}
	err := app.Init()
	if err != nil {
		return nil, err
	}
	return &app, nil
}

func (app *ApplicationContext) Init() error {
	err := app.setUpLocalStore()
	if err != nil {
		return err
	}
	app.setUpRepositories()
	app.setUpCompanyUserClient()
	app.setUpRateLimiter()
	app.setUpServices()
	return nil
}

func (app *ApplicationContext) setUpLocalStore() error {
	log.Printf("Start setup local store")
	store, err := localstore.NewStore(app.Cf.DataDir)
	if err != nil {
		return fmt.Errorf("setup local store: %w", err)
	}
	app.LocalStore = store
	log.Printf("Finish setup local store")
	return nil
}

// 目錄資料走記憶體，啟動時載入預設種子資料
func (app *ApplicationContext) setUpRepositories() {
	log.Printf("Start setup repositories")
	app.ProductRepo = memstore.NewSeededProductRepo()
	app.UserRepo = memstore.NewSeededUserRepo()
	app.AdminUserRepo = memstore.NewSeededAdminUserRepo()
	log.Printf("Finish setup repositories")
}

func (app *ApplicationContext) setUpCompanyUserClient() {
	log.Printf("Start setup company user client")
	app.CompanyUserClient = client.NewCompanyUserClient(app.Cf.CompanyUserListURL, 30*time.Second)
	log.Printf("Finish setup company user client")
}

func (app *ApplicationContext) setUpRateLimiter() {
	log.Printf("Start setup rate limiter")
	cfg := limiter.GetDefaultLimiterConfig()
	if app.Cf.RateLimitRPS > 0 {
		cfg.Capacity = app.Cf.RateLimitRPS
		cfg.RatePS = app.Cf.RateLimitRPS
	}
	app.RateLimiter = limiter.NewTokenBucket(&cfg)
	log.Printf("Finish setup rate limiter")
}

func (app *ApplicationContext) setUpServices() {
	log.Printf("Start setup services")
	app.AuthService = service.NewAuthService(app.LocalStore, app.Cf.AuthTokenKey)
	app.ProductService = service.NewProductService(app.ProductRepo)
	app.UserService = service.NewUserService(app.UserRepo)
	app.AdminUserService = service.NewAdminUserService(app.AdminUserRepo)
	app.CompanyUserService = service.NewCompanyUserService(app.CompanyUserClient)
	app.CartService = service.NewCartService(app.ProductRepo)
	app.ProfileService = service.NewProfileService(app.LocalStore)
	log.Printf("Finish setup services")
}

func (app *ApplicationContext) Shutdown(ctx context.Context) error {
	log.Printf("Start application shutdown")

	done := make(chan error)
	go func() {
		defer close(done)

		if app.RateLimiter != nil {
			log.Printf("Stopping rate limiter...")
			app.RateLimiter.Stop()
		}

		log.Printf("Application shutdown complete")
		done <- nil
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return fmt.Errorf("shutdown timeout: %v", ctx.Err())
	}
}
