package api

import (
	"fmt"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/restrohq/restro-api/docs"
	v1 "github.com/restrohq/restro-api/internal/api/handler/v1"
	"github.com/restrohq/restro-api/internal/api/middleware"
	"github.com/restrohq/restro-api/internal/config"
	"github.com/restrohq/restro-api/internal/pkg/idcrypt"
	"github.com/restrohq/restro-api/internal/repository"
	"github.com/restrohq/restro-api/internal/repository/dao"
	"github.com/restrohq/restro-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB) (*Server, error) {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	codec, err := idcrypt.NewCodec([]byte(conf.API.EncryptionKey))
	if err != nil {
		return nil, fmt.Errorf("api.NewServer -> idcrypt.NewCodec -> %w", err)
	}

	s.MountMiddlewares()

	authHandler := s.initAuthHandler(db)
	userHandler := s.initUserHandler(db)
	inventoryHandler := s.initInventoryHandler(db)
	menuHandler := s.initMenuHandler(db)
	settingsHandler := s.initSettingsHandler(db, codec)
	qrMenuHandler := s.initQRMenuHandler(db, codec)
	s.MountHandlers(authHandler, userHandler, inventoryHandler, menuHandler, settingsHandler, qrMenuHandler)

	return s, nil
}

func (s *Server) initAuthHandler(db *gorm.DB) *v1.AuthHandler {
	userDAO := dao.NewUserDAO(db)
	repo := repository.NewUserRepository(userDAO)
	svc := service.NewAuthService(repo)
	handler := v1.NewAuthHandler(s.Config.API, svc)

	return handler
}

func (s *Server) initUserHandler(db *gorm.DB) *v1.UserHandler {
	userDAO := dao.NewUserDAO(db)
	repo := repository.NewUserRepository(userDAO)
	svc := service.NewUserService(repo)
	handler := v1.NewUserHandler(svc)

	return handler
}

func (s *Server) initInventoryHandler(db *gorm.DB) *v1.InventoryHandler {
	inventoryDAO := dao.NewInventoryDAO(db)
	repo := repository.NewInventoryRepository(inventoryDAO)
	svc := service.NewInventoryService(repo)
	handler := v1.NewInventoryHandler(svc)

	return handler
}

func (s *Server) initMenuHandler(db *gorm.DB) *v1.MenuHandler {
	menuDAO := dao.NewMenuDAO(db)
	repo := repository.NewMenuRepository(menuDAO)
	svc := service.NewMenuService(repo)
	handler := v1.NewMenuHandler(svc)

	return handler
}

func (s *Server) initSettingsHandler(db *gorm.DB, codec *idcrypt.Codec) *v1.SettingsHandler {
	settingsDAO := dao.NewSettingsDAO(db)
	repo := repository.NewSettingsRepository(settingsDAO)
	svc := service.NewSettingsService(repo, codec)
	handler := v1.NewSettingsHandler(svc)

	return handler
}

func (s *Server) initQRMenuHandler(db *gorm.DB, codec *idcrypt.Codec) *v1.QRMenuHandler {
	settingsRepo := repository.NewSettingsRepository(dao.NewSettingsDAO(db))
	menuRepo := repository.NewMenuRepository(dao.NewMenuDAO(db))
	orderRepo := repository.NewOrderRepository(dao.NewOrderDAO(db))
	svc := service.NewQRMenuService(settingsRepo, menuRepo, orderRepo, codec, s.Config.Stripe.SecretKey)
	handler := v1.NewQRMenuHandler(svc)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
	s.Router.Use(middleware.Metrics())
}

func (s *Server) MountHandlers(
	authHandler *v1.AuthHandler,
	userHandler *v1.UserHandler,
	inventoryHandler *v1.InventoryHandler,
	menuHandler *v1.MenuHandler,
	settingsHandler *v1.SettingsHandler,
	qrMenuHandler *v1.QRMenuHandler,
) {
	const basePath = "/api/v1"

	auth := s.Router.Group(basePath)
	{
		auth.POST("/auth/signup", authHandler.HandleSignup)
		auth.POST("/auth/login", authHandler.HandleLogin)
	}

	// Guest facing endpoints, resolved by the store's public QR code.
	qr := s.Router.Group(basePath)
	{
		qr.GET("/qr/:qrCode/menu", qrMenuHandler.HandleGetMenu)
		qr.POST("/qr/:qrCode/orders", qrMenuHandler.HandlePlaceOrder)
	}

	authenticator := middleware.NewAuthenticator(s.Config.API.JWTSigningKey)

	users := s.Router.Group(basePath, authenticator.VerifyJWT())
	{
		users.GET("/users/me", userHandler.HandleGetMe)
	}

	inventory := s.Router.Group(basePath, authenticator.VerifyJWT())
	{
		inventory.GET("/inventory/items", inventoryHandler.HandleListItems)
		inventory.GET("/inventory/items/:itemID", inventoryHandler.HandleGetItem)
		inventory.POST("/inventory/items", inventoryHandler.HandleCreateItem)
		inventory.PUT("/inventory/items/:itemID", inventoryHandler.HandleUpdateItem)
		inventory.DELETE("/inventory/items/:itemID", inventoryHandler.HandleDeleteItem)
		inventory.PATCH("/inventory/items/:itemID/image", inventoryHandler.HandleUpdateItemImage)
		inventory.POST("/inventory/items/:itemID/restock", inventoryHandler.HandleRestock)
		inventory.POST("/inventory/items/:itemID/usage", inventoryHandler.HandleUsage)
		inventory.GET("/inventory/items/:itemID/movements", inventoryHandler.HandleGetMovements)
		inventory.GET("/inventory/items/:itemID/movements/export", inventoryHandler.HandleExportMovements)
		inventory.GET("/inventory/units", inventoryHandler.HandleListUnits)
		inventory.POST("/inventory/units", inventoryHandler.HandleCreateUnit)
		inventory.PUT("/inventory/units/:unitID", inventoryHandler.HandleUpdateUnit)
	}

	menu := s.Router.Group(basePath, authenticator.VerifyJWT())
	{
		menu.GET("/menu/items", menuHandler.HandleListItems)
		menu.GET("/menu/items/:itemID", menuHandler.HandleGetItem)
		menu.POST("/menu/items", menuHandler.HandleCreateItem)
		menu.PUT("/menu/items/:itemID", menuHandler.HandleUpdateItem)
		menu.DELETE("/menu/items/:itemID", menuHandler.HandleDeleteItem)
		menu.PATCH("/menu/items/:itemID/image", menuHandler.HandleUpdateItemImage)
		menu.GET("/menu/items/:itemID/addons", menuHandler.HandleListAddons)
		menu.POST("/menu/items/:itemID/addons", menuHandler.HandleCreateAddon)
		menu.PUT("/menu/items/:itemID/addons/:addonID", menuHandler.HandleUpdateAddon)
		menu.DELETE("/menu/items/:itemID/addons/:addonID", menuHandler.HandleDeleteAddon)
		menu.GET("/menu/items/:itemID/variants", menuHandler.HandleListVariants)
		menu.POST("/menu/items/:itemID/variants", menuHandler.HandleCreateVariant)
		menu.PUT("/menu/items/:itemID/variants/:variantID", menuHandler.HandleUpdateVariant)
		menu.DELETE("/menu/items/:itemID/variants/:variantID", menuHandler.HandleDeleteVariant)
	}

	settings := s.Router.Group(basePath, authenticator.VerifyJWT())
	{
		settings.GET("/settings/store", settingsHandler.HandleGetStoreDetails)
		settings.PUT("/settings/store", settingsHandler.HandleSaveStoreDetails)
		settings.POST("/settings/store/qr-code", settingsHandler.HandleRegenerateQRCode)
		settings.GET("/settings/print", settingsHandler.HandleGetPrintSettings)
		settings.PUT("/settings/print", settingsHandler.HandleSavePrintSettings)
		settings.GET("/settings/taxes", settingsHandler.HandleListTaxes)
		settings.POST("/settings/taxes", settingsHandler.HandleCreateTax)
		settings.PUT("/settings/taxes/:taxID", settingsHandler.HandleUpdateTax)
		settings.DELETE("/settings/taxes/:taxID", settingsHandler.HandleDeleteTax)
		settings.GET("/settings/tax-groups", settingsHandler.HandleListTaxGroups)
		settings.POST("/settings/tax-groups", settingsHandler.HandleCreateTaxGroup)
		settings.PUT("/settings/tax-groups/:groupID", settingsHandler.HandleUpdateTaxGroup)
		settings.DELETE("/settings/tax-groups/:groupID", settingsHandler.HandleDeleteTaxGroup)
		settings.GET("/settings/payment-types", settingsHandler.HandleListPaymentTypes)
		settings.POST("/settings/payment-types", settingsHandler.HandleCreatePaymentType)
		settings.PUT("/settings/payment-types/:paymentTypeID", settingsHandler.HandleUpdatePaymentType)
		settings.PATCH("/settings/payment-types/:paymentTypeID/toggle", settingsHandler.HandleTogglePaymentType)
		settings.DELETE("/settings/payment-types/:paymentTypeID", settingsHandler.HandleDeletePaymentType)
		settings.GET("/settings/tables", settingsHandler.HandleListStoreTables)
		settings.POST("/settings/tables", settingsHandler.HandleCreateStoreTable)
		settings.PUT("/settings/tables/:tableID", settingsHandler.HandleUpdateStoreTable)
		settings.DELETE("/settings/tables/:tableID", settingsHandler.HandleDeleteStoreTable)
		settings.GET("/settings/categories", settingsHandler.HandleListCategories)
		settings.POST("/settings/categories", settingsHandler.HandleCreateCategory)
		settings.PUT("/settings/categories/:categoryID", settingsHandler.HandleUpdateCategory)
		settings.DELETE("/settings/categories/:categoryID", settingsHandler.HandleDeleteCategory)
	}

	orders := s.Router.Group(basePath, authenticator.VerifyJWT())
	{
		orders.GET("/orders", qrMenuHandler.HandleListOrders)
		orders.GET("/orders/:orderID", qrMenuHandler.HandleGetOrder)
	}

	s.Router.GET("/", v1.HandleHealthcheck)
	s.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Restro API"
	docs.SwaggerInfo.Description = "Multi-tenant restaurant management API."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
