package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/facturia/billing-api/internal/application/auth"
	"github.com/facturia/billing-api/internal/application/billing"
	"github.com/facturia/billing-api/internal/application/usecase"
	infraexcel "github.com/facturia/billing-api/internal/infrastructure/excel"
	infrapdf "github.com/facturia/billing-api/internal/infrastructure/pdf"
	"github.com/facturia/billing-api/internal/infrastructure/postgres"
	"github.com/facturia/billing-api/internal/infrastructure/xmlexport"
	httpRouter "github.com/facturia/billing-api/internal/interfaces/http"
	"github.com/facturia/billing-api/pkg/config"
	"github.com/facturia/billing-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	companyRepo := postgres.NewCompanyRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	serviceRepo := postgres.NewServiceRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	bankRepo := postgres.NewBankRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	companyUC := usecase.NewCompanyUseCase(companyRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	serviceUC := usecase.NewServiceUseCase(serviceRepo, customerRepo)
	bankUC := usecase.NewBankUseCase(bankRepo)

	invoiceUC := billing.NewInvoiceUseCase(txRunner, invoiceRepo, customerRepo)
	cascadeUC := billing.NewCascadeUseCase(txRunner, customerRepo, serviceRepo)
	exportUC := billing.NewExportUseCase(
		invoiceRepo, customerRepo, companyRepo,
		infrapdf.NewMarotoInvoicePDF(),
		xmlexport.NewInvoiceXML(),
		infraexcel.NewInvoiceExcel(),
	)

	authUC := auth.NewUseCase(userRepo, companyRepo, cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.Expiration)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Billing Admin API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CompanyUC:  companyUC,
		CustomerUC: customerUC,
		ServiceUC:  serviceUC,
		BankUC:     bankUC,
		InvoiceUC:  invoiceUC,
		CascadeUC:  cascadeUC,
		ExportUC:   exportUC,
		AuthUC:     authUC,
		JWTSecret:  cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
