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

	"github.com/jhoicas/homer-api/internal/application/auth"
	appfridge "github.com/jhoicas/homer-api/internal/application/fridge"
	"github.com/jhoicas/homer-api/internal/application/usecase"
	"github.com/jhoicas/homer-api/internal/infrastructure/nameday"
	infrapdf "github.com/jhoicas/homer-api/internal/infrastructure/pdf"
	"github.com/jhoicas/homer-api/internal/infrastructure/postgres"
	"github.com/jhoicas/homer-api/internal/infrastructure/weather"
	httpRouter "github.com/jhoicas/homer-api/internal/interfaces/http"
	"github.com/jhoicas/homer-api/pkg/config"
	"github.com/jhoicas/homer-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env: cfg.App.Env,
		App: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	itemRepo := postgres.NewItemRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	tagRepo := postgres.NewTagRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	roleRepo := postgres.NewRoleRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	itemUC := usecase.NewItemUseCase(itemRepo, txRunner)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	tagUC := usecase.NewTagUseCase(tagRepo)
	roleUC := usecase.NewRoleUseCase(roleRepo, userRepo)
	authUC := auth.NewAuthUseCase(userRepo, roleRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	shoppingListPDF := infrapdf.NewShoppingListGenerator()
	fridgeUC := appfridge.NewUseCase(itemRepo, categoryRepo, tagRepo, shoppingListPDF)

	namedayLookup, err := nameday.NewLookup()
	if err != nil {
		log.Fatal().Err(err).Msg("cargar santoral")
	}
	weatherClient := weather.NewClient(cfg.Weather)
	if !weatherClient.Configured() {
		log.Warn().Msg("WEATHER_API_KEY vacía, /api/weather deshabilitado")
	}

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
		Title:    "Homer API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ItemUC:     itemUC,
		CategoryUC: categoryUC,
		TagUC:      tagUC,
		RoleUC:     roleUC,
		AuthUC:     authUC,
		FridgeUC:   fridgeUC,
		Nameday:    namedayLookup,
		Weather:    weatherClient,
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
