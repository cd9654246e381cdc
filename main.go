package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"

	"kostku_backend/internals/configs"
	database "kostku_backend/internals/databases"
	helper "kostku_backend/internals/helpers"
	helperOSS "kostku_backend/internals/helpers/oss"
	middlewares "kostku_backend/internals/middlewares"
	routes "kostku_backend/internals/route"
)

func main() {
	configs.InitLogger("kostku")
	configs.LoadEnv()

	app := fiber.New(middlewares.WithProxyConfig(fiber.Config{
		// 🚀 JSON super cepat
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: true,
		ErrorHandler:          helper.ErrorHandler,
		BodyLimit:             int(12 * 1024 * 1024), // bukti bayar maks 10MB + field form
	}))

	middlewares.SetupMiddlewares(app)

	// 🔌 DB connect + pool + warm-up
	database.ConnectDB()
	database.TunePool()
	if configs.GetEnvBool("AUTO_MIGRATE", false) {
		if err := database.AutoMigrate(database.DB); err != nil {
			configs.Logger.WithError(err).Fatal("❌ auto migrate gagal")
		}
	}
	database.WarmUpQueries()

	// 🪣 storage bukti bayar
	blob, err := helperOSS.NewBlobServiceFromEnv(configs.StorageDriver, configs.ProofBucket)
	if err != nil {
		configs.Logger.WithError(err).Fatal("❌ storage tidak siap")
	}

	// ✅ Routes
	routes.SetupRoutes(app, database.DB, blob)

	// 🔒 Keep-Alive & timeout koneksi server
	app.Server().ReadTimeout = 60 * time.Second // upload bukti
	app.Server().WriteTimeout = 60 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	// Start server non-blocking
	go func() {
		configs.Logger.Infof("✅ Listening on :%s", port)
		if err := app.Listen("0.0.0.0:" + port); err != nil {
			configs.Logger.WithError(err).Fatal("server error")
		}
	}()

	// graceful shutdown + tutup pool DB
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)

	database.Close()
}
