package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/IvanCG94/ProjectMechaArkV3-sub000/internal/engine"
	"github.com/IvanCG94/ProjectMechaArkV3-sub000/internal/server"
	"github.com/IvanCG94/ProjectMechaArkV3-sub000/internal/version"
	"github.com/IvanCG94/ProjectMechaArkV3-sub000/pkg/logger"
)

func init() {
	logger.Init()
}

func main() {
	// 1. Парсинг конфигурации
	var seed int64
	var wildCount int
	flag.Int64Var(&seed, "seed", 0, "World seed (0 for random)")
	flag.IntVar(&wildCount, "wild", 4, "Number of wild robots to spawn")
	flag.Parse()

	logger.Log.Info("Starting MechaArk...")
	logger.Log.Info(version.String())

	// Формируем конфиг
	cfg := engine.DefaultConfig()
	cfg.WildCount = wildCount
	if seed != 0 {
		cfg.Seed = seed
		logger.Log.Infof("🎲 Using explicit seed: %d", seed)
	} else {
		logger.Log.Infof("🎲 Using random seed: %d", cfg.Seed)
	}

	port := os.Getenv("MA_PORT")
	if port == "" {
		port = "8080"
	}

	// 2. Инициализация ядра с конфигом
	gameService := engine.NewService(cfg)
	gameService.Start()

	// Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// 3. Запуск сервера
	srv := server.New(gameService, port)

	go func() {
		if err := srv.Run(); err != nil {
			logger.Log.Fatal("Server start error:", err)
		}
	}()

	<-stop
	logger.Log.Info("Shutting down...")
}
