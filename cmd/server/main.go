package main

import (
	"crypto/tls"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Emanuel684/gestion-inventario-minimarket-back/internal/database"
	"github.com/Emanuel684/gestion-inventario-minimarket-back/internal/global"
	"github.com/Emanuel684/gestion-inventario-minimarket-back/internal/logger"
)

// initLogger khởi tạo logger cho toàn bộ ứng dụng.
// Cấu hình đọc từ environment variables.
func initLogger() {
	if err := logger.Init(nil); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}

	log := logger.GetAppLogger()
	log.Info("Logger system initialized successfully")
}

// main_thread khởi tạo và chạy Fiber server trên main goroutine
func main_thread() {
	app := InitFiberApp()

	cfg := global.MongoDB_ServerConfig
	address := cfg.Address

	log := logger.GetAppLogger()

	// Shutdown khi nhận SIGINT/SIGTERM, đóng kết nối Mongo sau khi
	// server ngừng nhận request
	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig

		log.Info("Shutdown signal received, stopping server...")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.WithError(err).Error("Error during server shutdown")
		}
	}()

	if cfg.TLS_CertFile != "" && cfg.TLS_KeyFile != "" {
		cert, err := tls.LoadX509KeyPair(cfg.TLS_CertFile, cfg.TLS_KeyFile)
		if err != nil {
			log.Fatalf("Error loading TLS certificate: %v", err)
		}

		ln, err := net.Listen("tcp", address)
		if err != nil {
			log.Fatalf("Error creating listener: %v", err)
		}

		tlsConfig := &tls.Config{
			Certificates: []tls.Certificate{cert},
			MinVersion:   tls.VersionTLS12,
		}

		log.WithFields(map[string]interface{}{
			"address": address,
			"cert":    cfg.TLS_CertFile,
		}).Info("Starting server with HTTPS/TLS")

		if err := app.Listener(tls.NewListener(ln, tlsConfig)); err != nil {
			log.Fatalf("Error in Fiber Listener with TLS: %v", err)
		}
	} else {
		log.WithFields(map[string]interface{}{
			"address":  address,
			"protocol": "HTTP",
		}).Info("Starting server with HTTP")

		if err := app.Listen(address); err != nil {
			log.Fatalf("Error in Fiber Listen: %v", err)
		}
	}

	if err := database.CloseInstance(global.MongoDB_Session); err != nil {
		log.WithError(err).Error("Error closing MongoDB connection")
	}
	log.Info("Server stopped")
}

func main() {
	// Khởi tạo logger
	initLogger()

	// Khởi tạo các biến toàn cục
	InitGlobal()

	// Khởi tạo registry collection
	InitRegistry()

	// Chạy Fiber server trên main thread
	main_thread()
}
