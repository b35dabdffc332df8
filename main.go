// Package main, antren backend uygulamasının giriş noktasıdır.
//
// Bu dosyanın görevi — Dependency Injection "wire-up":
//  1. Config'i yükle
//  2. Database'i başlat (embedded migration'lar dahil)
//  3. i18n çevirilerini yükle
//  4. Repository'leri oluştur (DB bağlantısı ile)
//  5. Service'leri oluştur (repository'ler ile)
//  6. Handler'ları oluştur (service'ler ile)
//  7. Middleware'ları oluştur
//  8. HTTP router'ı kur, route'ları bağla
//  9. CORS yapılandır
//  10. HTTP Server'ı başlat
//  11. Graceful shutdown
//
// Global değişken YOK — her şey bu fonksiyonda oluşturulup birbirine bağlanıyor.
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/akinalp/antren/config"
	"github.com/akinalp/antren/database"
	"github.com/akinalp/antren/handlers"
	"github.com/akinalp/antren/middleware"
	"github.com/akinalp/antren/models"
	"github.com/akinalp/antren/pkg/i18n"
	"github.com/akinalp/antren/repository"
	"github.com/akinalp/antren/services"
	"github.com/rs/cors"
)

func main() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.Println("[main] antren server starting...")

	// ─── 1. Config ───
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[main] failed to load config: %v", err)
	}
	log.Printf("[main] config loaded (port=%d)", cfg.Server.Port)

	// ─── 2. Database ───
	//
	// Migration'lar binary'ye gömülüdür — deployment'ta ayrı bir SQL
	// dizini taşınmaz.
	db, err := database.New(cfg.Database.Path, database.Migrations())
	if err != nil {
		log.Fatalf("[main] failed to initialize database: %v", err)
	}
	defer db.Close()

	// ─── 3. i18n (Çoklu Dil Desteği) ───
	if err := i18n.LoadEmbedded(); err != nil {
		log.Fatalf("[main] failed to load i18n translations: %v", err)
	}

	// ─── 4. Repository Layer ───
	userRepo := repository.NewSQLiteUserRepo(db.Conn)
	exerciseRepo := repository.NewSQLiteExerciseRepo(db.Conn)
	programRepo := repository.NewSQLiteProgramRepo(db.Conn)
	completedRepo := repository.NewSQLiteCompletedRepo(db.Conn)

	// ─── 5. Service Layer ───
	authService := services.NewAuthService(
		userRepo,
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiryMin,
		cfg.JWT.RefreshExpiryHours,
	)
	catalogService := services.NewCatalogService(exerciseRepo, programRepo)
	userService := services.NewUserService(userRepo)
	trackingService := services.NewTrackingService(completedRepo, exerciseRepo)

	// ─── 6. Handler Layer ───
	authHandler := handlers.NewAuthHandler(authService, cfg.Production, cfg.JWT.RefreshExpiryHours)
	exerciseHandler := handlers.NewExerciseHandler(catalogService)
	programHandler := handlers.NewProgramHandler(catalogService)
	userHandler := handlers.NewUserHandler(userService, trackingService)
	adminHandler := handlers.NewAdminHandler(catalogService, userService)

	// ─── 7. Middleware ───
	authMiddleware := middleware.NewAuthMiddleware(authService, userRepo)
	requireUser := middleware.RequireRole(models.RoleUser)
	requireAdmin := middleware.RequireRole(models.RoleAdmin)

	// ─── 8. HTTP Router ───
	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"status":"ok","service":"antren"}`)
	})

	// Auth — public endpoint'ler (token gerekmez)
	mux.HandleFunc("POST /auth/register", authHandler.Register)
	mux.HandleFunc("POST /auth/login", authHandler.Login)
	mux.HandleFunc("POST /auth/refresh", authHandler.Refresh)
	mux.HandleFunc("POST /auth/logout", authHandler.Logout)

	// Katalog — public okuma endpoint'leri
	mux.HandleFunc("GET /exercises", exerciseHandler.List)
	mux.HandleFunc("GET /programs", programHandler.List)

	// User endpoint'leri — USER rolü gerekir (tam eşleşme, ADMIN giremez)
	mux.Handle("GET /users/all", authMiddleware.Require(
		requireUser(http.HandlerFunc(userHandler.ListBasic))))
	mux.Handle("GET /users/profile", authMiddleware.Require(
		requireUser(http.HandlerFunc(userHandler.Profile))))
	mux.Handle("POST /users/track/{exerciseId}", authMiddleware.Require(
		requireUser(http.HandlerFunc(userHandler.Track))))
	mux.Handle("GET /users/completed", authMiddleware.Require(
		requireUser(http.HandlerFunc(userHandler.Completed))))
	mux.Handle("DELETE /users/completed/{completedExerciseId}", authMiddleware.Require(
		requireUser(http.HandlerFunc(userHandler.RemoveCompleted))))

	// Admin endpoint'leri — ADMIN rolü gerekir
	mux.Handle("POST /admin/exercises", authMiddleware.Require(
		requireAdmin(http.HandlerFunc(adminHandler.CreateExercise))))
	mux.Handle("PUT /admin/exercises/{id}", authMiddleware.Require(
		requireAdmin(http.HandlerFunc(adminHandler.UpdateExercise))))
	mux.Handle("DELETE /admin/exercises/{id}", authMiddleware.Require(
		requireAdmin(http.HandlerFunc(adminHandler.DeleteExercise))))
	mux.Handle("POST /admin/programs/{programId}/exercises/{exerciseId}", authMiddleware.Require(
		requireAdmin(http.HandlerFunc(adminHandler.AddExerciseToProgram))))
	mux.Handle("DELETE /admin/programs/{programId}/exercises/{exerciseId}", authMiddleware.Require(
		requireAdmin(http.HandlerFunc(adminHandler.RemoveExerciseFromProgram))))
	mux.Handle("GET /admin/users", authMiddleware.Require(
		requireAdmin(http.HandlerFunc(adminHandler.ListUsers))))
	mux.Handle("GET /admin/users/{id}", authMiddleware.Require(
		requireAdmin(http.HandlerFunc(adminHandler.GetUser))))
	mux.Handle("PUT /admin/users/{id}", authMiddleware.Require(
		requireAdmin(http.HandlerFunc(adminHandler.UpdateUser))))

	// Router'ın tamamını saran katmanlar: panic recovery en dışta,
	// request id onun hemen içinde.
	root := middleware.Recover(middleware.RequestID(mux))

	// ─── 9. CORS ───
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000", "http://localhost:5173"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "language"},
		AllowCredentials: true,
	})

	handler := corsHandler.Handler(root)

	// ─── 10. HTTP Server ───
	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// ─── 11. Graceful Shutdown ───
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("[main] server listening on %s", cfg.Server.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("[main] server error: %v", err)
		}
	}()

	<-done
	log.Println("[main] shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("[main] forced shutdown: %v", err)
	}

	log.Println("[main] server stopped gracefully")
}
