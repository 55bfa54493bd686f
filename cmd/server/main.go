package main

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ajaymkoli/Job-Portal/internal/config"
	"github.com/ajaymkoli/Job-Portal/internal/dtos"
	"github.com/ajaymkoli/Job-Portal/internal/handlers"
	"github.com/ajaymkoli/Job-Portal/internal/logger"
	"github.com/ajaymkoli/Job-Portal/internal/middleware"
	"github.com/ajaymkoli/Job-Portal/internal/services"
	"github.com/ajaymkoli/Job-Portal/internal/store"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// Environment variables may also come from the shell, so a missing
	// .env file is not fatal.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	log.Info("starting job portal",
		zap.String("addr", cfg.Addr),
		zap.String("log_level", cfg.LogLevel),
	)

	// Directories live for the process lifetime and are injected into
	// every handler.
	users := store.NewUserStore(log)
	jobs := store.NewJobStore(log)
	applicants := store.NewApplicantStore(log)

	resumes, err := store.NewResumeStore(cfg.ResumeDir, log)
	if err != nil {
		log.Fatal("failed to initialize resume storage", zap.Error(err))
	}

	var notifier services.Notifier
	if cfg.SMTPConfigured() {
		notifier = services.NewMailNotifier(cfg, users, log)
		log.Info("smtp notifier enabled", zap.String("host", cfg.SMTPHost))
	} else {
		notifier = services.NewLogNotifier(log)
		log.Info("smtp not configured, confirmation emails will be logged only")
	}

	applications := services.NewApplicationService(jobs, applicants, resumes, notifier, cfg.MailTimeout, log)

	userHandler := handlers.NewUserHandler(users, log)
	jobHandler := handlers.NewJobHandler(jobs, applicants, resumes, cfg.PageSize, log)
	applicationHandler := handlers.NewApplicationHandler(applications, jobs, resumes, log)

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := dtos.RegisterValidations(v); err != nil {
			log.Fatal("failed to register form validations", zap.Error(err))
		}
	}

	router := gin.New()
	router.Use(middleware.RequestLogger(log))
	router.Use(gin.Recovery())
	router.MaxMultipartMemory = handlers.MaxResumeSize

	sessionStore := cookie.NewStore([]byte(cfg.SessionSecret))
	sessionStore.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400,
		HttpOnly: true,
		Secure:   false,
	})
	router.Use(sessions.Sessions("jobportal_session", sessionStore))
	router.Use(middleware.LastVisit(users, jobs, applicants))

	router.SetFuncMap(template.FuncMap{
		"add": func(a, b int) int { return a + b },
		"sub": func(a, b int) int { return a - b },
	})
	router.LoadHTMLGlob("web/templates/*.html")
	router.Static("/static", "web/static")

	router.GET("/", handlers.Home)
	router.GET("/about", handlers.About)
	router.GET("/health", handlers.HealthCheck)

	// User routes
	router.GET("/register", userHandler.GetRegister)
	router.POST("/register", userHandler.PostRegister)
	router.GET("/login", userHandler.GetLogin)
	router.POST("/login", userHandler.PostLogin)
	router.GET("/logout", userHandler.Logout)

	// Job routes
	router.GET("/jobs", jobHandler.GetJobs)
	router.GET("/jobdetails/:id", jobHandler.GetJobDetails)

	auth := router.Group("/", middleware.RequireAuth())
	{
		auth.GET("/postjob", jobHandler.GetPostJob)
		auth.POST("/postjob", jobHandler.PostJob)
		auth.GET("/postjob/:id", jobHandler.GetPostJob)
		auth.POST("/postjob/:id", jobHandler.PostJob)
		auth.POST("/deletejob/:id", jobHandler.DeleteJob)
		auth.GET("/myjobs", jobHandler.GetMyJobs)
		auth.GET("/applicants/:id", jobHandler.GetApplicants)
		auth.GET("/download-resume/:id", jobHandler.DownloadResume)
	}

	// Applicant routes
	router.POST("/apply/:id", applicationHandler.Apply)

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: router,
	}

	go func() {
		log.Info("server listening", zap.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	sig := <-sigChan
	log.Info("received shutdown signal", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("shutdown failed", zap.Error(err))
	}

	log.Info("server stopped")
}
