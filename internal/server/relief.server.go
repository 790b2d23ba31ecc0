package server

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/Anurag07-07/Resculink/internal/config"
	"github.com/Anurag07-07/Resculink/internal/handler"
	"github.com/Anurag07-07/Resculink/internal/middleware"
	"github.com/Anurag07-07/Resculink/internal/repository"
	"github.com/Anurag07-07/Resculink/internal/router"
	"github.com/Anurag07-07/Resculink/internal/usecase"
	"github.com/Anurag07-07/Resculink/internal/ws"
	"github.com/Anurag07-07/Resculink/pkg/cache"
	"github.com/Anurag07-07/Resculink/pkg/jwtutil"
	xerrors "github.com/Anurag07-07/Resculink/pkg/utils/errors"
)

func NewServer(ctx context.Context, cfg config.AppConfig) (*http.Server, func(), error) {
	dbpool, err := pgxpool.New(ctx, cfg.DBConnString)
	if err != nil {
		return nil, nil, err
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
	})

	userRepo := repository.NewUserRepository(dbpool)
	requestRepo := repository.NewRequestRepository(dbpool)

	jwtGen := jwtutil.NewGenerator([]byte(cfg.JWTSecret), cfg.JWTIssuer, cfg.JWTAudience, cfg.TokenTTL)
	jwtVerifier := jwtutil.NewVerifier([]byte(cfg.JWTSecret), cfg.JWTIssuer, cfg.JWTAudience)

	events := ws.NewReliefEventPublisher(rdb)
	summaryCache := cache.New(rdb)

	authUC := usecase.NewAuthUsecase(userRepo, events, cfg.SuperAdminEmail)
	requestUC := usecase.NewRequestUsecase(requestRepo, userRepo, events)
	verificationUC := usecase.NewVerificationUsecase(userRepo, summaryCache)

	if err := seedSuperAdmin(ctx, authUC, userRepo, cfg); err != nil {
		log.Printf("[WARN] failed to seed super admin: %v", err)
	}

	// realtime fan-out
	wsServer := ws.NewServer()
	wsServer.Start()

	listenCtx, cancelListen := context.WithCancel(context.Background())
	go ws.ListenReliefEvents(listenCtx, rdb, wsServer.Hub())

	auth := middleware.NewAuthMiddleware(jwtVerifier, userRepo, verificationUC)

	authHandler := handler.NewAuthHandler(authUC, jwtGen)
	requestHandler := handler.NewRequestHandler(requestUC)
	adminHandler := handler.NewAdminHandler(verificationUC)
	ngoHandler := handler.NewNGOHandler(verificationUC)
	wsHandler := handler.NewWSHandler(wsServer)

	r := chi.NewRouter()
	router.SetupRoutes(r, auth, authHandler, requestHandler, adminHandler, ngoHandler, wsHandler, rdb)

	cleanup := func() {
		cancelListen()
		rdb.Close()
		dbpool.Close()
	}

	return &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}, cleanup, nil
}

// seedSuperAdmin registers the configured admin account on first boot so
// the NGO review queue is never orphaned.
func seedSuperAdmin(ctx context.Context, authUC *usecase.AuthUsecase, users *repository.UserRepository, cfg config.AppConfig) error {
	if cfg.SuperAdminEmail == "" || cfg.SuperAdminPassword == "" {
		log.Println("[WARN] SUPER_ADMIN_EMAIL/SUPER_ADMIN_PASSWORD not set, skipping admin seeding")
		return nil
	}

	if _, err := users.GetByEmail(ctx, cfg.SuperAdminEmail); err == nil {
		return nil
	} else if !errors.Is(err, xerrors.ErrUserNotFound) {
		return err
	}

	_, _, err := authUC.Register(ctx, usecase.RegisterInput{
		Name:     cfg.SuperAdminName,
		Email:    cfg.SuperAdminEmail,
		Password: cfg.SuperAdminPassword,
	})
	if err != nil {
		return err
	}
	log.Println("System admin seeding complete")
	return nil
}
