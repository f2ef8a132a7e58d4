// Command restaurant-service serves the restaurant ordering API.
//
//	@title						Restaurant ordering API
//	@version					1.0
//	@description				Menu, cart, orders, payments, receipts and table bookings.
//	@BasePath					/
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MikeMC777/restaurante-ecom/internal/auth"
	"github.com/MikeMC777/restaurante-ecom/internal/booking"
	"github.com/MikeMC777/restaurante-ecom/internal/cart"
	"github.com/MikeMC777/restaurante-ecom/internal/config"
	"github.com/MikeMC777/restaurante-ecom/internal/db"
	"github.com/MikeMC777/restaurante-ecom/internal/events"
	"github.com/MikeMC777/restaurante-ecom/internal/logging"
	"github.com/MikeMC777/restaurante-ecom/internal/menu"
	"github.com/MikeMC777/restaurante-ecom/internal/order"
	"github.com/MikeMC777/restaurante-ecom/internal/payment"
	"github.com/MikeMC777/restaurante-ecom/internal/receipt"
	"github.com/MikeMC777/restaurante-ecom/internal/user"
)

func main() {
	cfg := config.Load()
	log := logging.New("restaurant-service", cfg.LogLevel, cfg.Production())
	if cfg.Production() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("restaurant-service stopped")
	}
}

func run(ctx context.Context, cfg config.Config, log zerolog.Logger) error {
	pool, err := db.Connect(ctx, cfg.PostgresDSN, log)
	if err != nil {
		return err
	}
	defer pool.Close()
	if err := db.Migrate(cfg.PostgresDSN, log); err != nil {
		return err
	}

	tokens, err := auth.NewMaker(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		return err
	}

	var menuRepo menu.Repository = menu.NewPGRepo(pool)
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		defer rdb.Close()
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("redis unreachable, menu cache will fall through")
		}
		menuRepo = menu.NewCachedRepo(menuRepo, rdb, cfg.MenuCacheTTL, log)
	}

	var pub events.Publisher = events.Nop{}
	if len(cfg.KafkaBrokers) > 0 {
		kp := events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
		defer kp.Close()
		pub = kp
		log.Info().Strs("brokers", cfg.KafkaBrokers).Str("topic", cfg.KafkaTopic).Msg("publishing events to kafka")
	}

	menuSvc := menu.NewService(menuRepo)
	svc := services{
		users:    user.NewService(user.NewPGRepo(pool), tokens),
		menu:     menuSvc,
		cart:     cart.NewService(cart.NewPGRepo(pool), menuSvc),
		orders:   order.NewService(order.NewPGRepo(pool), pub, log),
		payments: payment.NewService(payment.NewPGRepo(pool), pub, log),
		receipts: receipt.NewService(receipt.NewPGRepo(pool)),
		bookings: booking.NewService(booking.NewPGRepo(pool)),
	}

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
	})
	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           c.Handler(newRouter(svc, tokens, pool, log)),
		ReadHeaderTimeout: 5 * time.Second,
	}

	hs := health.NewServer()
	gs := grpc.NewServer()
	healthpb.RegisterHealthServer(gs, hs)
	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		return err
	}

	errc := make(chan error, 2)
	go func() {
		log.Info().Str("addr", cfg.GRPCAddr).Msg("grpc health listening")
		errc <- gs.Serve(lis)
	}()
	go func() {
		log.Info().Str("addr", cfg.HTTPAddr).Msg("restaurant-service listening")
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
	}()
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)

	select {
	case <-ctx.Done():
	case err = <-errc:
	}

	hs.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if serr := srv.Shutdown(shutdownCtx); serr != nil {
		log.Error().Err(serr).Msg("http shutdown")
	}
	gs.GracefulStop()
	log.Info().Msg("restaurant-service stopped")
	return err
}
