package main // Entry point package

import (
    "log"

    "github.com/joho/godotenv"
    "github.com/labstack/echo/v4"

    "github.com/iliyamo/hotel-reservation/internal/config"
    "github.com/iliyamo/hotel-reservation/internal/database"
    "github.com/iliyamo/hotel-reservation/internal/handler"
    "github.com/iliyamo/hotel-reservation/internal/queue"
    "github.com/iliyamo/hotel-reservation/internal/repository"
    "github.com/iliyamo/hotel-reservation/internal/router"
    "github.com/iliyamo/hotel-reservation/internal/service"
    "github.com/iliyamo/hotel-reservation/internal/utils"
)

func main() {
    // .env is optional; real deployments set variables directly.
    _ = godotenv.Load()

    cfg := config.Load()

    db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
    if err != nil {
        log.Fatalf("database: %v", err)
    }
    defer db.Close()

    rdb := config.NewRedisClient() // nil when Redis is unreachable

    // Repositories over the shared connection pool.
    roomRepo := repository.NewRoomRepo(db)
    guestRepo := repository.NewGuestRepo(db)
    reservationRepo := repository.NewReservationRepo(db)
    paymentRepo := repository.NewPaymentRepo(db)
    userRepo := repository.NewUserRepo(db)
    tokenRepo := repository.NewTokenRepo(db)

    // Domain services.
    roomSvc := service.NewRoomService(roomRepo, reservationRepo)
    reservationSvc := service.NewReservationService(reservationRepo, roomRepo, guestRepo, roomSvc, cfg.CheckoutRoomStatus)
    paymentSvc := service.NewPaymentService(paymentRepo)

    // Background consumer: writes confirmation events to the booking log.
    go func() {
        if err := queue.StartReservationConsumer(); err != nil {
            log.Printf("queue consumer: %v", err)
        }
    }()

    e := echo.New()
    e.Validator = utils.NewRequestValidator()

    router.RegisterRoutes(e)
    router.RegisterAuth(e, handler.NewAuthHandler(cfg, userRepo, tokenRepo), cfg.JWTSecret)
    router.RegisterHotel(e, cfg, rdb,
        handler.NewRoomHandler(roomSvc),
        handler.NewGuestHandler(guestRepo),
        handler.NewReservationHandler(reservationSvc, roomSvc, paymentSvc),
        handler.NewDashboardHandler(roomSvc, reservationSvc, paymentSvc),
    )

    addr := ":" + cfg.Port
    log.Printf("listening on %s (env=%s)", addr, cfg.Env)

    if err := e.Start(addr); err != nil {
        log.Fatal(err)
    }
}
