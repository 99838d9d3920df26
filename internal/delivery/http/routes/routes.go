package routes

import (
	"log"

	"tutor-match/internal/config"
	"tutor-match/internal/database"
	"tutor-match/internal/delivery/http/handler"
	"tutor-match/internal/delivery/http/middleware"
	"tutor-match/internal/pkg/jwt"
	"tutor-match/internal/repository"
	"tutor-match/internal/usecase"
	"tutor-match/internal/ws"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/static"
)

// Register wires repositories, usecases and handlers onto the app.
// The endpoints live at the root, not under a version prefix.
func Register(app *fiber.App, cfg config.Config, db database.DB, cache usecase.SearchCache, hub *ws.Hub, logger *log.Logger) {
	if app == nil {
		return
	}

	jwtSvc := jwt.NewHMACService(cfg.JWT.Secret, cfg.JWT.ExpiresIn)
	authMw := middleware.NewAuthMiddleware(jwtSvc)

	userRepo := repository.NewPostgresUserRepository(db)

	authUC := usecase.NewAuthUsecase(userRepo, jwtSvc, cache)
	tutorUC := usecase.NewTutorUsecase(userRepo, cache, cfg.Redis.TTL)
	scoreUC := usecase.NewScoreUsecase(userRepo, cache)

	handler.NewHealthHandler(pinger(db)).RegisterRoutes(app)
	handler.NewAuthHandler(authUC).RegisterRoutes(app)
	handler.NewTutorHandler(tutorUC).RegisterRoutes(app)

	scored := app.Group("", authMw.Middleware())
	handler.NewScoreHandler(scoreUC).RegisterRoutes(scored)

	if hub != nil {
		wsHandler := ws.NewHandler(hub, logger)
		app.Get("/ws/scores", wsHandler.HandleScoresWS)
	}

	app.Get("/*", static.New("./web"))
}

func pinger(db database.DB) handler.Pinger {
	if db == nil {
		return nil
	}
	return db
}
