package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/oncampus-api/internal/application/auth"
	"github.com/oncampus-api/internal/application/post"
	"github.com/oncampus-api/internal/application/profile"
	"github.com/oncampus-api/internal/config"
	"github.com/oncampus-api/internal/transport/http/handler"
	appmiddleware "github.com/oncampus-api/internal/transport/http/middleware"
)

// NewRouter builds and returns the application router.
func NewRouter(cfg *config.Config, deps *Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	authMw := appmiddleware.Auth(deps.JWTProvider, deps.BlacklistRepo)

	authSvc := auth.NewService(auth.ServiceDeps{
		UserRepo:      deps.UserRepo,
		OtpRepo:       deps.OtpRepo,
		BlacklistRepo: deps.BlacklistRepo,
		Signer:        deps.JWTProvider,
		Mailer:        deps.Mailer,
		EmailDomain:   cfg.AllowedEmailDomain,
		OTPTTL:        cfg.OTPTTL,
	})
	profileSvc := profile.NewService(deps.UserRepo)
	postSvc := post.NewService(deps.S3Store)

	healthH := handler.NewHealthHandler()
	authH := handler.NewAuthHandler(authSvc)
	profileH := handler.NewProfileHandler(profileSvc)
	postH := handler.NewPostHandler(postSvc)

	// ── Public routes (no auth) ──────────────────────────────────────────
	r.Get("/", healthH.Home)
	r.Get("/health-check/{action}", healthH.Ping)
	r.Post("/auth/register", authH.Register)
	r.Post("/auth/send-otp", authH.SendOTP)
	r.Post("/auth/verify-otp", authH.VerifyOTP)
	r.Post("/auth/login", authH.Login)
	r.Post("/auth/refresh", authH.Refresh)

	// ── Authenticated routes ─────────────────────────────────────────────
	r.Group(func(r chi.Router) {
		r.Use(authMw)

		r.Post("/auth/logout", authH.Logout)
		r.Post("/profile/update", profileH.Update)
		r.Get("/profile/search", profileH.Search)
		r.Get("/posts/upload-url", postH.UploadURL)
	})

	return r
}
