package http

import (
	"net/http"

	"appraise/internal/assessment"
	"appraise/internal/auth"
	"appraise/internal/config"
	"appraise/internal/http/handler"
	mw "appraise/internal/http/middleware"
	"appraise/internal/logging"
	"appraise/internal/payment"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

type Deps struct {
	Users       auth.UserStore
	Assessments assessment.Store
	Gateway     payment.Gateway
	JWT         *auth.JWT
	Log         *zap.Logger
}

func NewRouter(cfg config.Config, d Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(logging.Middleware(d.Log))
	r.Use(chimw.Recoverer)

	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(mw.CORS(cfg.CORSAllowedOrigins, cfg.CORSAllowCredentials))
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	requireAuth := auth.RequireAuth(d.JWT, d.Users)

	ah := &handler.AuthHandler{Users: d.Users, JWT: d.JWT, Log: d.Log}
	me := &handler.MeHandler{}
	assessSvc := assessment.NewService(d.Assessments, d.Users, d.Log)
	assessH := &handler.AssessmentHandler{Svc: assessSvc, Log: d.Log}
	payH := &handler.PaymentHandler{Gateway: d.Gateway, Log: d.Log}

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", ah.Register)
		r.Post("/auth/login", ah.Login)

		r.Group(func(r chi.Router) {
			r.Use(requireAuth)

			r.Get("/auth/me", me.Me)

			r.Post("/assessments", assessH.Create)
			r.Get("/assessments", assessH.List)

			r.Post("/payment", payH.Charge)
			r.Get("/generate-letter/{assessmentId}", assessH.GenerateLetter)
		})
	})

	if cfg.Production {
		r.NotFound(spaHandler(cfg.StaticDir))
	} else {
		r.NotFound(func(w http.ResponseWriter, _ *http.Request) { writeNotFound(w) })
	}
	r.MethodNotAllowed(writeMethodNotAllowed)

	return r
}
