package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/vntrieu/usersvc/internal/httpapi/handler"
)

// NewRouter builds the root HTTP router: GET / and GET /users behind request ID, access log,
// panic recovery and, when allowedOrigins is non-empty, CORS. Every other path is chi's 404.
func NewRouter(users handler.UserLister, logger *zap.Logger, allowedOrigins []string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	r := chi.NewRouter()

	r.Use(RequestID)
	r.Use(middleware.RealIP)
	r.Use(AccessLog(logger))
	r.Use(middleware.Recoverer)
	if len(allowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: allowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type", RequestIDHeader},
			ExposedHeaders: []string{RequestIDHeader},
			MaxAge:         300,
		}))
	}

	r.Get("/", handler.Hello)

	userHandler := handler.NewUserHandler(users, logger)
	r.Get("/users", userHandler.ListUsers)

	return r
}
