package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

func NewRouter(
	corsOrigin string,
	env string,
	employeeHandler EmployeeHandler,
	attendanceHandler AttendanceHandler,
	analyticsHandler AnalyticsHandler,
	historyHandler HistoryHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "attendly"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{corsOrigin},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/employees", func(r chi.Router) {
		r.Get("/", employeeHandler.ListEmployees)
		r.Post("/", employeeHandler.CreateEmployee)
		r.Route("/{employeeID}", func(r chi.Router) {
			r.Get("/", employeeHandler.GetEmployee)
			r.Put("/", employeeHandler.UpdateEmployee)
			r.Delete("/", employeeHandler.DeleteEmployee)
		})
	})

	r.Route("/attendance", func(r chi.Router) {
		r.Get("/", attendanceHandler.ListAttendance)
		r.Post("/", attendanceHandler.MarkAttendance)
	})

	r.Get("/analytics/summary", analyticsHandler.GetSummary)

	r.Route("/history", func(r chi.Router) {
		r.Get("/", historyHandler.GetHistory)
		r.Get("/range", historyHandler.GetRangeHistory)
		r.Get("/employee/{employeeID}", historyHandler.GetEmployeeHistory)
		r.Get("/{year}/{month}", historyHandler.GetMonthHistory)
	})

	return r
}
