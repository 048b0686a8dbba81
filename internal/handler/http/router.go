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
	appEnv string,
	validationHandler ValidationHandler,
	submissionHandler SubmissionHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "timesheet-rules"),
		slog.String("version", "v1.0.0"),
		slog.String("env", appEnv),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
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

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/validation", func(r chi.Router) {
			r.Post("/leave-conflict", validationHandler.CheckLeaveConflict)
			r.Post("/timesheet-conflict", validationHandler.CheckTimesheetConflict)
		})

		r.Route("/calendar", func(r chi.Router) {
			r.Get("/non-working", validationHandler.GetNonWorkingDay)
			r.Get("/comp-off-eligibility", validationHandler.GetCompOffEligibility)
		})

		r.Post("/leave-requests", submissionHandler.CreateLeaveRequest)
		r.Post("/timesheets/entries", submissionHandler.CreateTimesheetEntries)
	})

	return r
}
