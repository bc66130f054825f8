package http

import (
	"log/slog"
	"os"

	"github.com/MohamedRadiWebDev/HRAttendance-codex-fix-attendance-calculation-logic-n5uo7s/internal/config"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

func NewRouter(
	cfg *config.Config,
	employeeHandler EmployeeHandler,
	ruleHandler RuleHandler,
	adjustmentHandler AdjustmentHandler,
	punchHandler PunchHandler,
	attendanceHandler AttendanceHandler,
	punchLinkHandler PunchLinkHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hr-attendance"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
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

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/employees", func(r chi.Router) {
			r.Get("/", employeeHandler.ListEmployees)
			r.Post("/", employeeHandler.CreateEmployee)
			r.Get("/{id}", employeeHandler.GetEmployee)
			r.Put("/{id}", employeeHandler.UpdateEmployee)
		})

		r.Route("/rules", func(r chi.Router) {
			r.Get("/", ruleHandler.ListRules)
			r.Post("/", ruleHandler.CreateRule)
			r.Put("/{id}", ruleHandler.UpdateRule)
			r.Delete("/{id}", ruleHandler.DeleteRule)
		})

		r.Route("/adjustments", func(r chi.Router) {
			r.Get("/", adjustmentHandler.ListAdjustments)
			r.Post("/", adjustmentHandler.CreateAdjustment)
		})

		r.Route("/import", func(r chi.Router) {
			r.Post("/employees", employeeHandler.ImportEmployees)
			r.Post("/punches", punchHandler.ImportPunches)
			r.Post("/adjustments", adjustmentHandler.ImportAdjustments)
		})

		r.Route("/attendance", func(r chi.Router) {
			r.Get("/", attendanceHandler.ListAttendance)
			r.Post("/process", attendanceHandler.ProcessAttendance)
		})

		r.Route("/midnight-links", func(r chi.Router) {
			r.Get("/", punchLinkHandler.ScanMidnightLinks)
			r.Post("/action", punchLinkHandler.DecideMidnightLink)
		})
	})
	return r
}
