package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"

	"github.com/ashaile/humetix-backend-go/internal/config"
)

type Handlers struct {
	Employee   EmployeeHandler
	Calendar   CalendarHandler
	Attendance AttendanceHandler
	Leave      LeaveHandler
	Wage       WageHandler
	Payslip    PayslipHandler
	Advance    AdvanceHandler
}

func NewRouter(cfg *config.Config, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", cfg.App.Name),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.App.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
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

		r.Route("/employees", func(r chi.Router) {
			r.Post("/", h.Employee.Register)
			r.Get("/", h.Employee.List)
			r.Post("/identify", h.Employee.Identify)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.Employee.Get)
				r.Post("/resign", h.Employee.Resign)
			})
		})

		r.Route("/calendar", func(r chi.Router) {
			r.Post("/", h.Calendar.Upsert)
			r.Get("/", h.Calendar.MonthTypes)
			r.Get("/working-days", h.Calendar.WorkingDays)
			r.Delete("/{id}", h.Calendar.Delete)
		})

		r.Route("/attendance", func(r chi.Router) {
			r.Post("/", h.Attendance.Submit)
			r.Put("/", h.Attendance.AdminUpsert)
			r.Post("/import", h.Attendance.Import)
			r.Get("/{employeeID}", h.Attendance.ListMonth)
		})

		r.Route("/leave", func(r chi.Router) {
			r.Post("/sync", h.Leave.SyncAll)
			r.Post("/usages", h.Leave.RegisterUsage)
			r.Delete("/usages/{id}", h.Leave.DeleteUsage)
			r.Delete("/accruals/{id}", h.Leave.DeleteAccrual)
			r.Route("/{employeeID}", func(r chi.Router) {
				r.Get("/balance", h.Leave.Balance)
				r.Get("/detail", h.Leave.Detail)
				r.Post("/accruals/generate", h.Leave.GenerateAccruals)
				r.Post("/accruals/auto-generate", h.Leave.AutoGenerate)
				r.Post("/usages/import", h.Leave.ImportUsages)
			})
		})

		r.Route("/wage-configs", func(r chi.Router) {
			r.Post("/", h.Wage.Save)
			r.Get("/scope/{scope}", h.Wage.ListScope)
			r.Route("/{employeeID}", func(r chi.Router) {
				r.Get("/", h.Wage.Resolve)
				r.Get("/detail", h.Wage.ResolveDetail)
			})
		})

		r.Route("/payslips", func(r chi.Router) {
			r.Get("/", h.Payslip.ListMonth)
			r.Post("/generate", h.Payslip.Generate)
			r.Route("/{employeeID}", func(r chi.Router) {
				r.Post("/generate", h.Payslip.GenerateSingle)
				r.Put("/", h.Payslip.Edit)
				r.Post("/reset", h.Payslip.Reset)
				r.Get("/severance", h.Payslip.Severance)
			})
		})

		r.Route("/advances", func(r chi.Router) {
			r.Post("/", h.Advance.Submit)
			r.Get("/", h.Advance.ListMonth)
			r.Post("/{id}/approve", h.Advance.Approve)
			r.Post("/{id}/reject", h.Advance.Reject)
		})
	})
	return r
}
