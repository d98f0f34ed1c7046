package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/viniciussvasques/innexar-hr/internal/handler/http/middleware"
	"github.com/viniciussvasques/innexar-hr/internal/pkg/jwt"
)

type Handlers struct {
	Auth         AuthHandler
	Employee     EmployeeHandler
	TimeRecord   TimeRecordHandler
	Vacation     VacationHandler
	Payroll      PayrollHandler
	TaxTable     TaxTableHandler
	Notification NotificationHandler
}

func NewRouter(jwtService jwt.Service, env string, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "innexar-hr"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/healthz"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Post("/logout", h.Auth.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth(), jwtService))

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", h.Employee.ListEmployees)
				r.Get("/{id}", h.Employee.GetEmployee)
				r.Get("/{id}/history", h.Employee.GetHistory)
				r.Get("/{id}/dependents", h.Employee.ListDependents)
				r.Get("/{id}/documents", h.Employee.ListDocuments)
				r.Get("/{id}/vacation-balance", h.Vacation.GetBalance)
				r.Get("/{id}/vacation-proportional", h.Vacation.GetProportional)
				r.Get("/{id}/time-summary", h.TimeRecord.MonthlySummary)

				// Admin-only writes
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Employee.CreateEmployee)
					r.Put("/{id}", h.Employee.UpdateEmployee)
					r.Post("/{id}/dependents", h.Employee.AddDependent)
					r.Post("/{id}/documents", h.Employee.AddDocument)
				})
			})

			r.Route("/time-records", func(r chi.Router) {
				r.Post("/", h.TimeRecord.Punch)
				r.Get("/", h.TimeRecord.ListTimeRecords)
				r.Get("/{id}", h.TimeRecord.GetTimeRecord)
				r.Post("/{id}/approve", h.TimeRecord.ApproveTimeRecord)
			})

			r.Route("/vacations", func(r chi.Router) {
				r.Post("/", h.Vacation.RequestVacation)
				r.Get("/", h.Vacation.ListVacations)
				r.Get("/{id}", h.Vacation.GetVacation)
				r.Post("/{id}/transition", h.Vacation.TransitionVacation)
				r.Post("/{id}/approve", h.Vacation.ApproveVacation)
				r.Post("/{id}/reject", h.Vacation.RejectVacation)
				r.Post("/{id}/take", h.Vacation.TakeVacation)
				r.Post("/{id}/cancel", h.Vacation.CancelVacation)
			})

			r.Route("/payrolls", func(r chi.Router) {
				r.Get("/", h.Payroll.ListPayrolls)
				r.Get("/{id}", h.Payroll.GetPayroll)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Payroll.SavePayroll)
					r.Post("/{id}/recalculate", h.Payroll.RecalculatePayroll)
					r.Post("/process", h.Payroll.ProcessPeriod)
				})
			})

			r.Route("/tax-brackets", func(r chi.Router) {
				r.Get("/", h.TaxTable.ListBrackets)
				r.Get("/{id}", h.TaxTable.GetBracket)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.TaxTable.CreateBracket)
					r.Put("/{id}", h.TaxTable.UpdateBracket)
					r.Delete("/{id}", h.TaxTable.DeleteBracket)
				})
			})

			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", h.Notification.ListNotifications)
				r.Get("/unread-count", h.Notification.UnreadCount)
				r.Post("/mark-read", h.Notification.MarkRead)
				r.Post("/mark-all-read", h.Notification.MarkAllRead)

				r.With(middleware.AdminOnly).Post("/sweep", h.Notification.RunSweep)
			})
		})
	})

	return r
}
