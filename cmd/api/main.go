package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/viniciussvasques/innexar-hr/internal/config"
	appHTTP "github.com/viniciussvasques/innexar-hr/internal/handler/http"
	"github.com/viniciussvasques/innexar-hr/internal/pkg/cron"
	"github.com/viniciussvasques/innexar-hr/internal/pkg/database"
	"github.com/viniciussvasques/innexar-hr/internal/pkg/jwt"
	"github.com/viniciussvasques/innexar-hr/internal/repository/postgresql"
	authService "github.com/viniciussvasques/innexar-hr/internal/service/auth"
	employeeService "github.com/viniciussvasques/innexar-hr/internal/service/employee"
	notificationService "github.com/viniciussvasques/innexar-hr/internal/service/notification"
	payrollService "github.com/viniciussvasques/innexar-hr/internal/service/payroll"
	taxtableService "github.com/viniciussvasques/innexar-hr/internal/service/taxtable"
	timesheetService "github.com/viniciussvasques/innexar-hr/internal/service/timesheet"
	vacationService "github.com/viniciussvasques/innexar-hr/internal/service/vacation"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), int32(cfg.Database.MaxConns), int32(cfg.Database.MinConns))
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	historyRepo := postgresql.NewEmployeeHistoryRepository(db)
	timeRecordRepo := postgresql.NewTimeRecordRepository(db)
	taxRepo := postgresql.NewTaxTableRepository(db)
	vacationRepo := postgresql.NewVacationRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	notificationRepo := postgresql.NewNotificationRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	authSvc := authService.NewService(db, userRepo, jwtService)
	employeeSvc := employeeService.NewService(db, employeeRepo, historyRepo)
	timesheetSvc := timesheetService.NewService(db, timeRecordRepo, employeeRepo)
	taxtableSvc := taxtableService.NewService(db, taxRepo)
	vacationSvc := vacationService.NewService(db, vacationRepo, employeeRepo, notificationRepo)
	payrollSvc := payrollService.NewService(db, payrollRepo, employeeRepo, taxRepo, timeRecordRepo, notificationRepo)
	notificationSvc := notificationService.NewService(db, notificationRepo, employeeRepo, vacationRepo, timeRecordRepo)

	router := appHTTP.NewRouter(jwtService, cfg.App.Env, appHTTP.Handlers{
		Auth:         appHTTP.NewAuthHandler(authSvc),
		Employee:     appHTTP.NewEmployeeHandler(employeeSvc),
		TimeRecord:   appHTTP.NewTimeRecordHandler(timesheetSvc),
		Vacation:     appHTTP.NewVacationHandler(vacationSvc),
		Payroll:      appHTTP.NewPayrollHandler(payrollSvc),
		TaxTable:     appHTTP.NewTaxTableHandler(taxtableSvc),
		Notification: appHTTP.NewNotificationHandler(notificationSvc),
	})

	scheduler := cron.NewScheduler()
	if cfg.Sweep.Enabled {
		cron.NewNotificationJobs(notificationSvc, cfg.Sweep.Interval).RegisterJobs(scheduler)
	}
	scheduler.Start()

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Server running at http://localhost%s\n", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server error:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	scheduler.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		fmt.Println("Server shutdown error:", err)
	}
}
