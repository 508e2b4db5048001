package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ashaile/humetix-backend-go/internal/config"
	appHTTP "github.com/ashaile/humetix-backend-go/internal/handler/http"
	"github.com/ashaile/humetix-backend-go/internal/pkg/cron"
	"github.com/ashaile/humetix-backend-go/internal/pkg/database"
	"github.com/ashaile/humetix-backend-go/internal/repository/postgresql"
	advanceService "github.com/ashaile/humetix-backend-go/internal/service/advance"
	attendanceService "github.com/ashaile/humetix-backend-go/internal/service/attendance"
	calendarService "github.com/ashaile/humetix-backend-go/internal/service/calendar"
	employeeService "github.com/ashaile/humetix-backend-go/internal/service/employee"
	leaveService "github.com/ashaile/humetix-backend-go/internal/service/leave"
	payslipService "github.com/ashaile/humetix-backend-go/internal/service/payslip"
	wageService "github.com/ashaile/humetix-backend-go/internal/service/wage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	calendarRepo := postgresql.NewCalendarRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	accrualRepo := postgresql.NewLeaveAccrualRepository(db)
	usageRepo := postgresql.NewLeaveUsageRepository(db)
	balanceRepo := postgresql.NewLeaveBalanceRepository(db)
	wageConfigRepo := postgresql.NewWageConfigRepository(db)
	payslipRepo := postgresql.NewPayslipRepository(db)
	advanceRepo := postgresql.NewAdvanceRepository(db)
	txRunner := postgresql.NewTxRunner(db)

	resolver := calendarService.NewResolver(calendarRepo, cfg.Policy.PublicHolidays)
	attendanceSvc := attendanceService.NewService(attendanceRepo, resolver, attendanceService.Policy{
		StandardHours:  cfg.Policy.StandardWorkHours,
		BreakHours:     cfg.Policy.BreakHours,
		NightStartHour: cfg.Policy.NightStartHour,
		NightEndHour:   cfg.Policy.NightEndHour,
	})
	leaveSvc := leaveService.NewService(txRunner, accrualRepo, usageRepo, balanceRepo, employeeRepo, attendanceRepo, resolver)
	wageResolver := wageService.NewResolver(wageConfigRepo, employeeRepo)
	payslipCalc := payslipService.NewCalculator(payslipRepo, attendanceRepo, advanceRepo, employeeRepo, wageResolver, resolver, cfg.Policy)
	advanceSvc := advanceService.NewService(advanceRepo, employeeRepo, cfg.Policy)
	employeeSvc := employeeService.NewService(employeeRepo)

	handlers := appHTTP.Handlers{
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
		Calendar:   appHTTP.NewCalendarHandler(calendarRepo, resolver),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Leave:      appHTTP.NewLeaveHandler(leaveSvc),
		Wage:       appHTTP.NewWageHandler(wageResolver, wageConfigRepo),
		Payslip:    appHTTP.NewPayslipHandler(payslipCalc),
		Advance:    appHTTP.NewAdvanceHandler(advanceSvc),
	}

	scheduler := cron.NewScheduler()
	cron.NewEngineJobs(leaveSvc, payslipCalc).RegisterJobs(scheduler)
	scheduler.Start()

	router := appHTTP.NewRouter(cfg, handlers)
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Server running at http://localhost%s\n", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Println("Server error:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	scheduler.Stop()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		fmt.Println("Shutdown error:", err)
	}
}
