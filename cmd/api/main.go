package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/MohamedRadiWebDev/HRAttendance-codex-fix-attendance-calculation-logic-n5uo7s/internal/config"
	appHTTP "github.com/MohamedRadiWebDev/HRAttendance-codex-fix-attendance-calculation-logic-n5uo7s/internal/handler/http"
	"github.com/MohamedRadiWebDev/HRAttendance-codex-fix-attendance-calculation-logic-n5uo7s/internal/pkg/cron"
	"github.com/MohamedRadiWebDev/HRAttendance-codex-fix-attendance-calculation-logic-n5uo7s/internal/pkg/database"
	"github.com/MohamedRadiWebDev/HRAttendance-codex-fix-attendance-calculation-logic-n5uo7s/internal/repository/postgresql"
	adjustmentService "github.com/MohamedRadiWebDev/HRAttendance-codex-fix-attendance-calculation-logic-n5uo7s/internal/service/adjustment"
	attendanceService "github.com/MohamedRadiWebDev/HRAttendance-codex-fix-attendance-calculation-logic-n5uo7s/internal/service/attendance"
	employeeService "github.com/MohamedRadiWebDev/HRAttendance-codex-fix-attendance-calculation-logic-n5uo7s/internal/service/employee"
	punchService "github.com/MohamedRadiWebDev/HRAttendance-codex-fix-attendance-calculation-logic-n5uo7s/internal/service/punch"
	punchlinkService "github.com/MohamedRadiWebDev/HRAttendance-codex-fix-attendance-calculation-logic-n5uo7s/internal/service/punchlink"
	ruleService "github.com/MohamedRadiWebDev/HRAttendance-codex-fix-attendance-calculation-logic-n5uo7s/internal/service/rule"
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
	punchRepo := postgresql.NewPunchRepository(db)
	ruleRepo := postgresql.NewRuleRepository(db)
	adjustmentRepo := postgresql.NewAdjustmentRepository(db)
	punchLinkRepo := postgresql.NewPunchLinkRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)

	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	punchSvc := punchService.NewPunchService(punchRepo)
	ruleSvc := ruleService.NewRuleService(ruleRepo)
	adjustmentSvc := adjustmentService.NewAdjustmentService(adjustmentRepo)
	linkSvc := punchlinkService.NewLinkService(punchLinkRepo, punchRepo, employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(
		attendanceRepo,
		employeeRepo,
		punchRepo,
		ruleRepo,
		adjustmentRepo,
		punchLinkRepo,
	)

	scheduler := cron.NewScheduler()
	attendanceJobs := cron.NewAttendanceJobs(
		attendanceSvc,
		cfg.Processing.TimezoneOffsetMinutes,
		cfg.Processing.ReprocessDays,
	)
	attendanceJobs.RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		cfg,
		appHTTP.NewEmployeeHandler(employeeSvc),
		appHTTP.NewRuleHandler(ruleSvc),
		appHTTP.NewAdjustmentHandler(adjustmentSvc),
		appHTTP.NewPunchHandler(punchSvc),
		appHTTP.NewAttendanceHandler(attendanceSvc),
		appHTTP.NewPunchLinkHandler(linkSvc),
	)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Server starting on port %d\n", cfg.App.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Println("Server error:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	fmt.Println("Shutting down...")
	_ = server.Close()
}
