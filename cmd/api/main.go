package main

import (
	"fmt"
	"net/http"

	"github.com/attendly/attendance-backend-go/internal/config"
	appHTTP "github.com/attendly/attendance-backend-go/internal/handler/http"
	"github.com/attendly/attendance-backend-go/internal/pkg/database"
	"github.com/attendly/attendance-backend-go/internal/repository/postgresql"
	analyticsService "github.com/attendly/attendance-backend-go/internal/service/analytics"
	attendanceService "github.com/attendly/attendance-backend-go/internal/service/attendance"
	employeeService "github.com/attendly/attendance-backend-go/internal/service/employee"
	historyService "github.com/attendly/attendance-backend-go/internal/service/history"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)

	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo)
	analyticsSvc := analyticsService.NewAnalyticsService(attendanceRepo, employeeRepo)
	historySvc := historyService.NewHistoryService(attendanceRepo, employeeRepo)

	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	analyticsHandler := appHTTP.NewAnalyticsHandler(analyticsSvc)
	historyHandler := appHTTP.NewHistoryHandler(historySvc)

	router := appHTTP.NewRouter(
		cfg.App.CORSOrigin,
		cfg.App.Env,
		employeeHandler,
		attendanceHandler,
		analyticsHandler,
		historyHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
