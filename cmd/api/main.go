package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/attendly/timesheet-rules-go/internal/config"
	appHTTP "github.com/attendly/timesheet-rules-go/internal/handler/http"
	"github.com/attendly/timesheet-rules-go/internal/pkg/cron"
	"github.com/attendly/timesheet-rules-go/internal/repository/hrisapi"
	submissionService "github.com/attendly/timesheet-rules-go/internal/service/submission"
	validationService "github.com/attendly/timesheet-rules-go/internal/service/validation"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel(cfg.App.LogLevel),
	}))

	hrisClient := hrisapi.NewClient(cfg.HRIS.BaseURL, cfg.HRIS.APIToken, cfg.HRIS.Timeout, logger)
	timesheetRepo := hrisapi.NewTimesheetRepository(hrisClient)
	leaveRepo := hrisapi.NewLeaveRequestRepository(hrisClient)
	holidayRepo := hrisapi.NewHolidayRepository(hrisClient)

	holidayCache := validationService.NewHolidayCache(holidayRepo)
	validationSvc := validationService.NewService(
		timesheetRepo,
		leaveRepo,
		holidayCache,
		cfg.Validation.MaxHoursWithHalfDayLeave,
		logger,
	)
	submissionSvc := submissionService.NewService(
		leaveRepo,
		timesheetRepo,
		validationSvc,
		holidayCache,
		logger,
	)

	// Keep the current month's holiday set warm for comp-off checks.
	scheduler := cron.NewScheduler(logger)
	scheduler.AddJob("holiday-prefetch", cfg.Validation.HolidayRefreshInterval, func(ctx context.Context) error {
		now := time.Now()
		_, err := holidayCache.Refresh(ctx, now.Year(), now.Month())
		return err
	})
	scheduler.Start()
	defer scheduler.Stop()

	validationHandler := appHTTP.NewValidationHandler(validationSvc)
	submissionHandler := appHTTP.NewSubmissionHandler(submissionSvc)

	router := appHTTP.NewRouter(cfg.App.Env, validationHandler, submissionHandler)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}

func logLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
