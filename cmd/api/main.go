package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/MuhammadSyaifulIbrahim/absensipro/internal/config"
	appHTTP "github.com/MuhammadSyaifulIbrahim/absensipro/internal/handler/http"
	"github.com/MuhammadSyaifulIbrahim/absensipro/internal/pkg/cron"
	"github.com/MuhammadSyaifulIbrahim/absensipro/internal/pkg/database"
	"github.com/MuhammadSyaifulIbrahim/absensipro/internal/pkg/jwt"
	"github.com/MuhammadSyaifulIbrahim/absensipro/internal/pkg/oauth"
	"github.com/MuhammadSyaifulIbrahim/absensipro/internal/pkg/sse"
	"github.com/MuhammadSyaifulIbrahim/absensipro/internal/pkg/storage"
	"github.com/MuhammadSyaifulIbrahim/absensipro/internal/repository/postgresql"
	attendanceService "github.com/MuhammadSyaifulIbrahim/absensipro/internal/service/attendance"
	serviceAuth "github.com/MuhammadSyaifulIbrahim/absensipro/internal/service/auth"
	exportService "github.com/MuhammadSyaifulIbrahim/absensipro/internal/service/export"
	"github.com/MuhammadSyaifulIbrahim/absensipro/internal/service/file"
	requestService "github.com/MuhammadSyaifulIbrahim/absensipro/internal/service/request"
	shiftService "github.com/MuhammadSyaifulIbrahim/absensipro/internal/service/shift"
	userService "github.com/MuhammadSyaifulIbrahim/absensipro/internal/service/user"
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

	userRepo := postgresql.NewUserRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	requestRepo := postgresql.NewRequestRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	GoogleService := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)
	hub := sse.NewHub()

	var fileStorage storage.FileStorage
	switch cfg.Storage.Type {
	case "local":
		fileStorage, err = storage.NewLocalStorage(
			cfg.Storage.BasePath,
			cfg.Storage.BaseURL,
		)
		if err != nil {
			log.Fatal("Failed to initialize local storage:", err)
		}
	default:
		log.Fatal("Unsupported storage type: ", cfg.Storage.Type)
	}

	fileService := file.NewFileService(fileStorage)
	authService := serviceAuth.NewAuthService(db, userRepo, JWTService)
	userSvc := userService.NewUserService(db, userRepo)
	shiftSvc := shiftService.NewShiftService(db, shiftRepo, userRepo)
	attendanceSvc := attendanceService.NewAttendanceService(db, attendanceRepo, userRepo, shiftRepo, fileService, hub)
	requestSvc := requestService.NewRequestService(db, requestRepo, userRepo, fileService, hub)
	exportSvc := exportService.NewExportService(attendanceRepo, requestRepo, userRepo)

	scheduler := cron.NewScheduler()
	cron.NewTokenJobs(JWTService, 7*24*time.Hour).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	authHandler := appHTTP.NewAuthHandler(JWTService, authService, GoogleService, cfg.App.FrontendURL)
	userHandler := appHTTP.NewUserHandler(userSvc, shiftSvc)
	shiftHandler := appHTTP.NewShiftHandler(shiftSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	requestHandler := appHTTP.NewRequestHandler(requestSvc)
	exportHandler := appHTTP.NewExportHandler(exportSvc)
	eventsHandler := appHTTP.NewEventsHandler(JWTService, hub)

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{
			AppName:        "absensipro",
			AppVersion:     "v1.0.0",
			AppEnv:         cfg.App.Env,
			AllowedOrigins: []string{cfg.App.FrontendURL},
			UploadsDir:     cfg.Storage.BasePath,
		},
		JWTService,
		authHandler,
		userHandler,
		shiftHandler,
		attendanceHandler,
		requestHandler,
		exportHandler,
		eventsHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
