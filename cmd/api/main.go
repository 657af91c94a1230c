package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/httplog/v3"
	"github.com/quanamco/payroll-edi/internal/config"
	"github.com/quanamco/payroll-edi/internal/domain/payslipedi"
	appHTTP "github.com/quanamco/payroll-edi/internal/handler/http"
	"github.com/quanamco/payroll-edi/internal/pkg/database"
	"github.com/quanamco/payroll-edi/internal/pkg/dian"
	"github.com/quanamco/payroll-edi/internal/pkg/jwt"
	"github.com/quanamco/payroll-edi/internal/repository/postgresql"
	serviceCompany "github.com/quanamco/payroll-edi/internal/service/company"
	serviceContract "github.com/quanamco/payroll-edi/internal/service/contract"
	servicePayslip "github.com/quanamco/payroll-edi/internal/service/payslip"
	servicePayslipEdi "github.com/quanamco/payroll-edi/internal/service/payslipedi"
	serviceRuleInput "github.com/quanamco/payroll-edi/internal/service/ruleinput"
	"github.com/quanamco/payroll-edi/migrations"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       cfg.SlogLevel(),
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "payroll-edi"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)
	slog.SetDefault(logger)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stopSignals()

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		logger.Error("Error connecting to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer db.Close()

	if cfg.Database.AutoMigrate {
		if err := migrations.Apply(sigCtx, db); err != nil {
			logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	transactor := postgresql.NewTransactor(db)
	companyRepo := postgresql.NewCompanyRepository(db)
	contractRepo := postgresql.NewContractRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	ruleInputRepo := postgresql.NewRuleInputRepository(db)
	payslipRepo := postgresql.NewPayslipRepository(db)
	payslipEdiRepo := postgresql.NewPayslipEdiRepository(db)
	sequenceRepo := postgresql.NewSequenceRepository(db)

	if cfg.Dian.BaseURL == "" {
		logger.Warn("DIAN_API_URL is empty, gateway submissions will fail")
	}
	gateway := dian.NewClient(dian.Config{
		BaseURL: cfg.Dian.BaseURL,
		Token:   cfg.Dian.Token,
		Timeout: cfg.Dian.Timeout,
	})

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	companyService := serviceCompany.NewCompanyService(transactor, companyRepo, logger)
	contractService := serviceContract.NewContractService(contractRepo)
	ruleInputService := serviceRuleInput.NewRuleInputService(transactor, ruleInputRepo, logger)
	payslipService := servicePayslip.NewPayslipService(
		transactor,
		payslipRepo,
		ruleInputRepo,
		contractRepo,
		employeeRepo,
		companyRepo,
		logger,
	)
	payslipEdiService := servicePayslipEdi.NewPayslipEdiService(
		transactor,
		payslipEdiRepo,
		payslipRepo,
		contractRepo,
		employeeRepo,
		companyRepo,
		sequenceRepo,
		gateway,
		payslipedi.MatchLanguage(cfg.App.Lang),
		logger,
	)

	router := appHTTP.NewRouter(
		logger,
		cfg.CORS.AllowedOrigins,
		JWTService,
		appHTTP.NewCompanyHandler(companyService),
		appHTTP.NewContractHandler(contractService),
		appHTTP.NewRuleInputHandler(ruleInputService),
		appHTTP.NewPayslipHandler(payslipService),
		appHTTP.NewPayslipEdiHandler(payslipEdiService),
	)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrCh := make(chan error, 1)
	go func() {
		logger.Info("Server running", slog.String("addr", srv.Addr))
		serverErrCh <- srv.ListenAndServe()
	}()

	select {
	case <-sigCtx.Done():
	case err := <-serverErrCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server stopped unexpectedly", slog.String("error", err.Error()))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", slog.String("error", err.Error()))
	}
}
