package http

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/quanamco/payroll-edi/internal/handler/http/middleware"
	"github.com/quanamco/payroll-edi/internal/pkg/jwt"
)

func NewRouter(
	logger *slog.Logger,
	allowedOrigins []string,
	JWTService jwt.Service,
	companyHandler CompanyHandler,
	contractHandler ContractHandler,
	ruleInputHandler RuleInputHandler,
	payslipHandler PayslipHandler,
	payslipEdiHandler PayslipEdiHandler,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
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
		// Every route below is scoped to the company in the access token.
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(logger))
			r.Use(middleware.RequireCompany)

			r.Route("/companies/my", func(r chi.Router) {
				r.Get("/", companyHandler.GetMy)
				r.Put("/edi-settings", companyHandler.UpdateEdiSettings)
			})

			r.Get("/contracts/{id}/payroll-period", contractHandler.PayrollPeriod)

			r.Route("/rule-inputs", func(r chi.Router) {
				r.Get("/", ruleInputHandler.List)
				r.Post("/seed", ruleInputHandler.Seed)
			})

			r.Route("/payslips/{id}", func(r chi.Router) {
				r.Get("/", payslipHandler.Get)
				r.Post("/compute", payslipHandler.Compute)

				r.Route("/earn-lines", func(r chi.Router) {
					r.Post("/", payslipHandler.AddEarnLine)
					r.Put("/{lineID}", payslipHandler.UpdateEarnLine)
					r.Delete("/{lineID}", payslipHandler.DeleteEarnLine)
				})

				r.Route("/deduction-lines", func(r chi.Router) {
					r.Post("/", payslipHandler.AddDeductionLine)
					r.Put("/{lineID}", payslipHandler.UpdateDeductionLine)
					r.Delete("/{lineID}", payslipHandler.DeleteDeductionLine)
				})
			})

			r.Route("/payslip-edis", func(r chi.Router) {
				r.Get("/", payslipEdiHandler.List)
				r.Post("/", payslipEdiHandler.Create)
				r.Delete("/", payslipEdiHandler.Delete)

				r.Route("/actions", func(r chi.Router) {
					r.Post("/compute", payslipEdiHandler.ComputeSheet)
					r.Post("/done", payslipEdiHandler.Done)
					r.Post("/cancel", payslipEdiHandler.Cancel)
					r.Post("/draft", payslipEdiHandler.Draft)
					r.Post("/refund", payslipEdiHandler.Refund)
					r.Post("/validate-dian", payslipEdiHandler.ValidateDian)
					r.Post("/status-zip", payslipEdiHandler.StatusZip)
					r.Post("/status-document-log", payslipEdiHandler.StatusDocumentLog)
				})

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", payslipEdiHandler.Get)
					r.Put("/", payslipEdiHandler.Update)
					r.Get("/payload", payslipEdiHandler.Payload)
					r.Post("/payload", payslipEdiHandler.RefreshPayload)
				})
			})
		})
	})
	return r
}
