package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/shulepay/shulepay/docs"
	"github.com/shulepay/shulepay/internal/domain"
	authhandlers "github.com/shulepay/shulepay/internal/handlers/auth"
	paymentshandlers "github.com/shulepay/shulepay/internal/handlers/payments"
	payrollhandlers "github.com/shulepay/shulepay/internal/handlers/payroll"
	"github.com/shulepay/shulepay/internal/service"
	"github.com/shulepay/shulepay/pkg/auth"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type PaymentsHandler interface {
	CreatePayment(w http.ResponseWriter, r *http.Request)
	GetPayments(w http.ResponseWriter, r *http.Request)
	GetFees(w http.ResponseWriter, r *http.Request)
	AssignFee(w http.ResponseWriter, r *http.Request)
	GetInstructions(w http.ResponseWriter, r *http.Request)
}

type PayrollHandler interface {
	GetPayroll(w http.ResponseWriter, r *http.Request)
	SetPayroll(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler     AuthHandler
	PaymentsHandler PaymentsHandler
	PayrollHandler  PayrollHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:     authhandlers.New(s.AuthService),
		PaymentsHandler: paymentshandlers.New(s.PaymentService),
		PayrollHandler:  payrollhandlers.New(s.PayrollService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Post("/user/register", h.AuthHandler.Register)
		r.Post("/user/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Route("/payments", func(r chi.Router) {
				r.Post("/", h.PaymentsHandler.CreatePayment)
				r.Get("/", h.PaymentsHandler.GetPayments)
				r.Get("/instructions", h.PaymentsHandler.GetInstructions)
			})
			r.Route("/students", func(r chi.Router) {
				r.Get("/fees", h.PaymentsHandler.GetFees)
				r.With(auth.RequireRole(domain.RoleAdmin)).Put("/{id}/fees", h.PaymentsHandler.AssignFee)
			})
			r.Route("/teachers/payroll", func(r chi.Router) {
				r.Get("/", h.PayrollHandler.GetPayroll)
				r.Put("/", h.PayrollHandler.SetPayroll)
			})
		})
	})

	return r
}
