package service

import (
	"fmt"

	"github.com/shulepay/shulepay/internal/config"
	"github.com/shulepay/shulepay/internal/handlers/auth"
	"github.com/shulepay/shulepay/internal/handlers/payments"
	"github.com/shulepay/shulepay/internal/handlers/payroll"
	"github.com/shulepay/shulepay/internal/notify"
	"github.com/shulepay/shulepay/internal/repo"
	"github.com/shulepay/shulepay/internal/service/authservice"
	"github.com/shulepay/shulepay/internal/service/channelservice"
	"github.com/shulepay/shulepay/internal/service/payrollservice"
	"github.com/shulepay/shulepay/internal/service/reconcileservice"
	pkgauth "github.com/shulepay/shulepay/pkg/auth"
)

type Services struct {
	AuthService    auth.Service
	PaymentService payments.Service
	PayrollService payroll.Service
}

func New(cfg *config.Config, repo *repo.Repositories, notifier *notify.Dispatcher) (*Services, error) {
	rates, err := payrollservice.NewRates(cfg)
	if err != nil {
		return nil, fmt.Errorf("can't build payroll rates: %w", err)
	}

	channelService := channelservice.New(cfg)
	payrollService := payrollservice.NewService(repo.TeacherRepo, rates)
	paymentService := reconcileservice.New(
		repo.TxManager,
		repo.StudentRepo,
		repo.TeacherRepo,
		repo.PaymentRepo,
		repo.CourseRepo,
		channelService,
		notifier,
		rates,
	)
	authService := authservice.New(repo.UserRepo, repo.StudentRepo, repo.TeacherRepo, &pkgauth.HashService{}, &pkgauth.JWTService{})

	return &Services{
		AuthService:    authService,
		PaymentService: paymentService,
		PayrollService: payrollService,
	}, nil
}
