// Package reconcileservice applies incoming payment events: it updates the
// student's fee account, recomputes payroll when the payer is also a
// linked teacher, and queues notifications. Ledger and payroll updates are
// authoritative; notification problems are reported as warnings and never
// fail a run.
package reconcileservice

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/shulepay/shulepay/internal/domain"
	"github.com/shulepay/shulepay/internal/pg"
	"github.com/shulepay/shulepay/internal/service/feeservice"
	"github.com/shulepay/shulepay/internal/service/payrollservice"
	"github.com/shulepay/shulepay/pkg/money"
	"github.com/shulepay/shulepay/pkg/validate"
)

var (
	ErrStudentNotFound = errors.New("no student linked to payer")
	ErrCourseNotFound  = errors.New("course not found")
)

type StudentRepo interface {
	GetByUserID(ctx context.Context, userID int) (*domain.Student, error)
	GetByIDForUpdate(ctx context.Context, id int) (*domain.Student, error)
	UpdateFees(ctx context.Context, student *domain.Student) (*domain.Student, error)
}

type TeacherRepo interface {
	GetByUserID(ctx context.Context, userID int) (*domain.Teacher, error)
	UpdatePayroll(ctx context.Context, teacher *domain.Teacher) (*domain.Teacher, error)
}

type PaymentRepo interface {
	Create(ctx context.Context, payment *domain.Payment) (*domain.Payment, error)
	GetByStudentID(ctx context.Context, studentID int) ([]domain.Payment, error)
}

type CourseRepo interface {
	GetByID(ctx context.Context, id int) (*domain.Course, error)
}

type Resolver interface {
	RenderInstructions(channel domain.PaymentChannel, targetName, purpose string) string
}

type Notifier interface {
	Dispatch(ctx context.Context, notifications []domain.Notification) []error
}

type Service struct {
	txManager   pg.TXManager
	studentRepo StudentRepo
	teacherRepo TeacherRepo
	paymentRepo PaymentRepo
	courseRepo  CourseRepo
	resolver    Resolver
	notifier    Notifier
	rates       payrollservice.Rates
	locks       keyedMutex
}

func New(txManager pg.TXManager, studentRepo StudentRepo, teacherRepo TeacherRepo, paymentRepo PaymentRepo, courseRepo CourseRepo, resolver Resolver, notifier Notifier, rates payrollservice.Rates) *Service {
	return &Service{
		txManager:   txManager,
		studentRepo: studentRepo,
		teacherRepo: teacherRepo,
		paymentRepo: paymentRepo,
		courseRepo:  courseRepo,
		resolver:    resolver,
		notifier:    notifier,
		rates:       rates,
	}
}

// ProcessPayment runs one reconciliation cycle for the event. Validation
// happens before any mutation; once the ledger update lands, payroll and
// notification problems degrade to warnings instead of failing the run.
func (s *Service) ProcessPayment(ctx context.Context, event domain.PaymentEvent) (*domain.ReconciliationResult, error) {
	if !event.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: payment amount must be positive, got %s", money.ErrInvalidAmount, event.Amount)
	}

	payer, err := s.studentRepo.GetByUserID(ctx, event.PayerUserID)
	if err != nil {
		zap.L().Error("failed to resolve payer", zap.Error(err))
		return nil, err
	}
	if payer == nil {
		return nil, ErrStudentNotFound
	}

	course, err := s.courseRepo.GetByID(ctx, event.CourseID)
	if err != nil {
		zap.L().Error("failed to resolve course", zap.Error(err))
		return nil, err
	}
	if course == nil {
		return nil, ErrCourseNotFound
	}

	unlock := s.locks.lock(payer.ID)
	defer unlock()

	// payment row and fee update land in one transaction: a failure in
	// either rolls back both, so no receipt can outlive an unapplied
	// ledger update
	var (
		student *domain.Student
		fact    domain.FeeUpdated
		payment *domain.Payment
	)
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		// re-read with a row lock so concurrent payments never apply to
		// a stale account, in-process or across processes
		student, err = s.studentRepo.GetByIDForUpdate(ctx, payer.ID)
		if err != nil {
			zap.L().Error("failed to load student for update", zap.Error(err))
			return err
		}
		if student == nil {
			return ErrStudentNotFound
		}

		fees, f, err := feeservice.ApplyPayment(student.ID, student.Fees, event.Amount)
		if err != nil {
			return err
		}
		fact = f

		payment = &domain.Payment{
			StudentID:     student.ID,
			CourseID:      course.ID,
			Amount:        event.Amount,
			ReceiptNumber: validate.NewReceiptNumber(),
			CreatedAt:     event.At,
		}
		if _, err := s.paymentRepo.Create(ctx, payment); err != nil {
			zap.L().Error("failed to record payment", zap.Error(err))
			return err
		}

		student.Fees = fees
		student, err = s.studentRepo.UpdateFees(ctx, student)
		if err != nil {
			zap.L().Error("failed to update student fees", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	result := &domain.ReconciliationResult{
		Student:       student,
		ReceiptNumber: payment.ReceiptNumber,
		Fact:          fact,
	}

	teacher := s.recomputeLinkedPayroll(ctx, student, result)

	instructions := s.resolver.RenderInstructions(course.Channel, student.FullName, course.Title)
	notifications := buildNotifications(student, teacher, course, event.Amount, fact, payment.ReceiptNumber, instructions)
	for _, dErr := range s.notifier.Dispatch(ctx, notifications) {
		result.Warnings = append(result.Warnings, dErr.Error())
	}

	zap.L().Info("payment reconciled",
		zap.String("eventID", event.EventID.String()),
		zap.Int("studentID", student.ID),
		zap.String("amount", event.Amount.String()),
		zap.String("remaining", fact.Remaining.String()),
		zap.Bool("fullyPaid", fact.FullyPaid),
		zap.Bool("payrollRecomputed", result.PayrollRecomputed),
		zap.Int("warnings", len(result.Warnings)),
	)
	return result, nil
}

// recomputeLinkedPayroll runs payroll for a teacher sharing the payer's
// user, when one exists. A missing link is a recognized state, not an
// error; later failures degrade to warnings because the ledger update has
// already landed.
func (s *Service) recomputeLinkedPayroll(ctx context.Context, student *domain.Student, result *domain.ReconciliationResult) *domain.Teacher {
	teacher, err := s.teacherRepo.GetByUserID(ctx, student.UserID)
	if err != nil {
		zap.L().Error("failed to look up linked teacher", zap.Error(err))
		result.Warnings = append(result.Warnings, fmt.Sprintf("payroll lookup failed: %v", err))
		return nil
	}
	if teacher == nil {
		zap.L().Info("no teacher linked to payer", zap.Int("userID", student.UserID))
		return nil
	}

	payroll, err := payrollservice.Recompute(teacher.Payroll, s.rates)
	if err != nil {
		zap.L().Error("payroll recompute failed", zap.Error(err))
		result.Warnings = append(result.Warnings, fmt.Sprintf("payroll recompute failed: %v", err))
		return nil
	}
	teacher.Payroll = payroll

	teacher, err = s.teacherRepo.UpdatePayroll(ctx, teacher)
	if err != nil {
		zap.L().Error("failed to store recomputed payroll", zap.Error(err))
		result.Warnings = append(result.Warnings, fmt.Sprintf("payroll update failed: %v", err))
		return nil
	}

	result.PayrollRecomputed = true
	return teacher
}

func buildNotifications(student *domain.Student, teacher *domain.Teacher, course *domain.Course, amount money.Money, fact domain.FeeUpdated, receipt, instructions string) []domain.Notification {
	status := fmt.Sprintf("Outstanding balance: %s.", fact.Remaining)
	if fact.FullyPaid {
		status = "Your fees are fully paid."
	}
	body := fmt.Sprintf("Payment of %s for %s received (receipt %s). %s", amount, course.Title, receipt, status)
	if !fact.FullyPaid && instructions != "" {
		body += " " + instructions
	}

	notifications := []domain.Notification{
		{
			Channel:     domain.NotifyEmail,
			RecipientID: student.UserID,
			Subject:     "Payment received",
			Body:        body,
		},
		{
			Channel:     domain.NotifySMS,
			RecipientID: student.UserID,
			Body:        fmt.Sprintf("Payment of %s received. %s", amount, status),
		},
	}

	if teacher != nil {
		payrollBody := fmt.Sprintf("Payment of %s received from %s. Your payroll was recomputed: net salary %s.",
			amount, student.FullName, teacher.Payroll.NetSalary)
		notifications = append(notifications,
			domain.Notification{
				Channel:     domain.NotifyEmail,
				RecipientID: teacher.UserID,
				Subject:     "Payroll recomputed",
				Body:        payrollBody,
			},
			domain.Notification{
				Channel:     domain.NotifySMS,
				RecipientID: teacher.UserID,
				Body:        payrollBody,
			},
		)
	}
	return notifications
}

// AssignFee sets a student's total fee and reassesses the derived balance.
func (s *Service) AssignFee(ctx context.Context, studentID int, totalFee money.Money) (*domain.Student, error) {
	unlock := s.locks.lock(studentID)
	defer unlock()

	var updated *domain.Student
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		student, err := s.studentRepo.GetByIDForUpdate(ctx, studentID)
		if err != nil {
			zap.L().Error("failed to load student for update", zap.Error(err))
			return err
		}
		if student == nil {
			return ErrStudentNotFound
		}

		student.Fees.TotalFee = totalFee
		student.Fees = feeservice.Reassess(student.Fees)

		updated, err = s.studentRepo.UpdateFees(ctx, student)
		if err != nil {
			zap.L().Error("failed to update student fees", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// GetFees returns the fee account of the student linked to the user.
func (s *Service) GetFees(ctx context.Context, userID int) (*domain.Student, error) {
	student, err := s.studentRepo.GetByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get student", zap.Error(err))
		return nil, err
	}
	if student == nil {
		return nil, ErrStudentNotFound
	}
	return student, nil
}

// GetPayments returns the payment history of the student linked to the user.
func (s *Service) GetPayments(ctx context.Context, userID int) ([]domain.Payment, error) {
	student, err := s.studentRepo.GetByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get student", zap.Error(err))
		return nil, err
	}
	if student == nil {
		return nil, ErrStudentNotFound
	}

	payments, err := s.paymentRepo.GetByStudentID(ctx, student.ID)
	if err != nil {
		zap.L().Error("failed to fetch payments", zap.Error(err))
		return nil, err
	}
	return payments, nil
}

// Instructions renders the payment instructions a student should follow
// for the given course.
func (s *Service) Instructions(ctx context.Context, userID, courseID int) (string, error) {
	student, err := s.studentRepo.GetByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get student", zap.Error(err))
		return "", err
	}
	if student == nil {
		return "", ErrStudentNotFound
	}

	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		zap.L().Error("failed to get course", zap.Error(err))
		return "", err
	}
	if course == nil {
		return "", ErrCourseNotFound
	}

	return s.resolver.RenderInstructions(course.Channel, student.FullName, course.Title), nil
}
