package authservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/shulepay/shulepay/internal/domain"
	"github.com/shulepay/shulepay/internal/service/feeservice"
	"github.com/shulepay/shulepay/pkg/auth"
)

var (
	ErrLoginTaken         = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type UserRepo interface {
	FindByLogin(ctx context.Context, login string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

type StudentRepo interface {
	Create(ctx context.Context, student *domain.Student) (*domain.Student, error)
}

type TeacherRepo interface {
	Create(ctx context.Context, teacher *domain.Teacher) (*domain.Teacher, error)
}

type Service struct {
	userRepo    UserRepo
	studentRepo StudentRepo
	teacherRepo TeacherRepo
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
}

func New(userRepo UserRepo, studentRepo StudentRepo, teacherRepo TeacherRepo, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface) *Service {
	return &Service{
		userRepo:    userRepo,
		studentRepo: studentRepo,
		teacherRepo: teacherRepo,
		hashService: hashService,
		jwtService:  jwtService,
	}
}

// Register creates the user together with its role profile: students get
// an empty fee account, teachers an empty payroll record. Admins carry no
// profile.
func (s *Service) Register(ctx context.Context, login, password, role, fullName string) (*domain.User, error) {
	switch role {
	case domain.RoleStudent, domain.RoleTeacher, domain.RoleAdmin:
	default:
		return nil, fmt.Errorf("unknown role %q", role)
	}

	existingUser, err := s.userRepo.FindByLogin(ctx, login)
	if err != nil {
		zap.L().Error("can't find user: ", zap.Error(err))
		return nil, err
	}
	if existingUser != nil {
		zap.L().Info("user already exists, login: ", zap.String("login", login))
		return nil, ErrLoginTaken
	}
	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return nil, err
	}
	user := &domain.User{
		Login:        login,
		PasswordHash: hashedPassword,
		Role:         role,
		FullName:     fullName,
	}
	newUser, err := s.userRepo.Create(ctx, user)
	if err != nil {
		zap.L().Error("can't create user: ", zap.Error(err))
		return nil, err
	}

	switch role {
	case domain.RoleStudent:
		student := &domain.Student{
			UserID:   newUser.ID,
			FullName: fullName,
			Fees:     feeservice.Reassess(domain.FeeAccount{}),
		}
		if _, err := s.studentRepo.Create(ctx, student); err != nil {
			zap.L().Error("can't create student profile: ", zap.Error(err))
			return nil, err
		}
	case domain.RoleTeacher:
		teacher := &domain.Teacher{
			UserID:   newUser.ID,
			FullName: fullName,
		}
		if _, err := s.teacherRepo.Create(ctx, teacher); err != nil {
			zap.L().Error("can't create teacher profile: ", zap.Error(err))
			return nil, err
		}
	}

	zap.L().Info("user successfully registered", zap.String("login", login), zap.String("role", role))
	return newUser, nil
}

func (s *Service) Authenticate(ctx context.Context, login, password string) (*domain.User, error) {
	user, err := s.userRepo.FindByLogin(ctx, login)
	if err != nil || user == nil {
		zap.L().Error("invalid credentials", zap.Error(err))
		return nil, ErrInvalidCredentials
	}
	if ok := s.hashService.ComparePassword(user.PasswordHash, password); !ok {
		zap.L().Error("invalid credentials", zap.String("login", login))
		return nil, ErrInvalidCredentials
	}
	zap.L().Info("user successfully authenticated", zap.String("login", login))
	return user, nil
}

func (s *Service) GenerateToken(user *domain.User) (string, error) {
	expirationTime := time.Now().Add(15 * time.Minute)

	token, err := s.jwtService.GenerateJWT(user.ID, user.Role, expirationTime)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}
