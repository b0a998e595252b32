package repo

import (
	"github.com/shulepay/shulepay/internal/pg"
	courserepo "github.com/shulepay/shulepay/internal/repo/course-repo"
	paymentrepo "github.com/shulepay/shulepay/internal/repo/payment-repo"
	studentrepo "github.com/shulepay/shulepay/internal/repo/student-repo"
	teacherrepo "github.com/shulepay/shulepay/internal/repo/teacher-repo"
	userrepo "github.com/shulepay/shulepay/internal/repo/user-repo"
)

// Repositories holds the concrete repos; each service narrows them to its
// own consumer interface.
type Repositories struct {
	TxManager   pg.TXManager
	UserRepo    *userrepo.Repository
	StudentRepo *studentrepo.Repository
	TeacherRepo *teacherrepo.Repository
	PaymentRepo *paymentrepo.Repository
	CourseRepo  *courserepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		TxManager:   txManager,
		UserRepo:    userrepo.New(conn),
		StudentRepo: studentrepo.New(conn, txManager),
		TeacherRepo: teacherrepo.New(conn, txManager),
		PaymentRepo: paymentrepo.New(conn),
		CourseRepo:  courserepo.New(conn),
	}
}
