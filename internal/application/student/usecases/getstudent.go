package usecases

import (
	"context"

	"scholaris/internal/domain/student"
	"scholaris/internal/shared/logger"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

type GetStudentUseCase struct {
	studentRepo student.Repository
}

func NewGetStudentUseCase(studentRepo student.Repository) *GetStudentUseCase {
	return &GetStudentUseCase{studentRepo: studentRepo}
}

func (uc *GetStudentUseCase) Execute(ctx context.Context, studentID uint) (*student.Student, error) {
	return uc.studentRepo.GetByID(ctx, studentID)
}

type ListStudentsQuery struct {
	Class   string
	Section string
	Status  string
	Search  string
	Offset  int
	Limit   int
}

type ListStudentsResult struct {
	Students []*student.Student
	Total    int64
}

type ListStudentsUseCase struct {
	studentRepo student.Repository
}

func NewListStudentsUseCase(studentRepo student.Repository) *ListStudentsUseCase {
	return &ListStudentsUseCase{studentRepo: studentRepo}
}

func (uc *ListStudentsUseCase) Execute(ctx context.Context, query ListStudentsQuery) (*ListStudentsResult, error) {
	if query.Limit <= 0 {
		query.Limit = defaultListLimit
	}
	if query.Limit > maxListLimit {
		query.Limit = maxListLimit
	}

	students, total, err := uc.studentRepo.List(ctx, student.ListFilter{
		Class:   query.Class,
		Section: query.Section,
		Status:  query.Status,
		Search:  query.Search,
		Offset:  query.Offset,
		Limit:   query.Limit,
	})
	if err != nil {
		return nil, err
	}
	return &ListStudentsResult{Students: students, Total: total}, nil
}

// ListMyChildrenUseCase powers the parent portal: every student record
// linked to the parent's account.
type ListMyChildrenUseCase struct {
	studentRepo student.Repository
	logger      logger.Interface
}

func NewListMyChildrenUseCase(studentRepo student.Repository, log logger.Interface) *ListMyChildrenUseCase {
	return &ListMyChildrenUseCase{
		studentRepo: studentRepo,
		logger:      log,
	}
}

func (uc *ListMyChildrenUseCase) Execute(ctx context.Context, parentAccountID uint) ([]*student.Student, error) {
	return uc.studentRepo.ListByParentAccountID(ctx, parentAccountID)
}
