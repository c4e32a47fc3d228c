package staff

import (
	"fmt"
	"strings"
	"time"
)

type EmploymentStatus string

const (
	StatusActive   EmploymentStatus = "active"
	StatusOnLeave  EmploymentStatus = "on_leave"
	StatusResigned EmploymentStatus = "resigned"
)

func (s EmploymentStatus) IsValid() bool {
	switch s {
	case StatusActive, StatusOnLeave, StatusResigned:
		return true
	}
	return false
}

// Staff is one employment record. The linked account (when present)
// carries the login identity and role.
type Staff struct {
	id             uint
	employeeNumber string
	name           string
	designation    string
	department     string
	phone          string
	email          string
	accountID      *uint
	status         EmploymentStatus
	joinedAt       time.Time
	createdAt      time.Time
	updatedAt      time.Time
}

func NewStaff(employeeNumber, name, designation, department string, joinedAt time.Time) (*Staff, error) {
	if strings.TrimSpace(employeeNumber) == "" {
		return nil, fmt.Errorf("employee number is required")
	}
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("name is required")
	}
	if strings.TrimSpace(designation) == "" {
		return nil, fmt.Errorf("designation is required")
	}
	if joinedAt.IsZero() {
		joinedAt = time.Now()
	}

	now := time.Now()
	return &Staff{
		employeeNumber: strings.TrimSpace(employeeNumber),
		name:           strings.TrimSpace(name),
		designation:    strings.TrimSpace(designation),
		department:     strings.TrimSpace(department),
		status:         StatusActive,
		joinedAt:       joinedAt,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

type StaffData struct {
	ID             uint
	EmployeeNumber string
	Name           string
	Designation    string
	Department     string
	Phone          string
	Email          string
	AccountID      *uint
	Status         EmploymentStatus
	JoinedAt       time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func Reconstruct(data StaffData) (*Staff, error) {
	if data.ID == 0 {
		return nil, fmt.Errorf("staff ID cannot be zero")
	}
	if !data.Status.IsValid() {
		return nil, fmt.Errorf("invalid employment status: %s", data.Status)
	}
	return &Staff{
		id:             data.ID,
		employeeNumber: data.EmployeeNumber,
		name:           data.Name,
		designation:    data.Designation,
		department:     data.Department,
		phone:          data.Phone,
		email:          data.Email,
		accountID:      data.AccountID,
		status:         data.Status,
		joinedAt:       data.JoinedAt,
		createdAt:      data.CreatedAt,
		updatedAt:      data.UpdatedAt,
	}, nil
}

func (s *Staff) ID() uint                 { return s.id }
func (s *Staff) EmployeeNumber() string   { return s.employeeNumber }
func (s *Staff) Name() string             { return s.name }
func (s *Staff) Designation() string      { return s.designation }
func (s *Staff) Department() string       { return s.department }
func (s *Staff) Phone() string            { return s.phone }
func (s *Staff) Email() string            { return s.email }
func (s *Staff) AccountID() *uint         { return s.accountID }
func (s *Staff) Status() EmploymentStatus { return s.status }
func (s *Staff) JoinedAt() time.Time      { return s.joinedAt }
func (s *Staff) CreatedAt() time.Time     { return s.createdAt }
func (s *Staff) UpdatedAt() time.Time     { return s.updatedAt }

func (s *Staff) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("staff ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("staff ID cannot be zero")
	}
	s.id = id
	return nil
}

func (s *Staff) UpdateProfile(name, designation, department, phone, email string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("name is required")
	}
	if strings.TrimSpace(designation) == "" {
		return fmt.Errorf("designation is required")
	}
	s.name = strings.TrimSpace(name)
	s.designation = strings.TrimSpace(designation)
	s.department = strings.TrimSpace(department)
	s.phone = strings.TrimSpace(phone)
	s.email = strings.TrimSpace(email)
	s.updatedAt = time.Now()
	return nil
}

func (s *Staff) LinkAccount(accountID uint) error {
	if accountID == 0 {
		return fmt.Errorf("account ID cannot be zero")
	}
	s.accountID = &accountID
	s.updatedAt = time.Now()
	return nil
}

func (s *Staff) ChangeStatus(status EmploymentStatus) error {
	if !status.IsValid() {
		return fmt.Errorf("invalid employment status: %s", status)
	}
	s.status = status
	s.updatedAt = time.Now()
	return nil
}
