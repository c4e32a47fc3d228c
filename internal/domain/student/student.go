package student

import (
	"fmt"
	"strings"
	"time"
)

// EnrollmentStatus tracks where a student is in the enrollment lifecycle.
type EnrollmentStatus string

const (
	StatusEnrolled    EnrollmentStatus = "enrolled"
	StatusTransferred EnrollmentStatus = "transferred"
	StatusGraduated   EnrollmentStatus = "graduated"
	StatusWithdrawn   EnrollmentStatus = "withdrawn"
)

func (s EnrollmentStatus) IsValid() bool {
	switch s {
	case StatusEnrolled, StatusTransferred, StatusGraduated, StatusWithdrawn:
		return true
	}
	return false
}

func (s EnrollmentStatus) String() string {
	return string(s)
}

// Student is the enrollment record for one pupil. Class and section are
// plain labels ("10", "A"); roll numbers are unique within class+section
// but that uniqueness is enforced at the storage layer.
type Student struct {
	id              uint
	admissionNumber string
	firstName       string
	lastName        string
	class           string
	section         string
	rollNumber      int
	dateOfBirth     *time.Time
	guardianName    string
	guardianPhone   string
	guardianEmail   string
	address         string
	accountID       *uint
	parentAccountID *uint
	status          EnrollmentStatus
	admittedAt      time.Time
	createdAt       time.Time
	updatedAt       time.Time
}

func NewStudent(admissionNumber, firstName, lastName, class, section string, rollNumber int) (*Student, error) {
	if strings.TrimSpace(admissionNumber) == "" {
		return nil, fmt.Errorf("admission number is required")
	}
	if strings.TrimSpace(firstName) == "" {
		return nil, fmt.Errorf("first name is required")
	}
	if strings.TrimSpace(class) == "" {
		return nil, fmt.Errorf("class is required")
	}
	if rollNumber <= 0 {
		return nil, fmt.Errorf("roll number must be positive")
	}

	now := time.Now()
	return &Student{
		admissionNumber: strings.TrimSpace(admissionNumber),
		firstName:       strings.TrimSpace(firstName),
		lastName:        strings.TrimSpace(lastName),
		class:           strings.TrimSpace(class),
		section:         strings.TrimSpace(section),
		rollNumber:      rollNumber,
		status:          StatusEnrolled,
		admittedAt:      now,
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

// StudentData carries every persisted field for reconstruction.
type StudentData struct {
	ID              uint
	AdmissionNumber string
	FirstName       string
	LastName        string
	Class           string
	Section         string
	RollNumber      int
	DateOfBirth     *time.Time
	GuardianName    string
	GuardianPhone   string
	GuardianEmail   string
	Address         string
	AccountID       *uint
	ParentAccountID *uint
	Status          EnrollmentStatus
	AdmittedAt      time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func Reconstruct(data StudentData) (*Student, error) {
	if data.ID == 0 {
		return nil, fmt.Errorf("student ID cannot be zero")
	}
	if !data.Status.IsValid() {
		return nil, fmt.Errorf("invalid enrollment status: %s", data.Status)
	}
	return &Student{
		id:              data.ID,
		admissionNumber: data.AdmissionNumber,
		firstName:       data.FirstName,
		lastName:        data.LastName,
		class:           data.Class,
		section:         data.Section,
		rollNumber:      data.RollNumber,
		dateOfBirth:     data.DateOfBirth,
		guardianName:    data.GuardianName,
		guardianPhone:   data.GuardianPhone,
		guardianEmail:   data.GuardianEmail,
		address:         data.Address,
		accountID:       data.AccountID,
		parentAccountID: data.ParentAccountID,
		status:          data.Status,
		admittedAt:      data.AdmittedAt,
		createdAt:       data.CreatedAt,
		updatedAt:       data.UpdatedAt,
	}, nil
}

func (s *Student) ID() uint                 { return s.id }
func (s *Student) AdmissionNumber() string  { return s.admissionNumber }
func (s *Student) FirstName() string        { return s.firstName }
func (s *Student) LastName() string         { return s.lastName }
func (s *Student) Class() string            { return s.class }
func (s *Student) Section() string          { return s.section }
func (s *Student) RollNumber() int          { return s.rollNumber }
func (s *Student) DateOfBirth() *time.Time  { return s.dateOfBirth }
func (s *Student) GuardianName() string     { return s.guardianName }
func (s *Student) GuardianPhone() string    { return s.guardianPhone }
func (s *Student) GuardianEmail() string    { return s.guardianEmail }
func (s *Student) Address() string          { return s.address }
func (s *Student) AccountID() *uint         { return s.accountID }
func (s *Student) ParentAccountID() *uint   { return s.parentAccountID }
func (s *Student) Status() EnrollmentStatus { return s.status }
func (s *Student) AdmittedAt() time.Time    { return s.admittedAt }
func (s *Student) CreatedAt() time.Time     { return s.createdAt }
func (s *Student) UpdatedAt() time.Time     { return s.updatedAt }

func (s *Student) FullName() string {
	if s.lastName == "" {
		return s.firstName
	}
	return s.firstName + " " + s.lastName
}

func (s *Student) IsEnrolled() bool {
	return s.status == StatusEnrolled
}

func (s *Student) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("student ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("student ID cannot be zero")
	}
	s.id = id
	return nil
}

func (s *Student) UpdateProfile(firstName, lastName, guardianName, guardianPhone, guardianEmail, address string, dateOfBirth *time.Time) error {
	if strings.TrimSpace(firstName) == "" {
		return fmt.Errorf("first name is required")
	}
	s.firstName = strings.TrimSpace(firstName)
	s.lastName = strings.TrimSpace(lastName)
	s.guardianName = strings.TrimSpace(guardianName)
	s.guardianPhone = strings.TrimSpace(guardianPhone)
	s.guardianEmail = strings.TrimSpace(guardianEmail)
	s.address = strings.TrimSpace(address)
	s.dateOfBirth = dateOfBirth
	s.touch()
	return nil
}

// AssignToClass moves the student to a new class/section/roll, e.g. at
// promotion time.
func (s *Student) AssignToClass(class, section string, rollNumber int) error {
	if !s.IsEnrolled() {
		return fmt.Errorf("cannot reassign a %s student", s.status)
	}
	if strings.TrimSpace(class) == "" {
		return fmt.Errorf("class is required")
	}
	if rollNumber <= 0 {
		return fmt.Errorf("roll number must be positive")
	}
	s.class = strings.TrimSpace(class)
	s.section = strings.TrimSpace(section)
	s.rollNumber = rollNumber
	s.touch()
	return nil
}

func (s *Student) LinkAccount(accountID uint) error {
	if accountID == 0 {
		return fmt.Errorf("account ID cannot be zero")
	}
	s.accountID = &accountID
	s.touch()
	return nil
}

// LinkParentAccount connects the record to a parent-portal account so the
// parent can see this child's attendance and fees.
func (s *Student) LinkParentAccount(accountID uint) error {
	if accountID == 0 {
		return fmt.Errorf("account ID cannot be zero")
	}
	s.parentAccountID = &accountID
	s.touch()
	return nil
}

func (s *Student) ChangeStatus(status EnrollmentStatus) error {
	if !status.IsValid() {
		return fmt.Errorf("invalid enrollment status: %s", status)
	}
	s.status = status
	s.touch()
	return nil
}

func (s *Student) touch() {
	s.updatedAt = time.Now()
}
