package http

import (
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	accountUsecases "scholaris/internal/application/account/usecases"
	attendanceUsecases "scholaris/internal/application/attendance/usecases"
	examUsecases "scholaris/internal/application/exam/usecases"
	feesUsecases "scholaris/internal/application/fees/usecases"
	libraryUsecases "scholaris/internal/application/library/usecases"
	noticeUsecases "scholaris/internal/application/notice/usecases"
	staffUsecases "scholaris/internal/application/staff/usecases"
	studentUsecases "scholaris/internal/application/student/usecases"
	transportUsecases "scholaris/internal/application/transport/usecases"
	"scholaris/internal/domain/account"
	"scholaris/internal/domain/attendance"
	"scholaris/internal/domain/exam"
	"scholaris/internal/domain/fees"
	"scholaris/internal/domain/library"
	"scholaris/internal/domain/notice"
	"scholaris/internal/domain/staff"
	"scholaris/internal/domain/student"
	"scholaris/internal/domain/transport"
	"scholaris/internal/infrastructure/auth"
	"scholaris/internal/infrastructure/config"
	"scholaris/internal/infrastructure/email"
	"scholaris/internal/infrastructure/pdf"
	"scholaris/internal/infrastructure/permission"
	"scholaris/internal/infrastructure/ratelimit"
	"scholaris/internal/infrastructure/repository"
	"scholaris/internal/infrastructure/scheduler"
	"scholaris/internal/infrastructure/sms"
	"scholaris/internal/interfaces/http/handlers"
	"scholaris/internal/interfaces/http/middleware"
	"scholaris/internal/shared/authorization"
	"scholaris/internal/shared/logger"
	"scholaris/internal/shared/services/markdown"
)

// Container wires repositories, use cases, handlers, and background jobs
// and owns graceful shutdown of the pieces that need it.
type Container struct {
	db    *gorm.DB
	cfg   *config.Config
	log   logger.Interface
	redis *redis.Client

	repos *repositories
	ucs   *useCases
	hdlrs *handlerSet

	authMiddleware *middleware.AuthMiddleware
	permMiddleware *middleware.PermissionMiddleware
	rateLimiter    *middleware.RateLimiter

	jwtSvc           *auth.JWTService
	enforcer         *permission.Enforcer
	schedulerManager *scheduler.Manager
}

type repositories struct {
	account    account.Repository
	activity   account.ActivityRepository
	session    account.SessionRepository
	uow        account.UnitOfWork
	student    student.Repository
	staff      staff.Repository
	attendance attendance.Repository
	fee        fees.Repository
	book       library.BookRepository
	loan       library.LoanRepository
	route      transport.RouteRepository
	assignment transport.AssignmentRepository
	notice     notice.Repository
	exam       exam.ExamRepository
	admitCard  exam.AdmitCardRepository
}

type useCases struct {
	login          *accountUsecases.LoginUseCase
	logout         *accountUsecases.LogoutUseCase
	refreshToken   *accountUsecases.RefreshTokenUseCase
	changePassword *accountUsecases.ChangePasswordUseCase
	forcedChange   *accountUsecases.ForcedPasswordChangeUseCase
	requestReset   *accountUsecases.RequestPasswordResetUseCase
	resetPassword  *accountUsecases.ResetPasswordUseCase
	verifyEmail    *accountUsecases.VerifyEmailUseCase
	createAccount  *accountUsecases.CreateAccountUseCase
	getAccount     *accountUsecases.GetAccountUseCase
	listAccounts   *accountUsecases.ListAccountsUseCase
	listActivity   *accountUsecases.ListActivityUseCase

	enrollStudent *studentUsecases.EnrollStudentUseCase
	getStudent    *studentUsecases.GetStudentUseCase
	listStudents  *studentUsecases.ListStudentsUseCase
	updateStudent *studentUsecases.UpdateStudentUseCase
	assignClass   *studentUsecases.AssignClassUseCase
	changeStatus  *studentUsecases.ChangeEnrollmentStatusUseCase
	myChildren    *studentUsecases.ListMyChildrenUseCase

	hireStaff   *staffUsecases.HireStaffUseCase
	updateStaff *staffUsecases.UpdateStaffUseCase
	getStaff    *staffUsecases.GetStaffUseCase
	listStaff   *staffUsecases.ListStaffUseCase

	markAttendance *attendanceUsecases.MarkAttendanceUseCase
	classSheet     *attendanceUsecases.GetClassSheetUseCase
	studentSummary *attendanceUsecases.GetStudentSummaryUseCase
	absenceAlerts  *attendanceUsecases.SendAbsenceAlertsUseCase

	createInvoice   *feesUsecases.CreateInvoiceUseCase
	cancelInvoice   *feesUsecases.CancelInvoiceUseCase
	recordPayment   *feesUsecases.RecordPaymentUseCase
	getInvoice      *feesUsecases.GetInvoiceUseCase
	listInvoices    *feesUsecases.ListInvoicesUseCase
	studentInvoices *feesUsecases.ListStudentInvoicesUseCase
	getReceipt      *feesUsecases.GetReceiptUseCase
	overdueSweep    *feesUsecases.OverdueSweepUseCase

	addBook      *libraryUsecases.AddBookUseCase
	listBooks    *libraryUsecases.ListBooksUseCase
	borrowBook   *libraryUsecases.BorrowBookUseCase
	returnBook   *libraryUsecases.ReturnBookUseCase
	studentLoans *libraryUsecases.ListStudentLoansUseCase
	overdueLoans *libraryUsecases.ListOverdueLoansUseCase

	createRoute   *transportUsecases.CreateRouteUseCase
	updateRoute   *transportUsecases.UpdateRouteUseCase
	deleteRoute   *transportUsecases.DeleteRouteUseCase
	listRoutes    *transportUsecases.ListRoutesUseCase
	assignStudent *transportUsecases.AssignStudentUseCase
	endAssignment *transportUsecases.EndAssignmentUseCase
	routeRoster   *transportUsecases.GetRouteRosterUseCase

	publishAnnouncement *noticeUsecases.PublishAnnouncementUseCase
	updateAnnouncement  *noticeUsecases.UpdateAnnouncementUseCase
	deleteAnnouncement  *noticeUsecases.DeleteAnnouncementUseCase
	noticeboard         *noticeUsecases.ListNoticeboardUseCase

	scheduleExam      *examUsecases.ScheduleExamUseCase
	listExams         *examUsecases.ListExamsUseCase
	issueAdmitCard    *examUsecases.IssueAdmitCardUseCase
	downloadAdmitCard *examUsecases.DownloadAdmitCardUseCase
}

type handlerSet struct {
	auth       *handlers.AuthHandler
	account    *handlers.AccountHandler
	student    *handlers.StudentHandler
	staff      *handlers.StaffHandler
	attendance *handlers.AttendanceHandler
	fee        *handlers.FeeHandler
	library    *handlers.LibraryHandler
	transport  *handlers.TransportHandler
	notice     *handlers.NoticeHandler
	exam       *handlers.ExamHandler
}

// NewContainer builds the full dependency graph. Background jobs are
// registered but not started; call StartScheduler once the server is up.
func NewContainer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, log logger.Interface) (*Container, error) {
	c := &Container{
		db:    db,
		cfg:   cfg,
		log:   log,
		redis: redisClient,
	}

	c.buildRepositories()

	if err := c.buildUseCases(); err != nil {
		return nil, err
	}
	c.buildHandlers()

	if err := c.buildMiddleware(); err != nil {
		return nil, err
	}
	if err := c.buildScheduler(); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Container) buildRepositories() {
	c.repos = &repositories{
		account:    repository.NewAccountRepository(c.db),
		activity:   repository.NewActivityRepository(c.db),
		session:    repository.NewSessionRepository(c.db),
		uow:        repository.NewUnitOfWork(c.db),
		student:    repository.NewStudentRepository(c.db),
		staff:      repository.NewStaffRepository(c.db),
		attendance: repository.NewAttendanceRepository(c.db),
		fee:        repository.NewFeeRepository(c.db),
		book:       repository.NewBookRepository(c.db),
		loan:       repository.NewLoanRepository(c.db),
		route:      repository.NewRouteRepository(c.db),
		assignment: repository.NewAssignmentRepository(c.db),
		notice:     repository.NewNoticeRepository(c.db),
		exam:       repository.NewExamRepository(c.db),
		admitCard:  repository.NewAdmitCardRepository(c.db),
	}
}

func (c *Container) buildUseCases() error {
	hasher := auth.NewBcryptPasswordHasher(c.cfg.Auth.Password.BcryptCost)
	c.jwtSvc = auth.NewJWTService(c.cfg.Auth.JWT.Secret, c.cfg.Auth.JWT.AccessExpMinutes, c.cfg.Auth.JWT.RefreshExpDays)
	tokens := auth.NewTokenAdapter(c.jwtSvc)

	emailService := email.NewSMTPEmailService(email.SMTPConfig{
		Host:        c.cfg.Email.SMTPHost,
		Port:        c.cfg.Email.SMTPPort,
		Username:    c.cfg.Email.SMTPUser,
		Password:    c.cfg.Email.SMTPPassword,
		FromAddress: c.cfg.Email.FromAddress,
		FromName:    c.cfg.Email.FromName,
		BaseURL:     c.cfg.Server.BaseURL,
		SchoolName:  c.cfg.School.Name,
	})
	smsClient := sms.NewGatewayClient(c.cfg.SMS.GatewayURL, c.cfg.SMS.APIKey, c.cfg.SMS.SenderID, c.cfg.SMS.Enabled)

	loginLimiter := ratelimit.NewLoginLimiter(c.redis, c.cfg.Auth.LoginLimit.MaxAttempts, c.cfg.Auth.LoginLimit.WindowMinutes)

	destinations, err := authorization.LoadDestinationTable()
	if err != nil {
		return fmt.Errorf("failed to load destination table: %w", err)
	}

	securityPolicy := &account.SecurityPolicy{
		MaxFailedLogins: c.cfg.Auth.Security.MaxFailedLogins,
		LockoutDuration: time.Duration(c.cfg.Auth.Security.LockoutMinutes) * time.Minute,
	}

	markdownService := markdown.NewMarkdownService()
	receiptRenderer := pdf.NewFeeReceiptRenderer()
	cardRenderer := pdf.NewAdmitCardRenderer()

	r := c.repos
	c.ucs = &useCases{
		login: accountUsecases.NewLoginUseCase(
			r.account, r.activity, r.uow, hasher, tokens, loginLimiter,
			destinations, securityPolicy, c.cfg.Auth.Session, c.log,
		),
		logout:         accountUsecases.NewLogoutUseCase(r.session, r.activity, c.log),
		refreshToken:   accountUsecases.NewRefreshTokenUseCase(r.session, tokens, c.log),
		changePassword: accountUsecases.NewChangePasswordUseCase(r.account, r.uow, hasher, emailService, c.log),
		forcedChange: accountUsecases.NewForcedPasswordChangeUseCase(
			r.account, r.activity, r.uow, hasher, tokens, destinations,
			securityPolicy, c.cfg.Auth.Session, emailService, c.log,
		),
		requestReset: accountUsecases.NewRequestPasswordResetUseCase(r.account, r.activity, emailService, c.cfg.Auth.Token, c.log),
		resetPassword:  accountUsecases.NewResetPasswordUseCase(r.account, r.uow, hasher, emailService, c.log),
		verifyEmail:    accountUsecases.NewVerifyEmailUseCase(r.account, c.log),
		createAccount:  accountUsecases.NewCreateAccountUseCase(r.account, hasher, emailService, c.cfg.Auth.Token, c.log),
		getAccount:     accountUsecases.NewGetAccountUseCase(r.account),
		listAccounts:   accountUsecases.NewListAccountsUseCase(r.account),
		listActivity:   accountUsecases.NewListActivityUseCase(r.activity),

		enrollStudent: studentUsecases.NewEnrollStudentUseCase(r.student, c.log),
		getStudent:    studentUsecases.NewGetStudentUseCase(r.student),
		listStudents:  studentUsecases.NewListStudentsUseCase(r.student),
		updateStudent: studentUsecases.NewUpdateStudentUseCase(r.student, c.log),
		assignClass:   studentUsecases.NewAssignClassUseCase(r.student, c.log),
		changeStatus:  studentUsecases.NewChangeEnrollmentStatusUseCase(r.student, c.log),
		myChildren:    studentUsecases.NewListMyChildrenUseCase(r.student, c.log),

		hireStaff:   staffUsecases.NewHireStaffUseCase(r.staff, c.log),
		updateStaff: staffUsecases.NewUpdateStaffUseCase(r.staff, c.log),
		getStaff:    staffUsecases.NewGetStaffUseCase(r.staff),
		listStaff:   staffUsecases.NewListStaffUseCase(r.staff),

		markAttendance: attendanceUsecases.NewMarkAttendanceUseCase(r.attendance, r.student, c.log),
		classSheet:     attendanceUsecases.NewGetClassSheetUseCase(r.attendance),
		studentSummary: attendanceUsecases.NewGetStudentSummaryUseCase(r.attendance),
		absenceAlerts:  attendanceUsecases.NewSendAbsenceAlertsUseCase(r.attendance, r.student, emailService, smsClient, c.log),

		createInvoice:   feesUsecases.NewCreateInvoiceUseCase(r.fee, r.student, c.log),
		cancelInvoice:   feesUsecases.NewCancelInvoiceUseCase(r.fee, c.log),
		recordPayment:   feesUsecases.NewRecordPaymentUseCase(r.fee, c.log),
		getInvoice:      feesUsecases.NewGetInvoiceUseCase(r.fee),
		listInvoices:    feesUsecases.NewListInvoicesUseCase(r.fee),
		studentInvoices: feesUsecases.NewListStudentInvoicesUseCase(r.fee),
		getReceipt:      feesUsecases.NewGetReceiptUseCase(r.fee, r.student, receiptRenderer, c.cfg.School),
		overdueSweep:    feesUsecases.NewOverdueSweepUseCase(r.fee, r.student, emailService, c.log),

		addBook:      libraryUsecases.NewAddBookUseCase(r.book, c.log),
		listBooks:    libraryUsecases.NewListBooksUseCase(r.book),
		borrowBook:   libraryUsecases.NewBorrowBookUseCase(r.book, r.loan, r.student, c.cfg.School, c.log),
		returnBook:   libraryUsecases.NewReturnBookUseCase(r.book, r.loan, c.cfg.School, c.log),
		studentLoans: libraryUsecases.NewListStudentLoansUseCase(r.loan),
		overdueLoans: libraryUsecases.NewListOverdueLoansUseCase(r.loan),

		createRoute:   transportUsecases.NewCreateRouteUseCase(r.route, c.log),
		updateRoute:   transportUsecases.NewUpdateRouteUseCase(r.route, r.assignment, c.log),
		deleteRoute:   transportUsecases.NewDeleteRouteUseCase(r.route, r.assignment, c.log),
		listRoutes:    transportUsecases.NewListRoutesUseCase(r.route),
		assignStudent: transportUsecases.NewAssignStudentUseCase(r.route, r.assignment, r.student, c.log),
		endAssignment: transportUsecases.NewEndAssignmentUseCase(r.assignment, c.log),
		routeRoster:   transportUsecases.NewGetRouteRosterUseCase(r.assignment),

		publishAnnouncement: noticeUsecases.NewPublishAnnouncementUseCase(r.notice, markdownService, c.log),
		updateAnnouncement:  noticeUsecases.NewUpdateAnnouncementUseCase(r.notice, markdownService, c.log),
		deleteAnnouncement:  noticeUsecases.NewDeleteAnnouncementUseCase(r.notice, c.log),
		noticeboard:         noticeUsecases.NewListNoticeboardUseCase(r.notice),

		scheduleExam:      examUsecases.NewScheduleExamUseCase(r.exam, c.log),
		listExams:         examUsecases.NewListExamsUseCase(r.exam),
		issueAdmitCard:    examUsecases.NewIssueAdmitCardUseCase(r.exam, r.admitCard, r.student, r.fee, c.log),
		downloadAdmitCard: examUsecases.NewDownloadAdmitCardUseCase(r.exam, r.admitCard, r.student, cardRenderer, c.cfg.School),
	}

	return nil
}

func (c *Container) buildHandlers() {
	u := c.ucs
	c.hdlrs = &handlerSet{
		auth: handlers.NewAuthHandler(
			u.login, u.logout, u.refreshToken, u.changePassword, u.forcedChange,
			u.requestReset, u.resetPassword, u.verifyEmail, u.getAccount,
			c.cfg.Auth.JWT, c.log,
		),
		account: handlers.NewAccountHandler(u.createAccount, u.getAccount, u.listAccounts, u.listActivity, c.log),
		student: handlers.NewStudentHandler(
			u.enrollStudent, u.getStudent, u.listStudents, u.updateStudent,
			u.assignClass, u.changeStatus, u.myChildren, c.log,
		),
		staff:      handlers.NewStaffHandler(u.hireStaff, u.updateStaff, u.getStaff, u.listStaff, c.log),
		attendance: handlers.NewAttendanceHandler(u.markAttendance, u.classSheet, u.studentSummary, c.log),
		fee: handlers.NewFeeHandler(
			u.createInvoice, u.cancelInvoice, u.recordPayment, u.getInvoice,
			u.listInvoices, u.studentInvoices, u.getReceipt, c.log,
		),
		library: handlers.NewLibraryHandler(
			u.addBook, u.listBooks, u.borrowBook, u.returnBook,
			u.studentLoans, u.overdueLoans, c.log,
		),
		transport: handlers.NewTransportHandler(
			u.createRoute, u.updateRoute, u.deleteRoute, u.listRoutes,
			u.assignStudent, u.endAssignment, u.routeRoster, c.log,
		),
		notice: handlers.NewNoticeHandler(u.publishAnnouncement, u.updateAnnouncement, u.deleteAnnouncement, u.noticeboard, c.log),
		exam:   handlers.NewExamHandler(u.scheduleExam, u.listExams, u.issueAdmitCard, u.downloadAdmitCard, c.log),
	}
}

func (c *Container) buildMiddleware() error {
	enforcer, err := permission.NewEnforcer(c.db, c.log)
	if err != nil {
		return fmt.Errorf("failed to build permission enforcer: %w", err)
	}
	if err := permission.SeedPolicies(enforcer, c.log); err != nil {
		return fmt.Errorf("failed to seed permission policies: %w", err)
	}
	c.enforcer = enforcer

	c.authMiddleware = middleware.NewAuthMiddleware(c.jwtSvc, c.repos.session, c.log)
	c.permMiddleware = middleware.NewPermissionMiddleware(enforcer, c.log)
	c.rateLimiter = middleware.NewRateLimiter(c.redis, 300, time.Minute)

	return nil
}

func (c *Container) buildScheduler() error {
	manager, err := scheduler.NewManager(c.log)
	if err != nil {
		return fmt.Errorf("failed to create scheduler: %w", err)
	}

	if err := manager.RegisterSessionSweep(c.repos.session); err != nil {
		return fmt.Errorf("failed to register session sweep: %w", err)
	}
	if err := manager.RegisterFeeJobs(c.ucs.overdueSweep); err != nil {
		return fmt.Errorf("failed to register fee jobs: %w", err)
	}
	if err := manager.RegisterAttendanceJobs(c.ucs.absenceAlerts); err != nil {
		return fmt.Errorf("failed to register attendance jobs: %w", err)
	}

	c.schedulerManager = manager
	return nil
}

// StartScheduler begins running the registered background jobs.
func (c *Container) StartScheduler() {
	c.schedulerManager.Start()
}

// Shutdown stops background jobs. Database and Redis connections are
// owned by the caller and closed separately.
func (c *Container) Shutdown() error {
	if c.schedulerManager != nil && c.schedulerManager.IsStarted() {
		if err := c.schedulerManager.Stop(); err != nil {
			return fmt.Errorf("failed to stop scheduler: %w", err)
		}
	}
	c.log.Infow("container shut down")
	return nil
}
