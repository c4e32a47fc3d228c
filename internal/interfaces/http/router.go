package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"scholaris/internal/interfaces/http/middleware"
)

// Router owns the gin engine and binds handlers to routes. Authorization
// is declared per route group against the seeded casbin policies.
type Router struct {
	engine    *gin.Engine
	container *Container
}

func NewRouter(container *Container) *Router {
	if container.cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(middleware.Logger(container.log))
	engine.Use(middleware.Recovery())
	engine.Use(middleware.CORS(container.cfg.Server.AllowedOrigins))
	engine.Use(middleware.SecurityHeaders())

	return &Router{
		engine:    engine,
		container: container,
	}
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}

func (r *Router) SetupRoutes() {
	c := r.container
	h := c.hdlrs

	r.engine.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok", "time": time.Now().UTC()})
	})

	v1 := r.engine.Group("/api/v1")
	v1.Use(c.rateLimiter.Limit())

	// Routes reachable without a session. Login carries its own
	// per-identifier limiter inside the use case.
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.auth.Login)
		auth.POST("/force-change-password", h.auth.ForcePasswordChange)
		auth.POST("/refresh", h.auth.Refresh)
		auth.POST("/request-password-reset", h.auth.RequestPasswordReset)
		auth.POST("/reset-password", h.auth.ResetPassword)
		auth.GET("/verify-email", h.auth.VerifyEmail)
		auth.POST("/verify-email", h.auth.VerifyEmail)
	}

	authed := v1.Group("")
	authed.Use(c.authMiddleware.RequireAuth())

	authed.POST("/auth/logout", h.auth.Logout)
	authed.POST("/auth/change-password", h.auth.ChangePassword)
	authed.GET("/auth/me", h.auth.Me)

	// Parent portal; scoped to the caller's account, so no resource
	// policy applies.
	authed.GET("/me/children", h.student.MyChildren)

	perm := c.permMiddleware

	accounts := authed.Group("/accounts", perm.Require("accounts", "manage"))
	{
		accounts.POST("", h.account.Create)
		accounts.GET("", h.account.List)
		accounts.GET("/:id", h.account.Get)
	}
	authed.GET("/activity", perm.Require("activity", "read"), h.account.Activity)

	students := authed.Group("/students")
	{
		students.POST("", perm.Require("students", "manage"), h.student.Enroll)
		students.GET("", perm.Require("students", "read"), h.student.List)
		students.GET("/:id", perm.Require("students", "read"), h.student.Get)
		students.PUT("/:id", perm.Require("students", "manage"), h.student.Update)
		students.PUT("/:id/class", perm.Require("students", "manage"), h.student.AssignClass)
		students.PUT("/:id/status", perm.Require("students", "manage"), h.student.ChangeStatus)

		students.GET("/:id/attendance", perm.Require("attendance", "read"), h.attendance.StudentSummary)
		students.GET("/:id/invoices", perm.Require("fees", "read"), h.fee.StudentInvoices)
		students.GET("/:id/loans", perm.Require("library", "read"), h.library.StudentLoans)
	}

	staff := authed.Group("/staff")
	{
		staff.POST("", perm.Require("staff", "manage"), h.staff.Hire)
		staff.GET("", perm.Require("staff", "read"), h.staff.List)
		staff.GET("/:id", perm.Require("staff", "read"), h.staff.Get)
		staff.PUT("/:id", perm.Require("staff", "manage"), h.staff.Update)
	}

	attendance := authed.Group("/attendance")
	{
		attendance.POST("", perm.Require("attendance", "manage"), h.attendance.Mark)
		attendance.GET("/sheet", perm.Require("attendance", "read"), h.attendance.ClassSheet)
	}

	invoices := authed.Group("/invoices")
	{
		invoices.POST("", perm.Require("fees", "manage"), h.fee.CreateInvoice)
		invoices.GET("", perm.Require("fees", "read"), h.fee.ListInvoices)
		invoices.GET("/:id", perm.Require("fees", "read"), h.fee.GetInvoice)
		invoices.POST("/:id/cancel", perm.Require("fees", "manage"), h.fee.CancelInvoice)
		invoices.POST("/:id/payments", perm.Require("fees", "manage"), h.fee.RecordPayment)
	}
	authed.GET("/receipts/:receipt_number", perm.Require("fees", "read"), h.fee.Receipt)

	library := authed.Group("/library")
	{
		library.POST("/books", perm.Require("library", "manage"), h.library.AddBook)
		library.GET("/books", perm.Require("library", "read"), h.library.ListBooks)
		library.POST("/loans", perm.Require("library", "manage"), h.library.Borrow)
		library.POST("/loans/:id/return", perm.Require("library", "manage"), h.library.Return)
		library.GET("/loans/overdue", perm.Require("library", "read"), h.library.OverdueLoans)
	}

	transport := authed.Group("/transport")
	{
		transport.POST("/routes", perm.Require("transport", "manage"), h.transport.CreateRoute)
		transport.GET("/routes", perm.Require("transport", "read"), h.transport.ListRoutes)
		transport.PUT("/routes/:id", perm.Require("transport", "manage"), h.transport.UpdateRoute)
		transport.DELETE("/routes/:id", perm.Require("transport", "manage"), h.transport.DeleteRoute)
		transport.POST("/routes/:id/assignments", perm.Require("transport", "manage"), h.transport.AssignStudent)
		transport.GET("/routes/:id/roster", perm.Require("transport", "read"), h.transport.Roster)
		transport.DELETE("/assignments/:assignment_id", perm.Require("transport", "manage"), h.transport.EndAssignment)
	}

	announcements := authed.Group("/announcements")
	{
		announcements.POST("", perm.Require("announcements", "manage"), h.notice.Publish)
		announcements.PUT("/:id", perm.Require("announcements", "manage"), h.notice.Update)
		announcements.DELETE("/:id", perm.Require("announcements", "manage"), h.notice.Delete)
	}
	authed.GET("/noticeboard", perm.Require("announcements", "read"), h.notice.Noticeboard)

	exams := authed.Group("/exams")
	{
		exams.POST("", perm.Require("exams", "manage"), h.exam.Schedule)
		exams.GET("", perm.Require("exams", "read"), h.exam.List)
		exams.POST("/:id/admit-cards", perm.Require("exams", "manage"), h.exam.IssueAdmitCard)
	}
	authed.GET("/admit-cards/:serial", perm.Require("exams", "read"), h.exam.DownloadAdmitCard)
}
