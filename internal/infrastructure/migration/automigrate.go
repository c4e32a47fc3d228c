package migration

import (
	"scholaris/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.AccountModel{},
		&models.SessionModel{},
		&models.ActivityLogModel{},
		&models.StudentModel{},
		&models.StaffModel{},
		&models.AttendanceModel{},
		&models.FeeInvoiceModel{},
		&models.FeePaymentModel{},
		&models.BookModel{},
		&models.LoanModel{},
		&models.RouteModel{},
		&models.TransportAssignmentModel{},
		&models.AnnouncementModel{},
		&models.ExamModel{},
		&models.AdmitCardModel{},
	}
}
