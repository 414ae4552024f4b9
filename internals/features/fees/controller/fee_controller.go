// file: internals/features/fees/controller/fee_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	academicModel "campusiq_backend/internals/features/academics/model"
	"campusiq_backend/internals/features/fees/dto"
	"campusiq_backend/internals/features/fees/model"
	"campusiq_backend/internals/features/fees/service"
	studentModel "campusiq_backend/internals/features/students/model"
	helper "campusiq_backend/internals/helpers"
	"campusiq_backend/internals/tenancy"
)

type FeeController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewFeeController(db *gorm.DB, v *validator.Validate) *FeeController {
	return &FeeController{DB: db, Validator: v}
}

/* ============================== FEE STRUCTURES ============================== */

func (ctl *FeeController) CreateStructure(c *fiber.Ctx) error {
	var req dto.CreateFeeStructureRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var cls academicModel.ClassModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Scopes(tenancy.Scoped(c.UserContext(), &academicModel.ClassModel{})).
		First(&cls, "class_id = ?", req.FeeStructureClassID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Kelas tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	m := model.FeeStructureModel{
		FeeStructureSchoolID:     cls.ClassSchoolID,
		FeeStructureClassID:      cls.ClassID,
		FeeStructureAcademicYear: strings.TrimSpace(req.FeeStructureAcademicYear),
	}
	for _, it := range req.FeeStructureItems {
		m.FeeStructureItems = append(m.FeeStructureItems, model.FeeItemModel{
			FeeItemName:   strings.TrimSpace(it.FeeItemName),
			FeeItemAmount: it.FeeItemAmount,
		})
	}

	if err := ctl.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "duplicate") || strings.Contains(low, "unique") {
			return helper.JsonError(c, fiber.StatusConflict, "Fee structure kelas & tahun ajaran ini sudah ada")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat fee structure")
	}

	return helper.JsonCreated(c, "Fee structure berhasil dibuat", m)
}

func (ctl *FeeController) ListStructures(c *fiber.Ctx) error {
	var rows []model.FeeStructureModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Scopes(tenancy.Scoped(c.UserContext(), &model.FeeStructureModel{})).
		Preload("FeeStructureItems").
		Order("fee_structure_academic_year DESC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	return helper.JsonOK(c, "OK", fiber.Map{"list": rows})
}

/* ============================== GENERATE INVOICES ============================== */

// GenerateInvoices membuat tagihan untuk semua siswa aktif di class fee structure.
// Siswa yang sudah punya invoice dari structure ini dilewati.
func (ctl *FeeController) GenerateInvoices(c *fiber.Ctx) error {
	var req dto.GenerateInvoicesRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	dueDate, err := time.Parse("2006-01-02", req.InvoiceDueDate)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invoice_due_date invalid (format YYYY-MM-DD)")
	}

	var fs model.FeeStructureModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Scopes(tenancy.Scoped(c.UserContext(), &model.FeeStructureModel{})).
		Preload("FeeStructureItems").
		First(&fs, "fee_structure_id = ?", req.FeeStructureID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Fee structure tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	total := fs.TotalAmount()
	if total <= 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Fee structure tidak punya item biaya")
	}

	var students []studentModel.StudentProfileModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("student_profile_school_id = ?", fs.FeeStructureSchoolID).
		Where("student_profile_class_id = ?", fs.FeeStructureClassID).
		Where("student_profile_status = ?", studentModel.StudentStatusActive).
		Find(&students).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	if len(students) == 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Tidak ada siswa aktif di kelas ini")
	}

	created := 0
	skipped := 0
	now := time.Now()
	txErr := ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		for i := range students {
			var exists int64
			if err := tx.Model(&model.InvoiceModel{}).
				Where("invoice_student_id = ?", students[i].StudentProfileID).
				Where("invoice_structure_id = ?", fs.FeeStructureID).
				Count(&exists).Error; err != nil {
				return err
			}
			if exists > 0 {
				skipped++
				continue
			}

			number, err := service.NextInvoiceNumber(tx, fs.FeeStructureSchoolID, now)
			if err != nil {
				return err
			}
			inv := model.InvoiceModel{
				InvoiceSchoolID:    fs.FeeStructureSchoolID,
				InvoiceNumber:      number,
				InvoiceStudentID:   students[i].StudentProfileID,
				InvoiceStructureID: fs.FeeStructureID,
				InvoiceTotalAmount: total,
				InvoiceDueDate:     dueDate,
				InvoiceStatus:      model.InvoiceStatusUnpaid,
			}
			if err := tx.Create(&inv).Error; err != nil {
				return err
			}
			created++
		}
		return nil
	})
	if txErr != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal generate invoice")
	}

	return helper.JsonCreated(c, "Invoice berhasil di-generate", fiber.Map{
		"created": created,
		"skipped": skipped,
	})
}

/* ============================== LIST INVOICES ============================== */

func (ctl *FeeController) ListInvoices(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 200)

	dbq := ctl.DB.WithContext(c.UserContext()).
		Model(&model.InvoiceModel{}).
		Scopes(tenancy.Scoped(c.UserContext(), &model.InvoiceModel{}))

	if st := strings.TrimSpace(c.Query("status")); st != "" {
		dbq = dbq.Where("invoice_status = ?", st)
	}
	if studentID := strings.TrimSpace(c.Query("student_id")); studentID != "" {
		sid, err := uuid.Parse(studentID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "student_id invalid")
		}
		dbq = dbq.Where("invoice_student_id = ?", sid)
	}

	var total int64
	if err := dbq.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	var rows []model.InvoiceModel
	if err := dbq.Order("invoice_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"list":       rows,
		"pagination": helper.BuildPagination(total, p, len(rows)),
	})
}
