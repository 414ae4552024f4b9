// file: internals/features/attendance/controller/attendance_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"campusiq_backend/internals/constants"
	academicModel "campusiq_backend/internals/features/academics/model"
	"campusiq_backend/internals/features/attendance/dto"
	"campusiq_backend/internals/features/attendance/model"
	"campusiq_backend/internals/features/attendance/service"
	studentModel "campusiq_backend/internals/features/students/model"
	userModel "campusiq_backend/internals/features/users/model"
	helper "campusiq_backend/internals/helpers"
	authHelper "campusiq_backend/internals/helpers/auth"
	"campusiq_backend/internals/tenancy"
)

type AttendanceController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAttendanceController(db *gorm.DB, v *validator.Validate) *AttendanceController {
	return &AttendanceController{DB: db, Validator: v}
}

// canMarkSection: admin bebas; guru hanya section yang dia pegang sebagai class teacher.
func (ctl *AttendanceController) canMarkSection(c *fiber.Ctx, p tenancy.Principal, sec *academicModel.SectionModel) (bool, error) {
	if p.Role == constants.RoleAdmin || p.Role == constants.RoleSuperAdmin {
		return true, nil
	}
	if p.Role != constants.RoleTeacher || sec.SectionClassTeacherID == nil {
		return false, nil
	}

	var tp userModel.TeacherProfileModel
	err := ctl.DB.WithContext(c.UserContext()).
		Scopes(tenancy.Scoped(c.UserContext(), &userModel.TeacherProfileModel{})).
		First(&tp, "teacher_profile_user_id = ?", p.UserID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return tp.TeacherProfileID == *sec.SectionClassTeacherID, nil
}

/* ============================== BULK MARK ============================== */

// BulkMark menandai absensi satu section untuk satu tanggal.
// Re-mark tanggal yang sama meng-update baris lama (idempotent).
func (ctl *AttendanceController) BulkMark(c *fiber.Ctx) error {
	var req dto.BulkMarkAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	date, err := time.Parse("2006-01-02", req.AttendanceDate)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "attendance_date invalid (format YYYY-MM-DD)")
	}

	var sec academicModel.SectionModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Scopes(tenancy.Scoped(c.UserContext(), &academicModel.SectionModel{})).
		First(&sec, "section_id = ?", req.SectionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Section tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	p := authHelper.PrincipalFromLocals(c)
	ok, err := ctl.canMarkSection(c, p, &sec)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	if !ok {
		return helper.JsonError(c, fiber.StatusForbidden, "Hanya class teacher section ini yang boleh menandai absensi")
	}

	// Semua siswa di request harus siswa aktif section ini.
	studentIDs := make([]uuid.UUID, 0, len(req.Items))
	for i := range req.Items {
		studentIDs = append(studentIDs, req.Items[i].AttendanceStudentID)
	}
	var validCount int64
	if err := ctl.DB.WithContext(c.UserContext()).
		Model(&studentModel.StudentProfileModel{}).
		Scopes(tenancy.Scoped(c.UserContext(), &studentModel.StudentProfileModel{})).
		Where("student_profile_id IN ?", studentIDs).
		Where("student_profile_section_id = ?", sec.SectionID).
		Where("student_profile_status = ?", studentModel.StudentStatusActive).
		Count(&validCount).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	if int(validCount) != len(studentIDs) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Ada siswa yang bukan siswa aktif section ini")
	}

	rows := make([]model.AttendanceModel, 0, len(req.Items))
	for i := range req.Items {
		rows = append(rows, model.AttendanceModel{
			AttendanceSchoolID:  sec.SectionSchoolID,
			AttendanceStudentID: req.Items[i].AttendanceStudentID,
			AttendanceDate:      date,
			AttendanceStatus:    req.Items[i].AttendanceStatus,
			AttendanceRemarks:   req.Items[i].AttendanceRemarks,
			AttendanceMarkedBy:  &p.UserID,
		})
	}

	if err := ctl.DB.WithContext(c.UserContext()).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "attendance_school_id"},
				{Name: "attendance_student_id"},
				{Name: "attendance_date"},
			},
			DoUpdates: clause.AssignmentColumns([]string{
				"attendance_status", "attendance_remarks", "attendance_marked_by", "attendance_updated_at",
			}),
		}).
		Create(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan absensi")
	}

	return helper.JsonOK(c, "Absensi berhasil disimpan", fiber.Map{
		"section_id":      sec.SectionID,
		"attendance_date": req.AttendanceDate,
		"marked":          len(rows),
	})
}

/* ============================== STUDENTS FOR MARKING ============================== */

// StudentsForMarking: daftar siswa aktif section + status absensi hari itu (kalau sudah ada).
func (ctl *AttendanceController) StudentsForMarking(c *fiber.Ctx) error {
	sectionID, err := uuid.Parse(c.Query("section_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "section_id invalid")
	}
	dateStr := strings.TrimSpace(c.Query("date"))
	if dateStr == "" {
		dateStr = time.Now().Format("2006-01-02")
	}
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "date invalid (format YYYY-MM-DD)")
	}

	var students []studentModel.StudentProfileModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Scopes(tenancy.Scoped(c.UserContext(), &studentModel.StudentProfileModel{})).
		Where("student_profile_section_id = ?", sectionID).
		Where("student_profile_status = ?", studentModel.StudentStatusActive).
		Order("student_profile_admission_number ASC").
		Find(&students).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	var marked []model.AttendanceModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Scopes(tenancy.Scoped(c.UserContext(), &model.AttendanceModel{})).
		Where("attendance_date = ?", date).
		Find(&marked).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	markedByStudent := make(map[uuid.UUID]string, len(marked))
	for i := range marked {
		markedByStudent[marked[i].AttendanceStudentID] = marked[i].AttendanceStatus
	}

	type row struct {
		StudentProfileID              uuid.UUID `json:"student_profile_id"`
		StudentProfileAdmissionNumber string    `json:"student_profile_admission_number"`
		AttendanceStatus              *string   `json:"attendance_status,omitempty"`
	}
	list := make([]row, 0, len(students))
	for i := range students {
		r := row{
			StudentProfileID:              students[i].StudentProfileID,
			StudentProfileAdmissionNumber: students[i].StudentProfileAdmissionNumber,
		}
		if st, ok := markedByStudent[students[i].StudentProfileID]; ok {
			r.AttendanceStatus = &st
		}
		list = append(list, r)
	}

	return helper.JsonOK(c, "OK", fiber.Map{"date": dateStr, "list": list})
}

/* ============================== HISTORY + SUMMARY ============================== */

func (ctl *AttendanceController) StudentHistory(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("student_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "student_id invalid")
	}

	var sp studentModel.StudentProfileModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Scopes(tenancy.Scoped(c.UserContext(), &studentModel.StudentProfileModel{})).
		First(&sp, "student_profile_id = ?", studentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Siswa tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	p := authHelper.PrincipalFromLocals(c)
	if !tenancy.CanAccessRecord(p, &sp) {
		return helper.JsonError(c, fiber.StatusNotFound, "Siswa tidak ditemukan")
	}

	dbq := ctl.DB.WithContext(c.UserContext()).
		Scopes(tenancy.Scoped(c.UserContext(), &model.AttendanceModel{})).
		Where("attendance_student_id = ?", studentID)

	if from := strings.TrimSpace(c.Query("from")); from != "" {
		d, err := time.Parse("2006-01-02", from)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "from invalid (format YYYY-MM-DD)")
		}
		dbq = dbq.Where("attendance_date >= ?", d)
	}
	if to := strings.TrimSpace(c.Query("to")); to != "" {
		d, err := time.Parse("2006-01-02", to)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "to invalid (format YYYY-MM-DD)")
		}
		dbq = dbq.Where("attendance_date <= ?", d)
	}

	var rows []model.AttendanceModel
	if err := dbq.Order("attendance_date DESC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"list":    rows,
		"summary": service.Summarize(rows),
	})
}

/* ============================== STAFF ATTENDANCE ============================== */

func (ctl *AttendanceController) MarkStaff(c *fiber.Ctx) error {
	var req dto.MarkStaffAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	date, err := time.Parse("2006-01-02", req.StaffAttendanceDate)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "staff_attendance_date invalid (format YYYY-MM-DD)")
	}

	p := authHelper.PrincipalFromLocals(c)
	m := model.StaffAttendanceModel{
		StaffAttendanceUserID:   req.StaffAttendanceUserID,
		StaffAttendanceDate:     date,
		StaffAttendanceStatus:   req.StaffAttendanceStatus,
		StaffAttendanceMarkedBy: &p.UserID,
	}
	if err := ctl.DB.WithContext(c.UserContext()).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "staff_attendance_school_id"},
				{Name: "staff_attendance_user_id"},
				{Name: "staff_attendance_date"},
			},
			DoUpdates: clause.AssignmentColumns([]string{
				"staff_attendance_status", "staff_attendance_marked_by",
			}),
		}).
		Create(&m).Error; err != nil {
		if errors.Is(err, tenancy.ErrMissingTenant) {
			return helper.JsonFromDomainError(c, err, "School tidak ter-resolve")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan absensi staf")
	}

	return helper.JsonOK(c, "Absensi staf berhasil disimpan", m)
}

func (ctl *AttendanceController) ListStaff(c *fiber.Ctx) error {
	dbq := ctl.DB.WithContext(c.UserContext()).
		Scopes(tenancy.Scoped(c.UserContext(), &model.StaffAttendanceModel{}))

	if dateStr := strings.TrimSpace(c.Query("date")); dateStr != "" {
		d, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "date invalid (format YYYY-MM-DD)")
		}
		dbq = dbq.Where("staff_attendance_date = ?", d)
	}

	var rows []model.StaffAttendanceModel
	if err := dbq.Order("staff_attendance_date DESC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	return helper.JsonOK(c, "OK", fiber.Map{"list": rows})
}
