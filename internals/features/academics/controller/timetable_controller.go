// file: internals/features/academics/controller/timetable_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"campusiq_backend/internals/features/academics/dto"
	"campusiq_backend/internals/features/academics/model"
	helper "campusiq_backend/internals/helpers"
	"campusiq_backend/internals/tenancy"
)

type TimetableController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewTimetableController(db *gorm.DB, v *validator.Validate) *TimetableController {
	return &TimetableController{DB: db, Validator: v}
}

/* ============================== PERIODS ============================== */

func (ctl *TimetableController) CreatePeriod(c *fiber.Ctx) error {
	var req dto.CreatePeriodRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m := model.PeriodModel{
		PeriodName:      strings.TrimSpace(req.PeriodName),
		PeriodOrder:     req.PeriodOrder,
		PeriodStartTime: req.PeriodStartTime,
		PeriodEndTime:   req.PeriodEndTime,
		PeriodIsBreak:   req.PeriodIsBreak,
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		if errors.Is(err, tenancy.ErrMissingTenant) {
			return helper.JsonFromDomainError(c, err, "School tidak ter-resolve")
		}
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "duplicate") || strings.Contains(low, "unique") {
			return helper.JsonError(c, fiber.StatusConflict, "Urutan period sudah dipakai")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat period")
	}

	return helper.JsonCreated(c, "Period berhasil dibuat", m)
}

func (ctl *TimetableController) ListPeriods(c *fiber.Ctx) error {
	var rows []model.PeriodModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Scopes(tenancy.Scoped(c.UserContext(), &model.PeriodModel{})).
		Order("period_order ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	return helper.JsonOK(c, "OK", fiber.Map{"list": rows})
}

/* ============================== TIMETABLE ENTRIES ============================== */

// CreateEntry: slot istirahat tidak bisa diisi pelajaran; satu guru tidak
// boleh mengajar di dua section pada hari+period yang sama.
func (ctl *TimetableController) CreateEntry(c *fiber.Ctx) error {
	var req dto.CreateTimetableEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	ctx := c.UserContext()

	var sec model.SectionModel
	if err := ctl.DB.WithContext(ctx).
		Scopes(tenancy.Scoped(ctx, &model.SectionModel{})).
		First(&sec, "section_id = ?", req.TimetableEntrySectionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Section tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	var period model.PeriodModel
	if err := ctl.DB.WithContext(ctx).
		Scopes(tenancy.Scoped(ctx, &model.PeriodModel{})).
		First(&period, "period_id = ?", req.TimetableEntryPeriodID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Period tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	if period.PeriodIsBreak {
		return helper.JsonError(c, fiber.StatusConflict, "Period istirahat tidak bisa diisi pelajaran")
	}
	if period.PeriodSchoolID != sec.SectionSchoolID {
		return helper.JsonError(c, fiber.StatusConflict, "Section dan period harus dari school yang sama")
	}

	// Cek bentrok guru di school yang sama, hari+period sama, section beda.
	var clash int64
	if err := ctl.DB.WithContext(ctx).
		Model(&model.TimetableEntryModel{}).
		Where("timetable_entry_school_id = ?", sec.SectionSchoolID).
		Where("timetable_entry_teacher_id = ?", req.TimetableEntryTeacherID).
		Where("timetable_entry_day_of_week = ?", req.TimetableEntryDayOfWeek).
		Where("timetable_entry_period_id = ?", period.PeriodID).
		Count(&clash).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	if clash > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Guru sudah terjadwal di period ini pada hari yang sama")
	}

	m := model.TimetableEntryModel{
		TimetableEntrySchoolID:  sec.SectionSchoolID,
		TimetableEntrySectionID: sec.SectionID,
		TimetableEntryDayOfWeek: req.TimetableEntryDayOfWeek,
		TimetableEntryPeriodID:  period.PeriodID,
		TimetableEntrySubjectID: req.TimetableEntrySubjectID,
		TimetableEntryTeacherID: req.TimetableEntryTeacherID,
	}
	if err := ctl.DB.WithContext(ctx).Create(&m).Error; err != nil {
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "duplicate") || strings.Contains(low, "unique") {
			return helper.JsonError(c, fiber.StatusConflict, "Slot jadwal section ini sudah terisi")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat jadwal")
	}

	return helper.JsonCreated(c, "Jadwal berhasil dibuat", m)
}

// SectionTimetable mengembalikan seluruh entry satu section, urut hari+period.
func (ctl *TimetableController) SectionTimetable(c *fiber.Ctx) error {
	sectionID, err := uuid.Parse(c.Params("section_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "section_id invalid")
	}

	var rows []model.TimetableEntryModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Scopes(tenancy.Scoped(c.UserContext(), &model.TimetableEntryModel{})).
		Where("timetable_entry_section_id = ?", sectionID).
		Order("timetable_entry_day_of_week ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	return helper.JsonOK(c, "OK", fiber.Map{"list": rows})
}

// TeacherTimetable: jadwal mengajar satu guru.
func (ctl *TimetableController) TeacherTimetable(c *fiber.Ctx) error {
	teacherID, err := uuid.Parse(c.Params("teacher_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "teacher_id invalid")
	}

	var rows []model.TimetableEntryModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Scopes(tenancy.Scoped(c.UserContext(), &model.TimetableEntryModel{})).
		Where("timetable_entry_teacher_id = ?", teacherID).
		Order("timetable_entry_day_of_week ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	return helper.JsonOK(c, "OK", fiber.Map{"list": rows})
}

func (ctl *TimetableController) DeleteEntry(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "timetable_entry_id invalid")
	}

	res := ctl.DB.WithContext(c.UserContext()).
		Scopes(tenancy.Scoped(c.UserContext(), &model.TimetableEntryModel{})).
		Delete(&model.TimetableEntryModel{}, "timetable_entry_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hapus jadwal")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Jadwal tidak ditemukan")
	}
	return helper.JsonOK(c, "Jadwal berhasil dihapus", nil)
}
