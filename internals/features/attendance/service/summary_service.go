// file: internals/features/attendance/service/summary_service.go
package service

import (
	"math"

	"campusiq_backend/internals/features/attendance/model"
)

// AttendanceSummary: rekap kehadiran satu siswa dalam satu rentang.
type AttendanceSummary struct {
	TotalDays    int     `json:"total_days"`
	PresentDays  int     `json:"present_days"`
	AbsentDays   int     `json:"absent_days"`
	LateDays     int     `json:"late_days"`
	HalfDays     int     `json:"half_days"`
	PresentRatio float64 `json:"present_ratio"`
}

// Summarize menghitung rekap dari daftar absensi.
// Late dihitung hadir penuh; half_day dihitung setengah hari hadir.
func Summarize(rows []model.AttendanceModel) AttendanceSummary {
	var s AttendanceSummary
	s.TotalDays = len(rows)

	for i := range rows {
		switch rows[i].AttendanceStatus {
		case model.AttendanceStatusPresent:
			s.PresentDays++
		case model.AttendanceStatusAbsent:
			s.AbsentDays++
		case model.AttendanceStatusLate:
			s.LateDays++
		case model.AttendanceStatusHalfDay:
			s.HalfDays++
		}
	}

	if s.TotalDays > 0 {
		attended := float64(s.PresentDays+s.LateDays) + 0.5*float64(s.HalfDays)
		ratio := attended / float64(s.TotalDays) * 100
		s.PresentRatio = math.Round(ratio*100) / 100
	}
	return s
}
