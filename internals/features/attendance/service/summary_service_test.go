// file: internals/features/attendance/service/summary_service_test.go
package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"campusiq_backend/internals/features/attendance/model"
)

func mkRows(statuses ...string) []model.AttendanceModel {
	rows := make([]model.AttendanceModel, 0, len(statuses))
	for _, s := range statuses {
		rows = append(rows, model.AttendanceModel{AttendanceStatus: s})
	}
	return rows
}

func TestSummarize(t *testing.T) {
	rows := mkRows(
		model.AttendanceStatusPresent,
		model.AttendanceStatusPresent,
		model.AttendanceStatusAbsent,
		model.AttendanceStatusLate,
		model.AttendanceStatusHalfDay,
	)

	s := Summarize(rows)
	assert.Equal(t, 5, s.TotalDays)
	assert.Equal(t, 2, s.PresentDays)
	assert.Equal(t, 1, s.AbsentDays)
	assert.Equal(t, 1, s.LateDays)
	assert.Equal(t, 1, s.HalfDays)
	// (2 present + 1 late + 0.5 half) / 5 = 70%
	assert.Equal(t, 70.0, s.PresentRatio)
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	assert.Zero(t, s.TotalDays)
	assert.Zero(t, s.PresentRatio)
}

func TestSummarizeAllPresent(t *testing.T) {
	s := Summarize(mkRows(
		model.AttendanceStatusPresent,
		model.AttendanceStatusPresent,
		model.AttendanceStatusPresent,
	))
	assert.Equal(t, 100.0, s.PresentRatio)
}
