// file: internals/features/exams/service/grade_service_test.go
package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"campusiq_backend/internals/features/exams/model"
)

func TestGradeFor(t *testing.T) {
	cases := []struct {
		pct  float64
		want string
	}{
		{100, "A+"},
		{90, "A+"},
		{89.99, "A"},
		{80, "A"},
		{79.5, "B+"},
		{70, "B+"},
		{69, "B"},
		{60, "B"},
		{59, "C+"},
		{50, "C+"},
		{49, "C"},
		{40, "C"},
		{39, "D"},
		{33, "D"},
		{32.99, "F"},
		{0, "F"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, GradeFor(tc.pct), "pct=%v", tc.pct)
	}
}

func TestBuildReportCard(t *testing.T) {
	results := []model.ExamResultModel{
		{ExamResultMarksObtained: 90, ExamResultMaxMarks: 100},
		{ExamResultMarksObtained: 45, ExamResultMaxMarks: 50},
		{ExamResultMarksObtained: 30, ExamResultMaxMarks: 100},
	}

	rc := BuildReportCard(results)
	assert.Equal(t, 165.0, rc.TotalObtained)
	assert.Equal(t, 250.0, rc.TotalMax)
	assert.Equal(t, 66.0, rc.Percentage)
	assert.Equal(t, "B", rc.OverallGrade)
	assert.Len(t, rc.Results, 3)
}

func TestBuildReportCardEmpty(t *testing.T) {
	rc := BuildReportCard(nil)
	assert.Zero(t, rc.Percentage)
	assert.Equal(t, "F", rc.OverallGrade)
}
