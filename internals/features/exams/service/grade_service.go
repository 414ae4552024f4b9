// file: internals/features/exams/service/grade_service.go
package service

import (
	"math"

	"campusiq_backend/internals/features/exams/model"
)

// GradeFor memetakan persentase ke grade huruf.
func GradeFor(percentage float64) string {
	switch {
	case percentage >= 90:
		return "A+"
	case percentage >= 80:
		return "A"
	case percentage >= 70:
		return "B+"
	case percentage >= 60:
		return "B"
	case percentage >= 50:
		return "C+"
	case percentage >= 40:
		return "C"
	case percentage >= 33:
		return "D"
	default:
		return "F"
	}
}

// ReportCard: rekap seluruh nilai satu siswa untuk satu exam.
type ReportCard struct {
	TotalObtained float64                 `json:"total_obtained"`
	TotalMax      float64                 `json:"total_max"`
	Percentage    float64                 `json:"percentage"`
	OverallGrade  string                  `json:"overall_grade"`
	Results       []model.ExamResultModel `json:"results"`
}

// BuildReportCard menghitung total, persentase, dan grade keseluruhan.
func BuildReportCard(results []model.ExamResultModel) ReportCard {
	rc := ReportCard{Results: results}
	for i := range results {
		rc.TotalObtained += results[i].ExamResultMarksObtained
		rc.TotalMax += results[i].ExamResultMaxMarks
	}
	if rc.TotalMax > 0 {
		pct := rc.TotalObtained / rc.TotalMax * 100
		rc.Percentage = math.Round(pct*100) / 100
	}
	rc.OverallGrade = GradeFor(rc.Percentage)
	return rc
}
