package reports

import (
	"database/sql"
	"errors"

	"github.com/gofiber/fiber/v2"

	"kisima-schools/app/academics"
)

// GenerateStudentReport regenerates one student's term report. Safe to call
// repeatedly; staff remarks survive, the class rank is invalidated.
func GenerateStudentReport(c *fiber.Ctx, db *sql.DB) error {
	studentID := c.Params("studentId")
	termID := c.Params("termId")

	outcome, err := newEngine(db).BuildReport(studentID, termID)
	if err != nil {
		if errors.Is(err, academics.ErrNoGradeBands) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "No grade bands configured; set up grading before generating reports",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success":            true,
		"report":             outcome.Report,
		"no_graded_subjects": outcome.NoGradedSubjects,
		"failed_subjects":    outcome.FailedSubjects,
	})
}

// GetStudentReport returns the stored report for one student and term.
func GetStudentReport(c *fiber.Ctx, db *sql.DB) error {
	studentID := c.Params("studentId")
	termID := c.Params("termId")

	store := newEngine(db).Reports
	report, err := store.Get(studentID, termID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch report",
		})
	}
	if report == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "No report found for this student and term",
		})
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"report":     report,
		"rank_stale": report.RankStale(),
	})
}

// UpdateReportRemarks writes staff remarks onto an existing report. Fields
// omitted from the request body are left unchanged.
func UpdateReportRemarks(c *fiber.Ctx, db *sql.DB) error {
	studentID := c.Params("studentId")
	termID := c.Params("termId")

	var req struct {
		ClassTeacherRemark *string `json:"class_teacher_remark"`
		PrincipalRemark    *string `json:"principal_remark"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	report, err := newEngine(db).UpdateRemarks(studentID, termID, req.ClassTeacherRemark, req.PrincipalRemark)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"report":  report,
	})
}

// GenerateClassReports regenerates every report in a class and re-ranks it.
// The response is always a per-student breakdown, never a bare boolean.
func GenerateClassReports(c *fiber.Ctx, db *sql.DB) error {
	classID := c.Params("classId")
	termID := c.Params("termId")

	summary, err := newEngine(db).BuildClassReports(classID, termID)
	if err != nil {
		if errors.Is(err, academics.ErrNoGradeBands) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "No grade bands configured; set up grading before generating reports",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"summary": summary,
	})
}

// GetClassBroadsheet returns the ranked report list for a class and term.
// If any graded report lost its rank since the last ranking pass, the
// broadsheet is stale and the caller must re-rank first.
func GetClassBroadsheet(c *fiber.Ctx, db *sql.DB) error {
	classID := c.Params("classId")
	termID := c.Params("termId")

	reports, err := newEngine(db).ClassRankedReports(classID, termID)
	if err != nil {
		if errors.Is(err, academics.ErrRankingDataStale) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error":      "Rankings are out of date; re-rank the class first",
				"rank_stale": true,
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch class reports",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"reports": reports,
		"count":   len(reports),
	})
}

// RankClass recomputes ranks across all graded reports in a class.
func RankClass(c *fiber.Ctx, db *sql.DB) error {
	classID := c.Params("classId")
	termID := c.Params("termId")

	failures, err := newEngine(db).RankClass(classID, termID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"failures": failures,
	})
}

// GetClassStatistics returns distribution statistics over graded averages.
func GetClassStatistics(c *fiber.Ctx, db *sql.DB) error {
	classID := c.Params("classId")
	termID := c.Params("termId")

	statistics, err := newEngine(db).ComputeClassStatistics(classID, termID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to compute class statistics",
		})
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"statistics": statistics,
	})
}
