// Package academics turns raw per-assessment scores into term reports,
// class rankings and promotion decisions. All computations are synchronous
// and request-scoped; tenant configuration (grade bands, pass threshold) is
// re-fetched from the settings store on every call, never cached here.
package academics

import (
	"github.com/sirupsen/logrus"
)

// DefaultPassThreshold is the promotion pass mark used when a school has not
// configured one.
const DefaultPassThreshold float64 = 50

// Engine wires the aggregation core to its collaborator stores.
type Engine struct {
	Assessments AssessmentStore
	Reports     ReportStore
	Movements   MovementStore
	Roster      RosterStore
	Attendance  AttendanceStore
	Settings    SettingsStore
	Log         *logrus.Logger
}

func NewEngine(
	assessments AssessmentStore,
	reports ReportStore,
	movements MovementStore,
	roster RosterStore,
	attendance AttendanceStore,
	settings SettingsStore,
	log *logrus.Logger,
) *Engine {
	if log == nil {
		log = logrus.New()
	}
	return &Engine{
		Assessments: assessments,
		Reports:     reports,
		Movements:   movements,
		Roster:      roster,
		Attendance:  attendance,
		Settings:    settings,
		Log:         log,
	}
}
