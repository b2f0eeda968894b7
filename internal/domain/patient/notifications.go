package patient

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// Follow-up scheduling constants. High-risk patients are rechecked on a
// 28-day cycle; staff are alerted up to 3 days ahead. The 25-day elapsed
// floor keeps a freshly-updated checkup date from re-alerting when its +28d
// window still lands near today.
const (
	CheckupCycleDays    = 28
	NotifyLookaheadDays = 3
	MinElapsedDays      = 25

	// HighRiskThreshold splits risk scores; the boundary itself is high risk.
	HighRiskThreshold = 0.5
)

// Notification flags one patient as due (or overdue) for a follow-up.
type Notification struct {
	PatientID       uuid.UUID `json:"patientId"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	NextAppointment time.Time `json:"nextAppointment"`
	// DaysUntil is signed; negative means the appointment date has passed.
	DaysUntil int  `json:"daysUntil"`
	IsOverdue bool `json:"isOverdue"`
}

// BuildNotifications derives the needs-attention list from the candidate
// pool. Candidates must be high risk with a recorded last checkup; they are
// included when the next appointment is at most NotifyLookaheadDays away
// (or already passed) and at least MinElapsedDays have gone by. Sorted
// ascending by DaysUntil, so the most overdue come first.
func BuildNotifications(candidates []*Patient, now time.Time) []Notification {
	today := truncateToDay(now)

	out := []Notification{}
	for _, p := range candidates {
		if p.HeartRiskScore == nil || *p.HeartRiskScore < HighRiskThreshold || p.LastCheckup == nil {
			continue
		}

		last := truncateToDay(*p.LastCheckup)
		next := last.AddDate(0, 0, CheckupCycleDays)
		daysUntil := daysBetween(today, next)
		elapsed := daysBetween(last, today)

		if daysUntil > NotifyLookaheadDays || elapsed < MinElapsedDays {
			continue
		}

		out = append(out, Notification{
			PatientID:       p.ID,
			Name:            p.Name,
			Email:           p.Email,
			NextAppointment: next,
			DaysUntil:       daysUntil,
			IsOverdue:       daysUntil < 0,
		})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].DaysUntil < out[j].DaysUntil })
	return out
}

// truncateToDay drops the time-of-day component in UTC, so day arithmetic is
// immune to the hour at which the request arrives.
func truncateToDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from) / (24 * time.Hour))
}
