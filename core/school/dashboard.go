package school

import (
	"context"
	"math"

	"github.com/pkg/errors"
)

const (
	upcomingLessonsLimit        = 5
	teacherUpcomingLessonsLimit = 3
)

// Dashboard sums up the school for the admin portal.
type Dashboard struct {
	TotalStudents   int      `json:"total_students"`
	ActiveStudents  int      `json:"active_students"`
	TotalTeachers   int      `json:"total_teachers"`
	PaymentsTotal   float64  `json:"payments_total"`  // completed payments
	AttendanceRate  int      `json:"attendance_rate"` // present / all attendances, in %
	UpcomingLessons []Lesson `json:"upcoming_lessons"`
}

// TeacherDashboard sums up a teacher's classes for the teacher portal.
type TeacherDashboard struct {
	Teacher         string   `json:"teacher"`
	Students        int      `json:"students"`
	Groups          []Group  `json:"groups"`
	Lessons         int      `json:"lessons"`
	UpcomingLessons []Lesson `json:"upcoming_lessons"`
}

func (s *Services) Dashboard(ctx context.Context) (Dashboard, error) {
	var d Dashboard

	students, err := s.Students.List(ctx)
	if err != nil {
		return d, errors.Wrap(err, "querying students")
	}
	teachers, err := s.Teachers.List(ctx)
	if err != nil {
		return d, errors.Wrap(err, "querying teachers")
	}
	payments, err := s.Payments.List(ctx)
	if err != nil {
		return d, errors.Wrap(err, "querying payments")
	}
	attendances, err := s.Attendances.List(ctx)
	if err != nil {
		return d, errors.Wrap(err, "querying attendances")
	}
	lessons, err := s.Lessons.List(ctx)
	if err != nil {
		return d, errors.Wrap(err, "querying lessons")
	}

	d.TotalStudents = len(students)
	for _, st := range students {
		if st.Status == StudentActive {
			d.ActiveStudents++
		}
	}
	d.TotalTeachers = len(teachers)
	for _, p := range payments {
		if p.Status == PaymentCompleted {
			d.PaymentsTotal += p.Amount
		}
	}
	d.AttendanceRate = AttendanceRate(attendances)
	d.UpcomingLessons = scheduled(lessons, upcomingLessonsLimit)
	return d, nil
}

func (s *Services) TeacherDashboard(ctx context.Context, teacher string) (TeacherDashboard, error) {
	d := TeacherDashboard{Teacher: teacher}

	students, err := s.TeacherStudents(ctx, teacher)
	if err != nil {
		return d, err
	}
	groups, err := s.TeacherGroups(ctx, teacher)
	if err != nil {
		return d, err
	}
	lessons, err := s.TeacherLessons(ctx, teacher)
	if err != nil {
		return d, err
	}

	d.Students = len(students)
	d.Groups = groups
	d.Lessons = len(lessons)
	d.UpcomingLessons = scheduled(lessons, teacherUpcomingLessonsLimit)
	return d, nil
}

// AttendanceRate returns the rounded share of present attendances, in %; 0 without attendances.
func AttendanceRate(attendances []Attendance) int {
	if len(attendances) == 0 {
		return 0
	}
	var present int
	for _, a := range attendances {
		if a.Status == AttendancePresent {
			present++
		}
	}
	return int(math.Round(float64(present) / float64(len(attendances)) * 100))
}

func scheduled(lessons []Lesson, limit int) []Lesson {
	out := make([]Lesson, 0, limit)
	for _, l := range lessons {
		if len(out) == limit {
			break
		}
		if l.Status == LessonScheduled {
			out = append(out, l)
		}
	}
	return out
}
