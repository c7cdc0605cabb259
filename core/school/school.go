// Package school holds the records managed from the console (students, teachers, courses,
// groups, lessons, payments & attendances), their forms and the listing screens showing them.
package school

import (
	"context"
	"sort"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/trezcool/masomo-console/core/table"
)

// ErrUnknownScreen is returned when a portal has no screen with the requested name.
var ErrUnknownScreen = errors.New("unknown screen")

// Repos groups one Repository per record kind.
type Repos struct {
	Students    Repository[Student]
	Teachers    Repository[Teacher]
	Courses     Repository[Course]
	Groups      Repository[Group]
	Lessons     Repository[Lesson]
	Payments    Repository[Payment]
	Attendances Repository[Attendance]
}

// Services groups one Service per record kind.
type Services struct {
	Students    *Service[Student]
	Teachers    *Service[Teacher]
	Courses     *Service[Course]
	Groups      *Service[Group]
	Lessons     *Service[Lesson]
	Payments    *Service[Payment]
	Attendances *Service[Attendance]

	resources map[string]Resource
}

func NewServices(repos Repos, validate *validator.Validate) *Services {
	s := &Services{
		Students:    NewService(repos.Students, validate, StudentsScreen, func() Form[Student] { return new(StudentForm) }),
		Teachers:    NewService(repos.Teachers, validate, TeachersScreen, func() Form[Teacher] { return new(TeacherForm) }),
		Courses:     NewService(repos.Courses, validate, CoursesScreen, func() Form[Course] { return new(CourseForm) }),
		Groups:      NewService(repos.Groups, validate, GroupsScreen, func() Form[Group] { return new(GroupForm) }),
		Lessons:     NewService(repos.Lessons, validate, LessonsScreen, func() Form[Lesson] { return new(LessonForm) }),
		Payments:    NewService(repos.Payments, validate, PaymentsScreen, func() Form[Payment] { return new(PaymentForm) }),
		Attendances: NewService(repos.Attendances, validate, AttendancesScreen, func() Form[Attendance] { return new(AttendanceForm) }),
	}
	s.resources = make(map[string]Resource, 7)
	for _, r := range []Resource{s.Students, s.Teachers, s.Courses, s.Groups, s.Lessons, s.Payments, s.Attendances} {
		s.resources[r.Screen().Name] = r
	}
	return s
}

// Resource returns the admin resource listed by the screen called name.
func (s *Services) Resource(name string) (Resource, bool) {
	r, ok := s.resources[name]
	return r, ok
}

// ScreenRows returns a portal screen along with its rows.
// Teacher screens are scoped to the groups taught by teacher (a Teacher's name).
func (s *Services) ScreenRows(ctx context.Context, portal, name, teacher string) (Screen, []table.Row, error) {
	screen, ok := FindScreen(portal, name)
	if !ok {
		return Screen{}, nil, errors.Wrapf(ErrUnknownScreen, "%s/%s", portal, name)
	}

	if portal == PortalAdmin {
		r, _ := s.Resource(name)
		rows, err := r.Rows(ctx)
		return screen, rows, err
	}

	switch name {
	case MyStudentsScreen.Name:
		students, err := s.TeacherStudents(ctx, teacher)
		if err != nil {
			return screen, nil, err
		}
		return screen, Rows(students), nil
	case MyAttendancesScreen.Name:
		attendances, err := s.TeacherAttendances(ctx, teacher)
		if err != nil {
			return screen, nil, err
		}
		return screen, Rows(SummarizeAttendances(attendances)), nil
	}
	return screen, nil, errors.Wrapf(ErrUnknownScreen, "%s/%s", portal, name)
}

// TeacherGroups returns the groups taught by teacher.
func (s *Services) TeacherGroups(ctx context.Context, teacher string) ([]Group, error) {
	groups, err := s.Groups.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "querying groups")
	}
	mine := make([]Group, 0)
	for _, g := range groups {
		if g.Teacher == teacher {
			mine = append(mine, g)
		}
	}
	return mine, nil
}

func (s *Services) teacherGroupNames(ctx context.Context, teacher string) (map[string]bool, error) {
	groups, err := s.TeacherGroups(ctx, teacher)
	if err != nil {
		return nil, err
	}
	names := make(map[string]bool, len(groups))
	for _, g := range groups {
		names[g.Name] = true
	}
	return names, nil
}

// TeacherStudents returns the students of the groups taught by teacher.
func (s *Services) TeacherStudents(ctx context.Context, teacher string) ([]Student, error) {
	groups, err := s.teacherGroupNames(ctx, teacher)
	if err != nil {
		return nil, err
	}
	students, err := s.Students.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "querying students")
	}
	mine := make([]Student, 0)
	for _, st := range students {
		if groups[st.Group] {
			mine = append(mine, st)
		}
	}
	return mine, nil
}

// TeacherAttendances returns the attendances of the groups taught by teacher, latest first.
func (s *Services) TeacherAttendances(ctx context.Context, teacher string) ([]Attendance, error) {
	groups, err := s.teacherGroupNames(ctx, teacher)
	if err != nil {
		return nil, err
	}
	attendances, err := s.Attendances.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "querying attendances")
	}
	mine := make([]Attendance, 0)
	for _, a := range attendances {
		if groups[a.Group] {
			mine = append(mine, a)
		}
	}
	sort.SliceStable(mine, func(i, j int) bool { return mine[i].Date > mine[j].Date })
	return mine, nil
}

// TeacherLessons returns the lessons given by teacher.
func (s *Services) TeacherLessons(ctx context.Context, teacher string) ([]Lesson, error) {
	lessons, err := s.Lessons.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "querying lessons")
	}
	mine := make([]Lesson, 0)
	for _, l := range lessons {
		if l.Teacher == teacher {
			mine = append(mine, l)
		}
	}
	return mine, nil
}
