package inmemdb

import (
	"github.com/trezcool/masomo-console/core/school"
)

// NewSchoolRepos returns empty repositories, or repositories holding the mock records when seed is set.
func NewSchoolRepos(seed bool) school.Repos {
	if !seed {
		return school.Repos{
			Students:    NewCollection[school.Student]("S"),
			Teachers:    NewCollection[school.Teacher]("T"),
			Courses:     NewCollection[school.Course]("C"),
			Groups:      NewCollection[school.Group]("G"),
			Lessons:     NewCollection[school.Lesson]("L"),
			Payments:    NewCollection[school.Payment]("P"),
			Attendances: NewCollection[school.Attendance]("A"),
		}
	}
	return school.Repos{
		Students:    NewCollection("S", school.MockStudents()...),
		Teachers:    NewCollection("T", school.MockTeachers()...),
		Courses:     NewCollection("C", school.MockCourses()...),
		Groups:      NewCollection("G", school.MockGroups()...),
		Lessons:     NewCollection("L", school.MockLessons()...),
		Payments:    NewCollection("P", school.MockPayments()...),
		Attendances: NewCollection("A", school.MockAttendances()...),
	}
}
