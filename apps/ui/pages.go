package ui

import (
	"strconv"

	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/trezcool/masomo-console/core/school"
	"github.com/trezcool/masomo-console/core/table"
)

var (
	money      = table.Currency{Symbol: "$"}
	lessonTime = table.Date{Layout: "Jan 2, 2006 at 15:04"}
)

func statCard(label, value string) Node {
	return Div(Class("card stat"),
		P(Class("muted"), Text(label)),
		Strong(Class("stat-value"), Text(value)),
	)
}

func lessonList(lessons []school.Lesson, withTeacher bool) Node {
	if len(lessons) == 0 {
		return P(Class("muted"), Text("No upcoming lessons"))
	}
	items := make([]Node, 0, len(lessons))
	for _, l := range lessons {
		who := l.Room
		if withTeacher {
			who = l.Teacher + " · " + l.Room
		}
		items = append(items, Li(
			Strong(Text(l.Course)),
			Span(Class("muted"), Text(" "+who+" · "+lessonTime.Format(l.DateTime, nil).Text)),
		))
	}
	return Ul(Class("lessons"), Group(items))
}

// DashboardPage is the admin portal's home.
func DashboardPage(p Principal, d school.Dashboard) Node {
	return appPage("Dashboard", "dashboard", p,
		Div(Class("stats"),
			statCard("Total Students", strconv.Itoa(d.TotalStudents)),
			statCard("Active Students", strconv.Itoa(d.ActiveStudents)),
			statCard("Teachers", strconv.Itoa(d.TotalTeachers)),
			statCard("Payments", money.Format(d.PaymentsTotal, nil).Text),
			statCard("Attendance Rate", strconv.Itoa(d.AttendanceRate)+"%"),
		),
		Div(Class("card"),
			H2(Text("Upcoming Lessons")),
			lessonList(d.UpcomingLessons, true),
		),
	)
}

// TeacherDashboardPage is the teacher portal's home.
func TeacherDashboardPage(p Principal, d school.TeacherDashboard) Node {
	groups := make([]Node, 0, len(d.Groups))
	for _, g := range d.Groups {
		groups = append(groups, Li(
			Strong(Text(g.Name)),
			Span(Class("muted"), Text(" "+g.Course+" · "+g.Schedule)),
		))
	}
	return appPage("Dashboard", "dashboard", p,
		Div(Class("stats"),
			statCard("My Students", strconv.Itoa(d.Students)),
			statCard("My Groups", strconv.Itoa(len(d.Groups))),
			statCard("Lessons", strconv.Itoa(d.Lessons)),
		),
		Div(Class("card"),
			H2(Text("My Groups")),
			If(len(groups) == 0, P(Class("muted"), Text("No groups assigned"))),
			Ul(Group(groups)),
		),
		Div(Class("card"),
			H2(Text("Upcoming Lessons")),
			lessonList(d.UpcomingLessons, false),
		),
	)
}

// DetailPage shows one record of a screen, formatted the way the screen's columns format it.
func DetailPage(p Principal, screen school.Screen, id string, row table.Row) Node {
	fields := make([]Node, 0, 2*len(screen.Columns))
	for _, col := range screen.Columns {
		fields = append(fields, Dt(Text(col.Label)), Dd(cellContent(col.Cell(row))))
	}
	return appPage(screen.Title+" "+id, screen.Name, p,
		Div(Class("card"),
			Dl(Class("details"), Group(fields)),
			P(A(Href(ScreenPath(screen)), Text("Back to "+screen.Title))),
		),
	)
}
