package school

import (
	"github.com/trezcool/masomo-console/core/table"
)

// Portals
const (
	PortalAdmin   = "admin"
	PortalTeacher = "teacher"
)

// Screen is one listing of the console.
type Screen struct {
	Name        string         `json:"name"` // URL segment
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Portal      string         `json:"portal"`
	Columns     []table.Column `json:"-"`
	// Editable screens get view, edit & delete row actions.
	Editable bool `json:"editable"`
}

// Formatters
var (
	money        = table.Currency{Symbol: "$"}
	balance      = table.Currency{Symbol: "$", Tone: true}
	longDate     = table.Date{Layout: "Jan 2, 2006"}
	lessonTime   = table.Date{Layout: "Jan 2, 2006 at 15:04"}
	progress     = table.Percentage{}
	studentState = table.Badge{
		Variants: map[string]string{
			StudentActive:   table.VariantDefault,
			StudentInactive: table.VariantDestructive,
			StudentPending:  table.VariantOutline,
		},
	}
	salaryType = table.Badge{
		Variants: map[string]string{
			SalaryMonthly: table.VariantOutline,
			SalaryHourly:  table.VariantSecondary,
		},
		Title: true,
	}
	lessonState = table.Badge{
		Variants: map[string]string{
			LessonScheduled: table.VariantOutline,
			LessonCompleted: table.VariantDefault,
			LessonCancelled: table.VariantDestructive,
		},
	}
	paymentMethod = table.Badge{
		Labels: map[string]string{
			MethodCard:   "Credit Card",
			MethodCash:   "Cash",
			MethodOnline: "Online",
		},
		Fallback: table.VariantSecondary,
		Title:    true,
	}
	paymentState = table.Badge{
		Variants: map[string]string{
			PaymentCompleted: table.VariantDefault,
			PaymentPending:   table.VariantOutline,
			PaymentFailed:    table.VariantDestructive,
		},
	}
	attendanceState = table.Badge{
		Variants: map[string]string{
			AttendancePresent: table.VariantDefault,
			AttendanceLate:    table.VariantOutline,
			AttendanceAbsent:  table.VariantDestructive,
		},
	}
	rating = table.FormatterFunc(func(value interface{}, _ table.Row) table.Cell {
		return table.Cell{Text: "★ " + table.Display(value)}
	})
	positive = table.FormatterFunc(func(value interface{}, _ table.Row) table.Cell {
		return table.Cell{Text: table.Display(value), Tone: table.TonePositive}
	})
	negative = table.FormatterFunc(func(value interface{}, _ table.Row) table.Cell {
		return table.Cell{Text: table.Display(value), Tone: table.ToneNegative}
	})
)

var (
	StudentsScreen = Screen{
		Name:        "students",
		Title:       "Students",
		Description: "Manage student records",
		Portal:      PortalAdmin,
		Editable:    true,
		Columns: []table.Column{
			{Key: "id", Label: "ID", Sortable: true},
			{Key: "name", Label: "Name", Sortable: true},
			{Key: "phone", Label: "Phone"},
			{Key: "course", Label: "Course", Sortable: true},
			{Key: "group", Label: "Group", Sortable: true},
			{Key: "balance", Label: "Balance", Sortable: true, Kind: table.KindNumber, Format: balance},
			{Key: "status", Label: "Status", Sortable: true, Format: studentState},
		},
	}

	TeachersScreen = Screen{
		Name:        "teachers",
		Title:       "Teachers",
		Description: "Manage teaching staff",
		Portal:      PortalAdmin,
		Editable:    true,
		Columns: []table.Column{
			{Key: "id", Label: "ID", Sortable: true},
			{Key: "name", Label: "Name", Sortable: true},
			{Key: "subject", Label: "Subject", Sortable: true},
			{Key: "phone", Label: "Phone"},
			{Key: "salary_type", Label: "Salary Type", Sortable: true, Format: salaryType},
			{Key: "rating", Label: "Rating", Sortable: true, Kind: table.KindNumber, Format: rating},
		},
	}

	CoursesScreen = Screen{
		Name:        "courses",
		Title:       "Courses",
		Description: "Manage available courses",
		Portal:      PortalAdmin,
		Editable:    true,
		Columns: []table.Column{
			{Key: "id", Label: "ID", Sortable: true},
			{Key: "name", Label: "Course Name", Sortable: true},
			{Key: "duration", Label: "Duration", Sortable: true},
			{Key: "price", Label: "Price", Sortable: true, Kind: table.KindNumber, Format: money},
			{Key: "students_count", Label: "Students", Sortable: true, Kind: table.KindNumber},
		},
	}

	GroupsScreen = Screen{
		Name:        "groups",
		Title:       "Groups",
		Description: "Manage student groups",
		Portal:      PortalAdmin,
		Editable:    true,
		Columns: []table.Column{
			{Key: "id", Label: "ID", Sortable: true},
			{Key: "name", Label: "Group Name", Sortable: true},
			{Key: "course", Label: "Course", Sortable: true},
			{Key: "teacher", Label: "Teacher", Sortable: true},
			{Key: "students_count", Label: "Students", Sortable: true, Kind: table.KindNumber},
			{Key: "schedule", Label: "Schedule"},
		},
	}

	LessonsScreen = Screen{
		Name:        "lessons",
		Title:       "Lessons",
		Description: "Manage lesson schedules",
		Portal:      PortalAdmin,
		Editable:    true,
		Columns: []table.Column{
			{Key: "id", Label: "Lesson ID", Sortable: true},
			{Key: "course", Label: "Course", Sortable: true},
			{Key: "teacher", Label: "Teacher", Sortable: true},
			{Key: "date_time", Label: "Date & Time", Sortable: true, Kind: table.KindDate, Format: lessonTime},
			{Key: "room", Label: "Room"},
			{Key: "status", Label: "Status", Sortable: true, Format: lessonState},
		},
	}

	PaymentsScreen = Screen{
		Name:        "payments",
		Title:       "Payments",
		Description: "Track all payment transactions",
		Portal:      PortalAdmin,
		Editable:    true,
		Columns: []table.Column{
			{Key: "id", Label: "Payment ID", Sortable: true},
			{Key: "student", Label: "Student", Sortable: true},
			{Key: "amount", Label: "Amount", Sortable: true, Kind: table.KindNumber, Format: money},
			{Key: "date", Label: "Date", Sortable: true, Kind: table.KindDate, Format: longDate},
			{Key: "method", Label: "Method", Sortable: true, Format: paymentMethod},
			{Key: "status", Label: "Status", Sortable: true, Format: paymentState},
		},
	}

	AttendancesScreen = Screen{
		Name:        "attendances",
		Title:       "Attendances",
		Description: "Track student attendance records",
		Portal:      PortalAdmin,
		Editable:    true,
		Columns: []table.Column{
			{Key: "student", Label: "Student", Sortable: true},
			{Key: "group", Label: "Group", Sortable: true},
			{Key: "date", Label: "Date", Sortable: true, Kind: table.KindDate, Format: longDate},
			{Key: "status", Label: "Status", Sortable: true, Format: attendanceState},
		},
	}

	MyStudentsScreen = Screen{
		Name:        "students",
		Title:       "My Students",
		Description: "Students enrolled in your groups",
		Portal:      PortalTeacher,
		Columns: []table.Column{
			{Key: "id", Label: "ID", Sortable: true},
			{Key: "name", Label: "Name", Sortable: true},
			{Key: "group", Label: "Group", Sortable: true},
			{Key: "last_attendance", Label: "Last Attendance", Sortable: true, Kind: table.KindDate, Format: longDate},
			{Key: "progress", Label: "Progress", Sortable: true, Kind: table.KindNumber, Format: progress},
		},
	}

	MyAttendancesScreen = Screen{
		Name:        "attendances",
		Title:       "My Attendances",
		Description: "Track attendance records for your classes",
		Portal:      PortalTeacher,
		Columns: []table.Column{
			{Key: "date", Label: "Date", Sortable: true, Kind: table.KindDate, Format: longDate},
			{Key: "group", Label: "Group", Sortable: true},
			{Key: "present", Label: "Present", Sortable: true, Kind: table.KindNumber, Format: positive},
			{Key: "late", Label: "Late", Sortable: true, Kind: table.KindNumber},
			{Key: "absent", Label: "Absent", Sortable: true, Kind: table.KindNumber, Format: negative},
		},
	}
)

// AdminScreens lists the admin portal's screens, in menu order.
func AdminScreens() []Screen {
	return []Screen{
		StudentsScreen, TeachersScreen, CoursesScreen, LessonsScreen,
		PaymentsScreen, AttendancesScreen, GroupsScreen,
	}
}

// TeacherScreens lists the teacher portal's screens, in menu order.
func TeacherScreens() []Screen {
	return []Screen{MyStudentsScreen, MyAttendancesScreen}
}

// FindScreen returns the portal's screen called name.
func FindScreen(portal, name string) (Screen, bool) {
	screens := AdminScreens()
	if portal == PortalTeacher {
		screens = TeacherScreens()
	}
	for _, s := range screens {
		if s.Name == name {
			return s, true
		}
	}
	return Screen{}, false
}

// Row actions
const (
	ActionView   = "view"
	ActionEdit   = "edit"
	ActionDelete = "delete"
)

// RowActions returns the row actions of an editable screen, linking to base/<id>.
// names selects among view, edit & delete; all of them when empty. Read-only screens get none.
func (s Screen) RowActions(base string, names ...string) table.ActionsFunc {
	if !s.Editable {
		return nil
	}
	all := []table.Action{
		{Name: ActionView, Label: "View", Method: "GET"},
		{Name: ActionEdit, Label: "Edit", Method: "PUT"},
		{Name: ActionDelete, Label: "Delete", Method: "DELETE", Danger: true},
	}
	actions := all
	if len(names) > 0 {
		actions = make([]table.Action, 0, len(names))
		for _, a := range all {
			for _, name := range names {
				if a.Name == name {
					actions = append(actions, a)
				}
			}
		}
	}

	return func(row table.Row) []table.Action {
		id := table.Display(fieldValue(row, "id"))
		out := make([]table.Action, len(actions))
		for i, a := range actions {
			a.Href = base + "/" + id
			out[i] = a
		}
		return out
	}
}

func fieldValue(row table.Row, key string) interface{} {
	v, _ := row.Field(key)
	return v
}
