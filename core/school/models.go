package school

import (
	"github.com/trezcool/masomo-console/core/table"
)

// Enum values
const (
	StudentActive   = "active"
	StudentInactive = "inactive"
	StudentPending  = "pending"

	SalaryMonthly = "monthly"
	SalaryHourly  = "hourly"

	LessonScheduled = "scheduled"
	LessonCompleted = "completed"
	LessonCancelled = "cancelled"

	MethodCash   = "cash"
	MethodCard   = "card"
	MethodOnline = "online"

	PaymentCompleted = "completed"
	PaymentPending   = "pending"
	PaymentFailed    = "failed"

	AttendancePresent = "present"
	AttendanceLate    = "late"
	AttendanceAbsent  = "absent"
)

// Entity is implemented by every school record kept in a Repository.
type Entity[T any] interface {
	GetID() string
	WithID(id string) T
	Record() table.Record
}

var (
	_ Entity[Student]    = Student{}
	_ Entity[Teacher]    = Teacher{}
	_ Entity[Course]     = Course{}
	_ Entity[Group]      = Group{}
	_ Entity[Lesson]     = Lesson{}
	_ Entity[Payment]    = Payment{}
	_ Entity[Attendance] = Attendance{}
)

type Student struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Phone          string  `json:"phone"`
	Course         string  `json:"course"`
	Group          string  `json:"group"`
	Balance        float64 `json:"balance"`
	Status         string  `json:"status"`
	LastAttendance string  `json:"last_attendance,omitempty"` // YYYY-MM-DD
	Progress       int     `json:"progress"`                  // 0 - 100
}

func (s Student) GetID() string { return s.ID }
func (s Student) WithID(id string) Student { s.ID = id; return s }

func (s Student) Record() table.Record {
	rec := table.Record{
		"id":       s.ID,
		"name":     s.Name,
		"phone":    s.Phone,
		"course":   s.Course,
		"group":    s.Group,
		"balance":  s.Balance,
		"status":   s.Status,
		"progress": s.Progress,
	}
	if s.LastAttendance != "" {
		rec["last_attendance"] = s.LastAttendance
	}
	return rec
}

type Teacher struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Subject    string  `json:"subject"`
	Phone      string  `json:"phone"`
	SalaryType string  `json:"salary_type"`
	Rating     float64 `json:"rating"`
}

func (t Teacher) GetID() string { return t.ID }
func (t Teacher) WithID(id string) Teacher { t.ID = id; return t }

func (t Teacher) Record() table.Record {
	return table.Record{
		"id":          t.ID,
		"name":        t.Name,
		"subject":     t.Subject,
		"phone":       t.Phone,
		"salary_type": t.SalaryType,
		"rating":      t.Rating,
	}
}

type Course struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Duration      string  `json:"duration"`
	Price         float64 `json:"price"`
	StudentsCount int     `json:"students_count"`
	Description   string  `json:"description,omitempty"`
}

func (c Course) GetID() string { return c.ID }
func (c Course) WithID(id string) Course { c.ID = id; return c }

func (c Course) Record() table.Record {
	return table.Record{
		"id":             c.ID,
		"name":           c.Name,
		"duration":       c.Duration,
		"price":          c.Price,
		"students_count": c.StudentsCount,
		"description":    c.Description,
	}
}

type Group struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Course        string `json:"course"`
	Teacher       string `json:"teacher"`
	StudentsCount int    `json:"students_count"`
	Schedule      string `json:"schedule"`
}

func (g Group) GetID() string { return g.ID }
func (g Group) WithID(id string) Group { g.ID = id; return g }

func (g Group) Record() table.Record {
	return table.Record{
		"id":             g.ID,
		"name":           g.Name,
		"course":         g.Course,
		"teacher":        g.Teacher,
		"students_count": g.StudentsCount,
		"schedule":       g.Schedule,
	}
}

type Lesson struct {
	ID          string `json:"id"`
	Course      string `json:"course"`
	Teacher     string `json:"teacher"`
	DateTime    string `json:"date_time"` // YYYY-MM-DD HH:MM
	Room        string `json:"room"`
	Status      string `json:"status"`
	Description string `json:"description,omitempty"`
}

func (l Lesson) GetID() string { return l.ID }
func (l Lesson) WithID(id string) Lesson { l.ID = id; return l }

func (l Lesson) Record() table.Record {
	return table.Record{
		"id":          l.ID,
		"course":      l.Course,
		"teacher":     l.Teacher,
		"date_time":   l.DateTime,
		"room":        l.Room,
		"status":      l.Status,
		"description": l.Description,
	}
}

type Payment struct {
	ID          string  `json:"id"`
	Student     string  `json:"student"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"` // YYYY-MM-DD
	Method      string  `json:"method"`
	Status      string  `json:"status"`
	Description string  `json:"description,omitempty"`
}

func (p Payment) GetID() string { return p.ID }
func (p Payment) WithID(id string) Payment { p.ID = id; return p }

func (p Payment) Record() table.Record {
	return table.Record{
		"id":          p.ID,
		"student":     p.Student,
		"amount":      p.Amount,
		"date":        p.Date,
		"method":      p.Method,
		"status":      p.Status,
		"description": p.Description,
	}
}

type Attendance struct {
	ID      string `json:"id"`
	Student string `json:"student"`
	Group   string `json:"group"`
	Date    string `json:"date"` // YYYY-MM-DD
	Status  string `json:"status"`
}

func (a Attendance) GetID() string { return a.ID }
func (a Attendance) WithID(id string) Attendance { a.ID = id; return a }

func (a Attendance) Record() table.Record {
	return table.Record{
		"id":      a.ID,
		"student": a.Student,
		"group":   a.Group,
		"date":    a.Date,
		"status":  a.Status,
	}
}

// AttendanceSummary counts one group's attendances on one day.
type AttendanceSummary struct {
	Date    string `json:"date"`
	Group   string `json:"group"`
	Present int    `json:"present"`
	Late    int    `json:"late"`
	Absent  int    `json:"absent"`
}

func (s AttendanceSummary) Record() table.Record {
	return table.Record{
		"date":    s.Date,
		"group":   s.Group,
		"present": s.Present,
		"late":    s.Late,
		"absent":  s.Absent,
	}
}

// SummarizeAttendances groups attendances by day and group, in first seen order.
func SummarizeAttendances(attendances []Attendance) []AttendanceSummary {
	index := make(map[[2]string]int)
	out := make([]AttendanceSummary, 0)
	for _, a := range attendances {
		key := [2]string{a.Date, a.Group}
		i, ok := index[key]
		if !ok {
			i = len(out)
			index[key] = i
			out = append(out, AttendanceSummary{Date: a.Date, Group: a.Group})
		}
		switch a.Status {
		case AttendancePresent:
			out[i].Present++
		case AttendanceLate:
			out[i].Late++
		case AttendanceAbsent:
			out[i].Absent++
		}
	}
	return out
}

// Rows converts records into table rows.
func Rows[T interface{ Record() table.Record }](items []T) []table.Row {
	rows := make([]table.Row, len(items))
	for i, item := range items {
		rows[i] = item.Record()
	}
	return rows
}
