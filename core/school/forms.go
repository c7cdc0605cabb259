package school

import (
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/masomo-console/core"
)

// Form holds the editable fields of an entity, as submitted by a client.
type Form[T any] interface {
	// Clean trims the submitted strings.
	Clean()
	// Apply copies the form onto item and returns it.
	Apply(item T) T
}

var (
	_ Form[Student]    = (*StudentForm)(nil)
	_ Form[Teacher]    = (*TeacherForm)(nil)
	_ Form[Course]     = (*CourseForm)(nil)
	_ Form[Group]      = (*GroupForm)(nil)
	_ Form[Lesson]     = (*LessonForm)(nil)
	_ Form[Payment]    = (*PaymentForm)(nil)
	_ Form[Attendance] = (*AttendanceForm)(nil)
)

// Validate cleans and validates form.
func Validate(validate *validator.Validate, form interface{ Clean() }) error {
	form.Clean()
	return validate.Struct(form)
}

type StudentForm struct {
	Name    string  `json:"name" validate:"required,min=2"`
	Phone   string  `json:"phone" validate:"required,phone"`
	Course  string  `json:"course" validate:"required"`
	Group   string  `json:"group" validate:"required"`
	Balance float64 `json:"balance" validate:"min=0"`
	Status  string  `json:"status" validate:"required,oneof=active inactive pending"`
}

func (f *StudentForm) Clean() {
	f.Name = core.CleanString(f.Name)
	f.Phone = core.CleanString(f.Phone)
	f.Course = core.CleanString(f.Course)
	f.Group = core.CleanString(f.Group)
	f.Status = core.CleanString(f.Status, true /* lower */)
}

func (f *StudentForm) Apply(s Student) Student {
	s.Name = f.Name
	s.Phone = f.Phone
	s.Course = f.Course
	s.Group = f.Group
	s.Balance = f.Balance
	s.Status = f.Status
	return s
}

type TeacherForm struct {
	Name       string `json:"name" validate:"required,min=2"`
	Phone      string `json:"phone" validate:"required,phone"`
	SalaryType string `json:"salary_type" validate:"required,oneof=monthly hourly"`
	Subject    string `json:"subject" validate:"required"`
}

func (f *TeacherForm) Clean() {
	f.Name = core.CleanString(f.Name)
	f.Phone = core.CleanString(f.Phone)
	f.SalaryType = core.CleanString(f.SalaryType, true /* lower */)
	f.Subject = core.CleanString(f.Subject)
}

func (f *TeacherForm) Apply(t Teacher) Teacher {
	t.Name = f.Name
	t.Phone = f.Phone
	t.SalaryType = f.SalaryType
	t.Subject = f.Subject
	return t
}

type CourseForm struct {
	Name          string  `json:"name" validate:"required,min=2"`
	Duration      string  `json:"duration" validate:"required"`
	Price         float64 `json:"price" validate:"min=0"`
	StudentsCount int     `json:"students_count" validate:"min=0"`
	Description   string  `json:"description"`
}

func (f *CourseForm) Clean() {
	f.Name = core.CleanString(f.Name)
	f.Duration = core.CleanString(f.Duration)
	f.Description = core.CleanString(f.Description)
}

func (f *CourseForm) Apply(c Course) Course {
	c.Name = f.Name
	c.Duration = f.Duration
	c.Price = f.Price
	c.StudentsCount = f.StudentsCount
	c.Description = f.Description
	return c
}

type GroupForm struct {
	Name          string `json:"name" validate:"required"`
	Course        string `json:"course" validate:"required"`
	Teacher       string `json:"teacher" validate:"required"`
	StudentsCount int    `json:"students_count" validate:"min=0"`
	Schedule      string `json:"schedule" validate:"required"`
}

func (f *GroupForm) Clean() {
	f.Name = core.CleanString(f.Name)
	f.Course = core.CleanString(f.Course)
	f.Teacher = core.CleanString(f.Teacher)
	f.Schedule = core.CleanString(f.Schedule)
}

func (f *GroupForm) Apply(g Group) Group {
	g.Name = f.Name
	g.Course = f.Course
	g.Teacher = f.Teacher
	g.StudentsCount = f.StudentsCount
	g.Schedule = f.Schedule
	return g
}

// LessonForm takes the date and the time separately; they are joined into Lesson.DateTime.
type LessonForm struct {
	Course      string `json:"course" validate:"required"`
	Teacher     string `json:"teacher" validate:"required"`
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
	Time        string `json:"time" validate:"required,datetime=15:04"`
	Room        string `json:"room" validate:"required"`
	Status      string `json:"status" validate:"required,oneof=scheduled completed cancelled"`
	Description string `json:"description"`
}

func (f *LessonForm) Clean() {
	f.Course = core.CleanString(f.Course)
	f.Teacher = core.CleanString(f.Teacher)
	f.Date = core.CleanString(f.Date)
	f.Time = core.CleanString(f.Time)
	f.Room = core.CleanString(f.Room)
	f.Status = core.CleanString(f.Status, true /* lower */)
	f.Description = core.CleanString(f.Description)
}

func (f *LessonForm) Apply(l Lesson) Lesson {
	l.Course = f.Course
	l.Teacher = f.Teacher
	l.DateTime = f.Date + " " + f.Time
	l.Room = f.Room
	l.Status = f.Status
	l.Description = f.Description
	return l
}

type PaymentForm struct {
	Student     string  `json:"student" validate:"required"`
	Amount      float64 `json:"amount" validate:"min=1"`
	Date        string  `json:"date" validate:"required,datetime=2006-01-02"`
	Method      string  `json:"method" validate:"required,oneof=cash card online"`
	Status      string  `json:"status" validate:"required,oneof=completed pending failed"`
	Description string  `json:"description"`
}

func (f *PaymentForm) Clean() {
	f.Student = core.CleanString(f.Student)
	f.Date = core.CleanString(f.Date)
	f.Method = core.CleanString(f.Method, true /* lower */)
	f.Status = core.CleanString(f.Status, true /* lower */)
	f.Description = core.CleanString(f.Description)
}

func (f *PaymentForm) Apply(p Payment) Payment {
	p.Student = f.Student
	p.Amount = f.Amount
	p.Date = f.Date
	p.Method = f.Method
	p.Status = f.Status
	p.Description = f.Description
	return p
}

type AttendanceForm struct {
	Student string `json:"student" validate:"required"`
	Group   string `json:"group" validate:"required"`
	Date    string `json:"date" validate:"required,datetime=2006-01-02"`
	Status  string `json:"status" validate:"required,oneof=present late absent"`
}

func (f *AttendanceForm) Clean() {
	f.Student = core.CleanString(f.Student)
	f.Group = core.CleanString(f.Group)
	f.Date = core.CleanString(f.Date)
	f.Status = core.CleanString(f.Status, true /* lower */)
}

func (f *AttendanceForm) Apply(a Attendance) Attendance {
	a.Student = f.Student
	a.Group = f.Group
	a.Date = f.Date
	a.Status = f.Status
	return a
}
