package school

// Seed data of a fresh console.

func MockStudents() []Student {
	return []Student{
		{ID: "S001", Name: "Alice Johnson", Phone: "+1 555 0101 234", Course: "Web Development", Group: "WD-A", Balance: 250, Status: StudentActive, LastAttendance: "2024-01-15", Progress: 85},
		{ID: "S002", Name: "Brian Smith", Phone: "+1 555 0102 345", Course: "Data Science", Group: "DS-A", Balance: -120, Status: StudentActive, LastAttendance: "2024-01-14", Progress: 72},
		{ID: "S003", Name: "Carla Gomez", Phone: "+1 555 0103 456", Course: "Web Development", Group: "WD-B", Balance: 0, Status: StudentPending, LastAttendance: "2024-01-10", Progress: 40},
		{ID: "S004", Name: "David Lee", Phone: "+1 555 0104 567", Course: "Mobile Development", Group: "MD-A", Balance: 500, Status: StudentActive, LastAttendance: "2024-01-15", Progress: 91},
		{ID: "S005", Name: "Emma Wilson", Phone: "+1 555 0105 678", Course: "UI/UX Design", Group: "UX-A", Balance: -300, Status: StudentInactive, LastAttendance: "2023-12-20", Progress: 15},
		{ID: "S006", Name: "Felix Brown", Phone: "+1 555 0106 789", Course: "Web Development", Group: "WD-A", Balance: 75, Status: StudentActive, LastAttendance: "2024-01-15", Progress: 66},
		{ID: "S007", Name: "Grace Kim", Phone: "+1 555 0107 890", Course: "Data Science", Group: "DS-A", Balance: 1200, Status: StudentActive, LastAttendance: "2024-01-13", Progress: 88},
		{ID: "S008", Name: "Henry Davis", Phone: "+1 555 0108 901", Course: "Cyber Security", Group: "CS-A", Balance: 0, Status: StudentActive, LastAttendance: "2024-01-12", Progress: 54},
		{ID: "S009", Name: "Isabel Martinez", Phone: "+1 555 0109 012", Course: "Web Development", Group: "WD-B", Balance: -50, Status: StudentActive, LastAttendance: "2024-01-14", Progress: 77},
		{ID: "S010", Name: "Jack Taylor", Phone: "+1 555 0110 123", Course: "Mobile Development", Group: "MD-A", Balance: 320, Status: StudentPending, LastAttendance: "2024-01-08", Progress: 30},
		{ID: "S011", Name: "Karen White", Phone: "+1 555 0111 234", Course: "UI/UX Design", Group: "UX-A", Balance: 90, Status: StudentActive, LastAttendance: "2024-01-15", Progress: 83},
		{ID: "S012", Name: "Liam Harris", Phone: "+1 555 0112 345", Course: "Cyber Security", Group: "CS-A", Balance: -700, Status: StudentInactive, LastAttendance: "2023-11-30", Progress: 12},
		{ID: "S013", Name: "Mia Clark", Phone: "+1 555 0113 456", Course: "Web Development", Group: "WD-A", Balance: 410, Status: StudentActive, LastAttendance: "2024-01-15", Progress: 95},
		{ID: "S014", Name: "Noah Lewis", Phone: "+1 555 0114 567", Course: "Data Science", Group: "DS-B", Balance: 0, Status: StudentActive, LastAttendance: "2024-01-11", Progress: 61},
		{ID: "S015", Name: "Olivia Walker", Phone: "+1 555 0115 678", Course: "Cloud Computing", Group: "CC-A", Balance: 1500, Status: StudentActive, LastAttendance: "2024-01-15", Progress: 79},
		{ID: "S016", Name: "Paul Hall", Phone: "+1 555 0116 789", Course: "Web Development", Group: "WD-B", Balance: -25, Status: StudentPending, LastAttendance: "2024-01-09", Progress: 47},
		{ID: "S017", Name: "Quinn Allen", Phone: "+1 555 0117 890", Course: "Mobile Development", Group: "MD-A", Balance: 60, Status: StudentActive, LastAttendance: "2024-01-14", Progress: 70},
		{ID: "S018", Name: "Rachel Young", Phone: "+1 555 0118 901", Course: "Cloud Computing", Group: "CC-A", Balance: 220, Status: StudentActive, LastAttendance: "2024-01-13", Progress: 58},
		{ID: "S019", Name: "Samuel King", Phone: "+1 555 0119 012", Course: "Data Science", Group: "DS-B", Balance: -180, Status: StudentActive, LastAttendance: "2024-01-12", Progress: 64},
		{ID: "S020", Name: "Tina Wright", Phone: "+1 555 0120 123", Course: "UI/UX Design", Group: "UX-A", Balance: 0, Status: StudentInactive, LastAttendance: "2023-12-05", Progress: 22},
		{ID: "S021", Name: "Umar Scott", Phone: "+1 555 0121 234", Course: "Web Development", Group: "WD-A", Balance: 130, Status: StudentActive, LastAttendance: "2024-01-15", Progress: 81},
		{ID: "S022", Name: "Vera Green", Phone: "+1 555 0122 345", Course: "Cyber Security", Group: "CS-A", Balance: 940, Status: StudentActive, LastAttendance: "2024-01-10", Progress: 68},
		{ID: "S023", Name: "William Adams", Phone: "+1 555 0123 456", Course: "Cloud Computing", Group: "CC-A", Balance: -60, Status: StudentPending, LastAttendance: "2024-01-07", Progress: 35},
		{ID: "S024", Name: "Xena Baker", Phone: "+1 555 0124 567", Course: "Mobile Development", Group: "MD-A", Balance: 310, Status: StudentActive, LastAttendance: "2024-01-14", Progress: 74},
		{ID: "S025", Name: "Yusuf Nelson", Phone: "+1 555 0125 678", Course: "Web Development", Group: "WD-B", Balance: 45, Status: StudentActive, LastAttendance: "2024-01-15", Progress: 89},
	}
}

func MockTeachers() []Teacher {
	return []Teacher{
		{ID: "T001", Name: "Dr. Robert Chen", Subject: "Web Development", Phone: "+1 555 0201 111", SalaryType: SalaryMonthly, Rating: 4.8},
		{ID: "T002", Name: "Ms. Sarah Johnson", Subject: "Data Science", Phone: "+1 555 0202 222", SalaryType: SalaryMonthly, Rating: 4.6},
		{ID: "T003", Name: "Mr. David Kim", Subject: "Mobile Development", Phone: "+1 555 0203 333", SalaryType: SalaryHourly, Rating: 4.3},
		{ID: "T004", Name: "Mrs. Emily Davis", Subject: "UI/UX Design", Phone: "+1 555 0204 444", SalaryType: SalaryHourly, Rating: 4.9},
		{ID: "T005", Name: "Mr. James Wilson", Subject: "Cyber Security", Phone: "+1 555 0205 555", SalaryType: SalaryMonthly, Rating: 4.1},
		{ID: "T006", Name: "Dr. Linda Martinez", Subject: "Cloud Computing", Phone: "+1 555 0206 666", SalaryType: SalaryMonthly, Rating: 4.7},
	}
}

func MockCourses() []Course {
	return []Course{
		{ID: "C001", Name: "Web Development", Duration: "6 months", Price: 1200, StudentsCount: 8, Description: "HTML, CSS, JavaScript and modern web frameworks"},
		{ID: "C002", Name: "Data Science", Duration: "8 months", Price: 1500, StudentsCount: 5, Description: "Statistics, Python and machine learning"},
		{ID: "C003", Name: "Mobile Development", Duration: "6 months", Price: 1300, StudentsCount: 4, Description: "Native and cross platform mobile apps"},
		{ID: "C004", Name: "UI/UX Design", Duration: "4 months", Price: 900, StudentsCount: 3, Description: "User research, wireframing and prototyping"},
		{ID: "C005", Name: "Cyber Security", Duration: "7 months", Price: 1400, StudentsCount: 3, Description: "Network security and ethical hacking"},
		{ID: "C006", Name: "Cloud Computing", Duration: "5 months", Price: 1100, StudentsCount: 3, Description: "Cloud infrastructure and deployment"},
	}
}

func MockGroups() []Group {
	return []Group{
		{ID: "G001", Name: "WD-A", Course: "Web Development", Teacher: "Dr. Robert Chen", StudentsCount: 5, Schedule: "Mon, Wed 10:00-12:00"},
		{ID: "G002", Name: "WD-B", Course: "Web Development", Teacher: "Dr. Robert Chen", StudentsCount: 4, Schedule: "Tue, Thu 14:00-16:00"},
		{ID: "G003", Name: "DS-A", Course: "Data Science", Teacher: "Ms. Sarah Johnson", StudentsCount: 2, Schedule: "Mon, Wed 14:00-16:00"},
		{ID: "G004", Name: "DS-B", Course: "Data Science", Teacher: "Ms. Sarah Johnson", StudentsCount: 2, Schedule: "Fri 09:00-13:00"},
		{ID: "G005", Name: "MD-A", Course: "Mobile Development", Teacher: "Mr. David Kim", StudentsCount: 4, Schedule: "Tue, Thu 10:00-12:00"},
		{ID: "G006", Name: "UX-A", Course: "UI/UX Design", Teacher: "Mrs. Emily Davis", StudentsCount: 3, Schedule: "Wed, Fri 16:00-18:00"},
		{ID: "G007", Name: "CS-A", Course: "Cyber Security", Teacher: "Mr. James Wilson", StudentsCount: 3, Schedule: "Sat 09:00-13:00"},
		{ID: "G008", Name: "CC-A", Course: "Cloud Computing", Teacher: "Dr. Linda Martinez", StudentsCount: 3, Schedule: "Mon, Thu 18:00-20:00"},
	}
}

func MockLessons() []Lesson {
	return []Lesson{
		{ID: "L001", Course: "Web Development", Teacher: "Dr. Robert Chen", DateTime: "2024-01-22 10:00", Room: "Room 101", Status: LessonScheduled, Description: "React hooks"},
		{ID: "L002", Course: "Data Science", Teacher: "Ms. Sarah Johnson", DateTime: "2024-01-22 14:00", Room: "Lab 2", Status: LessonScheduled, Description: "Linear regression"},
		{ID: "L003", Course: "Mobile Development", Teacher: "Mr. David Kim", DateTime: "2024-01-16 10:00", Room: "Room 203", Status: LessonCompleted},
		{ID: "L004", Course: "UI/UX Design", Teacher: "Mrs. Emily Davis", DateTime: "2024-01-17 16:00", Room: "Studio 1", Status: LessonCancelled, Description: "Teacher unavailable"},
		{ID: "L005", Course: "Web Development", Teacher: "Dr. Robert Chen", DateTime: "2024-01-23 14:00", Room: "Room 102", Status: LessonScheduled, Description: "REST APIs"},
		{ID: "L006", Course: "Cyber Security", Teacher: "Mr. James Wilson", DateTime: "2024-01-20 09:00", Room: "Lab 1", Status: LessonCompleted},
		{ID: "L007", Course: "Cloud Computing", Teacher: "Dr. Linda Martinez", DateTime: "2024-01-25 18:00", Room: "Room 305", Status: LessonScheduled},
		{ID: "L008", Course: "Web Development", Teacher: "Dr. Robert Chen", DateTime: "2024-01-24 10:00", Room: "Room 101", Status: LessonScheduled, Description: "State management"},
		{ID: "L009", Course: "Mobile Development", Teacher: "Mr. David Kim", DateTime: "2024-01-25 10:00", Room: "Room 203", Status: LessonScheduled},
		{ID: "L010", Course: "Data Science", Teacher: "Ms. Sarah Johnson", DateTime: "2024-01-26 09:00", Room: "Lab 2", Status: LessonScheduled, Description: "Decision trees"},
	}
}

func MockPayments() []Payment {
	return []Payment{
		{ID: "P001", Student: "Alice Johnson", Amount: 600, Date: "2024-01-05", Method: MethodCard, Status: PaymentCompleted, Description: "January tuition"},
		{ID: "P002", Student: "Brian Smith", Amount: 750, Date: "2024-01-06", Method: MethodOnline, Status: PaymentCompleted},
		{ID: "P003", Student: "Carla Gomez", Amount: 600, Date: "2024-01-08", Method: MethodCash, Status: PaymentPending},
		{ID: "P004", Student: "David Lee", Amount: 650, Date: "2024-01-09", Method: MethodCard, Status: PaymentCompleted},
		{ID: "P005", Student: "Emma Wilson", Amount: 450, Date: "2024-01-10", Method: MethodOnline, Status: PaymentFailed, Description: "Card declined"},
		{ID: "P006", Student: "Grace Kim", Amount: 1500, Date: "2024-01-10", Method: MethodCard, Status: PaymentCompleted, Description: "Full course"},
		{ID: "P007", Student: "Henry Davis", Amount: 700, Date: "2024-01-11", Method: MethodCash, Status: PaymentCompleted},
		{ID: "P008", Student: "Jack Taylor", Amount: 650, Date: "2024-01-12", Method: MethodOnline, Status: PaymentPending},
		{ID: "P009", Student: "Mia Clark", Amount: 600, Date: "2024-01-12", Method: MethodCard, Status: PaymentCompleted},
		{ID: "P010", Student: "Olivia Walker", Amount: 1100, Date: "2024-01-13", Method: MethodOnline, Status: PaymentCompleted},
		{ID: "P011", Student: "Liam Harris", Amount: 700, Date: "2024-01-14", Method: MethodCash, Status: PaymentFailed},
		{ID: "P012", Student: "Vera Green", Amount: 1400, Date: "2024-01-15", Method: MethodCard, Status: PaymentCompleted},
	}
}

func MockAttendances() []Attendance {
	return []Attendance{
		{ID: "A001", Student: "Alice Johnson", Group: "WD-A", Date: "2024-01-15", Status: AttendancePresent},
		{ID: "A002", Student: "Felix Brown", Group: "WD-A", Date: "2024-01-15", Status: AttendancePresent},
		{ID: "A003", Student: "Mia Clark", Group: "WD-A", Date: "2024-01-15", Status: AttendanceLate},
		{ID: "A004", Student: "Umar Scott", Group: "WD-A", Date: "2024-01-15", Status: AttendancePresent},
		{ID: "A005", Student: "Carla Gomez", Group: "WD-B", Date: "2024-01-14", Status: AttendanceAbsent},
		{ID: "A006", Student: "Isabel Martinez", Group: "WD-B", Date: "2024-01-14", Status: AttendancePresent},
		{ID: "A007", Student: "Yusuf Nelson", Group: "WD-B", Date: "2024-01-14", Status: AttendancePresent},
		{ID: "A008", Student: "Brian Smith", Group: "DS-A", Date: "2024-01-14", Status: AttendancePresent},
		{ID: "A009", Student: "Grace Kim", Group: "DS-A", Date: "2024-01-13", Status: AttendancePresent},
		{ID: "A010", Student: "David Lee", Group: "MD-A", Date: "2024-01-15", Status: AttendancePresent},
		{ID: "A011", Student: "Jack Taylor", Group: "MD-A", Date: "2024-01-15", Status: AttendanceAbsent},
		{ID: "A012", Student: "Emma Wilson", Group: "UX-A", Date: "2024-01-12", Status: AttendanceAbsent},
		{ID: "A013", Student: "Karen White", Group: "UX-A", Date: "2024-01-12", Status: AttendancePresent},
		{ID: "A014", Student: "Henry Davis", Group: "CS-A", Date: "2024-01-13", Status: AttendanceLate},
		{ID: "A015", Student: "Olivia Walker", Group: "CC-A", Date: "2024-01-15", Status: AttendancePresent},
		{ID: "A016", Student: "Rachel Young", Group: "CC-A", Date: "2024-01-15", Status: AttendancePresent},
	}
}
