package person

import "time"

// Student is a person enrolled on a course.
type Student struct {
	Profile
	Course int
	Group  int
	Score  float64 // average grade
}

// NewStudent builds a Student with a fresh identifier.
func NewStudent(lastname, name, patronymic string, birth time.Time, course, group int, score float64) *Student {
	return &Student{
		Profile: newProfile(lastname, name, patronymic, birth),
		Course:  course,
		Group:   group,
		Score:   score,
	}
}

func (s *Student) Kind() Kind { return KindStudent }

func (s *Student) String() string {
	return FormatStudent(s, time.Now())
}
