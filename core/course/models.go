package course

import (
	"github.com/go-playground/validator/v10"

	"github.com/baseldt/lms/core"
)

type Lesson struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Duration string `json:"duration"` // mm:ss
}

type Module struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Lessons []Lesson `json:"lessons"`
}

type Course struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Instructor   string   `json:"instructor"`
	InstructorID string   `json:"instructor_id"`
	Description  string   `json:"description"`
	Category     string   `json:"category"`
	Rating       float64  `json:"rating"`
	ReviewCount  int      `json:"review_count"`
	Students     int      `json:"students"`
	Price        float64  `json:"price"`
	Image        string   `json:"image"`
	Published    bool     `json:"published"`
	CreatedAt    string   `json:"created_at"` // yyyy-mm-dd
	Modules      []Module `json:"modules"`
}

func (c Course) LessonCount() int {
	n := 0
	for _, m := range c.Modules {
		n += len(m.Lessons)
	}
	return n
}

func (c Course) HasLesson(id string) bool {
	for _, m := range c.Modules {
		for _, l := range m.Lessons {
			if l.ID == id {
				return true
			}
		}
	}
	return false
}

func (c Course) IsRated() bool { return c.Rating > 0 }

// Filter narrows Browse results. Empty fields match everything.
type Filter struct {
	Search   string
	Category string
}

// NewCourse contains information needed to create a course.
type NewCourse struct {
	Title       string `json:"title" validate:"required,notblank"`
	Description string `json:"description" validate:"required,notblank"`
	Category    string `json:"category" validate:"required,category"`
}

// Validate cleans & validates nc.
func (nc *NewCourse) Validate(validate *validator.Validate) error {
	nc.Title = core.CleanString(nc.Title)
	nc.Description = core.CleanString(nc.Description)
	nc.Category = core.CleanString(nc.Category)
	return validate.Struct(nc)
}
