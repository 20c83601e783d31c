// Package course holds the course catalog and the students' progress through it.
package course

import (
	"strconv"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/baseldt/lms/core"
	"github.com/baseldt/lms/core/user"
)

// CategoryAll matches every category.
const CategoryAll = "All"

var (
	// errors
	ErrNotFound       = errors.New("course not found")
	ErrLessonNotFound = errors.New("lesson not found")
	ErrNotEnrolled    = errors.New("not enrolled in this course")
	ErrNotInstructor  = errors.New("only instructors can create courses")

	nowFunc = time.Now
)

// Catalog is the in-memory course list. It is safe for concurrent use.
type Catalog struct {
	mu      sync.RWMutex
	courses []Course
}

func NewCatalog(seed ...Course) *Catalog {
	courses := make([]Course, len(seed))
	copy(courses, seed)
	return &Catalog{courses: courses}
}

// NewSeededCatalog returns a Catalog holding the mock courses.
func NewSeededCatalog() *Catalog {
	return NewCatalog(MockCourses()...)
}

// Browse lists the published courses matching f, in catalog order.
// Search matches the title or the description, ignoring case.
func (c *Catalog) Browse(f Filter) []Course {
	c.mu.RLock()
	defer c.mu.RUnlock()

	res := make([]Course, 0, len(c.courses))
	for _, crs := range c.courses {
		if !crs.Published {
			continue
		}
		if !core.ContainsFold(crs.Title, f.Search) && !core.ContainsFold(crs.Description, f.Search) {
			continue
		}
		if f.Category != "" && f.Category != CategoryAll && f.Category != crs.Category {
			continue
		}
		res = append(res, crs)
	}
	return res
}

// Categories returns CategoryAll followed by the categories of the published courses,
// in order of first appearance.
func (c *Catalog) Categories() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	cats := []string{CategoryAll}
	seen := make(map[string]bool)
	for _, crs := range c.courses {
		if !crs.Published || seen[crs.Category] {
			continue
		}
		seen[crs.Category] = true
		cats = append(cats, crs.Category)
	}
	return cats
}

func (c *Catalog) Get(id string) (Course, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if i := c.indexOf(id); i >= 0 {
		return c.courses[i], nil
	}
	return Course{}, ErrNotFound
}

// ByInstructor lists the courses taught by instructorID, published or not.
func (c *Catalog) ByInstructor(instructorID string) []Course {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var res []Course
	for _, crs := range c.courses {
		if crs.InstructorID == instructorID {
			res = append(res, crs)
		}
	}
	return res
}

// Create adds an unpublished course without content. nc must be validated.
func (c *Catalog) Create(instructor user.Identity, nc NewCourse, ntf core.Notifier) (Course, error) {
	if !instructor.IsInstructor() {
		return Course{}, ErrNotInstructor
	}

	c.mu.Lock()
	crs := Course{
		ID:           strconv.Itoa(len(c.courses) + 1),
		Title:        nc.Title,
		Instructor:   instructor.Name,
		InstructorID: instructor.ID,
		Description:  nc.Description,
		Category:     nc.Category,
		CreatedAt:    nowFunc().Format("2006-01-02"),
		Modules:      []Module{},
	}
	c.courses = append(c.courses, crs)
	c.mu.Unlock()

	ntf.Notify(core.NewNotification(
		"Course created",
		`"`+crs.Title+`" has been created successfully. You can now add content to your course.`,
		core.SeverityDefault,
	))
	return crs, nil
}

func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.courses)
}

// addStudent bumps the enrollment count of a course.
func (c *Catalog) addStudent(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if i := c.indexOf(id); i >= 0 {
		c.courses[i].Students++
	}
}

// caller must hold the lock
func (c *Catalog) indexOf(id string) int {
	for i, crs := range c.courses {
		if crs.ID == id {
			return i
		}
	}
	return -1
}
