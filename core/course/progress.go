package course

import (
	"math"
	"sync"

	"github.com/baseldt/lms/core"
	"github.com/baseldt/lms/core/user"
)

// Progress tracks which courses each user is enrolled in and the lessons they completed.
type Progress struct {
	catalog *Catalog

	mu          sync.RWMutex
	enrollments map[string]map[string]map[string]bool // user id -> course id -> completed lesson ids
}

func NewProgress(catalog *Catalog) *Progress {
	return &Progress{
		catalog:     catalog,
		enrollments: make(map[string]map[string]map[string]bool),
	}
}

// NewSeededProgress returns a Progress holding the mock enrollments.
func NewSeededProgress(catalog *Catalog) *Progress {
	p := NewProgress(catalog)
	for userID, courses := range MockEnrollments() {
		for courseID, lessons := range courses {
			done := p.enrollment(userID, courseID)
			for _, l := range lessons {
				done[l] = true
			}
		}
	}
	return p
}

func (p *Progress) IsEnrolled(userID, courseID string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	_, ok := p.enrollments[userID][courseID]
	return ok
}

// Enroll registers ident in a course. Enrolling twice keeps the progress.
func (p *Progress) Enroll(ident user.Identity, courseID string, ntf core.Notifier) (Course, error) {
	crs, err := p.catalog.Get(courseID)
	if err != nil {
		return Course{}, err
	}

	p.mu.Lock()
	_, already := p.enrollments[ident.ID][courseID]
	if !already {
		p.enrollment(ident.ID, courseID)
	}
	p.mu.Unlock()

	if !already {
		p.catalog.addStudent(courseID)
		crs.Students++
	}
	ntf.Notify(core.NewNotification("Enrolled Successfully", `You are now enrolled in "`+crs.Title+`"`, core.SeverityDefault))
	return crs, nil
}

// MarkComplete records a lesson of an enrolled course as completed. It is idempotent.
func (p *Progress) MarkComplete(ident user.Identity, courseID, lessonID string, ntf core.Notifier) (int, error) {
	crs, err := p.catalog.Get(courseID)
	if err != nil {
		return 0, err
	}
	if !crs.HasLesson(lessonID) {
		return 0, ErrLessonNotFound
	}

	p.mu.Lock()
	done, ok := p.enrollments[ident.ID][courseID]
	if !ok {
		p.mu.Unlock()
		return 0, ErrNotEnrolled
	}
	done[lessonID] = true
	pct := percent(len(done), crs.LessonCount())
	p.mu.Unlock()

	ntf.Notify(core.NewNotification("Progress Updated", "Lesson marked as completed", core.SeverityDefault))
	return pct, nil
}

// Completed lists the completed lessons of a course, in course order.
func (p *Progress) Completed(userID string, crs Course) []string {
	p.mu.RLock()
	defer p.mu.RUnlock()

	done := p.enrollments[userID][crs.ID]
	res := make([]string, 0, len(done))
	for _, m := range crs.Modules {
		for _, l := range m.Lessons {
			if done[l.ID] {
				res = append(res, l.ID)
			}
		}
	}
	return res
}

// Percent is the rounded share of completed lessons, 0 for a course without lessons.
func (p *Progress) Percent(userID string, crs Course) int {
	return percent(len(p.Completed(userID, crs)), crs.LessonCount())
}

// Detail is a course as seen by one user.
type Detail struct {
	Course
	TotalLessons int      `json:"total_lessons"`
	Enrolled     bool     `json:"enrolled"`
	Progress     int      `json:"progress"`
	Completed    []string `json:"completed"`
	CanEdit      bool     `json:"can_edit"`
}

func (p *Progress) Detail(ident user.Identity, courseID string) (Detail, error) {
	crs, err := p.catalog.Get(courseID)
	if err != nil {
		return Detail{}, err
	}
	return Detail{
		Course:       crs,
		TotalLessons: crs.LessonCount(),
		Enrolled:     p.IsEnrolled(ident.ID, crs.ID),
		Progress:     p.Percent(ident.ID, crs),
		Completed:    p.Completed(ident.ID, crs),
		CanEdit:      ident.IsInstructor() && crs.InstructorID == ident.ID,
	}, nil
}

// caller must hold the write lock
func (p *Progress) enrollment(userID, courseID string) map[string]bool {
	courses, ok := p.enrollments[userID]
	if !ok {
		courses = make(map[string]map[string]bool)
		p.enrollments[userID] = courses
	}
	done, ok := courses[courseID]
	if !ok {
		done = make(map[string]bool)
		courses[courseID] = done
	}
	return done
}

func percent(completed, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}
