package course

import (
	"math"

	"github.com/baseldt/lms/core/user"
)

type EnrolledCourse struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Instructor string `json:"instructor"`
	Image      string `json:"image"`
	Progress   int    `json:"progress"`
}

type StudentDashboard struct {
	Name    string           `json:"name"`
	Courses []EnrolledCourse `json:"courses"`
}

// StudentDashboard lists the courses ident is enrolled in, in catalog order.
func (p *Progress) StudentDashboard(ident user.Identity) StudentDashboard {
	dash := StudentDashboard{Name: ident.Name, Courses: []EnrolledCourse{}}
	for _, crs := range p.catalog.all() {
		if !p.IsEnrolled(ident.ID, crs.ID) {
			continue
		}
		dash.Courses = append(dash.Courses, EnrolledCourse{
			ID:         crs.ID,
			Title:      crs.Title,
			Instructor: crs.Instructor,
			Image:      crs.Image,
			Progress:   p.Percent(ident.ID, crs),
		})
	}
	return dash
}

type InstructorMetrics struct {
	TotalStudents int     `json:"total_students"`
	TotalCourses  int     `json:"total_courses"`
	TotalRevenue  float64 `json:"total_revenue"`
	AverageRating float64 `json:"average_rating"`
}

type InstructorDashboard struct {
	Name    string            `json:"name"`
	Metrics InstructorMetrics `json:"metrics"`
	Courses []Course          `json:"courses"`
}

// InstructorDashboard summarizes the courses taught by ident.
// The average rating only counts rated courses.
func (c *Catalog) InstructorDashboard(ident user.Identity) InstructorDashboard {
	courses := c.ByInstructor(ident.ID)
	if courses == nil {
		courses = []Course{}
	}

	var (
		m     InstructorMetrics
		rated int
		sum   float64
	)
	m.TotalCourses = len(courses)
	for _, crs := range courses {
		m.TotalStudents += crs.Students
		m.TotalRevenue += crs.Price * float64(crs.Students)
		if crs.IsRated() {
			rated++
			sum += crs.Rating
		}
	}
	m.TotalRevenue = roundTo(m.TotalRevenue, 2)
	if rated > 0 {
		m.AverageRating = roundTo(sum/float64(rated), 1)
	}

	return InstructorDashboard{Name: ident.Name, Metrics: m, Courses: courses}
}

func (c *Catalog) all() []Course {
	c.mu.RLock()
	defer c.mu.RUnlock()

	res := make([]Course, len(c.courses))
	copy(res, c.courses)
	return res
}

func roundTo(f float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(f*p) / p
}
