package echoapi

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baseldt/lms/core/course"
)

func TestViews_anonymous(t *testing.T) {
	c := newClient(setup(t))

	c.run(t, []httpTest{
		{name: "root", path: "/", wantCode: http.StatusFound, wantLoc: "/dashboard"},
		{name: "dashboard", path: "/dashboard", wantCode: http.StatusFound, wantLoc: "/login"},
		{name: "student dashboard", path: "/student/dashboard", wantCode: http.StatusFound, wantLoc: "/login"},
		{name: "instructor dashboard", path: "/instructor/dashboard", wantCode: http.StatusFound, wantLoc: "/login"},
		{name: "browse", path: "/courses/browse", wantCode: http.StatusFound, wantLoc: "/login"},
		{name: "detail", path: "/courses/1", wantCode: http.StatusFound, wantLoc: "/login"},
		{name: "enroll", method: http.MethodPost, path: "/courses/1/enroll", wantCode: http.StatusFound, wantLoc: "/login"},
		{name: "login view is public", path: "/login", wantCode: http.StatusOK},
		{name: "register view is public", path: "/register", wantCode: http.StatusOK},
		{name: "unknown path", path: "/nope", wantCode: http.StatusNotFound, wantData: marchallObj(t, httpErr{Error: "Not Found"})},
		{name: "metrics", path: "/metrics", wantCode: http.StatusOK},
	})
}

func TestViews_student(t *testing.T) {
	c := newClient(setup(t))
	c.login(t, "student@example.com")
	c.notifications(t)

	c.run(t, []httpTest{
		{name: "dashboard", path: "/dashboard", wantCode: http.StatusFound, wantLoc: "/student/dashboard"},
		{name: "trailing slash", path: "/dashboard/", wantCode: http.StatusFound, wantLoc: "/student/dashboard"},
		{name: "own dashboard", path: "/student/dashboard", wantCode: http.StatusOK},
		{name: "instructor dashboard", path: "/instructor/dashboard", wantCode: http.StatusFound, wantLoc: "/student/dashboard"},
		{name: "create view", path: "/courses/create", wantCode: http.StatusFound, wantLoc: "/student/dashboard"},
		{
			name: "create", method: http.MethodPost, path: "/courses/create", body: []byte(`{}`),
			wantCode: http.StatusFound, wantLoc: "/student/dashboard",
		},
		{name: "unknown course", path: "/courses/42", wantCode: http.StatusNotFound, wantData: marchallObj(t, httpErr{Error: "not found"})},
		{
			name: "complete before enrolling", method: http.MethodPost, path: "/courses/4/lessons/l1/complete",
			wantCode: http.StatusBadRequest, wantData: marchallObj(t, httpErr{Error: "not enrolled in this course"}),
		},
		{name: "enroll", method: http.MethodPost, path: "/courses/4/enroll", wantCode: http.StatusOK},
		{
			name: "complete", method: http.MethodPost, path: "/courses/4/lessons/l1/complete",
			wantCode: http.StatusOK, wantData: marchallObj(t, ProgressResponse{Progress: 17}),
		},
		{name: "unknown lesson", method: http.MethodPost, path: "/courses/4/lessons/l42/complete", wantCode: http.StatusNotFound},
	})

	assert.Equal(t, []string{"Enrolled Successfully", "Progress Updated"}, c.notifications(t))

	rec := c.do(http.MethodGet, "/student/dashboard")
	var dash course.StudentDashboard
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dash))
	assert.Equal(t, "Jane Student", dash.Name)
	progress := map[string]int{}
	for _, ec := range dash.Courses {
		progress[ec.ID] = ec.Progress
	}
	assert.Equal(t, map[string]int{"1": 20, "2": 30, "3": 80, "4": 17}, progress)

	rec = c.do(http.MethodGet, "/courses/1")
	var d course.Detail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &d))
	assert.True(t, d.Enrolled)
	assert.Equal(t, []string{"l1", "l2"}, d.Completed)
	assert.Equal(t, 10, d.TotalLessons)
}

func TestViews_browse(t *testing.T) {
	c := newClient(setup(t))
	c.login(t, "student@example.com")

	tests := []struct {
		path string
		want []string
	}{
		{path: "/courses/browse", want: []string{"1", "2", "3", "4", "5", "6"}},
		{path: "/courses/browse?search=react", want: []string{"1"}},
		{path: "/courses/browse?category=Design", want: []string{"5"}},
		{path: "/courses/browse?category=All&search=web", want: []string{"6"}},
		{path: "/courses/browse?search=INTERFACES", want: []string{"1", "3", "5"}},
		{path: "/courses/browse?search=zzz", want: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := c.do(http.MethodGet, tt.path)
			require.Equal(t, http.StatusOK, rec.Code)

			var res BrowseResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
			ids := make([]string, 0, len(res.Courses))
			for _, crs := range res.Courses {
				ids = append(ids, crs.ID)
			}
			assert.Equal(t, tt.want, ids)
			assert.Equal(t, "All", res.Categories[0])
		})
	}
}

func TestViews_instructor(t *testing.T) {
	c := newClient(setup(t))
	c.login(t, "instructor@example.com")
	c.notifications(t)

	c.run(t, []httpTest{
		{name: "dashboard", path: "/dashboard", wantCode: http.StatusFound, wantLoc: "/instructor/dashboard"},
		{name: "student dashboard", path: "/student/dashboard", wantCode: http.StatusFound, wantLoc: "/instructor/dashboard"},
		{name: "enroll", method: http.MethodPost, path: "/courses/1/enroll", wantCode: http.StatusFound, wantLoc: "/instructor/dashboard"},
		{name: "create view", path: "/courses/create", wantCode: http.StatusOK},
		{
			name: "create invalid", method: http.MethodPost, path: "/courses/create",
			body:     []byte(`{"title":"Go","category":"Cooking"}`),
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{
				"description": "this field is required",
				"category":    "category must be one of: Web Development, Mobile Development, Data Science, Machine Learning, DevOps, Design, Business, Marketing",
			}),
		},
	})

	rec := c.do(http.MethodPost, "/courses/create", []byte(`{"title":"Go Basics","description":"Learn Go.","category":"DevOps"}`))
	require.Equal(t, http.StatusCreated, rec.Code)
	var crs course.Course
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &crs))
	assert.Equal(t, "7", crs.ID)
	assert.Equal(t, "1", crs.InstructorID)
	assert.False(t, crs.Published)
	assert.Equal(t, []string{"Course created"}, c.notifications(t))

	rec = c.do(http.MethodGet, "/instructor/dashboard")
	require.Equal(t, http.StatusOK, rec.Code)
	var dash course.InstructorDashboard
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dash))
	assert.Equal(t, course.InstructorMetrics{
		TotalStudents: 24,
		TotalCourses:  2,
		TotalRevenue:  1199.76,
		AverageRating: 4.7,
	}, dash.Metrics)

	rec = c.do(http.MethodGet, "/courses/1")
	var d course.Detail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &d))
	assert.True(t, d.CanEdit)
	assert.False(t, d.Enrolled)
}
