package course

import "github.com/baseldt/lms/core/user"

// MockCourses returns a fresh copy of the seed catalog.
func MockCourses() []Course {
	return []Course{
		{
			ID:           "1",
			Title:        "Introduction to React",
			Instructor:   "John Instructor",
			InstructorID: user.MockInstructorID,
			Description:  "Learn the fundamentals of React, a popular JavaScript library for building user interfaces.",
			Category:     "Web Development",
			Rating:       4.7,
			ReviewCount:  18,
			Students:     24,
			Price:        49.99,
			Image:        "https://source.unsplash.com/random/300x200?react",
			Published:    true,
			CreatedAt:    "2023-04-15",
			Modules: []Module{
				{ID: "m1", Title: "Getting Started with React", Lessons: []Lesson{
					{ID: "l1", Title: "Introduction to React", Duration: "10:15"},
					{ID: "l2", Title: "Setting Up Your Development Environment", Duration: "15:20"},
					{ID: "l3", Title: "Your First React Component", Duration: "12:45"},
				}},
				{ID: "m2", Title: "React Fundamentals", Lessons: []Lesson{
					{ID: "l4", Title: "JSX Syntax", Duration: "14:30"},
					{ID: "l5", Title: "Props and State", Duration: "18:15"},
					{ID: "l6", Title: "Handling Events", Duration: "11:50"},
				}},
				{ID: "m3", Title: "Building Real Applications", Lessons: []Lesson{
					{ID: "l7", Title: "Forms and Controlled Components", Duration: "16:40"},
					{ID: "l8", Title: "Routing with React Router", Duration: "20:10"},
					{ID: "l9", Title: "State Management with Context API", Duration: "22:35"},
					{ID: "l10", Title: "Final Project", Duration: "45:00"},
				}},
			},
		},
		{
			ID:           "2",
			Title:        "Advanced JavaScript Concepts",
			Instructor:   "Sarah Teacher",
			InstructorID: "102",
			Description:  "Deep dive into advanced JavaScript concepts like closures, prototypes, asynchronous programming, and more.",
			Category:     "Programming",
			Rating:       4.8,
			ReviewCount:  23,
			Students:     36,
			Price:        59.99,
			Image:        "https://source.unsplash.com/random/300x200?javascript",
			Published:    true,
			CreatedAt:    "2023-03-02",
			Modules: []Module{
				{ID: "m1", Title: "Functions in Depth", Lessons: []Lesson{
					{ID: "l1", Title: "Scope and Hoisting", Duration: "12:10"},
					{ID: "l2", Title: "Closures", Duration: "16:30"},
					{ID: "l3", Title: "The this Keyword", Duration: "14:05"},
					{ID: "l4", Title: "Higher-Order Functions", Duration: "13:20"},
				}},
				{ID: "m2", Title: "Objects and Prototypes", Lessons: []Lesson{
					{ID: "l5", Title: "Prototype Chains", Duration: "17:45"},
					{ID: "l6", Title: "Classes Under the Hood", Duration: "15:00"},
					{ID: "l7", Title: "Property Descriptors", Duration: "09:40"},
				}},
				{ID: "m3", Title: "Asynchronous JavaScript", Lessons: []Lesson{
					{ID: "l8", Title: "The Event Loop", Duration: "19:25"},
					{ID: "l9", Title: "Promises", Duration: "21:15"},
					{ID: "l10", Title: "Async and Await", Duration: "18:30"},
				}},
			},
		},
		{
			ID:           "3",
			Title:        "CSS and Tailwind Masterclass",
			Instructor:   "David Designer",
			InstructorID: "103",
			Description:  "Master modern CSS techniques and learn how to build beautiful interfaces with Tailwind CSS.",
			Category:     "Web Design",
			Rating:       4.5,
			ReviewCount:  14,
			Students:     29,
			Price:        44.99,
			Image:        "https://source.unsplash.com/random/300x200?css",
			Published:    true,
			CreatedAt:    "2023-05-20",
			Modules: []Module{
				{ID: "m1", Title: "Modern CSS", Lessons: []Lesson{
					{ID: "l1", Title: "Flexbox", Duration: "14:00"},
					{ID: "l2", Title: "Grid Layout", Duration: "18:20"},
					{ID: "l3", Title: "Custom Properties", Duration: "10:45"},
				}},
				{ID: "m2", Title: "Tailwind CSS", Lessons: []Lesson{
					{ID: "l4", Title: "Utility-First Styling", Duration: "12:30"},
					{ID: "l5", Title: "Building a Design System", Duration: "24:15"},
				}},
			},
		},
		{
			ID:           "4",
			Title:        "Node.js Backend Development",
			Instructor:   "Michael Server",
			InstructorID: "104",
			Description:  "Build robust backend services with Node.js, Express, and MongoDB.",
			Category:     "Backend Development",
			Rating:       4.6,
			ReviewCount:  31,
			Students:     42,
			Price:        54.99,
			Image:        "https://source.unsplash.com/random/300x200?nodejs",
			Published:    true,
			CreatedAt:    "2023-02-11",
			Modules: []Module{
				{ID: "m1", Title: "Node.js Basics", Lessons: []Lesson{
					{ID: "l1", Title: "Modules and npm", Duration: "11:25"},
					{ID: "l2", Title: "Streams and Buffers", Duration: "16:50"},
				}},
				{ID: "m2", Title: "Express", Lessons: []Lesson{
					{ID: "l3", Title: "Routing", Duration: "13:35"},
					{ID: "l4", Title: "Middleware", Duration: "15:10"},
				}},
				{ID: "m3", Title: "Persistence", Lessons: []Lesson{
					{ID: "l5", Title: "MongoDB and Mongoose", Duration: "22:00"},
					{ID: "l6", Title: "Authentication", Duration: "25:30"},
				}},
			},
		},
		{
			ID:           "5",
			Title:        "UI/UX Design Fundamentals",
			Instructor:   "Emma Creative",
			InstructorID: "105",
			Description:  "Learn the principles of user experience design and create beautiful user interfaces.",
			Category:     "Design",
			Rating:       4.9,
			ReviewCount:  27,
			Students:     38,
			Price:        64.99,
			Image:        "https://source.unsplash.com/random/300x200?design",
			Published:    true,
			CreatedAt:    "2023-06-08",
			Modules: []Module{
				{ID: "m1", Title: "Design Thinking", Lessons: []Lesson{
					{ID: "l1", Title: "User Research", Duration: "17:05"},
					{ID: "l2", Title: "Personas and Journeys", Duration: "13:40"},
				}},
				{ID: "m2", Title: "Visual Design", Lessons: []Lesson{
					{ID: "l3", Title: "Typography", Duration: "12:15"},
					{ID: "l4", Title: "Color Theory", Duration: "14:50"},
					{ID: "l5", Title: "Prototyping", Duration: "20:30"},
				}},
			},
		},
		{
			ID:           "6",
			Title:        "Full-Stack Web Development",
			Instructor:   "Robert Full",
			InstructorID: "106",
			Description:  "Comprehensive guide to becoming a full-stack developer with modern technologies.",
			Category:     "Web Development",
			Rating:       4.7,
			ReviewCount:  42,
			Students:     56,
			Price:        79.99,
			Image:        "https://source.unsplash.com/random/300x200?webdev",
			Published:    true,
			CreatedAt:    "2023-01-23",
			Modules: []Module{
				{ID: "m1", Title: "Frontend", Lessons: []Lesson{
					{ID: "l1", Title: "HTML and Semantics", Duration: "10:00"},
					{ID: "l2", Title: "Single Page Applications", Duration: "19:45"},
				}},
				{ID: "m2", Title: "Backend", Lessons: []Lesson{
					{ID: "l3", Title: "REST APIs", Duration: "18:10"},
					{ID: "l4", Title: "Databases", Duration: "21:35"},
				}},
				{ID: "m3", Title: "Shipping", Lessons: []Lesson{
					{ID: "l5", Title: "Testing", Duration: "16:25"},
					{ID: "l6", Title: "Deployment", Duration: "23:00"},
				}},
			},
		},
	}
}

// MockEnrollments maps the seeded student to the lessons completed per enrolled course.
func MockEnrollments() map[string]map[string][]string {
	return map[string]map[string][]string{
		user.MockStudentID: {
			"1": {"l1", "l2"},
			"2": {"l1", "l2", "l3"},
			"3": {"l1", "l2", "l3", "l4"},
		},
	}
}
