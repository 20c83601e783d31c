package user

const (
	MockInstructorID = "1"
	MockStudentID    = "2"
	MockPassword     = "password123"
)

// MockCredentials returns a fresh copy of the seed credentials.
func MockCredentials() []Credential {
	return []Credential{
		{
			Identity: Identity{
				ID:    MockInstructorID,
				Name:  "John Instructor",
				Email: "instructor@example.com",
				Role:  RoleInstructor,
			},
			Secret: MockPassword,
		},
		{
			Identity: Identity{
				ID:    MockStudentID,
				Name:  "Jane Student",
				Email: "student@example.com",
				Role:  RoleStudent,
			},
			Secret: MockPassword,
		},
	}
}
