package models

import "time"

// Payload shapes returned by the jobs/recommendations backend. The
// backend is an external collaborator; these structs only declare the
// fields the pages render.

type Job struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	StartupID   string   `json:"startup_id"`
	StartupName string   `json:"startup_name"`
	Location    string   `json:"location"`
	Type        string   `json:"type"`
	Salary      string   `json:"salary"`
	Tags        []string `json:"tags"`
	Description string   `json:"description"`
	PostedAt    time.Time `json:"posted_at"`
}

type Application struct {
	ID        string    `json:"id"`
	JobID     string    `json:"job_id"`
	JobTitle  string    `json:"job_title"`
	StudentID string    `json:"student_id"`
	Status    string    `json:"status"`
	AppliedAt time.Time `json:"applied_at"`
}

type Startup struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Tagline     string `json:"tagline"`
	Industry    string `json:"industry"`
	Location    string `json:"location"`
	TeamSize    int    `json:"team_size"`
	Description string `json:"description"`
	OpenRoles   int    `json:"open_roles"`
}

type StartupUpdate struct {
	ID        string    `json:"id"`
	StartupID string    `json:"startup_id"`
	Startup   string    `json:"startup_name"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	PostedAt  time.Time `json:"posted_at"`
}

type Applicant struct {
	ID        string    `json:"id"`
	JobID     string    `json:"job_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Status    string    `json:"status"`
	AppliedAt time.Time `json:"applied_at"`
}

// ProfileKind discriminates the Profile union.
type ProfileKind string

const (
	ProfileKindStudent ProfileKind = "student"
	ProfileKindStartup ProfileKind = "startup"
)

type StudentProfile struct {
	UserID     string   `json:"user_id"`
	FullName   string   `json:"full_name"`
	University string   `json:"university"`
	Degree     string   `json:"degree"`
	GradYear   int      `json:"grad_year"`
	Skills     []string `json:"skills"`
	Bio        string   `json:"bio"`
}

type StartupProfileData struct {
	UserID      string `json:"user_id"`
	CompanyName string `json:"company_name"`
	Website     string `json:"website"`
	Industry    string `json:"industry"`
	TeamSize    int    `json:"team_size"`
	Pitch       string `json:"pitch"`
}

// Profile is a tagged union over the two profile variants. Exactly one
// variant is non-nil and it must agree with Kind; consumers switch on
// Kind exhaustively instead of probing fields.
type Profile struct {
	Kind    ProfileKind
	Student *StudentProfile
	Startup *StartupProfileData
}

func NewStudentProfile(p *StudentProfile) Profile {
	return Profile{Kind: ProfileKindStudent, Student: p}
}

func NewStartupProfile(p *StartupProfileData) Profile {
	return Profile{Kind: ProfileKindStartup, Startup: p}
}
