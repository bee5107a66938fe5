package models

import "github.com/a-h/templ"

// NavItem is a single entry in a role area's sidebar. Items are static
// per role and never mutated at runtime.
type NavItem struct {
	Icon  string
	Label string
	Path  string
}

type Navigation struct {
	Items []NavItem
}

// LayoutTempl carries everything a layout shell needs to frame a page.
type LayoutTempl struct {
	Title      string
	User       *User
	Nav        Navigation
	ActivePath string
	Content    templ.Component
}

var StudentNav = Navigation{
	Items: []NavItem{
		{Icon: "dashboard", Label: "Dashboard", Path: "/student/dashboard"},
		{Icon: "briefcase", Label: "Jobs", Path: "/student/jobs"},
		{Icon: "building", Label: "Startups", Path: "/student/startups"},
		{Icon: "rss", Label: "Feed", Path: "/student/feed"},
		{Icon: "file", Label: "Applications", Path: "/student/applications"},
		{Icon: "user", Label: "Profile", Path: "/student/profile"},
	},
}

var StartupNav = Navigation{
	Items: []NavItem{
		{Icon: "dashboard", Label: "Dashboard", Path: "/startup/dashboard"},
		{Icon: "briefcase", Label: "Jobs", Path: "/startup/jobs"},
		{Icon: "users", Label: "Applicants", Path: "/startup/applicants"},
		{Icon: "megaphone", Label: "Updates", Path: "/startup/updates"},
		{Icon: "building", Label: "Profile", Path: "/startup/profile"},
	},
}

var AdminNav = Navigation{
	Items: []NavItem{
		{Icon: "dashboard", Label: "Dashboard", Path: "/admin/dashboard"},
		{Icon: "building", Label: "Startups", Path: "/admin/startups"},
		{Icon: "users", Label: "Users", Path: "/admin/users"},
		{Icon: "shield", Label: "Moderation", Path: "/admin/moderation"},
		{Icon: "chart", Label: "Analytics", Path: "/admin/analytics"},
	},
}

var PublicNav = Navigation{
	Items: []NavItem{
		{Icon: "home", Label: "Home", Path: "/"},
		{Icon: "login", Label: "Sign in", Path: "/login"},
		{Icon: "register", Label: "Get started", Path: "/register"},
	},
}
