// Package ui renders the HTML console: the admin & teacher portals' pages.
package ui

import (
	"fmt"

	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/trezcool/masomo-console/core/school"
)

// StylesheetPath is where the console's stylesheet is served.
const StylesheetPath = "/ui/static/console.css"

// Principal is the signed in user, as shown in the top bar.
type Principal struct {
	Name   string
	Portal string
}

type navItem struct {
	Label string
	Href  string
	Key   string
}

// PortalHome returns the home page of a portal.
func PortalHome(portal string) string {
	if portal == school.PortalTeacher {
		return "/ui/classroom"
	}
	return "/ui"
}

// ScreenPath returns the URL of a screen's listing.
func ScreenPath(screen school.Screen) string {
	return PortalHome(screen.Portal) + "/" + screen.Name
}

func navItems(portal string) []navItem {
	screens := school.AdminScreens()
	if portal == school.PortalTeacher {
		screens = school.TeacherScreens()
	}
	items := make([]navItem, 0, len(screens)+1)
	items = append(items, navItem{Label: "Dashboard", Href: PortalHome(portal), Key: "dashboard"})
	for _, s := range screens {
		items = append(items, navItem{Label: s.Title, Href: ScreenPath(s), Key: s.Name})
	}
	return items
}

func head(title string) Node {
	return Head(
		Meta(Charset("utf-8")),
		Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
		TitleEl(Text(title+" | Masomo")),
		Link(Rel("icon"), Href("data:,")),
		Link(Rel("stylesheet"), Href(StylesheetPath)),
	)
}

func appPage(title, active string, p Principal, body ...Node) Node {
	nav := make([]Node, 0, 8)
	for _, item := range navItems(p.Portal) {
		className := "nav-link"
		if item.Key == active {
			className += " active"
		}
		nav = append(nav, A(Href(item.Href), Class(className), Text(item.Label)))
	}

	portal := "Admin Portal"
	if p.Portal == school.PortalTeacher {
		portal = "Teacher Portal"
	}

	return Doctype(HTML(
		Lang("en"),
		head(title),
		Body(
			Main(Class("app-shell"),
				Aside(
					Class("app-sidebar"),
					Div(
						Class("brand"),
						Strong(Text("Masomo")),
						P(Class("muted"), Text(portal)),
					),
					Nav(Class("app-nav"), Group(nav)),
				),
				Section(
					Class("app-main"),
					Div(
						Class("topbar"),
						H1(Class("page-title"), Text(title)),
						Div(
							P(Class("muted"), Text("Signed in as "+p.Name)),
							Form(
								Method("post"),
								Action("/ui/logout"),
								Button(Type("submit"), Class("btn btn-sm"), Text("Sign out")),
							),
						),
					),
					Div(Class("content"), Group(body)),
				),
			),
		),
	))
}

// LoginPage is the sign in form. errMsg is shown above the form when set.
func LoginPage(username, errMsg string) Node {
	content := []Node{
		H1(Text("Masomo")),
		P(Class("muted"), Text("Sign in to the school console.")),
	}
	if errMsg != "" {
		content = append(content, P(Class("error"), Text(fmt.Sprintf("Error: %s", errMsg))))
	}
	content = append(content,
		Form(
			Method("post"),
			Action("/ui/login"),
			Class("login-form"),
			Label(For("username"), Text("Username or email")),
			Input(ID("username"), Name("username"), Value(username), Required()),
			Label(For("password"), Text("Password")),
			Input(ID("password"), Name("password"), Type("password"), Required()),
			Button(Type("submit"), Class("btn btn-primary"), Text("Sign In")),
		),
	)

	return Doctype(HTML(
		Lang("en"),
		head("Sign in"),
		Body(
			Class("login-body"),
			Main(Class("login-wrap"), Group(content)),
		),
	))
}

// ErrorPage is shown for console errors (unknown pages, missing records...).
func ErrorPage(p Principal, title, message string) Node {
	return appPage(title, "", p,
		Div(Class("card"),
			P(Text(message)),
			P(A(Href(PortalHome(p.Portal)), Text("Back to dashboard"))),
		),
	)
}
