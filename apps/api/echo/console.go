package echoapi

import (
	"fmt"
	"net/http"
	"net/url"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	g "maragu.dev/gomponents"

	"github.com/trezcool/masomo-console/apps/ui"
	"github.com/trezcool/masomo-console/core"
	"github.com/trezcool/masomo-console/core/school"
	"github.com/trezcool/masomo-console/core/table"
	"github.com/trezcool/masomo-console/core/user"
)

// console serves the HTML console: the admin portal under /ui, the teacher portal under /ui/classroom.
type console struct {
	conf       *core.Config
	logger     core.Logger
	usrSvc     user.Service
	svc        *school.Services
	validate   *validator.Validate
	translator ut.Translator
}

func registerConsole(e *echo.Echo, deps ServerDeps) {
	c := console{
		conf:       deps.Conf,
		logger:     deps.Logger,
		usrSvc:     deps.UserSvc,
		svc:        deps.School,
		validate:   deps.Validate,
		translator: deps.Translator,
	}

	e.GET(ui.StylesheetPath, c.stylesheet)
	e.GET("/ui/login", c.loginForm)
	e.POST("/ui/login", c.login)
	e.POST("/ui/logout", c.logout)

	auth := cookieAuthMiddleware(c.conf)
	e.GET("/ui", c.dashboard, auth, c.portal(school.PortalAdmin))
	e.GET("/ui/:screen", c.list, auth, c.portal(school.PortalAdmin))
	e.GET("/ui/:screen/:id", c.detail, auth, c.portal(school.PortalAdmin))
	e.DELETE("/ui/:screen/:id", c.destroy, auth, c.portal(school.PortalAdmin))

	e.GET("/ui/classroom", c.teacherDashboard, auth, c.portal(school.PortalTeacher))
	e.GET("/ui/classroom/:screen", c.teacherList, auth, c.portal(school.PortalTeacher))
}

func render(ctx echo.Context, code int, node g.Node) error {
	ctx.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	ctx.Response().WriteHeader(code)
	return node.Render(ctx.Response())
}

const contextPortalKey = "portal"

// homePortal is the portal users land on: admins get the admin portal.
func homePortal(claims Claims) string {
	if !claims.IsAdmin && claims.IsTeacher {
		return school.PortalTeacher
	}
	return school.PortalAdmin
}

func principal(ctx echo.Context) ui.Principal {
	claims, _ := getContextClaims(ctx)
	portal, ok := ctx.Get(contextPortalKey).(string)
	if !ok {
		portal = homePortal(claims)
	}
	p := ui.Principal{Name: claims.Username, Portal: portal}
	if portal == school.PortalTeacher && claims.Teacher != "" {
		p.Name = claims.Teacher
	}
	return p
}

// portal sends users to their own portal: teachers never see the admin portal and vice versa.
func (c *console) portal(portal string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			claims, err := getContextClaims(ctx)
			if err != nil {
				return ctx.Redirect(http.StatusSeeOther, "/ui/login")
			}
			if (portal == school.PortalAdmin && claims.IsAdmin) ||
				(portal == school.PortalTeacher && claims.IsTeacher && claims.Teacher != "") {
				ctx.Set(contextPortalKey, portal)
				return next(ctx)
			}
			if home := homePortal(claims); home != portal && (claims.IsAdmin || claims.IsTeacher) {
				return ctx.Redirect(http.StatusSeeOther, ui.PortalHome(home))
			}
			return render(ctx, http.StatusForbidden, ui.ErrorPage(principal(ctx), "Forbidden", "You do not have access to this portal."))
		}
	}
}

// notFound renders the error page for missing screens & records; other errors go to the error handler.
func (c *console) notFound(ctx echo.Context, err error) error {
	switch errors.Cause(err) {
	case school.ErrNotFound, school.ErrUnknownScreen:
		return render(ctx, http.StatusNotFound, ui.ErrorPage(principal(ctx), "Not Found", "The page you are looking for does not exist."))
	}
	return err
}

// badQuery renders the listing errors (invalid page, unsortable column...) as a page.
func (c *console) badQuery(ctx echo.Context, err error) error {
	fields, ok := core.FieldErrors(err, c.translator)
	if !ok {
		return err
	}
	msg := "invalid query"
	for field, fErr := range fields {
		msg = field + ": " + fErr
		break
	}
	return render(ctx, http.StatusBadRequest, ui.ErrorPage(principal(ctx), "Bad Request", msg))
}

func (c *console) table(ctx echo.Context, screen school.Screen, rows []table.Row, opts ...table.Option) (*table.Table, error) {
	var query TableQuery
	if err := query.Bind(ctx, c.conf.Table.PageSize); err != nil {
		return nil, err
	}
	return query.Table(screen, rows, opts...)
}

// Handlers

func (c *console) stylesheet(ctx echo.Context) error {
	return ctx.Blob(http.StatusOK, "text/css; charset=utf-8", []byte(ui.Stylesheet))
}

func (c *console) loginForm(ctx echo.Context) error {
	return render(ctx, http.StatusOK, ui.LoginPage("", ""))
}

func (c *console) login(ctx echo.Context) error {
	var data LoginRequest
	if err := ctx.Bind(&data); err != nil {
		return render(ctx, http.StatusBadRequest, ui.LoginPage("", "invalid form"))
	}
	if err := data.Validate(c.validate); err != nil {
		return render(ctx, http.StatusBadRequest, ui.LoginPage(data.Username, "username and password are required"))
	}

	claims, usr, err := authenticate(ctx.Request().Context(), c.conf, data.Username, data.Password, c.usrSvc)
	if err != nil {
		if herr, ok := errors.Cause(err).(*echo.HTTPError); ok {
			return render(ctx, herr.Code, ui.LoginPage(data.Username, fmt.Sprint(herr.Message)))
		}
		return errors.Wrap(err, "authenticating")
	}
	token, err := GenerateToken(c.conf, claims)
	if err != nil {
		return errors.Wrap(err, "generating token")
	}

	ctx.SetCookie(newTokenCookie(c.conf, token))
	c.logger.Debug("console login", usr)
	return ctx.Redirect(http.StatusSeeOther, ui.PortalHome(homePortal(*claims)))
}

func (c *console) logout(ctx echo.Context) error {
	cookie := newTokenCookie(c.conf, "")
	cookie.MaxAge = -1
	ctx.SetCookie(cookie)
	return ctx.Redirect(http.StatusSeeOther, "/ui/login")
}

func (c *console) dashboard(ctx echo.Context) error {
	d, err := c.svc.Dashboard(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "building dashboard")
	}
	return render(ctx, http.StatusOK, ui.DashboardPage(principal(ctx), d))
}

func (c *console) list(ctx echo.Context) error {
	r, ok := c.svc.Resource(ctx.Param("screen"))
	if !ok {
		return c.notFound(ctx, school.ErrUnknownScreen)
	}
	rows, err := r.Rows(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "querying rows")
	}

	screen := r.Screen()
	actions := screen.RowActions(ui.ScreenPath(screen), school.ActionView, school.ActionDelete)
	tbl, err := c.table(ctx, screen, rows, table.WithActions(actions))
	if err != nil {
		return c.badQuery(ctx, err)
	}
	return render(ctx, http.StatusOK, ui.ScreenPage(principal(ctx), screen, tbl.View()))
}

func (c *console) detail(ctx echo.Context) error {
	r, ok := c.svc.Resource(ctx.Param("screen"))
	if !ok {
		return c.notFound(ctx, school.ErrUnknownScreen)
	}
	obj, err := r.Find(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return c.notFound(ctx, err)
	}
	row, ok := obj.(interface{ Record() table.Record })
	if !ok {
		return errors.Errorf("%T is not a record", obj)
	}
	return render(ctx, http.StatusOK, ui.DetailPage(principal(ctx), r.Screen(), ctx.Param("id"), row.Record()))
}

func (c *console) destroy(ctx echo.Context) error {
	r, ok := c.svc.Resource(ctx.Param("screen"))
	if !ok {
		return c.notFound(ctx, school.ErrUnknownScreen)
	}
	if _, err := r.Find(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return c.notFound(ctx, err)
	}
	if err := r.Delete(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return errors.Wrap(err, "deleting record")
	}

	// back to the listing, in the state it was left
	back := ui.ScreenPath(r.Screen())
	if ref, err := url.Parse(ctx.Request().Referer()); err == nil && ref.Path == back {
		back += "?" + ref.RawQuery
	}
	return ctx.Redirect(http.StatusSeeOther, back)
}

func (c *console) teacherDashboard(ctx echo.Context) error {
	p := principal(ctx)
	claims, _ := getContextClaims(ctx)
	d, err := c.svc.TeacherDashboard(ctx.Request().Context(), claims.Teacher)
	if err != nil {
		return errors.Wrap(err, "building teacher dashboard")
	}
	return render(ctx, http.StatusOK, ui.TeacherDashboardPage(p, d))
}

func (c *console) teacherList(ctx echo.Context) error {
	claims, _ := getContextClaims(ctx)
	screen, rows, err := c.svc.ScreenRows(ctx.Request().Context(), school.PortalTeacher, ctx.Param("screen"), claims.Teacher)
	if err != nil {
		return c.notFound(ctx, err)
	}
	tbl, err := c.table(ctx, screen, rows)
	if err != nil {
		return c.badQuery(ctx, err)
	}
	return render(ctx, http.StatusOK, ui.ScreenPage(principal(ctx), screen, tbl.View()))
}
