package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/masomo-console/core"
	"github.com/trezcool/masomo-console/core/school"
	"github.com/trezcool/masomo-console/core/table"
)

const contextResourceKey = "resource"

type schoolApi struct {
	conf *core.Config
	svc  *school.Services
}

func registerSchoolAPI(g *echo.Group, jwt echo.MiddlewareFunc, deps ServerDeps) {
	api := schoolApi{
		conf: deps.Conf,
		svc:  deps.School,
	}

	// teacher portal
	tg := g.Group("/classroom", jwt, teacherMiddleware)
	tg.GET("/dashboard", api.teacherDashboard)
	tg.GET("/:screen", api.teacherList)

	// admin portal
	g.GET("/dashboard", api.dashboard, jwt, adminMiddleware())
	g.GET("/screens", api.screens, jwt, adminMiddleware())

	rg := g.Group("/:resource", jwt, adminMiddleware(), resourceMiddleware(api.svc))
	rg.GET("", api.list)
	rg.POST("", api.create)
	rg.DELETE("", api.destroyMultiple)
	rg.GET("/:id", api.retrieve)
	rg.PUT("/:id", api.update)
	rg.DELETE("/:id", api.destroy)
}

// resourceMiddleware resolves the :resource path param to its school.Resource.
func resourceMiddleware(svc *school.Services) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			r, ok := svc.Resource(ctx.Param("resource"))
			if !ok {
				return errHttpNotFound
			}
			ctx.Set(contextResourceKey, r)
			return next(ctx)
		}
	}
}

func contextResource(ctx echo.Context) school.Resource {
	return ctx.Get(contextResourceKey).(school.Resource)
}

// ListResponse is a listing's page: the table view (flattened) along with its screen.
type ListResponse struct {
	Screen school.Screen `json:"screen"`
	table.View
	Summary string `json:"summary,omitempty"`
}

func newListResponse(screen school.Screen, v table.View) ListResponse {
	resp := ListResponse{Screen: screen, View: v}
	if v.ShowPagination() {
		resp.Summary = v.Summary()
	}
	return resp
}

func (api *schoolApi) listing(ctx echo.Context, screen school.Screen, rows []table.Row, opts ...table.Option) error {
	var query TableQuery
	if err := query.Bind(ctx, api.conf.Table.PageSize); err != nil {
		return err
	}
	tbl, err := query.Table(screen, rows, opts...)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, newListResponse(screen, tbl.View()))
}

// Handlers

func (api *schoolApi) screens(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, echo.Map{
		school.PortalAdmin:   school.AdminScreens(),
		school.PortalTeacher: school.TeacherScreens(),
	})
}

func (api *schoolApi) dashboard(ctx echo.Context) error {
	d, err := api.svc.Dashboard(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "building dashboard")
	}
	return ctx.JSON(http.StatusOK, d)
}

func (api *schoolApi) list(ctx echo.Context) error {
	r := contextResource(ctx)
	rows, err := r.Rows(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "querying rows")
	}
	screen := r.Screen()
	return api.listing(ctx, screen, rows, table.WithActions(screen.RowActions("/v1/"+screen.Name)))
}

func (api *schoolApi) create(ctx echo.Context) error {
	r := contextResource(ctx)
	obj, err := r.CreateFrom(ctx.Request().Context(), func(form interface{}) error {
		return errors.Wrap(ctx.Bind(form), "binding form")
	})
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, obj)
}

func (api *schoolApi) retrieve(ctx echo.Context) error {
	obj, err := contextResource(ctx).Find(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "finding record")
	}
	return ctx.JSON(http.StatusOK, obj)
}

func (api *schoolApi) update(ctx echo.Context) error {
	r := contextResource(ctx)
	obj, err := r.UpdateFrom(ctx.Request().Context(), ctx.Param("id"), func(form interface{}) error {
		return errors.Wrap(ctx.Bind(form), "binding form")
	})
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, obj)
}

func (api *schoolApi) destroy(ctx echo.Context) error {
	r := contextResource(ctx)
	if _, err := r.Find(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return errors.Wrap(err, "finding record")
	}
	if err := r.Delete(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return errors.Wrap(err, "deleting record")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *schoolApi) destroyMultiple(ctx echo.Context) error {
	ids := idsParam(ctx)
	if len(ids) == 0 {
		return ctx.NoContent(http.StatusNoContent)
	}
	if err := contextResource(ctx).Delete(ctx.Request().Context(), ids...); err != nil {
		return errors.Wrap(err, "deleting records")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *schoolApi) teacherDashboard(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context claims")
	}
	d, err := api.svc.TeacherDashboard(ctx.Request().Context(), claims.Teacher)
	if err != nil {
		return errors.Wrap(err, "building teacher dashboard")
	}
	return ctx.JSON(http.StatusOK, d)
}

func (api *schoolApi) teacherList(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context claims")
	}
	screen, rows, err := api.svc.ScreenRows(ctx.Request().Context(), school.PortalTeacher, ctx.Param("screen"), claims.Teacher)
	if err != nil {
		return errors.Wrap(err, "querying screen rows")
	}
	return api.listing(ctx, screen, rows)
}
