package main

import (
	"context"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"

	"github.com/trezcool/masomo-console/core/school"
	"github.com/trezcool/masomo-console/core/table"
)

type listOptions struct {
	screen   string
	portal   string
	teacher  string
	search   string
	sorts    sortFlag
	page     int
	pageSize int
}

var errTeacherRequired = errors.New("-teacher is required on the teacher portal")

// list prints one page of a screen, in the state described by opts.
func (cli *commandLine) list(opts listOptions) error {
	if opts.portal == school.PortalTeacher && opts.teacher == "" {
		return errTeacherRequired
	}
	if opts.pageSize < 1 || opts.pageSize > table.MaxPageSize {
		return errors.Errorf("-page-size must be between 1 and %d", table.MaxPageSize)
	}

	screen, rows, err := cli.school.ScreenRows(context.Background(), opts.portal, opts.screen, opts.teacher)
	if err != nil {
		return errors.Wrapf(err, "listing %s/%s", opts.portal, opts.screen)
	}

	tbl := table.New(screen.Columns, rows, table.WithPageSize(opts.pageSize))
	tbl.SetSearchText(opts.search)
	for _, key := range opts.sorts {
		if err := tbl.SetSort(key); err != nil {
			return err
		}
	}
	tbl.SetPage(opts.page)

	cli.render(screen, tbl.View())
	return nil
}

func (cli *commandLine) render(screen school.Screen, v table.View) {
	fmt.Fprintf(cli.out, "%s - %s\n", screen.Title, screen.Description)

	tw := tablewriter.NewWriter(cli.out)
	tw.SetAutoFormatHeaders(false)
	tw.SetAutoWrapText(false)
	tw.SetAlignment(tablewriter.ALIGN_LEFT)

	header := make([]string, len(v.Columns))
	for i, col := range v.Columns {
		header[i] = col.Label + sortIndicator(col)
	}
	tw.SetHeader(header)

	for _, row := range v.Rows {
		cells := make([]string, len(row.Cells))
		for i, cell := range row.Cells {
			cells[i] = cell.Text
		}
		tw.Append(cells)
	}
	if v.Empty() {
		placeholder := make([]string, len(v.Columns))
		placeholder[0] = v.Placeholder
		tw.Append(placeholder)
	}
	tw.Render()

	if v.ShowPagination() {
		fmt.Fprintf(cli.out, "%s | %s\n", v.Summary(), v.PageLabel())
	}
}

func sortIndicator(col table.HeaderCell) string {
	switch col.Direction {
	case table.Asc:
		return " ↑"
	case table.Desc:
		return " ↓"
	}
	return ""
}

// screens prints the screens of both portals.
func (cli *commandLine) screens() error {
	tw := tablewriter.NewWriter(cli.out)
	tw.SetAutoFormatHeaders(false)
	tw.SetHeader([]string{"Portal", "Screen", "Title", "Description"})
	for _, screens := range [][]school.Screen{school.AdminScreens(), school.TeacherScreens()} {
		for _, s := range screens {
			tw.Append([]string{s.Portal, s.Name, s.Title, s.Description})
		}
	}
	tw.Render()
	return nil
}
