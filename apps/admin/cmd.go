package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/trezcool/masomo-console/core/school"
)

var (
	readPasswordFunc = term.ReadPassword // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	school *school.Services
	out    io.Writer
}

// sortFlag collects repeated -sort flags; each one is a click on the column header.
type sortFlag []string

func (f *sortFlag) String() string { return strings.Join(*f, ",") }

func (f *sortFlag) Set(key string) error {
	*f = append(*f, key)
	return nil
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  screens - list the console screens")
	fmt.Fprintln(cli.out, "  list -screen NAME [-portal admin|teacher] [-teacher NAME] [-search TEXT] [-sort KEY]... [-page N] [-page-size N] - print a screen's listing")
	fmt.Fprintln(cli.out, "  hashpassword - hash a password, prompted next")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	listCmd := flag.NewFlagSet("list", flag.ContinueOnError)
	listCmd.SetOutput(cli.out)
	var opts listOptions
	listCmd.StringVar(&opts.screen, "screen", "", "The screen to list, eg. students.")
	listCmd.StringVar(&opts.portal, "portal", school.PortalAdmin, "The portal the screen belongs to: admin or teacher.")
	listCmd.StringVar(&opts.teacher, "teacher", "", "The teacher whose classes are listed (teacher portal).")
	listCmd.StringVar(&opts.search, "search", "", "Only keep the rows matching the search text.")
	listCmd.Var(&opts.sorts, "sort", "Toggle the sort on a column; repeat to flip the direction.")
	listCmd.IntVar(&opts.page, "page", 1, "The page to print.")
	listCmd.IntVar(&opts.pageSize, "page-size", 10, "The rows per page.")

	switch args[1] {
	case "screens":
		return cli.screens()
	case "list":
		if err := listCmd.Parse(args[2:]); err != nil {
			if err == flag.ErrHelp {
				return errHelp
			}
			return err
		}
		if opts.screen == "" {
			listCmd.Usage()
			return errHelp
		}
		return cli.list(opts)
	case "hashpassword":
		fmt.Fprint(cli.out, "Enter password:")
		pwd, err := readPasswordFunc(int(syscall.Stdin))
		fmt.Fprintln(cli.out)
		if err != nil {
			return err
		}
		if len(pwd) == 0 {
			cli.printUsage()
			return errHelp
		}
		return cli.hashPassword(string(pwd))
	default:
		cli.printUsage()
		return errHelp
	}
}
