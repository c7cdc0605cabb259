package main

import (
	"log"
	"os"

	"github.com/trezcool/masomo-console/core"
	"github.com/trezcool/masomo-console/core/school"
	"github.com/trezcool/masomo-console/storage/inmem"
)

func main() {
	logger := log.New(os.Stderr, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	conf := core.NewConfig()
	validate := core.NewValidator(core.NewTranslator())

	// start CLI
	cli := commandLine{
		school: school.NewServices(inmemdb.NewSchoolRepos(conf.SeedMockData), validate),
		out:    os.Stdout,
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Printf("\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}
