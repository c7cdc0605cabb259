package testutil

import (
	"context"
	"io/ioutil"
	"log"
	"testing"
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/masomo-console/core"
	"github.com/trezcool/masomo-console/core/school"
	"github.com/trezcool/masomo-console/core/user"
	logsvc "github.com/trezcool/masomo-console/services/logger"
	"github.com/trezcool/masomo-console/storage/inmem"
)

// Deps are the app dependencies, wired over fresh in-memory repositories holding the mock records.
type Deps struct {
	Conf       *core.Config
	Logger     *logsvc.RollbarLogger
	UsrRepo    user.Repository
	UsrSvc     user.Service
	School     *school.Services
	Validate   *validator.Validate
	Translator ut.Translator
}

func NewDeps() Deps {
	conf := core.NewTestConfig()
	logger := logsvc.NewRollbarLogger(log.New(ioutil.Discard, "", 0), conf)
	logger.Enable(false)

	translator := core.NewTranslator()
	validate := core.NewValidator(translator)
	user.InitValidators(validate, translator)

	return Deps{
		Conf:       conf,
		Logger:     logger,
		Validate:   validate,
		Translator: translator,
	}.Fresh()
}

// Fresh returns a copy of d over new in-memory repositories; config, logger & validator are shared.
func (d Deps) Fresh() Deps {
	d.UsrRepo = inmemdb.NewUserRepository()
	d.UsrSvc = user.NewService(d.UsrRepo)
	d.School = school.NewServices(inmemdb.NewSchoolRepos(true), d.Validate)
	return d
}

func CreateUser(
	t *testing.T,
	repo user.Repository,
	name, uname, email, pwd string,
	roles []string,
	isActive bool,
	teacher ...string,
) user.User {
	tstamp := time.Now().UTC()
	usr := user.User{
		Name:      name,
		Username:  uname,
		Email:     email,
		Roles:     roles,
		IsActive:  isActive,
		CreatedAt: tstamp,
		UpdatedAt: tstamp,
	}
	if len(teacher) > 0 {
		usr.Teacher = teacher[0]
	}
	if pwd != "" {
		if err := usr.SetPassword(pwd); err != nil {
			t.Fatalf("createUser() failed: %v", err)
		}
	}
	usr, err := repo.CreateUser(context.Background(), usr)
	if err != nil {
		t.Fatalf("createUser() failed: %v", err)
	}
	return usr
}
