package user

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/trezcool/masomo-console/core"
)

var honorifics = map[string]bool{"dr.": true, "mr.": true, "mrs.": true, "ms.": true, "prof.": true}

// TeacherUsername derives a teacher account's username from the teacher's name:
// "Dr. Robert Chen" -> "robert.chen".
func TeacherUsername(name string) string {
	parts := make([]string, 0, 3)
	for _, p := range strings.Fields(strings.ToLower(name)) {
		if !honorifics[p] {
			parts = append(parts, strings.Trim(p, "."))
		}
	}
	return strings.Join(parts, ".")
}

// Seed creates the admin account from conf along with one account per teacher, if missing.
// Empty passwords are generated and logged.
func Seed(ctx context.Context, svc Service, conf *core.Config, logger core.Logger, teachers []string) error {
	admin := NewUser{
		Name:     "Administrator",
		Username: conf.Admin.Username,
		Email:    conf.Admin.Email,
		Password: conf.Admin.Password,
		Roles:    []string{RoleAdminOwner},
	}
	if err := seedUser(ctx, svc, logger, admin); err != nil {
		return errors.Wrap(err, "seeding admin")
	}

	for _, name := range teachers {
		nu := NewUser{
			Name:     name,
			Username: TeacherUsername(name),
			Password: conf.Admin.TeacherPassword,
			Roles:    []string{RoleTeacher},
			Teacher:  name,
		}
		if err := seedUser(ctx, svc, logger, nu); err != nil {
			return errors.Wrapf(err, "seeding teacher %q", name)
		}
	}
	return nil
}

func seedUser(ctx context.Context, svc Service, logger core.Logger, nu NewUser) error {
	if _, err := svc.GetByUsernameOrEmail(ctx, nu.Username); err == nil {
		return nil
	} else if errors.Cause(err) != ErrNotFound {
		return err
	}

	if nu.Password == "" {
		nu.Password = strings.ReplaceAll(uuid.New().String(), "-", "")[:12]
		logger.Info(fmt.Sprintf("generated password for %q: %s", nu.Username, nu.Password))
	}
	nu.PasswordConfirm = nu.Password
	_, err := svc.Create(ctx, nu)
	return err
}
