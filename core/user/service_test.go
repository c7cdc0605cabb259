package user_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/masomo-console/core"
	"github.com/trezcool/masomo-console/core/user"
	"github.com/trezcool/masomo-console/storage/inmem"
)

type nopLogger struct{ infos []string }

func (l *nopLogger) Debug(string, ...interface{}) {}
func (l *nopLogger) Info(msg string, _ ...interface{}) { l.infos = append(l.infos, msg) }
func (l *nopLogger) Warn(string, ...interface{}) {}
func (l *nopLogger) Error(string, ...interface{}) {}
func (l *nopLogger) Fatal(string, ...interface{}) {}

func TestNewUser_Validate(t *testing.T) {
	ctx := context.Background()
	translator := core.NewTranslator()
	validate := core.NewValidator(translator)
	user.InitValidators(validate, translator)
	svc := user.NewService(inmemdb.NewUserRepository())

	_, err := svc.Create(ctx, user.NewUser{Name: "Admin", Username: "admin", Email: "admin@test.cd", Password: "pwd"})
	require.NoError(t, err)

	tests := []struct {
		name       string
		nu         user.NewUser
		wantFields []string
	}{
		{
			name: "valid",
			nu:   user.NewUser{Name: "Robert", Username: " Robert.Chen ", Password: "pwd", PasswordConfirm: "pwd", Roles: []string{user.RoleTeacher}},
		},
		{
			name:       "no username nor email",
			nu:         user.NewUser{Name: "Robert", Password: "pwd", PasswordConfirm: "pwd"},
			wantFields: []string{"username", "email"},
		},
		{
			name:       "passwords mismatch",
			nu:         user.NewUser{Name: "Robert", Username: "robert", Password: "pwd", PasswordConfirm: "pwd2"},
			wantFields: []string{"password_confirm"},
		},
		{
			name:       "unknown role",
			nu:         user.NewUser{Name: "Robert", Username: "robert", Password: "pwd", PasswordConfirm: "pwd", Roles: []string{"student:"}},
			wantFields: []string{"roles"},
		},
		{
			name:       "username taken",
			nu:         user.NewUser{Name: "Other", Username: "ADMIN", Password: "pwd", PasswordConfirm: "pwd"},
			wantFields: []string{"username"},
		},
		{
			name:       "email taken",
			nu:         user.NewUser{Name: "Other", Email: "Admin@Test.cd", Password: "pwd", PasswordConfirm: "pwd"},
			wantFields: []string{"email"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nu := tt.nu
			err := nu.Validate(ctx, validate, svc)
			if len(tt.wantFields) == 0 {
				assert.NoError(t, err)
				assert.Equal(t, "robert.chen", nu.Username)
				return
			}
			fields, ok := core.FieldErrors(err, translator)
			require.True(t, ok, "Validate() error = %v", err)
			for _, f := range tt.wantFields {
				assert.Contains(t, fields, f)
			}
		})
	}
}

func TestTeacherUsername(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{name: "Dr. Robert Chen", want: "robert.chen"},
		{name: "Ms. Sarah Johnson", want: "sarah.johnson"},
		{name: "Mrs. Emily  Davis", want: "emily.davis"},
		{name: "Plato", want: "plato"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := user.TeacherUsername(tt.name); got != tt.want {
				t.Errorf("TeacherUsername() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSeed(t *testing.T) {
	ctx := context.Background()
	conf := core.NewTestConfig()
	svc := user.NewService(inmemdb.NewUserRepository())
	logger := new(nopLogger)
	teachers := []string{"Dr. Robert Chen", "Ms. Sarah Johnson"}

	require.NoError(t, user.Seed(ctx, svc, conf, logger, teachers))
	// seeding twice is a no-op
	require.NoError(t, user.Seed(ctx, svc, conf, logger, teachers))

	users, err := svc.QueryAll(ctx)
	require.NoError(t, err)
	require.Len(t, users, 3)
	assert.Empty(t, logger.infos)

	admin, err := svc.GetByUsernameOrEmail(ctx, conf.Admin.Email)
	require.NoError(t, err)
	assert.True(t, admin.IsAdmin())
	assert.False(t, admin.IsTeacher())
	assert.NoError(t, admin.CheckPassword(conf.Admin.Password))

	chen, err := svc.GetByUsernameOrEmail(ctx, "Robert.Chen")
	require.NoError(t, err)
	assert.True(t, chen.IsTeacher())
	assert.Equal(t, "Dr. Robert Chen", chen.Teacher)
	assert.NoError(t, chen.CheckPassword(conf.Admin.TeacherPassword))
	assert.Error(t, chen.CheckPassword("nope"))

	// passwords are generated when not configured
	conf.Admin.Username = "owner"
	conf.Admin.Email = "owner@test.cd"
	conf.Admin.Password = ""
	require.NoError(t, user.Seed(ctx, svc, conf, logger, nil))
	assert.Len(t, logger.infos, 1)
}

func TestChangePassword(t *testing.T) {
	ctx := context.Background()
	translator := core.NewTranslator()
	validate := core.NewValidator(translator)
	svc := user.NewService(inmemdb.NewUserRepository())

	usr, err := svc.Create(ctx, user.NewUser{Name: "Robert", Username: "robert.chen", Password: "old"})
	require.NoError(t, err)

	tests := []struct {
		name       string
		cp         user.ChangePassword
		wantFields []string
	}{
		{
			name:       "missing fields",
			wantFields: []string{"current_password", "password", "password_confirm"},
		},
		{
			name:       "passwords mismatch",
			cp:         user.ChangePassword{CurrentPassword: "old", Password: "new", PasswordConfirm: "neW"},
			wantFields: []string{"password_confirm"},
		},
		{
			name:       "wrong current password",
			cp:         user.ChangePassword{CurrentPassword: "nope", Password: "new", PasswordConfirm: "new"},
			wantFields: []string{"current_password"},
		},
		{
			name: "valid",
			cp:   user.ChangePassword{CurrentPassword: "old", Password: "new", PasswordConfirm: "new"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cp.Validate(validate, usr)
			if len(tt.wantFields) == 0 {
				assert.NoError(t, err)
				return
			}
			fields, ok := core.FieldErrors(err, translator)
			require.True(t, ok, "Validate() error = %v", err)
			assert.Len(t, fields, len(tt.wantFields))
			for _, f := range tt.wantFields {
				assert.Contains(t, fields, f)
			}
		})
	}

	updated, err := svc.SetPassword(ctx, usr, "new")
	require.NoError(t, err)
	assert.NoError(t, updated.CheckPassword("new"))
	assert.True(t, updated.UpdatedAt.After(usr.UpdatedAt) || updated.UpdatedAt.Equal(usr.UpdatedAt))

	stored, err := svc.GetByID(ctx, usr.ID)
	require.NoError(t, err)
	assert.NoError(t, stored.CheckPassword("new"))
	assert.Error(t, stored.CheckPassword("old"))
}
