package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/trezcool/masomo-console/core"
	"github.com/trezcool/masomo-console/core/school"
	"github.com/trezcool/masomo-console/core/table"
	"github.com/trezcool/masomo-console/storage/inmem"
)

func setup(t *testing.T) (*commandLine, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	return &commandLine{
		school: school.NewServices(inmemdb.NewSchoolRepos(true), core.NewValidator(core.NewTranslator())),
		out:    &out,
	}, &out
}

type cliTest struct {
	name       string
	args       []string // without program name
	wantErr    error
	wantErrStr string
	wantOut    []string
	notOut     []string
}

func Test_commandLine_list(t *testing.T) {
	tests := []cliTest{
		{name: "no command", wantErr: errHelp},
		{name: "unknown command", args: []string{"lol"}, wantErr: errHelp},
		{name: "no screen", args: []string{"list"}, wantErr: errHelp},
		{name: "unknown screen", args: []string{"list", "-screen", "lol"}, wantErr: school.ErrUnknownScreen},
		{name: "teacher screen of the admin portal", args: []string{"list", "-screen", "payments", "-portal", "teacher", "-teacher", "Dr. Robert Chen"}, wantErr: school.ErrUnknownScreen},
		{name: "teacher portal without teacher", args: []string{"list", "-portal", "teacher", "-screen", "students"}, wantErr: errTeacherRequired},
		{name: "page size", args: []string{"list", "-screen", "students", "-page-size", "0"}, wantErrStr: "-page-size must be between 1 and 100"},
		{name: "unsortable column", args: []string{"list", "-screen", "students", "-sort", "phone"}, wantErr: table.ErrNotSortable},
		{
			name:    "first page",
			args:    []string{"list", "-screen", "students"},
			wantOut: []string{"Students - Manage student records", "Alice Johnson", "Jack Taylor", "Showing 1 to 10 of 25 entries | Page 1 of 3"},
			notOut:  []string{"Karen White"},
		},
		{
			name:    "sorted twice",
			args:    []string{"list", "-screen", "students", "-sort", "name", "-sort", "name", "-page-size", "2"},
			wantOut: []string{"Name ↓", "Yusuf Nelson", "Xena Baker", "Showing 1 to 2 of 25 entries | Page 1 of 13"},
			notOut:  []string{"Alice Johnson"},
		},
		{
			name:    "searched past the end",
			args:    []string{"list", "-screen", "payments", "-search", "completed", "-page", "9", "-page-size", "5"},
			wantOut: []string{"Showing 6 to 8 of 8 entries | Page 2 of 2"},
		},
		{
			name:    "no match",
			args:    []string{"list", "-screen", "courses", "-search", "zzz"},
			wantOut: []string{table.PlaceholderText},
			notOut:  []string{"Showing"},
		},
		{
			name:    "teacher portal",
			args:    []string{"list", "-portal", "teacher", "-teacher", "Dr. Robert Chen", "-screen", "students", "-sort", "progress"},
			wantOut: []string{"My Students", "Progress ↑", "Alice Johnson"},
			notOut:  []string{"Brian Smith", "Showing"},
		},
		{
			name:    "screens",
			args:    []string{"screens"},
			wantOut: []string{"Attendances", "My Attendances", "Track all payment transactions"},
		},
	}
	for _, tt := range tests {
		args := append([]string{"admin"}, tt.args...)

		t.Run(tt.name, func(t *testing.T) {
			cli, out := setup(t)
			err := cli.run(args)
			switch {
			case tt.wantErr != nil:
				if errors.Cause(err) != tt.wantErr {
					t.Errorf("cli.run() error = %v, wantErr %v", err, tt.wantErr)
				}
			case tt.wantErrStr != "":
				if err == nil || err.Error() != tt.wantErrStr {
					t.Errorf("cli.run() error = %v, wantErrStr %s", err, tt.wantErrStr)
				}
			default:
				require.NoError(t, err)
			}
			for _, want := range tt.wantOut {
				assert.Contains(t, out.String(), want)
			}
			for _, notWant := range tt.notOut {
				assert.NotContains(t, out.String(), notWant)
			}
		})
	}
}

func Test_commandLine_hashPassword(t *testing.T) {
	tests := []struct {
		name    string
		pwd     string
		wantErr error
	}{
		{name: "no password", wantErr: errHelp},
		{name: "password", pwd: "Pa55word!"},
	}
	for _, tt := range tests {
		readPasswordFunc = func(fd int) ([]byte, error) {
			return []byte(tt.pwd), nil
		}

		t.Run(tt.name, func(t *testing.T) {
			cli, out := setup(t)
			err := cli.run([]string{"admin", "hashpassword"})
			if err != tt.wantErr {
				t.Fatalf("cli.run() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				return
			}
			lines := strings.Split(strings.TrimSpace(out.String()), "\n")
			hash := lines[len(lines)-1]
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte(tt.pwd)))
		})
	}
}
