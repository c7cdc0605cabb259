package logsvc

import (
	"fmt"
	"log"

	"github.com/rollbar/rollbar-go"
	"github.com/rollbar/rollbar-go/errors"

	"github.com/trezcool/masomo-console/core"
	"github.com/trezcool/masomo-console/core/user"
)

type level int

const (
	levelDebug level = iota
	levelInfo
	levelWarn
	levelError
	levelFatal
)

var levelNames = [...]string{"DEBUG", "INFO", "WARN", "ERROR", "FATAL"}

func (lvl level) String() string {
	return levelNames[lvl]
}

// RollbarLogger reports to rollbar and mirrors every entry to a standard logger.
// Debug entries are dropped unless conf.Debug is set.
type RollbarLogger struct {
	std *log.Logger
	min level
}

var _ core.Logger = (*RollbarLogger)(nil)

func NewRollbarLogger(std *log.Logger, conf *core.Config) *RollbarLogger {
	rollbar.SetToken(conf.RollbarToken)
	rollbar.SetEnvironment(conf.Env)
	rollbar.SetServerHost(conf.Server.Host)
	rollbar.SetCodeVersion(conf.Build)
	rollbar.SetStackTracer(errors.StackTracer)
	rollbar.SetEnabled(conf.RollbarToken != "" && !conf.TestMode)

	l := &RollbarLogger{std: std, min: levelInfo}
	if conf.Debug {
		l.min = levelDebug
	}
	return l
}

func (l *RollbarLogger) Enable(enabled bool) {
	rollbar.SetEnabled(enabled)
}

// expected fmt: msg | error, map[string]interface{}, user.User
func (l *RollbarLogger) prepare(msg string, args []interface{}) (rbArgs []interface{}, usr *user.User) {
	rbArgs = make([]interface{}, 0, len(args)+1)
	rbArgs = append(rbArgs, msg)
	for _, arg := range args {
		if u, ok := arg.(user.User); ok {
			if usr == nil { // only set one User
				usr = &u
			}
			continue
		}
		rbArgs = append(rbArgs, arg)
	}
	if usr != nil {
		rollbar.SetPerson(usr.ID, usr.Username, usr.Email)
	} else {
		rollbar.ClearPerson()
	}
	return rbArgs, usr
}

func (l *RollbarLogger) print(lvl level, msg string, args []interface{}, usr *user.User) {
	line := fmt.Sprintf("[%s] %s", lvl, msg)
	if usr != nil {
		line += fmt.Sprintf(" (user=%s)", usr.Username)
	}
	l.std.Println(line)
	for _, arg := range args[1:] {
		l.std.Printf("%+v\n", arg)
	}
}

func (l *RollbarLogger) log(lvl level, report func(...interface{}), msg string, args []interface{}) {
	if lvl < l.min {
		return
	}
	rbArgs, usr := l.prepare(msg, args)
	report(rbArgs...)
	l.print(lvl, msg, rbArgs, usr)
}

func (l *RollbarLogger) Debug(msg string, args ...interface{}) {
	l.log(levelDebug, rollbar.Debug, msg, args)
}

func (l *RollbarLogger) Info(msg string, args ...interface{}) {
	l.log(levelInfo, rollbar.Info, msg, args)
}

func (l *RollbarLogger) Warn(msg string, args ...interface{}) {
	l.log(levelWarn, rollbar.Warning, msg, args)
}

func (l *RollbarLogger) Error(msg string, args ...interface{}) {
	l.log(levelError, rollbar.Error, msg, args)
}

func (l *RollbarLogger) Fatal(msg string, args ...interface{}) {
	l.log(levelFatal, rollbar.Critical, msg, args)
	rollbar.Wait()
	l.std.Fatal(msg)
}
