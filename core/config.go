package core

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type (
	Config struct {
		Env          string
		Build        string
		AppName      string
		Debug        bool
		TestMode     bool
		SecretKey    string
		RollbarToken string
		SeedMockData bool

		Server struct {
			Address                   string
			Host                      string
			DebugHost                 string
			ShutdownTimeout           time.Duration
			DisableReqLogs            bool
			JWTExpirationDelta        time.Duration
			JWTRefreshExpirationDelta time.Duration
		}

		Table struct {
			PageSize int
		}

		Admin struct {
			Username        string
			Email           string
			Password        string
			TeacherPassword string
		}
	}
)

// NewConfig loads the Config from the environment.
// ENV selects the environment: DEV (local; default), TEST, QA, PROD.
// Variables are prefixed with the environment name, eg. DEV_SECRETKEY.
func NewConfig() *Config {
	conf := viper.New()

	// defaults
	conf.SetTypeByDefaultValue(true)
	conf.SetDefault("build", "dev")
	conf.SetDefault("appName", "Masomo")
	conf.SetDefault("debug", true)
	conf.SetDefault("testMode", false)
	conf.SetDefault("secretKey", "poq5-wer)enb$+57=dz&uoxh2(h!x)#*c2(#yg4h^$cegm2emy")
	conf.SetDefault("rollbarToken", "")
	conf.SetDefault("seedMockData", true)

	conf.SetDefault("serverAddress", ":8000")
	conf.SetDefault("serverHost", "localhost")
	conf.SetDefault("serverDebugHost", ":4000")
	conf.SetDefault("serverShutdownTimeout", 5*time.Second)
	conf.SetDefault("serverDisableReqLogs", false)
	conf.SetDefault("jwtExpirationDelta", 7*24*time.Hour)
	conf.SetDefault("jwtRefreshExpirationDelta", 4*time.Hour)

	conf.SetDefault("tablePageSize", 10)

	conf.SetDefault("adminUsername", "admin")
	conf.SetDefault("adminEmail", "admin@masomo.cd")
	conf.SetDefault("adminPassword", "")
	conf.SetDefault("teacherPassword", "")

	env := strings.ToUpper(os.Getenv("ENV"))
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		conf.SetDefault("testMode", true)
	case "QA", "PROD":
		conf.SetDefault("debug", false)
	}
	conf.SetEnvPrefix(env)

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join(Getwd(), "config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	conf.AutomaticEnv()

	c := new(Config)
	c.Env = env
	c.Build = conf.GetString("build")
	c.AppName = conf.GetString("appName")
	c.Debug = conf.GetBool("debug")
	c.TestMode = conf.GetBool("testMode")
	c.SecretKey = conf.GetString("secretKey")
	c.RollbarToken = conf.GetString("rollbarToken")
	c.SeedMockData = conf.GetBool("seedMockData")

	c.Server.Address = conf.GetString("serverAddress")
	c.Server.Host = conf.GetString("serverHost")
	c.Server.DebugHost = conf.GetString("serverDebugHost")
	c.Server.ShutdownTimeout = conf.GetDuration("serverShutdownTimeout")
	c.Server.DisableReqLogs = conf.GetBool("serverDisableReqLogs")
	c.Server.JWTExpirationDelta = conf.GetDuration("jwtExpirationDelta")
	c.Server.JWTRefreshExpirationDelta = conf.GetDuration("jwtRefreshExpirationDelta")

	c.Table.PageSize = conf.GetInt("tablePageSize")
	if c.Table.PageSize < 1 {
		c.Table.PageSize = 10
	}

	c.Admin.Username = conf.GetString("adminUsername")
	c.Admin.Email = conf.GetString("adminEmail")
	c.Admin.Password = conf.GetString("adminPassword")
	c.Admin.TeacherPassword = conf.GetString("teacherPassword")
	return c
}

// NewTestConfig returns a Config suitable for tests; it never reads the environment.
func NewTestConfig() *Config {
	c := new(Config)
	c.Env = "TEST"
	c.Build = "test"
	c.AppName = "Masomo"
	c.TestMode = true
	c.SecretKey = "secret"
	c.SeedMockData = true
	c.Server.Host = "localhost"
	c.Server.ShutdownTimeout = time.Second
	c.Server.DisableReqLogs = true
	c.Server.JWTExpirationDelta = 10 * time.Minute
	c.Server.JWTRefreshExpirationDelta = 4 * time.Hour
	c.Table.PageSize = 10
	c.Admin.Username = "admin"
	c.Admin.Email = "admin@test.cd"
	c.Admin.Password = "Adm1n!pass"
	c.Admin.TeacherPassword = "Teach3r!pass"
	return c
}
