package logsvc

import (
	"bytes"
	"log"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/trezcool/masomo-console/core"
	"github.com/trezcool/masomo-console/core/user"
)

func TestRollbarLogger(t *testing.T) {
	tests := []struct {
		name  string
		debug bool
		log   func(l *RollbarLogger)
		want  string
		stack bool // pkg/errors values print their stack trace after want
	}{
		{
			name: "info",
			log:  func(l *RollbarLogger) { l.Info("server started") },
			want: "[INFO] server started\n",
		},
		{
			name: "debug hidden",
			log:  func(l *RollbarLogger) { l.Debug("request") },
		},
		{
			name:  "debug shown",
			debug: true,
			log:   func(l *RollbarLogger) { l.Debug("request") },
			want:  "[DEBUG] request\n",
		},
		{
			name: "error with user",
			log: func(l *RollbarLogger) {
				l.Error("boom", errors.New("kaput"), user.User{ID: "1", Username: "robert.chen"})
			},
			want:  "[ERROR] boom (user=robert.chen)\nkaput\n",
			stack: true,
		},
		{
			name: "extra data",
			log: func(l *RollbarLogger) {
				l.Warn("slow", map[string]interface{}{"ms": 1200})
			},
			want: "[WARN] slow\nmap[ms:1200]\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			conf := core.NewTestConfig()
			conf.Debug = tt.debug
			l := NewRollbarLogger(log.New(&buf, "", 0), conf)
			l.Enable(false)

			tt.log(l)
			if tt.stack {
				assert.True(t, strings.HasPrefix(buf.String(), tt.want), buf.String())
				assert.Contains(t, buf.String(), "rollbar_test.go")
				return
			}
			assert.Equal(t, tt.want, buf.String())
		})
	}
}
