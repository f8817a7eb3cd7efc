package mapproj

import "github.com/sirupsen/logrus"

var logger = logrus.StandardLogger()

// SetLogger replaces the package logger. Logging is limited to
// construction-time events; per-point work never logs.
func SetLogger(l *logrus.Logger) {
	logger = l
}
