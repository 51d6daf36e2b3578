package timeago

import (
	"os"

	"github.com/sirupsen/logrus"
)

func newDefaultLogger() logrus.FieldLogger {
	logger := logrus.New()
	logger.Out = os.Stderr
	logger.Level = logrus.WarnLevel
	logger.Formatter = &logrus.TextFormatter{FullTimestamp: true}
	return logger
}
