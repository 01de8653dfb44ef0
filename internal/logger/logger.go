package logger

import (
	"github.com/sirupsen/logrus"
)

var Log *logrus.Logger

// Init инициализирует структурированный логгер.
// В development используется текстовый формат, иначе JSON.
func Init(level, env string) {
	Log = logrus.New()

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
		if env == "development" {
			lvl = logrus.DebugLevel
		}
	}
	Log.SetLevel(lvl)

	if env == "development" {
		SetTextFormatter()
		return
	}
	Log.SetFormatter(&logrus.JSONFormatter{})
}

// SetTextFormatter устанавливает текстовый формат логов (для development).
func SetTextFormatter() {
	if Log != nil {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}
}

// Get возвращает инициализированный логгер или стандартный logrus, если Init не вызывался.
func Get() logrus.FieldLogger {
	if Log == nil {
		return logrus.StandardLogger()
	}
	return Log
}
