package configslog

import (
	"os"

	"go.uber.org/zap"
)

// Log is the process-wide structured logger, SLog its sugared twin. Both are
// set by InitLogger before anything else runs.
var (
	Log  *zap.Logger
	SLog *zap.SugaredLogger
)

// InitLogger configures zap based on APP_ENV: production gets the JSON
// production config, everything else the human-readable development one.
func InitLogger() {
	var err error
	if os.Getenv("APP_ENV") == "production" {
		Log, err = zap.NewProduction()
	} else {
		Log, err = zap.NewDevelopment()
	}
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	SLog = Log.Sugar()
}

// SyncLogger flushes buffered log entries. Intended for deferred use in main.
func SyncLogger() {
	if Log != nil {
		_ = Log.Sync()
	}
}
