package log

import "go.uber.org/zap"

// Zapped adapts a zap sugared logger to the Logger interface, so verbose
// diagnostics can share the operation's output path.
type Zapped struct {
	Sugar *zap.SugaredLogger
}

func (z Zapped) Println(v ...interface{}) {
	z.Sugar.Debugln(v...)
}

func (z Zapped) Printf(format string, v ...interface{}) {
	z.Sugar.Debugf(format, v...)
}
