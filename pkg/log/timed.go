package log

import "time"

// TimedLogger prefixes every message with the current time.
type TimedLogger struct {
	Time   func() time.Time
	Format string
	Logger
}

func (l TimedLogger) Println(v ...interface{}) {
	l.Logger.Println(prepend(l.stamp(), v)...)
}

func (l TimedLogger) Printf(format string, v ...interface{}) {
	l.Logger.Printf(l.stamp()+" "+format, v...)
}

func (l TimedLogger) stamp() string {
	ts := time.Now()
	if l.Time != nil {
		ts = l.Time()
	}
	format := l.Format
	if format == "" {
		format = time.StampMilli
	}
	return ts.Format(format)
}
