package log

// LabeledLogger prefixes every message with a fixed label.
type LabeledLogger struct {
	Label string
	Logger
}

func (l LabeledLogger) Println(v ...interface{}) {
	l.Logger.Println(prepend(l.Label, v)...)
}

func (l LabeledLogger) Printf(format string, v ...interface{}) {
	l.Logger.Printf(l.Label+" "+format, v...)
}

func prepend(text string, v []interface{}) []interface{} {
	vars := make([]interface{}, 0, len(v)+1)
	vars = append(vars, text)
	return append(vars, v...)
}
