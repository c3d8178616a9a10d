package i

// Logger is the leveled logger components write through.
type Logger interface {
	Info(string)
	Warning(string)
	Error(string)
}
