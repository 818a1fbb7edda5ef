package core

// Logger receives render progress lines from the renderer and CLI
type Logger interface {
	Printf(format string, args ...any)
}
