//go:build !windows

package termpaint

// SystemConsole is only available on Windows
func SystemConsole() (ConsoleAPI, error) {
	return nil, initError("no console API on this platform")
}
