package dispatch

import (
	"net/url"
	"runtime"
)

// openCommand returns the OS "open URL with the default handler" command.
func openCommand(goos string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", nil
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler"}
	default:
		return "xdg-open", nil
	}
}

func defaultOpenCommand() (string, []string) {
	return openCommand(runtime.GOOS)
}

// SchemeURL appends the percent-encoded path to a URL-scheme prefix,
// e.g. "warp://action/new_tab?path=" + "/Users/x/my%20proj".
func SchemeURL(prefix, path string) string {
	return prefix + (&url.URL{Path: path}).EscapedPath()
}
