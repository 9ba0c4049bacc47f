package browser

import (
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
)

// OpenImage shows a character portrait in the platform browser. The API
// hands out plain http(s) image links; anything else is rejected before a
// command is spawned.
func OpenImage(imageURL string) error {
	u, err := url.Parse(imageURL)
	if err != nil {
		return fmt.Errorf("invalid image URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("refusing to open %q: only http/https image links are supported", imageURL)
	}

	name, args := openCommand(runtime.GOOS, imageURL)
	return exec.Command(name, args...).Start()
}

// openCommand picks the platform launcher for a URL.
func openCommand(goos, rawURL string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", []string{rawURL}
	case "windows":
		// rundll32 avoids shell interpretation of the URL
		return "rundll32", []string{"url.dll,FileProtocolHandler", rawURL}
	default:
		return "xdg-open", []string{rawURL}
	}
}
