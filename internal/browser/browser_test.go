package browser

import (
	"reflect"
	"testing"
)

func TestOpenImageRejectsNonHTTP(t *testing.T) {
	tests := []string{
		"file:///etc/passwd",
		"javascript:alert(1)",
		"ftp://example.com/1.jpeg",
		"",
	}
	for _, u := range tests {
		if err := OpenImage(u); err == nil {
			t.Errorf("OpenImage(%q): expected error, got nil", u)
		}
	}
}

func TestOpenCommandPerPlatform(t *testing.T) {
	const img = "https://example.com/avatar/1.jpeg"
	tests := []struct {
		goos     string
		wantName string
		wantArgs []string
	}{
		{"darwin", "open", []string{img}},
		{"windows", "rundll32", []string{"url.dll,FileProtocolHandler", img}},
		{"linux", "xdg-open", []string{img}},
		{"freebsd", "xdg-open", []string{img}},
	}
	for _, tt := range tests {
		name, args := openCommand(tt.goos, img)
		if name != tt.wantName || !reflect.DeepEqual(args, tt.wantArgs) {
			t.Errorf("openCommand(%q) = %q %v, want %q %v", tt.goos, name, args, tt.wantName, tt.wantArgs)
		}
	}
}
