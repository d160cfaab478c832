package logfields

import (
	"errors"
	"log/slog"
	"testing"
)

// TestHelperKeyNames verifies string-based helper key/value stability.
func TestHelperKeyNames(t *testing.T) {
	cases := []struct {
		name    string
		attrKey string
		attrVal string
		attr    slog.Attr
	}{
		{"BuildID", KeyBuildID, "b-123", BuildID("b-123")},
		{"Page", KeyPage, "index.html", Page("index.html")},
		{"Source", KeySource, "content/home.md", Source("content/home.md")},
		{"Path", KeyPath, "/tmp/x", Path("/tmp/x")},
		{"URL", KeyURL, "https://example.org", URL("https://example.org")},
		{"Commit", KeyCommit, "abcd1234", Commit("abcd1234")},
	}

	for _, c := range cases {
		want := c.attrKey + "=" + c.attrVal
		if c.attr.String() != want {
			t.Errorf("%s: expected %q, got %q", c.name, want, c.attr.String())
		}
	}
}

func TestErrorHelper(t *testing.T) {
	if got := Error(nil).String(); got != "error=" {
		t.Errorf("nil error: got %q", got)
	}
	if got := Error(errors.New("boom")).String(); got != "error=boom" {
		t.Errorf("error: got %q", got)
	}
}
