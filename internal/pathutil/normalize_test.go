package pathutil

import "testing"

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"":            "",
		"/a/b/":       "/a/b",
		"/a/./b/../c": "/a/c",
		"rel/dir/":    "rel/dir",
	}
	for in, want := range cases {
		if got := Normalize(in); got != want {
			t.Errorf("Normalize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestShortLabel(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"text/plain", "text/plain"},
		{"/data/projects", "/data/projects"},
		{"/data/projects/reports", "reports"},
		{"application/vnd.ms-excel", "vnd.ms-excel"},
		{"exactly15chars!", "exactly15chars!"},
	}
	for _, c := range cases {
		if got := ShortLabel(c.in); got != c.want {
			t.Errorf("ShortLabel(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
