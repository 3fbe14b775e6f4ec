package keycase

import "testing"

func TestCamel(t *testing.T) {
	cases := map[string]string{
		"foo-bar":          "fooBar",
		"foo_bar":          "fooBar",
		"Foo-Bar":          "fooBar",
		"--foo.bar":        "fooBar",
		"  foo bar  ":      "fooBar",
		"fooBar":           "fooBar",
		"XMLHttpRequest":   "xmlHttpRequest",
		"foo2bar":          "foo2Bar",
		"a":                "a",
		"A":                "a",
		"":                 "",
		"__foo__":          "foo",
		"foo__bar":         "fooBar",
		"créme-brûlée":     "crémeBrûlée",
		"ajaxXMLHttpCache": "ajaxXmlHttpCache",
	}
	for in, want := range cases {
		if got := Camel(in); got != want {
			t.Errorf("Camel(%q)=%q want %q", in, got, want)
		}
	}
}

func TestPascal(t *testing.T) {
	cases := map[string]string{
		"foo-bar": "FooBar",
		"fooBar":  "FooBar",
		"foo_bar": "FooBar",
		"a":       "A",
		"":        "",
		"--":      "",
		"__":      "",
		"._- ":    "",
	}
	for in, want := range cases {
		if got := Pascal(in); got != want {
			t.Errorf("Pascal(%q)=%q want %q", in, got, want)
		}
	}
}

func TestSnake(t *testing.T) {
	cases := map[string]string{
		"fooBar":         "foo_bar",
		"FooBar":         "foo_bar",
		"XMLHttpRequest": "xml_http_request",
		"foo-bar baz":    "foo_bar_baz",
		"version1Beta":   "version1_beta",
		"__foo__":        "foo",
		"foo_bar":        "foo_bar",
		"--":             "",
		"":               "",
	}
	for in, want := range cases {
		if got := Snake(in); got != want {
			t.Errorf("Snake(%q)=%q want %q", in, got, want)
		}
	}
}
