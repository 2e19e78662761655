package version

import "testing"

func TestString(t *testing.T) {
	defer func(v, c, d, dirty string) { Version, Commit, Date, Dirty = v, c, d, dirty }(Version, Commit, Date, Dirty)

	Version, Commit, Date, Dirty = "1.2.0", "abc123", "", "false"
	if got := String(); got != "pokebattle 1.2.0 (abc123)" {
		t.Fatalf("unexpected %q", got)
	}
	Date, Dirty = "2026-10-01", "true"
	if got := String(); got != "pokebattle 1.2.0 (abc123-dirty, 2026-10-01)" {
		t.Fatalf("unexpected %q", got)
	}
	if !Get().Dirty {
		t.Fatal("expected dirty build")
	}
}
