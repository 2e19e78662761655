package version

import "fmt"

// Build metadata, set with -ldflags "-X .../internal/version.Version=...".
var (
	Version = "dev"
	Commit  = "none"
	Date    = ""
	Dirty   = "false"
)

// Info is the build metadata served by the API and printed by the CLI.
type Info struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
	Dirty   bool   `json:"dirty"`
}

func Get() Info {
	return Info{Version: Version, Commit: Commit, Date: Date, Dirty: Dirty == "true"}
}

// String renders the metadata as "pokebattle dev (none)", with the build date
// and a "-dirty" marker when known.
func String() string {
	i := Get()
	s := fmt.Sprintf("pokebattle %s (%s", i.Version, i.Commit)
	if i.Dirty {
		s += "-dirty"
	}
	if i.Date != "" {
		s += ", " + i.Date
	}
	return s + ")"
}
