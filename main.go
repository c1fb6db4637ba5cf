// wardforge runs the forging rite in the local terminal. Completed wards
// are archived under the XDG data dir when possible. Build:
//
//	go build -o wardforge .
//
// The SSH server lives in cmd/server.
package main

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"

	"wardforge/internal/archive"
	"wardforge/internal/config"
	"wardforge/internal/ui"
)

func main() {
	// The archive is optional for a local rite. Any failure here just
	// means the ward is not recorded.
	var store *archive.Store
	if dir, err := config.DataDir(); err == nil {
		if err := os.MkdirAll(dir, 0o755); err == nil {
			if s, err := archive.Open(filepath.Join(dir, "wards.db")); err == nil {
				store = s
				defer store.Close()
			}
		}
	}

	app, err := ui.NewLocalApp(store, localPlayer())
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	app.Run()
}

// localPlayer names the seeker after the OS user, falling back to a
// wanderer when that cannot be determined.
func localPlayer() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return "wanderer"
}
