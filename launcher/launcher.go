package launcher

import (
	"context"
	"log/slog"
	"runtime"
	"strings"
	"time"

	pkgbrowser "github.com/pkg/browser"

	"github.com/omt66/oxrr/browser"
	"github.com/omt66/oxrr/cliout"
	"github.com/omt66/oxrr/config"
	"github.com/omt66/oxrr/notify"
	"github.com/omt66/oxrr/procutil"
	"github.com/omt66/oxrr/urlutil"
)

// defaultGrace is how long after a direct spawn the child is given before
// the liveness check runs.
const defaultGrace = 300 * time.Millisecond

// Launcher opens URLs in app-mode browser windows. The zero value is not
// usable; construct with New.
type Launcher struct {
	// GOOS overrides the host OS, for tests. Empty means runtime.GOOS.
	GOOS string

	// Probes are the detection probes. Tests inject fakes.
	Probes browser.Probes

	// Config is the user browser catalog. Never nil after New.
	Config *config.File

	// Start spawns a detached process from an argv and returns its PID.
	Start func(argv []string) (int, error)

	// OpenDefault is the last-resort opener when the OS default-open
	// command itself cannot start.
	OpenDefault func(url string) error

	// Grace is the delay before the post-spawn liveness check. Zero means
	// defaultGrace; negative disables the check.
	Grace time.Duration

	// Notify delivers the user-facing failure notification.
	Notify func(title, message string)
}

// New returns a Launcher wired to the real host: filesystem and PATH
// probes, the user config file (parse errors are reported and ignored), and
// detached process spawning.
func New() *Launcher {
	cfg, err := config.Load()
	if err != nil {
		cliout.Warning("Ignoring browser config: %v", err)
		cfg = &config.File{}
	}

	return &Launcher{
		Probes:      browser.DefaultProbes(),
		Config:      cfg,
		Start:       procutil.StartDetached,
		OpenDefault: pkgbrowser.OpenURL,
		Notify:      sendNotification,
	}
}

// LaunchApp opens rawURL in an app-mode window. Fire-and-forget: every
// failure degrades to the next fallback tier and is reported through
// diagnostics rather than a return value.
func (l *Launcher) LaunchApp(ctx context.Context, rawURL string) {
	url := urlutil.Normalize(rawURL)

	goos := l.GOOS
	if goos == "" {
		goos = runtime.GOOS
	}
	osid := browser.FromGOOS(goos)

	plat, ok := ForOS(osid)
	if !ok {
		cliout.Warning("Unsupported OS: %s", goos)
		cliout.Error("Unsupported OS for launching app!")
		return
	}

	catalog := append(browser.Catalog(osid), l.Config.Descriptors(osid)...)
	detected := plat.DetectInstalled(catalog, l.Probes)

	cliout.Info("OS: %s", osid)
	if len(detected) == 0 {
		cliout.Info("Detected browsers: None")
	} else {
		cliout.Info("Detected browsers: %s", strings.Join(browser.Names(detected), ", "))
	}

	prefs := append(browser.Preference(osid), l.Config.Preferred(osid)...)
	chosen, ok := browser.Select(detected, prefs)
	if !ok {
		l.openDefault(plat, url)
		return
	}

	cliout.Info("Launching %s in app mode: %s", chosen.Name, url)
	argv := plat.AppCommand(chosen, url)
	slog.Debug("spawning browser", "browser", chosen.Name, "argv", argv)

	pid, err := l.Start(argv)
	if err != nil {
		cliout.Warning("Could not start %s: %v", chosen.Name, err)
		l.openDefault(plat, url)
		return
	}

	if plat.SpawnsBrowserDirectly() && !l.verify(ctx, pid, chosen.Name, url) {
		return
	}
	cliout.Success("Opened %s", url)
}

// openDefault is the default-browser fallback tier: spawn the OS-native
// open command, and if even that cannot start, hand the URL to
// github.com/pkg/browser before giving up.
func (l *Launcher) openDefault(plat Platform, url string) {
	cliout.Info("Opening %s in the default browser", url)

	argv := plat.DefaultOpenCommand(url)
	slog.Debug("spawning default opener", "argv", argv)

	_, err := l.Start(argv)
	if err == nil {
		return
	}
	slog.Debug("default opener failed", "error", err)

	if err := l.OpenDefault(url); err != nil {
		cliout.Error("Could not open %s: %v", url, err)
		l.notifyFailure(url)
	}
}

// verify gives the spawned browser a short grace period and warns when it
// is already gone, which usually means a bad flag or a corrupt profile.
// Best-effort only; the launch itself is never rolled back. Returns false
// only on a confident "child already exited".
func (l *Launcher) verify(ctx context.Context, pid int, name, url string) bool {
	grace := l.Grace
	if grace < 0 {
		return true
	}
	if grace == 0 {
		grace = defaultGrace
	}

	select {
	case <-ctx.Done():
		return true
	case <-time.After(grace):
	}

	if !procutil.StillRunning(ctx, pid) {
		cliout.Warning("%s exited immediately after launch", name)
		l.notifyFailure(url)
		return false
	}
	return true
}

func (l *Launcher) notifyFailure(url string) {
	if l.Notify == nil {
		return
	}
	l.Notify("oxrr", "Could not open "+url)
}

// sendNotification posts a desktop notification, swallowing errors; there
// is nothing further to fall back to.
func sendNotification(title, message string) {
	n, err := notify.New(notify.DefaultConfig())
	if err != nil {
		return
	}
	defer func() { _ = n.Close() }()

	ctx, cancel := context.WithTimeout(context.Background(), notify.DefaultConfig().Timeout)
	defer cancel()
	_ = n.Send(ctx, notify.Notification{Title: title, Message: message})
}
