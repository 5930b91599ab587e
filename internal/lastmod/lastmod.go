// Package lastmod assigns last-modified dates to sitemap entries using
// a layered precedence policy: manual override, explicit entry hint,
// version-control history, configured fallback, file modification time.
// Every layer is optional; the first match wins. Resolved dates are
// clamped to the build-time UTC date and emitted date-only.
package lastmod

import (
	"log/slog"
	"os"
	"sync"
	"time"

	"git.home.luguber.info/inful/sitemapper/internal/logfields"
)

// DateLayout is the date-only ISO form used in sitemap output.
const DateLayout = "2006-01-02"

// Historian answers last-commit-date queries for source files.
type Historian interface {
	LastCommit(file string) (time.Time, error)
}

// Options configures a Resolver.
type Options struct {
	// Overrides maps canonical paths and output filenames to fixed
	// dates in the DateLayout form. Unparseable values are ignored.
	Overrides map[string]string
	// Historian answers history queries; nil disables the layer.
	Historian Historian
	// Fallback is used when the history layer is disabled or errors.
	// Zero disables the fallback layer.
	Fallback time.Time
	// UseMtime enables the file-modification-time layer.
	UseMtime bool
	// Now returns the build clock; defaults to time.Now. The clamp is
	// computed against its UTC date.
	Now func() time.Time
}

// Resolver resolves last-modified dates. Both caches are owned by the
// resolver instance so tests can construct, inspect and discard them
// freely; nothing here is ambient state.
type Resolver struct {
	overrides map[string]time.Time
	historian Historian
	fallback  time.Time
	useMtime  bool
	now       func() time.Time

	mu        sync.Mutex
	fileDates map[string]time.Time // source file -> history date; zero = known miss
	results   map[string]time.Time // canonical path -> resolved date; zero = known none
}

// NewResolver builds a resolver from options.
func NewResolver(opts Options) *Resolver {
	r := &Resolver{
		overrides: map[string]time.Time{},
		historian: opts.Historian,
		fallback:  opts.Fallback,
		useMtime:  opts.UseMtime,
		now:       opts.Now,
		fileDates: map[string]time.Time{},
		results:   map[string]time.Time{},
	}
	if r.now == nil {
		r.now = time.Now
	}
	for key, raw := range opts.Overrides {
		t, err := time.Parse(DateLayout, raw)
		if err != nil {
			slog.Warn("Ignoring unparseable lastmod override", logfields.Path(key), logfields.Error(err))
			continue
		}
		r.overrides[key] = t.UTC()
	}
	return r
}

// Override returns the manual override for a key (canonical path or
// output filename), if one exists. The clamp applies here too.
func (r *Resolver) Override(key string) (time.Time, bool) {
	t, ok := r.overrides[key]
	if !ok {
		return time.Time{}, false
	}
	return r.clamp(t), true
}

// Resolve returns the last-modified date for a canonical path with an
// optional explicit hint and an optional source file reference. ok is
// false when no layer produced a value; such entries carry no lastmod.
func (r *Resolver) Resolve(canonicalPath string, hint time.Time, sourceFile string) (time.Time, bool) {
	if t, ok := r.overrides[canonicalPath]; ok {
		return r.clamp(t), true
	}

	r.mu.Lock()
	if t, ok := r.results[canonicalPath]; ok {
		r.mu.Unlock()
		return t, !t.IsZero()
	}
	r.mu.Unlock()

	t, ok := r.resolveUncached(hint, sourceFile)
	if ok {
		t = r.clamp(t)
	}

	r.mu.Lock()
	if ok {
		r.results[canonicalPath] = t
	} else {
		r.results[canonicalPath] = time.Time{}
	}
	r.mu.Unlock()
	return t, ok
}

func (r *Resolver) resolveUncached(hint time.Time, sourceFile string) (time.Time, bool) {
	if sourceFile != "" {
		if t, ok := r.historyDate(sourceFile); ok {
			return t, true
		}
	}
	if !hint.IsZero() {
		return hint, true
	}
	if r.useMtime && sourceFile != "" {
		if fi, err := os.Stat(sourceFile); err == nil {
			return fi.ModTime().UTC(), true
		}
	}
	return time.Time{}, false
}

// historyDate queries the historian once per file for the life of the
// build. A failed or disabled query falls back to the configured global
// date when one is set.
func (r *Resolver) historyDate(file string) (time.Time, bool) {
	r.mu.Lock()
	t, cached := r.fileDates[file]
	r.mu.Unlock()
	if cached {
		return t, !t.IsZero()
	}

	var date time.Time
	if r.historian != nil {
		got, err := r.historian.LastCommit(file)
		switch {
		case err == nil:
			date = got.UTC()
		case !r.fallback.IsZero():
			date = r.fallback
		default:
			slog.Debug("History query failed", logfields.File(file), logfields.Error(err))
		}
	} else if !r.fallback.IsZero() {
		date = r.fallback
	}

	r.mu.Lock()
	r.fileDates[file] = date
	r.mu.Unlock()
	return date, !date.IsZero()
}

// clamp replaces any date later than the build-time UTC date with the
// current date, so clock skew and speculative future dates never leak
// into public output.
func (r *Resolver) clamp(t time.Time) time.Time {
	today := r.today()
	day := t.UTC().Truncate(24 * time.Hour)
	if day.After(today) {
		return today
	}
	return day
}

func (r *Resolver) today() time.Time {
	return r.now().UTC().Truncate(24 * time.Hour)
}

// Format renders a resolved date in the date-only ISO form.
func Format(t time.Time) string { return t.UTC().Format(DateLayout) }
