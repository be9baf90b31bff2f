package config

import (
	"fmt"
	"os"
	"sync"

	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/dijkstep/wgraph"
)

// Loader reads a YAML scenario file and watches it for changes.
type Loader struct {
	path     string
	mu       sync.RWMutex
	current  *Scenario
	onChange []func(*Scenario)
	onError  []func(error)
}

// NewLoader creates a Loader and performs the initial load.
func NewLoader(path string) (*Loader, error) {
	l := &Loader{path: path}
	cfg, err := l.load()
	if err != nil {
		return nil, err
	}
	l.current = cfg
	return l, nil
}

// Path returns the watched file.
func (l *Loader) Path() string { return l.path }

// Config returns the current (latest) scenario.
func (l *Loader) Config() *Scenario {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.current
}

// OnChange registers a callback invoked whenever the scenario reloads.
func (l *Loader) OnChange(fn func(*Scenario)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.onChange = append(l.onChange, fn)
}

// OnError registers a callback invoked when a watched reload fails. The
// previous scenario stays current.
func (l *Loader) OnError(fn func(error)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.onError = append(l.onError, fn)
}

// Watch starts a background goroutine that hot-reloads the scenario on file changes.
// Call the returned stop function to clean up.
func (l *Loader) Watch() (stop func(), err error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config watcher: %w", err)
	}
	if err := w.Add(l.path); err != nil {
		w.Close()
		return nil, fmt.Errorf("config watcher add %s: %w", l.path, err)
	}

	done := make(chan struct{})
	var once sync.Once
	go func() {
		defer w.Close()
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
					if _, err := l.Reload(); err != nil {
						l.fail(err)
					}
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				l.fail(fmt.Errorf("config watcher: %w", err))
			case <-done:
				return
			}
		}
	}()

	return func() { once.Do(func() { close(done) }) }, nil
}

// Reload forces an immediate re-read of the scenario file.
func (l *Loader) Reload() (*Scenario, error) {
	cfg, err := l.load()
	if err != nil {
		return nil, err
	}
	l.mu.Lock()
	l.current = cfg
	callbacks := make([]func(*Scenario), len(l.onChange))
	copy(callbacks, l.onChange)
	l.mu.Unlock()
	for _, fn := range callbacks {
		fn(cfg)
	}
	return cfg, nil
}

func (l *Loader) fail(err error) {
	l.mu.RLock()
	callbacks := make([]func(error), len(l.onError))
	copy(callbacks, l.onError)
	l.mu.RUnlock()
	for _, fn := range callbacks {
		fn(err)
	}
}

func (l *Loader) load() (*Scenario, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", l.path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", l.path, err)
	}
	return cfg, nil
}

// Parse decodes a scenario, applies defaults and validates it.
func Parse(data []byte) (*Scenario, error) {
	var cfg Scenario
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	applyDefaults(&cfg)
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyDefaults(cfg *Scenario) {
	if cfg.Version == "" {
		cfg.Version = DefaultVersion
	}
	if cfg.Graph.DefaultWeight == nil {
		w := wgraph.DefaultWeight
		cfg.Graph.DefaultWeight = &w
	}
	if cfg.Labels.Scheme == "" {
		cfg.Labels.Scheme = DefaultScheme
	}
	if cfg.Playback.Mode == "" {
		cfg.Playback.Mode = ModeStep
	}
	if cfg.Playback.IntervalMs == 0 {
		cfg.Playback.IntervalMs = DefaultIntervalMs
	}
	if t := cfg.Graph.Topology; t != nil && t.Kind == "platonic" && t.Solid == "" {
		t.Solid = "cube"
	}
}
