package profile

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"gopkg.in/fsnotify.v1"
	"gopkg.in/yaml.v3"
)

// Registry holds compiled segmentation profiles keyed by name. It can load
// profile YAML files from a directory and optionally watch that directory
// so edited profiles take effect without a restart.
type Registry struct {
	mu       sync.RWMutex
	profiles map[string]*Profile
	dir      string
	watcher  *fsnotify.Watcher
	stopChan chan struct{}
	onChange func(event string, name string)
}

// NewRegistry creates a registry pre-populated with the builtin profiles.
func NewRegistry() *Registry {
	r := &Registry{profiles: make(map[string]*Profile)}
	for _, p := range Builtins() {
		// Builtins are known-good; a compile failure here is a programming
		// error, not a runtime condition.
		if err := r.Register(p); err != nil {
			panic(fmt.Sprintf("builtin profile %q: %v", p.Name, err))
		}
	}
	return r
}

// Register compiles the profile if needed and adds it to the registry,
// replacing any existing profile with the same name.
func (r *Registry) Register(p *Profile) error {
	if p == nil {
		return fmt.Errorf("profile cannot be nil")
	}
	if !p.IsCompiled() {
		if err := p.Compile(); err != nil {
			return err
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.profiles[p.Name] = p
	return nil
}

// Get returns a profile by name.
func (r *Registry) Get(name string) (*Profile, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.profiles[name]
	return p, ok
}

// List returns all registered profiles sorted by name.
func (r *Registry) List() []*Profile {
	r.mu.RLock()
	defer r.mu.RUnlock()

	profiles := make([]*Profile, 0, len(r.profiles))
	for _, p := range r.profiles {
		profiles = append(profiles, p)
	}
	sort.Slice(profiles, func(i, j int) bool { return profiles[i].Name < profiles[j].Name })
	return profiles
}

// Count returns the number of registered profiles.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.profiles)
}

// LoadDirectory loads every .yaml/.yml profile file in dir. A missing
// directory is not an error; individual file failures are aggregated.
func (r *Registry) LoadDirectory(dir string) error {
	r.dir = dir

	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("checking directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("reading directory %s: %w", dir, err)
	}

	var loadErrors []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, ".yaml") && !strings.HasSuffix(name, ".yml") {
			continue
		}
		if err := r.LoadFile(filepath.Join(dir, name)); err != nil {
			loadErrors = append(loadErrors, fmt.Sprintf("%s: %v", name, err))
		}
	}

	if len(loadErrors) > 0 {
		return fmt.Errorf("errors loading profiles: %s", strings.Join(loadErrors, "; "))
	}
	return nil
}

// LoadFile loads a single profile YAML file.
func (r *Registry) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading file: %w", err)
	}

	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return fmt.Errorf("parsing YAML: %w", err)
	}

	if err := r.Register(&p); err != nil {
		return fmt.Errorf("registering profile: %w", err)
	}
	return nil
}

// SetOnChange sets a callback invoked when a watched profile file changes.
func (r *Registry) SetOnChange(fn func(event string, name string)) {
	r.onChange = fn
}

// Watch starts watching the directory configured by LoadDirectory for
// profile file changes.
func (r *Registry) Watch() error {
	if r.dir == "" {
		return fmt.Errorf("no directory configured for watching")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	r.watcher = watcher
	r.stopChan = make(chan struct{})

	go r.watchLoop()

	if err := watcher.Add(r.dir); err != nil {
		r.watcher.Close()
		return fmt.Errorf("watching directory %s: %w", r.dir, err)
	}
	return nil
}

// StopWatch stops watching the profile directory.
func (r *Registry) StopWatch() {
	if r.stopChan != nil {
		close(r.stopChan)
	}
	if r.watcher != nil {
		r.watcher.Close()
	}
}

func (r *Registry) watchLoop() {
	for {
		select {
		case <-r.stopChan:
			return

		case event, ok := <-r.watcher.Events:
			if !ok {
				return
			}
			if !strings.HasSuffix(event.Name, ".yaml") && !strings.HasSuffix(event.Name, ".yml") {
				continue
			}
			switch {
			case event.Op&fsnotify.Create == fsnotify.Create,
				event.Op&fsnotify.Write == fsnotify.Write:
				if err := r.LoadFile(event.Name); err != nil {
					continue
				}
				r.notify("reload", event.Name)

			case event.Op&fsnotify.Remove == fsnotify.Remove,
				event.Op&fsnotify.Rename == fsnotify.Rename:
				r.removeByFile(event.Name)
			}

		case _, ok := <-r.watcher.Errors:
			if !ok {
				return
			}
		}
	}
}

// removeByFile unregisters the profile whose name matches the removed
// file's base name. Builtins registered under the same name are lost too;
// a full NewRegistry restores them.
func (r *Registry) removeByFile(path string) {
	base := filepath.Base(path)
	name := strings.TrimSuffix(strings.TrimSuffix(base, ".yaml"), ".yml")

	r.mu.Lock()
	_, ok := r.profiles[name]
	if ok {
		delete(r.profiles, name)
	}
	r.mu.Unlock()

	if ok {
		r.notify("remove", name)
	}
}

func (r *Registry) notify(event, name string) {
	if r.onChange != nil {
		r.onChange(event, name)
	}
}
