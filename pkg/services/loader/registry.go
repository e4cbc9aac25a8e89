package loader

import (
	"fmt"
	"sync"

	"github.com/de-tools/fact-atlas/pkg/services/report"
)

// Loader materialises a report handle from a viewer data file on disk.
type Loader interface {
	Load(path string) (*report.Report, error)
}

// LoaderFactory creates a Loader bound to the given options.
type LoaderFactory func(opts Options) (Loader, error)

// Options configure a loader.
type Options struct {
	// DuplicateAspects lists aspect keys the default duplicate policy
	// treats as wildcards. Empty means exact duplicates only.
	DuplicateAspects []string
}

// Registry manages report loader factories keyed by format.
type Registry interface {
	// Register adds a new format loader factory
	Register(format string, factory LoaderFactory) error
	// Create instantiates a loader for the specified format
	Create(format string, opts Options) (Loader, error)
	// ListFormats returns a list of registered formats
	ListFormats() []string
}

type registry struct {
	mu        sync.RWMutex
	factories map[string]LoaderFactory
}

// NewRegistry creates a new loader registry, pre-registering the given
// factories.
func NewRegistry(factories map[string]LoaderFactory) Registry {
	r := &registry{factories: make(map[string]LoaderFactory)}
	for format, factory := range factories {
		r.factories[format] = factory
	}
	return r
}

func (r *registry) Register(format string, factory LoaderFactory) error {
	if format == "" {
		return fmt.Errorf("format name cannot be empty")
	}
	if factory == nil {
		return fmt.Errorf("factory cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[format]; exists {
		return fmt.Errorf("format %q is already registered", format)
	}

	r.factories[format] = factory
	return nil
}

func (r *registry) Create(format string, opts Options) (Loader, error) {
	r.mu.RLock()
	factory, exists := r.factories[format]
	r.mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("format %q is not registered", format)
	}

	return factory(opts)
}

func (r *registry) ListFormats() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	formats := make([]string, 0, len(r.factories))
	for format := range r.factories {
		formats = append(formats, format)
	}
	return formats
}
