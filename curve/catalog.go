package curve

import (
	"fmt"

	"github.com/emirpasic/gods/maps/treemap"
)

// Catalog is a registry of named curves. Names are kept in sorted order,
// so listings are stable. A Catalog is not safe for concurrent registration.
type Catalog struct {
	curves *treemap.Map
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{curves: treemap.NewWithStringComparator()}
}

// DefaultCatalog returns a catalog holding the predefined curves.
func DefaultCatalog() *Catalog {
	c := NewCatalog()
	c.Register("star", Star)
	c.Register("heart", Heart)
	c.Register("batman", Batman)
	c.Register("circle", Circle(1))
	c.Register("ellipse", Ellipse(2, 1))
	return c
}

// Register adds f under name, replacing any previous entry of that name.
func (c *Catalog) Register(name string, f PeriodicFunction) {
	if IsNil(f) {
		tracer().Errorf("refusing to register nil curve %q", name)
		return
	}
	c.curves.Put(name, f)
}

// Lookup finds the curve registered under name.
func (c *Catalog) Lookup(name string) (PeriodicFunction, error) {
	v, found := c.curves.Get(name)
	if !found {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCurve, name)
	}
	return v.(PeriodicFunction), nil
}

// Names lists all registered curve names in ascending order.
func (c *Catalog) Names() []string {
	keys := c.curves.Keys()
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.(string)
	}
	return names
}

// Len is the number of registered curves.
func (c *Catalog) Len() int {
	return c.curves.Size()
}
