package resource

const (
	KindMultiClusterService = "MultiClusterService"
	KindServiceTemplate     = "ServiceTemplate"
)

// Ref identifies a resource by name and kind.
type Ref struct {
	Name string
	Kind string
}

// Resource is the common contract over all graph node types.
type Resource interface {
	// Name returns the resource name.
	Name() string
	// Kind returns the resource kind.
	Kind() string
	// Deps returns the outgoing dependencies, in emission order.
	Deps() []Ref
}

var _ Resource = Placeholder{}

// Placeholder represents a reference to a resource whose full definition was
// not parsed, e.g. a dependency target outside the rendered chart. It never
// has dependencies of its own.
type Placeholder struct {
	ref Ref
}

func NewPlaceholder(name, kind string) Placeholder {
	return Placeholder{ref: Ref{Name: name, Kind: kind}}
}

func (p Placeholder) Name() string {
	return p.ref.Name
}

func (p Placeholder) Kind() string {
	return p.ref.Kind
}

func (p Placeholder) Deps() []Ref {
	return nil
}
