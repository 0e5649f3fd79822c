// Package resource models the k0rdent resource kinds that participate in the
// dependency graph.
//
// It wraps rendered MultiClusterService and ServiceTemplate manifests with a
// small common contract (name, kind, outgoing dependencies), plus a
// placeholder type for dependency targets whose full definition was not part
// of the rendered output. Dependencies are computed once at construction and
// are immutable afterwards.
package resource
