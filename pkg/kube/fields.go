package kube

import (
	"strings"

	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
)

// DeepGet retrieves a nested value from obj using a dot-separated path,
// returning def when any intermediate value is missing or not a mapping.
func DeepGet(obj map[string]any, path string, def any) any {
	v, ok, err := unstructured.NestedFieldNoCopy(obj, strings.Split(path, ".")...)
	if err != nil || !ok || v == nil {
		return def
	}

	return v
}

// DeepGetString is [DeepGet] constrained to string values.
func DeepGetString(obj map[string]any, path, def string) string {
	s, ok := DeepGet(obj, path, def).(string)
	if !ok {
		return def
	}

	return s
}

// DeepGetSlice is [DeepGet] constrained to sequence values. Missing or
// non-sequence values yield an empty slice.
func DeepGetSlice(obj map[string]any, path string) []any {
	s, ok := DeepGet(obj, path, nil).([]any)
	if !ok {
		return nil
	}

	return s
}

// DeepGetMap is [DeepGet] constrained to mapping values. Missing or
// non-mapping values yield nil.
func DeepGetMap(obj map[string]any, path string) map[string]any {
	m, ok := DeepGet(obj, path, nil).(map[string]any)
	if !ok {
		return nil
	}

	return m
}
