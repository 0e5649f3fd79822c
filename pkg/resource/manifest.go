package resource

import (
	"fmt"

	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"

	"github.com/MacroPower/mcsgraph/pkg/kube"
)

// FromManifest builds the resource models for all MultiClusterService and
// ServiceTemplate objects in the manifest stream, in that kind order,
// preserving document order within each kind. Other kinds are ignored.
func FromManifest(objs []*unstructured.Unstructured) ([]Resource, error) {
	resources := []Resource{}

	for _, obj := range kube.FilterKind(objs, KindMultiClusterService) {
		mcs, err := NewMultiClusterService(obj)
		if err != nil {
			return nil, fmt.Errorf("failed to read MultiClusterService: %w", err)
		}

		resources = append(resources, mcs)
	}

	for _, obj := range kube.FilterKind(objs, KindServiceTemplate) {
		resources = append(resources, NewServiceTemplate(obj))
	}

	return resources, nil
}
