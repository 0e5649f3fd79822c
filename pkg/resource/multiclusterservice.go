package resource

import (
	"errors"
	"fmt"

	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"

	"github.com/MacroPower/mcsgraph/pkg/kube"
)

var ErrMissingTemplate = errors.New("service entry is missing a template")

var _ Resource = &MultiClusterService{}

// MultiClusterService wraps a rendered MultiClusterService manifest.
// Dependencies aggregate, in order, from `spec.serviceSpec.services` (each
// entry must name a ServiceTemplate via its `template` field),
// `spec.serviceSpec.templateResourceRefs`, and `spec.dependsOn`.
type MultiClusterService struct {
	name string
	deps []Ref
}

func NewMultiClusterService(obj *unstructured.Unstructured) (*MultiClusterService, error) {
	mcs := &MultiClusterService{
		name: kube.DeepGetString(obj.Object, "metadata.name", ""),
	}

	for i, svc := range kube.DeepGetSlice(obj.Object, "spec.serviceSpec.services") {
		svcObj, _ := svc.(map[string]any)

		// The one required field: a service entry without a template points at
		// nothing, which indicates a malformed chart output.
		tmpl, ok := svcObj["template"]
		if !ok {
			return nil, fmt.Errorf("%w: %s: spec.serviceSpec.services[%d]", ErrMissingTemplate, mcs.name, i)
		}

		tmplName, _ := tmpl.(string)
		mcs.deps = append(mcs.deps, Ref{Name: tmplName, Kind: KindServiceTemplate})
	}

	for _, tr := range kube.DeepGetSlice(obj.Object, "spec.serviceSpec.templateResourceRefs") {
		trObj, _ := tr.(map[string]any)
		mcs.deps = append(mcs.deps, Ref{
			Name: kube.DeepGetString(trObj, "resource.name", ""),
			Kind: kube.DeepGetString(trObj, "resource.kind", ""),
		})
	}

	for _, dep := range kube.DeepGetSlice(obj.Object, "spec.dependsOn") {
		depName, _ := dep.(string)
		mcs.deps = append(mcs.deps, Ref{Name: depName, Kind: KindMultiClusterService})
	}

	return mcs, nil
}

func (mcs *MultiClusterService) Name() string {
	return mcs.name
}

func (mcs *MultiClusterService) Kind() string {
	return KindMultiClusterService
}

func (mcs *MultiClusterService) Deps() []Ref {
	return mcs.deps
}
