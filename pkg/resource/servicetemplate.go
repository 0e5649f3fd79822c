package resource

import (
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"

	"github.com/MacroPower/mcsgraph/pkg/kube"
)

var _ Resource = &ServiceTemplate{}

// ServiceTemplate wraps a rendered ServiceTemplate manifest. It carries at
// most one dependency, derived from `spec.resources.localSourceRef`.
type ServiceTemplate struct {
	name string
	deps []Ref
}

func NewServiceTemplate(obj *unstructured.Unstructured) *ServiceTemplate {
	st := &ServiceTemplate{
		name: kube.DeepGetString(obj.Object, "metadata.name", ""),
	}

	if ref := kube.DeepGetMap(obj.Object, "spec.resources.localSourceRef"); ref != nil {
		st.deps = append(st.deps, Ref{
			Name: kube.DeepGetString(ref, "name", ""),
			Kind: kube.DeepGetString(ref, "kind", ""),
		})
	}

	return st
}

func (st *ServiceTemplate) Name() string {
	return st.name
}

func (st *ServiceTemplate) Kind() string {
	return KindServiceTemplate
}

func (st *ServiceTemplate) Deps() []Ref {
	return st.deps
}
