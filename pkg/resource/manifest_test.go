package resource_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MacroPower/mcsgraph/pkg/kube"
	"github.com/MacroPower/mcsgraph/pkg/resource"
)

const manifestStream = `
apiVersion: v1
kind: ConfigMap
metadata:
  name: ignored
---
apiVersion: k0rdent.mirantis.com/v1beta1
kind: ServiceTemplate
metadata:
  name: st-a
---
apiVersion: k0rdent.mirantis.com/v1beta1
kind: MultiClusterService
metadata:
  name: mcs-a
spec:
  serviceSpec:
    services:
      - name: app
        template: st-a
`

func TestFromManifest(t *testing.T) {
	t.Parallel()

	objs, err := kube.SplitYAML([]byte(manifestStream))
	require.NoError(t, err)

	resources, err := resource.FromManifest(objs)
	require.NoError(t, err)
	require.Len(t, resources, 2)

	// MultiClusterService models come first, regardless of document order.
	assert.Equal(t, "MultiClusterService", resources[0].Kind())
	assert.Equal(t, "mcs-a", resources[0].Name())
	assert.Equal(t, "ServiceTemplate", resources[1].Kind())
	assert.Equal(t, "st-a", resources[1].Name())
}

func TestFromManifest_MissingTemplate(t *testing.T) {
	t.Parallel()

	objs, err := kube.SplitYAML([]byte(`
kind: MultiClusterService
metadata:
  name: mcs-broken
spec:
  serviceSpec:
    services:
      - name: app
`))
	require.NoError(t, err)

	_, err = resource.FromManifest(objs)
	require.ErrorIs(t, err, resource.ErrMissingTemplate)
}
