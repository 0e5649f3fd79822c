package helm_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MacroPower/mcsgraph/pkg/helm"
)

func TestTemplate(t *testing.T) {
	t.Parallel()

	manifest, err := helm.Template(&helm.TemplateOpts{
		ChartDir:    filepath.Join("testdata", "charts", "demo"),
		ReleaseName: "test",
		Namespace:   "default",
	})
	require.NoError(t, err)

	assert.Contains(t, manifest, "kind: MultiClusterService")
	assert.Contains(t, manifest, "name: demo-mcs")
	assert.Contains(t, manifest, "kind: ServiceTemplate")
	assert.Contains(t, manifest, "template: st-a")
	assert.Contains(t, manifest, "name: test-cm")
}

func TestTemplate_ValuesFile(t *testing.T) {
	t.Parallel()

	manifest, err := helm.Template(&helm.TemplateOpts{
		ChartDir:    filepath.Join("testdata", "charts", "demo"),
		ReleaseName: "test",
		Namespace:   "default",
		ValuesFiles: []string{filepath.Join("testdata", "values-override.yaml")},
	})
	require.NoError(t, err)

	assert.Contains(t, manifest, "template: st-override")
	assert.NotContains(t, manifest, "template: st-a")
}

func TestTemplate_InlineValues(t *testing.T) {
	t.Parallel()

	manifest, err := helm.Template(&helm.TemplateOpts{
		ChartDir:    filepath.Join("testdata", "charts", "demo"),
		ReleaseName: "test",
		Namespace:   "default",
		ValuesFiles: []string{filepath.Join("testdata", "values-override.yaml")},
		Values:      map[string]any{"templateName": "st-inline"},
	})
	require.NoError(t, err)

	// Inline values win over values files.
	assert.Contains(t, manifest, "template: st-inline")
}

func TestTemplate_MissingChart(t *testing.T) {
	t.Parallel()

	_, err := helm.Template(&helm.TemplateOpts{
		ChartDir:    filepath.Join("testdata", "charts", "nonexistent"),
		ReleaseName: "test",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load chart")
}

func TestTemplate_MissingValuesFile(t *testing.T) {
	t.Parallel()

	_, err := helm.Template(&helm.TemplateOpts{
		ChartDir:    filepath.Join("testdata", "charts", "demo"),
		ReleaseName: "test",
		ValuesFiles: []string{filepath.Join("testdata", "nonexistent.yaml")},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read values file")
}

func TestTemplate_InvalidKubeVersion(t *testing.T) {
	t.Parallel()

	_, err := helm.Template(&helm.TemplateOpts{
		ChartDir:    filepath.Join("testdata", "charts", "demo"),
		ReleaseName: "test",
		KubeVersion: "not-a-version",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse kube version")
}

func TestMergeMaps(t *testing.T) {
	t.Parallel()

	a := map[string]any{
		"x": 1,
		"nested": map[string]any{
			"keep":     "a",
			"override": "a",
		},
	}
	b := map[string]any{
		"nested": map[string]any{
			"override": "b",
			"add":      "b",
		},
	}

	got := helm.MergeMaps(a, b)

	assert.Equal(t, map[string]any{
		"x": 1,
		"nested": map[string]any{
			"keep":     "a",
			"override": "b",
			"add":      "b",
		},
	}, got)

	// Inputs stay untouched.
	assert.Equal(t, "a", a["nested"].(map[string]any)["override"])
}

func TestTemplateArgs(t *testing.T) {
	t.Parallel()

	args := helm.TemplateArgs(&helm.TemplateOpts{
		ChartDir:    "charts/demo",
		ReleaseName: "rel",
		Namespace:   "ns",
		ValuesFiles: []string{"v1.yaml", "v2.yaml"},
		KubeVersion: "1.30",
		APIVersions: []string{"foo/v1"},
		SkipCRDs:    true,
	})

	assert.Equal(t, []string{
		"template", "rel", "charts/demo",
		"--namespace", "ns",
		"--values", "v1.yaml",
		"--values", "v2.yaml",
		"--kube-version", "1.30",
		"--api-versions", "foo/v1",
		"--skip-crds",
	}, args)
}

func TestWriteValues(t *testing.T) {
	t.Parallel()

	p, err := helm.WriteValues(map[string]any{"a": "b"})
	require.NoError(t, err)

	t.Cleanup(func() { _ = os.RemoveAll(p) })

	data, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Equal(t, "a: b\n", string(data))
}
