// Package diagram emits Mermaid flowcharts for resource dependency graphs.
package diagram

import (
	"bytes"
	"fmt"
	"io"
	"regexp"

	"github.com/MacroPower/mcsgraph/pkg/resource"
)

// Matches Helm-style templating placeholders, capturing the inner expression
// without its leading accessor character, e.g. `{{ .Release.Name }}` captures
// `Release.Name`.
var placeholderPattern = regexp.MustCompile(`\{\{\s*\W?(.*?)\s*\}\}`)

// Generate writes a fenced Mermaid `graph TD` block to w, containing one
// directed edge per dependency occurrence, in input order. Repeated edges are
// not deduplicated; Mermaid collapses nodes by identifier and treats repeated
// edge declarations as idempotent.
func Generate(w io.Writer, resources []resource.Resource) error {
	if _, err := fmt.Fprint(w, "```mermaid\ngraph TD\n"); err != nil {
		return fmt.Errorf("failed to write diagram header: %w", err)
	}

	for _, r := range resources {
		src := NodeLabel(r.Name(), r.Kind())

		for _, dep := range r.Deps() {
			dst := NodeLabel(dep.Name, dep.Kind)

			if _, err := fmt.Fprintf(w, "    %s --> %s\n", src, dst); err != nil {
				return fmt.Errorf("failed to write diagram edge: %w", err)
			}
		}
	}

	if _, err := fmt.Fprint(w, "```"); err != nil {
		return fmt.Errorf("failed to write diagram footer: %w", err)
	}

	return nil
}

// GenerateString renders the diagram for resources into a string.
func GenerateString(resources []resource.Resource) (string, error) {
	out := &bytes.Buffer{}
	if err := Generate(out, resources); err != nil {
		return "", err
	}

	return out.String(), nil
}

// NodeLabel composes the Mermaid node for a resource. The part before the
// bracket is the node identifier, so resources sharing a cleaned name and
// kind collapse into a single graphical node. The bracketed quoted part is
// the rendered display text.
func NodeLabel(name, kind string) string {
	cleanName := CleanPlaceholders(name)
	cleanKind := CleanPlaceholders(kind)

	return fmt.Sprintf("%s/%s[\"%s (%s)\"]", cleanName, cleanKind, cleanName, cleanKind)
}

// CleanPlaceholders replaces unresolved templating placeholders with their
// inner expression, which keeps labels readable for values the chart left
// unsubstituted at render time.
func CleanPlaceholders(s string) string {
	return placeholderPattern.ReplaceAllString(s, "$1")
}
