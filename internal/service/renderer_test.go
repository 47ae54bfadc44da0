package service_test

import (
	"testing"

	"github.com/kamui-project/svcgen/internal/errors"
	"github.com/kamui-project/svcgen/internal/log"
	"github.com/kamui-project/svcgen/internal/service"
	iface "github.com/kamui-project/svcgen/internal/service/interface"
	"github.com/kamui-project/svcgen/internal/service/servicetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateRenderer_Render(t *testing.T) {
	t.Parallel()

	p := servicetest.NewProject(t)
	renderer := service.NewTemplateRenderer(p.Config, p.FS, log.Discard())

	got, err := renderer.Render(iface.PlainServiceStub{Namespace: `App\Services`, ClassName: "TestService"})
	require.NoError(t, err)
	assert.Equal(t, "<?php\n\nnamespace App\\Services;\n\nclass TestService\n{\n    //\n}\n", got)
}

func TestTemplateRenderer_RenderRaw(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		template string
		subs     []iface.Substitution
		want     string
	}{
		{
			name:     "replaces every occurrence",
			template: "{{a}} and {{a}}",
			subs:     []iface.Substitution{{Placeholder: "{{a}}", Value: "x"}},
			want:     "x and x",
		},
		{
			name:     "unknown placeholders pass through",
			template: "{{a}} {{unknown}}",
			subs:     []iface.Substitution{{Placeholder: "{{a}}", Value: "x"}},
			want:     "x {{unknown}}",
		},
		{
			name:     "values are not re-scanned",
			template: "{{a}}-{{b}}",
			subs: []iface.Substitution{
				{Placeholder: "{{a}}", Value: "{{b}}"},
				{Placeholder: "{{b}}", Value: "B"},
			},
			want: "{{b}}-B",
		},
		{
			name:     "case sensitive keys",
			template: "{{ModelName}} {{modelName}}",
			subs: []iface.Substitution{
				{Placeholder: "{{ModelName}}", Value: "BlogPost"},
				{Placeholder: "{{modelName}}", Value: "blogPost"},
			},
			want: "BlogPost blogPost",
		},
		{
			name:     "regex metacharacters are literal",
			template: `{{ns}}\Foo $1`,
			subs:     []iface.Substitution{{Placeholder: "{{ns}}", Value: `App\$1`}},
			want:     `App\$1\Foo $1`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := servicetest.NewProject(t)
			p.Write(t, "stubs/custom.stub", tt.template)
			renderer := service.NewTemplateRenderer(p.Config, p.FS, log.Discard())

			got, err := renderer.RenderRaw("custom.stub", tt.subs)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTemplateRenderer_TemplateNotFound(t *testing.T) {
	t.Parallel()

	p := servicetest.NewProject(t)
	p.Remove(t, "stubs/service.stub")
	renderer := service.NewTemplateRenderer(p.Config, p.FS, log.Discard())

	_, err := renderer.Render(iface.ServiceStub{})
	require.ErrorIs(t, err, errors.ErrTemplateNotFound)
	assert.Contains(t, err.Error(), "service.stub")
}
