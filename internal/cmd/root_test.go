package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/kamui-project/svcgen/internal/di"
	"github.com/kamui-project/svcgen/internal/errors"
	"github.com/kamui-project/svcgen/internal/log"
	"github.com/kamui-project/svcgen/internal/service/servicetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_MakeServiceInMemory(t *testing.T) {
	p := servicetest.NewProject(t)

	root := NewRootCommand()
	root.SetContainer(di.NewContainerWithFS(p.Config, p.FS, log.Discard()))

	var out bytes.Buffer
	root.Command().SetOut(&out)
	root.Command().SetArgs([]string{"make:service", "Post", "-R"})

	require.NoError(t, root.Command().Execute())

	assert.Equal(t, "✓ PostRepositoryInterface.php created successfully.\n"+
		"✓ PostRepository.php created successfully.\n"+
		"✓ PostService.php created successfully.\n"+
		"✓ RepositoryServiceProvider updated successfully.\n", out.String())

	assert.True(t, p.Exists(t, "app/Interfaces/Blog/PostRepositoryInterface.php"))
	assert.True(t, p.Exists(t, "app/Repositories/Blog/PostRepository.php"))
	assert.True(t, p.Exists(t, "app/Services/Blog/PostService.php"))
	assert.Contains(t, p.Read(t, p.Config.Paths.Provider), "$this->app->bind(PostRepositoryInterface::class, PostRepository::class);")
}

func TestRootCommand_MissingPrerequisite(t *testing.T) {
	p := servicetest.NewProject(t)
	p.Remove(t, p.Config.Paths.BaseInterface)

	root := NewRootCommand()
	root.SetContainer(di.NewContainerWithFS(p.Config, p.FS, log.Discard()))

	var out bytes.Buffer
	root.Command().SetOut(&out)
	root.Command().SetErr(&out)
	root.Command().SetArgs([]string{"make:service", "User", "-R"})

	err := root.Execute()
	require.ErrorIs(t, err, errors.ErrPrerequisiteMissing)
	assert.Equal(t, 1, errors.ExitCode(err))
	assert.Contains(t, out.String(), "Error: app/Interfaces/BaseInterface.php does not exist.")
	assert.Empty(t, p.Files(t, p.Config.Paths.Services))
}

// writeProject lays out a minimal Laravel project on disk
func writeProject(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	files := map[string]string{
		"app/Interfaces/BaseInterface.php":            "<?php\n",
		"app/Repositories/Repository.php":             "<?php\n",
		"app/Providers/RepositoryServiceProvider.php": servicetest.Provider,
		"app/Models/User.php":                         "<?php\n",
		"stubs/repository.interface.stub":             servicetest.InterfaceStub,
		"stubs/repository.stub":                       servicetest.RepositoryStub,
		"stubs/service.stub":                          servicetest.ServiceStub,
		"stubs/service.plain.stub":                    servicetest.PlainServiceStub,
	}

	for rel, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}

	return dir
}

func TestRootCommand_ProjectFlag(t *testing.T) {
	dir := writeProject(t)

	root := NewRootCommand()

	var out, stderr bytes.Buffer
	root.Command().SetOut(&out)
	root.Command().SetErr(&stderr)
	root.Command().SetArgs([]string{"-C", dir, "--log-level", "debug", "make:service", `Billing\Invoice`})

	require.NoError(t, root.Execute())

	data, err := os.ReadFile(filepath.Join(dir, "app", "Services", "Billing", "InvoiceService.php"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "namespace App\\Services\\Billing;")
	assert.Contains(t, string(data), "class InvoiceService")

	assert.Equal(t, "✓ InvoiceService.php created successfully.\n", out.String())
	assert.Contains(t, stderr.String(), "Wrote file", "debug log goes to stderr")
}

func TestRootCommand_ConfigFile(t *testing.T) {
	dir := writeProject(t)
	configFile := filepath.Join(dir, "svcgen.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("paths:\n  services: app/Domain/Services\n"), 0644))

	root := NewRootCommand()
	root.Command().SetOut(&bytes.Buffer{})
	root.Command().SetArgs([]string{"-C", dir, "--config", configFile, "make:service", "User", "-R"})

	require.NoError(t, root.Execute())

	data, err := os.ReadFile(filepath.Join(dir, "app", "Domain", "Services", "UserService.php"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "namespace App\\Domain\\Services;")
}

func TestRootCommand_InitializeErrors(t *testing.T) {
	tests := []struct {
		name string
		args func(dir string) []string
	}{
		{
			name: "missing config file",
			args: func(dir string) []string {
				return []string{"-C", dir, "--config", filepath.Join(dir, "missing.yaml"), "make:service", "Test"}
			},
		},
		{
			name: "invalid log level",
			args: func(dir string) []string {
				return []string{"-C", dir, "--log-level", "loud", "make:service", "Test"}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := writeProject(t)

			root := NewRootCommand()
			root.Command().SetOut(&bytes.Buffer{})
			root.Command().SetErr(&bytes.Buffer{})
			root.Command().SetArgs(tt.args(dir))

			err := root.Execute()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "failed to initialize")

			_, statErr := os.Stat(filepath.Join(dir, "app", "Services", "TestService.php"))
			assert.True(t, os.IsNotExist(statErr))
		})
	}
}
