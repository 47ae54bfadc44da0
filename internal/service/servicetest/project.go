// Package servicetest builds in-memory Laravel projects for generator tests.
package servicetest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kamui-project/svcgen/internal/config"
	"github.com/kamui-project/svcgen/internal/vfs"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// Root is the project root of every fixture project
const Root = "/project"

// InterfaceStub is a minimal repository.interface.stub
const InterfaceStub = `<?php

namespace {{namespace}};

use {{baseInterfaceNamespace}};

interface {{class}} extends {{baseInterface}}
{
    //
}
`

// RepositoryStub is a minimal repository.stub, using the published {{inferface}} spelling
const RepositoryStub = `<?php

namespace {{namespace}};

use {{interfaceNamespace}};
use {{modelNamespace}};
use {{baseRepository}};

class {{class}} extends {{baseRepositoryClass}} implements {{inferface}}
{
    public function __construct({{ModelName}} ${{modelName}})
    {
        parent::__construct(${{modelName}});
    }
}
`

// ServiceStub is a minimal service.stub
const ServiceStub = `<?php

namespace {{namespace}};

use {{interfaceNamespace}};

class {{ModelName}}Service
{
    public function __construct(protected {{ModelName}}RepositoryInterface ${{modelName}}Repository)
    {
    }

    public function all{{ModelNamePlural}}()
    {
        return $this->{{modelName}}Repository->all();
    }
}
`

// PlainServiceStub is a minimal service.plain.stub
const PlainServiceStub = `<?php

namespace {{namespace}};

class {{className}}
{
    //
}
`

// Provider is a freshly published RepositoryServiceProvider
const Provider = `<?php

namespace App\Providers;

use Illuminate\Support\ServiceProvider;

class RepositoryServiceProvider extends ServiceProvider
{
    /**
     * Register services.
     */
    public function register(): void
    {
        //
    }

    /**
     * Bootstrap services.
     */
    public function boot(): void
    {
        //
    }
}
`

// Project is an in-memory project tree
type Project struct {
	Config *config.Config
	FS     vfs.FS
}

// NewProject creates a project with the base scaffold, stubs, registration file,
// and the models User (root), Post (Blog group) and Order (Shop group).
func NewProject(t testing.TB) *Project {
	t.Helper()

	p := &Project{
		Config: config.Default(Root),
		FS:     vfs.NewMemMapFS(),
	}

	p.Write(t, p.Config.Paths.BaseInterface, "<?php\n\nnamespace App\\Interfaces;\n\ninterface BaseInterface\n{\n}\n")
	p.Write(t, p.Config.Paths.BaseRepository, "<?php\n\nnamespace App\\Repositories;\n\nclass Repository\n{\n}\n")
	p.Write(t, p.Config.Paths.Provider, Provider)

	p.Write(t, "stubs/repository.interface.stub", InterfaceStub)
	p.Write(t, "stubs/repository.stub", RepositoryStub)
	p.Write(t, "stubs/service.stub", ServiceStub)
	p.Write(t, "stubs/service.plain.stub", PlainServiceStub)

	p.AddModel(t, "", "User")
	p.AddModel(t, "Blog", "Post")
	p.AddModel(t, "Shop", "Order")

	return p
}

// AddModel creates a model class file, in group when it is not empty
func (p *Project) AddModel(t testing.TB, group, name string) {
	t.Helper()

	rel := filepath.Join(p.Config.Paths.Models, group, name+p.Config.Extension)
	p.Write(t, rel, "<?php\n\nclass "+name+"\n{\n}\n")
}

// Write creates a project-relative file
func (p *Project) Write(t testing.TB, rel, content string) {
	t.Helper()

	path := p.Config.Path(rel)
	require.NoError(t, p.FS.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, vfs.WriteFile(p.FS, path, []byte(content), 0644))
}

// Read returns the content of a project-relative file
func (p *Project) Read(t testing.TB, rel string) string {
	t.Helper()

	data, err := vfs.ReadFile(p.FS, p.Config.Path(rel))
	require.NoError(t, err)
	return string(data)
}

// Exists reports whether a project-relative file exists
func (p *Project) Exists(t testing.TB, rel string) bool {
	t.Helper()

	exists, err := vfs.FileExists(p.FS, p.Config.Path(rel))
	require.NoError(t, err)
	return exists
}

// Remove deletes a project-relative file
func (p *Project) Remove(t testing.TB, rel string) {
	t.Helper()

	require.NoError(t, p.FS.Remove(p.Config.Path(rel)))
}

// Files lists every project-relative file under dir, slash-separated
func (p *Project) Files(t testing.TB, dir string) []string {
	t.Helper()

	var files []string

	root := p.Config.Path(dir)
	exists, err := vfs.DirExists(p.FS, root)
	require.NoError(t, err)
	if !exists {
		return nil
	}

	require.NoError(t, afero.Walk(p.FS, root, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return err
		}

		rel, err := filepath.Rel(p.Config.ProjectRoot, path)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))

		return nil
	}))

	return files
}
