// Package naming derives every class name, namespace and file path of the
// generated artifacts from a model name and its optional group.
//
// All functions here are pure: they read the configuration but never touch
// the filesystem.
package naming

import (
	"fmt"
	"path"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jinzhu/inflection"
	"github.com/kamui-project/svcgen/internal/config"
	iface "github.com/kamui-project/svcgen/internal/service/interface"
)

// Suffixes appended to the base name
const (
	InterfaceSuffix  = "RepositoryInterface"
	RepositorySuffix = "Repository"
	ServiceSuffix    = "Service"
)

// NamespaceSeparator separates PHP namespace segments
const NamespaceSeparator = `\`

var nameRegex = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_-]*$`)

// ValidateName reports whether name is a valid class identifier
func ValidateName(name string) bool {
	return nameRegex.MatchString(name)
}

// Studly converts name to StudlyCase, e.g. blog_post -> BlogPost.
// Words are separated by _, - or whitespace; only the first letter of each
// word is uppercased, so APIKey and Oauth2client are kept as they are.
func Studly(name string) string {
	words := strings.FieldsFunc(name, func(r rune) bool {
		return r == '_' || r == '-' || unicode.IsSpace(r)
	})

	var b strings.Builder
	for _, word := range words {
		r, size := utf8.DecodeRuneInString(word)
		b.WriteRune(unicode.ToUpper(r))
		b.WriteString(word[size:])
	}

	return b.String()
}

// Camel converts name to camelCase by lowercasing the first letter of its StudlyCase form
func Camel(name string) string {
	studly := Studly(name)
	if studly == "" {
		return ""
	}

	r, size := utf8.DecodeRuneInString(studly)
	return string(unicode.ToLower(r)) + studly[size:]
}

// Artifact is the identity of one generated file
type Artifact struct {
	Namespace string
	Class     string

	// Path is project-relative and slash-separated
	Path string
}

// FQN returns the fully qualified class name
func (a Artifact) FQN() string {
	return a.Namespace + NamespaceSeparator + a.Class
}

// File returns the base name of the artifact's file
func (a Artifact) File() string {
	return path.Base(a.Path)
}

// Context holds every identifier of one repository-mode generation
type Context struct {
	BaseName   string
	SubGroup   string
	CamelName  string
	PluralName string

	InterfaceName  string
	RepositoryName string
	ServiceName    string

	Interface  Artifact
	Repository Artifact
	Service    Artifact

	ModelNamespace string

	BaseInterface  Artifact
	BaseRepository Artifact
}

// Derive builds the generation context for a model found in subGroup (empty for the models root).
// Class names depend on baseName only; namespaces and paths of all three artifacts share subGroup.
func Derive(cfg *config.Config, baseName, subGroup string) *Context {
	c := &Context{
		BaseName:       baseName,
		SubGroup:       subGroup,
		CamelName:      Camel(baseName),
		PluralName:     Plural(baseName, subGroup),
		InterfaceName:  baseName + InterfaceSuffix,
		RepositoryName: baseName + RepositorySuffix,
		ServiceName:    baseName + ServiceSuffix,
	}

	c.Interface = artifact(cfg, cfg.Paths.Interfaces, subGroup, c.InterfaceName)
	c.Repository = artifact(cfg, cfg.Paths.Repositories, subGroup, c.RepositoryName)
	c.Service = artifact(cfg, cfg.Paths.Services, subGroup, c.ServiceName)
	c.ModelNamespace = artifact(cfg, cfg.Paths.Models, subGroup, baseName).FQN()
	c.BaseInterface = baseArtifact(cfg, cfg.Paths.BaseInterface)
	c.BaseRepository = baseArtifact(cfg, cfg.Paths.BaseRepository)

	return c
}

// Plural returns the collection name: the group when there is one, otherwise the pluralized base name.
func Plural(baseName, subGroup string) string {
	if subGroup != "" {
		return subGroup
	}
	return inflection.Plural(baseName)
}

// InterfaceStub returns the substitutions for the repository interface
func (c *Context) InterfaceStub() iface.InterfaceStub {
	return iface.InterfaceStub{
		Namespace:              c.Interface.Namespace,
		BaseInterfaceNamespace: c.BaseInterface.FQN(),
		Class:                  c.InterfaceName,
		BaseInterface:          c.BaseInterface.Class,
	}
}

// RepositoryStub returns the substitutions for the repository implementation
func (c *Context) RepositoryStub() iface.RepositoryStub {
	return iface.RepositoryStub{
		Namespace:           c.Repository.Namespace,
		InterfaceNamespace:  c.Interface.FQN(),
		ModelNamespace:      c.ModelNamespace,
		BaseRepository:      c.BaseRepository.FQN(),
		Class:               c.RepositoryName,
		BaseRepositoryClass: c.BaseRepository.Class,
		Interface:           c.InterfaceName,
		ModelName:           c.BaseName,
		ModelVariable:       c.CamelName,
	}
}

// ServiceStub returns the substitutions for the service wrapper
func (c *Context) ServiceStub() iface.ServiceStub {
	return iface.ServiceStub{
		Namespace:          c.Service.Namespace,
		ModelNamePlural:    c.PluralName,
		ModelName:          c.BaseName,
		ModelVariable:      c.CamelName,
		InterfaceNamespace: c.Interface.FQN(),
	}
}

// ProviderPatch returns the use statements and binding for the registration file
func (c *Context) ProviderPatch() iface.ProviderPatch {
	return iface.ProviderPatch{
		UseStatements: []string{
			fmt.Sprintf("use %s;", c.Interface.FQN()),
			fmt.Sprintf("use %s;", c.Repository.FQN()),
		},
		Binding: fmt.Sprintf("$this->app->bind(%s::class, %s::class);", c.InterfaceName, c.RepositoryName),
	}
}

// PlainContext holds the identifiers of a plain service
type PlainContext struct {
	BaseName     string
	SubNamespace string
	Service      Artifact
}

// DerivePlain builds the context for a plain service. name may carry
// namespace segments separated by \ or /, each of which is studly-cased.
// A trailing Service suffix is not doubled.
func DerivePlain(cfg *config.Config, name string) *PlainContext {
	segments := SplitSegments(name)
	if len(segments) == 0 {
		return &PlainContext{}
	}

	for i, segment := range segments {
		segments[i] = Studly(segment)
	}

	base := segments[len(segments)-1]
	groups := segments[:len(segments)-1]

	class := base
	if !strings.HasSuffix(base, ServiceSuffix) || base == ServiceSuffix {
		class = base + ServiceSuffix
	}

	return &PlainContext{
		BaseName:     strings.TrimSuffix(class, ServiceSuffix),
		SubNamespace: strings.Join(groups, NamespaceSeparator),
		Service:      artifact(cfg, cfg.Paths.Services, path.Join(groups...), class),
	}
}

// Stub returns the substitutions for service.plain.stub
func (c *PlainContext) Stub() iface.PlainServiceStub {
	return iface.PlainServiceStub{
		Namespace: c.Service.Namespace,
		ClassName: c.Service.Class,
	}
}

// SplitSegments splits name on \ and /, dropping empty segments
func SplitSegments(name string) []string {
	return strings.FieldsFunc(name, func(r rune) bool {
		return r == '\\' || r == '/'
	})
}

// Namespace maps a project-relative directory to its PSR-4 namespace:
// the first segment (app, src, ...) becomes the root namespace.
func Namespace(cfg *config.Config, dir string) string {
	segments := SplitSegments(dir)
	if len(segments) > 0 {
		segments = segments[1:]
	}
	return strings.Join(append([]string{cfg.Namespaces.Root}, segments...), NamespaceSeparator)
}

// artifact places class under dir/subDir; subDir is slash-separated and may be empty.
func artifact(cfg *config.Config, dir, subDir, class string) Artifact {
	full := path.Join(dir, subDir)
	return Artifact{
		Namespace: Namespace(cfg, full),
		Class:     class,
		Path:      path.Join(full, class+cfg.Extension),
	}
}

func baseArtifact(cfg *config.Config, file string) Artifact {
	dir, name := path.Split(file)
	class := strings.TrimSuffix(name, path.Ext(name))
	return Artifact{
		Namespace: Namespace(cfg, dir),
		Class:     class,
		Path:      file,
	}
}
