package iface

// Template ids of the published stubs
const (
	TemplateInterface    = "repository.interface.stub"
	TemplateRepository   = "repository.stub"
	TemplateService      = "service.stub"
	TemplatePlainService = "service.plain.stub"
)

// Substitution replaces every occurrence of Placeholder with Value
type Substitution struct {
	Placeholder string
	Value       string
}

// Stub is a typed substitution record for one template
type Stub interface {
	TemplateID() string
	Substitutions() []Substitution
}

// InterfaceStub fills repository.interface.stub
type InterfaceStub struct {
	Namespace              string
	BaseInterfaceNamespace string
	Class                  string
	BaseInterface          string
}

func (s InterfaceStub) TemplateID() string { return TemplateInterface }

func (s InterfaceStub) Substitutions() []Substitution {
	return []Substitution{
		{"{{namespace}}", s.Namespace},
		{"{{baseInterfaceNamespace}}", s.BaseInterfaceNamespace},
		{"{{class}}", s.Class},
		{"{{baseInterface}}", s.BaseInterface},
	}
}

// RepositoryStub fills repository.stub
type RepositoryStub struct {
	Namespace           string
	InterfaceNamespace  string
	ModelNamespace      string
	BaseRepository      string
	Class               string
	BaseRepositoryClass string
	Interface           string
	ModelName           string
	ModelVariable       string
}

func (s RepositoryStub) TemplateID() string { return TemplateRepository }

// Substitutions fills {{inferface}} as well, the spelling used by the published stub.
func (s RepositoryStub) Substitutions() []Substitution {
	return []Substitution{
		{"{{namespace}}", s.Namespace},
		{"{{interfaceNamespace}}", s.InterfaceNamespace},
		{"{{modelNamespace}}", s.ModelNamespace},
		{"{{baseRepository}}", s.BaseRepository},
		{"{{class}}", s.Class},
		{"{{baseRepositoryClass}}", s.BaseRepositoryClass},
		{"{{inferface}}", s.Interface},
		{"{{interface}}", s.Interface},
		{"{{ModelName}}", s.ModelName},
		{"{{modelName}}", s.ModelVariable},
	}
}

// ServiceStub fills service.stub
type ServiceStub struct {
	Namespace          string
	ModelNamePlural    string
	ModelName          string
	ModelVariable      string
	InterfaceNamespace string
}

func (s ServiceStub) TemplateID() string { return TemplateService }

func (s ServiceStub) Substitutions() []Substitution {
	return []Substitution{
		{"{{namespace}}", s.Namespace},
		{"{{ModelNamePlural}}", s.ModelNamePlural},
		{"{{ModelName}}", s.ModelName},
		{"{{modelName}}", s.ModelVariable},
		{"{{interfaceNamespace}}", s.InterfaceNamespace},
	}
}

// PlainServiceStub fills service.plain.stub
type PlainServiceStub struct {
	Namespace string
	ClassName string
}

func (s PlainServiceStub) TemplateID() string { return TemplatePlainService }

func (s PlainServiceStub) Substitutions() []Substitution {
	return []Substitution{
		{"{{namespace}}", s.Namespace},
		{"{{className}}", s.ClassName},
	}
}
