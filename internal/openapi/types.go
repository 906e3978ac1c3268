package openapi

// Version is the OpenAPI version written into generated documents.
const Version = "3.0.0"

// Names used by the generated path items.
const (
	StatusOK          = "200"
	MediaTypeJSON     = "application/json"
	DefaultExampleKey = "example"
	TypeObject        = "object"
	TypeString        = "string"

	schemaRefPrefix = "#/components/schemas/"
)

// Document is the root of a generated OpenAPI document.
type Document struct {
	OpenAPI    string                 `yaml:"openapi"`
	Info       Info                   `yaml:"info"`
	Paths      *OrderedMap[*PathItem] `yaml:"paths"`
	Components Components             `yaml:"components"`
	Tags       []Tag                  `yaml:"tags"`
}

// Info is the document's info block.
type Info struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Version     string `yaml:"version"`
}

// DefaultInfo returns the info block used when none is configured.
func DefaultInfo() Info {
	return Info{
		Title:       "Generated API",
		Description: "API basierend auf den Schnittstellenprozessen",
		Version:     "1.0.0",
	}
}

// Components holds reusable schema definitions.
type Components struct {
	Schemas *OrderedMap[*Schema] `yaml:"schemas"`
}

// Tag groups path items in rendered documentation.
type Tag struct {
	Name string `yaml:"name"`
}

// PathItem is the entry of a single path. Processes are documented under the
// OPTIONS operation.
type PathItem struct {
	Options *Operation `yaml:"options"`
}

// Operation documents one process group.
type Operation struct {
	Summary     string                 `yaml:"summary"`
	Description string                 `yaml:"description"`
	Tags        []string               `yaml:"tags"`
	Responses   *OrderedMap[*Response] `yaml:"responses"`
}

// Response is an operation response keyed by status code.
type Response struct {
	Description string                  `yaml:"description"`
	Content     *OrderedMap[*MediaType] `yaml:"content"`
}

// MediaType describes a response body.
type MediaType struct {
	Schema   SchemaUnion           `yaml:"schema"`
	Examples *OrderedMap[*Example] `yaml:"examples"`
}

// SchemaUnion accepts any of the referenced schemas.
type SchemaUnion struct {
	AnyOf []Reference `yaml:"anyOf"`
}

// Reference points at a component schema.
type Reference struct {
	Ref string `yaml:"$ref"`
}

// Example is a named example whose value is a list of example objects.
type Example struct {
	Value []*OrderedMap[string] `yaml:"value"`
}

// Schema is an object schema component.
type Schema struct {
	Type        string                 `yaml:"type"`
	Description string                 `yaml:"description"`
	Properties  *OrderedMap[*Property] `yaml:"properties"`
}

// Property is a string property restricted to an enumeration.
type Property struct {
	Type        string   `yaml:"type"`
	Description string   `yaml:"description"`
	Enum        []string `yaml:"enum"`
}

// NewDocument returns an empty document.
func NewDocument(version string, info Info) *Document {
	if version == "" {
		version = Version
	}

	return &Document{
		OpenAPI: version,
		Info:    info,
		Paths:   NewOrderedMap[*PathItem](),
		Components: Components{
			Schemas: NewOrderedMap[*Schema](),
		},
		Tags: []Tag{},
	}
}

// SchemaRef returns the reference to the component schema id.
func SchemaRef(id string) Reference {
	return Reference{Ref: schemaRefPrefix + id}
}

// NewPathItem returns a path item whose OPTIONS operation has an empty
// schema union and an empty example list under the 200 JSON response.
func NewPathItem(summary, description string, tags ...string) *PathItem {
	examples := NewOrderedMap[*Example]()
	examples.Set(DefaultExampleKey, &Example{Value: []*OrderedMap[string]{}})

	content := NewOrderedMap[*MediaType]()
	content.Set(MediaTypeJSON, &MediaType{
		Schema:   SchemaUnion{AnyOf: []Reference{}},
		Examples: examples,
	})

	responses := NewOrderedMap[*Response]()
	responses.Set(StatusOK, &Response{Content: content})

	return &PathItem{
		Options: &Operation{
			Summary:     summary,
			Description: description,
			Tags:        append([]string{}, tags...),
			Responses:   responses,
		},
	}
}

// Body returns the JSON body of the 200 response, or nil if the item does
// not have one.
func (p *PathItem) Body() *MediaType {
	if p == nil || p.Options == nil {
		return nil
	}

	resp, ok := p.Options.Responses.Get(StatusOK)
	if !ok || resp == nil {
		return nil
	}

	body, ok := resp.Content.Get(MediaTypeJSON)
	if !ok {
		return nil
	}

	return body
}

// DefaultExample returns the example list entry of the body.
func (m *MediaType) DefaultExample() *Example {
	if m == nil {
		return nil
	}

	ex, _ := m.Examples.Get(DefaultExampleKey)

	return ex
}

// HasTag reports whether a tag named name is present.
func (d *Document) HasTag(name string) bool {
	for _, t := range d.Tags {
		if t.Name == name {
			return true
		}
	}

	return false
}
