package morph

import (
	"fmt"
	"reflect"
	"unicode"

	"github.com/viant/tagly/format/text"
	"gopkg.in/yaml.v3"
)

type (
	// Config represents registry configuration
	Config struct {
		DateFormats   []string               `yaml:"dateFormats,omitempty"`
		TimeLayouts   []string               `yaml:"timeLayouts,omitempty"`
		TagName       string                 `yaml:"tagName,omitempty"`
		CaseSensitive bool                   `yaml:"caseSensitive,omitempty"`
		CaseFormat    string                 `yaml:"caseFormat,omitempty"`
		Defaults      map[string]interface{} `yaml:"defaults,omitempty"`
		Types         []*TypeConfig          `yaml:"types,omitempty"`
	}

	// TypeConfig defines a named bean type
	TypeConfig struct {
		Name       string            `yaml:"name"`
		Properties []*PropertyConfig `yaml:"properties"`
	}

	// PropertyConfig defines a bean property, Tag is appended to the generated struct tag
	PropertyConfig struct {
		Name string `yaml:"name"`
		Type string `yaml:"type"`
		Tag  string `yaml:"tag,omitempty"`
	}
)

// LoadConfig decodes YAML config
func LoadConfig(data []byte) (*Config, error) {
	ret := &Config{}
	if err := yaml.Unmarshal(data, ret); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return ret, nil
}

// Options returns registry options
func (c *Config) Options() []Option {
	var ret []Option
	if len(c.TimeLayouts) > 0 {
		ret = append(ret, WithTimeLayouts(c.TimeLayouts...))
	}
	if len(c.DateFormats) > 0 {
		ret = append(ret, WithDateFormats(c.DateFormats...))
	}
	if c.TagName != "" {
		ret = append(ret, WithTagName(c.TagName))
	}
	if c.CaseSensitive {
		ret = append(ret, WithCaseSensitive(true))
	}
	if c.CaseFormat != "" {
		ret = append(ret, WithCaseFormat(text.NewCaseFormat(c.CaseFormat)))
	}
	return ret
}

// Apply registers config types and default values
func (c *Config) Apply(registry *Registry) error {
	tagName := registry.options.TagName
	for _, typeConfig := range c.Types {
		if typeConfig.Name == "" {
			return fmt.Errorf("type name was empty")
		}
		t, err := typeConfig.build(registry, tagName)
		if err != nil {
			return fmt.Errorf("invalid type %v: %w", typeConfig.Name, err)
		}
		registry.RegisterName(typeConfig.Name, t)
	}
	for expr, value := range c.Defaults {
		t, err := registry.ParseType(expr)
		if err != nil {
			return err
		}
		if err = registry.SetDefault(t, value); err != nil {
			return fmt.Errorf("invalid %v default: %w", expr, err)
		}
	}
	return nil
}

func (t *TypeConfig) build(registry *Registry, tagName string) (reflect.Type, error) {
	var fields []reflect.StructField
	names := map[string]bool{}
	for _, property := range t.Properties {
		fieldName, err := exportedName(property.Name)
		if err != nil {
			return nil, err
		}
		if names[fieldName] {
			return nil, fmt.Errorf("duplicate property: %v", property.Name)
		}
		names[fieldName] = true
		fieldType, err := registry.ParseType(property.Type)
		if err != nil {
			return nil, fmt.Errorf("property %v: %w", property.Name, err)
		}
		tag := fmt.Sprintf(`%v:"%v"`, tagName, property.Name)
		if tagName != "yaml" {
			tag += fmt.Sprintf(` yaml:"%v"`, property.Name)
		}
		if property.Tag != "" {
			tag += " " + property.Tag
		}
		fields = append(fields, reflect.StructField{Name: fieldName, Type: fieldType, Tag: reflect.StructTag(tag)})
	}
	return reflect.StructOf(fields), nil
}

func exportedName(name string) (string, error) {
	runes := []rune(name)
	if len(runes) == 0 {
		return "", fmt.Errorf("property name was empty")
	}
	for i, r := range runes {
		if !(unicode.IsLetter(r) || r == '_' || (i > 0 && unicode.IsDigit(r))) {
			return "", fmt.Errorf("invalid property name: %v", name)
		}
	}
	runes[0] = unicode.ToUpper(runes[0])
	if !unicode.IsUpper(runes[0]) {
		return "X" + string(runes), nil
	}
	return string(runes), nil
}
