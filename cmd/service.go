package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/morph"
	"gopkg.in/yaml.v3"
)

// Service converts CLI inputs with a registry built from the optional config
type Service struct {
	registry *morph.Registry
	fs       afs.Service
	logger   *slog.Logger
}

// Registry returns the conversion registry
func (s *Service) Registry() *morph.Registry {
	return s.registry
}

// Convert converts value into the type described by typeExpr
func (s *Service) Convert(typeExpr string, value interface{}) (interface{}, error) {
	t, err := s.registry.ParseType(typeExpr)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("converting", "type", t.String(), "source", fmt.Sprintf("%T", value))
	return s.registry.Morph(t, value)
}

// Load downloads and decodes an input document, .json documents are decoded with gojay,
// other documents as YAML
func (s *Service) Load(ctx context.Context, URL string) (interface{}, error) {
	data, err := s.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to download %v: %w", URL, err)
	}
	s.logger.Debug("loaded input", "url", URL, "bytes", len(data))
	if strings.HasSuffix(strings.ToLower(URL), ".json") {
		return decodeJSON(data)
	}
	return parseLiteral(string(data))
}

func parseLiteral(text string) (interface{}, error) {
	var ret interface{}
	if err := yaml.Unmarshal([]byte(text), &ret); err != nil {
		return nil, fmt.Errorf("failed to parse value: %w", err)
	}
	return ret, nil
}

func (s *Service) loadConfig(ctx context.Context, URL string) (*morph.Config, error) {
	data, err := s.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to download config %v: %w", URL, err)
	}
	return morph.LoadConfig(data)
}

// NewService creates a service, configURL is optional
func NewService(ctx context.Context, configURL string, logger *slog.Logger) (*Service, error) {
	ret := &Service{fs: afs.New(), logger: logger}
	if configURL == "" {
		ret.registry = morph.New()
		return ret, nil
	}
	config, err := ret.loadConfig(ctx, configURL)
	if err != nil {
		return nil, err
	}
	ret.registry = morph.New(config.Options()...)
	if err = config.Apply(ret.registry); err != nil {
		return nil, fmt.Errorf("invalid config %v: %w", configURL, err)
	}
	logger.Debug("loaded config", "url", configURL, "types", len(config.Types))
	return ret, nil
}

func typeString(value interface{}) (string, bool) {
	t, ok := value.(reflect.Type)
	if !ok || t == nil {
		return "", false
	}
	return t.String(), true
}
