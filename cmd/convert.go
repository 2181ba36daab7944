package cmd

import (
	"context"
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"gopkg.in/yaml.v3"
)

// ConvertCmd converts a literal or an input document into a type
type ConvertCmd struct {
	Type  string `short:"t" long:"type" required:"true" description:"target type expression, i.e. int, []time, map[string]decimal or a config type"`
	Value string `short:"v" long:"value" description:"YAML or JSON literal"`
	Input string `short:"i" long:"input" description:"input document URL"`
	Dump  bool   `short:"d" long:"dump" description:"dump converted Go value structure"`
	root  *Options
}

// Execute runs convert command
func (c *ConvertCmd) Execute(_ []string) error {
	ctx := context.Background()
	logger := c.root.logger()
	service, err := NewService(ctx, c.root.Config, logger)
	if err != nil {
		return err
	}
	var value interface{}
	switch {
	case c.Input != "":
		value, err = service.Load(ctx, c.Input)
	case c.Value != "":
		value, err = parseLiteral(c.Value)
	default:
		err = fmt.Errorf("either --value or --input is required")
	}
	if err != nil {
		return err
	}
	result, err := service.Convert(c.Type, value)
	if err != nil {
		return err
	}
	if c.Dump {
		spew.Fdump(c.root.out, result)
		return nil
	}
	if name, ok := typeString(result); ok {
		_, err = fmt.Fprintln(c.root.out, name)
		return err
	}
	data, err := yaml.Marshal(result)
	if err != nil {
		return err
	}
	_, err = c.root.out.Write(data)
	return err
}
