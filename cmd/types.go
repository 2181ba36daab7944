package cmd

import (
	"context"
	"fmt"
)

// TypesCmd prints every known type name with its Go type
type TypesCmd struct {
	root *Options
}

// Execute runs types command
func (c *TypesCmd) Execute(_ []string) error {
	service, err := NewService(context.Background(), c.root.Config, c.root.logger())
	if err != nil {
		return err
	}
	registry := service.Registry()
	for _, name := range registry.TypeNames() {
		t, _ := registry.LookupName(name)
		if _, err = fmt.Fprintf(c.root.out, "%s\t%s\n", name, t.String()); err != nil {
			return err
		}
	}
	return nil
}
