// Package introspect discovers bean properties.
//
// A bean is a struct (or a pointer to one); its properties are the exported fields in
// declaration order, embedded structs flattened. Property names come from the format tag
// (name=...), then the configured tag (json by default), then the field name.
// Getters and setters operate on struct pointers through xunsafe fields.
package introspect
