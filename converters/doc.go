// Package converters implements the per-category V1/V2 converters and the
// registry that selects them. The struct converter walks the attribute
// descriptors of a type and delegates every attribute value to the converter
// of the attribute's category, so nested structs, collections and entity
// references convert recursively.
package converters
