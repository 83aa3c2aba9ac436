// Package loader reads the documents a host hands to the editor. A document
// carries the parameter schema and the initial model:
//
//	params:
//	  - {id: 1, name: Purpose, type: string}
//	model:
//	  paramValues:
//	    - {paramId: 1, value: casual}
//	  colors: []
//
// JSON documents are decoded directly so the passthrough payload keeps its
// exact bytes; YAML documents are converted and carry the payload as compact
// JSON. FromOpenAPI derives a schema from an OpenAPI component instead.
package loader
