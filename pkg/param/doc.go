// Package param defines the schema and wire types shared by the editor, its
// rendering collaborators and host integrations. A schema is an ordered list
// of Parameter values; slice order is display order. A Model is the sparse
// external representation of editor state: one ParameterValue per known id
// plus an opaque passthrough payload (serialized under the `colors` key)
// that the editor stores and re-emits without ever decoding it.
package param
