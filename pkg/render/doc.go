// Package render defines the seam between the editor and the collaborators
// that draw it. A Renderer receives a Session, binds every schema parameter
// to a widget through Bind and reports user input back through the bound
// OnChange callback. Registry keeps renderers addressable by name for hosts
// such as the paramedit CLI.
package render
