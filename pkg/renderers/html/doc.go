// Package html renders a parameter editor as an HTML form using pongo2
// templates, and reads posted forms back into the editor with
// ApplySubmission. Inputs are named "param-<id>".
package html
