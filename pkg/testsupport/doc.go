// Package testsupport holds fixtures and comparison helpers shared by the
// editor, renderer and CLI tests.
package testsupport
