// Package tui renders a parameter editor as a sequence of terminal prompts.
// The default PromptDriver is backed by survey; tests and alternative
// front-ends supply their own driver through WithPromptDriver.
package tui
