// Package view holds the helpers shared by the server-rendered templates.
package view

import (
	"html/template"

	"apikit/internal/shared/blank"
)

// Funcs returns the template helpers:
//
//	{{if notempty .Contacts}} ... {{end}}
func Funcs() template.FuncMap {
	return template.FuncMap{
		"notempty": NotEmpty,
		"empty":    blank.Is,
	}
}

func NotEmpty(v any) bool {
	return !blank.Is(v)
}

// New creates a named template with the helpers installed.
func New(name string) *template.Template {
	return template.New(name).Funcs(Funcs())
}
