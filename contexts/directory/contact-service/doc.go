// Package contactservice contains the directory contact service: a contact
// book whose list, read and write endpoints answer through the shared
// response envelope.
//
// The module keeps domain/application logic decoupled from runtime/platform
// concerns through ports and adapter composition.
package contactservice
