// Package form validates user input for an entity form and submits it as a
// single create or update request.
package form
