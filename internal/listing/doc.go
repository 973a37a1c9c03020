// Package listing keeps the in-memory collection behind a list screen and
// reconciles it with the create/update results handed back by forms.
package listing
