package model

// Package model defines the academic records exchanged with the REST backend:
// people, faculties, careers, departments, scientific areas, research projects,
// municipalities, degrees and the many-to-many join records. Every record is a
// flat JSON object whose identifier is assigned by the server, and is decorated
// with a string id and a display name before it is rendered in a list.
