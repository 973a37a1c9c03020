package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Persona is a person registered in the institution.
type Persona struct {
	PersonaID             int64  `json:"personaid,omitempty"`
	Nombres               string `json:"nombres,omitempty"`
	Apellidos             string `json:"apellidos,omitempty"`
	Telefono              string `json:"telefono,omitempty"`
	Celular               string `json:"celular,omitempty"`
	Correo                string `json:"correo,omitempty"`
	Direccion             string `json:"direccion,omitempty"`
	MunicipioIDNacimiento *int64 `json:"municipioidnacimiento,omitempty"`
	FechaNacimiento       string `json:"fechanacimiento,omitempty"` // YYYY-MM-DD
	CUI                   string `json:"cui,omitempty"`
	Pasaporte             string `json:"pasaporte,omitempty"`
	TipoRol               string `json:"tiporol,omitempty"`

	// Joined by the list endpoint only
	Municipio    string `json:"municipio,omitempty"`
	Departamento string `json:"departamento,omitempty"`
}

func (p Persona) Key() int64 { return p.PersonaID }

func (p Persona) Label() string {
	return strings.TrimSpace(p.Nombres + " " + p.Apellidos)
}

func (p Persona) Subtitle() string { return p.Correo }

// Facultad is a faculty.
type Facultad struct {
	FacultadID int64  `json:"facultadid,omitempty"`
	Nombre     string `json:"nombre,omitempty"`
	Siglas     string `json:"siglas,omitempty"`
	Telefono   string `json:"telefono,omitempty"`
	Correo     string `json:"correo,omitempty"`

	// Joined by the list endpoint only
	TotalPersonas json.Number `json:"total_personas,omitempty"`
}

func (f Facultad) Key() int64       { return f.FacultadID }
func (f Facultad) Label() string    { return f.Nombre }
func (f Facultad) Subtitle() string { return f.Correo }

// Carrera is a career offered by a faculty.
type Carrera struct {
	CarreraID  int64  `json:"carreraid,omitempty"`
	Nombre     string `json:"nombre,omitempty"`
	FacultadID int64  `json:"facultadid,omitempty"`

	// Joined by the list endpoint only
	Facultad string `json:"facultad,omitempty"`
}

func (c Carrera) Key() int64       { return c.CarreraID }
func (c Carrera) Label() string    { return c.Nombre }
func (c Carrera) Subtitle() string { return "Facultad: " + orNA(c.Facultad) }

// Departamento is a geographic department.
type Departamento struct {
	DepartamentoID int64  `json:"departamentoid,omitempty"`
	Nombre         string `json:"nombre,omitempty"`
}

func (d Departamento) Key() int64       { return d.DepartamentoID }
func (d Departamento) Label() string    { return d.Nombre }
func (d Departamento) Subtitle() string { return "" }

// AreaCientifica is a scientific area.
type AreaCientifica struct {
	AreaCientificaID int64  `json:"areacientificaid,omitempty"`
	Nombre           string `json:"nombre,omitempty"`
	Descripcion      string `json:"descripcion,omitempty"`
}

func (a AreaCientifica) Key() int64       { return a.AreaCientificaID }
func (a AreaCientifica) Label() string    { return a.Nombre }
func (a AreaCientifica) Subtitle() string { return a.Descripcion }

// Investigacion is a research project run by a faculty.
type Investigacion struct {
	InvestigacionID int64  `json:"investigacionid,omitempty"`
	FacultadID      int64  `json:"facultadid,omitempty"`
	Anio            int    `json:"anio"`
	Titulo          string `json:"titulo,omitempty"`
	Duracion        int    `json:"duracion"` // months

	// Joined by the list endpoint only
	Facultad string `json:"facultad,omitempty"`
}

func (i Investigacion) Key() int64    { return i.InvestigacionID }
func (i Investigacion) Label() string { return i.Titulo }

func (i Investigacion) Subtitle() string {
	return fmt.Sprintf("Año: %d - Duración: %d meses", i.Anio, i.Duracion)
}

// Municipio is a municipality inside a department.
type Municipio struct {
	MunicipioID    int64  `json:"municipioid,omitempty"`
	Nombre         string `json:"nombre,omitempty"`
	DepartamentoID int64  `json:"departamentoid,omitempty"`

	// Joined by the list endpoint only
	Departamento string `json:"departamento,omitempty"`
}

func (m Municipio) Key() int64       { return m.MunicipioID }
func (m Municipio) Label() string    { return m.Nombre }
func (m Municipio) Subtitle() string { return "Departamento: " + orNA(m.Departamento) }

// Titulo is a degree a person obtained in a career.
type Titulo struct {
	TituloID        int64  `json:"tituloid,omitempty"`
	PersonaID       int64  `json:"personaid,omitempty"`
	CarreraID       int64  `json:"carreraid,omitempty"`
	FechaGraduacion string `json:"fechagraduacion,omitempty"` // YYYY-MM-DD

	// Joined by the list endpoint only
	Nombres   string `json:"nombres,omitempty"`
	Apellidos string `json:"apellidos,omitempty"`
	Carrera   string `json:"carrera,omitempty"`
}

func (t Titulo) Key() int64 { return t.TituloID }

func (t Titulo) Label() string {
	return fullName(t.Nombres, t.Apellidos) + " - " + orNA(t.Carrera)
}

func (t Titulo) Subtitle() string { return "Graduación: " + FormatDate(t.FechaGraduacion) }

// InvestigacionPersona links a person to a research project with a role.
type InvestigacionPersona struct {
	InvestigacionPersonaID int64  `json:"investigacionpersonaid,omitempty"`
	InvestigacionID        int64  `json:"investigacionid,omitempty"`
	PersonaID              int64  `json:"personaid,omitempty"`
	Rol                    string `json:"rol,omitempty"`

	// Joined by the list endpoint only
	TituloInvestigacion string `json:"titulo_investigacion,omitempty"`
	Nombres             string `json:"nombres,omitempty"`
	Apellidos           string `json:"apellidos,omitempty"`
}

func (r InvestigacionPersona) Key() int64 { return r.InvestigacionPersonaID }

func (r InvestigacionPersona) Label() string {
	return fmt.Sprintf("%s - %s (%s)", fullName(r.Nombres, r.Apellidos), orNA(r.TituloInvestigacion), r.Rol)
}

func (r InvestigacionPersona) Subtitle() string {
	return fmt.Sprintf("Persona ID: %d - Investigación ID: %d", r.PersonaID, r.InvestigacionID)
}

// PersonaAreaCientifica links a person to a scientific area.
type PersonaAreaCientifica struct {
	PersonaAreaCientificaID int64 `json:"personaareacientificaid,omitempty"`
	PersonaID               int64 `json:"personaid,omitempty"`
	AreaCientificaID        int64 `json:"areacientificaid,omitempty"`

	// Joined by the list endpoint only
	Nombres        string `json:"nombres,omitempty"`
	Apellidos      string `json:"apellidos,omitempty"`
	AreaCientifica string `json:"area_cientifica,omitempty"`
}

func (r PersonaAreaCientifica) Key() int64 { return r.PersonaAreaCientificaID }

func (r PersonaAreaCientifica) Label() string {
	return fullName(r.Nombres, r.Apellidos) + " - " + orNA(r.AreaCientifica)
}

func (r PersonaAreaCientifica) Subtitle() string {
	return fmt.Sprintf("Persona ID: %d - Área ID: %d", r.PersonaID, r.AreaCientificaID)
}

// PersonaFacultad links a person to a faculty.
type PersonaFacultad struct {
	PersonaFacultadID int64 `json:"personafacultadid,omitempty"`
	PersonaID         int64 `json:"personaid,omitempty"`
	FacultadID        int64 `json:"facultadid,omitempty"`

	// Joined by the list endpoint only
	Nombres   string `json:"nombres,omitempty"`
	Apellidos string `json:"apellidos,omitempty"`
	Facultad  string `json:"facultad,omitempty"`
}

func (r PersonaFacultad) Key() int64 { return r.PersonaFacultadID }

func (r PersonaFacultad) Label() string {
	return fullName(r.Nombres, r.Apellidos) + " - " + orNA(r.Facultad)
}

func (r PersonaFacultad) Subtitle() string {
	return fmt.Sprintf("Persona ID: %d - Facultad ID: %d", r.PersonaID, r.FacultadID)
}
