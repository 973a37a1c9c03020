package catalog

import (
	"github.com/academia-admin/academia/internal/form"
	"github.com/academia-admin/academia/internal/model"
)

var _ Descriptor = (*Entry[model.Facultad])(nil)

func personaIDField() form.Field {
	return form.Field{
		Name: "personaid", Label: "ID Persona", Kind: form.KindInteger, Required: true,
		RequiredMessage: "El ID de Persona es obligatorio.", Placeholder: "ID de la Persona",
	}
}

func nombreField(placeholder string) form.Field {
	return form.Field{
		Name: "nombre", Label: "Nombre", Required: true,
		RequiredMessage: "El nombre es obligatorio.", Placeholder: placeholder,
	}
}

var (
	Personas = NewEntry[model.Persona](Meta{
		Base: "Persona", Path: "personas", IDField: "personaid", Name: "Personas",
		Noun: "Persona", NounPlural: "personas", Feminine: true,
		Fields: []form.Field{
			{Name: "nombres", Label: "Nombres", Required: true, RequiredMessage: "Los nombres son obligatorios.", Placeholder: "Ej. Juan Carlos"},
			{Name: "apellidos", Label: "Apellidos", Required: true, RequiredMessage: "Los apellidos son obligatorios.", Placeholder: "Ej. Pérez García"},
			{Name: "correo", Label: "Correo Electrónico", Kind: form.KindEmail, Required: true, RequiredMessage: "El correo es obligatorio.", Placeholder: "ejemplo@correo.com"},
			{Name: "telefono", Label: "Teléfono", Placeholder: "Ej. 2233-4455"},
			{Name: "celular", Label: "Celular", Placeholder: "Ej. 5566-7788"},
			{Name: "direccion", Label: "Dirección", Kind: form.KindMultiline, Placeholder: "Ej. Zona 1, Ciudad"},
			{Name: "fechanacimiento", Label: "Fecha de Nacimiento (YYYY-MM-DD)", Kind: form.KindDate, Placeholder: "Ej. 1990-05-20"},
			{Name: "municipioidnacimiento", Label: "ID Municipio de Nacimiento", Kind: form.KindInteger, Placeholder: "ID del Municipio"},
			{Name: "cui", Label: "CUI", Placeholder: "Ej. 1234567890101"},
			{Name: "pasaporte", Label: "Pasaporte"},
			{Name: "tiporol", Label: "Tipo de Rol", Placeholder: "Ej. Docente"},
		},
	})

	Facultades = NewEntry[model.Facultad](Meta{
		Base: "Facultad", Path: "facultades", IDField: "facultadid", Name: "Facultades",
		Noun: "Facultad", NounPlural: "facultades", Feminine: true,
		Fields: []form.Field{
			nombreField("Ej. Facultad de Ingeniería"),
			{Name: "siglas", Label: "Siglas", Placeholder: "Ej. FIUSAC"},
			{Name: "telefono", Label: "Teléfono", Placeholder: "Ej. 24189100"},
			{Name: "correo", Label: "Correo Electrónico", Kind: form.KindEmail, Placeholder: "ejemplo@facultad.com"},
		},
	})

	Carreras = NewEntry[model.Carrera](Meta{
		Base: "Carrera", Path: "carrera", IDField: "carreraid", Name: "Carreras",
		Noun: "Carrera", NounPlural: "carreras", Feminine: true,
		Fields: []form.Field{
			nombreField("Ej. Ingeniería en Sistemas"),
			{Name: "facultadid", Label: "ID Facultad", Kind: form.KindInteger, Required: true, RequiredMessage: "El ID de Facultad es obligatorio.", Placeholder: "ID de la Facultad"},
		},
	})

	Departamentos = NewEntry[model.Departamento](Meta{
		Base: "Departamento", Path: "departamento", IDField: "departamentoid", Name: "Departamentos",
		Noun: "Departamento", NounPlural: "departamentos",
		Fields: []form.Field{
			nombreField("Ej. Guatemala"),
		},
	})

	AreasCientificas = NewEntry[model.AreaCientifica](Meta{
		Base: "AreaCientifica", Path: "areacientifica", IDField: "areacientificaid", Name: "Áreas Científicas",
		Noun: "Área Científica", NounPlural: "áreas científicas", Feminine: true, Article: "el",
		Fields: []form.Field{
			nombreField("Ej. Ciencias de la Computación"),
			{Name: "descripcion", Label: "Descripción", Kind: form.KindMultiline, Placeholder: "Ej. Estudio de algoritmos..."},
		},
	})

	Investigaciones = NewEntry[model.Investigacion](Meta{
		Base: "Investigacion", Path: "investigaciones", IDField: "investigacionid", Name: "Investigaciones",
		Noun: "Investigación", NounPlural: "investigaciones", Feminine: true,
		Fields: []form.Field{
			{Name: "titulo", Label: "Título", Required: true, RequiredMessage: "El título es obligatorio.", Placeholder: "Ej. Desarrollo de IA"},
			{Name: "facultadid", Label: "ID Facultad", Kind: form.KindInteger, Required: true, RequiredMessage: "La facultad es obligatoria.", Placeholder: "ID de la Facultad"},
			{Name: "anio", Label: "Año", Kind: form.KindInteger, Required: true, RequiredMessage: "El año es obligatorio.", FormatMessage: "El año debe ser un número.", Placeholder: "Ej. 2024"},
			{Name: "duracion", Label: "Duración (meses)", Kind: form.KindInteger, Required: true, RequiredMessage: "La duración es obligatoria.", FormatMessage: "La duración debe ser un número.", Placeholder: "Ej. 12"},
		},
	})

	Municipios = NewEntry[model.Municipio](Meta{
		Base: "Municipio", Path: "municipio", IDField: "municipioid", Name: "Municipios",
		Noun: "Municipio", NounPlural: "municipios",
		Fields: []form.Field{
			nombreField("Ej. Mixco"),
			{Name: "departamentoid", Label: "ID Departamento", Kind: form.KindInteger, Required: true, RequiredMessage: "El ID de Departamento es obligatorio.", Placeholder: "ID del Departamento"},
		},
	})

	Titulos = NewEntry[model.Titulo](Meta{
		Base: "Titulo", Path: "titulo", IDField: "tituloid", Name: "Títulos",
		Noun: "Título", NounPlural: "títulos",
		Fields: []form.Field{
			personaIDField(),
			{Name: "carreraid", Label: "ID Carrera", Kind: form.KindInteger, Required: true, RequiredMessage: "El ID de Carrera es obligatorio.", Placeholder: "ID de la Carrera"},
			{Name: "fechagraduacion", Label: "Fecha Graduación (YYYY-MM-DD)", Kind: form.KindDate, Required: true, RequiredMessage: "La fecha de graduación es obligatoria.", Placeholder: "Ej. 2023-12-31"},
		},
	})

	InvestigacionPersonas = NewEntry[model.InvestigacionPersona](Meta{
		Base: "InvestigacionPersona", Path: "investigacionpersona", IDField: "investigacionpersonaid", Name: "Investigación-Persona",
		Noun: "Relación", NounPlural: "relaciones", Feminine: true,
		Fields: []form.Field{
			{Name: "investigacionid", Label: "ID Investigación", Kind: form.KindInteger, Required: true, RequiredMessage: "El ID de Investigación es obligatorio.", Placeholder: "ID de la Investigación"},
			personaIDField(),
			{Name: "rol", Label: "Rol", Required: true, RequiredMessage: "El Rol es obligatorio.", Placeholder: "Ej. Investigador Principal"},
		},
	})

	PersonaAreasCientificas = NewEntry[model.PersonaAreaCientifica](Meta{
		Base: "PersonaAreaCientifica", Path: "personaareacientifica", IDField: "personaareacientificaid", Name: "Persona-Área Científica",
		Noun: "Relación", NounPlural: "relaciones", Feminine: true,
		Fields: []form.Field{
			personaIDField(),
			{Name: "areacientificaid", Label: "ID Área Científica", Kind: form.KindInteger, Required: true, RequiredMessage: "El ID de Área Científica es obligatorio.", Placeholder: "ID del Área Científica"},
		},
	})

	PersonaFacultades = NewEntry[model.PersonaFacultad](Meta{
		Base: "PersonaFacultad", Path: "personafacultad", IDField: "personafacultadid", Name: "Persona-Facultad",
		Noun: "Relación", NounPlural: "relaciones", Feminine: true,
		Fields: []form.Field{
			personaIDField(),
			{Name: "facultadid", Label: "ID Facultad", Kind: form.KindInteger, Required: true, RequiredMessage: "El ID de Facultad es obligatorio.", Placeholder: "ID de la Facultad"},
		},
	})
)

// All returns every entity in home screen order.
func All() []Descriptor {
	return []Descriptor{
		Personas,
		Facultades,
		Carreras,
		Departamentos,
		AreasCientificas,
		Investigaciones,
		Municipios,
		Titulos,
		InvestigacionPersonas,
		PersonaAreasCientificas,
		PersonaFacultades,
	}
}

// Lookup finds an entity by API path, navigation base or route, ignoring case.
func Lookup(name string) (Descriptor, bool) {
	for _, d := range All() {
		m := d.Meta()
		if equalFold(name, m.Path) || equalFold(name, m.Base) || name == m.ListRoute() {
			return d, true
		}
	}
	return nil, false
}
