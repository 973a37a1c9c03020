package mockapi

// collection describes one REST resource of the backend.
type collection struct {
	path     string
	idField  string
	required []string
	// joined fields are computed on list responses only and never stored
	joined []string
	enrich func(s *Server, row map[string]any)
}

// collections mirrors the backend's resource paths.
func collections() []*collection {
	return []*collection{
		{
			path:     "personas",
			idField:  "personaid",
			required: []string{"nombres", "apellidos", "correo"},
			joined:   []string{"municipio", "departamento"},
			enrich: func(s *Server, row map[string]any) {
				municipio, ok := s.lookup("municipio", row["municipioidnacimiento"])
				if !ok {
					return
				}
				row["municipio"] = municipio["nombre"]
				if departamento, ok := s.lookup("departamento", municipio["departamentoid"]); ok {
					row["departamento"] = departamento["nombre"]
				}
			},
		},
		{
			path:     "facultades",
			idField:  "facultadid",
			required: []string{"nombre"},
			joined:   []string{"total_personas"},
			enrich: func(s *Server, row map[string]any) {
				row["total_personas"] = s.count("personafacultad", "facultadid", row["facultadid"])
			},
		},
		{
			path:     "carrera",
			idField:  "carreraid",
			required: []string{"nombre", "facultadid"},
			joined:   []string{"facultad"},
			enrich: func(s *Server, row map[string]any) {
				s.join(row, "facultad", "facultades", "facultadid", "nombre")
			},
		},
		{
			path:     "departamento",
			idField:  "departamentoid",
			required: []string{"nombre"},
		},
		{
			path:     "areacientifica",
			idField:  "areacientificaid",
			required: []string{"nombre"},
		},
		{
			path:     "investigaciones",
			idField:  "investigacionid",
			required: []string{"titulo", "facultadid", "anio", "duracion"},
			joined:   []string{"facultad"},
			enrich: func(s *Server, row map[string]any) {
				s.join(row, "facultad", "facultades", "facultadid", "nombre")
			},
		},
		{
			path:     "municipio",
			idField:  "municipioid",
			required: []string{"nombre", "departamentoid"},
			joined:   []string{"departamento"},
			enrich: func(s *Server, row map[string]any) {
				s.join(row, "departamento", "departamento", "departamentoid", "nombre")
			},
		},
		{
			path:     "titulo",
			idField:  "tituloid",
			required: []string{"personaid", "carreraid", "fechagraduacion"},
			joined:   []string{"nombres", "apellidos", "carrera"},
			enrich: func(s *Server, row map[string]any) {
				s.joinPersona(row)
				s.join(row, "carrera", "carrera", "carreraid", "nombre")
			},
		},
		{
			path:     "investigacionpersona",
			idField:  "investigacionpersonaid",
			required: []string{"investigacionid", "personaid", "rol"},
			joined:   []string{"titulo_investigacion", "nombres", "apellidos"},
			enrich: func(s *Server, row map[string]any) {
				s.joinPersona(row)
				s.join(row, "titulo_investigacion", "investigaciones", "investigacionid", "titulo")
			},
		},
		{
			path:     "personaareacientifica",
			idField:  "personaareacientificaid",
			required: []string{"personaid", "areacientificaid"},
			joined:   []string{"nombres", "apellidos", "area_cientifica"},
			enrich: func(s *Server, row map[string]any) {
				s.joinPersona(row)
				s.join(row, "area_cientifica", "areacientifica", "areacientificaid", "nombre")
			},
		},
		{
			path:     "personafacultad",
			idField:  "personafacultadid",
			required: []string{"personaid", "facultadid"},
			joined:   []string{"nombres", "apellidos", "facultad"},
			enrich: func(s *Server, row map[string]any) {
				s.joinPersona(row)
				s.join(row, "facultad", "facultades", "facultadid", "nombre")
			},
		},
	}
}
