package mockapi

// Seed loads a small, consistent data set into every collection.
func (s *Server) Seed() error {
	type seedRow struct {
		path string
		row  map[string]any
	}

	rows := []seedRow{
		{"departamento", map[string]any{"nombre": "Francisco Morazán"}},
		{"departamento", map[string]any{"nombre": "Cortés"}},
		{"municipio", map[string]any{"nombre": "Tegucigalpa", "departamentoid": 1}},
		{"municipio", map[string]any{"nombre": "San Pedro Sula", "departamentoid": 2}},
		{"facultades", map[string]any{"nombre": "Ingeniería", "siglas": "FI", "telefono": "2216-6100", "correo": "ingenieria@unah.edu"}},
		{"facultades", map[string]any{"nombre": "Ciencias Médicas", "siglas": "FCM", "telefono": "2232-2110", "correo": "medicas@unah.edu"}},
		{"carrera", map[string]any{"nombre": "Ingeniería en Sistemas", "facultadid": 1}},
		{"carrera", map[string]any{"nombre": "Medicina", "facultadid": 2}},
		{"areacientifica", map[string]any{"nombre": "Inteligencia Artificial"}},
		{"areacientifica", map[string]any{"nombre": "Epidemiología"}},
		{"personas", map[string]any{"nombres": "Ana", "apellidos": "Martínez", "correo": "ana.martinez@unah.edu", "fechanacimiento": "1988-04-12", "municipioidnacimiento": 1}},
		{"personas", map[string]any{"nombres": "Luis", "apellidos": "Hernández", "correo": "luis.hernandez@unah.edu", "fechanacimiento": "1979-11-02", "municipioidnacimiento": 2}},
		{"investigaciones", map[string]any{"titulo": "Modelos de lenguaje para el español", "facultadid": 1, "anio": 2024, "duracion": 18}},
		{"investigaciones", map[string]any{"titulo": "Vigilancia del dengue", "facultadid": 2, "anio": 2023, "duracion": 24}},
		{"titulo", map[string]any{"personaid": 1, "carreraid": 1, "fechagraduacion": "2011-12-10"}},
		{"titulo", map[string]any{"personaid": 2, "carreraid": 2, "fechagraduacion": "2004-06-20"}},
		{"investigacionpersona", map[string]any{"investigacionid": 1, "personaid": 1, "rol": "Investigadora principal"}},
		{"investigacionpersona", map[string]any{"investigacionid": 2, "personaid": 2, "rol": "Coinvestigador"}},
		{"personaareacientifica", map[string]any{"personaid": 1, "areacientificaid": 1}},
		{"personaareacientifica", map[string]any{"personaid": 2, "areacientificaid": 2}},
		{"personafacultad", map[string]any{"personaid": 1, "facultadid": 1}},
		{"personafacultad", map[string]any{"personaid": 2, "facultadid": 2}},
	}

	for _, r := range rows {
		if _, err := s.Insert(r.path, r.row); err != nil {
			return err
		}
	}
	return nil
}
