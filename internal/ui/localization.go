package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyHomeTitle         = "home_title"
	KeySettings          = "settings"
	KeyFile              = "file"
	KeyLanguage          = "language"
	KeyAPIBaseURL        = "api_base_url"
	KeyRequestTimeout    = "request_timeout"
	KeyRefetchAfterSave  = "refetch_after_save"
	KeyLogLevel          = "log_level"
	KeySave              = "save"
	KeySaving            = "saving"
	KeyCancel            = "cancel"
	KeyBack              = "back"
	KeyEdit              = "edit"
	KeyDelete            = "delete"
	KeyRetry             = "retry"
	KeySearch            = "search"
	KeyError             = "error"
	KeyConfirmDelete     = "confirm_delete"
	KeyConfirmDeleteText = "confirm_delete_text"
	KeySettingsSaved     = "settings_saved"
	KeyInvalidURL        = "invalid_url"
	KeyInvalidTimeout    = "invalid_timeout"
	KeyNoMatches         = "no_matches"
	KeyRequired          = "required_hint"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "es",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// The records are Spanish, so is the default chrome
		lang = "es"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to Spanish
	if texts, exists := l.texts["es"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"es": "Español",
		"en": "English",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// Spanish texts
	l.texts["es"] = map[string]string{
		KeyAppTitle:          "Academia",
		KeyHomeTitle:         "Gestión de Entidades",
		KeySettings:          "Configuración",
		KeyFile:              "Archivo",
		KeyLanguage:          "Idioma",
		KeyAPIBaseURL:        "URL del servidor",
		KeyRequestTimeout:    "Tiempo de espera (segundos, 0 = sin límite)",
		KeyRefetchAfterSave:  "Recargar la lista después de guardar",
		KeyLogLevel:          "Nivel de registro",
		KeySave:              "Guardar",
		KeySaving:            "Guardando...",
		KeyCancel:            "Cancelar",
		KeyBack:              "Atrás",
		KeyEdit:              "Editar",
		KeyDelete:            "Eliminar",
		KeyRetry:             "Reintentar",
		KeySearch:            "Buscar...",
		KeyError:             "Error",
		KeyConfirmDelete:     "Confirmar eliminación",
		KeyConfirmDeleteText: "¿Desea eliminar \"%s\"?",
		KeySettingsSaved:     "¡Configuración guardada!",
		KeyInvalidURL:        "URL inválida",
		KeyInvalidTimeout:    "El tiempo de espera debe ser un número",
		KeyNoMatches:         "Sin resultados.",
		KeyRequired:          "* Campo obligatorio",
	}

	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "Academia",
		KeyHomeTitle:         "Entity Management",
		KeySettings:          "Settings",
		KeyFile:              "File",
		KeyLanguage:          "Language",
		KeyAPIBaseURL:        "Server URL",
		KeyRequestTimeout:    "Request timeout (seconds, 0 = none)",
		KeyRefetchAfterSave:  "Reload list after saving",
		KeyLogLevel:          "Log level",
		KeySave:              "Save",
		KeySaving:            "Saving...",
		KeyCancel:            "Cancel",
		KeyBack:              "Back",
		KeyEdit:              "Edit",
		KeyDelete:            "Delete",
		KeyRetry:             "Retry",
		KeySearch:            "Search...",
		KeyError:             "Error",
		KeyConfirmDelete:     "Confirm deletion",
		KeyConfirmDeleteText: "Delete \"%s\"?",
		KeySettingsSaved:     "Settings saved successfully!",
		KeyInvalidURL:        "Invalid URL",
		KeyInvalidTimeout:    "The timeout must be a number",
		KeyNoMatches:         "No matches.",
		KeyRequired:          "* Required field",
	}
}
