package config

const (
	LangEN = "en"
	LangES = "es"
)

// GetLocaleConfig normalizes the --language flag to a supported locale.
func GetLocaleConfig(lang string) string {
	switch lang {
	case LangEN:
		return LangEN
	case LangES:
		return LangES
	default:
		return LangEN
	}
}
