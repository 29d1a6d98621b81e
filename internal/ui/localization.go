package ui

import (
	"os"
	"strings"

	"golang.org/x/text/language"
)

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle           = "app_title"
	KeyFullName           = "full_name"
	KeyIDNumber           = "id_number"
	KeyGender             = "gender"
	KeyProvince           = "province"
	KeyDateOfBirth        = "date_of_birth"
	KeyEnterFullName      = "enter_full_name"
	KeyEnterIDNumber      = "enter_id_number"
	KeyEnterProvince      = "enter_province"
	KeyEnterDateOfBirth   = "enter_date_of_birth"
	KeySaveRecord         = "save_record"
	KeyClose              = "close"
	KeyError              = "error"
	KeySuccess            = "success"
	KeyAllFieldsMandatory = "all_fields_mandatory"
	KeyMissingField       = "missing_field"
	KeyInvalidDate        = "invalid_date"
	KeyRecordSaved        = "record_saved"
	KeySettings           = "settings"
	KeyFile               = "file"
	KeyLanguage           = "language"
	KeyOpenRecords        = "open_records"
	KeyRevealRecords      = "reveal_records"
	KeyQuit               = "quit"
	KeyRecordsFile        = "records_file"
	KeyResetAfterSave     = "reset_after_save"
	KeySave               = "save"
	KeyCancel             = "cancel"
	KeyBrowse             = "browse"
	KeySettingsSaved      = "settings_saved"
	KeyErrorOpeningFile   = "error_opening_file"
)

// Languages with translations, in matcher preference order
var supportedLanguages = []string{"en", "ru", "pt"}

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		lang = systemLanguage()
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

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
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
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// systemLanguage picks the closest supported language for the POSIX locale
// environment, falling back to English.
func systemLanguage() string {
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if value := os.Getenv(key); value != "" {
			return matchLanguage(value)
		}
	}
	return "en"
}

// matchLanguage maps a locale such as "pt_BR.UTF-8" to a supported code
func matchLanguage(locale string) string {
	if i := strings.IndexAny(locale, ".@"); i >= 0 {
		locale = locale[:i]
	}
	locale = strings.ReplaceAll(locale, "_", "-")

	tags := make([]language.Tag, 0, len(supportedLanguages))
	for _, code := range supportedLanguages {
		tags = append(tags, language.Make(code))
	}

	matcher := language.NewMatcher(tags)
	_, index, confidence := matcher.Match(language.Make(locale))
	if confidence == language.No {
		return "en"
	}
	return supportedLanguages[index]
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:           "User Application Form",
		KeyFullName:           "Full Name",
		KeyIDNumber:           "ID Number",
		KeyGender:             "Gender",
		KeyProvince:           "Home Province",
		KeyDateOfBirth:        "Date of Birth",
		KeyEnterFullName:      "Enter Full Name",
		KeyEnterIDNumber:      "Enter ID Number",
		KeyEnterProvince:      "Enter Home Province",
		KeyEnterDateOfBirth:   "YYYY-MM-DD",
		KeySaveRecord:         "Save Record",
		KeyClose:              "Close",
		KeyError:              "Error",
		KeySuccess:            "Success",
		KeyAllFieldsMandatory: "All fields are mandatory.",
		KeyMissingField:       "Missing field",
		KeyInvalidDate:        "Date of birth must be YYYY-MM-DD",
		KeyRecordSaved:        "Record saved successfully.",
		KeySettings:           "Settings",
		KeyFile:               "File",
		KeyLanguage:           "Language",
		KeyOpenRecords:        "Open Records File",
		KeyRevealRecords:      "Show Records File in Folder",
		KeyQuit:               "Quit",
		KeyRecordsFile:        "Records File",
		KeyResetAfterSave:     "Clear form after saving",
		KeySave:               "Save",
		KeyCancel:             "Cancel",
		KeyBrowse:             "Browse",
		KeySettingsSaved:      "Settings saved successfully!",
		KeyErrorOpeningFile:   "Error opening file",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:           "Анкета пользователя",
		KeyFullName:           "Полное имя",
		KeyIDNumber:           "Номер документа",
		KeyGender:             "Пол",
		KeyProvince:           "Регион проживания",
		KeyDateOfBirth:        "Дата рождения",
		KeyEnterFullName:      "Введите полное имя",
		KeyEnterIDNumber:      "Введите номер документа",
		KeyEnterProvince:      "Введите регион",
		KeyEnterDateOfBirth:   "ГГГГ-ММ-ДД",
		KeySaveRecord:         "Сохранить запись",
		KeyClose:              "Закрыть",
		KeyError:              "Ошибка",
		KeySuccess:            "Готово",
		KeyAllFieldsMandatory: "Все поля обязательны.",
		KeyMissingField:       "Не заполнено поле",
		KeyInvalidDate:        "Дата рождения должна быть в формате ГГГГ-ММ-ДД",
		KeyRecordSaved:        "Запись успешно сохранена.",
		KeySettings:           "Настройки",
		KeyFile:               "Файл",
		KeyLanguage:           "Язык",
		KeyOpenRecords:        "Открыть файл записей",
		KeyRevealRecords:      "Показать файл записей в папке",
		KeyQuit:               "Выход",
		KeyRecordsFile:        "Файл записей",
		KeyResetAfterSave:     "Очищать форму после сохранения",
		KeySave:               "Сохранить",
		KeyCancel:             "Отмена",
		KeyBrowse:             "Обзор",
		KeySettingsSaved:      "Настройки успешно сохранены!",
		KeyErrorOpeningFile:   "Ошибка открытия файла",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:           "Formulário de Inscrição",
		KeyFullName:           "Nome Completo",
		KeyIDNumber:           "Número de Identificação",
		KeyGender:             "Gênero",
		KeyProvince:           "Província de Origem",
		KeyDateOfBirth:        "Data de Nascimento",
		KeyEnterFullName:      "Digite o nome completo",
		KeyEnterIDNumber:      "Digite o número de identificação",
		KeyEnterProvince:      "Digite a província",
		KeyEnterDateOfBirth:   "AAAA-MM-DD",
		KeySaveRecord:         "Salvar Registro",
		KeyClose:              "Fechar",
		KeyError:              "Erro",
		KeySuccess:            "Sucesso",
		KeyAllFieldsMandatory: "Todos os campos são obrigatórios.",
		KeyMissingField:       "Campo ausente",
		KeyInvalidDate:        "A data de nascimento deve ser AAAA-MM-DD",
		KeyRecordSaved:        "Registro salvo com sucesso.",
		KeySettings:           "Configurações",
		KeyFile:               "Arquivo",
		KeyLanguage:           "Idioma",
		KeyOpenRecords:        "Abrir Arquivo de Registros",
		KeyRevealRecords:      "Mostrar Arquivo na Pasta",
		KeyQuit:               "Sair",
		KeyRecordsFile:        "Arquivo de Registros",
		KeyResetAfterSave:     "Limpar formulário após salvar",
		KeySave:               "Salvar",
		KeyCancel:             "Cancelar",
		KeyBrowse:             "Navegar",
		KeySettingsSaved:      "Configurações salvas com sucesso!",
		KeyErrorOpeningFile:   "Erro ao abrir arquivo",
	}
}
