package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle      = "app_title"
	KeyHubs          = "hubs"
	KeyMembers       = "members"
	KeyEntities      = "entities"
	KeySettings      = "settings"
	KeyLanguage      = "language"
	KeyTheme         = "theme"
	KeyPageSize      = "page_size"
	KeyLayoutProfile = "layout_profile"
	KeySave          = "save"
	KeyCancel        = "cancel"
	KeyClose         = "close"
	KeyOverviewTab   = "overview_tab"
	KeyActivityTab   = "activity_tab"
	KeyDetailsTab    = "details_tab"
	KeyNoOwner       = "no_owner"
	KeyNoSelection   = "no_selection"
	KeySettingsSaved = "settings_saved"
	KeyAllEntities   = "all_entities"
	KeyOpenEntities  = "open_entities"
	KeyDoneEntities  = "done_entities"
	KeyProgress      = "progress"
)

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
		// Use system locale - simplified to English for now
		lang = "en"
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

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:      "HubDeck",
		KeyHubs:          "Hubs",
		KeyMembers:       "Members",
		KeyEntities:      "Entities",
		KeySettings:      "Settings",
		KeyLanguage:      "Language",
		KeyTheme:         "Theme",
		KeyPageSize:      "Items per page",
		KeyLayoutProfile: "Layout",
		KeySave:          "Save",
		KeyCancel:        "Cancel",
		KeyClose:         "Close",
		KeyOverviewTab:   "Overview",
		KeyActivityTab:   "Activity",
		KeyDetailsTab:    "Details",
		KeyNoOwner:       "Unassigned",
		KeyNoSelection:   "Nothing selected",
		KeySettingsSaved: "Settings saved successfully!",
		KeyAllEntities:   "All",
		KeyOpenEntities:  "Open",
		KeyDoneEntities:  "Done",
		KeyProgress:      "Progress",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:      "HubDeck",
		KeyHubs:          "Хабы",
		KeyMembers:       "Участники",
		KeyEntities:      "Объекты",
		KeySettings:      "Настройки",
		KeyLanguage:      "Язык",
		KeyTheme:         "Тема",
		KeyPageSize:      "Элементов на странице",
		KeyLayoutProfile: "Макет",
		KeySave:          "Сохранить",
		KeyCancel:        "Отмена",
		KeyClose:         "Закрыть",
		KeyOverviewTab:   "Обзор",
		KeyActivityTab:   "Активность",
		KeyDetailsTab:    "Детали",
		KeyNoOwner:       "Не назначен",
		KeyNoSelection:   "Ничего не выбрано",
		KeySettingsSaved: "Настройки успешно сохранены!",
		KeyAllEntities:   "Все",
		KeyOpenEntities:  "Открытые",
		KeyDoneEntities:  "Завершённые",
		KeyProgress:      "Прогресс",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:      "HubDeck",
		KeyHubs:          "Hubs",
		KeyMembers:       "Membros",
		KeyEntities:      "Entidades",
		KeySettings:      "Configurações",
		KeyLanguage:      "Idioma",
		KeyTheme:         "Tema",
		KeyPageSize:      "Itens por página",
		KeyLayoutProfile: "Leiaute",
		KeySave:          "Salvar",
		KeyCancel:        "Cancelar",
		KeyClose:         "Fechar",
		KeyOverviewTab:   "Visão geral",
		KeyActivityTab:   "Atividade",
		KeyDetailsTab:    "Detalhes",
		KeyNoOwner:       "Sem responsável",
		KeyNoSelection:   "Nada selecionado",
		KeySettingsSaved: "Configurações salvas com sucesso!",
		KeyAllEntities:   "Todos",
		KeyOpenEntities:  "Abertos",
		KeyDoneEntities:  "Concluídos",
		KeyProgress:      "Progresso",
	}
}
