package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyFeed              = "feed"
	KeySearch            = "search"
	KeyCategories        = "categories"
	KeyFavorites         = "favorites"
	KeyAdmin             = "admin"
	KeySettings          = "settings"
	KeyFile              = "file"
	KeyLanguage          = "language"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeyUpNext            = "up_next"
	KeyPlayingNextIn     = "playing_next_in"
	KeyCancelAutoplay    = "cancel_autoplay"
	KeyQueueEmpty        = "queue_empty"
	KeyLoadingMore       = "loading_more"
	KeyEndOfFeed         = "end_of_feed"
	KeyLoadFailed        = "load_failed"
	KeySponsored         = "sponsored"
	KeySearchPlaceholder = "search_placeholder"
	KeySearchTooShort    = "search_too_short"
	KeyNoResults         = "no_results"
	KeyResultsFor        = "results_for"
	KeyRecent            = "recent"
	KeyTrending          = "trending"
	KeyNoFavorites       = "no_favorites"
	KeyReport            = "report"
	KeyReportReason      = "report_reason"
	KeyReportNote        = "report_note"
	KeyReported          = "reported"
	KeyNotPlayable       = "not_playable"
	KeyRetry             = "retry"
	KeyJobStats          = "job_stats"
	KeyAttempts          = "attempts"
	KeyVolume            = "volume"
	KeyPlaybackRate      = "playback_rate"
	KeyAutoplay          = "autoplay"
	KeyPageSize          = "page_size"
	KeySponsoredCadence  = "sponsored_cadence"
	KeyCatalogSource     = "catalog_source"
	KeySearchQuery       = "search_query"
	KeyPlaylist          = "playlist"
	KeySettingsSaved     = "settings_saved"
	KeyRestartRequired   = "restart_required"
	KeyPlayerSettings    = "player_settings"
	KeyFeedSettings      = "feed_settings"
	KeyInterfaceSettings = "interface_settings"
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

	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

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
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "VoidPlay",
		KeyFeed:              "Feed",
		KeySearch:            "Search",
		KeyCategories:        "Categories",
		KeyFavorites:         "Favorites",
		KeyAdmin:             "Admin",
		KeySettings:          "Settings",
		KeyFile:              "File",
		KeyLanguage:          "Language",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeyUpNext:            "Up next",
		KeyPlayingNextIn:     "Playing next in %d",
		KeyCancelAutoplay:    "Cancel autoplay",
		KeyQueueEmpty:        "Nothing queued",
		KeyLoadingMore:       "Loading more videos...",
		KeyEndOfFeed:         "You've reached the end",
		KeyLoadFailed:        "Could not load more videos",
		KeySponsored:         "Sponsored",
		KeySearchPlaceholder: "Search videos, creators, tags",
		KeySearchTooShort:    "Type at least 2 characters",
		KeyNoResults:         "No videos found",
		KeyResultsFor:        "%d results for \"%s\"",
		KeyRecent:            "Recent",
		KeyTrending:          "Trending",
		KeyNoFavorites:       "No favorites yet",
		KeyReport:            "Report",
		KeyReportReason:      "Reason",
		KeyReportNote:        "Details (optional)",
		KeyReported:          "Thanks, the video was reported",
		KeyNotPlayable:       "This video is not ready yet",
		KeyRetry:             "Retry",
		KeyJobStats:          "Pending %s · Processing %s · Failed %s · Completed %s · Videos %s",
		KeyAttempts:          "attempt %d/%d",
		KeyVolume:            "Volume",
		KeyPlaybackRate:      "Playback speed",
		KeyAutoplay:          "Autoplay",
		KeyPageSize:          "Videos per page",
		KeySponsoredCadence:  "Sponsored every N videos",
		KeyCatalogSource:     "Catalog source",
		KeySearchQuery:       "YouTube query",
		KeyPlaylist:          "Playlist URL or ID",
		KeySettingsSaved:     "Settings saved successfully!",
		KeyRestartRequired:   "Catalog changes apply after restart",
		KeyPlayerSettings:    "Player",
		KeyFeedSettings:      "Feed",
		KeyInterfaceSettings: "Interface",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "VoidPlay",
		KeyFeed:              "Лента",
		KeySearch:            "Поиск",
		KeyCategories:        "Категории",
		KeyFavorites:         "Избранное",
		KeyAdmin:             "Админ",
		KeySettings:          "Настройки",
		KeyFile:              "Файл",
		KeyLanguage:          "Язык",
		KeySave:              "Сохранить",
		KeyCancel:            "Отмена",
		KeyUpNext:            "Далее",
		KeyPlayingNextIn:     "Следующее через %d",
		KeyCancelAutoplay:    "Отменить автовоспроизведение",
		KeyQueueEmpty:        "Очередь пуста",
		KeyLoadingMore:       "Загружаем ещё...",
		KeyEndOfFeed:         "Вы досмотрели до конца",
		KeyLoadFailed:        "Не удалось загрузить видео",
		KeySponsored:         "Реклама",
		KeySearchPlaceholder: "Видео, авторы, теги",
		KeySearchTooShort:    "Введите хотя бы 2 символа",
		KeyNoResults:         "Ничего не найдено",
		KeyResultsFor:        "%d результатов по запросу \"%s\"",
		KeyRecent:            "Недавние",
		KeyTrending:          "Популярное",
		KeyNoFavorites:       "В избранном пусто",
		KeyReport:            "Пожаловаться",
		KeyReportReason:      "Причина",
		KeyReportNote:        "Подробности (необязательно)",
		KeyReported:          "Спасибо, жалоба отправлена",
		KeyNotPlayable:       "Видео ещё не готово",
		KeyRetry:             "Повторить",
		KeyJobStats:          "Ожидают %s · В работе %s · Ошибки %s · Готово %s · Видео %s",
		KeyAttempts:          "попытка %d/%d",
		KeyVolume:            "Громкость",
		KeyPlaybackRate:      "Скорость",
		KeyAutoplay:          "Автовоспроизведение",
		KeyPageSize:          "Видео на страницу",
		KeySponsoredCadence:  "Реклама каждые N видео",
		KeyCatalogSource:     "Источник каталога",
		KeySearchQuery:       "Запрос YouTube",
		KeyPlaylist:          "Ссылка или ID плейлиста",
		KeySettingsSaved:     "Настройки сохранены!",
		KeyRestartRequired:   "Изменения каталога применятся после перезапуска",
		KeyPlayerSettings:    "Плеер",
		KeyFeedSettings:      "Лента",
		KeyInterfaceSettings: "Интерфейс",
	}

	l.texts["pt"] = map[string]string{
		KeyAppTitle:          "VoidPlay",
		KeyFeed:              "Início",
		KeySearch:            "Buscar",
		KeyCategories:        "Categorias",
		KeyFavorites:         "Favoritos",
		KeyAdmin:             "Admin",
		KeySettings:          "Configurações",
		KeyFile:              "Arquivo",
		KeyLanguage:          "Idioma",
		KeySave:              "Salvar",
		KeyCancel:            "Cancelar",
		KeyUpNext:            "A seguir",
		KeyPlayingNextIn:     "Próximo em %d",
		KeyCancelAutoplay:    "Cancelar reprodução automática",
		KeyQueueEmpty:        "Fila vazia",
		KeyLoadingMore:       "Carregando mais vídeos...",
		KeyEndOfFeed:         "Você chegou ao fim",
		KeyLoadFailed:        "Não foi possível carregar mais vídeos",
		KeySponsored:         "Patrocinado",
		KeySearchPlaceholder: "Buscar vídeos, criadores, tags",
		KeySearchTooShort:    "Digite pelo menos 2 caracteres",
		KeyNoResults:         "Nenhum vídeo encontrado",
		KeyResultsFor:        "%d resultados para \"%s\"",
		KeyRecent:            "Recentes",
		KeyTrending:          "Em alta",
		KeyNoFavorites:       "Nenhum favorito ainda",
		KeyReport:            "Denunciar",
		KeyReportReason:      "Motivo",
		KeyReportNote:        "Detalhes (opcional)",
		KeyReported:          "Obrigado, o vídeo foi denunciado",
		KeyNotPlayable:       "Este vídeo ainda não está pronto",
		KeyRetry:             "Tentar novamente",
		KeyJobStats:          "Pendentes %s · Processando %s · Falhas %s · Concluídos %s · Vídeos %s",
		KeyAttempts:          "tentativa %d/%d",
		KeyVolume:            "Volume",
		KeyPlaybackRate:      "Velocidade",
		KeyAutoplay:          "Reprodução automática",
		KeyPageSize:          "Vídeos por página",
		KeySponsoredCadence:  "Patrocinado a cada N vídeos",
		KeyCatalogSource:     "Fonte do catálogo",
		KeySearchQuery:       "Consulta do YouTube",
		KeyPlaylist:          "URL ou ID da playlist",
		KeySettingsSaved:     "Configurações salvas com sucesso!",
		KeyRestartRequired:   "Mudanças no catálogo valem após reiniciar",
		KeyPlayerSettings:    "Player",
		KeyFeedSettings:      "Feed",
		KeyInterfaceSettings: "Interface",
	}
}
