package catalog

import (
	"sort"
	"strings"

	"github.com/ytget/voidplay/internal/model"
)

// Query limits
const (
	DefaultRelatedLimit = 5
	MinSearchLength     = 2
)

// Related returns up to limit playable videos sharing the category of video,
// excluding video itself
func Related(video model.Video, corpus []model.Video, limit int) []model.Video {
	related := make([]model.Video, 0, limit)
	for _, v := range corpus {
		if len(related) >= limit {
			break
		}
		if v.ID == video.ID || v.Category != video.Category || !v.IsPlayable() {
			continue
		}
		related = append(related, v)
	}
	return related
}

// ByCategory filters the corpus by category name (case-insensitive)
func ByCategory(corpus []model.Video, category string) []model.Video {
	var out []model.Video
	for _, v := range corpus {
		if strings.EqualFold(v.Category, category) {
			out = append(out, v)
		}
	}
	return out
}

// Search returns corpus videos matching query. Queries shorter than
// MinSearchLength return nothing.
func Search(corpus []model.Video, query string) []model.Video {
	if len([]rune(strings.TrimSpace(query))) < MinSearchLength {
		return nil
	}
	var out []model.Video
	for _, v := range corpus {
		if v.Matches(query) {
			out = append(out, v)
		}
	}
	return out
}

// Categories derives the category list with video counts, ordered by name
func Categories(corpus []model.Video) []model.Category {
	index := make(map[string]*model.Category)
	for _, v := range corpus {
		c, ok := index[v.Category]
		if !ok {
			c = &model.Category{
				ID:        strings.ToLower(strings.ReplaceAll(v.Category, " ", "-")),
				Name:      v.Category,
				Thumbnail: v.Thumbnail,
			}
			index[v.Category] = c
		}
		c.VideoCount++
	}

	categories := make([]model.Category, 0, len(index))
	for _, c := range index {
		categories = append(categories, *c)
	}
	sort.Slice(categories, func(i, j int) bool {
		return categories[i].Name < categories[j].Name
	})
	return categories
}

// Suggestions builds search hints: recent queries first, then the most viewed
// titles as trending, then categories with their counts
func Suggestions(corpus []model.Video, recent []string, trendingLimit int) []model.SearchSuggestion {
	var out []model.SearchSuggestion
	for _, q := range recent {
		out = append(out, model.SearchSuggestion{Type: model.SuggestionRecent, Label: q, Value: q})
	}

	trending := append([]model.Video(nil), corpus...)
	sort.SliceStable(trending, func(i, j int) bool {
		return trending[i].Views > trending[j].Views
	})
	for i := 0; i < len(trending) && i < trendingLimit; i++ {
		v := trending[i]
		out = append(out, model.SearchSuggestion{Type: model.SuggestionTrending, Label: v.Title, Value: v.Title})
	}

	for _, c := range Categories(corpus) {
		out = append(out, model.SearchSuggestion{
			Type:  model.SuggestionCategory,
			Label: c.Name,
			Value: c.Name,
			Count: c.VideoCount,
		})
	}
	return out
}

// GroupSuggestions groups suggestions by type preserving order within a group
func GroupSuggestions(suggestions []model.SearchSuggestion) map[model.SuggestionType][]model.SearchSuggestion {
	groups := make(map[model.SuggestionType][]model.SearchSuggestion)
	for _, s := range suggestions {
		groups[s.Type] = append(groups[s.Type], s)
	}
	return groups
}
