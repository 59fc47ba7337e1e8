package catalog

import (
	"sort"
	"strings"

	"github.com/luxe-fashion/luxe-backend/internal/app/model"
)

type ArticleSortKey string

const (
	ArticleSortNewest  ArticleSortKey = "newest"
	ArticleSortOldest  ArticleSortKey = "oldest"
	ArticleSortPopular ArticleSortKey = "popular"
)

// ArticleFilter is the news listing configuration. An empty or "all"
// category means no constraint.
type ArticleFilter struct {
	Query    string
	Category string
	Sort     ArticleSortKey
}

// ApplyArticles filters then stably sorts the news collection. The
// search query matches title, excerpt or any tag, case-insensitively.
func ApplyArticles(articles []model.NewsArticle, f ArticleFilter) []model.NewsArticle {
	result := make([]model.NewsArticle, 0, len(articles))
	for _, a := range articles {
		if matchesArticle(a, f) {
			result = append(result, a)
		}
	}

	switch f.Sort {
	case ArticleSortOldest:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].PublishedAt.Before(result[j].PublishedAt)
		})
	case ArticleSortPopular:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Views > result[j].Views
		})
	case ArticleSortNewest:
		fallthrough
	default:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].PublishedAt.After(result[j].PublishedAt)
		})
	}

	return result
}

func matchesArticle(a model.NewsArticle, f ArticleFilter) bool {
	if f.Category != "" && f.Category != "all" && f.Category != "Tất cả" && a.Category != f.Category {
		return false
	}
	if f.Query == "" {
		return true
	}

	q := strings.ToLower(f.Query)
	if strings.Contains(strings.ToLower(a.Title), q) ||
		strings.Contains(strings.ToLower(a.Excerpt), q) {
		return true
	}
	for _, tag := range a.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// Related returns up to limit articles sharing the given article's
// category, most recent first, excluding the article itself.
func Related(articles []model.NewsArticle, article model.NewsArticle, limit int) []model.NewsArticle {
	related := ApplyArticles(articles, ArticleFilter{
		Category: article.Category,
		Sort:     ArticleSortNewest,
	})

	result := make([]model.NewsArticle, 0, limit)
	for _, a := range related {
		if a.ID == article.ID {
			continue
		}
		result = append(result, a)
		if len(result) == limit {
			break
		}
	}
	return result
}
