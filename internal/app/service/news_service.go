package service

import (
	"errors"

	"github.com/luxe-fashion/luxe-backend/internal/app/catalog"
	"github.com/luxe-fashion/luxe-backend/internal/app/model"
	"github.com/luxe-fashion/luxe-backend/pkg/logger"
)

var ErrArticleNotFound = errors.New("news article not found")

// RelatedArticleLimit caps how many related articles a detail view
// carries.
const RelatedArticleLimit = 3

type NewsService interface {
	ListArticles(filter catalog.ArticleFilter) []model.NewsArticle
	GetArticle(id string) (*model.NewsArticle, []model.NewsArticle, error)
	FeaturedArticles() []model.NewsArticle
	Categories() []string
}

type newsService struct {
	articles []model.NewsArticle
}

func NewNewsService() NewsService {
	return &newsService{
		articles: catalog.Articles(),
	}
}

func (s *newsService) ListArticles(filter catalog.ArticleFilter) []model.NewsArticle {
	result := catalog.ApplyArticles(s.articles, filter)

	logger.Debug("News listing computed", map[string]interface{}{
		"total":    len(s.articles),
		"matched":  len(result),
		"category": filter.Category,
	})
	return result
}

// GetArticle returns the article and up to RelatedArticleLimit articles
// from the same category.
func (s *newsService) GetArticle(id string) (*model.NewsArticle, []model.NewsArticle, error) {
	for _, a := range s.articles {
		if a.ID == id {
			related := catalog.Related(s.articles, a, RelatedArticleLimit)
			return &a, related, nil
		}
	}

	logger.Warn("News article not found", map[string]interface{}{
		"article_id": id,
	})
	return nil, nil, ErrArticleNotFound
}

func (s *newsService) FeaturedArticles() []model.NewsArticle {
	result := make([]model.NewsArticle, 0, len(s.articles))
	for _, a := range s.articles {
		if a.Featured {
			result = append(result, a)
		}
	}
	return result
}

// Categories returns the distinct article categories in first-seen
// order.
func (s *newsService) Categories() []string {
	var categories []string
	for _, a := range s.articles {
		if !containsString(categories, a.Category) {
			categories = append(categories, a.Category)
		}
	}
	return categories
}
