package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/luxe-fashion/luxe-backend/internal/app/catalog"
	"github.com/luxe-fashion/luxe-backend/internal/app/service"
	httperrors "github.com/luxe-fashion/luxe-backend/internal/errors"
	"github.com/luxe-fashion/luxe-backend/internal/middleware"
)

type NewsController struct {
	newsService service.NewsService
}

func NewNewsController(newsService service.NewsService) *NewsController {
	return &NewsController{
		newsService: newsService,
	}
}

// ListArticles returns the filtered news listing
// GET /api/v1/news
func (ctrl *NewsController) ListArticles(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	filter := catalog.ArticleFilter{
		Query:    c.Query("q"),
		Category: c.Query("category"),
		Sort:     catalog.ArticleSortKey(c.Query("sort")),
	}

	articles := ctrl.newsService.ListArticles(filter)

	log.Info("News listed", map[string]interface{}{
		"count":    len(articles),
		"category": filter.Category,
	})

	c.JSON(http.StatusOK, gin.H{
		"articles":   articles,
		"count":      len(articles),
		"categories": ctrl.newsService.Categories(),
	})
}

// GetFeatured returns the featured articles
// GET /api/v1/news/featured
func (ctrl *NewsController) GetFeatured(c *gin.Context) {
	articles := ctrl.newsService.FeaturedArticles()

	c.JSON(http.StatusOK, gin.H{
		"articles": articles,
		"count":    len(articles),
	})
}

// GetArticle returns one article with its related reads
// GET /api/v1/news/:id
func (ctrl *NewsController) GetArticle(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	id := c.Param("id")

	article, related, err := ctrl.newsService.GetArticle(id)
	if err != nil {
		log.Warn("News article not found", map[string]interface{}{
			"article_id": id,
		})
		httperrors.NotFound(c, httperrors.NewsArticleNotFound, "Không tìm thấy bài viết")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"article": article,
		"related": related,
	})
}
