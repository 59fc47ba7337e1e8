package catalog

import (
	"time"

	"github.com/luxe-fashion/luxe-backend/internal/app/model"
)

// Articles returns the news collection, most recent first in source
// order. A fresh copy is returned on every call.
func Articles() []model.NewsArticle {
	out := make([]model.NewsArticle, len(articles))
	copy(out, articles)
	return out
}

// FindArticle returns the article with the given id.
func FindArticle(id string) (model.NewsArticle, bool) {
	for _, a := range articles {
		if a.ID == id {
			return a, true
		}
	}
	return model.NewsArticle{}, false
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

var articles = []model.NewsArticle{
	{
		ID:          "1",
		Title:       "Xu hướng thời trang Thu Đông 2024: Sự trở lại của phong cách cổ điển",
		Excerpt:     "Khám phá những xu hướng thời trang mới nhất cho mùa Thu Đông 2024 với những gam màu ấm áp và chất liệu cao cấp.",
		Content:     "Nội dung chi tiết về xu hướng thời trang...",
		Image:       "/placeholder.svg?height=300&width=400",
		Category:    "Xu hướng",
		Author:      "Nguyễn Thị Mai",
		PublishedAt: date(2024, time.January, 15),
		Views:       1250,
		Featured:    true,
		Tags:        []string{"thời trang", "xu hướng", "thu đông", "2024"},
	},
	{
		ID:          "2",
		Title:       "Bí quyết phối đồ công sở thanh lịch cho phụ nữ hiện đại",
		Excerpt:     "Hướng dẫn chi tiết cách phối đồ công sở chuyên nghiệp và thanh lịch, từ màu sắc đến phụ kiện.",
		Content:     "Nội dung chi tiết về phối đồ công sở...",
		Image:       "/placeholder.svg?height=300&width=400",
		Category:    "Phong cách",
		Author:      "Trần Văn Minh",
		PublishedAt: date(2024, time.January, 12),
		Views:       980,
		Tags:        []string{"công sở", "phối đồ", "thanh lịch", "chuyên nghiệp"},
	},
	{
		ID:          "3",
		Title:       "Bộ sưu tập mới: Elegant Evening - Vẻ đẹp của đêm tiệc",
		Excerpt:     "Ra mắt bộ sưu tập Elegant Evening với những thiết kế dạ hội sang trọng và quyến rũ.",
		Content:     "Nội dung chi tiết về bộ sưu tập...",
		Image:       "/placeholder.svg?height=300&width=400",
		Category:    "Bộ sưu tập",
		Author:      "Lê Thị Hương",
		PublishedAt: date(2024, time.January, 10),
		Views:       1580,
		Featured:    true,
		Tags:        []string{"bộ sưu tập", "dạ hội", "sang trọng", "elegant evening"},
	},
	{
		ID:          "4",
		Title:       "Chăm sóc và bảo quản quần áo cao cấp đúng cách",
		Excerpt:     "Những mẹo hay để bảo quản quần áo cao cấp, giúp sản phẩm luôn như mới và bền đẹp theo thời gian.",
		Content:     "Nội dung chi tiết về bảo quản quần áo...",
		Image:       "/placeholder.svg?height=300&width=400",
		Category:    "Mẹo hay",
		Author:      "Phạm Thị Lan",
		PublishedAt: date(2024, time.January, 8),
		Views:       750,
		Tags:        []string{"bảo quản", "chăm sóc", "quần áo cao cấp", "mẹo hay"},
	},
	{
		ID:          "5",
		Title:       "Màu sắc trong thời trang: Tâm lý học và cách ứng dụng",
		Excerpt:     "Tìm hiểu về tâm lý học màu sắc trong thời trang và cách sử dụng màu sắc để thể hiện cá tính.",
		Content:     "Nội dung chi tiết về màu sắc trong thời trang...",
		Image:       "/placeholder.svg?height=300&width=400",
		Category:    "Kiến thức",
		Author:      "Hoàng Văn Nam",
		PublishedAt: date(2024, time.January, 5),
		Views:       1120,
		Tags:        []string{"màu sắc", "tâm lý học", "cá tính", "thời trang"},
	},
	{
		ID:          "6",
		Title:       "Thời trang bền vững: Xu hướng tương lai của ngành công nghiệp",
		Excerpt:     "Khám phá xu hướng thời trang bền vững, từ chất liệu thân thiện môi trường đến sản xuất có trách nhiệm.",
		Content:     "Nội dung chi tiết về thời trang bền vững...",
		Image:       "/placeholder.svg?height=300&width=400",
		Category:    "Xu hướng",
		Author:      "Nguyễn Thị Hoa",
		PublishedAt: date(2024, time.January, 3),
		Views:       890,
		Featured:    true,
		Tags:        []string{"bền vững", "môi trường", "xu hướng", "tương lai"},
	},
}
