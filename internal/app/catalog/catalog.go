package catalog

import "github.com/luxe-fashion/luxe-backend/internal/app/model"

// Products returns the store catalog. This is static merchandising data;
// a fresh copy is returned so callers can never mutate the source.
func Products() []model.Product {
	out := make([]model.Product, len(products))
	copy(out, products)
	return out
}

// FindProduct returns the catalog entry with the given id.
func FindProduct(id string) (model.Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return model.Product{}, false
}

var products = []model.Product{
	{
		ID:            "1",
		Name:          "Áo sơ mi lụa cao cấp",
		Price:         1200000,
		OriginalPrice: 1500000,
		Image:         "/placeholder.svg?height=400&width=300",
		Description:   "Áo sơ mi lụa tơ tằm mềm mại, phù hợp cả công sở lẫn dạo phố.",
		Category:      "Áo sơ mi",
		Brand:         "Luxe Collection",
		Rating:        4.8,
		ReviewCount:   124,
		Colors:        []string{"Trắng", "Đen", "Xanh navy"},
		Sizes:         []string{"S", "M", "L", "XL"},
		StockCount:    15,
		IsSale:        true,
	},
	{
		ID:          "2",
		Name:        "Váy dạ hội sang trọng",
		Price:       2500000,
		Image:       "/placeholder.svg?height=400&width=300",
		Description: "Thiết kế dạ hội ôm dáng, chất liệu cao cấp cho những buổi tiệc quan trọng.",
		Category:    "Váy",
		Brand:       "Elegant Line",
		Rating:      4.9,
		ReviewCount: 89,
		Colors:      []string{"Đen", "Đỏ burgundy", "Xanh navy"},
		Sizes:       []string{"XS", "S", "M", "L"},
		StockCount:  8,
		IsNew:       true,
	},
	{
		ID:            "3",
		Name:          "Áo khoác blazer nữ",
		Price:         1800000,
		OriginalPrice: 2200000,
		Image:         "/placeholder.svg?height=400&width=300",
		Description:   "Blazer dáng suông thanh lịch, điểm nhấn cho trang phục công sở.",
		Category:      "Áo khoác",
		Brand:         "Professional",
		Rating:        4.7,
		ReviewCount:   156,
		Colors:        []string{"Đen", "Xám", "Camel"},
		Sizes:         []string{"S", "M", "L", "XL"},
		StockCount:    12,
		IsSale:        true,
	},
	{
		ID:          "4",
		Name:        "Chân váy midi thanh lịch",
		Price:       950000,
		Image:       "/placeholder.svg?height=400&width=300",
		Description: "Chân váy midi xếp ly nhẹ, dễ phối cùng sơ mi và áo len.",
		Category:    "Váy",
		Brand:       "Classic Style",
		Rating:      4.6,
		ReviewCount: 78,
		Colors:      []string{"Đen", "Trắng", "Hồng pastel"},
		Sizes:       []string{"XS", "S", "M", "L"},
		StockCount:  20,
	},
	{
		ID:          "5",
		Name:        "Áo len cashmere",
		Price:       3200000,
		Image:       "/placeholder.svg?height=400&width=300",
		Description: "Áo len cashmere mỏng nhẹ, giữ ấm tốt cho mùa thu đông.",
		Category:    "Áo len",
		Brand:       "Luxury Knits",
		Rating:      4.9,
		ReviewCount: 67,
		Colors:      []string{"Kem", "Xám", "Camel"},
		Sizes:       []string{"S", "M", "L"},
		StockCount:  6,
		IsNew:       true,
	},
	{
		ID:          "6",
		Name:        "Quần tây công sở",
		Price:       1100000,
		Image:       "/placeholder.svg?height=400&width=300",
		Description: "Quần tây ống đứng, form chuẩn cho môi trường công sở.",
		Category:    "Quần",
		Brand:       "Office Wear",
		Rating:      4.5,
		ReviewCount: 92,
		Colors:      []string{"Đen", "Xám", "Xanh navy"},
		Sizes:       []string{"S", "M", "L", "XL"},
		StockCount:  18,
	},
}
