package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luxe-fashion/luxe-backend/internal/app/model"
)

func testProducts() []model.Product {
	return []model.Product{
		{ID: "1", Name: "Áo sơ mi lụa cao cấp", Price: 1200000, Category: "Áo sơ mi", Brand: "Luxe Collection", Rating: 4.8, Colors: []string{"Trắng", "Đen"}, Sizes: []string{"S", "M", "L"}, IsSale: true},
		{ID: "2", Name: "Váy dạ hội sang trọng", Price: 2500000, Category: "Váy", Brand: "Elegant Line", Rating: 4.9, Colors: []string{"Đen", "Đỏ burgundy"}, Sizes: []string{"XS", "S"}, IsNew: true},
		{ID: "3", Name: "Áo khoác blazer nữ", Price: 1800000, Category: "Áo khoác", Brand: "Professional", Rating: 4.7, Colors: []string{"Đen", "Xám"}, Sizes: []string{"M", "L", "XL"}, IsSale: true},
		{ID: "4", Name: "Chân váy midi thanh lịch", Price: 950000, Category: "Váy", Brand: "Classic Style", Rating: 4.6, Colors: []string{"Trắng", "Hồng pastel"}, Sizes: []string{"XS", "M"}},
	}
}

func ids(products []model.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func TestApply_UnconstrainedReturnsEverything(t *testing.T) {
	products := testProducts()

	result := Apply(products, NewFilter())

	assert.Len(t, result, len(products))
}

func TestApply_PriceRangeIsInclusive(t *testing.T) {
	f := NewFilter()
	f.PriceMin = 0
	f.PriceMax = 2000000

	result := Apply([]model.Product{
		{ID: "1", Price: 1200000, Category: "Áo sơ mi", IsSale: true},
		{ID: "2", Price: 2500000, Category: "Váy", IsNew: true},
	}, f)

	require.Len(t, result, 1)
	assert.Equal(t, "1", result[0].ID)

	// Boundary values themselves match
	f.PriceMin = 1200000
	f.PriceMax = 1200000
	result = Apply(testProducts(), f)
	require.Len(t, result, 1)
	assert.Equal(t, "1", result[0].ID)
}

func TestApply_InvertedPriceRangeMatchesNothing(t *testing.T) {
	f := NewFilter()
	f.PriceMin = 2000000
	f.PriceMax = 1000000

	assert.Empty(t, Apply(testProducts(), f))
}

func TestApply_EmptySelectionMeansNoConstraint(t *testing.T) {
	f := NewFilter()
	f.Categories = nil
	f.Colors = []string{}

	assert.Len(t, Apply(testProducts(), f), 4)
}

func TestApply_CategoryAndBrandSelection(t *testing.T) {
	f := NewFilter()
	f.Categories = []string{"Váy"}

	assert.Equal(t, []string{"2", "4"}, ids(Apply(testProducts(), f)))

	f.Brands = []string{"Elegant Line"}
	assert.Equal(t, []string{"2"}, ids(Apply(testProducts(), f)))
}

func TestApply_ColorMatchesOnOverlap(t *testing.T) {
	f := NewFilter()
	f.Colors = []string{"Hồng pastel", "Xám"}

	// Any shared color matches; a product need not carry every
	// selected color.
	assert.Equal(t, []string{"3", "4"}, ids(Apply(testProducts(), f)))
}

func TestApply_SizeMatchesOnOverlap(t *testing.T) {
	f := NewFilter()
	f.Sizes = []string{"XL"}

	assert.Equal(t, []string{"3"}, ids(Apply(testProducts(), f)))
}

func TestApply_SearchIsCaseInsensitiveSubstring(t *testing.T) {
	f := NewFilter()
	f.Query = "BLAZER"

	assert.Equal(t, []string{"3"}, ids(Apply(testProducts(), f)))

	// Category text is searched too
	f.Query = "váy"
	assert.Equal(t, []string{"2", "4"}, ids(Apply(testProducts(), f)))
}

func TestApply_AddingConstraintNeverGrowsResult(t *testing.T) {
	products := testProducts()

	f := NewFilter()
	base := len(Apply(products, f))

	f.Categories = []string{"Váy"}
	narrowed := len(Apply(products, f))
	assert.LessOrEqual(t, narrowed, base)

	f.Colors = []string{"Đen"}
	assert.LessOrEqual(t, len(Apply(products, f)), narrowed)
}

func TestApply_SortPrice(t *testing.T) {
	products := testProducts()

	f := NewFilter()
	f.Sort = SortPriceLow
	assert.Equal(t, []string{"4", "1", "3", "2"}, ids(Apply(products, f)))

	f.Sort = SortPriceHigh
	assert.Equal(t, []string{"2", "3", "1", "4"}, ids(Apply(products, f)))
}

func TestApply_SortRating(t *testing.T) {
	f := NewFilter()
	f.Sort = SortRating

	assert.Equal(t, []string{"2", "1", "3", "4"}, ids(Apply(testProducts(), f)))
}

func TestApply_SortNewestPutsNewArrivalsFirst(t *testing.T) {
	f := NewFilter()
	f.Sort = SortNewest

	result := Apply(testProducts(), f)
	assert.Equal(t, "2", result[0].ID)
}

func TestApply_SortIsStable(t *testing.T) {
	products := []model.Product{
		{ID: "a", Price: 500000},
		{ID: "b", Price: 500000},
		{ID: "c", Price: 500000},
	}

	f := NewFilter()
	f.Sort = SortPriceLow

	// Equal keys keep catalog order
	assert.Equal(t, []string{"a", "b", "c"}, ids(Apply(products, f)))
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	products := testProducts()

	f := NewFilter()
	f.Sort = SortPriceHigh
	Apply(products, f)

	assert.Equal(t, []string{"1", "2", "3", "4"}, ids(products))
}

func TestApply_IsDeterministic(t *testing.T) {
	products := testProducts()
	f := NewFilter()
	f.Categories = []string{"Váy"}
	f.Sort = SortPriceLow

	first := Apply(products, f)
	second := Apply(products, f)

	assert.Equal(t, first, second)
}

func TestSummarize_CollectsDistinctValuesInFirstSeenOrder(t *testing.T) {
	s := Summarize(testProducts())

	assert.Equal(t, []string{"Áo sơ mi", "Váy", "Áo khoác"}, s.Categories)
	assert.Equal(t, []string{"Luxe Collection", "Elegant Line", "Professional", "Classic Style"}, s.Brands)
	assert.Equal(t, []string{"Trắng", "Đen", "Đỏ burgundy", "Xám", "Hồng pastel"}, s.Colors)
	assert.Equal(t, []string{"S", "M", "L", "XS", "XL"}, s.Sizes)
	assert.Equal(t, int64(2500000), s.MaxPrice)
}

func TestProducts_ReturnsCopy(t *testing.T) {
	first := Products()
	first[0].Name = "changed"

	assert.NotEqual(t, "changed", Products()[0].Name)
}

func TestFindProduct(t *testing.T) {
	p, ok := FindProduct("5")
	require.True(t, ok)
	assert.Equal(t, "Áo len cashmere", p.Name)

	_, ok = FindProduct("999")
	assert.False(t, ok)
}
