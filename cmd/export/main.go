package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/luxe-fashion/luxe-backend/internal/app/catalog"
	"github.com/luxe-fashion/luxe-backend/internal/app/model"
)

// Exports the product catalog to an XLSX workbook for merchandising
// reviews. Usage: go run cmd/export/main.go <output.xlsx>
func main() {
	if len(os.Args) < 2 {
		log.Fatal("Usage: go run cmd/export/main.go <output_xlsx_path>")
	}

	outputPath := os.Args[1]
	products := catalog.Products()
	articles := catalog.Articles()

	fmt.Printf("Exporting %d products and %d articles to %s\n", len(products), len(articles), outputPath)

	if err := writeWorkbook(outputPath, products, articles); err != nil {
		log.Fatal("Failed to write XLSX:", err)
	}

	fmt.Println("Export completed successfully!")
}

func writeWorkbook(outputPath string, products []model.Product, articles []model.NewsArticle) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := writeProductSheet(f, products); err != nil {
		return err
	}
	if err := writeNewsSheet(f, articles); err != nil {
		return err
	}
	f.DeleteSheet("Sheet1")

	if err := f.SaveAs(outputPath); err != nil {
		return fmt.Errorf("failed to save XLSX file: %w", err)
	}

	return nil
}

func writeProductSheet(f *excelize.File, products []model.Product) error {
	const sheetName = "Products"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)

	headers := []string{
		"ID", "Tên sản phẩm", "Danh mục", "Thương hiệu",
		"Giá", "Giá gốc", "Màu sắc", "Kích cỡ",
		"Đánh giá", "Lượt đánh giá", "Tồn kho", "Mới", "Giảm giá",
	}
	if err := writeRow(f, sheetName, 1, toValues(headers)); err != nil {
		return err
	}

	for i, p := range products {
		values := []interface{}{
			p.ID,
			p.Name,
			p.Category,
			p.Brand,
			p.Price,
			p.OriginalPrice,
			strings.Join(p.Colors, ", "),
			strings.Join(p.Sizes, ", "),
			p.Rating,
			p.ReviewCount,
			p.StockCount,
			boolLabel(p.IsNew),
			boolLabel(p.IsSale),
		}
		if err := writeRow(f, sheetName, i+2, values); err != nil {
			return err
		}
	}

	return nil
}

func writeNewsSheet(f *excelize.File, articles []model.NewsArticle) error {
	const sheetName = "News"
	if _, err := f.NewSheet(sheetName); err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}

	headers := []string{
		"ID", "Tiêu đề", "Danh mục", "Tác giả", "Ngày đăng", "Lượt xem", "Nổi bật",
	}
	if err := writeRow(f, sheetName, 1, toValues(headers)); err != nil {
		return err
	}

	for i, a := range articles {
		values := []interface{}{
			a.ID,
			a.Title,
			a.Category,
			a.Author,
			a.PublishedAt.Format("2006-01-02"),
			a.Views,
			boolLabel(a.Featured),
		}
		if err := writeRow(f, sheetName, i+2, values); err != nil {
			return err
		}
	}

	return nil
}

func writeRow(f *excelize.File, sheetName string, row int, values []interface{}) error {
	for col, value := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return fmt.Errorf("failed to resolve cell: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, value); err != nil {
			return fmt.Errorf("failed to write row %d: %w", row, err)
		}
	}
	return nil
}

func toValues(headers []string) []interface{} {
	values := make([]interface{}, len(headers))
	for i, h := range headers {
		values[i] = h
	}
	return values
}

func boolLabel(v bool) string {
	if v {
		return "Có"
	}
	return "Không"
}
