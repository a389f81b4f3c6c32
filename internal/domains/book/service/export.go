package service

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"library-admin/internal/domains/book"
)

// Export build file Excel cho toàn bộ tập sách khớp search/filter
// hiện tại. Không phân trang: export là "tất cả những gì đang thấy".
func (s *bookServiceImpl) Export(ctx context.Context, req book.ListBooksReq) (*excelize.File, error) {
	books, err := s.filtered(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("export books: %w", err)
	}

	f, err := buildBooksExcelFile(books)
	if err != nil {
		return nil, fmt.Errorf("export books: build excel file: %w", err)
	}
	return f, nil
}

func buildBooksExcelFile(books []book.Book) (*excelize.File, error) {
	f := excelize.NewFile()

	sheetName := "Book list"
	f.SetSheetName("Sheet1", sheetName)

	// Row 1: Header
	headers := []string{
		"Book ID",
		"Title",
		"Author",
		"Publisher",
		"Year",
		"Category ID",
		"Status",
	}

	for colIdx, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(colIdx+1, 1)
		f.SetCellValue(sheetName, cell, header)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
		},
	})
	if err == nil {
		f.SetCellStyle(sheetName, "A1", "G1", headerStyle)
	}

	// Data rows, bắt đầu từ row 2
	for i, b := range books {
		rowNum := i + 2

		rowStr := func(col int) string {
			cell, _ := excelize.CoordinatesToCellName(col, rowNum)
			return cell
		}

		f.SetCellValue(sheetName, rowStr(1), b.BookID)
		f.SetCellValue(sheetName, rowStr(2), b.Title)
		f.SetCellValue(sheetName, rowStr(3), b.Author)
		f.SetCellValue(sheetName, rowStr(4), b.Publisher)
		if b.Year != 0 {
			f.SetCellValue(sheetName, rowStr(5), b.Year)
		}
		f.SetCellValue(sheetName, rowStr(6), b.CategoryID)
		f.SetCellValue(sheetName, rowStr(7), string(b.Status))
	}

	f.SetColWidth(sheetName, "A", "G", 18)

	return f, nil
}
