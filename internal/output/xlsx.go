package output

import (
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/preston-bernstein/standings-overlay/internal/standings"
)

const xlsxSheet = "Classificacio"

// encodeXLSX renders the table into a single-sheet workbook with the header and the
// followed team's row filled in the theme colours.
func encodeXLSX(res standings.Result, theme Theme) ([]byte, error) {
	theme = theme.withDefaults()

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", xlsxSheet); err != nil {
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{hexRGB(theme.Primary)}},
	})
	if err != nil {
		return nil, err
	}
	teamStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{hexRGB(theme.Accent)}},
	})
	if err != nil {
		return nil, err
	}

	width := len(res.Table.Columns)
	for c, label := range res.Table.Columns {
		cell, err := excelize.CoordinatesToCellName(c+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(xlsxSheet, cell, label); err != nil {
			return nil, err
		}
	}
	if width > 0 {
		if err := styleRow(f, 1, width, headerStyle); err != nil {
			return nil, err
		}
	}

	for r, row := range res.Table.Rows {
		rowIdx := r + 2
		for c, v := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, rowIdx)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(xlsxSheet, cell, v); err != nil {
				return nil, err
			}
		}
		if res.Target != nil && res.Target.Row == r && width > 0 {
			if err := styleRow(f, rowIdx, width, teamStyle); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func styleRow(f *excelize.File, row, width, style int) error {
	first, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(width, row)
	if err != nil {
		return err
	}
	return f.SetCellStyle(xlsxSheet, first, last, style)
}

// hexRGB turns "#abc" or "#aabbcc" into the "AABBCC" form excelize expects.
func hexRGB(color string) string {
	c := strings.TrimPrefix(strings.TrimSpace(color), "#")
	if len(c) == 3 {
		c = string([]byte{c[0], c[0], c[1], c[1], c[2], c[2]})
	}
	return strings.ToUpper(c)
}
