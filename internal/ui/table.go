package ui

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	pkgtypes "github.com/luciopaiva/glacier-retrieve/pkg/types"
)

// cell is one rendered table cell: text plus its style
type cell struct {
	text   string
	style  interface{ Render(...string) string }
	padNum bool // right-align numeric cells
}

// writeBorder writes one horizontal border line
func writeBorder(sb *strings.Builder, widths []int, left, mid, right string) {
	sb.WriteString(BorderStyle.Render(left))
	for i, w := range widths {
		sb.WriteString(BorderStyle.Render(strings.Repeat(Horizontal, w+2)))
		if i < len(widths)-1 {
			sb.WriteString(BorderStyle.Render(mid))
		}
	}
	sb.WriteString(BorderStyle.Render(right))
	sb.WriteString("\n")
}

// writeRow writes one data or header row
func writeRow(sb *strings.Builder, widths []int, cells []cell) {
	sb.WriteString(BorderStyle.Render(Vertical))
	for i, c := range cells {
		var padded string
		if c.padNum {
			padded = padLeft(c.text, widths[i])
		} else {
			padded = padRight(c.text, widths[i])
		}
		sb.WriteString(c.style.Render(" " + padded + " "))
		sb.WriteString(BorderStyle.Render(Vertical))
	}
	sb.WriteString("\n")
}

// renderBoxTable renders a full box table with header and rows
func renderBoxTable(headers []string, widths []int, rows [][]cell) string {
	var sb strings.Builder

	writeBorder(&sb, widths, TopLeft, TopT, TopRight)

	headerCells := make([]cell, len(headers))
	for i, h := range headers {
		headerCells[i] = cell{text: h, style: HeaderStyle}
	}
	writeRow(&sb, widths, headerCells)

	writeBorder(&sb, widths, LeftT, Cross, RightT)

	for _, row := range rows {
		writeRow(&sb, widths, row)
	}

	writeBorder(&sb, widths, BottomLeft, BottomT, BottomRight)

	return sb.String()
}

// keyColumnWidth computes a dynamic key column width with a floor
func keyColumnWidth(keys []string, floor, ceiling int) int {
	width := floor
	for _, k := range keys {
		if w := runewidth.StringWidth(k); w > width {
			width = w
		}
	}
	if width > ceiling {
		width = ceiling
	}
	return width
}

// PrintBucketTable prints buckets in a styled box table
func PrintBucketTable(buckets []pkgtypes.Bucket) {
	headers := []string{"Name", "Created"}

	names := make([]string, len(buckets))
	for i, b := range buckets {
		names[i] = b.Name
	}
	widths := []int{keyColumnWidth(names, len(headers[0]), 60), 20}

	var rows [][]cell
	for _, b := range buckets {
		created := ""
		if !b.CreatedAt.IsZero() {
			created = b.CreatedAt.Format("2006-01-02 15:04:05")
		}
		rows = append(rows, []cell{
			{text: b.Name, style: KeyStyle},
			{text: created, style: MutedStyle},
		})
	}

	fmt.Print(renderBoxTable(headers, widths, rows))
	fmt.Printf("  %d buckets\n", len(buckets))
}
