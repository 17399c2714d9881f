package models

import "strings"

// Page is the text of one source page split into lines.
type Page struct {
	Number int
	Lines  []string
}

// PageFromText splits text on newline boundaries. Blank text yields a page with no lines.
func PageFromText(number int, text string) Page {
	if strings.TrimSpace(text) == "" {
		return Page{Number: number}
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return Page{Number: number, Lines: strings.Split(text, "\n")}
}

// PagesFromTexts numbers pages from 1 in input order.
func PagesFromTexts(texts []string) []Page {
	pages := make([]Page, 0, len(texts))
	for i, t := range texts {
		pages = append(pages, PageFromText(i+1, t))
	}
	return pages
}
