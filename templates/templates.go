// Package templates embeds the HTML pages and static assets.
package templates

import (
	"embed"
	"html/template"
	"io/fs"
	"time"

	"driverledger/models"
	"driverledger/utils"
)

//go:embed *.html
var pages embed.FS

//go:embed static
var static embed.FS

// Static returns the assets served under /static.
func Static() fs.FS {
	sub, err := fs.Sub(static, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// FuncMap holds the formatting helpers available to every page.
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"currency": utils.FormatCurrency,
		"percent":  utils.FormatPercent,
		"number":   utils.FormatNumber,
		"date":     formatDate,
		"dateInput": func(t time.Time) string {
			return t.Format(models.DateLayout)
		},
		"economy": func(v *float64) string {
			if v == nil {
				return "-"
			}
			return utils.FormatNumber(*v) + " km/l"
		},
	}
}

func formatDate(v interface{}) string {
	switch t := v.(type) {
	case time.Time:
		return utils.FormatDate(t)
	case *time.Time:
		if t == nil {
			return ""
		}
		return utils.FormatDate(*t)
	}
	return ""
}

// Load parses every page with the helpers installed.
func Load() (*template.Template, error) {
	return template.New("").Funcs(FuncMap()).ParseFS(pages, "*.html")
}
