package main

import (
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"hairpalace.org/store-web/internal/format"
)

var tmplCache *template.Template

func parseTemplates() (*template.Template, error) {
	funcMap := template.FuncMap{
		"now":       time.Now,
		"price":     format.Price,
		"dateMs":    format.DateMillis,
		"pluralize": format.Pluralize,
		"title":     titleCase,
	}
	// Recursively discover and parse all .tmpl files. ParseGlob doesn't support **.
	var files []string
	if err := filepath.WalkDir(templatesDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(d.Name(), ".tmpl") {
			files = append(files, path)
		}
		return nil
	}); err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no templates found under %s", templatesDir)
	}
	return template.New("_root").Funcs(funcMap).ParseFiles(files...)
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	if r[0] >= 'a' && r[0] <= 'z' {
		r[0] -= 'a' - 'A'
	}
	return string(r)
}

func templates(w http.ResponseWriter) *template.Template {
	if devMode {
		tc, err := parseTemplates()
		if err != nil {
			http.Error(w, fmt.Sprintf("template parse error: %v", err), http.StatusInternalServerError)
			return nil
		}
		return tc
	}
	return tmplCache
}

// renderPage executes the base layout with the given view model.
func renderPage(w http.ResponseWriter, r *http.Request, vm PageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	t := templates(w)
	if t == nil {
		return
	}
	if err := t.ExecuteTemplate(w, "base", vm); err != nil {
		http.Error(w, fmt.Sprintf("template exec error: %v", err), http.StatusInternalServerError)
	}
}

// renderTemplate executes a named fragment template (htmx responses).
func renderTemplate(w http.ResponseWriter, r *http.Request, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	t := templates(w)
	if t == nil {
		return
	}
	if err := t.ExecuteTemplate(w, name, data); err != nil {
		http.Error(w, fmt.Sprintf("template exec error: %v", err), http.StatusInternalServerError)
	}
}
