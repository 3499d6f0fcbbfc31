// Package view renders the server-side pages: embedded html/template files,
// the per-request template functions and the localisation catalogue.
package view

import (
    "embed"
    "fmt"
    "html/template"
    "io"
    "io/fs"
    "path"
    "strings"
    "time"

    "github.com/labstack/echo/v4"
    "golang.org/x/text/language"

    "github.com/iliyamo/hotel-booking-web/internal/adminbooking"
    "github.com/iliyamo/hotel-booking-web/internal/model"
)

//go:embed templates/*.html
var templatesFS embed.FS

const layoutFile = "layout.html"

// Page is the value every template executes against. Data carries the
// page-specific view model.
type Page struct {
    Title     string
    Nav       Nav
    Lang      language.Tag
    CSRFToken string
    Error     string
    Notice    string
    Data      interface{}
}

// Renderer implements echo.Renderer over the embedded templates.
type Renderer struct {
    pages map[string]*template.Template
    tr    *Translator
}

// NewRenderer parses the layout together with each page once.
func NewRenderer(tr *Translator) (*Renderer, error) {
    files, err := fs.Glob(templatesFS, "templates/*.html")
    if err != nil {
        return nil, err
    }
    r := &Renderer{pages: make(map[string]*template.Template), tr: tr}
    for _, f := range files {
        name := path.Base(f)
        if name == layoutFile {
            continue
        }
        tpl, err := template.New(layoutFile).
            Funcs(baseFuncs()).
            Funcs(requestFuncs(&Page{}, tr)).
            ParseFS(templatesFS, "templates/"+layoutFile, f)
        if err != nil {
            return nil, fmt.Errorf("parse %s: %w", name, err)
        }
        r.pages[strings.TrimSuffix(name, ".html")] = tpl
    }
    return r, nil
}

// Has reports whether a page template exists.
func (r *Renderer) Has(name string) bool {
    _, ok := r.pages[name]
    return ok
}

// Render executes page name inside the layout. data is normally a *Page;
// anything else becomes Page.Data.
func (r *Renderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
    base, ok := r.pages[name]
    if !ok {
        return fmt.Errorf("view: unknown page %q", name)
    }
    page, ok := data.(*Page)
    if !ok {
        page = &Page{Data: data}
    }
    tpl, err := base.Clone()
    if err != nil {
        return err
    }
    tpl.Funcs(requestFuncs(page, r.tr))
    return tpl.ExecuteTemplate(w, layoutFile, page)
}

// requestFuncs are bound to one page; the parse-time set only fixes names.
func requestFuncs(page *Page, tr *Translator) template.FuncMap {
    p := tr.Printer(page.Lang)
    return template.FuncMap{
        "isLoggedIn": func() bool { return page.Nav.LoggedIn },
        "isAdmin":    func() bool { return page.Nav.Admin },
        "csrfToken":  func() string { return page.CSRFToken },
        "t":          func(key string, args ...interface{}) string { return Translate(p, key, args...) },
        "money":      func(v int64) string { return Money(p, v) },
        "lang":       func() string { return page.Lang.String() },
    }
}

func baseFuncs() template.FuncMap {
    return template.FuncMap{
        "date": func(v interface{}) string {
            switch d := v.(type) {
            case model.Date:
                return d.String()
            case time.Time:
                if d.IsZero() {
                    return ""
                }
                return d.Format("2006-01-02 15:04")
            }
            return ""
        },
        "targets":   adminbooking.Targets,
        "roomTypes": func() []model.RoomType { return model.RoomTypes },
        "hasID": func(ids []int64, id int64) bool {
            for _, v := range ids {
                if v == id {
                    return true
                }
            }
            return false
        },
        "stars": func(n int) string {
            if n <= 0 {
                return ""
            }
            return strings.Repeat("★", n)
        },
    }
}
