package http

import (
	"embed"
	"html/template"
	"net/http"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/prasetyadi/ecosort/internal/logger"
	"github.com/prasetyadi/ecosort/internal/service"
	"github.com/prasetyadi/ecosort/models"
)

//go:embed templates/*.html
var templateFS embed.FS

// pageData is the single payload type passed to every page template. Pages
// read only the fields relevant to them; Flash is shared by all of them via
// the layout.
type pageData struct {
	Flash    string
	Username string
	IsAdmin  bool

	Result      *models.Classification
	Records     []models.Record
	TotalPoints int
	Users       []models.User
	Overview    *service.RecordsOverview
}

var templateFuncs = template.FuncMap{
	"reltime": humanize.Time,
	"waktu": func(t time.Time) string {
		return t.Format(models.TimeLayout)
	},
	"percent": func(confidence float32) string {
		return humanize.FtoaWithDigits(float64(confidence)*100, 2)
	},
}

// pages maps a page name to its parsed template set. Each page is parsed
// together with the shared layout so pages can define the same block names
// without colliding.
var pages = func() map[string]*template.Template {
	names := []string{
		"login.html",
		"signup.html",
		"home.html",
		"classify.html",
		"records.html",
		"admin.html",
		"admin_users.html",
		"admin_records.html",
	}

	parsed := make(map[string]*template.Template, len(names))
	for _, name := range names {
		parsed[name] = template.Must(
			template.New("layout.html").Funcs(templateFuncs).
				ParseFS(templateFS, "templates/layout.html", "templates/"+name),
		)
	}
	return parsed
}()

func (h *Handler) render(w http.ResponseWriter, r *http.Request, page string, data pageData) {
	log := logger.FromRequest(r)

	tmpl, ok := pages[page]
	if !ok {
		log.Error().Str("page", page).Msg("unknown page template")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if flash, ok := popFlash(w, r); ok {
		data.Flash = flash
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.ExecuteTemplate(w, "layout.html", data); err != nil {
		log.Err(err).Str("page", page).Msg("rendering page failed")
	}
}
