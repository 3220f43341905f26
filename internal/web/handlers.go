package web

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"mlguide/internal/catalog"
	"mlguide/internal/domain"
	"mlguide/internal/theme"
	"mlguide/internal/ui/logic"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

// ModelsQuery is the query string of GET /api/models
type ModelsQuery struct {
	Q string `schema:"q"`
}

// ModelsResponse is the body of GET /api/models
type ModelsResponse struct {
	Query  string               `json:"query"`
	Count  int                  `json:"count"`
	Total  int                  `json:"total"`
	Models []domain.ModelRecord `json:"models"`
}

// GuideService serves the catalog as an HTML page and a small JSON API
type GuideService struct {
	store  *catalog.Store
	filter *logic.SearchFilter
}

func NewGuideService(store *catalog.Store) *GuideService {
	return &GuideService{
		store:  store,
		filter: logic.NewSearchFilter(store.Models()),
	}
}

func (s *GuideService) AddRoutes(r chi.Router) {
	r.Get("/", s.Page)
	r.Get("/healthz", RestHandler(func(r *http.Request) (any, error) { return nil, nil }))
	r.Route("/api", func(r chi.Router) {
		r.Get("/models", RestHandler(s.ListModels))
		r.Get("/models/{key}", RestHandler(s.GetModel))
		r.Get("/tips", RestHandler(s.ListTips))
	})
}

func (s *GuideService) ListModels(r *http.Request) (any, error) {
	params, err := ParseRequestQueryParams[ModelsQuery](r)
	if err != nil {
		return nil, err
	}

	models := s.filter.Apply(params.Q)
	return ModelsResponse{
		Query:  params.Q,
		Count:  len(models),
		Total:  s.filter.Total(),
		Models: models,
	}, nil
}

func (s *GuideService) GetModel(r *http.Request) (any, error) {
	key, err := URLParam(r, "key")
	if err != nil {
		return nil, err
	}

	model, ok := s.store.Model(key)
	if !ok {
		return nil, CodedErrorf(http.StatusNotFound, "model %q not found", key)
	}
	return model, nil
}

func (s *GuideService) ListTips(r *http.Request) (any, error) {
	return s.store.Tips(), nil
}

// cardView is one model card on the page
type cardView struct {
	domain.ModelRecord
	Haystack string
	Glyph    string
	From     string
	To       string
	Delay    string // staggered reveal
	Hidden   bool
}

type pageView struct {
	Badge            string
	Title            string
	Subtitle         string
	Placeholder      string
	QuickFilterLabel string
	Query            string
	Cards            []cardView
	Count            int
	Total            int
	CleaningHeading  string
	CleaningIntro    string
	Tips             []domain.TipRecord
	FooterTip        string
}

// Page renders the guide. Every card is rendered so the inline script can
// refilter without a round trip; ?q= only decides which start hidden.
func (s *GuideService) Page(w http.ResponseWriter, r *http.Request) {
	params, err := ParseRequestQueryParams[ModelsQuery](r)
	if err != nil {
		writeError(w, err)
		return
	}

	models := s.store.Models()
	view := pageView{
		Badge:            catalog.Badge,
		Title:            catalog.Title,
		Subtitle:         catalog.Subtitle,
		Placeholder:      catalog.SearchPlaceholder,
		QuickFilterLabel: catalog.QuickFilterLabel,
		Query:            params.Q,
		Cards:            make([]cardView, len(models)),
		Total:            len(models),
		CleaningHeading:  catalog.CleaningHeading,
		CleaningIntro:    catalog.CleaningIntro,
		Tips:             s.store.Tips(),
		FooterTip:        catalog.FooterTip,
	}

	for i, m := range models {
		palette := theme.Accent(m.Accent)
		match := logic.Matches(m, params.Q)
		if match {
			view.Count++
		}
		view.Cards[i] = cardView{
			ModelRecord: m,
			Haystack:    logic.Haystack(m),
			Glyph:       theme.Glyph(m.Icon),
			From:        palette.From,
			To:          palette.To,
			Delay:       (20 * time.Millisecond * time.Duration(i)).String(),
			Hidden:      !match,
		}
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, view); err != nil {
		writeError(w, CodedError(http.StatusInternalServerError, err))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		log.Error().Err(err).Msg("error writing page")
	}
}
