package httpapi

import (
	"context"
	"errors"
	"net/http"

	"github.com/goccy/go-json"
	"github.com/gorilla/mux"
	"golang.org/x/text/language"

	"presskit/internal/locale"
	"presskit/internal/logging"
	"presskit/internal/presskit"
	"presskit/internal/presskitapi"
)

// Server exposes normalized presskits over HTTP.
type Server struct {
	source      presskitapi.Source
	logger      *logging.Logger
	defaultLang language.Tag
}

// New configures a Server reading raw documents from source.
func New(source presskitapi.Source, logger *logging.Logger, defaultLang string) *Server {
	return &Server{
		source:      source,
		logger:      logger,
		defaultLang: locale.Resolve(defaultLang, locale.English),
	}
}

type pageResponse struct {
	Lang    string                       `json:"lang"`
	Page    presskit.PresskitPageView    `json:"page"`
	Gallery presskit.GalleryDistribution `json:"gallery"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Routes exposes the presskit handlers.
func (s *Server) Routes() http.Handler {
	router := mux.NewRouter()

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	}).Methods(http.MethodGet)

	router.HandleFunc("/t/{slug}", s.handleRedirect).Methods(http.MethodGet)
	router.HandleFunc("/t/{slug}/{lang}", s.handlePage).Methods(http.MethodGet)
	router.HandleFunc("/t/{slug}/{lang}/gallery", s.handleGallery).Methods(http.MethodGet)

	return router
}

func (s *Server) handleRedirect(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]
	if !presskitapi.ValidSlug(slug) {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid slug"})
		return
	}
	http.Redirect(w, r, "/t/"+slug+"/"+locale.Code(s.defaultLang), http.StatusFound)
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	page, tag, ok := s.loadPage(w, r)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, pageResponse{
		Lang:    locale.Code(tag),
		Page:    page,
		Gallery: presskit.DistributeGallery(page.Gallery.Images),
	})
}

func (s *Server) handleGallery(w http.ResponseWriter, r *http.Request) {
	page, _, ok := s.loadPage(w, r)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, presskit.DistributeGallery(page.Gallery.Images))
}

// loadPage fetches and normalizes the presskit named by the request. On
// failure it writes the error response and reports false.
func (s *Server) loadPage(w http.ResponseWriter, r *http.Request) (presskit.PresskitPageView, language.Tag, bool) {
	vars := mux.Vars(r)
	slug := vars["slug"]
	tag := locale.Resolve(vars["lang"], s.defaultLang)

	if !presskitapi.ValidSlug(slug) {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid slug"})
		return presskit.PresskitPageView{}, tag, false
	}

	doc, err := s.source.Fetch(r.Context(), slug, locale.Code(tag))
	if err != nil {
		status, message := s.classify(r.Context(), slug, err)
		if status != http.StatusOK {
			writeJSON(w, status, errorResponse{Error: message})
			return presskit.PresskitPageView{}, tag, false
		}
		doc = nil
	}

	return presskit.NewNormalizer(tag).GetPresskitData(doc), tag, true
}

// classify maps a fetch error to a response status. Malformed documents
// are served as empty pages and map to 200.
func (s *Server) classify(ctx context.Context, slug string, err error) (int, string) {
	logger := s.logger.WithContext(ctx)

	switch {
	case errors.Is(err, presskitapi.ErrInvalidSlug):
		return http.StatusBadRequest, "invalid slug"
	case errors.Is(err, presskitapi.ErrNotFound):
		return http.StatusNotFound, "presskit not found"
	case errors.Is(err, presskitapi.ErrMalformedDocument):
		logger.Warn().Err(err).Str("slug", slug).Msg("serving empty presskit for malformed document")
		return http.StatusOK, ""
	case errors.Is(err, presskitapi.ErrDocumentTooLarge):
		logger.Error().Err(err).Str("slug", slug).Msg("presskit document rejected")
		return http.StatusBadGateway, "presskit document too large"
	case errors.Is(err, context.Canceled):
		logger.Debug().Err(err).Str("slug", slug).Msg("presskit fetch canceled")
		return http.StatusBadGateway, "request canceled"
	default:
		logger.Error().Err(err).Str("slug", slug).Msg("failed to fetch presskit")
		return http.StatusBadGateway, "presskit api unavailable"
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}
