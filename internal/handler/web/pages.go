package web

import (
	"net/http"

	"github.com/MKhiriev/go-app-scaffold/internal/app"
	"github.com/MKhiriev/go-app-scaffold/internal/logger"
	"github.com/MKhiriev/go-app-scaffold/models"
)

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, pageIndex, h.pageData("Home", "Welcome to My App"))
}

func (h *Handler) about(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, pageAbout, h.pageData("About", "About My App"))
}

func (h *Handler) users(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	users, err := h.backend.GetUsers(r.Context())
	if err != nil {
		log.Err(err).Msg("failed to get users")
		users = []models.User{}
	}
	log.Info().Int("count", len(users)).Msg("fetched users")

	data := h.pageData("Users", "User management")
	data.Users = users
	h.renderPage(w, r, pageUsers, data)
}

func (h *Handler) items(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	items, err := h.backend.GetItems(r.Context())
	if err != nil {
		log.Err(err).Msg("failed to get items")
		items = []models.Item{}
	}
	log.Info().Int("count", len(items)).Msg("fetched items")

	data := h.pageData("Items", "Item management")
	data.Items = items
	h.renderPage(w, r, pageItems, data)
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	w.Write([]byte(app.MsgPageNotFound))
}

func (h *Handler) pageData(title, description string) models.PageData {
	cfg := h.source.Snapshot()
	return models.PageData{
		Title:       title,
		Description: description,
		Environment: cfg.App.Environment,
	}
}

func (h *Handler) renderPage(w http.ResponseWriter, r *http.Request, name string, data models.PageData) {
	html, err := h.renderer.render(name, data)
	if err != nil {
		logger.FromRequest(r).Err(err).Str("page", name).Msg("template error")
		http.Error(w, app.MsgTemplateError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(html)
}
