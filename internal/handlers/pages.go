package handlers

import (
	"net/http"
	helpers "selfrental/internal/utils/helpres"
)

// PageHandler отдаёт статические страницы, у которых нет своей логики.
type PageHandler struct{}

func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/login", http.StatusFound)
}

func (h *PageHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	helpers.HTML(w, http.StatusOK, helpers.BuildLoginHTML(""))
}

func (h *PageHandler) RegisterForm(w http.ResponseWriter, r *http.Request) {
	helpers.HTML(w, http.StatusOK, helpers.BuildRegisterHTML(""))
}

func (h *PageHandler) About(w http.ResponseWriter, r *http.Request) {
	helpers.HTML(w, http.StatusOK, helpers.BuildAboutHTML())
}

func (h *PageHandler) Contact(w http.ResponseWriter, r *http.Request) {
	helpers.HTML(w, http.StatusOK, helpers.BuildContactHTML())
}
