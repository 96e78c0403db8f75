package handler

import (
	"bytes"
	"embed"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/passgen/passgen-go/internal/crypto"
	"github.com/passgen/passgen-go/internal/model"
	"github.com/passgen/passgen-go/internal/service"
)

//go:embed templates/*.html
var templateFS embed.FS

var indexTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

const noClassesMessage = "Please select at least one character type!"

// WebHandler serves the HTML generator form.
type WebHandler struct {
	service *service.GeneratorService
}

// NewWebHandler creates a new WebHandler.
func NewWebHandler(svc *service.GeneratorService) *WebHandler {
	return &WebHandler{service: svc}
}

type pageData struct {
	MinLength int
	MaxLength int
	Length    int
	Uppercase bool
	Lowercase bool
	Numbers   bool
	Symbols   bool

	Password string
	Strength *model.StrengthResponse
	Error    string
}

func (h *WebHandler) basePage() pageData {
	bounds := h.service.Bounds()
	return pageData{
		MinLength: bounds.MinLength,
		MaxLength: bounds.MaxLength,
		Length:    bounds.DefaultLength,
		Uppercase: true,
		Lowercase: true,
		Numbers:   true,
		Symbols:   true,
	}
}

// HandleIndex handles GET / with every class selected.
func (h *WebHandler) HandleIndex(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK, h.basePage())
}

// HandleGenerate handles POST / form submissions. Unchecked boxes are
// absent from the form and count as deselected.
func (h *WebHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	page := h.basePage()
	if n, err := strconv.Atoi(r.PostForm.Get("length")); err == nil {
		page.Length = n
	}
	page.Uppercase = r.PostForm.Has("uppercase")
	page.Lowercase = r.PostForm.Has("lowercase")
	page.Numbers = r.PostForm.Has("numbers")
	page.Symbols = r.PostForm.Has("symbols")

	resp, err := h.service.Generate(r.Context(), model.GenerateRequest{
		Length:    page.Length,
		Uppercase: &page.Uppercase,
		Lowercase: &page.Lowercase,
		Numbers:   &page.Numbers,
		Symbols:   &page.Symbols,
	})
	switch {
	case errors.Is(err, crypto.ErrNoCharacterTypes):
		page.Error = noClassesMessage
		h.render(w, http.StatusUnprocessableEntity, page)
		return
	case isValidationError(err):
		page.Error = err.Error()
		h.render(w, http.StatusUnprocessableEntity, page)
		return
	case err != nil:
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	page.Password = resp.Password
	page.Strength = &resp.Strength
	w.Header().Set("Cache-Control", "no-store")
	h.render(w, http.StatusOK, page)
}

func (h *WebHandler) render(w http.ResponseWriter, status int, page pageData) {
	var buf bytes.Buffer
	if err := indexTemplate.Execute(&buf, page); err != nil {
		slog.Error("rendering index failed", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}
