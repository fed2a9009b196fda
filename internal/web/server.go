// Package web serves the browser display surface: a file upload form and
// the rendered, hover-annotated segmented view of the uploaded document.
package web

import (
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/itsmostafa/segview/internal/segment"
)

// maxUploadBytes bounds the uploaded document size.
const maxUploadBytes = 10 << 20

// Config holds server settings.
type Config struct {
	Addr string
}

// Server runs uploaded documents through the segmentation pipeline and
// renders the result as HTML. Each request gets its own pipeline invocation;
// nothing is cached across documents.
type Server struct {
	cfg     Config
	gateway segment.Gateway
}

// NewServer creates a server using the given gateway.
func NewServer(cfg Config, gateway segment.Gateway) *Server {
	return &Server{cfg: cfg, gateway: gateway}
}

// resultView is the template payload for the segmented view page.
type resultView struct {
	Doc         segment.Document
	RawJSON     string
	HasSections bool
	Error       string
}

// Handler returns the route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/segment", s.handleSegment)
	return mux
}

// ListenAndServe starts the server on the configured address.
func (s *Server) ListenAndServe() error {
	log.Printf("listening on %s", s.cfg.Addr)
	return http.ListenAndServe(s.cfg.Addr, s.Handler())
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if err := uploadTmpl.Execute(w, nil); err != nil {
		log.Printf("render upload page: %v", err)
	}
}

func (s *Server) handleSegment(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	file, _, err := r.FormFile("document")
	if err != nil {
		http.Error(w, fmt.Sprintf("missing document upload: %v", err), http.StatusBadRequest)
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		http.Error(w, fmt.Sprintf("reading upload: %v", err), http.StatusBadRequest)
		return
	}

	res, err := segment.Process(r.Context(), s.gateway, string(content))
	if err != nil {
		// The document falls back to an all-unlabeled render with the
		// failure shown above it.
		log.Printf("segmentation failed: %v", err)
	}
	if err := RenderHTML(w, res, err); err != nil {
		log.Printf("render result page: %v", err)
	}
}

// RenderHTML writes the segmented view page for a pipeline result. A
// non-nil segErr produces the error banner over the fallback render; the
// same page is written by the serve handler and the --html CLI output.
func RenderHTML(w io.Writer, res segment.Result, segErr error) error {
	view := resultView{Doc: res.Doc}
	if segErr != nil {
		view.Error = segErr.Error()
	} else {
		view.HasSections = len(res.Sections.Sections) > 0
		view.RawJSON = res.Sections.String()
	}
	return resultTmpl.Execute(w, view)
}
