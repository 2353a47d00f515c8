// Package web serves a decoded GIF file over HTTP: the raw frame as a
// PNG, resized thumbnails re-encoded as GIF, and a small HTML index.
package web

import (
	"bytes"
	"fmt"
	"image/color"
	stdgif "image/gif"
	"image/png"
	"net/http"
	"strconv"
	"sync"

	"github.com/ericpauley/go-quantize/quantize"
	"github.com/golang/glog"
	"github.com/gorilla/mux"
	"github.com/nfnt/resize"
	"github.com/vincent-petithory/dataurl"

	"badc0de.net/pkg/go-gif/gif"
	"badc0de.net/pkg/go-gif/paths"
)

type Handler struct {
	decodeLock sync.Mutex
	gifPath    string
	cached     *gif.IndexedImage
}

// NewHandler constructs a web handler serving the GIF file at the
// passed path. The file is decoded lazily on first request and cached.
func NewHandler(gifPath string) *Handler {
	return &Handler{gifPath: gifPath}
}

// AddToRouter registers the handler's routes.
func (h *Handler) AddToRouter(r *mux.Router) {
	r.HandleFunc("/", h.indexHandler)
	r.HandleFunc("/image.png", h.pngHandler)
	r.HandleFunc("/thumb/{width:[0-9]+}.gif", h.thumbHandler)
	r.HandleFunc("/info", h.infoHandler)
}

func (h *Handler) image() (*gif.IndexedImage, error) {
	h.decodeLock.Lock()
	defer h.decodeLock.Unlock()

	if h.cached != nil {
		return h.cached, nil
	}
	data, err := paths.ReadFile(h.gifPath)
	if err != nil {
		return nil, err
	}
	m, err := gif.DecodeIndexed(data)
	if err != nil {
		return nil, err
	}
	h.cached = m
	return m, nil
}

func (h *Handler) etag(m *gif.IndexedImage, mime string) string {
	generation := 1 // bump if the way we generate the response changes
	return fmt.Sprintf(`W/"gif:%d:%s:%dx%d:%s"`, generation, h.gifPath, m.Desc.Width, len(m.Rows), mime)
}

func (h *Handler) pngHandler(w http.ResponseWriter, r *http.Request) {
	m, err := h.image()
	if err != nil {
		glog.Errorf("decoding %q: %s", h.gifPath, err)
		http.Error(w, "failed to decode gif", http.StatusInternalServerError)
		return
	}

	etag := h.etag(m, "image/png")
	if r.Header.Get("If-None-Match") == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("ETag", etag)
	w.WriteHeader(http.StatusOK)
	png.Encode(w, m.Image())
}

func (h *Handler) thumbHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	width, err := strconv.Atoi(vars["width"])
	if err != nil || width < 1 || width > 4096 {
		http.Error(w, "bad thumbnail width", http.StatusBadRequest)
		return
	}

	m, err := h.image()
	if err != nil {
		glog.Errorf("decoding %q: %s", h.gifPath, err)
		http.Error(w, "failed to decode gif", http.StatusInternalServerError)
		return
	}

	// Lanczos resampling leaves true-color pixels, so the thumbnail
	// has to be requantized before it can be written back out as GIF.
	thumb := resize.Resize(uint(width), 0, m.Image(), resize.Lanczos3)

	w.Header().Set("Content-Type", "image/gif")
	w.WriteHeader(http.StatusOK)
	stdgif.Encode(w, thumb, &stdgif.Options{
		NumColors: 256,
		Quantizer: quantize.MedianCutQuantizer{},
	})
}

func (h *Handler) infoHandler(w http.ResponseWriter, r *http.Request) {
	m, err := h.image()
	if err != nil {
		glog.Errorf("decoding %q: %s", h.gifPath, err)
		http.Error(w, "failed to decode gif", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintf(w, "signature: %s\n", m.Header.Signature)
	fmt.Fprintf(w, "screen: %dx%d\n", m.Screen.Width, m.Screen.Height)
	fmt.Fprintf(w, "image: %dx%d at %d,%d\n", m.Desc.Width, m.Desc.Height, m.Desc.Left, m.Desc.Top)
	fmt.Fprintf(w, "colors: %d\n", len(m.Table))
	fmt.Fprintf(w, "background index: %d\n", m.Screen.BackgroundIndex)
	if c, ok := background(m); ok {
		fmt.Fprintf(w, "background color: #%02x%02x%02x\n", c.R, c.G, c.B)
	}
}

func (h *Handler) indexHandler(w http.ResponseWriter, r *http.Request) {
	m, err := h.image()
	if err != nil {
		glog.Errorf("decoding %q: %s", h.gifPath, err)
		http.Error(w, "failed to decode gif", http.StatusInternalServerError)
		return
	}

	buf := &bytes.Buffer{}
	if err := png.Encode(buf, m.Image()); err != nil {
		http.Error(w, "failed to encode png", http.StatusInternalServerError)
		return
	}
	dataURL := dataurl.New(buf.Bytes(), "image/png")

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, "<!DOCTYPE html>\n<html><head><title>%s</title></head><body>\n", h.gifPath)
	fmt.Fprintf(w, "<h1>%s</h1>\n", h.gifPath)
	fmt.Fprintf(w, "<img src=%q alt=%q>\n", dataURL.String(), h.gifPath)
	fmt.Fprintf(w, "<p>%dx%d, %d colors</p>\n", m.Desc.Width, len(m.Rows), len(m.Table))
	fmt.Fprintf(w, "<p><a href=\"image.png\">png</a> | <a href=\"info\">info</a></p>\n")
	fmt.Fprintf(w, "</body></html>\n")
}

// background returns the screen's declared background color, if the
// index is inside the table.
func background(m *gif.IndexedImage) (color.RGBA, bool) {
	i := int(m.Screen.BackgroundIndex)
	if i >= len(m.Table) {
		return color.RGBA{}, false
	}
	c := m.Table[i]
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}, true
}
