// Package ui boots the waffle template engine and renders pages inside the
// shared layout shell.
//
// Feature packages register their sets with templates.Register (usually in
// an init func). Each page file defines its entry template, which calls
// "layout", and a "content" block; Render takes the entry template's name.
package ui

import (
	"bytes"
	"net/http"
	"sync"

	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

var (
	mu     sync.RWMutex
	engine *templates.Engine
	logger = zap.NewNop()
)

// Boot compiles every registered template set and installs the engine for
// Render and for waffle's own templates.Render helpers.
func Boot(dev bool, l *zap.Logger) error {
	eng := templates.New(dev)
	if err := eng.Boot(l); err != nil {
		return err
	}
	UseEngine(eng, l)
	return nil
}

// UseEngine installs e. A nil engine makes every render fail with 500.
func UseEngine(e *templates.Engine, l *zap.Logger) {
	templates.UseEngine(e, l)

	mu.Lock()
	defer mu.Unlock()
	engine = e
	if l != nil {
		logger = l
	}
}

// Render writes page with status 200.
func Render(w http.ResponseWriter, r *http.Request, page string, data any) {
	RenderStatus(w, r, http.StatusOK, page, data)
}

// RenderStatus writes page with the given status. The page is rendered into
// a buffer first; on failure the client gets a plain 500 and nothing partial.
func RenderStatus(w http.ResponseWriter, r *http.Request, status int, page string, data any) {
	mu.RLock()
	e, log := engine, logger
	mu.RUnlock()

	if e == nil {
		log.Error("render before templates booted", zap.String("page", page))
		http.Error(w, "templates not initialized", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := e.Render(&buf, r, page, data); err != nil {
		log.Error("template render failed",
			zap.String("page", page),
			zap.String("path", r.URL.Path),
			zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
