package web

import (
	"errors"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/julian-carbajal/tic-tac-toe/internal/app"
	"github.com/julian-carbajal/tic-tac-toe/internal/domain"
)

type handlers struct {
	svc *app.Service
	tpl *templates
}

func statusText(g domain.Game) string {
	switch g.Outcome() {
	case domain.HumanWin:
		return "You win!"
	case domain.ComputerWin:
		return "Computer wins"
	case domain.Draw:
		return "It's a tie"
	default:
		return "Your move"
	}
}

func (h *handlers) renderBoard(gs app.GameState, errMsg string) []byte {
	data := boardData{
		ID:     gs.ID,
		Board:  gs.Game.Board,
		Status: statusText(gs.Game),
		Over:   gs.Game.Over(),
		Error:  errMsg,
	}
	return renderTemplate(h.tpl.board, data)
}

func (h *handlers) index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(renderTemplate(h.tpl.index, nil))
}

func (h *handlers) create(w http.ResponseWriter, r *http.Request) {
	gs, err := h.svc.CreateGame()
	if err != nil {
		http.Error(w, "failed to create", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/game/"+gs.ID, http.StatusSeeOther)
}

func (h *handlers) view(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	ensurePlayerCookie(w, r)

	gs, ok := h.svc.Get(id)
	if !ok {
		http.NotFound(w, r)
		return
	}
	data := struct {
		ID        string
		BoardHTML template.HTML
	}{ID: gs.ID, BoardHTML: template.HTML(h.renderBoard(*gs, ""))}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(renderTemplate(h.tpl.game, data))
}

func (h *handlers) play(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	ensurePlayerCookie(w, r)
	_ = r.ParseForm()
	idx, convErr := strconv.Atoi(r.Form.Get("cell"))

	var gs *app.GameState
	var errMsg string
	if convErr != nil {
		errMsg = "Pick a cell on the board"
		if g, ok := h.svc.Get(id); ok {
			gs = g
		}
	} else {
		var err error
		gs, err = h.svc.Play(id, idx)
		if err != nil {
			if gs == nil {
				if g, ok := h.svc.Get(id); ok {
					gs = g
				}
			}
			switch {
			case errors.Is(err, domain.ErrOccupied):
				errMsg = "Cell is occupied"
			case errors.Is(err, domain.ErrOutOfBounds):
				errMsg = "Out of bounds"
			case errors.Is(err, domain.ErrGameOver):
				errMsg = "Game is over"
			default:
				errMsg = "Invalid move"
			}
		}
	}
	if gs == nil {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(h.renderBoard(*gs, errMsg))
}

var heartbeatInterval = 15 * time.Second

func (h *handlers) events(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("X-Accel-Buffering", "no")
	// In tests or non-EventSource requests, just acknowledge headers and return
	if r.Header.Get("Accept") != "text/event-stream" {
		w.WriteHeader(http.StatusOK)
		return
	}
	flusher, ok := w.(http.Flusher)
	if !ok {
		w.WriteHeader(http.StatusOK)
		return
	}
	ctx := r.Context()
	ch, _ := h.svc.Subscribe(ctx, id)
	// heartbeat ticker
	ticker := time.NewTicker(heartbeatInterval)
	defer ticker.Stop()
	// Initial flush of headers
	flusher.Flush()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			_, _ = io.WriteString(w, ": ping\n\n")
			flusher.Flush()
		case b, ok := <-ch:
			if !ok {
				return
			}
			// Emit board event
			_, _ = fmt.Fprintf(w, "event: board\n")
			_, _ = fmt.Fprintf(w, "data: %s\n\n", b)
			flusher.Flush()
		}
	}
}
