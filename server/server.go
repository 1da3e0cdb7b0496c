// Package server exposes the checkmate oracle over a websocket
// endpoint: clients stream FEN records in and receive verdicts out.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"

	"matecheck/board"
	"matecheck/engine"
	"matecheck/storage"
)

// Request is one analysis query.
type Request struct {
	FEN string `json:"fen"`
}

// Response carries the verdict for one request. Error is set instead of
// a verdict when the FEN could not be parsed.
type Response struct {
	FEN       string `json:"fen"`
	Checkmate bool   `json:"checkmate"`
	MateIn    int    `json:"mate_in"`
	Move      string `json:"move,omitempty"`
	Error     string `json:"error,omitempty"`
}

type Server struct {
	mux    *http.ServeMux
	oracle *engine.Oracle
	store  *storage.Store
	logger *slog.Logger
}

// New builds a Server. store may be nil, in which case verdicts are not
// persisted between queries.
func New(oracle *engine.Oracle, store *storage.Store) *Server {
	s := &Server{
		mux:    http.NewServeMux(),
		oracle: oracle,
		store:  store,
		logger: slog.Default(),
	}
	s.mux.HandleFunc("/analyze", s.AnalyzeHandler)
	s.mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// AnalyzeHandler accepts a websocket connection and answers analysis
// requests until the client disconnects.
func (s *Server) AnalyzeHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{OriginPatterns: []string{"*"}})
	if err != nil {
		s.logger.ErrorContext(ctx, "accept failed", slog.Any("error", err))
		return
	}
	id := uuid.New()
	s.logger.InfoContext(ctx, "client connected", slog.String("conn", id.String()))
	defer conn.Close(websocket.StatusInternalError, "closing")

	for {
		msgType, data, err := conn.Read(ctx)
		if err != nil {
			closeStatus := websocket.CloseStatus(err)
			if closeStatus == websocket.StatusNormalClosure ||
				closeStatus == websocket.StatusGoingAway ||
				errors.Is(err, context.Canceled) {
				return
			}
			s.logger.ErrorContext(ctx, "read failed",
				slog.String("conn", id.String()), slog.Any("error", err))
			return
		}
		if msgType != websocket.MessageText {
			_ = conn.Close(websocket.StatusUnsupportedData, "expected text message")
			return
		}

		var req Request
		if err := json.Unmarshal(data, &req); err != nil {
			s.logger.ErrorContext(ctx, "bad request",
				slog.String("conn", id.String()), slog.Any("error", err))
			_ = conn.Close(websocket.StatusPolicyViolation, "malformed request")
			return
		}

		resp := s.analyze(req.FEN)
		out, err := json.Marshal(resp)
		if err != nil {
			s.logger.ErrorContext(ctx, "marshal failed",
				slog.String("conn", id.String()), slog.Any("error", err))
			return
		}
		if err := conn.Write(ctx, websocket.MessageText, out); err != nil {
			s.logger.ErrorContext(ctx, "write failed",
				slog.String("conn", id.String()), slog.Any("error", err))
			return
		}
	}
}

// analyze answers one query, consulting and feeding the verdict cache
// when one is configured.
func (s *Server) analyze(fen string) Response {
	if s.store != nil {
		if v, ok, err := s.store.Get(fen); err != nil {
			s.logger.Error("cache read failed", slog.Any("error", err))
		} else if ok {
			return Response{FEN: fen, Checkmate: v.Checkmate, MateIn: v.MateIn, Move: v.Move}
		}
	}

	b, err := board.NewBoard(board.WithFEN(fen))
	if err != nil {
		return Response{FEN: fen, Error: fmt.Sprintf("invalid position: %v", err)}
	}

	found, ply, mvs := s.oracle.FindForcedMate(b)
	resp := Response{
		FEN:       fen,
		Checkmate: found && ply == engine.PlyImmediate,
		MateIn:    engine.PlyNone,
	}
	if found {
		resp.MateIn = ply
		if len(mvs) > 0 {
			resp.Move = mvs[0].UCI()
		}
	}

	if s.store != nil {
		err := s.store.Put(&storage.Verdict{
			FEN:       fen,
			Checkmate: resp.Checkmate,
			MateIn:    resp.MateIn,
			Move:      resp.Move,
			CheckedAt: time.Now(),
		})
		if err != nil {
			s.logger.Error("cache write failed", slog.Any("error", err))
		}
	}
	return resp
}
