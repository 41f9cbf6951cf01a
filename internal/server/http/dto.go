package httpserver

import (
	"encoding/json"

	"gobang/internal/engine"
	"gobang/internal/gobang"
	"gobang/internal/server/game"
)

// MoveDTO is a board coordinate as the front-end sends it.
type MoveDTO struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func dtoToCoord(m MoveDTO) gobang.Coord { return gobang.Coord{Row: m.Row, Col: m.Col} }

func coordToDTO(c gobang.Coord) MoveDTO { return MoveDTO{Row: c.Row, Col: c.Col} }

func coordsToDTO(cs []gobang.Coord) []MoveDTO {
	out := make([]MoveDTO, len(cs))
	for i, c := range cs {
		out[i] = coordToDTO(c)
	}
	return out
}

// NewGameRequest: depth 0 means the configured default, human_color defaults to black.
type NewGameRequest struct {
	Depth      int    `json:"depth"`
	HumanColor string `json:"human_color"`
}

type PlayRequest struct {
	GameID string  `json:"game_id"`
	Move   MoveDTO `json:"move"`
}

type StateRequest struct {
	GameID string `json:"game_id"`
}

type SearchDTO struct {
	Move      MoveDTO `json:"move"`
	Score     int     `json:"score"`
	Depth     int     `json:"depth"`
	Nodes     int64   `json:"nodes"`
	Cutoffs   int64   `json:"cutoffs"`
	CacheHits int64   `json:"cache_hits"`
	TimeMs    int64   `json:"time_ms"`
}

func searchToDTO(r *engine.SearchResult) *SearchDTO {
	if r == nil {
		return nil
	}
	return &SearchDTO{
		Move:      coordToDTO(r.Move),
		Score:     r.Score,
		Depth:     r.Depth,
		Nodes:     r.Nodes,
		Cutoffs:   r.Cutoffs,
		CacheHits: r.CacheHits,
		TimeMs:    r.TimeUsed.Milliseconds(),
	}
}

// StateResponse is returned by new_game, play, state and the websocket push.
type StateResponse struct {
	GameID     string     `json:"game_id"`
	Position   string     `json:"position"` // layout string, see gobang.Grid.Encode
	Board      [][]int    `json:"board"`    // 0 empty, 1 black, 2 white
	ToMove     string     `json:"to_move"`
	HumanColor string     `json:"human_color"`
	Status     string     `json:"status"`
	LastMove   *MoveDTO   `json:"last_move,omitempty"`
	MoveCount  int        `json:"move_count"`
	WinLine    []MoveDTO  `json:"win_line,omitempty"`
	Depth      int        `json:"depth"`
	Version    uint64     `json:"version"`
	Search     *SearchDTO `json:"search,omitempty"`
}

func snapshotToDTO(s game.Snapshot) StateResponse {
	resp := StateResponse{
		GameID:     s.ID,
		Position:   s.Grid.Encode(),
		Board:      s.Grid.Rows(),
		ToMove:     s.ToMove().String(),
		HumanColor: s.HumanColor.String(),
		Status:     string(s.Status),
		MoveCount:  len(s.Moves),
		Depth:      s.Depth,
		Version:    s.Version,
		Search:     searchToDTO(s.LastSearch),
	}
	if s.LastMove != nil {
		m := coordToDTO(*s.LastMove)
		resp.LastMove = &m
	}
	if len(s.WinLine) > 0 {
		resp.WinLine = coordsToDTO(s.WinLine)
	}
	return resp
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type wsMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

func mustMarshal(v any) json.RawMessage {
	data, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return data
}
