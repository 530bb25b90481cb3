package main // import "github.com/tonobo/gridsnake"

import (
	"errors"
	"io"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/go-kit/log/level"
	"github.com/google/uuid"
)

var errMissingCells = errors.New("body and food need at least one cell each")

type StartRequest struct {
	GameID string `json:"game_id"`
}

type GreedyRequest struct {
	GameID string `json:"game_id"`
	Turn   int    `json:"turn"`
	Body   []int  `json:"body"`
	Food   []int  `json:"food"`
}

func (j *GreedyRequest) Validate() error {
	if len(j.Body) < 2 || len(j.Food) < 2 {
		return errMissingCells
	}
	return nil
}

func (j *GreedyRequest) Request(cfg AppConfig) *Request {
	return &Request{
		Board: NewBoard(cfg.BoardSize, nil),
		Self:  Snake{Body: ParsePositions(j.Body)},
		Foods: ParsePositions(j.Food),
	}
}

type PlanRequest struct {
	GreedyRequest
	Barriers []int `json:"barriers"`
}

func (j *PlanRequest) Request(cfg AppConfig) *Request {
	req := j.GreedyRequest.Request(cfg)
	req.Board = NewBoard(cfg.BoardSize, ParsePositions(j.Barriers))
	return req
}

type CompeteRequest struct {
	GameID   string `json:"game_id"`
	Turn     int    `json:"turn"`
	N        int    `json:"n"`
	Me       []int  `json:"me"`
	Other    []int  `json:"other"`
	FoodNum  int    `json:"food_num"`
	Foods    []int  `json:"foods"`
	SnakeNum int    `json:"snake_num"`
	Round    int    `json:"round"`
}

func (j *CompeteRequest) Request(cfg AppConfig) (*Request, error) {
	if len(j.Me) < 2 {
		return nil, errMissingCells
	}
	opponents, err := NewOpponents(j.Other, cfg.OpponentStride)
	if err != nil {
		return nil, err
	}
	n := j.N
	if n <= 0 {
		n = cfg.BoardSize
	}
	return &Request{
		Board:      NewBoard(n, nil),
		Self:       Snake{Body: ParsePositions(j.Me)},
		Opponents:  opponents,
		Foods:      ParsePositions(j.Foods),
		FoodCount:  j.FoodNum,
		AgentCount: j.SnakeNum,
		Round:      j.Round,
	}, nil
}

type MoveResponse struct {
	Move Direction `json:"move"`
	Name string    `json:"name"`
}

// Server exposes the three movers over HTTP. Plan sessions live until /end
// or until the store expires them.
type Server struct {
	sessions *SessionStore
	journal  *Journal
	debugOut io.Writer
}

func NewServer(sessions *SessionStore, journal *Journal) *Server {
	return &Server{sessions: sessions, journal: journal, debugOut: os.Stderr}
}

// dump prints the board when the current config asks for debug output.
func (s *Server) dump(req *Request) {
	if CurrentConfig().Debug {
		PrintGrid(s.debugOut, req)
	}
}

func (s *Server) Router() *gin.Engine {
	r := gin.Default()
	r.POST("/start", s.start)
	r.POST("/end", s.end)
	r.POST("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{})
	})
	r.POST("/move/greedy", s.moveGreedy)
	r.POST("/move/plan", s.movePlan)
	r.POST("/move/compete", s.moveCompete)
	r.GET("/journal/:game_id", s.journalEntries)
	r.DELETE("/journal/:game_id", s.forgetJournal)
	return r
}

func (s *Server) start(c *gin.Context) {
	var j StartRequest
	if err := c.ShouldBindJSON(&j); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if j.GameID == "" {
		j.GameID = uuid.NewString()
	}
	s.sessions.Get(j.GameID).Reset()
	_ = level.Info(GlobalLogger()).Log("msg", "start game", "game", j.GameID)
	c.JSON(http.StatusOK, gin.H{"game_id": j.GameID})
}

func (s *Server) end(c *gin.Context) {
	var j StartRequest
	if err := c.ShouldBindJSON(&j); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s.sessions.Drop(j.GameID)
	_ = level.Info(GlobalLogger()).Log("msg", "end game", "game", j.GameID)
	c.JSON(http.StatusOK, gin.H{})
}

func (s *Server) moveGreedy(c *gin.Context) {
	var j GreedyRequest
	if err := c.ShouldBindJSON(&j); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := j.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req := j.Request(CurrentConfig())
	s.dump(req)
	d := (&MoveSelector{}).Decide(ModeGreedy, req)
	s.respond(c, j.GameID, j.Turn, ModeGreedy, d)
}

func (s *Server) movePlan(c *gin.Context) {
	var j PlanRequest
	if err := c.ShouldBindJSON(&j); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := j.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if j.GameID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "game_id is required to keep a plan"})
		return
	}
	session := s.sessions.Get(j.GameID)
	req := j.Request(CurrentConfig())
	s.dump(req)
	d := (&MoveSelector{Session: session}).Decide(ModePlan, req)
	s.respond(c, j.GameID, j.Turn, ModePlan, d)
}

func (s *Server) moveCompete(c *gin.Context) {
	var j CompeteRequest
	if err := c.ShouldBindJSON(&j); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req, err := j.Request(CurrentConfig())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s.dump(req)
	d := (&MoveSelector{}).Decide(ModeCompete, req)
	s.respond(c, j.GameID, j.Turn, ModeCompete, d)
}

func (s *Server) respond(c *gin.Context, gameID string, turn int, mode Mode, d Direction) {
	err := s.journal.Record(JournalEntry{GameID: gameID, Turn: turn, Mode: mode.String(), Direction: d})
	if err != nil {
		_ = level.Error(GlobalLogger()).Log("msg", "journal record", "game", gameID, "err", err)
	}
	c.JSON(http.StatusOK, MoveResponse{Move: d, Name: d.String()})
}

func (s *Server) journalEntries(c *gin.Context) {
	if s.journal == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "journal disabled"})
		return
	}
	entries, err := s.journal.Moves(c.Param("game_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, entries)
}

func (s *Server) forgetJournal(c *gin.Context) {
	if s.journal == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "journal disabled"})
		return
	}
	if err := s.journal.Forget(c.Param("game_id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{})
}
