package main // import "github.com/tonobo/gridsnake"

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/go-kit/log/level"
	"github.com/joonazan/vec2"
)

var (
	// next = current.Minus(vector)
	Direction2Vector = map[Direction]vec2.Vector{
		Up:    {X: 0, Y: -1},
		Down:  {X: 0, Y: 1},
		Left:  {X: 1, Y: 0},
		Right: {X: -1, Y: 0},
	}

	DefaultBoardSize   = 8
	LargeBoardSize     = 8
	SmallBoardSize     = 5
	OpponentStride     = 4 // segments per opponent
	LargeRoundBudget   = 100
	SmallRoundBudget   = 50
	LateGamePercent    = 40 // of the round budget
	EdgeThreatDistance = 2
	FoodCrowdRadius    = 1
	DefaultSessionIdle = 900 // seconds
	SessionSweepEvery  = time.Minute
	SnakeIDList        = []string{"a", "b", "c", "d", "e", "g", "h", "j", "k"}
)

// PrintGrid writes the board top row first: M/m is us, A/a.. opponents,
// F food, # barrier.
func PrintGrid(file io.Writer, req *Request) {
	n := req.Board.Size
	for y := n; y >= 1; y-- {
		for x := 1; x <= n; x++ {
			fmt.Fprint(file, cellSymbol(req, Position{X: x, Y: y}))
		}
		fmt.Fprint(file, "\n")
	}
	fmt.Fprint(file, "\n")
}

func cellSymbol(req *Request, p Position) string {
	if i := req.Self.Body.Index(p); i == 0 {
		return "M"
	} else if i > 0 {
		return "m"
	}
	if !req.Opponents.Empty() {
		if i := req.Opponents.Segments.Index(p); i >= 0 {
			id := SnakeIDList[(i/req.Opponents.Stride)%len(SnakeIDList)]
			if i%req.Opponents.Stride == 0 {
				return strings.ToUpper(id)
			}
			return id
		}
	}
	if req.Foods.Contains(p) {
		return "F"
	}
	if req.Board.Barrier(p) {
		return "#"
	}
	return "-"
}

// runOnce decides a single move from a JSON request on r and prints the
// direction code to w.
func runOnce(cfg AppConfig, mode Mode, r io.Reader, w io.Writer) error {
	var (
		req *Request
		d   Direction
	)
	switch mode {
	case ModeGreedy:
		var j GreedyRequest
		if err := json.NewDecoder(r).Decode(&j); err != nil {
			return fmt.Errorf("decode request: %w", err)
		}
		req = j.Request(cfg)
		d = (&MoveSelector{}).Decide(mode, req)
	case ModePlan:
		var j PlanRequest
		if err := json.NewDecoder(r).Decode(&j); err != nil {
			return fmt.Errorf("decode request: %w", err)
		}
		req = j.Request(cfg)
		d = (&MoveSelector{Session: NewSession(j.GameID)}).Decide(mode, req)
	case ModeCompete:
		var j CompeteRequest
		if err := json.NewDecoder(r).Decode(&j); err != nil {
			return fmt.Errorf("decode request: %w", err)
		}
		var err error
		if req, err = j.Request(cfg); err != nil {
			return err
		}
		d = (&MoveSelector{}).Decide(mode, req)
	default:
		return fmt.Errorf("unknown mode %v", mode)
	}
	if cfg.Debug {
		PrintGrid(os.Stderr, req)
	}
	_, err := fmt.Fprintln(w, int(d))
	return err
}

var (
	configPath = flag.String("config", "config.json", "Config file, created with defaults if missing")
	move       = flag.String("mode", "", "Decide one move read from stdin: greedy, plan or compete")
)

func main() {
	flag.Parse()
	cfg, err := LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	SetGlobalLogger(NewLogger(os.Stderr, cfg.LogLevel))

	if *move != "" {
		mode, err := ParseMode(*move)
		if err == nil {
			err = runOnce(cfg, mode, os.Stdin, os.Stdout)
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	var journal *Journal
	if cfg.Journal != "" {
		if journal, err = OpenJournal(cfg.Journal); err != nil {
			_ = level.Error(GlobalLogger()).Log("msg", "journal", "err", err)
			os.Exit(1)
		}
		defer journal.Close()
	}

	watcher, err := WatchConfig(*configPath, func(c AppConfig) {
		SetGlobalLogger(NewLogger(os.Stderr, c.LogLevel))
	})
	if err != nil {
		_ = level.Warn(GlobalLogger()).Log("msg", "config watch disabled", "err", err)
	} else {
		defer watcher.Close()
	}

	sessions := NewSessionStore()
	done := make(chan struct{})
	defer close(done)
	go sessions.Sweep(SessionSweepEvery, cfg.SessionIdleTimeout(), done)

	srv := NewServer(sessions, journal)
	_ = level.Info(GlobalLogger()).Log("msg", "listening", "port", cfg.Port)
	if err := srv.Router().Run(":" + cfg.Port); err != nil {
		_ = level.Error(GlobalLogger()).Log("msg", "server", "err", err)
		os.Exit(1)
	}
}
