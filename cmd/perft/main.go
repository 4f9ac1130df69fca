package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/benbeisheim/librechess-backend/internal/model"
	"github.com/benbeisheim/librechess-backend/internal/perft"
)

func main() {
	depth := flag.Int("depth", 0, "Perft depth (required)")
	moves := flag.String("moves", "", "Space separated moves to play from the initial position, e.g. \"E2E4 E7E5\"")
	divide := flag.Bool("divide", false, "Print per-move node counts at root")
	flag.Parse()

	if *depth <= 0 {
		fmt.Fprintln(os.Stderr, "-depth must be > 0")
		os.Exit(2)
	}

	g, err := model.NewGame("perft", model.StandardChess())
	if err != nil {
		fmt.Fprintf(os.Stderr, "new game: %v\n", err)
		os.Exit(2)
	}
	for _, mv := range strings.Fields(*moves) {
		if err := play(g, mv); err != nil {
			fmt.Fprintf(os.Stderr, "move %s: %v\n", mv, err)
			os.Exit(2)
		}
	}

	if *divide {
		lines, err := perft.Divide(g, *depth)
		if err != nil {
			fmt.Fprintf(os.Stderr, "divide: %v\n", err)
			os.Exit(2)
		}
		var sum, refSum uint64
		for _, l := range lines {
			mark := ""
			if !l.Match() {
				mark = "  MISMATCH"
			}
			fmt.Printf("%s: %d %d%s\n", l.Move, l.Nodes, l.Reference, mark)
			sum += l.Nodes
			refSum += l.Reference
		}
		fmt.Printf("Total: %d %d\n", sum, refSum)
		return
	}

	start := time.Now()
	res, err := perft.Compare(g, *depth)
	if err != nil {
		fmt.Fprintf(os.Stderr, "perft: %v\n", err)
		os.Exit(2)
	}
	fmt.Printf("%s\n%d \t%d \t%d \t%s\n", res.FEN, res.Depth, res.Nodes, res.Reference, time.Since(start))
	if !res.Match() {
		os.Exit(1)
	}
}

// play accepts coordinate moves like E2E4 or E7E8N.
func play(g *model.Game, mv string) error {
	mv = strings.ToUpper(mv)
	if len(mv) < 4 {
		return fmt.Errorf("expected from and to squares")
	}
	req := model.MoveRequest{}
	var ok bool
	if req.From, ok = model.ParsePosition(mv[:2]); !ok {
		return fmt.Errorf("bad square %q", mv[:2])
	}
	if req.To, ok = model.ParsePosition(mv[2:4]); !ok {
		return fmt.Errorf("bad square %q", mv[2:4])
	}
	if len(mv) > 4 {
		if req.Promotion, ok = model.ParsePromotion(mv[4:]); !ok {
			return fmt.Errorf("bad promotion %q", mv[4:])
		}
	}
	_, err := g.Move(req)
	return err
}
