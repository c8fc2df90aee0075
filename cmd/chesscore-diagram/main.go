// chesscore-diagram renders positions as text, SVG or PNG diagrams and
// manages the library of saved positions.
//
// Examples:
//
//	chesscore-diagram -fen "8/8/8/3q4/8/8/8/8 w - - 0 1" -moves d5 -out queen.svg
//	chesscore-diagram -save italian -fen "r1bqkbnr/pppp1ppp/2n5/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R b KQkq - 3 3"
//	chesscore-diagram -load italian -out italian.png
//	chesscore-diagram -list
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/hailam/chesscore/internal/board"
	"github.com/hailam/chesscore/internal/diagram"
	"github.com/hailam/chesscore/internal/storage"
)

var (
	fenFlag   = flag.String("fen", board.StartFEN, "position to render, in FEN")
	movesFlag = flag.String("moves", "", "square whose candidate moves to highlight (e.g. e2)")
	outFlag   = flag.String("out", "", "output file; .svg and .png are supported, empty prints text")
	sizeFlag  = flag.Int("size", 64, "square size in pixels")
	flipFlag  = flag.Bool("flip", false, "show the board from Black's side")
	plainFlag = flag.Bool("no-coords", false, "omit coordinate labels")

	dbFlag     = flag.String("db", "", "database directory (default: the platform data dir)")
	saveFlag   = flag.String("save", "", "save the position under this name")
	tagsFlag   = flag.String("tags", "", "comma-separated tags stored with -save")
	loadFlag   = flag.String("load", "", "render the position saved under this name")
	listFlag   = flag.Bool("list", false, "list saved positions and exit")
	deleteFlag = flag.String("delete", "", "delete the saved position and exit")
)

func main() {
	flag.Parse()

	var store *storage.Store
	if *listFlag || *deleteFlag != "" || *saveFlag != "" || *loadFlag != "" {
		var err error
		store, err = openStore()
		if err != nil {
			log.Fatalf("open database: %v", err)
		}
		defer store.Close()
	}

	if *listFlag {
		listPositions(store)
		return
	}
	if *deleteFlag != "" {
		if err := store.DeletePosition(*deleteFlag); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("deleted %q\n", *deleteFlag)
		return
	}

	fen := *fenFlag
	if *loadFlag != "" {
		sp, err := store.LoadPosition(*loadFlag)
		if err != nil {
			log.Fatal(err)
		}
		fen = sp.FEN
	}

	pos, err := board.ParseFEN(fen)
	if err != nil {
		log.Fatalf("parse FEN: %v", err)
	}

	if *saveFlag != "" {
		var tags []string
		if *tagsFlag != "" {
			tags = strings.Split(*tagsFlag, ",")
		}
		if err := store.SavePosition(*saveFlag, fen, tags...); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("saved %q\n", *saveFlag)
	}

	highlights := board.Empty
	if *movesFlag != "" {
		sq, err := board.ParseSquare(*movesFlag)
		if err != nil {
			log.Fatalf("parse square %q: %v", *movesFlag, err)
		}
		highlights = pos.PossibleMoves(sq)
	}

	if *outFlag == "" {
		fmt.Print(pos)
		if highlights != board.Empty {
			fmt.Printf("candidate moves from %s:\n%s", *movesFlag, highlights)
		}
		return
	}

	if err := render(pos, highlights); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("wrote %s\n", *outFlag)
}

func openStore() (*storage.Store, error) {
	if *dbFlag != "" {
		return storage.Open(*dbFlag)
	}
	return storage.OpenDefault()
}

func listPositions(store *storage.Store) {
	positions, err := store.ListPositions()
	if err != nil {
		log.Fatal(err)
	}
	if len(positions) == 0 {
		fmt.Println("no saved positions")
		return
	}
	for _, sp := range positions {
		line := fmt.Sprintf("%-20s %s", sp.Name, sp.FEN)
		if len(sp.Tags) > 0 {
			line += "  [" + strings.Join(sp.Tags, ", ") + "]"
		}
		fmt.Println(line)
	}
}

func render(pos *board.Position, highlights board.Bitboard) error {
	opts := diagram.DefaultOptions()
	opts.SquareSize = *sizeFlag
	opts.Flip = *flipFlag
	opts.Coords = !*plainFlag

	f, err := os.Create(*outFlag)
	if err != nil {
		return err
	}
	defer f.Close()

	switch ext := strings.ToLower(filepath.Ext(*outFlag)); ext {
	case ".svg":
		diagram.WriteSVG(f, pos, highlights, opts)
		return nil
	case ".png":
		return diagram.WritePNG(f, pos, highlights, opts)
	default:
		return fmt.Errorf("unsupported output format %q (use .svg or .png)", ext)
	}
}
