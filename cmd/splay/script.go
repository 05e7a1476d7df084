package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/g-m-twostay/go-splay/Trees"
	"github.com/g-m-twostay/go-splay/Trees/printer"
	"github.com/urfave/cli/v2"
)

var cmdRun = &cli.Command{
	Name:      "run",
	Usage:     "execute an operation script against an empty tree",
	ArgsUsage: `[<script-file>]`,
	Description: "Reads one operation per line from the file, or stdin when no file is given.\n" +
		"Operations: insert <k>..., search <k>, delete <k>, min, max, succ <k>, pred <k>,\n" +
		"root, preorder, inorder, postorder, levelorder, print, check. '#' starts a comment.",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "file path for results (default stdout)",
		},
	},
	Action: runScript,
}

var cmdDemo = &cli.Command{
	Name:      "demo",
	Usage:     "insert keys and show the resulting tree",
	ArgsUsage: `<key>...`,
	Action:    runDemo,
}

func runScript(cctx *cli.Context) error {
	logger, err := configLogger(cctx)
	if err != nil {
		return err
	}
	var in io.Reader = os.Stdin
	if p := cctx.Args().First(); p != "" && p != "-" {
		f, err := os.Open(p)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}
	out := cctx.App.Writer
	if p := cctx.String("output"); p != "" {
		f, err := os.Create(p)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	s := newSession(out, logger)
	return s.exec(in)
}

func runDemo(cctx *cli.Context) error {
	logger, err := configLogger(cctx)
	if err != nil {
		return err
	}
	if cctx.Args().Len() == 0 {
		return fmt.Errorf("need at least one key")
	}
	s := newSession(cctx.App.Writer, logger)
	if err := s.do(append([]string{"insert"}, cctx.Args().Slice()...)); err != nil {
		return err
	}
	if err := s.do([]string{"print"}); err != nil {
		return err
	}
	return s.do([]string{"inorder"})
}

// session executes operations against one tree, writing results to out.
type session struct {
	tree *Trees.SplayTree[int]
	out  io.Writer
	log  *slog.Logger
}

func newSession(out io.Writer, logger *slog.Logger) *session {
	return &session{
		tree: Trees.New[int](),
		out:  out,
		log:  logger,
	}
}

// exec runs every line of r, stopping at the first malformed one.
func (s *session) exec(r io.Reader) error {
	sc := bufio.NewScanner(r)
	for ln := 1; sc.Scan(); ln++ {
		line := sc.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if err := s.do(fields); err != nil {
			return fmt.Errorf("line %d: %w", ln, err)
		}
	}
	return sc.Err()
}

var errUsage = errors.New("bad operation")

func parseKeys(args []string, want int) ([]int, error) {
	if want >= 0 && len(args) != want || want < 0 && len(args) == 0 {
		return nil, fmt.Errorf("%w: wrong number of keys", errUsage)
	}
	ks := make([]int, len(args))
	for i, a := range args {
		k, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("%w: key %q is not an integer", errUsage, a)
		}
		ks[i] = k
	}
	return ks, nil
}

func (s *session) do(fields []string) error {
	op, args := strings.ToLower(fields[0]), fields[1:]
	s.log.Debug("executing operation", "op", op, "args", args)
	switch op {
	case "insert":
		ks, err := parseKeys(args, -1)
		if err != nil {
			return err
		}
		for _, k := range ks {
			s.tree.Insert(k)
		}
		s.log.Debug("inserted keys", "count", len(ks), "size", s.tree.Size())
	case "search":
		ks, err := parseKeys(args, 1)
		if err != nil {
			return err
		}
		if n := s.tree.Search(ks[0]); n != nil {
			fmt.Fprintf(s.out, "found %d\n", n.Key())
		} else {
			s.notFound(op, ks[0])
		}
	case "delete":
		ks, err := parseKeys(args, 1)
		if err != nil {
			return err
		}
		if err := s.tree.Delete(ks[0]); err != nil {
			if !errors.Is(err, Trees.ErrKeyNotFound) {
				return err
			}
			s.notFound(op, ks[0])
		} else {
			fmt.Fprintf(s.out, "deleted %d\n", ks[0])
		}
	case "min", "max":
		if len(args) != 0 {
			return fmt.Errorf("%w: %s takes no keys", errUsage, op)
		}
		get := s.tree.Minimum
		if op == "max" {
			get = s.tree.Maximum
		}
		if k, ok := get(); ok {
			fmt.Fprintf(s.out, "%s %d\n", op, k)
		} else {
			fmt.Fprintf(s.out, "%s none: tree is empty\n", op)
		}
	case "succ", "pred":
		ks, err := parseKeys(args, 1)
		if err != nil {
			return err
		}
		n := s.tree.Search(ks[0])
		if n == nil {
			s.notFound(op, ks[0])
			return nil
		}
		next := s.tree.Successor(n)
		if op == "pred" {
			next = s.tree.Predecessor(n)
		}
		if next != nil {
			fmt.Fprintf(s.out, "%s %d = %d\n", op, ks[0], next.Key())
		} else {
			fmt.Fprintf(s.out, "%s %d = none\n", op, ks[0])
		}
	case "root":
		if r := s.tree.Root(); r != nil {
			fmt.Fprintf(s.out, "root %d\n", r.Key())
		} else {
			fmt.Fprintln(s.out, "root none: tree is empty")
		}
	case "preorder":
		return printer.WriteOrder[int](s.out, s.tree, Trees.PreOrder)
	case "inorder":
		return printer.WriteOrder[int](s.out, s.tree, Trees.InOrder)
	case "postorder":
		return printer.WriteOrder[int](s.out, s.tree, Trees.PostOrder)
	case "levelorder":
		return printer.WriteOrder[int](s.out, s.tree, Trees.LevelOrder)
	case "print":
		_, err := io.WriteString(s.out, printer.Diagram[int](s.tree))
		return err
	case "check":
		if s.tree.Corrupt() {
			s.log.Error("tree structure is corrupt", "size", s.tree.Size())
			return fmt.Errorf("tree structure is corrupt")
		}
		fmt.Fprintf(s.out, "ok %d keys\n", s.tree.Size())
	default:
		return fmt.Errorf("%w: unknown operation %q", errUsage, op)
	}
	return nil
}

func (s *session) notFound(op string, k int) {
	s.log.Warn("key not found", "op", op, "key", k)
	fmt.Fprintf(s.out, "%s %d: not found\n", op, k)
}
