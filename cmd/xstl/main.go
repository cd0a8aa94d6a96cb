package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/MatusOllah/slogcolor"
	"github.com/fatih/color"
	"github.com/g-m-twostay/go-containers/Arrays"
	"github.com/g-m-twostay/go-containers/Heaps"
	"github.com/g-m-twostay/go-containers/Lists"
	"github.com/g-m-twostay/go-containers/Maps"
	"github.com/g-m-twostay/go-containers/Trees"
)

const maxWordLen = 32

func setupLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slogcolor.NewHandler(os.Stderr, &slogcolor.Options{
		Level:         level,
		TimeFormat:    "15:04:05.000",
		SrcFileMode:   slogcolor.ShortFile,
		SrcFileLength: 16,
		MsgPrefix:     color.HiWhiteString("|"),
		MsgColor:      color.New(color.FgHiWhite),
		MsgLength:     24,
	}))
	slog.SetDefault(logger)
	return logger
}

func parseInts(s string) ([]int, error) {
	var vs []int
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f == "" {
			continue
		}
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("parsing %q: %w", f, err)
		}
		vs = append(vs, v)
	}
	return vs, nil
}

func runTree(w io.Writer, logger *slog.Logger, insert, contains, erase string) error {
	ins, err := parseInts(insert)
	if err != nil {
		return err
	}
	qs, err := parseInts(contains)
	if err != nil {
		return err
	}
	es, err := parseInts(erase)
	if err != nil {
		return err
	}
	t := Trees.New[int, uint32](Trees.WithCapacity(len(ins)), Trees.WithLogger(logger))
	for _, v := range ins {
		if !t.Insert(v) {
			logger.Info("duplicate rejected", slog.Int("value", v))
		}
	}
	for _, v := range qs {
		fmt.Fprintln(w, v, t.Contains(v))
	}
	for _, v := range es {
		logger.Info("erase", slog.Int("value", v), slog.Bool("found", t.Remove(v)))
	}
	t.Dump()
	var sb strings.Builder
	for v := range t.All() {
		sb.WriteString(strconv.Itoa(v))
		sb.WriteByte(' ')
	}
	fmt.Fprintln(w, strings.TrimSpace(sb.String()))
	return nil
}

type wordCount struct {
	word string
	n    int
}

func runWords(out io.Writer, logger *slog.Logger, path string, top, recent uint) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	counts := Maps.New[string, int, uint32](Trees.WithLogger(logger))
	lengths := Arrays.New[uint](maxWordLen + 1)
	last := Lists.New[string]()
	sc := bufio.NewScanner(f)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		w := strings.ToLower(strings.TrimFunc(sc.Text(), func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		}))
		if w == "" {
			continue
		}
		n, _ := counts.Get(w)
		counts.Set(w, n+1)
		*lengths.Get(min(uint(len(w)), maxWordLen))++
		if last.Push(w); last.Len() > recent {
			last.Pop()
		}
	}
	if err := sc.Err(); err != nil {
		return err
	}
	logger.Debug("words counted", slog.Uint64("distinct", uint64(counts.Size())))

	h := Heaps.NewFunc(func(a, b wordCount) bool {
		return a.n < b.n || a.n == b.n && a.word > b.word
	})
	for w, n := range counts.All() {
		h.Push(wordCount{w, n})
	}
	for k := uint(0); k < top && !h.Empty(); k++ {
		wc, _ := h.Pop()
		fmt.Fprintf(out, "%6d %s\n", wc.n, wc.word)
	}
	for l, n := range lengths.All() {
		if n > 0 {
			logger.Debug("length", slog.Uint64("len", uint64(l)), slog.Uint64("words", uint64(n)))
		}
	}
	fmt.Fprintln(out, "recent:", strings.Join(last.Values(), " "))
	return nil
}

func main() {
	var (
		insert, contains, erase, words string
		top, recent                    uint
		verbose                        bool
	)
	flag.StringVar(&insert, "insert", "1,2,3", "comma separated integers to insert into a splay tree")
	flag.StringVar(&contains, "contains", "3", "comma separated integers to look up after inserting")
	flag.StringVar(&erase, "erase", "", "comma separated integers to erase after the lookups")
	flag.StringVar(&words, "words", "", "count the words of this file instead of running the tree demo")
	flag.UintVar(&top, "top", 10, "number of most frequent words to print")
	flag.UintVar(&recent, "recent", 8, "number of trailing words to print")
	flag.BoolVar(&verbose, "v", false, "debug logging")
	flag.Parse()

	logger := setupLogger(verbose)
	var err error
	if words != "" {
		err = runWords(os.Stdout, logger, words, top, recent)
	} else {
		err = runTree(os.Stdout, logger, insert, contains, erase)
	}
	if err != nil {
		logger.Error("xstl failed", slog.Any("error", err))
		os.Exit(1)
	}
}
