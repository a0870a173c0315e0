// Command lil is the reference host for the lil interpreter: a REPL when
// run against a terminal, a script runner when given a file or piped
// stdin. Just a parser loop over one source buffer -- no module loader,
// LSP, or bytecode-bundling machinery involved.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"

	"github.com/lil-lang/lil/internal/config"
	"github.com/lil-lang/lil/pkg/lil"
	"github.com/lil-lang/lil/pkg/store"
)

func main() {
	var (
		evalExpr  = flag.String("e", "", "evaluate lil code and print the result")
		storePath = flag.String("store", "", "path to a SQLite file backing root variables")
		showStats = flag.Bool("stats", false, "print timing/throughput stats after running")
		version   = flag.Bool("version", false, "print the lil version and exit")
	)
	flag.Parse()

	if *version {
		fmt.Println("lil", config.Version)
		return
	}

	vm := lil.New()
	if *storePath != "" {
		st, err := store.Open(*storePath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "lil:", err)
			os.Exit(1)
		}
		defer st.Close()
		st.Attach(vm.Interp())
	}

	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintln(os.Stderr, "lil: internal error:", r)
			os.Exit(2)
		}
	}()

	switch {
	case *evalExpr != "":
		runAndReport(vm, *evalExpr, *showStats, start)
	case flag.NArg() > 0:
		runFile(vm, flag.Arg(0), *showStats, start)
	case !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()):
		runStdin(vm, *showStats, start)
	default:
		repl(vm)
	}
}

func runAndReport(vm *lil.VM, code string, stats bool, start time.Time) {
	result, err := vm.Eval(code)
	if err != nil {
		fmt.Fprintln(os.Stderr, "lil:", err)
		os.Exit(1)
	}
	fmt.Println(result)
	reportStats(stats, start, len(code), "expr")
}

func runFile(vm *lil.VM, path string, stats bool, start time.Time) {
	info, err := os.Stat(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, "lil:", err)
		os.Exit(1)
	}
	if _, err := vm.LoadFile(path); err != nil {
		fmt.Fprintln(os.Stderr, "lil:", err)
		os.Exit(1)
	}
	label := config.TrimSourceExt(filepath.Base(path))
	reportStats(stats, start, int(info.Size()), label)
}

func runStdin(vm *lil.VM, stats bool, start time.Time) {
	data, err := readAll(os.Stdin)
	if err != nil {
		fmt.Fprintln(os.Stderr, "lil:", err)
		os.Exit(1)
	}
	if _, err := vm.Eval(string(data)); err != nil {
		fmt.Fprintln(os.Stderr, "lil:", err)
		os.Exit(1)
	}
	reportStats(stats, start, len(data), "stdin")
}

func readAll(f *os.File) ([]byte, error) {
	r := bufio.NewReader(f)
	var out []byte
	buf := make([]byte, 4096)
	for {
		n, err := r.Read(buf)
		out = append(out, buf[:n]...)
		if err != nil {
			if err == io.EOF {
				return out, nil
			}
			return out, err
		}
	}
}

func reportStats(show bool, start time.Time, bytesRead int, label string) {
	if !show {
		return
	}
	elapsed := time.Since(start)
	fmt.Fprintf(os.Stderr, "lil: ran %s (%s) in %s\n", label, humanize.Bytes(uint64(bytesRead)), elapsed.Round(time.Microsecond))
}

func repl(vm *lil.VM) {
	fmt.Printf("lil %s\n", config.Version)
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("lil> ")
		if !scanner.Scan() {
			fmt.Println()
			return
		}
		line := scanner.Text()
		if line == "" {
			continue
		}
		result, err := vm.Eval(line)
		if err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			continue
		}
		if result != "" {
			fmt.Println(result)
		}
	}
}
