// Command html5dump parses an HTML document from a file (or stdin) and
// prints the resulting tree, one node per line, indented by depth —
// the parse-a-file-to-a-dumped-tree demonstration harness of SPEC_FULL.md
// §2, grounded on the teacher's own example/main.go entry point style
// (flag parsing, *slog.Logger wiring) without its HTTP server concerns.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/corehtml/html5/dom"
	"github.com/corehtml/html5/html5"
	"github.com/corehtml/html5/serialize"
)

func main() {
	var (
		verbose = flag.Bool("v", false, "log parse errors to stderr as they're reported")
		render  = flag.Bool("serialize", false, "print the re-serialized HTML instead of a tree dump")
	)
	flag.Parse()

	logLevel := slog.LevelError
	if *verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	r := os.Stdin
	if flag.NArg() > 0 {
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer f.Close()
		r = f
	}

	doc, err := html5.ParseDocument(r, html5.WithLogger(logger))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if *render {
		if err := serialize.Render(os.Stdout, doc.Arena, doc.Root); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	dumpNode(doc.Arena, doc.Root, 0)
}

func dumpLevel(arena *dom.Arena, n dom.NodeID, depth int) string {
	var b strings.Builder
	b.WriteString(strings.Repeat("  ", depth))
	switch arena.Type(n) {
	case dom.DocumentNode:
		b.WriteString("#document")
	case dom.DocumentTypeNode:
		fmt.Fprintf(&b, "<!DOCTYPE %s>", arena.Data(n))
	case dom.ElementNode:
		tag := arena.Tag(n)
		fmt.Fprintf(&b, "<%s>", tag.String())
		for _, a := range arena.Attr(n) {
			fmt.Fprintf(&b, " %s=%q", a.Name.String(), a.Val)
		}
	case dom.TextNode:
		fmt.Fprintf(&b, "%q", arena.Data(n))
	case dom.CommentNode:
		fmt.Fprintf(&b, "<!--%s-->", arena.Data(n))
	}
	return b.String()
}

func dumpNode(arena *dom.Arena, n dom.NodeID, depth int) {
	fmt.Println(dumpLevel(arena, n, depth))
	for c := arena.FirstChild(n); c != 0; c = arena.NextSibling(c) {
		dumpNode(arena, c, depth+1)
	}
}

