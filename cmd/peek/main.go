package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/drake/peek/debug"
	"github.com/drake/peek/files"
	"github.com/drake/peek/ui"
	"github.com/drake/peek/ui/style"
	"github.com/drake/peek/ui/widget"
)

func main() {
	title := flag.String("title", "peek", "Text shown on the left of the title bar")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [-title text] FILE...\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	styles := style.DefaultStyles()
	logger := debug.Logger()

	// Same path twice shares one line store.
	cache := files.NewCache(flag.NArg())
	screen := ui.NewScreen(styles, *title)
	for _, path := range flag.Args() {
		f := files.New(path)
		tv, err := widget.NewTextViewFrom(cache, f)
		if err != nil {
			logger.Printf("[DEBUG] load failed: %v", err)
			fmt.Fprintln(os.Stderr, styles.Error.Render("peek: "+err.Error()))
			os.Exit(1)
		}
		screen.AddView(f.Name, tv)
	}
	logger.Printf("[DEBUG] loaded %d views (%d distinct files)", screen.Views(), cache.Len())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	if err := ui.Run(ctx, screen); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, styles.Error.Render("peek: "+err.Error()))
		os.Exit(1)
	}
}
