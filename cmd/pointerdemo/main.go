// Command pointerdemo renders a small box scene in the terminal and
// wires pointer handlers onto it. Drag with the left mouse button to
// play a simulated touch gesture across the boxes and watch the
// synthesized over/out/enter/leave transitions light them up.
//
// Usage:
//
//	pointerdemo [-config scene.toml]
//
// Quit with Esc or q.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	pointer "github.com/kestrel-ui/go-pointer"
	"github.com/kestrel-ui/go-pointer/tcellhost"
)

func main() {
	configPath := flag.String("config", "", "TOML scene description (default: built-in scene)")
	flag.Parse()

	if err := run(*configPath); err != nil && err != context.Canceled {
		fmt.Fprintf(os.Stderr, "pointerdemo: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()

	w, h := screen.Size()
	root, boxes, err := cfg.BuildTree(w, h)
	if err != nil {
		return err
	}

	var opts []tcellhost.Option
	if cfg.TouchSimulation {
		opts = append(opts, tcellhost.WithTouchSimulation())
	}
	host := tcellhost.NewHost(screen, root, opts...)
	binder := pointer.NewBinder(host)
	pointer.SetDefaultBinder(binder)

	status := tcellhost.NewBox("status", 0, h-1, w, 1)
	status.SetStyle(tcell.StyleDefault.Reverse(true))
	root.AddChild(status)

	detach := bindScene(binder, boxes, status)
	defer detach()

	host.Draw()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		<-ctx.Done()
		// Unblock the poll loop so it can observe cancellation.
		screen.PostEvent(tcell.NewEventInterrupt(nil))
		return nil
	})
	g.Go(func() error {
		return eventLoop(ctx, screen, host)
	})
	return g.Wait()
}

// bindScene attaches transition handlers to every box and returns one
// handle that detaches them all.
func bindScene(b *pointer.Binder, boxes map[string]*tcellhost.Box, status *tcellhost.Box) pointer.Detach {
	var handles []pointer.Detach
	for id, box := range boxes {
		base := box.Style()
		hot := base.Reverse(true)
		handles = append(handles,
			b.Bind(box, "over", func(pointer.Notification) {
				box.SetStyle(hot)
				status.SetLabel("over " + id)
			}),
			b.Bind(box, "out", func(pointer.Notification) {
				box.SetStyle(base)
				status.SetLabel("out " + id)
			}),
			b.Bind(box, "press", func(pointer.Notification) {
				status.SetLabel("press " + id)
			}),
			b.Bind(box, "release", func(pointer.Notification) {
				status.SetLabel("release " + id)
			}),
			b.Bind(box, "enter", func(pointer.Notification) {
				status.SetLabel("enter " + id)
			}),
			b.Bind(box, "leave", func(pointer.Notification) {
				status.SetLabel("leave " + id)
			}),
		)
	}
	return pointer.Compose(handles...)
}

// eventLoop polls the screen and feeds mouse events to the host until
// the context is cancelled or the user quits.
func eventLoop(ctx context.Context, screen tcell.Screen, host *tcellhost.Host) error {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return nil
		}
		switch ev := ev.(type) {
		case *tcell.EventInterrupt:
			return ctx.Err()
		case *tcell.EventResize:
			screen.Sync()
			host.Draw()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
				return context.Canceled
			}
		case *tcell.EventMouse:
			if host.HandleEvent(ev) {
				host.Draw()
			}
		}
	}
}
