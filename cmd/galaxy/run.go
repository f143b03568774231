package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/vi-galaxy/audio"
	"github.com/lixenwraith/vi-galaxy/config"
	"github.com/lixenwraith/vi-galaxy/engine"
	"github.com/lixenwraith/vi-galaxy/parameter"
	"github.com/lixenwraith/vi-galaxy/render"
	"github.com/lixenwraith/vi-galaxy/scene"
	"github.com/lixenwraith/vi-galaxy/site"
)

type runOptions struct {
	sites string
	color string
	mute  bool
	watch bool
}

func runCmd() *cobra.Command {
	var opts runOptions
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Open the galaxy in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScene(opts)
		},
	}
	cmd.Flags().StringVar(&opts.sites, "sites", "", "Catalog file or database (default: config catalog, then embedded)")
	cmd.Flags().StringVar(&opts.color, "color", "auto", "Color mode: auto, truecolor, 256")
	cmd.Flags().BoolVar(&opts.mute, "mute", false, "Start with audio cues off")
	cmd.Flags().BoolVar(&opts.watch, "watch", false, "Remount when the catalog file changes")
	return cmd
}

// applyColorMode steers tcell's terminal detection before the screen is created
func applyColorMode(mode string) {
	switch mode {
	case "256":
		os.Setenv("TCELL_TRUECOLOR", "disable")
	case "truecolor", "true", "24bit":
		os.Setenv("COLORTERM", "truecolor")
	}
}

// themeFrom parses configured colors, keeping defaults for malformed entries
func themeFrom(r config.Render) render.Theme {
	t := render.DefaultTheme()
	for _, c := range []struct {
		hex string
		dst *colorful.Color
	}{
		{r.Core, &t.Core},
		{r.Rim, &t.Rim},
		{r.Deep, &t.Deep},
		{r.Focus, &t.Focus},
	} {
		if c.hex == "" {
			continue
		}
		if col, err := colorful.Hex(c.hex); err == nil {
			*c.dst = col
		} else {
			log.Printf("config: bad color %q: %v", c.hex, err)
		}
	}
	return t
}

// app owns the mounted scene and everything the loop goroutine touches
type app struct {
	cfg     config.Config
	catalog string
	screen  tcell.Screen
	host    *host
	term    *render.Terminal
	clock   *engine.PausableClock
	cues    *audio.Cues
	scene   *scene.Context
	quit    context.CancelFunc
}

func runScene(opts runOptions) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if opts.sites != "" {
		cfg.Catalog = opts.sites
	}
	cat, err := site.Load(cfg.Catalog)
	if err != nil {
		return err
	}

	applyColorMode(opts.color)
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	engine.SetCrashScreen(screen)

	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.EnableFocus()
	screen.HideCursor()

	if opts.mute {
		cfg.Audio.Enabled = false
	}
	cues := audio.NewCues(cfg.Audio)
	if err := cues.Init(); err != nil {
		log.Printf("audio: continuing without cues: %v", err)
	}
	defer cues.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a := &app{
		cfg:     cfg,
		catalog: cfg.Catalog,
		screen:  screen,
		host:    newHost(screen),
		term:    render.NewTerminal(screen, themeFrom(cfg.Render), cfg.Render.LabelMaxChars),
		clock:   engine.NewPausableClock(engine.NewTimeProvider()),
		cues:    cues,
		quit:    cancel,
	}
	a.term.AddOverlay(tooltip{})
	a.term.AddOverlay(preview{})
	a.term.AddOverlay(statusBar{app: a})

	if err := a.mount(cat); err != nil {
		return err
	}

	loop := engine.NewLoop(a.clock, cfg.FrameInterval, parameter.InboxSize, a.step)
	loop.Start(ctx)

	// Input polling runs on its own goroutine and hands events to the loop
	engine.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			loop.Post(func() { a.handle(ev) })
		}
	})

	if opts.watch && a.catalog != "" {
		stop, err := site.Watch(a.catalog, func() {
			loop.Post(a.reload)
		})
		if err != nil {
			log.Printf("watch: %v", err)
		} else {
			defer stop()
		}
	}

	select {
	case <-ctx.Done():
	case <-loop.Done():
	}
	loop.Stop()
	if a.scene != nil {
		a.scene.Close()
	}
	return nil
}

// mount replaces the running scene with one built from cat
func (a *app) mount(cat *site.Catalog) error {
	c, err := scene.New(a.host, cat.Sites, a.cfg.Scene, scene.Callbacks{
		OnNodeSelect:    a.onSelect,
		OnHoverChange:   a.onHover,
		OnFocusComplete: a.onFocusComplete,
	}, a.term)
	if err != nil {
		return err
	}
	if a.scene != nil {
		a.scene.Close()
	}
	a.scene = c
	return nil
}

// reload remounts from the catalog source, keeping the current scene on error
func (a *app) reload() {
	cat, err := site.Load(a.catalog)
	if err != nil {
		log.Printf("reload: %v", err)
		return
	}
	if err := a.mount(cat); err != nil {
		log.Printf("reload: %v", err)
		return
	}
	log.Printf("reload: remounted %d sites", len(cat.Sites))
}

func (a *app) step(now time.Time) {
	if a.scene != nil {
		a.scene.Step(now)
	}
}

func (a *app) onSelect(n *site.Node) {
	a.cues.Select()
	a.scene.SetFocus(n)
	if a.scene.Focus.Transitioning() {
		a.cues.Focus()
	}
}

func (a *app) onHover(h scene.Hover) {
	if h.Site != nil {
		a.cues.Hover()
	}
}

func (a *app) onFocusComplete(n *site.Node) {
	log.Printf("focus: arrived at %s", n.ID)
}

// handle runs on the loop goroutine
func (a *app) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		a.key(ev)
		return
	case *tcell.EventResize:
		a.screen.Sync()
	}
	for _, sev := range a.host.translate(ev) {
		a.host.dispatch(sev)
	}
}

func (a *app) key(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		a.quit()
	case tcell.KeyEscape:
		a.scene.SetFocus(nil)
	case tcell.KeyTab:
		a.focusNext()
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			a.quit()
		case 'p':
			paused := a.clock.Toggle()
			log.Printf("clock: paused=%t", paused)
		case 'm':
			muted, err := a.cues.ToggleMute()
			if err != nil {
				log.Printf("audio: staying muted: %v", err)
			}
			log.Printf("audio: muted=%t", muted)
		}
	}
}

// focusNext flies to the node after the focused one, wrapping
func (a *app) focusNext() {
	nodes := a.scene.Nodes.Visuals.Values
	if len(nodes) == 0 {
		return
	}
	next := 0
	if cur := a.scene.Focus.Target(); cur != nil {
		if v, ok := a.scene.Nodes.At(cur.ID); ok {
			next = (v.Index + 1) % len(nodes)
		}
	}
	a.onSelect(nodes[next].Site)
}
