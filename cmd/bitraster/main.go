package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/bitraster/internal/config"
	"github.com/san-kum/bitraster/internal/raster"
	"github.com/san-kum/bitraster/internal/scan"
	"github.com/san-kum/bitraster/internal/stream"
	"github.com/san-kum/bitraster/internal/tui"
	"github.com/san-kum/bitraster/internal/view"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	width      int
	offset     int64
	delayMS    int
	reverse    bool
	themeName  string
	configFile string
	preset     string
	// density profile options
	windows     int
	withEntropy bool
	asJSON      bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "bitraster [file]",
		Short: "view binary files as a scrollable sextant bitmap",
		Long: "bitraster renders the raw bits of a file as a bitmap drawn with\n" +
			"Unicode sextant characters, six bits per terminal cell. Without a\n" +
			"file argument it renders stdin as a live stream instead.",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE:         runView,
	}
	rootCmd.Flags().IntVarP(&width, "width", "w", 0, "bitmap width in bits, multiple of 8 (0 = derive from terminal)")
	rootCmd.Flags().Int64VarP(&offset, "offset", "o", 0, "initial byte offset into the file")
	rootCmd.Flags().IntVarP(&delayMS, "delay", "d", config.DefaultDelayMS, "delay in milliseconds between automatic updates")
	rootCmd.Flags().BoolVarP(&reverse, "reverse", "r", false, "read bits least significant first")
	rootCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.Flags().StringVar(&themeName, "theme", config.DefaultTheme, "color theme (mono, amber, green)")

	densityCmd := &cobra.Command{
		Use:   "density [file]",
		Short: "plot the file's bit density profile",
		Args:  cobra.ExactArgs(1),
		RunE:  runDensity,
	}
	densityCmd.Flags().IntVar(&windows, "windows", 0, "number of profile windows (0 = terminal width)")
	densityCmd.Flags().BoolVar(&withEntropy, "entropy", false, "plot byte entropy instead of bit density")
	densityCmd.Flags().BoolVar(&asJSON, "json", false, "emit the profile as JSON instead of a plot")

	glyphsCmd := &cobra.Command{
		Use:   "glyphs",
		Short: "print the sextant glyph table",
		Run: func(cmd *cobra.Command, args []string) {
			for i := 0; i < raster.NumGlyphs; i++ {
				fmt.Printf("%06b %c", i, raster.Glyph(i))
				if i%4 == 3 {
					fmt.Println()
				} else {
					fmt.Print("   ")
				}
			}
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list preset configurations",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tWIDTH\tDELAY\tORDER\tTHEME")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				pw := "auto"
				if p.Width > 0 {
					pw = strconv.Itoa(p.Width)
				}
				fmt.Fprintf(w, "%s\t%s\t%dms\t%s\t%s\n", name, pw, p.DelayMS, p.Order(), p.Theme)
			}
			return w.Flush()
		},
	}

	rootCmd.AddCommand(densityCmd, glyphsCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runView(cmd *cobra.Command, args []string) error {
	if preset != "" {
		cfg := config.GetPreset(preset)
		if cfg == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		width = cfg.Width
		offset = cfg.Offset
		delayMS = cfg.DelayMS
		reverse = cfg.Reverse
		themeName = cfg.Theme
	}

	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if !cmd.Flags().Changed("width") {
			width = cfg.Width
		}
		if !cmd.Flags().Changed("offset") {
			offset = cfg.Offset
		}
		if !cmd.Flags().Changed("delay") {
			delayMS = cfg.DelayMS
		}
		if !cmd.Flags().Changed("reverse") {
			reverse = cfg.Reverse
		}
		if !cmd.Flags().Changed("theme") {
			themeName = cfg.Theme
		}
	}

	cfg := &config.Config{
		Width:   width,
		Offset:  offset,
		DelayMS: delayMS,
		Reverse: reverse,
		Theme:   themeName,
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if len(args) == 0 {
		return runStream(cfg)
	}
	return runFile(args[0], cfg)
}

func runFile(path string, cfg *config.Config) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return errors.New("interactive mode needs a terminal on stdin")
	}

	src, err := view.OpenFile(path)
	if err != nil {
		return err
	}
	defer src.Close()

	vp, err := view.New(src, view.Options{
		Width:  cfg.Width,
		Offset: cfg.Offset,
		Order:  cfg.Order(),
	})
	if err != nil {
		return err
	}

	return tui.Run(vp, tui.Options{
		Name:  src.Name(),
		Theme: cfg.Theme,
		Delay: cfg.Delay(),
	})
}

func runStream(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	st := &stream.Streamer{
		In:    os.Stdin,
		Out:   os.Stdout,
		Width: cfg.Width,
		Order: cfg.Order(),
		Delay: cfg.Delay(),
	}

	errCh := make(chan error, 1)
	go func() { errCh <- st.Run(ctx) }()

	select {
	case <-ctx.Done():
		return nil
	case err := <-errCh:
		return err
	}
}

func runDensity(cmd *cobra.Command, args []string) error {
	src, err := view.OpenFile(args[0])
	if err != nil {
		return err
	}
	defer src.Close()

	plotW := 80
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 20 {
		plotW = w - 10
	}
	n := windows
	if n == 0 {
		n = plotW
	}

	res, err := scan.Profile(src, n)
	if err != nil {
		return err
	}

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	if len(res.Density) == 0 {
		fmt.Println("empty file")
		return nil
	}

	series := res.Density
	caption := fmt.Sprintf("bit density (%d windows of %d bytes)", len(series), res.Window)
	if withEntropy {
		series = res.Entropy
		caption = fmt.Sprintf("byte entropy in bits/byte (%d windows of %d bytes)", len(series), res.Window)
	}

	fmt.Printf("file: %s\n", src.Name())
	fmt.Printf("size: %d bytes\n\n", res.Size)

	graph := asciigraph.Plot(series,
		asciigraph.Height(15),
		asciigraph.Width(plotW),
		asciigraph.Caption(caption),
	)
	fmt.Println(graph)

	return nil
}
