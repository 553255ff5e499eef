package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/swipecal/swipecal/internal/calsys"
	"github.com/swipecal/swipecal/internal/config"
	"github.com/swipecal/swipecal/internal/holidays"
	"github.com/swipecal/swipecal/internal/render"
	"github.com/swipecal/swipecal/internal/style"
	"github.com/swipecal/swipecal/internal/tui"
	"github.com/swipecal/swipecal/internal/widget"
	"github.com/swipecal/swipecal/internal/window"
)

var (
	configPath   = flag.String("c", "", "path to a config file")
	weekMode     = flag.Bool("w", false, "start in week mode")
	pastDisabled = flag.Bool("p", false, "disable selection of past dates")
	plain        = flag.Bool("n", false, "render once and exit (non-interactive)")
	noColor      = flag.Bool("N", false, "disable all color output")
	noColorLong  = flag.Bool("no-color", false, "disable all color output")
	lunar        = flag.Bool("lunar", false, "show Chinese lunar day annotations")
	holidaysFile = flag.String("holidays-file", "", "path to a holidays JSON file")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [options] [date]\n", os.Args[0])
		fmt.Fprintf(flag.CommandLine.Output(), `
  without arguments   open the calendar on the current month
  2024-03-13          open the calendar with that date selected

options:
`)
		flag.PrintDefaults()
	}
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	mode, err := cfg.DisplayMode()
	if err != nil {
		return err
	}
	firstWeekday, err := cfg.Weekday()
	if err != nil {
		return err
	}
	if *weekMode {
		mode = window.ModeWeek
	}
	disablePast := cfg.PastDisabled || *pastDisabled
	disableColor := cfg.NoColor || *noColor || *noColorLong

	anchor := time.Now()
	if args := flag.Args(); len(args) == 1 {
		anchor, err = time.ParseInLocation("2006-01-02", args[0], time.Local)
		if err != nil {
			return fmt.Errorf("cannot parse %q as a date: %w", args[0], err)
		}
	} else if len(args) > 1 {
		return fmt.Errorf("too many arguments, see --help")
	}

	sys := calsys.NewGregorian(calsys.WithFirstWeekday(firstWeekday))
	provider := style.Default{
		System:       sys,
		Mode:         mode,
		PastDisabled: disablePast,
		NoColor:      disableColor,
	}

	var annotator calsys.Annotator
	if cfg.Lunar || *lunar {
		annotator = calsys.LunarAnnotator{}
	}
	holidaySet := loadHolidays(cfg)

	if *plain {
		styleCfg, err := style.NewConfig(provider)
		if err != nil {
			return err
		}
		return render.RunPlain(render.PlainOptions{
			Config:    styleCfg,
			Anchor:    anchor,
			Annotator: annotator,
			Holidays:  holidaySet,
		})
	}

	return tui.Run(tui.Options{
		Provider:  provider,
		Annotator: annotator,
		NoColor:   disableColor,
		Holidays: func(w widget.Widget) widget.Widget {
			w = w.SetHolidays(holidaySet)
			if !sys.SameDay(anchor, sys.Today()) {
				w = w.Select(anchor)
			}
			return w
		},
	})
}

// loadHolidays resolves the holidays file from the flag, the config, or the
// cache. Missing or stale data is not an error; the calendar just renders
// without holiday labels.
func loadHolidays(cfg config.Config) holidays.Set {
	path := *holidaysFile
	if path == "" {
		path = cfg.HolidaysFile
	}
	if path != "" {
		set, err := holidays.Load(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: cannot load holidays file %s: %v\n", path, err)
			return nil
		}
		return set
	}
	cachePath, err := holidays.CachePath()
	if err != nil {
		return nil
	}
	if fresh, err := holidays.IsFresh(cachePath); err != nil || !fresh {
		return nil
	}
	set, err := holidays.LoadFromCache()
	if err != nil {
		return nil
	}
	return set
}
