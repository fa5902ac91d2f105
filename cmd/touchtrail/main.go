package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"os"
	"time"

	"gioui.org/app"
	"gioui.org/font/gofont"
	"gioui.org/layout"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget/material"

	"github.com/touchtrail/touchtrail"
	"github.com/touchtrail/touchtrail/utils"
)

const HelpBanner = `
┌┬┐┌─┐┬ ┬┌─┐┬ ┬┌┬┐┬─┐┌─┐┬┬
 │ │ ││ ││  ├─┤ │ ├┬┘├─┤││
 ┴ └─┘└─┘└─┘┴ ┴ ┴ ┴└─┴ ┴┴┴─┘

Debug pointer trail overlay for Gio applications.
    Version: %s

`

// Version indicates the current build version.
var Version string

var (
	// Flags
	configPath = flag.String("config", "", "TOML configuration file")
	align      = flag.String("align", "", "HUD alignment: top-left, top-right, bottom-left, bottom-right, left-center, right-center")
	bound      = flag.Int("bound", 0, "Trail length bound (0 keeps the configured value)")
	delay      = flag.Duration("delay", 0, "Deferred clear delay, e.g. 300ms (0 keeps the configured value)")
	width      = flag.Int("width", 800, "Window width")
	height     = flag.Int("height", 600, "Window height")
	title      = flag.String("title", "touchtrail playground", "Window title")
)

var (
	backgroundColor = color.NRGBA{R: 0x12, G: 0x12, B: 0x14, A: 0xff}
	captionColor    = color.NRGBA{R: 0x6e, G: 0x6e, B: 0x73, A: 0xff}
)

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, fmt.Sprintf(HelpBanner, Version))
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg := touchtrail.DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = touchtrail.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf(
				utils.DecorateText("Failed to load the configuration: %v\n", utils.ErrorMessage),
				utils.DecorateText(err.Error(), utils.DefaultMessage),
			)
		}
	}
	if *align != "" {
		a, err := touchtrail.ParseAlignment(*align)
		if err != nil {
			log.Fatalf(
				utils.DecorateText("Invalid alignment: %v\n", utils.ErrorMessage),
				utils.DecorateText(err.Error(), utils.DefaultMessage),
			)
		}
		cfg.HUDAlign = a
	}
	if *bound > 0 {
		cfg.TrailBound = *bound
	}
	if *delay > 0 {
		cfg.ClearDelay = *delay
	}

	overlay := touchtrail.NewOverlay(cfg)
	th := material.NewTheme(gofont.Collection())

	fmt.Fprintf(os.Stderr, "%s %s\n",
		utils.DecorateText("◉ TOUCHTRAIL", utils.StatusMessage),
		utils.DecorateText("drag with the mouse or a finger to draw the trail, press ESC to quit...", utils.DefaultMessage),
	)
	now := time.Now()

	go func() {
		err := overlay.Run(*title, *width, *height, func(gtx layout.Context) {
			paint.Fill(gtx.Ops, backgroundColor)
			layout.Center.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				caption := material.Label(th, unit.Px(16), "Drag anywhere on this surface")
				caption.Color = captionColor
				return caption.Layout(gtx)
			})
		})
		if err != nil {
			log.Fatalf(
				utils.DecorateText("GUI error: %v\n", utils.ErrorMessage),
				utils.DecorateText(err.Error(), utils.DefaultMessage),
			)
		}
		fmt.Fprintf(os.Stderr, "\nSession time: %s\n",
			utils.DecorateText(utils.FormatTime(time.Since(now)), utils.SuccessMessage))
		os.Exit(0)
	}()
	app.Main()
}
