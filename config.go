package touchtrail

import (
	"image/color"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
)

// Alignment selects which corner or edge of the surface the HUD label is
// anchored to.
type Alignment int

// The supported HUD anchor positions: the four corners plus the two
// vertically centered edges.
const (
	TopLeft Alignment = iota
	TopRight
	BottomLeft
	BottomRight
	LeftCenter
	RightCenter
)

var alignmentNames = map[string]Alignment{
	"top-left":     TopLeft,
	"top-right":    TopRight,
	"bottom-left":  BottomLeft,
	"bottom-right": BottomRight,
	"left-center":  LeftCenter,
	"right-center": RightCenter,
}

func (a Alignment) String() string {
	switch a {
	case TopLeft:
		return "top-left"
	case TopRight:
		return "top-right"
	case BottomLeft:
		return "bottom-left"
	case BottomRight:
		return "bottom-right"
	case LeftCenter:
		return "left-center"
	case RightCenter:
		return "right-center"
	}
	return "unknown"
}

// ParseAlignment converts the textual alignment name used by the CLI and the
// configuration file to an Alignment value.
func ParseAlignment(s string) (Alignment, error) {
	if a, ok := alignmentNames[strings.ToLower(s)]; ok {
		return a, nil
	}
	return 0, errors.Errorf("unknown alignment %q", s)
}

// Config bundles the overlay colors and the HUD placement. It is read once
// at construction time and never mutated afterwards.
type Config struct {
	// TrailStartColor is the trail gradient color at the oldest retained
	// position. Default #ff3b30.
	TrailStartColor color.NRGBA
	// TrailEndColor is the trail gradient color at the newest position.
	// Default #ffcc00.
	TrailEndColor color.NRGBA
	// HUDTextColor is the color of the HUD label text. Default #ffffff.
	HUDTextColor color.NRGBA
	// HUDBackground is the fill color of the HUD label box.
	// Default translucent black.
	HUDBackground color.NRGBA
	// HUDAlign anchors the HUD label box. Default BottomRight.
	HUDAlign Alignment
	// TrailBound caps the number of positions retained in the trail.
	// Default 500.
	TrailBound int
	// ClearDelay is how long the crosshair and the marker ring outlive
	// the gesture after the pointer is released. Default 300ms.
	ClearDelay time.Duration
	// CircleRadius is the marker ring radius in pixels. Default 20.
	CircleRadius float32
	// StrokeWidth is the trail stroke width in pixels. Default 3.
	StrokeWidth float32
}

// DefaultConfig returns the overlay configuration with its documented
// defaults. Every field may be overridden before the config is handed to
// NewOverlay.
func DefaultConfig() *Config {
	return &Config{
		TrailStartColor: color.NRGBA{R: 0xff, G: 0x3b, B: 0x30, A: 0xff},
		TrailEndColor:   color.NRGBA{R: 0xff, G: 0xcc, B: 0x00, A: 0xff},
		HUDTextColor:    color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		HUDBackground:   color.NRGBA{A: 0xb4},
		HUDAlign:        BottomRight,
		TrailBound:      trailBound,
		ClearDelay:      clearDelay,
		CircleRadius:    circleRadius,
		StrokeWidth:     trailWidth,
	}
}

// fileConfig mirrors Config in the TOML configuration file, with the colors
// expressed as hex strings.
type fileConfig struct {
	TrailStart    string  `toml:"trail_start"`
	TrailEnd      string  `toml:"trail_end"`
	HUDText       string  `toml:"hud_text"`
	HUDBackground string  `toml:"hud_background"`
	HUDAlign      string  `toml:"hud_align"`
	TrailBound    int     `toml:"trail_bound"`
	ClearDelayMS  int64   `toml:"clear_delay_ms"`
	CircleRadius  float32 `toml:"circle_radius"`
	StrokeWidth   float32 `toml:"stroke_width"`
}

// LoadConfig reads the overlay configuration from a TOML file. Fields
// missing from the file keep their defaults, so a partial configuration
// is valid.
func LoadConfig(path string) (*Config, error) {
	var fc fileConfig
	if _, err := toml.DecodeFile(path, &fc); err != nil {
		return nil, errors.Wrapf(err, "reading the config file %s", path)
	}

	cfg := DefaultConfig()
	fields := []struct {
		dst *color.NRGBA
		hex string
	}{
		{&cfg.TrailStartColor, fc.TrailStart},
		{&cfg.TrailEndColor, fc.TrailEnd},
		{&cfg.HUDTextColor, fc.HUDText},
		{&cfg.HUDBackground, fc.HUDBackground},
	}
	for _, f := range fields {
		if f.hex == "" {
			continue
		}
		c, err := parseHexColor(f.hex)
		if err != nil {
			return nil, err
		}
		*f.dst = c
	}
	if fc.HUDAlign != "" {
		a, err := ParseAlignment(fc.HUDAlign)
		if err != nil {
			return nil, err
		}
		cfg.HUDAlign = a
	}
	if fc.TrailBound > 0 {
		cfg.TrailBound = fc.TrailBound
	}
	if fc.ClearDelayMS > 0 {
		cfg.ClearDelay = time.Duration(fc.ClearDelayMS) * time.Millisecond
	}
	if fc.CircleRadius > 0 {
		cfg.CircleRadius = fc.CircleRadius
	}
	if fc.StrokeWidth > 0 {
		cfg.StrokeWidth = fc.StrokeWidth
	}
	return cfg, nil
}

// parseHexColor converts a #rrggbb hex string to a fully opaque NRGBA.
func parseHexColor(s string) (color.NRGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.NRGBA{}, errors.Wrapf(err, "invalid color %q", s)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}, nil
}
