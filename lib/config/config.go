package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/fosdem/dashgl/lib/log"
	"github.com/fosdem/dashgl/lib/rendering/shaders"
	"github.com/fosdem/dashgl/lib/utils"
	yaml "github.com/goccy/go-yaml"
)

var goos = runtime.GOOS

type Config struct {
	Sample      string
	Window      *WindowCfg
	Shaders     *ShadersCfg
	ClearColour string `yaml:"clear_colour"`
	DurationMs  *int   `yaml:"duration_ms"`
	LogLevel    string `yaml:"log_level"`
	Metrics     *MetricsCfg
}

type WindowCfg struct {
	// Empty means the sample's own title
	Title   string
	Width   int
	Height  int
	Dialect shaders.Dialect
}

type ShadersCfg struct {
	Dir       CfgPath
	HotReload bool    `yaml:"hot_reload"`
	DebugDir  CfgPath `yaml:"debug_dir"`
}

type MetricsCfg struct {
	Bind string
}

func Parse(filename string) (*Config, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("could not open %s: %w", filename, err)
	}
	defer f.Close()

	absFilename, err := filepath.Abs(filename)
	if err != nil {
		return nil, fmt.Errorf("somehow, %s is malformed: %w", filename, err)
	}

	cfg := &Config{}
	err = yaml.NewDecoder(f).Decode(cfg)
	if err != nil {
		return nil, fmt.Errorf("could not decode %s: %w", filename, err)
	}
	cfg.resolvePaths(filepath.Dir(absFilename))

	err = cfg.Validate()
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) resolvePaths(base string) {
	if c.Shaders != nil {
		c.Shaders.Dir = c.Shaders.Dir.resolve(base)
		c.Shaders.DebugDir = c.Shaders.DebugDir.resolve(base)
	}
}

func (c *Config) Validate() error {
	if c.Sample == "" {
		return fmt.Errorf("please set sample in the config")
	}

	if c.Window == nil {
		return fmt.Errorf("window must be specified")
	}
	err := c.Window.Validate()
	if err != nil {
		return fmt.Errorf("window config is invalid: %w", err)
	}

	if c.Shaders != nil {
		err = c.Shaders.Validate()
		if err != nil {
			return fmt.Errorf("shaders config is invalid: %w", err)
		}
	}

	if c.ClearColour == "" {
		c.ClearColour = "#000000ff"
	}
	if !utils.ColourValidate(c.ClearColour) {
		return fmt.Errorf("%s is not a valid RGBA hex colour", c.ClearColour)
	}

	if c.DurationMs != nil && *c.DurationMs <= 0 {
		return fmt.Errorf("duration_ms must be positive when set")
	}

	_, err = log.ParseLevel(c.LogLevel)
	if err != nil {
		return err
	}

	if c.Metrics != nil && c.Metrics.Bind == "" {
		return fmt.Errorf("metrics.bind must be specified when metrics are enabled")
	}
	return nil
}

func (w *WindowCfg) Validate() error {
	if w.Width <= 0 || w.Height <= 0 {
		return fmt.Errorf("width and height must be positive (got %dx%d)", w.Width, w.Height)
	}
	if w.Dialect == shaders.DialectES {
		return fmt.Errorf("the window host only creates desktop contexts, use core or legacy")
	}
	// the renderer needs the 4.1 entry points, which macOS only has in core
	if w.Dialect == shaders.DialectLegacy && goos == "darwin" {
		return fmt.Errorf("the legacy dialect needs a 4.x compatibility context, which macOS does not offer; use core")
	}
	return nil
}

// ShaderDialect defaults to core when the config does not name one.
func (w *WindowCfg) ShaderDialect() shaders.Dialect {
	return w.Dialect
}

func (s *ShadersCfg) Validate() error {
	if s.Dir == "" {
		if s.HotReload {
			return fmt.Errorf("cannot enable hot_reload without a shader dir")
		}
		return nil
	}
	info, err := os.Stat(s.Dir.String())
	if err != nil {
		return fmt.Errorf("shader dir: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("shader dir %s is not a directory", s.Dir)
	}
	return nil
}

// Duration returns how long to run before quitting on our own, or 0 to run
// until the window is closed.
func (c *Config) Duration() time.Duration {
	if c.DurationMs == nil {
		return 0
	}
	return time.Duration(*c.DurationMs) * time.Millisecond
}

func (c *Config) ClearColourValue() utils.Colour {
	colour, err := utils.ColourParse(c.ClearColour)
	if err != nil {
		// Validate rejects unparseable colours
		panic(err)
	}
	return colour
}

func (c *Config) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Sample: %s\n", c.Sample)
	title := c.Window.Title
	if title == "" {
		title = "(sample title)"
	}
	fmt.Fprintf(&b, "Window: %q %dx%d (%s)\n", title, c.Window.Width, c.Window.Height, c.Window.ShaderDialect())

	if c.Shaders != nil && c.Shaders.Dir != "" {
		fmt.Fprintf(&b, "Shaders: %s (hot reload: %t)\n", c.Shaders.Dir, c.Shaders.HotReload)
	} else {
		b.WriteString("Shaders: embedded\n")
	}

	if d := c.Duration(); d > 0 {
		fmt.Fprintf(&b, "Quit after: %s\n", d)
	}
	if c.Metrics != nil {
		fmt.Fprintf(&b, "Metrics: %s\n", c.Metrics.Bind)
	}
	return b.String()
}
