package cli

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/threatcalc/pkg/presenter"
	"github.com/urfave/cli/v3"
)

var errInvalidOutput = goerr.New("invalid output format")

// output holds flags selecting how results are rendered
type output struct {
	format  string
	noColor bool
}

func (x *output) flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "output",
			Aliases:     []string{"o"},
			Usage:       "Output format (text, json)",
			Category:    "Output",
			Value:       "text",
			Sources:     cli.EnvVars("THREATCALC_OUTPUT"),
			Destination: &x.format,
		},
		&cli.BoolFlag{
			Name:        "no-color",
			Usage:       "Disable colored output",
			Category:    "Output",
			Sources:     cli.EnvVars("THREATCALC_NO_COLOR", "NO_COLOR"),
			Destination: &x.noColor,
		},
	}
}

func (x *output) validate() error {
	switch x.format {
	case "text", "json":
		return nil
	default:
		return goerr.Wrap(errInvalidOutput, "unsupported output", goerr.V("format", x.format))
	}
}

// render writes v as JSON, or calls text with a terminal presenter
func (x *output) render(c *cli.Command, v any, text func(*presenter.Text) error) error {
	w := c.Root().Writer
	if x.format == "json" {
		return presenter.JSON(w, v)
	}
	return text(presenter.NewText(w, presenter.WithColor(x.colored(w))))
}

func (x *output) colored(w io.Writer) bool {
	if x.noColor || color.NoColor {
		return false
	}
	f, ok := w.(*os.File)
	return ok && f == os.Stdout
}
